package manager

import (
	"net/netip"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

// ServerList is an ordered list of DNS servers. The first entry is the primary.
type ServerList []netip.Addr

// ParseServerList accepts IP literals, each value optionally holding several
// comma separated addresses. Anything else is rejected so that no value can
// smuggle extra arguments into a configuration command.
func ParseServerList(values ...string) (ServerList, error) {
	var servers ServerList

	for _, value := range values {
		for _, field := range strings.Split(value, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			addr, err := netip.ParseAddr(field)
			if err != nil {
				return nil, bosherr.WrapErrorf(err, "Invalid DNS server '%s'", field)
			}
			if addr.Zone() != "" {
				return nil, bosherr.Errorf("Invalid DNS server '%s': zones are not supported", field)
			}

			servers = append(servers, addr.Unmap())
		}
	}

	if len(servers) == 0 {
		return nil, bosherr.Error("No DNS servers given")
	}

	return servers, nil
}

func (l ServerList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, addr := range l {
		result = append(result, addr.String())
	}
	return result
}

func (l ServerList) String() string {
	return strings.Join(l.Strings(), ", ")
}

func (l ServerList) First() (netip.Addr, bool) {
	if len(l) == 0 {
		return netip.Addr{}, false
	}
	return l[0], true
}

// Truncate returns at most max servers. A max of zero means no limit.
func (l ServerList) Truncate(max int) ServerList {
	if max <= 0 || len(l) <= max {
		return l
	}
	return l[:max]
}

func parseReportedServers(fields []string) ServerList {
	var servers ServerList

	for _, field := range fields {
		// resolvectl appends "#server-name" for DNS-over-TLS and "%ifname" for scoped IPv6
		if i := strings.IndexAny(field, "#%"); i >= 0 {
			field = field[:i]
		}

		field = strings.TrimSpace(field)
		if addr, err := netip.ParseAddr(field); err == nil {
			servers = append(servers, addr.Unmap())
		} else if addrPort, err := netip.ParseAddrPort(field); err == nil {
			servers = append(servers, addrPort.Addr().Unmap())
		}
	}

	return servers
}
