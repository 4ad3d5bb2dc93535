//go:build !linux && !windows

package nic

import (
	"net"
	"net/netip"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

type netFetcher struct{}

// NewFetcher enumerates interfaces through the net package. Gateways are not
// discovered here.
func NewFetcher() Fetcher {
	return netFetcher{}
}

func (netFetcher) Interfaces() ([]Descriptor, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, bosherr.WrapError(err, "Listing interfaces")
	}

	descriptors := make([]Descriptor, 0, len(ifaces))
	for _, iface := range ifaces {
		d := Descriptor{
			Name:         iface.Name,
			Description:  iface.Name,
			Index:        iface.Index,
			Kind:         KindOther,
			Status:       StatusDown,
			HardwareAddr: iface.HardwareAddr.String(),
		}

		if iface.Flags&net.FlagLoopback == 0 && len(iface.HardwareAddr) == 6 {
			d.Kind = KindEthernet
		}
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagRunning != 0 {
			d.Status = StatusUp
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return nil, bosherr.WrapErrorf(err, "Listing addresses of '%s'", iface.Name)
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip, ok := netip.AddrFromSlice(ipNet.IP); ok {
				d.Unicast = append(d.Unicast, ip.Unmap())
			}
		}

		descriptors = append(descriptors, d)
	}

	return descriptors, nil
}
