//go:build linux

package nic

import (
	"net"
	"net/netip"
	"os"
	"path/filepath"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/vishvananda/netlink"
)

type netlinkFetcher struct {
	sysClassNet string
}

func NewFetcher() Fetcher {
	return netlinkFetcher{sysClassNet: "/sys/class/net"}
}

func (f netlinkFetcher) Interfaces() ([]Descriptor, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, bosherr.WrapError(err, "Listing links")
	}

	descriptors := make([]Descriptor, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()

		d := Descriptor{
			Name:         attrs.Name,
			Description:  attrs.Name,
			Index:        attrs.Index,
			Kind:         f.kind(link),
			Status:       linkStatus(attrs),
			HardwareAddr: attrs.HardwareAddr.String(),
		}
		if attrs.Alias != "" {
			d.Description = attrs.Alias
		}

		addrs, err := netlink.AddrList(link, netlink.FAMILY_ALL)
		if err != nil {
			return nil, bosherr.WrapErrorf(err, "Listing addresses of '%s'", attrs.Name)
		}
		for _, addr := range addrs {
			if ip, ok := toAddr(addr.IP); ok {
				d.Unicast = append(d.Unicast, ip)
			}
		}

		routes, err := netlink.RouteList(link, netlink.FAMILY_ALL)
		if err != nil {
			return nil, bosherr.WrapErrorf(err, "Listing routes of '%s'", attrs.Name)
		}
		for _, route := range routes {
			if !isDefaultRoute(route) {
				continue
			}
			if gw, ok := toAddr(route.Gw); ok {
				d.Gateways = append(d.Gateways, gw)
			}
		}

		descriptors = append(descriptors, d)
	}

	return descriptors, nil
}

func (f netlinkFetcher) kind(link netlink.Link) Kind {
	attrs := link.Attrs()
	if attrs.Flags&net.FlagLoopback != 0 || link.Type() != "device" {
		return KindOther
	}

	if _, err := os.Stat(filepath.Join(f.sysClassNet, attrs.Name, "wireless")); err == nil {
		return KindWireless
	}

	if len(attrs.HardwareAddr) == 6 {
		return KindEthernet
	}

	return KindOther
}

func linkStatus(attrs *netlink.LinkAttrs) Status {
	switch attrs.OperState {
	case netlink.OperUp:
		return StatusUp
	case netlink.OperUnknown:
		// plenty of drivers never report an operational state
		if attrs.Flags&net.FlagUp != 0 && attrs.Flags&net.FlagRunning != 0 {
			return StatusUp
		}
	}
	return StatusDown
}

func isDefaultRoute(route netlink.Route) bool {
	if route.Dst == nil {
		return true
	}
	ones, _ := route.Dst.Mask.Size()
	return ones == 0 && route.Dst.IP.IsUnspecified()
}

func toAddr(ip net.IP) (netip.Addr, bool) {
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
