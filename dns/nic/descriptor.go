package nic

import (
	"fmt"
	"net/netip"
	"strings"
)

type Kind int

const (
	KindOther Kind = iota
	KindEthernet
	KindWireless
)

func (k Kind) String() string {
	switch k {
	case KindEthernet:
		return "ethernet"
	case KindWireless:
		return "wireless"
	default:
		return "other"
	}
}

type Status int

const (
	StatusDown Status = iota
	StatusUp
)

func (s Status) String() string {
	if s == StatusUp {
		return "up"
	}
	return "down"
}

// Descriptor is a point-in-time view of one host interface.
type Descriptor struct {
	Name         string
	Description  string
	Index        int
	Kind         Kind
	Status       Status
	HardwareAddr string

	Unicast    []netip.Addr
	Gateways   []netip.Addr
	// DNSServers is only filled on Windows, where the adapter listing
	// carries them. The Linux and macOS fetchers leave it empty.
	DNSServers []netip.Addr
}

// String omits dns when no servers were fetched for the interface.
func (d Descriptor) String() string {
	s := fmt.Sprintf(
		"name=%s description=%q kind=%s status=%s mac=%s unicast=[%s] gateways=[%s]",
		d.Name,
		d.Description,
		d.Kind,
		d.Status,
		d.HardwareAddr,
		joinAddrs(d.Unicast),
		joinAddrs(d.Gateways),
	)
	if len(d.DNSServers) > 0 {
		s += fmt.Sprintf(" dns=[%s]", joinAddrs(d.DNSServers))
	}
	return s
}

func joinAddrs(addrs []netip.Addr) string {
	parts := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		parts = append(parts, addr.String())
	}
	return strings.Join(parts, " ")
}
