package manager

import "temporary-dns/dns/nic"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . DNSConfigurator

// DNSConfigurator changes the resolvers of a single interface. One
// implementation is chosen per platform at startup.
type DNSConfigurator interface {
	Platform() string
	Traits() Traits

	Read(iface nic.Descriptor) (ServerList, error)
	Apply(iface nic.Descriptor, servers ServerList) error
	// Clear returns the interface to automatically assigned servers.
	Clear(iface nic.Descriptor) error
	// Restore puts back a list captured by Read.
	Restore(iface nic.Descriptor, original ServerList) error
}

type Traits struct {
	// CapturesOriginal is false where reverting always means Clear.
	CapturesOriginal bool
	// MaxServers is the number of servers Apply honours, zero for no limit.
	MaxServers int
	// Selection is the interface heuristic used on this platform.
	Selection nic.Platform
}
