//go:build windows

package nic

import (
	"net"
	"net/netip"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

type adapterFetcher struct{}

func NewFetcher() Fetcher {
	return adapterFetcher{}
}

func (adapterFetcher) Interfaces() ([]Descriptor, error) {
	var b []byte
	l := uint32(15000) // recommended initial size
	flags := uint32(windows.GAA_FLAG_INCLUDE_PREFIX | windows.GAA_FLAG_INCLUDE_GATEWAYS)
	for {
		b = make([]byte, l)
		err := windows.GetAdaptersAddresses(syscall.AF_UNSPEC, flags, 0, (*windows.IpAdapterAddresses)(unsafe.Pointer(&b[0])), &l)
		if err == nil {
			if l == 0 {
				return nil, nil
			}
			break
		}
		if err.(syscall.Errno) != syscall.ERROR_BUFFER_OVERFLOW {
			return nil, os.NewSyscallError("getadaptersaddresses", err)
		}
		if l <= uint32(len(b)) {
			return nil, os.NewSyscallError("getadaptersaddresses", err)
		}
	}

	var descriptors []Descriptor
	for aa := (*windows.IpAdapterAddresses)(unsafe.Pointer(&b[0])); aa != nil; aa = aa.Next {
		d := Descriptor{
			Name:         windows.UTF16PtrToString(aa.FriendlyName),
			Description:  windows.UTF16PtrToString(aa.Description),
			Index:        int(aa.IfIndex),
			Kind:         adapterKind(aa.IfType),
			Status:       StatusDown,
			HardwareAddr: net.HardwareAddr(aa.PhysicalAddress[:aa.PhysicalAddressLength]).String(),
		}
		if aa.OperStatus == windows.IfOperStatusUp {
			d.Status = StatusUp
		}

		for ua := aa.FirstUnicastAddress; ua != nil; ua = ua.Next {
			if ip, ok := sockaddrToAddr(ua.Address); ok {
				d.Unicast = append(d.Unicast, ip)
			}
		}
		for ga := aa.FirstGatewayAddress; ga != nil; ga = ga.Next {
			if ip, ok := sockaddrToAddr(ga.Address); ok {
				d.Gateways = append(d.Gateways, ip)
			}
		}
		for da := aa.FirstDnsServerAddress; da != nil; da = da.Next {
			if ip, ok := sockaddrToAddr(da.Address); ok {
				d.DNSServers = append(d.DNSServers, ip)
			}
		}

		descriptors = append(descriptors, d)
	}

	return descriptors, nil
}

func adapterKind(ifType uint32) Kind {
	switch ifType {
	case windows.IF_TYPE_ETHERNET_CSMACD:
		return KindEthernet
	case windows.IF_TYPE_IEEE80211:
		return KindWireless
	default:
		return KindOther
	}
}

func sockaddrToAddr(sockaddr windows.SocketAddress) (netip.Addr, bool) {
	sa, err := sockaddr.Sockaddr.Sockaddr()
	if err != nil {
		return netip.Addr{}, false
	}

	switch sa := sa.(type) {
	case *syscall.SockaddrInet4:
		return netip.AddrFrom4(sa.Addr), true
	case *syscall.SockaddrInet6:
		return netip.AddrFrom16(sa.Addr), true
	}

	return netip.Addr{}, false
}
