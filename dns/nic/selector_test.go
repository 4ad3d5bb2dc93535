package nic_test

import (
	"errors"
	"net/netip"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"

	"temporary-dns/dns/nic"
	"temporary-dns/dns/nic/nicfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func addrs(values ...string) []netip.Addr {
	result := make([]netip.Addr, 0, len(values))
	for _, v := range values {
		result = append(result, netip.MustParseAddr(v))
	}
	return result
}

var _ = Describe("Selector", func() {
	var (
		fetcher  *nicfakes.FakeFetcher
		logger   *loggerfakes.FakeLogger
		selector *nic.Selector

		lo, docker, eth0, wlan0, eth1 nic.Descriptor
	)

	BeforeEach(func() {
		fetcher = &nicfakes.FakeFetcher{}
		logger = &loggerfakes.FakeLogger{}
		selector = nic.NewSelector(fetcher, logger)

		lo = nic.Descriptor{Name: "lo", Description: "lo", Kind: nic.KindOther, Status: nic.StatusUp, Unicast: addrs("127.0.0.1", "::1")}
		docker = nic.Descriptor{Name: "docker0", Description: "Docker Virtual Bridge", Kind: nic.KindEthernet, Status: nic.StatusUp, Unicast: addrs("172.17.0.1")}
		eth0 = nic.Descriptor{Name: "eth0", Description: "eth0", Kind: nic.KindEthernet, Status: nic.StatusUp, Unicast: addrs("192.168.1.20", "fe80::1"), Gateways: addrs("192.168.1.1"), DNSServers: addrs("1.1.1.1")}
		wlan0 = nic.Descriptor{Name: "wlan0", Description: "Intel(R) Wi-Fi 6 AX201 160MHz", Kind: nic.KindWireless, Status: nic.StatusUp, Unicast: addrs("10.0.0.5"), Gateways: addrs("10.0.0.1")}
		eth1 = nic.Descriptor{Name: "eth1", Description: "eth1", Kind: nic.KindEthernet, Status: nic.StatusUp, Unicast: addrs("192.168.2.20")}
	})

	Describe("SelectActive", func() {
		Context("on unix", func() {
			It("returns the first eligible interface in enumeration order", func() {
				fetcher.InterfacesReturns([]nic.Descriptor{lo, docker, wlan0, eth0, eth1}, nil)

				d, found, err := selector.SelectActive(nic.PlatformUnix)
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
				Expect(d).To(Equal(eth0))
			})

			It("returns nothing when no interface qualifies", func() {
				fetcher.InterfacesReturns([]nic.Descriptor{lo, docker, wlan0}, nil)

				_, found, err := selector.SelectActive(nic.PlatformUnix)
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
			})
		})

		Context("on windows", func() {
			It("accepts a wireless adapter with an IPv4 gateway", func() {
				fetcher.InterfacesReturns([]nic.Descriptor{lo, eth1, wlan0, eth0}, nil)

				d, found, err := selector.SelectActive(nic.PlatformWindows)
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
				Expect(d.Name).To(Equal("wlan0"))
			})
		})

		It("re-enumerates on every call and is stable for an unchanged host", func() {
			fetcher.InterfacesReturns([]nic.Descriptor{lo, eth0, eth1}, nil)

			first, _, err := selector.SelectActive(nic.PlatformUnix)
			Expect(err).NotTo(HaveOccurred())
			second, _, err := selector.SelectActive(nic.PlatformUnix)
			Expect(err).NotTo(HaveOccurred())

			Expect(first).To(Equal(second))
			Expect(fetcher.InterfacesCallCount()).To(Equal(2))
		})

		It("logs every candidate it considers", func() {
			fetcher.InterfacesReturns([]nic.Descriptor{lo, docker, eth0}, nil)

			_, _, err := selector.SelectActive(nic.PlatformUnix)
			Expect(err).NotTo(HaveOccurred())

			Expect(logger.DebugCallCount()).To(Equal(3))
			tag, _, args := logger.DebugArgsForCall(2)
			Expect(tag).To(Equal("InterfaceSelector"))
			Expect(args[0]).To(Equal(eth0))
		})

		It("wraps enumeration failures", func() {
			fetcher.InterfacesReturns(nil, errors.New("netlink: operation not permitted"))

			_, found, err := selector.SelectActive(nic.PlatformUnix)
			Expect(err).To(MatchError("Enumerating network interfaces: netlink: operation not permitted"))
			Expect(found).To(BeFalse())
		})
	})

	DescribeTable("UnixEligible",
		func(mutate func(*nic.Descriptor), expected bool) {
			d := nic.Descriptor{Name: "eth0", Description: "eth0", Kind: nic.KindEthernet, Status: nic.StatusUp, Unicast: addrs("192.168.1.20")}
			mutate(&d)
			Expect(nic.UnixEligible(d)).To(Equal(expected))
		},
		Entry("an up ethernet interface with a routable address", func(*nic.Descriptor) {}, true),
		Entry("a down interface", func(d *nic.Descriptor) { d.Status = nic.StatusDown }, false),
		Entry("a wireless interface", func(d *nic.Descriptor) { d.Kind = nic.KindWireless }, false),
		Entry("an other interface", func(d *nic.Descriptor) { d.Kind = nic.KindOther }, false),
		Entry("a description mentioning virtual in any case", func(d *nic.Descriptor) { d.Description = "Hyper-V VIRTUAL Ethernet Adapter" }, false),
		Entry("a description mentioning loopback", func(d *nic.Descriptor) { d.Description = "Software Loopback Interface 1" }, false),
		Entry("only loopback addresses", func(d *nic.Descriptor) { d.Unicast = addrs("127.0.0.1", "::1") }, false),
		Entry("no addresses", func(d *nic.Descriptor) { d.Unicast = nil }, false),
		Entry("an IPv6-only address", func(d *nic.Descriptor) { d.Unicast = addrs("2001:db8::20") }, true),
		Entry("gateways are not required", func(d *nic.Descriptor) { d.Gateways = nil }, true),
	)

	DescribeTable("WindowsEligible",
		func(mutate func(*nic.Descriptor), expected bool) {
			d := nic.Descriptor{Name: "Ethernet", Description: "Intel(R) Ethernet Connection I219-LM", Kind: nic.KindEthernet, Status: nic.StatusUp, Gateways: addrs("192.168.1.1")}
			mutate(&d)
			Expect(nic.WindowsEligible(d)).To(Equal(expected))
		},
		Entry("an up ethernet adapter with an IPv4 gateway", func(*nic.Descriptor) {}, true),
		Entry("an up wireless adapter", func(d *nic.Descriptor) { d.Kind = nic.KindWireless }, true),
		Entry("a tunnel adapter", func(d *nic.Descriptor) { d.Kind = nic.KindOther }, false),
		Entry("a down adapter", func(d *nic.Descriptor) { d.Status = nic.StatusDown }, false),
		Entry("only an IPv6 gateway", func(d *nic.Descriptor) { d.Gateways = addrs("fe80::1") }, false),
		Entry("an IPv4-mapped gateway", func(d *nic.Descriptor) { d.Gateways = addrs("::ffff:192.168.1.1") }, true),
		Entry("no gateway", func(d *nic.Descriptor) { d.Gateways = nil }, false),
		Entry("virtual descriptions are allowed", func(d *nic.Descriptor) { d.Description = "Hyper-V Virtual Ethernet Adapter" }, true),
	)

	Describe("Descriptor", func() {
		It("renders the diagnostics line", func() {
			Expect(eth0.String()).To(Equal(`name=eth0 description="eth0" kind=ethernet status=up mac= unicast=[192.168.1.20 fe80::1] gateways=[192.168.1.1] dns=[1.1.1.1]`))
		})

		It("leaves dns out when no servers were fetched", func() {
			eth0.DNSServers = nil
			Expect(eth0.String()).To(Equal(`name=eth0 description="eth0" kind=ethernet status=up mac= unicast=[192.168.1.20 fe80::1] gateways=[192.168.1.1]`))
		})
	})
})
