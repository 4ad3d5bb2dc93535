package manager_test

import (
	"errors"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"

	"temporary-dns/dns/cmdrunner"
	"temporary-dns/dns/cmdrunner/cmdrunnerfakes"
	"temporary-dns/dns/manager"
	"temporary-dns/dns/nic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const hardwarePorts = `
Hardware Port: Thunderbolt Bridge
Device: bridge0
Ethernet Address: 82:2a:1c:c6:34:40

Hardware Port: Wi-Fi
Device: en0
Ethernet Address: a4:83:e7:11:22:33

VLAN Configurations
===================
`

var _ = Describe("NetworksetupConfigurator", func() {
	var (
		runner       *cmdrunnerfakes.FakeRunner
		logger       *loggerfakes.FakeLogger
		configurator manager.DNSConfigurator
		en0          nic.Descriptor
	)

	BeforeEach(func() {
		runner = &cmdrunnerfakes.FakeRunner{}
		logger = &loggerfakes.FakeLogger{}
		configurator = manager.NewNetworksetupConfigurator(runner, logger)
		en0 = nic.Descriptor{Name: "en0", Description: "en0", Kind: nic.KindEthernet, Status: nic.StatusUp}

		runner.RunReturnsOnCall(0, cmdrunner.Result{Stdout: hardwarePorts}, nil)
	})

	Describe("Apply", func() {
		It("sets the servers on the service using the device", func() {
			Expect(configurator.Apply(en0, servers("9.9.9.9", "149.112.112.112"))).To(Succeed())

			Expect(runner.RunCallCount()).To(Equal(2))
			Expect(commandLine(runner, 0)).To(Equal([]string{"networksetup", "-listallhardwareports"}))
			Expect(commandLine(runner, 1)).To(Equal([]string{"networksetup", "-setdnsservers", "Wi-Fi", "9.9.9.9", "149.112.112.112"}))
		})

		It("warns and leaves DNS alone when no service uses the device", func() {
			en0.Name = "en7"

			Expect(configurator.Apply(en0, servers("8.8.8.8"))).To(Succeed())
			Expect(runner.RunCallCount()).To(Equal(1))
			Expect(logger.WarnCallCount()).To(Equal(1))
		})

		It("returns command failures", func() {
			runner.RunReturnsOnCall(1, cmdrunner.Result{ExitStatus: 4}, errors.New("fake-err"))

			err := configurator.Apply(en0, servers("8.8.8.8"))
			Expect(err).To(MatchError("Setting DNS servers of service 'Wi-Fi' to [8.8.8.8]: fake-err"))
		})
	})

	Describe("Read", func() {
		It("lists the servers of the service", func() {
			runner.RunReturnsOnCall(1, cmdrunner.Result{Stdout: "1.1.1.1\n1.0.0.1\n"}, nil)

			list, err := configurator.Read(en0)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(Equal(servers("1.1.1.1", "1.0.0.1")))
			Expect(commandLine(runner, 1)).To(Equal([]string{"networksetup", "-getdnsservers", "Wi-Fi"}))
		})

		It("returns an empty list when nothing is configured", func() {
			runner.RunReturnsOnCall(1, cmdrunner.Result{Stdout: "There aren't any DNS Servers set on Wi-Fi.\n"}, nil)

			list, err := configurator.Read(en0)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})
	})

	Describe("Restore", func() {
		It("replays the captured servers", func() {
			Expect(configurator.Restore(en0, servers("1.1.1.1"))).To(Succeed())
			Expect(commandLine(runner, 1)).To(Equal([]string{"networksetup", "-setdnsservers", "Wi-Fi", "1.1.1.1"}))
		})

		It("empties the list when nothing was configured before", func() {
			Expect(configurator.Restore(en0, nil)).To(Succeed())
			Expect(commandLine(runner, 1)).To(Equal([]string{"networksetup", "-setdnsservers", "Wi-Fi", "empty"}))
		})
	})

	It("fails when the hardware ports cannot be listed", func() {
		runner.RunReturnsOnCall(0, cmdrunner.Result{}, errors.New("fake-err"))

		Expect(configurator.Clear(en0)).To(MatchError("Listing hardware ports: fake-err"))
	})
})
