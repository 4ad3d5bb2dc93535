package manager_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"

	"temporary-dns/dns/cmdrunner"
	"temporary-dns/dns/cmdrunner/cmdrunnerfakes"
	"temporary-dns/dns/manager"
	"temporary-dns/dns/nic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeResolved keeps per-link servers the way systemd-resolved would.
type fakeResolved struct {
	links map[string][]string
}

func (r *fakeResolved) run(name string, args ...string) (cmdrunner.Result, error) {
	Expect(name).To(Equal("resolvectl"))

	switch args[0] {
	case "dns":
		if len(args) == 2 {
			return cmdrunner.Result{Stdout: fmt.Sprintf("Link 2 (%s): %s\n", args[1], strings.Join(r.links[args[1]], " "))}, nil
		}
		r.links[args[1]] = args[2:]
	case "revert":
		delete(r.links, args[1])
	}

	return cmdrunner.Result{}, nil
}

func commandLine(runner *cmdrunnerfakes.FakeRunner, i int) []string {
	name, args := runner.RunArgsForCall(i)
	return append([]string{name}, args...)
}

var _ = Describe("ResolvectlConfigurator", func() {
	var (
		runner       *cmdrunnerfakes.FakeRunner
		logger       *loggerfakes.FakeLogger
		configurator manager.DNSConfigurator
		eth0         nic.Descriptor
	)

	BeforeEach(func() {
		runner = &cmdrunnerfakes.FakeRunner{}
		logger = &loggerfakes.FakeLogger{}
		configurator = manager.NewResolvectlConfigurator(runner, false, logger)
		eth0 = nic.Descriptor{Name: "eth0", Description: "eth0", Kind: nic.KindEthernet, Status: nic.StatusUp}
	})

	It("captures the original servers and replays them", func() {
		Expect(configurator.Traits()).To(Equal(manager.Traits{CapturesOriginal: true, Selection: nic.PlatformUnix}))
		Expect(configurator.Platform()).To(Equal("systemd-resolved"))
	})

	Describe("Apply", func() {
		It("sets the servers of the link in order", func() {
			err := configurator.Apply(eth0, servers("9.9.9.9", "149.112.112.112"))
			Expect(err).NotTo(HaveOccurred())

			Expect(runner.RunCallCount()).To(Equal(1))
			Expect(commandLine(runner, 0)).To(Equal([]string{"resolvectl", "dns", "eth0", "9.9.9.9", "149.112.112.112"}))
		})

		It("returns command failures", func() {
			runner.RunReturns(cmdrunner.Result{ExitStatus: 1}, errors.New("fake-exit-err"))

			err := configurator.Apply(eth0, servers("8.8.8.8"))
			Expect(err).To(MatchError("Setting DNS servers of 'eth0' to [8.8.8.8]: fake-exit-err"))
		})

		Context("when cache flushing is enabled", func() {
			BeforeEach(func() {
				configurator = manager.NewResolvectlConfigurator(runner, true, logger)
			})

			It("flushes the caches after applying", func() {
				Expect(configurator.Apply(eth0, servers("8.8.8.8"))).To(Succeed())

				Expect(runner.RunCallCount()).To(Equal(2))
				Expect(commandLine(runner, 1)).To(Equal([]string{"resolvectl", "flush-caches"}))
			})

			It("only warns when flushing fails", func() {
				runner.RunReturnsOnCall(1, cmdrunner.Result{ExitStatus: 1}, errors.New("fake-flush-err"))

				Expect(configurator.Apply(eth0, servers("8.8.8.8"))).To(Succeed())
				Expect(logger.WarnCallCount()).To(Equal(1))
			})
		})
	})

	Describe("Read", func() {
		It("parses the servers of the link", func() {
			runner.RunReturns(cmdrunner.Result{Stdout: "Link 2 (eth0): 1.1.1.1 2606:4700:4700::1111\n"}, nil)

			list, err := configurator.Read(eth0)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(Equal(servers("1.1.1.1", "2606:4700:4700::1111")))
			Expect(commandLine(runner, 0)).To(Equal([]string{"resolvectl", "dns", "eth0"}))
		})

		It("strips server names, zones and ports", func() {
			runner.RunReturns(cmdrunner.Result{Stdout: "Link 2 (eth0): 1.1.1.1#cloudflare-dns.com fe80::1%eth0 9.9.9.9:5353\n"}, nil)

			list, err := configurator.Read(eth0)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(Equal(servers("1.1.1.1", "fe80::1", "9.9.9.9")))
		})

		It("returns an empty list when the link has no servers", func() {
			runner.RunReturns(cmdrunner.Result{Stdout: "Link 2 (eth0):\n"}, nil)

			list, err := configurator.Read(eth0)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("returns command failures", func() {
			runner.RunReturns(cmdrunner.Result{}, errors.New("fake-err"))

			_, err := configurator.Read(eth0)
			Expect(err).To(MatchError("Reading DNS servers of 'eth0': fake-err"))
		})
	})

	Describe("Restore", func() {
		It("replays the captured servers", func() {
			Expect(configurator.Restore(eth0, servers("1.1.1.1"))).To(Succeed())
			Expect(commandLine(runner, 0)).To(Equal([]string{"resolvectl", "dns", "eth0", "1.1.1.1"}))
		})

		It("reverts the link when nothing was configured before", func() {
			Expect(configurator.Restore(eth0, manager.ServerList{})).To(Succeed())
			Expect(commandLine(runner, 0)).To(Equal([]string{"resolvectl", "revert", "eth0"}))
		})
	})

	Describe("Clear", func() {
		It("reverts the link", func() {
			Expect(configurator.Clear(eth0)).To(Succeed())
			Expect(commandLine(runner, 0)).To(Equal([]string{"resolvectl", "revert", "eth0"}))
		})

		It("returns command failures", func() {
			runner.RunReturns(cmdrunner.Result{}, errors.New("fake-err"))
			Expect(configurator.Clear(eth0)).To(MatchError("Reverting DNS settings of 'eth0': fake-err"))
		})
	})

	Context("against a resolver keeping state", func() {
		var resolved *fakeResolved

		BeforeEach(func() {
			resolved = &fakeResolved{links: map[string][]string{"eth0": {"1.1.1.1"}}}
			runner.RunStub = resolved.run
		})

		It("reads back two applied servers in the order they were supplied", func() {
			Expect(configurator.Apply(eth0, servers("9.9.9.9", "149.112.112.112"))).To(Succeed())

			list, err := configurator.Read(eth0)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Strings()).To(Equal([]string{"9.9.9.9", "149.112.112.112"}))
		})

		It("restores what was read before applying", func() {
			original, err := configurator.Read(eth0)
			Expect(err).NotTo(HaveOccurred())

			Expect(configurator.Apply(eth0, servers("8.8.8.8"))).To(Succeed())
			Expect(resolved.links["eth0"]).To(Equal([]string{"8.8.8.8"}))

			Expect(configurator.Restore(eth0, original)).To(Succeed())
			Expect(resolved.links["eth0"]).To(Equal([]string{"1.1.1.1"}))
		})
	})
})
