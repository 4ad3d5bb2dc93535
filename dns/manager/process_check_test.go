package manager_test

import (
	"errors"

	"temporary-dns/dns/manager"
	"temporary-dns/dns/manager/managerfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProcessRunning", func() {
	var lister *managerfakes.FakeProcessLister

	BeforeEach(func() {
		lister = &managerfakes.FakeProcessLister{}
	})

	It("finds a process by name", func() {
		lister.ProcessNamesReturns([]string{"systemd", "systemd-resolve", "sshd"}, nil)

		running, err := manager.ProcessRunning(lister, "systemd-resolve")
		Expect(err).NotTo(HaveOccurred())
		Expect(running).To(BeTrue())
	})

	It("reports a missing process", func() {
		lister.ProcessNamesReturns([]string{"systemd", "dnsmasq"}, nil)

		running, err := manager.ProcessRunning(lister, "systemd-resolve")
		Expect(err).NotTo(HaveOccurred())
		Expect(running).To(BeFalse())
	})

	It("returns listing errors", func() {
		lister.ProcessNamesReturns(nil, errors.New("fake-err"))

		_, err := manager.ProcessRunning(lister, "systemd-resolve")
		Expect(err).To(MatchError("fake-err"))
	})

	It("lists the processes of this host", func() {
		names, err := manager.NewProcessLister().ProcessNames()
		Expect(err).NotTo(HaveOccurred())
		Expect(names).NotTo(BeEmpty())
	})
})
