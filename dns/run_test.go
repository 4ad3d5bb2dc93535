package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/cloudfoundry/bosh-utils/logger/loggerfakes"
	"github.com/onsi/gomega/ghttp"

	"temporary-dns/dns/manager"
	"temporary-dns/dns/manager/managerfakes"
	"temporary-dns/dns/metrics"
	"temporary-dns/dns/nic"
	"temporary-dns/dns/override"
	"temporary-dns/dns/override/overridefakes"
	"temporary-dns/dns/request"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("requestWithOverride", func() {
	var (
		server       *ghttp.Server
		selector     *overridefakes.FakeInterfaceSelector
		configurator *managerfakes.FakeDNSConfigurator
		logger       *loggerfakes.FakeLogger
		stdout       *bytes.Buffer

		overrider     *override.Overrider
		requestRunner *request.Runner
		recorder      *metrics.Recorder
		servers       manager.ServerList
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		selector = &overridefakes.FakeInterfaceSelector{}
		configurator = &managerfakes.FakeDNSConfigurator{}
		logger = &loggerfakes.FakeLogger{}
		stdout = &bytes.Buffer{}

		selector.SelectActiveReturns(nic.Descriptor{Name: "eth0", Kind: nic.KindEthernet, Status: nic.StatusUp}, true, nil)
		configurator.PlatformReturns("systemd-resolved")
		configurator.TraitsReturns(manager.Traits{CapturesOriginal: true, Selection: nic.PlatformUnix})
		configurator.ReadReturns(manager.ServerList{netip.MustParseAddr("1.1.1.1")}, nil)

		overrider = override.NewOverrider(selector, configurator, logger)

		client, err := request.NewClient("", 5*time.Second, logger)
		Expect(err).NotTo(HaveOccurred())
		recorder = metrics.NewRecorder(logger)
		requestRunner = request.NewRunner(client, clock.NewClock(), 1024, logger).WithObserver(recorder)

		servers = manager.ServerList{netip.MustParseAddr("8.8.8.8")}
	})

	AfterEach(func() {
		server.Close()
	})

	run := func() int {
		return requestWithOverride(context.Background(), overrider, requestRunner, recorder, servers, server.URL()+"/hello", stdout, logger)
	}

	errorMessages := func() []string {
		var messages []string
		for i := 0; i < logger.ErrorCallCount(); i++ {
			_, msg, args := logger.ErrorArgsForCall(i)
			messages = append(messages, fmt.Sprintf(msg, args...))
		}
		return messages
	}

	It("prints the body of a 2xx response and reverts", func() {
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest("GET", "/hello"),
			ghttp.RespondWith(http.StatusOK, "hi there"),
		))

		Expect(run()).To(Equal(0))

		Expect(stdout.String()).To(Equal(
			"Requesting " + server.URL() + "/hello with DNS 8.8.8.8\n" +
				"hi there\n" +
				"DNS Settings Reverted\n",
		))
		Expect(configurator.ApplyCallCount()).To(Equal(1))
		Expect(configurator.RestoreCallCount()).To(Equal(1))
		_, restored := configurator.RestoreArgsForCall(0)
		Expect(restored).To(Equal(manager.ServerList{netip.MustParseAddr("1.1.1.1")}))
	})

	It("prints the status of a non-2xx response, reverts and exits 1", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound, "nope"))

		Expect(run()).To(Equal(1))

		Expect(stdout.String()).To(ContainSubstring("Error: 404 - Not Found\n"))
		Expect(stdout.String()).NotTo(ContainSubstring("nope"))
		Expect(stdout.String()).To(HaveSuffix("DNS Settings Reverted\n"))
		Expect(configurator.RestoreCallCount()).To(Equal(1))
	})

	It("skips the request when the override cannot be applied", func() {
		configurator.ApplyReturns(errors.New("fake-apply-err"))

		Expect(run()).To(Equal(1))

		Expect(server.ReceivedRequests()).To(BeEmpty())
		Expect(configurator.RestoreCallCount()).To(Equal(1))
		Expect(stdout.String()).To(HaveSuffix("DNS Settings Reverted\n"))
		Expect(errorMessages()).To(ContainElement(ContainSubstring("fake-apply-err")))
	})

	It("exits 1 and warns when reverting fails", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "hi there"))
		configurator.RestoreReturns(errors.New("fake-restore-err"))

		Expect(run()).To(Equal(1))

		Expect(stdout.String()).To(ContainSubstring("hi there\n"))
		Expect(stdout.String()).NotTo(ContainSubstring("DNS Settings Reverted"))
		Expect(errorMessages()).To(ContainElement(SatisfyAll(
			ContainSubstring("DNS may still be overridden"),
			ContainSubstring("fake-restore-err"),
		)))
	})

	It("does not claim a revert when applying and reverting both fail", func() {
		configurator.ApplyReturns(errors.New("fake-apply-err"))
		configurator.RestoreReturns(errors.New("fake-restore-err"))

		Expect(run()).To(Equal(1))

		Expect(server.ReceivedRequests()).To(BeEmpty())
		Expect(configurator.RestoreCallCount()).To(Equal(1))
		Expect(stdout.String()).NotTo(ContainSubstring("DNS Settings Reverted"))
		Expect(errorMessages()).To(ContainElement(ContainSubstring("DNS may still be overridden")))
	})

	Context("when no interface was overridden", func() {
		It("reports the settings as unchanged without an active interface", func() {
			selector.SelectActiveReturns(nic.Descriptor{}, false, nil)
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "hi there"))

			Expect(run()).To(Equal(0))

			Expect(configurator.ApplyCallCount()).To(Equal(0))
			Expect(stdout.String()).To(HaveSuffix("hi there\nDNS Settings Unchanged\n"))
			Expect(stdout.String()).NotTo(ContainSubstring("DNS Settings Reverted"))
		})

		It("requests without an override when interface selection fails", func() {
			selector.SelectActiveReturns(nic.Descriptor{}, false, errors.New("fake-select-err"))
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "hi there"))

			Expect(run()).To(Equal(0))

			Expect(server.ReceivedRequests()).To(HaveLen(1))
			Expect(stdout.String()).To(HaveSuffix("hi there\nDNS Settings Unchanged\n"))
			Expect(logger.WarnCallCount()).To(BeNumerically(">", 0))
		})

		It("reports the settings as unchanged when the original servers cannot be read", func() {
			configurator.ReadReturns(nil, errors.New("fake-read-err"))

			Expect(run()).To(Equal(1))

			Expect(server.ReceivedRequests()).To(BeEmpty())
			Expect(configurator.ApplyCallCount()).To(Equal(0))
			Expect(configurator.RestoreCallCount()).To(Equal(0))
			Expect(configurator.ClearCallCount()).To(Equal(0))
			Expect(stdout.String()).To(HaveSuffix("DNS Settings Unchanged\n"))
			Expect(stdout.String()).NotTo(ContainSubstring("DNS Settings Reverted"))
		})
	})
})
