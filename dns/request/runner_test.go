package request_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/onsi/gomega/ghttp"

	"temporary-dns/dns/request"
	"temporary-dns/dns/request/requestfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Runner", func() {
	var (
		server   *ghttp.Server
		clock    *fakeclock.FakeClock
		logger   boshlog.Logger
		observer *requestfakes.FakeObserver
		runner   *request.Runner
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		clock = fakeclock.NewFakeClock(time.Now())
		logger = boshlog.NewLogger(boshlog.LevelNone)
		observer = &requestfakes.FakeObserver{}

		client, err := request.NewClient("", 5*time.Second, logger)
		Expect(err).NotTo(HaveOccurred())

		runner = request.NewRunner(client, clock, 16, logger).WithObserver(observer)
	})

	AfterEach(func() {
		server.Close()
	})

	It("returns the body of a successful response", func() {
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest("GET", "/hello"),
			ghttp.RespondWith(http.StatusOK, "hi there"),
		))

		response, err := runner.Get(context.Background(), server.URL()+"/hello")
		Expect(err).NotTo(HaveOccurred())
		Expect(response.StatusCode).To(Equal(http.StatusOK))
		Expect(response.Status).To(Equal("OK"))
		Expect(string(response.Body)).To(Equal("hi there"))

		Expect(observer.ObserveRequestCallCount()).To(Equal(1))
		statusCode, _, observedErr := observer.ObserveRequestArgsForCall(0)
		Expect(statusCode).To(Equal(http.StatusOK))
		Expect(observedErr).NotTo(HaveOccurred())
	})

	It("reports a non-2xx response with its code and reason", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound, "nope"))

		response, err := runner.Get(context.Background(), server.URL())
		Expect(err).To(MatchError("Error: 404 - Not Found"))

		var statusErr request.StatusError
		Expect(errors.As(err, &statusErr)).To(BeTrue())
		Expect(statusErr.StatusCode).To(Equal(http.StatusNotFound))
		Expect(response.StatusCode).To(Equal(http.StatusNotFound))
		Expect(string(response.Body)).To(Equal("nope"))
	})

	It("refuses bodies larger than the limit", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "0123456789abcdefX"))

		_, err := runner.Get(context.Background(), server.URL())
		Expect(err).To(MatchError(ContainSubstring("Body exceeds 16 bytes")))
	})

	It("accepts a body of exactly the limit", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "0123456789abcdef"))

		response, err := runner.Get(context.Background(), server.URL())
		Expect(err).NotTo(HaveOccurred())
		Expect(response.Body).To(HaveLen(16))
	})

	It("wraps transport failures", func() {
		url := server.URL()
		server.Close()

		_, err := runner.Get(context.Background(), url)
		Expect(err).To(MatchError(ContainSubstring("Requesting '" + url + "'")))
		Expect(errors.As(err, new(request.StatusError))).To(BeFalse())

		Expect(observer.ObserveRequestCallCount()).To(Equal(1))
		statusCode, _, observedErr := observer.ObserveRequestArgsForCall(0)
		Expect(statusCode).To(Equal(0))
		Expect(observedErr).To(HaveOccurred())
	})

	It("abandons the request when the context is cancelled", func() {
		release := make(chan struct{})
		defer close(release)
		server.AppendHandlers(func(w http.ResponseWriter, r *http.Request) {
			<-release
		})

		ctx, cancel := context.WithCancel(context.Background())
		errs := make(chan error, 1)
		go func() {
			_, err := runner.Get(ctx, server.URL())
			errs <- err
		}()

		Consistently(errs, 100*time.Millisecond).ShouldNot(Receive())
		cancel()

		var err error
		Eventually(errs).Should(Receive(&err))
		Expect(err).To(MatchError(ContainSubstring("context canceled")))
	})

	It("times the request with the clock", func() {
		getter := &requestfakes.FakeGetter{}
		getter.GetCustomizedStub = func(string, func(*http.Request)) (*http.Response, error) {
			clock.Increment(3 * time.Second)
			return nil, errors.New("boom")
		}

		_, err := request.NewRunner(getter, clock, 0, logger).WithObserver(observer).Get(context.Background(), "http://example.com")
		Expect(err).To(MatchError("Requesting 'http://example.com': boom"))

		_, duration, _ := observer.ObserveRequestArgsForCall(0)
		Expect(duration).To(Equal(3 * time.Second))
	})

	It("attaches the context to the outgoing request", func() {
		getter := &requestfakes.FakeGetter{}
		getter.GetCustomizedReturns(nil, errors.New("boom"))

		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "marker")
		_, _ = request.NewRunner(getter, clock, 0, logger).Get(ctx, "http://example.com")

		_, customize := getter.GetCustomizedArgsForCall(0)
		req, err := http.NewRequest("GET", "http://example.com", nil)
		Expect(err).NotTo(HaveOccurred())
		customize(req)
		Expect(req.Context().Value(key{})).To(Equal("marker"))
	})
})

var _ = Describe("NewClient", func() {
	var logger boshlog.Logger

	BeforeEach(func() {
		logger = boshlog.NewLogger(boshlog.LevelNone)
	})

	It("fails when the CA file is missing", func() {
		_, err := request.NewClient("/does/not/exist.pem", time.Second, logger)
		Expect(err).To(MatchError(ContainSubstring("Reading CA file '/does/not/exist.pem'")))
	})

	It("fails when the CA file has no certificates", func() {
		caFile := filepath.Join(GinkgoT().TempDir(), "ca.pem")
		Expect(os.WriteFile(caFile, []byte("not a cert"), 0600)).To(Succeed())

		_, err := request.NewClient(caFile, time.Second, logger)
		Expect(err).To(MatchError("No certificates found in CA file '" + caFile + "'"))
	})

	It("trusts the given CA", func() {
		server := ghttp.NewTLSServer()
		defer server.Close()
		server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "secure"))

		caFile := filepath.Join(GinkgoT().TempDir(), "ca.pem")
		Expect(os.WriteFile(caFile, serverCertPEM(server), 0600)).To(Succeed())

		client, err := request.NewClient(caFile, time.Second, logger)
		Expect(err).NotTo(HaveOccurred())

		response, err := request.NewRunner(client, fakeclock.NewFakeClock(time.Now()), 0, logger).Get(context.Background(), server.URL())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(response.Body)).To(Equal("secure"))
	})
})
