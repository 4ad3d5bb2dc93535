package request

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Getter

type Getter interface {
	GetCustomized(endpoint string, f func(*http.Request)) (*http.Response, error)
}

//counterfeiter:generate . Observer

type Observer interface {
	ObserveRequest(statusCode int, duration time.Duration, err error)
}

type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("Error: %d - %s", e.StatusCode, e.Status)
}

type Runner struct {
	client       Getter
	clock        clock.Clock
	maxBodyBytes int64
	observer     Observer

	logger boshlog.Logger
	logTag string
}

// NewRunner reads at most maxBodyBytes of a response body; zero means no limit.
func NewRunner(client Getter, clock clock.Clock, maxBodyBytes int64, logger boshlog.Logger) *Runner {
	return &Runner{
		client:       client,
		clock:        clock,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
		logTag:       "RequestRunner",
	}
}

func (r *Runner) WithObserver(observer Observer) *Runner {
	r.observer = observer
	return r
}

func (r *Runner) Get(ctx context.Context, url string) (Response, error) {
	startedAt := r.clock.Now()

	response, err := r.get(ctx, url)

	if r.observer != nil {
		r.observer.ObserveRequest(response.StatusCode, r.clock.Since(startedAt), err)
	}

	return response, err
}

func (r *Runner) get(ctx context.Context, url string) (Response, error) {
	httpResponse, err := r.client.GetCustomized(url, func(req *http.Request) {
		*req = *req.WithContext(ctx)
	})
	if err != nil {
		return Response{}, bosherr.WrapErrorf(err, "Requesting '%s'", url)
	}
	defer httpResponse.Body.Close()

	response := Response{
		StatusCode: httpResponse.StatusCode,
		Status:     reason(httpResponse),
	}

	response.Body, err = r.readBody(httpResponse.Body)
	if err != nil {
		return response, bosherr.WrapErrorf(err, "Reading response body of '%s'", url)
	}

	r.logger.Debug(r.logTag, "Received %d (%d bytes) from '%s'", response.StatusCode, len(response.Body), url)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return response, StatusError{StatusCode: response.StatusCode, Status: response.Status}
	}

	return response, nil
}

func (r *Runner) readBody(body io.Reader) ([]byte, error) {
	if r.maxBodyBytes <= 0 {
		return io.ReadAll(body)
	}

	bytes, err := io.ReadAll(io.LimitReader(body, r.maxBodyBytes+1))
	if err != nil {
		return nil, err
	}

	if int64(len(bytes)) > r.maxBodyBytes {
		return nil, bosherr.Errorf("Body exceeds %d bytes", r.maxBodyBytes)
	}

	return bytes, nil
}

func reason(response *http.Response) string {
	status := strings.TrimPrefix(response.Status, strconv.Itoa(response.StatusCode))
	status = strings.TrimSpace(status)
	if status == "" {
		return http.StatusText(response.StatusCode)
	}
	return status
}
