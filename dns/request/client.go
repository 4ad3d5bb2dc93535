package request

import (
	"crypto/x509"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/tlsconfig"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/cloudfoundry/bosh-utils/httpclient"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

// NewClient builds the HTTP client used for the request. An empty caFile
// trusts the system roots.
func NewClient(caFile string, timeout time.Duration, logger boshlog.Logger) (*httpclient.HTTPClient, error) {
	var clientOptions []tlsconfig.ClientOption

	if caFile != "" {
		caCert, err := os.ReadFile(caFile)
		if err != nil {
			return nil, bosherr.WrapErrorf(err, "Reading CA file '%s'", caFile)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, bosherr.Errorf("No certificates found in CA file '%s'", caFile)
		}

		clientOptions = append(clientOptions, tlsconfig.WithAuthority(caCertPool))
	}

	tlsConfig, err := tlsconfig.Build(
		tlsconfig.WithExternalServiceDefaults(),
	).Client(clientOptions...)
	if err != nil {
		return nil, bosherr.WrapError(err, "Building TLS config")
	}

	transport := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: tlsConfig,
		// The override is torn down right after the request, so a pooled
		// connection resolved through it would never be reused.
		DisableKeepAlives: true,
	}
	client := &http.Client{Transport: transport}
	client.Timeout = timeout

	return httpclient.NewHTTPClient(
		client,
		logger,
	), nil
}
