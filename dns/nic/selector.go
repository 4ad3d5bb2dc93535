package nic

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Fetcher

type Fetcher interface {
	Interfaces() ([]Descriptor, error)
}

type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformUnix    Platform = "unix"
)

type Selector struct {
	fetcher Fetcher
	logger  boshlog.Logger
	logTag  string
}

func NewSelector(fetcher Fetcher, logger boshlog.Logger) *Selector {
	return &Selector{
		fetcher: fetcher,
		logger:  logger,
		logTag:  "InterfaceSelector",
	}
}

// SelectActive returns the first interface, in the order the host reports them,
// that the platform heuristic accepts. The interfaces are enumerated again on
// every call.
func (s *Selector) SelectActive(platform Platform) (Descriptor, bool, error) {
	descriptors, err := s.fetcher.Interfaces()
	if err != nil {
		return Descriptor{}, false, bosherr.WrapError(err, "Enumerating network interfaces")
	}

	eligible := UnixEligible
	if platform == PlatformWindows {
		eligible = WindowsEligible
	}

	for _, d := range descriptors {
		s.logger.Debug(s.logTag, "Considering interface %s", d)

		if eligible(d) {
			s.logger.Info(s.logTag, "Selected interface '%s' (%s)", d.Name, d.Description)
			return d, true, nil
		}
	}

	return Descriptor{}, false, nil
}

func WindowsEligible(d Descriptor) bool {
	if d.Status != StatusUp {
		return false
	}

	if d.Kind != KindWireless && d.Kind != KindEthernet {
		return false
	}

	for _, gateway := range d.Gateways {
		if gateway.Unmap().Is4() {
			return true
		}
	}

	return false
}

func UnixEligible(d Descriptor) bool {
	if d.Kind != KindEthernet || d.Status != StatusUp {
		return false
	}

	description := strings.ToLower(d.Description)
	if strings.Contains(description, "virtual") || strings.Contains(description, "loopback") {
		return false
	}

	for _, addr := range d.Unicast {
		if !addr.IsLoopback() {
			return true
		}
	}

	return false
}
