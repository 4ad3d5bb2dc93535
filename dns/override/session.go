package override

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"temporary-dns/dns/manager"
	"temporary-dns/dns/nic"
)

// Session is one applied override. Revert must not be called concurrently.
type Session struct {
	id        string
	iface     *nic.Descriptor
	original  manager.ServerList
	requested manager.ServerList
	reverted  bool
	revertErr error

	configurator manager.DNSConfigurator
	logger       boshlog.Logger
	logTag       string
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Interface() (nic.Descriptor, bool) {
	if s.iface == nil {
		return nic.Descriptor{}, false
	}
	return *s.iface, true
}

// Original is nil where the platform does not capture servers before applying.
func (s *Session) Original() manager.ServerList {
	return s.original
}

func (s *Session) Requested() manager.ServerList {
	return s.requested
}

func (s *Session) Reverted() bool {
	return s.reverted
}

// NoOp reports whether the session never touched any interface.
func (s *Session) NoOp() bool {
	return s.iface == nil
}

// RevertErr is the outcome of the first Revert, which may have run inside Open.
func (s *Session) RevertErr() error {
	return s.revertErr
}

// Revert puts back the captured servers, or clears the override where nothing
// was captured. Only the first call does anything; a failed attempt is not
// retried.
func (s *Session) Revert() error {
	if s.reverted {
		return nil
	}
	s.reverted = true

	s.revertErr = s.revert()
	return s.revertErr
}

func (s *Session) revert() error {
	if s.iface == nil {
		return nil
	}

	iface := *s.iface
	traits := s.configurator.Traits()

	if traits.CapturesOriginal && len(s.original) > 0 {
		s.logger.Info(s.logTag, "Restoring DNS servers of '%s' to [%s] (session %s)", iface.Name, s.original, s.id)

		if err := s.configurator.Restore(iface, s.original); err != nil {
			return &ConfigurationFault{Platform: s.configurator.Platform(), Operation: "restore", Interface: iface.Name, Servers: s.original, Err: err}
		}
		return nil
	}

	s.logger.Info(s.logTag, "Clearing DNS servers of '%s' (session %s)", iface.Name, s.id)

	if err := s.configurator.Clear(iface); err != nil {
		return &ConfigurationFault{Platform: s.configurator.Platform(), Operation: "clear", Interface: iface.Name, Err: err}
	}
	return nil
}
