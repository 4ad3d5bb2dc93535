package override

import (
	"errors"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	uuid "github.com/nu7hatch/gouuid"

	"temporary-dns/dns/manager"
	"temporary-dns/dns/nic"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . InterfaceSelector

type InterfaceSelector interface {
	SelectActive(platform nic.Platform) (nic.Descriptor, bool, error)
}

// Overrider changes the DNS servers of the active interface for the lifetime
// of a Session. The DNS configuration is host global state, so only one
// session may be open per host at a time.
type Overrider struct {
	selector     InterfaceSelector
	configurator manager.DNSConfigurator

	logger boshlog.Logger
	logTag string
}

func NewOverrider(selector InterfaceSelector, configurator manager.DNSConfigurator, logger boshlog.Logger) *Overrider {
	return &Overrider{
		selector:     selector,
		configurator: configurator,
		logger:       logger,
		logTag:       "Overrider",
	}
}

// Open applies requested to the active interface. The returned session is
// never nil and is always safe to Revert, including when Open fails: state
// applied before the failure has already been reverted by then.
func (o *Overrider) Open(requested manager.ServerList) (*Session, error) {
	s := &Session{
		configurator: o.configurator,
		logger:       o.logger,
		logTag:       "Session",
	}

	id, err := uuid.NewV4()
	if err != nil {
		return s, bosherr.WrapError(err, "Generating session id")
	}
	s.id = id.String()

	if len(requested) == 0 {
		return s, bosherr.Error("No DNS servers requested")
	}

	traits := o.configurator.Traits()
	platform := o.configurator.Platform()

	iface, found, err := o.selector.SelectActive(traits.Selection)
	if err != nil {
		return s, &SelectionFailure{Platform: platform, Err: err}
	}

	if !found {
		o.logger.Warn(o.logTag, "No active network interface found, DNS will not be overridden")
		return s, nil
	}

	s.iface = &iface

	if traits.CapturesOriginal {
		original, err := o.configurator.Read(iface)
		if err != nil {
			s.iface = nil
			return s, &ConfigurationFault{Platform: platform, Operation: "read", Interface: iface.Name, Err: err}
		}
		s.original = original
		o.logger.Debug(o.logTag, "Captured DNS servers [%s] of '%s'", original, iface.Name)
	}

	s.requested = requested.Truncate(traits.MaxServers)
	if len(s.requested) < len(requested) {
		o.logger.Warn(o.logTag, "%s honours %d DNS server(s), ignoring [%s]", platform, traits.MaxServers, requested[len(s.requested):])
	}

	o.logger.Info(o.logTag, "Setting DNS servers of '%s' to [%s] (session %s)", iface.Name, s.requested, s.id)

	if err := o.configurator.Apply(iface, s.requested); err != nil {
		fault := &ConfigurationFault{Platform: platform, Operation: "apply", Interface: iface.Name, Servers: s.requested, Err: err}

		if revertErr := s.Revert(); revertErr != nil {
			return s, errors.Join(fault, revertErr)
		}
		return s, fault
	}

	return s, nil
}

// WithOverride runs fn while requested is applied and reverts afterwards on
// every path out of fn.
func WithOverride(o *Overrider, requested manager.ServerList, fn func(*Session) error) (err error) {
	session, openErr := o.Open(requested)
	defer func() {
		if revertErr := session.Revert(); revertErr != nil {
			err = errors.Join(err, revertErr)
		}
	}()

	if openErr != nil {
		return openErr
	}

	return fn(session)
}
