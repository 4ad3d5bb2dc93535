package override

import (
	"fmt"

	"temporary-dns/dns/manager"
)

// SelectionFailure means the host interfaces could not be enumerated. Finding
// no eligible interface is not a failure.
type SelectionFailure struct {
	Platform string
	Err      error
}

func (e *SelectionFailure) Error() string {
	return fmt.Sprintf("Selecting the active interface on %s: %s", e.Platform, e.Err)
}

func (e *SelectionFailure) Unwrap() error {
	return e.Err
}

// ConfigurationFault means the platform refused a read, apply, restore or
// clear of DNS servers.
type ConfigurationFault struct {
	Platform  string
	Operation string
	Interface string
	Servers   manager.ServerList
	Err       error
}

func (e *ConfigurationFault) Error() string {
	return fmt.Sprintf("Configuring DNS on %s (%s [%s] on '%s'): %s", e.Platform, e.Operation, e.Servers, e.Interface, e.Err)
}

func (e *ConfigurationFault) Unwrap() error {
	return e.Err
}
