package manager

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"temporary-dns/dns/cmdrunner"
	"temporary-dns/dns/nic"
)

type networksetupConfigurator struct {
	runner cmdrunner.Runner

	logger boshlog.Logger
	logTag string
}

// NewNetworksetupConfigurator configures the network service bound to an
// interface with macOS networksetup.
func NewNetworksetupConfigurator(runner cmdrunner.Runner, logger boshlog.Logger) DNSConfigurator {
	return &networksetupConfigurator{
		runner: runner,
		logger: logger,
		logTag: "NetworksetupConfigurator",
	}
}

func (c *networksetupConfigurator) Platform() string {
	return "networksetup"
}

func (c *networksetupConfigurator) Traits() Traits {
	return Traits{CapturesOriginal: true, Selection: nic.PlatformUnix}
}

func (c *networksetupConfigurator) Read(iface nic.Descriptor) (ServerList, error) {
	service, found, err := c.service(iface)
	if err != nil || !found {
		return ServerList{}, err
	}

	result, err := c.runner.Run("networksetup", "-getdnsservers", service)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Reading DNS servers of service '%s'", service)
	}

	if strings.Contains(result.Stdout, "There aren't any DNS Servers") {
		return ServerList{}, nil
	}

	return parseReportedServers(strings.Fields(result.Stdout)), nil
}

func (c *networksetupConfigurator) Apply(iface nic.Descriptor, servers ServerList) error {
	return c.setServers(iface, servers.Strings())
}

func (c *networksetupConfigurator) Restore(iface nic.Descriptor, original ServerList) error {
	if len(original) == 0 {
		return c.Clear(iface)
	}
	return c.setServers(iface, original.Strings())
}

func (c *networksetupConfigurator) Clear(iface nic.Descriptor) error {
	return c.setServers(iface, []string{"empty"})
}

func (c *networksetupConfigurator) setServers(iface nic.Descriptor, servers []string) error {
	service, found, err := c.service(iface)
	if err != nil || !found {
		return err
	}

	args := append([]string{"-setdnsservers", service}, servers...)
	_, err = c.runner.Run("networksetup", args...)
	if err != nil {
		return bosherr.WrapErrorf(err, "Setting DNS servers of service '%s' to [%s]", service, strings.Join(servers, ", "))
	}

	return nil
}

// service maps a device such as en0 to its network service name.
func (c *networksetupConfigurator) service(iface nic.Descriptor) (string, bool, error) {
	result, err := c.runner.Run("networksetup", "-listallhardwareports")
	if err != nil {
		return "", false, bosherr.WrapError(err, "Listing hardware ports")
	}

	var port string
	for _, line := range strings.Split(result.Stdout, "\n") {
		line = strings.TrimSpace(line)

		if name, ok := strings.CutPrefix(line, "Hardware Port:"); ok {
			port = strings.TrimSpace(name)
			continue
		}

		if device, ok := strings.CutPrefix(line, "Device:"); ok && strings.TrimSpace(device) == iface.Name && port != "" {
			return port, true, nil
		}
	}

	c.logger.Warn(c.logTag, "No network service uses device '%s', leaving DNS untouched", iface.Name)
	return "", false, nil
}
