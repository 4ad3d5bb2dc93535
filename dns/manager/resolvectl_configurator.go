package manager

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"temporary-dns/dns/cmdrunner"
	"temporary-dns/dns/nic"
)

type resolvectlConfigurator struct {
	runner      cmdrunner.Runner
	flushCaches bool

	logger boshlog.Logger
	logTag string
}

// NewResolvectlConfigurator drives systemd-resolved per-link settings.
func NewResolvectlConfigurator(runner cmdrunner.Runner, flushCaches bool, logger boshlog.Logger) DNSConfigurator {
	return &resolvectlConfigurator{
		runner:      runner,
		flushCaches: flushCaches,
		logger:      logger,
		logTag:      "ResolvectlConfigurator",
	}
}

func (c *resolvectlConfigurator) Platform() string {
	return "systemd-resolved"
}

func (c *resolvectlConfigurator) Traits() Traits {
	return Traits{CapturesOriginal: true, Selection: nic.PlatformUnix}
}

func (c *resolvectlConfigurator) Read(iface nic.Descriptor) (ServerList, error) {
	result, err := c.runner.Run("resolvectl", "dns", iface.Name)
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Reading DNS servers of '%s'", iface.Name)
	}

	// Link 2 (eth0): 1.1.1.1 2606:4700:4700::1111
	for _, line := range strings.Split(result.Stdout, "\n") {
		_, servers, found := strings.Cut(line, "):")
		if !found {
			continue
		}
		return parseReportedServers(strings.Fields(servers)), nil
	}

	return ServerList{}, nil
}

func (c *resolvectlConfigurator) Apply(iface nic.Descriptor, servers ServerList) error {
	if err := c.setServers(iface, servers); err != nil {
		return err
	}

	c.flush()
	return nil
}

func (c *resolvectlConfigurator) Restore(iface nic.Descriptor, original ServerList) error {
	if len(original) == 0 {
		return c.Clear(iface)
	}

	if err := c.setServers(iface, original); err != nil {
		return err
	}

	c.flush()
	return nil
}

func (c *resolvectlConfigurator) Clear(iface nic.Descriptor) error {
	_, err := c.runner.Run("resolvectl", "revert", iface.Name)
	if err != nil {
		return bosherr.WrapErrorf(err, "Reverting DNS settings of '%s'", iface.Name)
	}

	c.flush()
	return nil
}

func (c *resolvectlConfigurator) setServers(iface nic.Descriptor, servers ServerList) error {
	args := append([]string{"dns", iface.Name}, servers.Strings()...)

	_, err := c.runner.Run("resolvectl", args...)
	if err != nil {
		return bosherr.WrapErrorf(err, "Setting DNS servers of '%s' to [%s]", iface.Name, servers)
	}

	return nil
}

func (c *resolvectlConfigurator) flush() {
	if !c.flushCaches {
		return
	}

	if _, err := c.runner.Run("resolvectl", "flush-caches"); err != nil {
		c.logger.Warn(c.logTag, "Flushing resolver caches: %s", err.Error())
	}
}
