package main

import (
	"temporary-dns/dns/cmdrunner"
	dnsconfig "temporary-dns/dns/config"
	"temporary-dns/dns/manager"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// The kernel truncates process names to 15 characters.
const resolvedProcessName = "systemd-resolve"

func newDNSConfigurator(runner cmdrunner.Runner, _ boshsys.FileSystem, config dnsconfig.Config, logger boshlog.Logger) manager.DNSConfigurator {
	warnIfResolvedMissing(manager.NewProcessLister(), logger)
	return manager.NewResolvectlConfigurator(runner, config.Resolvectl.FlushCaches, logger)
}

func warnIfResolvedMissing(lister manager.ProcessLister, logger boshlog.Logger) {
	running, err := manager.ProcessRunning(lister, resolvedProcessName)
	if err != nil {
		logger.Debug("main", "Unable to check for systemd-resolved: %s", err.Error())
		return
	}

	if !running {
		logger.Warn("main", "systemd-resolved does not appear to be running, resolvectl is likely to fail")
	}
}
