package main

import (
	"temporary-dns/dns/cmdrunner"
	dnsconfig "temporary-dns/dns/config"
	"temporary-dns/dns/manager"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

func newDNSConfigurator(runner cmdrunner.Runner, fs boshsys.FileSystem, _ dnsconfig.Config, logger boshlog.Logger) manager.DNSConfigurator {
	return manager.NewWindowsConfigurator(runner, fs, logger)
}
