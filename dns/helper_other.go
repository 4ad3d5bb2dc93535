//go:build !linux && !darwin && !windows

package main

import (
	"temporary-dns/dns/cmdrunner"
	dnsconfig "temporary-dns/dns/config"
	"temporary-dns/dns/manager"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

func newDNSConfigurator(runner cmdrunner.Runner, _ boshsys.FileSystem, config dnsconfig.Config, logger boshlog.Logger) manager.DNSConfigurator {
	return manager.NewResolvectlConfigurator(runner, config.Resolvectl.FlushCaches, logger)
}
