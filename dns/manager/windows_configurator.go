package manager

import (
	"path/filepath"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"temporary-dns/dns/cmdrunner"
	"temporary-dns/dns/nic"
)

const noMatchingAdapter = "NO_MATCHING_ADAPTER"

const adapterLookup = `
function Find-Adapter($description) {
  [array]$adapters = Get-WmiObject Win32_NetworkAdapterConfiguration | Where { $_.IPEnabled -AND $_.Description -eq $description }
  if ($adapters.Count -eq 0) {
    [Console]::Out.WriteLine("NO_MATCHING_ADAPTER")
    Exit 0
  }
  if ($adapters.Count -gt 1) {
    throw "$($adapters.Count) IP-enabled adapters are described as '$description'"
  }
  return $adapters[0]
}
`

const listDNSServers = `
param ($Description = $(throw "Description parameter is required."))

$ErrorActionPreference = "Stop"
` + adapterLookup + `
try {
  $adapter = Find-Adapter $Description
  $adapter.DNSServerSearchOrder
} catch {
  $Host.UI.WriteErrorLine($_.Exception.Message)
  Exit 1
}
Exit 0
`

const setDNSServer = `
param (
  $Description = $(throw "Description parameter is required."),
  $DNSAddress = $(throw "DNSAddress parameter is required.")
)

$ErrorActionPreference = "Stop"
` + adapterLookup + `
try {
  $adapter = Find-Adapter $Description
  $result = $adapter.SetDNSServerSearchOrder(@($DNSAddress))
  if ($result.ReturnValue -ne 0) {
    throw "SetDNSServerSearchOrder returned $($result.ReturnValue)"
  }
} catch {
  $Host.UI.WriteErrorLine($_.Exception.Message)
  Exit 1
}
Exit 0
`

const resetDNSServers = `
param ($Description = $(throw "Description parameter is required."))

$ErrorActionPreference = "Stop"
` + adapterLookup + `
try {
  $adapter = Find-Adapter $Description
  $result = $adapter.SetDNSServerSearchOrder()
  if ($result.ReturnValue -ne 0) {
    throw "SetDNSServerSearchOrder returned $($result.ReturnValue)"
  }
} catch {
  $Host.UI.WriteErrorLine($_.Exception.Message)
  Exit 1
}
Exit 0
`

type windowsConfigurator struct {
	runner cmdrunner.Runner
	fs     boshsys.FileSystem

	logger boshlog.Logger
	logTag string
}

// NewWindowsConfigurator configures adapters through WMI. Only the first server
// of a list is applied and reverting always resets the adapter to DHCP
// assigned servers, so a previously static configuration is not restored.
func NewWindowsConfigurator(runner cmdrunner.Runner, fs boshsys.FileSystem, logger boshlog.Logger) DNSConfigurator {
	return &windowsConfigurator{
		runner: runner,
		fs:     fs,
		logger: logger,
		logTag: "WindowsConfigurator",
	}
}

func (c *windowsConfigurator) Platform() string {
	return "windows"
}

func (c *windowsConfigurator) Traits() Traits {
	return Traits{CapturesOriginal: false, MaxServers: 1, Selection: nic.PlatformWindows}
}

func (c *windowsConfigurator) Read(iface nic.Descriptor) (ServerList, error) {
	stdout, err := c.runScript("list-dns-servers", listDNSServers, iface.Description)
	if err != nil {
		return nil, err
	}

	if c.noMatch(stdout, iface) {
		return ServerList{}, nil
	}

	return parseReportedServers(strings.Split(stdout, "\r\n")), nil
}

func (c *windowsConfigurator) Apply(iface nic.Descriptor, servers ServerList) error {
	server, ok := servers.First()
	if !ok {
		return bosherr.Error("No DNS server to apply")
	}

	stdout, err := c.runScript("set-dns-server", setDNSServer, iface.Description, server.String())
	if err != nil {
		return err
	}

	c.noMatch(stdout, iface)
	return nil
}

func (c *windowsConfigurator) Clear(iface nic.Descriptor) error {
	stdout, err := c.runScript("reset-dns-servers", resetDNSServers, iface.Description)
	if err != nil {
		return err
	}

	c.noMatch(stdout, iface)
	return nil
}

func (c *windowsConfigurator) Restore(iface nic.Descriptor, _ ServerList) error {
	return c.Clear(iface)
}

func (c *windowsConfigurator) noMatch(stdout string, iface nic.Descriptor) bool {
	if strings.TrimSpace(stdout) != noMatchingAdapter {
		return false
	}

	c.logger.Warn(c.logTag, "No IP-enabled adapter is described as '%s', leaving DNS untouched", iface.Description)
	return true
}

func (c *windowsConfigurator) runScript(name, contents string, args ...string) (string, error) {
	scriptName, err := c.writeScript(name, contents)
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Creating %s.ps1", name)
	}
	defer c.fs.RemoveAll(filepath.Dir(scriptName))

	psArgs := append([]string{"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-File", scriptName}, args...)

	result, err := c.runner.Run("powershell.exe", psArgs...)
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Executing %s.ps1", name)
	}

	return strings.TrimRight(result.Stdout, "\r\n"), nil
}

func (c *windowsConfigurator) writeScript(name, contents string) (string, error) {
	dir, err := c.fs.TempDir(name)
	if err != nil {
		return "", err
	}

	scriptName := filepath.Join(dir, name+".ps1")
	err = c.fs.WriteFileString(scriptName, contents)
	if err != nil {
		return "", err
	}

	err = c.fs.Chmod(scriptName, 0700)
	if err != nil {
		return "", err
	}

	return scriptName, nil
}
