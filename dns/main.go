package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	flags "github.com/jessevdk/go-flags"

	"temporary-dns/dns/cmdrunner"
	dnsconfig "temporary-dns/dns/config"
	"temporary-dns/dns/manager"
	"temporary-dns/dns/metrics"
	"temporary-dns/dns/nic"
	"temporary-dns/dns/override"
	"temporary-dns/dns/probe"
	"temporary-dns/dns/request"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const usageLine = "Please provide required data example: temporary-dns <dns-server> <url>"

type options struct {
	Config      string `long:"config" value-name:"PATH" description:"JSON or YAML config file"`
	LogLevel    string `long:"log-level" value-name:"LEVEL" description:"DEBUG, INFO, WARN, ERROR or NONE (overrides the config file)"`
	Probe       bool   `long:"probe" description:"Query every DNS server before applying the override"`
	MetricsFile string `long:"metrics-file" value-name:"PATH" description:"Write run metrics to a Prometheus textfile"`

	Args struct {
		DNSServer string `positional-arg-name:"dns-server" description:"DNS server address, or a comma-separated list"`
		URL       string `positional-arg-name:"url" description:"URL to request while the override is applied"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(mainExitCode(os.Args[1:], os.Stdout, os.Stderr))
}

func mainExitCode(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "temporary-dns"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	if opts.Args.DNSServer == "" || opts.Args.URL == "" {
		fmt.Fprintln(stdout, usageLine)
		parser.WriteHelp(stdout)
		return 2
	}

	config, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Loading config: %s\n", err.Error())
		return 1
	}

	level, _ := config.GetLogLevel()
	logger := boshlog.NewAsyncWriterLogger(level, stderr)
	if config.UseRFC3339Formatting() {
		logger.UseRFC3339Timestamps()
	}
	logTag := "main"
	defer logger.FlushTimeout(5 * time.Second)

	servers, err := manager.ParseServerList(opts.Args.DNSServer)
	if err != nil {
		logger.Error(logTag, err.Error())
		return 2
	}

	metricsFile := config.Metrics.Textfile
	if opts.MetricsFile != "" {
		metricsFile = opts.MetricsFile
	}

	recorder := metrics.NewRecorder(logger)
	defer func() {
		recorder.LogSummary()
		if metricsFile == "" {
			return
		}
		if err := recorder.WriteTextfile(metricsFile); err != nil {
			logger.Error(logTag, err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	realClock := clock.NewClock()
	fs := boshsys.NewOsFileSystem(logger)
	runner := cmdrunner.NewRunner(
		cmdrunner.NewProcessStarter(boshsys.NewExecCmdRunner(logger)),
		realClock,
		time.Duration(config.CommandTimeout),
		time.Duration(config.CommandKillGracePeriod),
		logger,
	).WithObserver(recorder)

	configurator := newDNSConfigurator(runner, fs, config, logger)
	selector := nic.NewSelector(nic.NewFetcher(), logger)
	overrider := override.NewOverrider(selector, configurator, logger)

	if opts.Probe || config.Probe.Enabled {
		if err := probeServers(servers, opts.Args.URL, config, recorder, logger); err != nil {
			logger.Error(logTag, "DNS servers failed the probe, leaving DNS untouched: %s", err.Error())
			return 1
		}
	}

	httpClient, err := request.NewClient(config.Request.CAFile, time.Duration(config.Request.Timeout), logger)
	if err != nil {
		logger.Error(logTag, err.Error())
		return 1
	}
	requestRunner := request.NewRunner(httpClient, realClock, config.Request.MaxBodyBytes, logger).WithObserver(recorder)

	return requestWithOverride(ctx, overrider, requestRunner, recorder, servers, opts.Args.URL, stdout, logger)
}

func loadConfig(opts options) (dnsconfig.Config, error) {
	config := dnsconfig.NewDefaultConfig()

	if opts.Config != "" {
		var err error
		config, err = dnsconfig.LoadFromFile(opts.Config)
		if err != nil {
			return dnsconfig.Config{}, err
		}
	}

	if opts.LogLevel != "" {
		config.LogLevel = opts.LogLevel
		if _, err := config.GetLogLevel(); err != nil {
			return dnsconfig.Config{}, err
		}
	}

	return config, nil
}

func probeServers(servers manager.ServerList, rawURL string, config dnsconfig.Config, recorder *metrics.Recorder, logger boshlog.Logger) error {
	host := config.Probe.Host
	if host == "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return err
		}
		host = u.Hostname()
	}

	if _, err := netip.ParseAddr(host); err == nil || host == "" {
		logger.Info("main", "Nothing to resolve in '%s', skipping the probe", rawURL)
		return nil
	}

	prober := probe.NewProber(
		probe.NewClient(time.Duration(config.Probe.Timeout)),
		config.Probe.Workers,
		config.Probe.Port,
		logger,
	).WithObserver(recorder)

	return prober.Probe(servers, host)
}
