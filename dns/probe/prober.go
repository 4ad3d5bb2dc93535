package probe

import (
	"errors"
	"net"
	"sync"
	"time"

	"code.cloudfoundry.org/workpool"
	"github.com/coredns/coredns/plugin/pkg/parse"
	"github.com/miekg/dns"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"temporary-dns/dns/manager"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Exchanger

type Exchanger interface {
	Exchange(m *dns.Msg, address string) (*dns.Msg, time.Duration, error)
}

//counterfeiter:generate . Observer

type Observer interface {
	ObserveProbe(server string, rtt time.Duration, err error)
}

// Prober asks every requested server to resolve a host before the override is
// applied, so an unreachable server is reported instead of breaking name
// resolution for the whole host.
type Prober struct {
	exchanger Exchanger
	workers   int
	port      string
	observer  Observer

	logger boshlog.Logger
	logTag string
}

func NewClient(timeout time.Duration) *dns.Client {
	return &dns.Client{Net: "udp", Timeout: timeout}
}

// NewProber queries port on every server; an empty port means 53.
func NewProber(exchanger Exchanger, workers int, port string, logger boshlog.Logger) *Prober {
	if workers < 1 {
		workers = 1
	}

	return &Prober{
		exchanger: exchanger,
		workers:   workers,
		port:      port,
		logger:    logger,
		logTag:    "Prober",
	}
}

func (p *Prober) WithObserver(observer Observer) *Prober {
	p.observer = observer
	return p
}

func (p *Prober) Probe(servers manager.ServerList, host string) error {
	targets, err := p.targets(servers)
	if err != nil {
		return err
	}

	wp, err := workpool.NewWorkPool(p.workers)
	if err != nil {
		return bosherr.WrapError(err, "Creating probe work pool")
	}
	defer wp.Stop()

	errs := make([]error, len(targets))
	wg := sync.WaitGroup{}

	for i, target := range targets {
		i, target := i, target
		wg.Add(1)

		wp.Submit(func() {
			defer wg.Done()
			errs[i] = p.query(target, host)
		})
	}

	wg.Wait()

	return errors.Join(errs...)
}

func (p *Prober) targets(servers manager.ServerList) ([]string, error) {
	addresses := servers.Strings()
	if p.port != "" {
		for i, address := range addresses {
			addresses[i] = net.JoinHostPort(address, p.port)
		}
	}

	targets, err := parse.HostPortOrFile(addresses...)
	if err != nil {
		return nil, bosherr.WrapError(err, "Parsing probe targets")
	}

	return targets, nil
}

func (p *Prober) query(target, host string) error {
	m := &dns.Msg{}
	m.SetQuestion(dns.Fqdn(host), dns.TypeA)

	response, rtt, err := p.exchanger.Exchange(m, target)
	if err == nil && response.Rcode != dns.RcodeSuccess {
		err = bosherr.Errorf("answered %s", dns.RcodeToString[response.Rcode])
	}

	if p.observer != nil {
		p.observer.ObserveProbe(target, rtt, err)
	}

	if err != nil {
		return bosherr.WrapErrorf(err, "Probing DNS server %s for '%s'", target, host)
	}

	p.logger.Debug(p.logTag, "DNS server %s resolved '%s' in %s", target, host, rtt)
	return nil
}
