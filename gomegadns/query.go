package gomegadns

import (
	"fmt"

	"github.com/miekg/dns"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// BeQueryFor matches a *dns.Msg carrying a single question for name and qtype.
func BeQueryFor(name string, qtype uint16) types.GomegaMatcher {
	return &queryMatcher{name: dns.Fqdn(name), qtype: qtype}
}

type queryMatcher struct {
	name  string
	qtype uint16
}

func (matcher *queryMatcher) Match(actual interface{}) (success bool, err error) {
	msg, ok := actual.(*dns.Msg)
	if !ok {
		return false, fmt.Errorf("BeQueryFor matcher expects a *dns.Msg")
	}

	if msg.Response || len(msg.Question) != 1 {
		return false, nil
	}

	q := msg.Question[0]
	return q.Name == matcher.name && q.Qtype == matcher.qtype && q.Qclass == dns.ClassINET, nil
}

func (matcher *queryMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%+v\nto be a query for %s %s", actual, matcher.name, dns.TypeToString[matcher.qtype])
}

func (matcher *queryMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%+v\nnot to be a query for %s %s", actual, matcher.name, dns.TypeToString[matcher.qtype])
}

// HaveFlags matches a *dns.Msg whose header flags are exactly the given ones,
// named as dig prints them.
func HaveFlags(flags ...string) types.GomegaMatcher {
	return &flagsMatcher{expected: flags}
}

type flagsMatcher struct {
	expected []string
}

func (matcher *flagsMatcher) Match(actual interface{}) (success bool, err error) {
	msg, ok := actual.(*dns.Msg)
	if !ok {
		return false, fmt.Errorf("HaveFlags matcher expects a *dns.Msg")
	}

	return gomega.ConsistOf(matcher.expected).Match(setFlags(msg))
}

func (matcher *flagsMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected flags %v to be %v", setFlags(actual.(*dns.Msg)), matcher.expected)
}

func (matcher *flagsMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected flags %v not to be %v", setFlags(actual.(*dns.Msg)), matcher.expected)
}

func setFlags(m *dns.Msg) []string {
	header := []struct {
		name string
		set  bool
	}{
		{"qr", m.Response},
		{"aa", m.Authoritative},
		{"tc", m.Truncated},
		{"rd", m.RecursionDesired},
		{"ra", m.RecursionAvailable},
		{"z", m.Zero},
		{"ad", m.AuthenticatedData},
		{"cd", m.CheckingDisabled},
	}

	set := []string{}
	for _, flag := range header {
		if flag.set {
			set = append(set, flag.name)
		}
	}
	return set
}
