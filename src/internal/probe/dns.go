package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/miekg/dns"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
)

// DNSChecker sends an A query over UDP and treats a NOERROR reply as reachable.
type DNSChecker struct {
	server string
	name   string
	client *dns.Client
}

// NewDNSChecker creates a DNS check that resolves name at server (host:port).
func NewDNSChecker(server, name string, timeout time.Duration) *DNSChecker {
	return &DNSChecker{
		server: server,
		name:   dns.Fqdn(name),
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
	}
}

func (c *DNSChecker) IsReachable(ctx context.Context) (bool, error) {
	req := new(dns.Msg)
	req.SetQuestion(c.name, dns.TypeA)
	req.RecursionDesired = true

	resp, rtt, err := c.client.ExchangeContext(ctx, req, c.server)
	if err != nil {
		return false, errors.NewProbeError(fmt.Sprintf("query %s failed", c.name), err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return false, errors.NewProbeError(
			fmt.Sprintf("query %s answered %s", c.name, dns.RcodeToString[resp.Rcode]), nil)
	}

	log.Debugf("[%04x] %s answered %s in %v", req.Id, c.server, c.name, rtt)
	return true, nil
}

func (c *DNSChecker) Target() string {
	return "udp://" + c.server + " " + c.name
}
