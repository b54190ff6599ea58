package dnsinfo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

// ErrNotFound is returned when the resolver answers authoritatively that
// no record exists. Not-found is final; it is never retried.
var ErrNotFound = errors.New("no DNS record found")

const (
	defaultTimeout  = 3 * time.Second
	defaultAttempts = 3
	defaultMaxDelay = 2 * time.Second
)

// ReverseLookupFunc resolves an address literal to hostnames. It matches
// the shape of net.Resolver.LookupAddr.
type ReverseLookupFunc func(ctx context.Context, addr string) ([]string, error)

// ForwardLookupFunc resolves a hostname to address literals. It matches
// the shape of net.Resolver.LookupHost.
type ForwardLookupFunc func(ctx context.Context, host string) ([]string, error)

// Client performs retried, timeout-bounded lookups. The zero value is not
// usable; construct with New.
type Client struct {
	timeout  time.Duration
	attempts uint
	reverse  ReverseLookupFunc
	forward  ForwardLookupFunc
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each lookup attempt. Values below or at zero keep
// the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithAttempts sets how many times a transient failure is tried. Zero
// keeps the default.
func WithAttempts(attempts uint) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
	}
}

// WithReverseLookup swaps the reverse resolver, mainly for tests.
func WithReverseLookup(fn ReverseLookupFunc) Option {
	return func(c *Client) {
		if fn != nil {
			c.reverse = fn
		}
	}
}

// WithForwardLookup swaps the forward resolver, mainly for tests.
func WithForwardLookup(fn ForwardLookupFunc) Option {
	return func(c *Client) {
		if fn != nil {
			c.forward = fn
		}
	}
}

// New builds a Client backed by net.DefaultResolver.
func New(opts ...Option) *Client {
	c := &Client{
		timeout:  defaultTimeout,
		attempts: defaultAttempts,
		reverse:  net.DefaultResolver.LookupAddr,
		forward:  net.DefaultResolver.LookupHost,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ReverseLookup returns the hostnames registered for ip, with trailing
// dots trimmed. An address with no PTR record returns ErrNotFound.
func (c *Client) ReverseLookup(ctx context.Context, ip netip.Addr) ([]string, error) {
	if !ip.IsValid() {
		return nil, fmt.Errorf("%w: invalid address", ErrNotFound)
	}

	var names []string

	err := c.do(ctx, func(ctx context.Context) error {
		found, err := c.reverse(ctx, ip.String())
		if err != nil {
			return err
		}
		names = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reverse lookup for %s: %w", ip, err)
	}

	for i, name := range names {
		names[i] = strings.TrimSuffix(name, ".")
	}

	return names, nil
}

// ForwardLookup returns the addresses registered for host.
func (c *Client) ForwardLookup(ctx context.Context, host string) ([]netip.Addr, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, fmt.Errorf("%w: empty hostname", ErrNotFound)
	}

	var literals []string

	err := c.do(ctx, func(ctx context.Context) error {
		found, err := c.forward(ctx, host)
		if err != nil {
			return err
		}
		literals = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("forward lookup for %s: %w", host, err)
	}

	addrs := make([]netip.Addr, 0, len(literals))
	for _, literal := range literals {
		addr, err := netip.ParseAddr(literal)
		if err != nil {
			continue
		}
		addrs = append(addrs, addr)
	}

	return addrs, nil
}

// do runs one lookup under the retry policy. Authoritative not-found
// answers and context cancellation abort the retry loop immediately.
func (c *Client) do(ctx context.Context, lookup func(ctx context.Context) error) error {
	notFound := false

	err := retry.Do(
		func() error {
			attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			err := lookup(attemptCtx)
			if err == nil {
				return nil
			}

			var dnsErr *net.DNSError
			if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
				notFound = true
				return retry.Unrecoverable(err)
			}

			return err
		},
		retry.Attempts(c.attempts),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(defaultMaxDelay),
		retry.MaxJitter(100*time.Millisecond),
		retry.Context(ctx),
	)
	if err == nil {
		return nil
	}

	if notFound {
		return ErrNotFound
	}

	return err
}
