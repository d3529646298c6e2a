package dashboard

import (
	"context"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"github.com/matheuskafuri/paknews/internal/logging"
)

// Connectivity reports whether the network is currently reachable.
type Connectivity interface {
	Online() bool
}

// AlwaysOnline is a Connectivity that never reports offline.
type AlwaysOnline struct{}

func (AlwaysOnline) Online() bool { return true }

// Probe tracks connectivity by periodically dialing a TCP address.
// It reports online until the first check says otherwise.
type Probe struct {
	addr     string
	interval time.Duration
	timeout  time.Duration
	dial     func(ctx context.Context, network, addr string) (net.Conn, error)
	logger   *slog.Logger

	online atomic.Bool
}

func NewProbe(addr string, interval time.Duration, logger *slog.Logger) *Probe {
	d := &net.Dialer{}
	p := &Probe{
		addr:     addr,
		interval: interval,
		timeout:  3 * time.Second,
		dial:     d.DialContext,
		logger:   logging.Component(logger, "connectivity"),
	}
	p.online.Store(true)
	return p
}

func (p *Probe) Online() bool { return p.online.Load() }

// Check dials the probe address once and records the outcome.
func (p *Probe) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dial(ctx, "tcp", p.addr)
	online := err == nil
	if conn != nil {
		conn.Close()
	}

	if was := p.online.Swap(online); was != online {
		p.logger.Info("connectivity changed", "online", online, "addr", p.addr)
	}
	return online
}

// Run checks connectivity immediately and then every interval until ctx is done.
func (p *Probe) Run(ctx context.Context) {
	p.Check(ctx)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}
