package monitor

import (
	"context"
	"net"
	"time"
)

// Prober checks whether a trailer's onboard unit is reachable.
type Prober interface {
	Probe(ctx context.Context, ipAddress string) error
}

// TCPProber dials the telemetry port of the onboard unit. A completed
// handshake counts as reachable; anything else counts as down.
type TCPProber struct {
	Port    string
	Timeout time.Duration
}

func NewTCPProber(port string, timeout time.Duration) *TCPProber {
	return &TCPProber{Port: port, Timeout: timeout}
}

func (p *TCPProber) Probe(ctx context.Context, ipAddress string) error {
	dialer := net.Dialer{Timeout: p.Timeout}
	addr := net.JoinHostPort(ipAddress, p.Port)

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return conn.Close()
}
