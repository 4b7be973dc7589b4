package services

import (
	"context"
	"net"
	"time"
)

type ConnectivityChecker interface {
	Online(ctx context.Context) bool
}

// DialChecker reports the network as up when a TCP connection to Address
// can be opened within Timeout.
type DialChecker struct {
	Address string
	Timeout time.Duration
}

func NewDialChecker() *DialChecker {
	return &DialChecker{
		Address: GetEnv("GENAI_PROBE_ADDRESS", "generativelanguage.googleapis.com:443"),
		Timeout: 3 * time.Second,
	}
}

func (d *DialChecker) Online(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: d.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", d.Address)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
