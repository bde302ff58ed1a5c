package errs

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"syscall"
)

var transientSignatures = []string{
	"timed out",
	"timeout",
	"econnrefused",
	"connection refused",
	"enotfound",
	"no such host",
	"etimedout",
	"econnreset",
	"connection reset",
	"eai_again",
	"ehostunreach",
	"enetunreach",
	"network is unreachable",
	"broken pipe",
	"server closed the connection",
	"failed to connect",
	"too many connections",
}

// IsUnavailable reports whether err looks like an unreachable database or
// network peer rather than a problem with the request itself.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
