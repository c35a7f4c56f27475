package address

import (
	"net"
	"strconv"
	"strings"
)

const DefaultAddr = "0.0.0.0"

// Normalize prepends the default interface to port-only addresses like ":8080".
func Normalize(addr string) string {
	if len(stripPort(addr)) == 0 {
		return DefaultAddr + addr
	}

	return addr
}

// Port extracts the port number from an address, or 0 if there isn't one.
func Port(addr net.Addr) int {
	if addr == nil {
		return 0
	}

	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.Port
	}

	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return 0
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return 0
	}

	return n
}

// Host extracts the host part of an address.
func Host(addr net.Addr) string {
	if addr == nil {
		return ""
	}

	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}

	return stripPort(addr.String())
}

func stripPort(addr string) string {
	colon := strings.IndexByte(addr, ':')
	if colon != -1 {
		return addr[:colon]
	}

	return addr
}
