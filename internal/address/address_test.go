package address

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "0.0.0.0:8080", Normalize(":8080"))
	require.Equal(t, "localhost:8080", Normalize("localhost:8080"))
}

func TestPort(t *testing.T) {
	require.Equal(t, 8080, Port(&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}))
	require.Equal(t, 0, Port(nil))
}

func TestHost(t *testing.T) {
	require.Equal(t, "127.0.0.1", Host(&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}))
	require.Equal(t, "", Host(nil))
}
