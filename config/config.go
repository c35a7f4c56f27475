package config

import "time"

type (
	Headers struct {
		// Prealloc is the number of header table seats allocated upfront.
		Prealloc int
	}

	Params struct {
		// Prealloc is the number of parameter storage seats allocated upfront.
		Prealloc int
	}

	NET struct {
		// ReadBufferSize is the size of the buffer used to read from the socket.
		ReadBufferSize int
		// MaxLineSize limits the length of a single request-line or header line.
		// Longer lines abort the connection.
		MaxLineSize int
		// WriteBufferPrealloc is the initial capacity of the response buffer.
		WriteBufferPrealloc int
		// ReadTimeout bounds how long a single read against the connection may
		// block. The parser itself carries no timeouts; this deadline, applied
		// by the connection owner, is the only protection against a stalled peer.
		ReadTimeout time.Duration
	}
)

type Config struct {
	Headers Headers
	Params  Params
	NET     NET
}

func Default() *Config {
	return &Config{
		Headers: Headers{
			Prealloc: 16,
		},
		Params: Params{
			Prealloc: 8,
		},
		NET: NET{
			ReadBufferSize:      4096,
			MaxLineSize:         16 * 1024,
			WriteBufferPrealloc: 1024,
			ReadTimeout:         90 * time.Second,
		},
	}
}
