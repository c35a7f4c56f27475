package qparams

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wisp-web/wisp/http/status"
	"github.com/wisp-web/wisp/kv"
)

func parse(t *testing.T, data string) *kv.Storage {
	into := kv.New()
	require.NoError(t, Parse(data, into))

	return into
}

func TestParse(t *testing.T) {
	t.Run("plain pairs", func(t *testing.T) {
		params := parse(t, "home=Cosby&flavor=flies")

		require.Equal(t, "Cosby", params.Value("home"))
		require.Equal(t, "flies", params.Value("flavor"))
	})

	t.Run("keys are decoded", func(t *testing.T) {
		params := parse(t, "favorite+flavor=flies&na%20me=value")

		require.Equal(t, "flies", params.Value("favorite flavor"))
		require.Equal(t, "value", params.Value("na me"))
	})

	// values deliberately stay encoded while keys don't. The asymmetry is
	// inherited contract and must not be "fixed" silently.
	t.Run("values are trimmed but not decoded", func(t *testing.T) {
		params := parse(t, "key= a%20b ")

		require.Equal(t, "a%20b", params.Value("key"))
	})

	t.Run("malformed segments are discarded", func(t *testing.T) {
		params := parse(t, "flag&a=&b=1=2&ok=yes")

		require.Equal(t, 1, params.Len())
		require.Equal(t, "yes", params.Value("ok"))
	})

	t.Run("later pairs shadow earlier ones", func(t *testing.T) {
		params := parse(t, "a=1&a=2")

		require.Equal(t, "2", params.Value("a"))
		require.Equal(t, 1, params.Len())
	})

	t.Run("broken key encoding fails the whole parse", func(t *testing.T) {
		into := kv.New()
		err := Parse("ok=yes&%zz=1", into)

		require.ErrorIs(t, err, status.ErrURLDecoding)
	})
}
