package router

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wisp-web/wisp/http"
)

func nopHandler(*http.Request) *http.Response {
	return http.NewResponse()
}

func TestRegister(t *testing.T) {
	t.Run("alias must be rooted", func(t *testing.T) {
		registry := New()

		require.ErrorIs(t, registry.Register("", nopHandler), ErrBadAlias)
		require.ErrorIs(t, registry.Register("store", nopHandler), ErrBadAlias)
		require.ErrorIs(t, registry.Register("/store/", nopHandler), ErrBadAlias)
	})

	t.Run("duplicate alias", func(t *testing.T) {
		registry := New()

		require.NoError(t, registry.Register("/store", nopHandler))
		require.ErrorIs(t, registry.Register("/store", nopHandler), ErrAliasOccupied)
	})

	t.Run("unregister", func(t *testing.T) {
		registry := New()

		require.NoError(t, registry.Register("/store", nopHandler))
		require.NoError(t, registry.Unregister("/store"))
		require.ErrorIs(t, registry.Unregister("/store"), ErrUnknownAlias)

		_, found := registry.Resolve("/store")
		require.False(t, found)
	})
}

func TestResolve(t *testing.T) {
	registry := New()
	require.NoError(t, registry.Register("/", nopHandler))
	require.NoError(t, registry.Register("/store", nopHandler))
	require.NoError(t, registry.Register("/store/books", nopHandler))

	t.Run("longest alias wins", func(t *testing.T) {
		alias, found := registry.Resolve("/store/books/war-and-peace")
		require.True(t, found)
		require.Equal(t, "/store/books", alias)
	})

	t.Run("exact match", func(t *testing.T) {
		alias, found := registry.Resolve("/store")
		require.True(t, found)
		require.Equal(t, "/store", alias)
	})

	t.Run("prefix must end at a segment boundary", func(t *testing.T) {
		alias, found := registry.Resolve("/storefront")
		require.True(t, found)
		require.Equal(t, "/", alias)
	})

	t.Run("root catches everything", func(t *testing.T) {
		alias, found := registry.Resolve("/anything/else")
		require.True(t, found)
		require.Equal(t, "/", alias)
	})

	t.Run("no registrations at all", func(t *testing.T) {
		_, found := New().Resolve("/anything")
		require.False(t, found)
	})
}

func TestLookup(t *testing.T) {
	registry := New()
	marker := 0
	require.NoError(t, registry.Register("/store", func(*http.Request) *http.Response {
		marker++
		return http.NewResponse()
	}))

	handler, found := registry.Lookup("/store/books")
	require.True(t, found)

	handler(nil)
	require.Equal(t, 1, marker)

	_, found = registry.Lookup("/elsewhere")
	require.False(t, found)
}
