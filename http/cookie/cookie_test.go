package cookie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("two cookies", func(t *testing.T) {
		cookies := Parse("a=1; b=2")

		require.Equal(t, []Cookie{New("a", "1"), New("b", "2")}, cookies)
	})

	t.Run("malformed segment is skipped", func(t *testing.T) {
		cookies := Parse("a=1; bad; b=2")

		require.Equal(t, []Cookie{New("a", "1"), New("b", "2")}, cookies)
	})

	t.Run("segment with two equality signs is skipped", func(t *testing.T) {
		cookies := Parse("a=1=2; b=2")

		require.Equal(t, []Cookie{New("b", "2")}, cookies)
	})

	t.Run("value-less segment is skipped", func(t *testing.T) {
		cookies := Parse("a=; b=2")

		require.Equal(t, []Cookie{New("b", "2")}, cookies)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		cookies := Parse("  a = 1 ;b=2")

		require.Equal(t, []Cookie{New("a", "1"), New("b", "2")}, cookies)
	})

	t.Run("nothing valid still yields a non-nil slice", func(t *testing.T) {
		cookies := Parse("complete garbage")

		require.NotNil(t, cookies)
		require.Empty(t, cookies)
	})
}
