package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairs_Bindings tests building substitution maps from named pairs.
func TestPairs_Bindings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pairs []Pair[int64]
		want  map[string]int64
	}{
		{
			name:  "no pairs yields empty bindings",
			pairs: nil,
			want:  map[string]int64{},
		},
		{
			name:  "single pair",
			pairs: []Pair[int64]{P("x", int64(4))},
			want:  map[string]int64{"x": 4},
		},
		{
			name: "multiple distinct pairs",
			pairs: []Pair[int64]{
				P("x", int64(4)),
				P("y", int64(2)),
				P("rate", int64(100)),
			},
			want: map[string]int64{"x": 4, "y": 2, "rate": 100},
		},
		{
			name: "keys may look numeric",
			pairs: []Pair[int64]{
				P("0", int64(7)),
				P("1", int64(3)),
			},
			want: map[string]int64{"0": 7, "1": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := Pairs(tt.pairs...)
			require.NotNil(t, provider)

			bindings, err := provider.Bindings()
			require.NoError(t, err)
			assert.Equal(t, tt.want, bindings)
		})
	}
}

// TestPairs_DuplicateKey tests that a repeated key fails instead of
// silently picking a winner.
func TestPairs_DuplicateKey(t *testing.T) {
	t.Parallel()

	provider := Pairs(
		P("x", int64(1)),
		P("y", int64(2)),
		P("x", int64(3)),
	)

	bindings, err := provider.Bindings()
	require.Error(t, err)
	assert.Nil(t, bindings, "no bindings should be returned on failure")
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), `"x"`, "error should name the duplicated key")
}

// TestPairs_EmptyKey tests that the empty string is rejected as a key.
func TestPairs_EmptyKey(t *testing.T) {
	t.Parallel()

	provider := Pairs(P("", int64(1)))

	_, err := provider.Bindings()
	assert.ErrorIs(t, err, ErrEmptyKey)
}

// TestPairs_FreshMapPerCall tests that callers mutating one result
// cannot affect the next evaluation.
func TestPairs_FreshMapPerCall(t *testing.T) {
	t.Parallel()

	provider := Pairs(P("x", int64(4)))

	first, err := provider.Bindings()
	require.NoError(t, err)
	first["injected"] = 99

	second, err := provider.Bindings()
	require.NoError(t, err)
	assert.NotContains(t, second, "injected",
		"modifications to a returned map should not leak into later calls")
}
