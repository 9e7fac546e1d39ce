package polygon_test

import (
	"testing"

	"github.com/katalvlaran/ngon/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew constructs a polygon or fails the test immediately.
func mustNew(t *testing.T, n int, radius float64) *polygon.Polygon {
	t.Helper()
	p, err := polygon.New(n, radius)
	require.NoError(t, err, "New(%d, %v)", n, radius)

	return p
}

// TestEqual verifies (n, R) equality, including the same-n different-R case
// and graceful rejection of foreign types.
func TestEqual(t *testing.T) {
	a := mustNew(t, 15, 100)
	b := mustNew(t, 15, 100)
	c := mustNew(t, 15, 10)
	d := mustNew(t, 16, 100)

	assert.True(t, a.Equal(b), "same n, same R")
	assert.True(t, a.Equal(a), "reflexive")
	assert.False(t, a.Equal(c), "same n, different R")
	assert.False(t, a.Equal(d), "different n, same R")
	assert.False(t, a.Equal("pentagon"), "foreign type is unequal, not an error")
	assert.False(t, a.Equal(nil), "nil is unequal")
	assert.False(t, a.Equal((*polygon.Polygon)(nil)), "typed nil is unequal")
}

// TestCompare verifies ordering by vertex count alone, irrespective of radius.
func TestCompare(t *testing.T) {
	small := mustNew(t, 3, 10)
	big := mustNew(t, 10, 10)
	bigger := mustNew(t, 15, 1)

	got, err := big.Compare(small)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "10-gon > triangle")

	got, err = big.Compare(bigger)
	require.NoError(t, err)
	assert.Equal(t, -1, got, "10-gon < 15-gon even with larger radius")

	got, err = big.Compare(mustNew(t, 10, 999))
	require.NoError(t, err)
	assert.Equal(t, 0, got, "radius is irrelevant to ordering")
}

// TestCompare_UnsupportedType ensures ordering refuses non-Polygon values.
func TestCompare_UnsupportedType(t *testing.T) {
	p := mustNew(t, 5, 1)
	for _, other := range []any{42, "square", 3.14, nil, []int{3}} {
		_, err := p.Compare(other)
		assert.ErrorIs(t, err, polygon.ErrUnsupportedComparison,
			"Compare(%T) must refuse", other)
	}
}

// TestLessGreater checks the concrete-typed ordering helpers against the
// same vertex-count-only rule.
func TestLessGreater(t *testing.T) {
	small := mustNew(t, 3, 10)
	big := mustNew(t, 10, 10)

	assert.True(t, big.Greater(small), "Polygon(10,10) > Polygon(3,10)")
	assert.True(t, small.Less(big), "Polygon(3,10) < Polygon(10,10)")
	assert.False(t, big.Less(small))
	assert.False(t, small.Greater(big))
	assert.False(t, big.Less(mustNew(t, 10, 1)), "equal n is neither less nor greater")
}
