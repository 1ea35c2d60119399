package fixed_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/calebcase/unmoving/fixed"
)

const iterations = 1000

// randomFloat returns a float in [FractionalMin, FractionalMax].
func randomFloat(rng *rand.Rand) float64 {
	return fixed.FractionalMin + rng.Float64()*(fixed.FractionalMax-fixed.FractionalMin)
}

func randomFixed(rng *rand.Rand) fixed.Fixed {
	return fixed.FromRaw(int32(rng.Uint32()))
}

func TestConstants(t *testing.T) {
	require.Equal(t, 12, fixed.FractionBits)
	require.Equal(t, 19, fixed.DecimalBits)
	require.Equal(t, 4096, fixed.Scale)
	require.Equal(t, 1.0/4096, fixed.Precision)
	require.Equal(t, 1.0/8192, fixed.Accuracy)
	require.Equal(t, 524287, fixed.DecimalMax)
	require.Equal(t, -524288, fixed.DecimalMin)

	require.Equal(t, fixed.FractionalMax, fixed.Max.Float64())
	require.Equal(t, float64(fixed.FractionalMin), fixed.Min.Float64())
	require.Equal(t, int32(4096), fixed.One.Raw())
	require.Equal(t, int32(0), fixed.Zero.Raw())

	var zero fixed.Fixed
	require.Equal(t, fixed.Zero, zero)
}

func TestFromRaw(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, raw := range []int32{0, 1, -1, 4096, math.MaxInt32, math.MinInt32} {
		require.Equal(t, raw, fixed.FromRaw(raw).Raw())
	}

	for i := 0; i < iterations; i++ {
		raw := int32(rng.Uint32())
		require.Equal(t, raw, fixed.FromRaw(raw).Raw())
	}
}

func TestFromInteger(t *testing.T) {
	type TC struct {
		Input  int
		Output int32
		Mark   error
	}

	tcs := []TC{
		{Input: 0, Output: 0, Mark: oops.New("unexpected")},
		{Input: 1, Output: 4096, Mark: oops.New("unexpected")},
		{Input: -1, Output: -4096, Mark: oops.New("unexpected")},
		{Input: 6, Output: 24576, Mark: oops.New("unexpected")},
		{Input: fixed.DecimalMax, Output: 524287 * 4096, Mark: oops.New("unexpected")},
		{Input: fixed.DecimalMin, Output: math.MinInt32, Mark: oops.New("unexpected")},
		// Out of range values wrap.
		{Input: fixed.DecimalMax + 1, Output: math.MinInt32, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.Input), func(t *testing.T) {
			f := fixed.FromInteger(tc.Input)
			require.Equal(t, tc.Output, f.Raw(), tc.Mark)
		})
	}

	rng := rand.New(rand.NewSource(2))

	for i := 0; i < iterations; i++ {
		n := fixed.DecimalMin + rng.Intn(fixed.DecimalMax-fixed.DecimalMin+1)

		f := fixed.FromInteger(n)
		require.Equal(t, int32(n), f.ToInteger())
		require.Equal(t, float64(n), f.Float64())
	}
}

func TestFromFloat(t *testing.T) {
	type TC struct {
		Input  float64
		Output int32
		Mark   error
	}

	tcs := []TC{
		{Input: 0, Output: 0, Mark: oops.New("unexpected")},
		{Input: 1, Output: 4096, Mark: oops.New("unexpected")},
		{Input: 1.23, Output: 5038, Mark: oops.New("unexpected")},
		{Input: 1.5, Output: 6144, Mark: oops.New("unexpected")},
		{Input: -0.25, Output: -1024, Mark: oops.New("unexpected")},
		{Input: fixed.Precision, Output: 1, Mark: oops.New("unexpected")},
		{Input: -fixed.Precision, Output: -1, Mark: oops.New("unexpected")},
		{Input: 0.5 / 4096, Output: 1, Mark: oops.New("unexpected")},
		{Input: -0.5 / 4096, Output: -1, Mark: oops.New("unexpected")},
		{Input: 1.5 / 4096, Output: 2, Mark: oops.New("unexpected")},
		{Input: -1.5 / 4096, Output: -2, Mark: oops.New("unexpected")},
		{Input: 0.49 / 4096, Output: 0, Mark: oops.New("unexpected")},
		{Input: -0.49 / 4096, Output: 0, Mark: oops.New("unexpected")},
		{Input: -0.7 / 4096, Output: -1, Mark: oops.New("unexpected")},
		{Input: 0.7 / 4096, Output: 1, Mark: oops.New("unexpected")},
		{Input: fixed.FractionalMax, Output: math.MaxInt32, Mark: oops.New("unexpected")},
		{Input: fixed.FractionalMin, Output: math.MinInt32, Mark: oops.New("unexpected")},
		// Out of range values wrap.
		{Input: fixed.DecimalMax + 1, Output: math.MinInt32, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%g", i, tc.Input), func(t *testing.T) {
			f := fixed.FromFloat(tc.Input)
			require.Equal(t, tc.Output, f.Raw(), tc.Mark)
		})
	}

	rng := rand.New(rand.NewSource(3))

	for i := 0; i < iterations; i++ {
		v := randomFloat(rng)

		f := fixed.FromFloat(v)
		if math.Abs(f.Float64()-v) > fixed.Accuracy {
			t.Logf("Fixed: %s\n", spew.Sdump(f))
		}

		require.InDelta(t, v, f.Float64(), fixed.Accuracy)
	}
}

func TestFromFloatOf(t *testing.T) {
	require.Equal(t, fixed.FromRaw(6144), fixed.FromFloatOf(float32(1.5)))
	require.Equal(t, fixed.FromRaw(-1024), fixed.FromFloatOf(-0.25))
	require.Equal(t, fixed.FromFloat(1.23), fixed.FromFloatOf(1.23))
}

func TestFloat(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < iterations; i++ {
		f := randomFixed(rng)

		// Every value is exact as a float64.
		require.Equal(t, f, fixed.FromFloat(f.Float64()))
		require.InDelta(t, f.Float64(), float64(f.Float32()), math.Abs(f.Float64())*1e-7+fixed.Accuracy)
	}

	require.Equal(t, float32(1.5), fixed.FromRaw(6144).Float32())
}

func TestToInteger(t *testing.T) {
	type TC struct {
		Input  fixed.Fixed
		Output int32
		Mark   error
	}

	tcs := []TC{
		{Input: fixed.Zero, Output: 0, Mark: oops.New("unexpected")},
		{Input: fixed.FromRaw(1), Output: 0, Mark: oops.New("unexpected")},
		{Input: fixed.FromRaw(-1), Output: 0, Mark: oops.New("unexpected")},
		{Input: fixed.FromFloat(2.75), Output: 2, Mark: oops.New("unexpected")},
		{Input: fixed.FromFloat(-1.5), Output: -1, Mark: oops.New("unexpected")},
		{Input: fixed.FromFloat(-2.75), Output: -2, Mark: oops.New("unexpected")},
		{Input: fixed.Max, Output: fixed.DecimalMax, Mark: oops.New("unexpected")},
		{Input: fixed.Min, Output: fixed.DecimalMin, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			require.Equal(t, tc.Output, tc.Input.ToInteger(), tc.Mark)
		})
	}
}
