package decimal

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/calebcase/unmoving/fixed"
)

func TestText(t *testing.T) {
	type TC struct {
		Input  fixed.Fixed
		Output string
		Mark   error
	}

	tcs := []TC{
		{Input: fixed.Zero, Output: "0", Mark: oops.New("unexpected")},
		{Input: fixed.One, Output: "1", Mark: oops.New("unexpected")},
		{Input: fixed.FromRaw(1), Output: "0.000244140625", Mark: oops.New("unexpected")},
		{Input: fixed.FromRaw(-1), Output: "-0.000244140625", Mark: oops.New("unexpected")},
		{Input: fixed.FromFloat(1.5), Output: "1.5", Mark: oops.New("unexpected")},
		{Input: fixed.FromFloat(-0.25), Output: "-0.25", Mark: oops.New("unexpected")},
		{Input: fixed.FromFloat(1.23), Output: "1.22998046875", Mark: oops.New("unexpected")},
		{Input: fixed.Max, Output: "524287.999755859375", Mark: oops.New("unexpected")},
		{Input: fixed.Min, Output: "-524288", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Output), func(t *testing.T) {
			require.Equal(t, tc.Output, Text(tc.Input), tc.Mark)
			require.Equal(t, tc.Output, FromFixed(tc.Input).String(), tc.Mark)
			require.Equal(t, 0, FromFixed(tc.Input).Cmp(decimal.MustParse(tc.Output)), tc.Mark)
		})
	}
}

func TestToFixed(t *testing.T) {
	type TC struct {
		Input  string
		Output int32
		Mark   error
	}

	tcs := []TC{
		{Input: "0", Output: 0, Mark: oops.New("unexpected")},
		{Input: "1.23", Output: 5038, Mark: oops.New("unexpected")},
		{Input: "-0.25", Output: -1024, Mark: oops.New("unexpected")},
		{Input: "1.500", Output: 6144, Mark: oops.New("unexpected")},
		{Input: "0.00012207031250", Output: 1, Mark: oops.New("unexpected")},
		{Input: "-0.00012207031250", Output: -1, Mark: oops.New("unexpected")},
		{Input: "0.0001220703124", Output: 0, Mark: oops.New("unexpected")},
		{Input: "524287.999755859375", Output: 2147483647, Mark: oops.New("unexpected")},
		{Input: "-524288", Output: -2147483648, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			f, err := ToFixed(decimal.MustParse(tc.Input))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, f.Raw(), tc.Mark)
		})
	}
}

func TestToFixedRange(t *testing.T) {
	for _, input := range []string{"524288", "524287.9999", "-524288.0002", "123456789012345678"} {
		t.Run(input, func(t *testing.T) {
			_, err := ToFixed(decimal.MustParse(input))
			require.Error(t, err)
			require.True(t, Error.Has(err))

			require.Panics(t, func() {
				MustToFixed(decimal.MustParse(input))
			})
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		f := fixed.FromRaw(int32(rng.Uint32()))

		d := FromFixed(f)
		require.Equal(t, f.Raw() < 0, d.IsNeg())

		g, err := ToFixed(d)
		require.NoError(t, err)
		require.Equal(t, f, g, d.String())

		// The six digit text agrees with the exact value.
		h, err := fixed.ParseDecimal(d.String())
		require.NoError(t, err)
		require.Equal(t, f, h)
	}
}
