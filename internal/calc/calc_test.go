package calc

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Divide(84, 2).Value())

	bad := Divide(1, 0)
	require.True(t, bad.IsFailure())
	assert.ErrorIs(t, bad.Err(), ErrDivisionByZero)
	assert.Equal(t, "Division by zero", bad.Err().Error())
	assert.PanicsWithError(t, "Result.Value: result holds no value: Division by zero", func() { bad.Value() })
}

func TestPipeline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		a, b, then  int
		want        int
		wantFailure bool
	}{
		{name: "all steps", a: 84, b: 2, then: 3, want: 28},
		{name: "first divisor zero", a: 84, b: 0, then: 3, wantFailure: true},
		{name: "second divisor zero", a: 84, b: 2, then: 0, wantFailure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := Pipeline(tt.a, tt.b, tt.then, 2)
			if tt.wantFailure {
				assert.ErrorIs(t, out.Err(), ErrDivisionByZero)
				return
			}
			assert.Equal(t, tt.want, out.Value())
		})
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Recover(Divide(84, 0), 0).Value())
	assert.Equal(t, 42, Recover(Divide(84, 2), 0).Value())
}

func TestParseInts(t *testing.T) {
	t.Parallel()

	ok := ParseInts([]string{"84", "2"})
	require.True(t, ok.IsSuccess())
	assert.Equal(t, []int{84, 2}, ok.Value())

	bad := ParseInts([]string{"84", "two"})
	require.True(t, bad.IsFailure())
	assert.ErrorIs(t, bad.Err(), strconv.ErrSyntax)
	assert.Contains(t, bad.Err().Error(), "argument 2")

	empty := ParseInts(nil)
	assert.Empty(t, empty.Value())
}
