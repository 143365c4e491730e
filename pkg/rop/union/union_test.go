package union

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quit struct{}

type move struct{ X, Y int }

type write struct{ Text string }

type read struct{ Callback func() }

type message = Of4[quit, move, write, read]

var messages = Declare4[quit, move, write, read]()

func sample() []message {
	return []message{
		messages.Alt0(quit{}),
		messages.Alt1(move{X: 1, Y: 2}),
		messages.Alt2(write{Text: "hello"}),
		messages.Alt3(read{Callback: func() {}}),
	}
}

func TestConstruct_SetsDiscriminant(t *testing.T) {
	t.Parallel()

	for i, m := range sample() {
		assert.Equal(t, i, m.Index())
		assert.Equal(t, 4, m.Arity())
	}
}

func TestHolds_ExactlyOneAlternative(t *testing.T) {
	t.Parallel()

	for _, m := range sample() {
		held := []bool{
			Holds[quit](m),
			Holds[move](m),
			Holds[write](m),
			Holds[read](m),
		}
		count := 0
		for i, h := range held {
			if h {
				count++
				assert.Equal(t, m.Index(), i)
			}
		}
		assert.Equal(t, 1, count)
		assert.False(t, Holds[int](m))
	}
}

func TestGetIf_NonEmptyOnlyForActive(t *testing.T) {
	t.Parallel()

	m := messages.Alt1(move{X: 3, Y: 4})
	assert.Equal(t, move{X: 3, Y: 4}, GetIf[move](m).Value())
	assert.True(t, GetIf[quit](m).IsNone())
	assert.True(t, GetIf[write](m).IsNone())
	assert.True(t, GetIf[read](m).IsNone())
}

func TestGetIf_RoundTrip(t *testing.T) {
	t.Parallel()

	u := Declare3[int, string, float64]()
	assert.Equal(t, 42, GetIf[int](u.Alt0(42)).Value())
	assert.Equal(t, "x", GetIf[string](u.Alt1("x")).Value())
	assert.Equal(t, 1.5, GetIf[float64](u.Alt2(1.5)).Value())
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	m := messages.Alt2(write{Text: "w"})
	assert.Equal(t, "w", MustGet[write](m).Text)
	assert.PanicsWithError(t,
		"union.MustGet: union does not hold the requested alternative: want union.move, active union.write",
		func() { _ = MustGet[move](m) })
}

func TestZeroValue_HoldsFirstAlternative(t *testing.T) {
	t.Parallel()

	var m Of2[int, string]
	assert.Equal(t, 0, m.Index())
	assert.True(t, Holds[int](m))
	assert.Equal(t, 0, m.Value())
	assert.Equal(t, 0, GetIf[int](m).Value())

	got := Match2(m, On2(
		func(v int) string { return fmt.Sprint("int ", v) },
		func(s string) string { return "string " + s },
	))
	assert.Equal(t, "int 0", got)
}

func TestInterfaceAlternative(t *testing.T) {
	t.Parallel()

	u := Declare2[error, string]()
	boom := errors.New("boom")

	e := u.Alt0(boom)
	assert.True(t, Holds[error](e))
	assert.Same(t, boom, GetIf[error](e).Value())

	nilErr := u.Alt0(nil)
	assert.True(t, Holds[error](nilErr))
	assert.Nil(t, GetIf[error](nilErr).Value())
}

func TestCopy_PreservesActiveAlternative(t *testing.T) {
	t.Parallel()

	orig := messages.Alt1(move{X: 5, Y: 6})
	cp := orig
	assert.Equal(t, orig.Index(), cp.Index())
	assert.True(t, cp.Equal(orig))

	// rebinding the copy does not touch the original
	cp = messages.Alt2(write{Text: "changed"})
	assert.Equal(t, 2, cp.Index())
	assert.Equal(t, move{X: 5, Y: 6}, MustGet[move](orig))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	u := Declare2[int, int64]()
	assert.True(t, u.Alt0(1).Equal(u.Alt0(1)))
	assert.False(t, u.Alt0(1).Equal(u.Alt0(2)))
	assert.False(t, u.Alt0(1).Equal(u.Alt1(1)), "different discriminants never compare payloads")
}

func TestEqual_FuncPayloads(t *testing.T) {
	t.Parallel()

	withCallback := messages.Alt3(read{Callback: func() {}})
	assert.False(t, withCallback.Equal(withCallback))
	assert.True(t, messages.Alt3(read{}).Equal(messages.Alt3(read{})))
}

func TestGetIf_ReturnsCopy(t *testing.T) {
	t.Parallel()

	m := messages.Alt1(move{X: 1, Y: 2})
	got := GetIf[move](m).Value()
	got.X = 100
	assert.Equal(t, 1, MustGet[move](m).X)

	shared := &move{X: 1, Y: 2}
	byRef := Declare2[*move, quit]().Alt0(shared)
	GetIf[*move](byRef).Value().X = 100
	assert.Equal(t, 100, shared.X)
	assert.Equal(t, 100, MustGet[*move](byRef).X)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "union.move({X:1 Y:2})", messages.Alt1(move{X: 1, Y: 2}).String())
}

func TestDeclare_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Declare3[int, string, int]() })
	assert.NotPanics(t, func() { Declare3[int, string, bool]() })
}

func TestUndeclaredConstructors_StillRejectDuplicates(t *testing.T) {
	t.Parallel()

	var dup Decl2[int, int]
	assert.PanicsWithError(t,
		"union.Decl2.Alt0: alternative declared more than once: int at positions 0 and 1",
		func() { dup.Alt0(1) })
	assert.Panics(t, func() { Decl4[quit, move, move, read]{}.Alt3(read{}) })

	u := Decl2[int, string]{}.Alt1("x")
	assert.True(t, Holds[string](u))
	assert.False(t, Holds[int](u))
}

func TestAlternatives(t *testing.T) {
	t.Parallel()

	got := Alternatives(messages.Alt0(quit{}))
	require.Len(t, got, 4)
	assert.Equal(t, reflect.TypeFor[quit](), got[0])
	assert.Equal(t, reflect.TypeFor[read](), got[3])
}
