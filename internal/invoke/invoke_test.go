package invoke

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

func TestFuncForwardsArguments(t *testing.T) {
	var gotS string
	var gotN int
	call, err := Func(func(s string, n int) {
		gotS, gotN = s, n
	})
	require.NoError(t, err)

	call("x", 2)
	assert.Equal(t, "x", gotS)
	assert.Equal(t, 2, gotN)
}

func TestFuncMissingAndNilArguments(t *testing.T) {
	var gotS string
	var gotP *int
	gotN := -1
	call, err := Func(func(s string, p *int, n int) {
		gotS, gotP, gotN = s, p, n
	})
	require.NoError(t, err)

	call(nil)
	assert.Equal(t, "", gotS)
	assert.Nil(t, gotP)
	assert.Equal(t, 0, gotN)
}

func TestFuncDropsSurplusArguments(t *testing.T) {
	var got []string
	call, err := Func(func(s string) { got = append(got, s) })
	require.NoError(t, err)

	call("a", "b", "c")
	assert.Equal(t, []string{"a"}, got)
}

func TestFuncVariadic(t *testing.T) {
	var prefix string
	var rest []int
	call, err := Func(func(p string, xs ...int) {
		prefix, rest = p, xs
	})
	require.NoError(t, err)

	call("sum", 1, 2.0, int8(3))
	assert.Equal(t, "sum", prefix)
	assert.Equal(t, []int{1, 2, 3}, rest)

	call("none")
	assert.Empty(t, rest)
}

func TestFuncConversions(t *testing.T) {
	var temp celsius
	var text string
	call, err := Func(func(c celsius, s string) { temp, text = c, s })
	require.NoError(t, err)

	call(21.5, "ok")
	assert.Equal(t, celsius(21.5), temp)
	assert.Equal(t, "ok", text)
}

func TestFuncInterfaceParameter(t *testing.T) {
	var got any
	call, err := Func(func(v any) { got = v })
	require.NoError(t, err)

	call([]int{1})
	assert.Equal(t, []int{1}, got)
}

func TestFuncRejectsIncompatibleArgument(t *testing.T) {
	call, err := Func(func(s string) {})
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var argErr *ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, 0, argErr.Index)
	}()
	call(65)
}

func TestFuncNumericConversions(t *testing.T) {
	tests := []struct {
		name   string
		fn     any
		arg    any
		wantOK bool
	}{
		{"whole float to int", func(int) {}, 3.0, true},
		{"fractional float to int", func(int) {}, 3.7, false},
		{"int overflowing int8", func(int8) {}, 300, false},
		{"int fitting int8", func(int8) {}, -100, true},
		{"negative int to uint", func(uint) {}, -1, false},
		{"large uint64 to int64", func(int64) {}, uint64(1 << 63), false},
		{"NaN to int", func(int) {}, math.NaN(), false},
		{"float64 to float32", func(float32) {}, 0.1, true},
		{"float64 overflowing float32", func(float32) {}, 1e300, false},
		{"infinity to float32", func(float32) {}, math.Inf(1), true},
		{"int to float64", func(float64) {}, 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := Func(tt.fn)
			require.NoError(t, err)

			if tt.wantOK {
				assert.NotPanics(t, func() { call(tt.arg) })
				return
			}
			assert.PanicsWithError(t, (&ArgumentError{
				Index: 0,
				Got:   reflect.TypeOf(tt.arg),
				Want:  reflect.TypeOf(tt.fn).In(0),
			}).Error(), func() { call(tt.arg) })
		})
	}
}

func TestFuncRejectsNonFunctions(t *testing.T) {
	for _, v := range []any{nil, 42, "f", (func())(nil)} {
		_, err := Func(v)
		assert.Error(t, err)
	}
}
