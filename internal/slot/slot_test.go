package slot

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleRejectsSecondOccurrence(t *testing.T) {
	s := NewSingle(String)
	require.NoError(t, s.Accept("--profile", "dev"))

	err := s.Accept("--profile", "release")
	var dup *DuplicateArgumentError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "--profile", dup.Flag)
	assert.Equal(t,
		"The argument '--profile' was provided more than once, but cannot be used multiple times",
		err.Error())

	require.NotNil(t, s.Ptr())
	assert.Equal(t, "dev", *s.Ptr(), "first value is kept")
}

func TestSingleUnsetIsNil(t *testing.T) {
	s := NewSingle(Uint64)
	assert.False(t, s.Seen())
	assert.Nil(t, s.Ptr())
}

func TestSingleConversionFailure(t *testing.T) {
	s := NewSingle(PositiveUint32)
	err := s.Accept("-j", "many")

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "invalid value 'many' for '-j': invalid syntax", err.Error())
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.False(t, s.Seen(), "failed conversion does not count as an occurrence")
}

func TestBoolRejectsSecondOccurrence(t *testing.T) {
	var b Bool
	require.NoError(t, b.Accept("--release", ""))
	assert.True(t, b.Get())

	var dup *DuplicateArgumentError
	require.ErrorAs(t, b.Accept("-r", ""), &dup)
	assert.Equal(t, "-r", dup.Flag)
}

func TestListAppendsInOrder(t *testing.T) {
	l := NewList(String)
	assert.Empty(t, l.Values())
	assert.NotNil(t, l.Values())

	require.NoError(t, l.Accept("--package", "a"))
	require.NoError(t, l.Accept("-p", "b"))
	require.NoError(t, l.Accept("--package", "a"))

	assert.Equal(t, []string{"a", "b", "a"}, l.Values())
}

func TestCountSaturates(t *testing.T) {
	var c Count
	for i := 0; i < 300; i++ {
		require.NoError(t, c.Accept("-v", ""))
	}
	assert.Equal(t, 300, c.N())
	assert.Equal(t, uint8(math.MaxUint8), c.Uint8())
}

func TestArity(t *testing.T) {
	tests := []struct {
		slot       Slot
		arity      Arity
		takesValue bool
		repeatable bool
	}{
		{NewSingle(String), Unique, true, false},
		{&Bool{}, Flag, false, false},
		{NewList(String), Multi, true, true},
		{&Count{}, Counter, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.arity.String(), func(t *testing.T) {
			assert.Equal(t, tt.arity, tt.slot.Arity())
			assert.Equal(t, tt.takesValue, tt.slot.Arity().TakesValue())
			assert.Equal(t, tt.repeatable, tt.slot.Arity().Repeatable())
		})
	}
}

func TestParsers(t *testing.T) {
	n, err := PositiveUint32("8")
	require.NoError(t, err)
	assert.Equal(t, uint32(8), n)

	_, err = PositiveUint32("0")
	assert.ErrorIs(t, err, ErrZero)

	_, err = PositiveUint32("4294967296")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = Uint64("-1")
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	f, err := Float64("87.5")
	require.NoError(t, err)
	assert.InDelta(t, 87.5, f, 1e-9)

	_, err = NonEmpty("")
	assert.Error(t, err)
}
