package tracker

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityOf(t *testing.T) {
	q, err := QuantityOf(5)
	require.NoError(t, err)
	assert.Equal(t, 5, q)

	q, err = QuantityOf(int64(-3))
	require.NoError(t, err)
	assert.Equal(t, -3, q)

	q, err = QuantityOf(uint64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, q)
}

func TestQuantityOf_WrongType(t *testing.T) {
	for _, v := range []any{"5", 5.0, 2.5, true, []int{5}} {
		_, err := QuantityOf(v)
		assert.ErrorIs(t, err, ErrWrongType, "value %v", v)
	}
}

func TestQuantityOf_OutOfRange(t *testing.T) {
	_, err := QuantityOf(uint64(math.MaxUint64))
	assert.ErrorIs(t, err, ErrWrongType)
	assert.NotErrorIs(t, err, ErrNonPositiveQuantity)
}

func TestQuantityOf_Missing(t *testing.T) {
	_, err := QuantityOf(nil)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestStringOf(t *testing.T) {
	s, err := StringOf("donor", "Andrew")
	require.NoError(t, err)
	assert.Equal(t, "Andrew", s)

	s, err = StringOf("donor", "")
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestStringOf_WrongType(t *testing.T) {
	for _, v := range []any{123, true, 2.5, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), []string{"food"}} {
		_, err := StringOf("type", v)
		assert.ErrorIs(t, err, ErrWrongType, "value %v", v)
		assert.ErrorContains(t, err, "type")
	}
}

func TestStringOf_Missing(t *testing.T) {
	_, err := StringOf("date", nil)
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.ErrorContains(t, err, "date")
}
