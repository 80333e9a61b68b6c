package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedArithmetic(t *testing.T) {
	assert.Equal(t, 6, gcd(-12, 18))
	assert.Equal(t, 5, gcd(0, -5))
	assert.Equal(t, 0, gcd(0, 0))

	v, ok := mulChecked(-3, 7)
	assert.True(t, ok)
	assert.Equal(t, -21, v)
	_, ok = mulChecked(math.MaxInt/2+1, 2)
	assert.False(t, ok)
	_, ok = mulChecked(math.MinInt, 1)
	assert.False(t, ok)

	v, ok = subChecked(5, 9)
	assert.True(t, ok)
	assert.Equal(t, -4, v)
	_, ok = subChecked(math.MinInt+1, 1)
	assert.False(t, ok)
	_, ok = subChecked(math.MaxInt, -1)
	assert.False(t, ok)

	v, ok = lcmChecked(4, -6)
	assert.True(t, ok)
	assert.Equal(t, 12, v)
	_, ok = lcmChecked(math.MaxInt/2+1, 3)
	assert.False(t, ok)
}

func TestNormalizeRow(t *testing.T) {
	m := &IntDense{r: 2, c: 4, data: []int{0, -4, 6, -2, 0, 0, 0, 0}}
	m.normalizeRow(0)
	assert.Equal(t, []int{0, 2, -3, 1}, m.row(0))
	m.normalizeRow(1)
	assert.Equal(t, []int{0, 0, 0, 0}, m.row(1))
}
