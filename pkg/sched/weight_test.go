package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightForNice_ZeroIsBaseline(t *testing.T) {
	assert.Equal(t, uint64(NiceZeroWeight), weightForNice(0))
}

func TestWeightForNice_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, weightForNice(-20), weightForNice(-100))
	assert.Equal(t, weightForNice(19), weightForNice(100))
}

func TestWeightForNice_LowerNiceIsHeavier(t *testing.T) {
	assert.Greater(t, weightForNice(-5), weightForNice(5))
}
