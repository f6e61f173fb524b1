package protocol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	// 1% of 1 token at 9 decimals
	assert.EqualValues(t, 10_000_000, ComputeFee(1_000_000_000, 100))

	assert.EqualValues(t, 0, ComputeFee(0, 100))
	assert.EqualValues(t, 0, ComputeFee(99, 100))
	assert.EqualValues(t, 1, ComputeFee(100, 100))
	assert.EqualValues(t, 123, ComputeFee(123, BpsDenominator))

	// Full-range amounts don't overflow the intermediate product.
	assert.EqualValues(t, uint64(math.MaxUint64)/100, ComputeFee(math.MaxUint64, 100))
	assert.EqualValues(t, uint64(math.MaxUint64), ComputeFee(math.MaxUint64, BpsDenominator))

	// Rates above the denominator clamp to 100%.
	assert.EqualValues(t, 500, ComputeFee(500, math.MaxUint16))
}

func TestComputeFee_SplitInvariant(t *testing.T) {
	amounts := []uint64{
		0, 1, 99, 100, 10_000, 999_999_999,
		1_000_000_000, 123_456_789_123, math.MaxUint64,
	}
	rates := []uint16{0, 1, 50, 100, 2_500, 9_999, BpsDenominator}

	for _, amount := range amounts {
		for _, feeBps := range rates {
			fee := ComputeFee(amount, feeBps)
			assert.True(t, fee <= amount)
			assert.Equal(t, amount, fee+(amount-fee))
		}
	}
}
