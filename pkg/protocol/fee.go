package protocol

import "math/bits"

// BpsDenominator is the fee rate denominator: rates are expressed in basis
// points, 1/10000.
const BpsDenominator = 10000

// ComputeFee returns floor(amount * feeBps / 10000). The multiplication runs
// through a 128-bit intermediate, so the result is exact for the full uint64
// amount range. Rates above the denominator are clamped to 100%.
func ComputeFee(amount uint64, feeBps uint16) uint64 {
	if feeBps > BpsDenominator {
		feeBps = BpsDenominator
	}

	hi, lo := bits.Mul64(amount, uint64(feeBps))
	fee, _ := bits.Div64(hi, lo, BpsDenominator)
	return fee
}
