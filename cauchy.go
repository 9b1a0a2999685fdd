package rscm

// cauchyCoeff returns the coefficient that recovery row `row` (0-based
// position among RecoveryCount) applies to original block j, under a
// fixed, deterministic Cauchy construction that both Encoder and Decoder
// reproduce independently from (originalCount, row, j) alone.
//
// Raw Cauchy entries are 1/(X_row ^ Y_j) with Y_j = j and
// X_row = originalCount + row; X and Y are disjoint whenever
// originalCount+recoveryCount <= 256 (EncoderParams.validate enforces
// this), which is all the Cauchy construction needs to guarantee every
// square submatrix is invertible.
//
// The raw matrix is then scaled by column (multiplying every entry in
// column j by 1/C[0][j]) so that row 0 becomes all ones. Scaling a Cauchy
// matrix by nonzero row/column factors preserves the property that every
// square submatrix stays invertible, so this is still a valid Cauchy
// derivative — and it makes the single-parity deployment (by far the most
// common) a pure XOR instead of a table multiply.
func cauchyCoeff(originalCount, row, j int) byte {
	x0 := byte(originalCount)
	xRow := byte(originalCount + row)
	y := byte(j)
	num := x0 ^ y
	den := xRow ^ y
	return mulTable[invTable[den]][num]
}
