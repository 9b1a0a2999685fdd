package rscm

// Block is a single shard crossing the encode/decode boundary: an index in
// [0, OriginalCount+RecoveryCount) identifying its role, plus the bytes
// themselves. Ownership of Data stays with the caller; the core only reads
// original blocks and writes into recovery/reconstruction buffers the
// caller provides.
type Block struct {
	Index int
	Data  []byte
}

// EncoderParams fixes the three values shared by one stripe's Encoder and
// Decoder. Both ends of a transfer must agree on the same EncoderParams.
type EncoderParams struct {
	OriginalCount int
	RecoveryCount int
	BlockBytes    int
}

// validate checks the bounds from spec: 1..255 originals, 0..255
// recoveries (a stripe with zero recovery blocks is a legal degenerate
// case used for plain pass-through), sum <= 256, positive block size.
func (p EncoderParams) validate() error {
	if p.OriginalCount < 1 || p.OriginalCount > 255 {
		return &ParameterError{Field: "OriginalCount", Value: p.OriginalCount, Msg: "must be in [1,255]"}
	}
	if p.RecoveryCount < 0 || p.RecoveryCount > 255 {
		return &ParameterError{Field: "RecoveryCount", Value: p.RecoveryCount, Msg: "must be in [0,255]"}
	}
	if p.OriginalCount+p.RecoveryCount > 256 {
		return &ParameterError{Field: "OriginalCount+RecoveryCount", Value: p.OriginalCount + p.RecoveryCount, Msg: "must not exceed 256"}
	}
	if p.BlockBytes <= 0 {
		return &ParameterError{Field: "BlockBytes", Value: p.BlockBytes, Msg: "must be positive"}
	}
	return nil
}
