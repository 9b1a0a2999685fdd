package rscm

// Encoder produces recovery blocks for one fixed (OriginalCount,
// RecoveryCount, BlockBytes) stripe shape. It holds no per-call state
// beyond the shared Field, so one Encoder can be reused across any number
// of stripes with that shape, concurrently, as long as distinct calls use
// distinct buffers.
type Encoder struct {
	params EncoderParams
	field  *Field
}

// NewEncoder validates params and returns an Encoder bound to them.
func NewEncoder(params EncoderParams) (*Encoder, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	field, err := NewField()
	if err != nil {
		return nil, err
	}
	return &Encoder{params: params, field: field}, nil
}

// Params returns the EncoderParams this Encoder was built with.
func (e *Encoder) Params() EncoderParams { return e.params }

// Encode is the package-level convenience form of (*Encoder).Encode: it
// builds a throwaway Encoder for params and runs it once.
func Encode(params EncoderParams, originals []Block, recovery [][]byte) error {
	e, err := NewEncoder(params)
	if err != nil {
		return err
	}
	return e.Encode(originals, recovery)
}

// Encode fills recovery with RecoveryCount parity blocks computed from
// originals. originals must contain exactly OriginalCount blocks, each
// with a distinct index in [0, OriginalCount) and BlockBytes bytes;
// recovery must contain exactly RecoveryCount buffers of BlockBytes bytes
// each. recovery[k] becomes the block with index OriginalCount+k.
func (e *Encoder) Encode(originals []Block, recovery [][]byte) error {
	k := e.params.OriginalCount
	r := e.params.RecoveryCount

	if len(originals) != k {
		return &InputError{Field: "originals", Value: len(originals), Msg: "expected exactly OriginalCount blocks"}
	}
	if len(recovery) != r {
		return &ParameterError{Field: "recovery", Value: len(recovery), Msg: "expected exactly RecoveryCount output buffers"}
	}
	if r == 0 {
		return nil
	}

	byIndex := make([][]byte, k)
	seen := make([]bool, k)
	for _, b := range originals {
		if b.Index < 0 || b.Index >= k {
			return &InputError{Field: "index", Value: b.Index, Msg: "original index out of range"}
		}
		if seen[b.Index] {
			return &InputError{Field: "index", Value: b.Index, Msg: "duplicate original index"}
		}
		if len(b.Data) != e.params.BlockBytes {
			return &InputError{Field: "block_bytes", Value: len(b.Data), Msg: "original block size mismatch"}
		}
		seen[b.Index] = true
		byIndex[b.Index] = b.Data
	}
	for j, ok := range seen {
		if !ok {
			return &InputError{Field: "index", Value: j, Msg: "missing original index"}
		}
	}
	for _, out := range recovery {
		if len(out) != e.params.BlockBytes {
			return &ParameterError{Field: "block_bytes", Value: len(out), Msg: "recovery buffer size mismatch"}
		}
	}

	// Recovery row 0 is always all-ones by construction (see cauchyCoeff):
	// the common one-parity deployment degenerates to a plain XOR, so it
	// gets its own cheap path instead of going through MulAddMem.
	copy(recovery[0], byIndex[0])
	for j := 1; j < k; j++ {
		e.field.AddMem(recovery[0], byIndex[j])
	}

	for row := 1; row < r; row++ {
		c0 := cauchyCoeff(k, row, 0)
		e.field.MulMem(recovery[row], byIndex[0], c0)
		for j := 1; j < k; j++ {
			cj := cauchyCoeff(k, row, j)
			if cj == 1 {
				e.field.AddMem(recovery[row], byIndex[j])
			} else {
				e.field.MulAddMem(recovery[row], cj, byIndex[j])
			}
		}
	}
	return nil
}
