package rscm

import "sort"

type decoderState int

const (
	stateFresh decoderState = iota
	stateInitialized
	stateSolved
	stateFailed
)

// recoverySlot records where a surviving recovery block lives within the
// caller's blocks slice, and which 0-based position among RecoveryCount
// it occupies.
type recoverySlot struct {
	recoveryIndex int
	blockIdx      int
}

// Decoder reconstructs missing original blocks from a mix of surviving
// originals and recoveries. A Decoder instance is single-use: it walks
// Fresh -> Initialized -> Solved | Failed and is terminal once it leaves
// Initialized. Create a fresh Decoder (or call the package-level Decode)
// per decode attempt.
type Decoder struct {
	params EncoderParams
	field  *Field
	state  decoderState

	blocks         []Block
	originalByIdx  [][]byte
	erasures       []int
	recoveries     []recoverySlot
}

// NewDecoder validates params and returns a fresh Decoder bound to them.
func NewDecoder(params EncoderParams) (*Decoder, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	field, err := NewField()
	if err != nil {
		return nil, err
	}
	return &Decoder{params: params, field: field, state: stateFresh}, nil
}

// Decode is the package-level convenience form: it builds a throwaway
// Decoder for params and runs Initialize then Solve once.
func Decode(params EncoderParams, blocks []Block) error {
	d, err := NewDecoder(params)
	if err != nil {
		return err
	}
	if err := d.Initialize(blocks); err != nil {
		return err
	}
	return d.Solve()
}

// Initialize partitions blocks into surviving originals and recoveries,
// and computes the erasure set. It may fail fast (InputError, or
// InternalError if the Decoder is not Fresh) without mutating any buffer. blocks must contain exactly
// OriginalCount entries.
func (d *Decoder) Initialize(blocks []Block) error {
	if d.state != stateFresh {
		return &InternalError{Msg: "Initialize called on a Decoder that already left the Fresh state"}
	}
	k := d.params.OriginalCount
	r := d.params.RecoveryCount

	if len(blocks) != k {
		d.state = stateFailed
		return &InputError{Field: "blocks", Value: len(blocks), Msg: "expected exactly OriginalCount blocks"}
	}

	present := make([]bool, k)
	recvSeen := make([]bool, r)
	originalByIdx := make([][]byte, k)
	var recoveries []recoverySlot

	for bi, b := range blocks {
		switch {
		case b.Index >= 0 && b.Index < k:
			if present[b.Index] {
				d.state = stateFailed
				return &InputError{Field: "index", Value: b.Index, Msg: "duplicate original index"}
			}
			if len(b.Data) != d.params.BlockBytes {
				d.state = stateFailed
				return &InputError{Field: "block_bytes", Value: len(b.Data), Msg: "block size mismatch"}
			}
			present[b.Index] = true
			originalByIdx[b.Index] = b.Data
		case b.Index >= k && b.Index < k+r:
			ri := b.Index - k
			if recvSeen[ri] {
				d.state = stateFailed
				return &InputError{Field: "index", Value: b.Index, Msg: "duplicate recovery index"}
			}
			if len(b.Data) != d.params.BlockBytes {
				d.state = stateFailed
				return &InputError{Field: "block_bytes", Value: len(b.Data), Msg: "block size mismatch"}
			}
			recvSeen[ri] = true
			recoveries = append(recoveries, recoverySlot{recoveryIndex: ri, blockIdx: bi})
		default:
			d.state = stateFailed
			return &InputError{Field: "index", Value: b.Index, Msg: "index out of range for this stripe"}
		}
	}

	var erasures []int
	for j := 0; j < k; j++ {
		if !present[j] {
			erasures = append(erasures, j)
		}
	}
	if len(erasures) != len(recoveries) {
		d.state = stateFailed
		return &InputError{
			Field: "erasures", Value: len(erasures),
			Msg: "number of missing originals does not match number of recoveries supplied",
		}
	}

	sort.Slice(recoveries, func(i, j int) bool {
		return recoveries[i].recoveryIndex < recoveries[j].recoveryIndex
	})

	d.blocks = blocks
	d.originalByIdx = originalByIdx
	d.erasures = erasures
	d.recoveries = recoveries
	d.state = stateInitialized
	return nil
}

// Solve reconstructs every missing original in place and updates its
// block's Index, leaving the Decoder in the terminal Solved state on
// success (or Failed on error, in which case every buffer the Decoder
// touched is in an unspecified state).
func (d *Decoder) Solve() error {
	if d.state != stateInitialized {
		return &InternalError{Msg: "Solve called without a successful Initialize"}
	}

	m := len(d.erasures)
	if m == 0 {
		d.state = stateSolved
		return nil
	}

	k := d.params.OriginalCount
	var err error
	if m == 1 {
		err = d.solveSingle(k)
	} else {
		err = d.solveGeneral(k, m)
	}
	if err != nil {
		d.state = stateFailed
		return err
	}
	d.state = stateSolved
	return nil
}

// solveSingle is the required distinct code path for the single-erasure,
// single-recovery case: O_e = (1/C[r][e]) * (R_r XOR sum_{j!=e} C[r][j]*O_j),
// which degenerates to a plain XOR when the surviving recovery is row 0.
func (d *Decoder) solveSingle(k int) error {
	e := d.erasures[0]
	slot := d.recoveries[0]
	row := slot.recoveryIndex
	rb := d.blocks[slot.blockIdx].Data

	if row == 0 {
		for j := 0; j < k; j++ {
			if j == e {
				continue
			}
			d.field.AddMem(rb, d.originalByIdx[j])
		}
	} else {
		for j := 0; j < k; j++ {
			if j == e {
				continue
			}
			c := cauchyCoeff(k, row, j)
			if c == 1 {
				d.field.AddMem(rb, d.originalByIdx[j])
			} else {
				d.field.MulAddMem(rb, c, d.originalByIdx[j])
			}
		}
		ce := cauchyCoeff(k, row, e)
		d.field.DivMem(rb, rb, ce)
	}

	d.blocks[slot.blockIdx].Index = e
	return nil
}

// solveGeneral handles m > 1 missing originals: it assembles the m x m
// Cauchy submatrix for the surviving recoveries and missing originals,
// LDU-decomposes it, and solves in place on the recovery buffers (which,
// after the right-hand-side step below, hold A*x for the unknown vector
// x of missing originals).
func (d *Decoder) solveGeneral(k, m int) error {
	for _, slot := range d.recoveries {
		rb := d.blocks[slot.blockIdx].Data
		for j := 0; j < k; j++ {
			od := d.originalByIdx[j]
			if od == nil {
				continue
			}
			c := cauchyCoeff(k, slot.recoveryIndex, j)
			if c == 1 {
				d.field.AddMem(rb, od)
			} else {
				d.field.MulAddMem(rb, c, od)
			}
		}
	}

	a := make([][]byte, m)
	for i := 0; i < m; i++ {
		a[i] = make([]byte, m)
		for jc := 0; jc < m; jc++ {
			a[i][jc] = cauchyCoeff(k, d.recoveries[i].recoveryIndex, d.erasures[jc])
		}
	}
	l, u, diag, err := ldu(a, m)
	if err != nil {
		return err
	}

	b := make([][]byte, m)
	for i := 0; i < m; i++ {
		b[i] = d.blocks[d.recoveries[i].blockIdx].Data
	}

	for i := 0; i < m; i++ {
		for jc := 0; jc < i; jc++ {
			if l[i][jc] != 0 {
				d.field.MulAddMem(b[i], l[i][jc], b[jc])
			}
		}
	}
	for i := 0; i < m; i++ {
		d.field.DivMem(b[i], b[i], diag[i])
	}
	for i := m - 1; i >= 0; i-- {
		for jc := i + 1; jc < m; jc++ {
			if u[i][jc] != 0 {
				d.field.MulAddMem(b[i], u[i][jc], b[jc])
			}
		}
	}

	for i := 0; i < m; i++ {
		d.blocks[d.recoveries[i].blockIdx].Index = d.erasures[i]
	}
	return nil
}
