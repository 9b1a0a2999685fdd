package rscm

import "sync"

var (
	fieldOnce  sync.Once
	fieldErr   error
	kernelTierInUse kernelTier
)

// InitField runs the one-shot GF(2^8) table build and kernel-tier probe.
// It is idempotent and safe to call from multiple goroutines or from
// package init code; every call after the first just returns the result
// of the first. Encoder and Decoder call it for you, so most callers never
// need to invoke it directly.
func InitField() error {
	fieldOnce.Do(func() {
		buildTables()
		kernelTierInUse = detectKernelTier()
		fieldErr = selfTest()
	})
	return fieldErr
}

// Field is a handle onto the process-wide GF(2^8) tables. It carries no
// state of its own: all tables live in package-level storage, populated
// once by InitField and read-only from then on, so any number of Fields
// (and any number of goroutines using them) may operate concurrently on
// disjoint buffers without external synchronization.
type Field struct{}

// NewField ensures the Field tables are initialized and returns a handle
// to them. It returns the InitError from InitField, if any.
func NewField() (*Field, error) {
	if err := InitField(); err != nil {
		return nil, err
	}
	return &Field{}, nil
}

// Add returns x XOR y, the GF(2^8) sum.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Mul returns x*y in GF(2^8) via the precomputed product table.
func (f *Field) Mul(x, y byte) byte { return mulTable[y][x] }

// Div returns x/y in GF(2^8). Behavior for y==0 is unspecified but never
// faults; callers must never rely on a particular result in that case.
func (f *Field) Div(x, y byte) byte { return divTable[y][x] }

// Inv returns the multiplicative inverse of x; Inv(0) == 0 by convention.
func (f *Field) Inv(x byte) byte { return invTable[x] }

// Sqr returns x*x in GF(2^8).
func (f *Field) Sqr(x byte) byte { return sqrTable[x] }

// AddMem computes x[i] ^= y[i] for all i.
func (f *Field) AddMem(x, y []byte) { addMemKernel(x, y) }

// Add2Mem computes z[i] ^= x[i] ^ y[i] for all i.
func (f *Field) Add2Mem(z, x, y []byte) { add2MemKernel(z, x, y) }

// AddsetMem computes z[i] = x[i] ^ y[i] for all i.
func (f *Field) AddsetMem(z, x, y []byte) { addsetMemKernel(z, x, y) }

// MulMem computes z[i] = x[i] * y for all i, y a scalar.
func (f *Field) MulMem(z, x []byte, y byte) { mulMemKernel(z, x, y) }

// MulAddMem computes z[i] ^= x[i] * y for all i, y a scalar.
func (f *Field) MulAddMem(z []byte, y byte, x []byte) { mulAddMemKernel(z, y, x) }

// DivMem computes z[i] = x[i] / y for all i, implemented as a scaled
// multiply by the precomputed inverse of y (y==1 short-circuits to copy).
func (f *Field) DivMem(z, x []byte, y byte) {
	if y == 1 {
		copy(z, x)
		return
	}
	mulMemKernel(z, x, invTable[y])
}
