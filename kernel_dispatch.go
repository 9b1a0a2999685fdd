package rscm

import "github.com/klauspost/cpuid/v2"

// kernelTier selects which buffer-kernel code path the bulk operations use.
// The algorithm is identical across tiers (nibble-table shuffle-and-XOR);
// tiers differ only in how many bytes are processed per inner-loop batch,
// mirroring the AVX2/SSSE3/NEON/scalar ladder a native implementation
// would pick between at compile time via intrinsics.
type kernelTier int

const (
	tierScalar kernelTier = iota
	tierSSSE3
	tierNEON
	tierAVX2
)

func (t kernelTier) String() string {
	switch t {
	case tierAVX2:
		return "avx2"
	case tierSSSE3:
		return "ssse3"
	case tierNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// detectKernelTier probes CPU capabilities once at Field init, the same
// feature set the teacher's vendored reedsolomon package checks via
// cpuid.CPU.Supports in its options.go.
func detectKernelTier() kernelTier {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX2):
		return tierAVX2
	case cpuid.CPU.Supports(cpuid.SSSE3):
		return tierSSSE3
	case cpuid.CPU.Supports(cpuid.ASIMD):
		return tierNEON
	default:
		return tierScalar
	}
}

// vectorWidth is the batch size in bytes the selected tier processes per
// inner loop iteration before falling back to a scalar tail.
func vectorWidth(t kernelTier) int {
	switch t {
	case tierAVX2:
		return 32
	case tierSSSE3, tierNEON:
		return 16
	default:
		return 1
	}
}
