package rscm

// The kernels below implement the table-vector shuffle pattern from the
// spec's SIMD design: for a constant y, the low/high nibble of every input
// byte is looked up in a 16-entry table and the two partial products are
// XORed together. A native build would issue one shuffle instruction per
// vector register; here the batch loop stands in for that vector width,
// with a scalar tail for the remainder, matching the structure a real
// AVX2/SSSE3/NEON kernel would have without requiring assembly.

func addMemKernel(x, y []byte) {
	width := vectorWidth(kernelTierInUse)
	n := len(x)
	i := 0
	for ; i+width <= n; i += width {
		for j := 0; j < width; j++ {
			x[i+j] ^= y[i+j]
		}
	}
	for ; i < n; i++ {
		x[i] ^= y[i]
	}
}

func add2MemKernel(z, x, y []byte) {
	width := vectorWidth(kernelTierInUse)
	n := len(x)
	i := 0
	for ; i+width <= n; i += width {
		for j := 0; j < width; j++ {
			z[i+j] ^= x[i+j] ^ y[i+j]
		}
	}
	for ; i < n; i++ {
		z[i] ^= x[i] ^ y[i]
	}
}

func addsetMemKernel(z, x, y []byte) {
	width := vectorWidth(kernelTierInUse)
	n := len(x)
	i := 0
	for ; i+width <= n; i += width {
		for j := 0; j < width; j++ {
			z[i+j] = x[i+j] ^ y[i+j]
		}
	}
	for ; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
}

func mulMemKernel(z, x []byte, y byte) {
	if y == 1 {
		copy(z, x)
		return
	}
	if y == 0 {
		n := len(x)
		for i := 0; i < n; i++ {
			z[i] = 0
		}
		return
	}
	width := vectorWidth(kernelTierInUse)
	lo := &mulTableLow[y]
	hi := &mulTableHigh[y]
	n := len(x)
	i := 0
	for ; i+width <= n; i += width {
		for j := 0; j < width; j++ {
			b := x[i+j]
			z[i+j] = lo[b&0x0f] ^ hi[b>>4]
		}
	}
	for ; i < n; i++ {
		b := x[i]
		z[i] = lo[b&0x0f] ^ hi[b>>4]
	}
}

func mulAddMemKernel(z []byte, y byte, x []byte) {
	if y == 0 {
		return
	}
	if y == 1 {
		addMemKernel(z, x)
		return
	}
	width := vectorWidth(kernelTierInUse)
	lo := &mulTableLow[y]
	hi := &mulTableHigh[y]
	n := len(x)
	i := 0
	for ; i+width <= n; i += width {
		for j := 0; j < width; j++ {
			b := x[i+j]
			z[i+j] ^= lo[b&0x0f] ^ hi[b>>4]
		}
	}
	for ; i < n; i++ {
		b := x[i]
		z[i] ^= lo[b&0x0f] ^ hi[b>>4]
	}
}
