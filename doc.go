// Package rscm implements systematic Reed-Solomon erasure coding over
// GF(2^8) using a Cauchy generator matrix.
//
// Given original_count equal-sized data blocks, Encode produces
// recovery_count parity blocks such that any original_count blocks out of
// the combined original_count+recovery_count set suffice to recover the
// full original payload. Decode performs that reconstruction in place on
// the caller's surviving buffers.
//
// The Field type owns the process-wide GF(2^8) tables and is initialized
// exactly once. An Encoder holds no state beyond the Field and can be
// reused for any stripe of its shape; a Decoder is single-use and carries
// the state of one decode attempt.
package rscm
