package rscm

import (
	"bytes"
	"testing"
)

func TestDecodeScenario1SingleErasure(t *testing.T) {
	params := EncoderParams{OriginalCount: 3, RecoveryCount: 1, BlockBytes: 4}
	originals := []Block{
		{Index: 0, Data: []byte{0x01, 0x02, 0x03, 0x04}},
		{Index: 1, Data: []byte{0x10, 0x20, 0x30, 0x40}},
		{Index: 2, Data: []byte{0xA0, 0xB0, 0xC0, 0xD0}},
	}
	recovery := [][]byte{make([]byte, 4)}
	if err := Encode(params, originals, recovery); err != nil {
		t.Fatal(err)
	}

	lost := append([]byte(nil), originals[1].Data...)
	blocks := []Block{
		originals[0],
		{Index: 3, Data: append([]byte(nil), recovery[0]...)},
		originals[2],
	}
	if err := Decode(params, blocks); err != nil {
		t.Fatal(err)
	}
	if blocks[1].Index != 1 {
		t.Fatalf("recovered block index = %d, want 1", blocks[1].Index)
	}
	if !bytes.Equal(blocks[1].Data, lost) {
		t.Fatalf("recovered data = % x, want % x", blocks[1].Data, lost)
	}
}

func TestDecodeNoErasuresIsIdentity(t *testing.T) {
	params := EncoderParams{OriginalCount: 3, RecoveryCount: 2, BlockBytes: 32}
	originals := deterministicOriginals(params, 11)
	before := make([][]byte, len(originals))
	for i, b := range originals {
		before[i] = append([]byte(nil), b.Data...)
	}
	blocks := append([]Block(nil), originals...)
	if err := Decode(params, blocks); err != nil {
		t.Fatal(err)
	}
	for i := range blocks {
		if blocks[i].Index != i {
			t.Fatalf("block %d index changed to %d", i, blocks[i].Index)
		}
		if !bytes.Equal(blocks[i].Data, before[i]) {
			t.Fatalf("block %d data changed on a no-erasure decode", i)
		}
	}
}

// TestDecodeIdentityWhenOnlyRecoveryMissing covers scenario 6: losing a
// recovery block (not an original) must leave every original untouched.
func TestDecodeIdentityWhenOnlyRecoveryMissing(t *testing.T) {
	params := EncoderParams{OriginalCount: 3, RecoveryCount: 2, BlockBytes: 32}
	originals := deterministicOriginals(params, 55)
	recovery := AllocShards(params.RecoveryCount, params.BlockBytes)
	if err := Encode(params, originals, recovery); err != nil {
		t.Fatal(err)
	}
	before := make([][]byte, len(originals))
	for i, b := range originals {
		before[i] = append([]byte(nil), b.Data...)
	}
	blocks := append([]Block(nil), originals...)
	if err := Decode(params, blocks); err != nil {
		t.Fatal(err)
	}
	for i := range blocks {
		if !bytes.Equal(blocks[i].Data, before[i]) {
			t.Fatalf("original %d mutated though only a recovery was missing", i)
		}
	}
}

func TestDecodeRejectsDuplicateOriginalIndex(t *testing.T) {
	params := EncoderParams{OriginalCount: 4, RecoveryCount: 2, BlockBytes: 8}
	originals := deterministicOriginals(params, 3)
	recovery := AllocShards(params.RecoveryCount, params.BlockBytes)
	if err := Encode(params, originals, recovery); err != nil {
		t.Fatal(err)
	}
	blocks := []Block{originals[0], originals[0], originals[2], originals[3]}
	err := Decode(params, blocks)
	if _, ok := err.(*InputError); !ok {
		t.Fatalf("expected *InputError, got %v (%T)", err, err)
	}
}

func TestDecodeRejectsOutOfRangeIndex(t *testing.T) {
	params := EncoderParams{OriginalCount: 4, RecoveryCount: 2, BlockBytes: 8}
	originals := deterministicOriginals(params, 3)
	blocks := []Block{
		originals[0], originals[1], originals[2],
		{Index: 99, Data: make([]byte, 8)},
	}
	err := Decode(params, blocks)
	if _, ok := err.(*InputError); !ok {
		t.Fatalf("expected *InputError, got %v (%T)", err, err)
	}
}

func TestDecodeRejectsWrongBlockCount(t *testing.T) {
	params := EncoderParams{OriginalCount: 4, RecoveryCount: 2, BlockBytes: 8}
	originals := deterministicOriginals(params, 3)
	err := Decode(params, originals[:2])
	if _, ok := err.(*InputError); !ok {
		t.Fatalf("expected *InputError, got %v (%T)", err, err)
	}
}

func TestDecoderStateMachine(t *testing.T) {
	params := EncoderParams{OriginalCount: 3, RecoveryCount: 1, BlockBytes: 4}
	originals := deterministicOriginals(params, 9)
	recovery := AllocShards(params.RecoveryCount, params.BlockBytes)
	if err := Encode(params, originals, recovery); err != nil {
		t.Fatal(err)
	}
	blocks := []Block{originals[0], originals[1], {Index: 3, Data: recovery[0]}}

	d, err := NewDecoder(params)
	if err != nil {
		t.Fatal(err)
	}
	if d.state != stateFresh {
		t.Fatalf("new decoder state = %v, want Fresh", d.state)
	}
	if err := d.Initialize(blocks); err != nil {
		t.Fatal(err)
	}
	if d.state != stateInitialized {
		t.Fatalf("state after Initialize = %v, want Initialized", d.state)
	}
	if err := d.Solve(); err != nil {
		t.Fatal(err)
	}
	if d.state != stateSolved {
		t.Fatalf("state after Solve = %v, want Solved", d.state)
	}
	if err := d.Initialize(blocks); err == nil {
		t.Fatal("expected error reusing a Solved decoder")
	}
}
