package main

import (
	"encoding/json"
	"os"
)

// Manifest is the JSON sidecar written alongside a set of shard files. It
// carries everything a later decode needs to know about the stripe shape
// and the original file, since the shard files themselves are bare bytes.
type Manifest struct {
	OriginalCount int   `json:"original_count"`
	RecoveryCount int   `json:"recovery_count"`
	BlockBytes    int   `json:"block_bytes"`
	FileSize      int64 `json:"file_size"`
	Indices       []int `json:"indices"`
}

func writeManifest(path string, m Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func readManifest(path string) (Manifest, error) {
	var m Manifest
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&m)
	return m, err
}
