// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	rscm "github.com/hzxGoForward/RS-with-CM"
)

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	app := cli.NewApp()
	app.Name = "rscm"
	app.Usage = "Cauchy-matrix Reed-Solomon erasure coding over local files"
	app.Version = VERSION
	app.Commands = []cli.Command{
		encodeCommand,
		decodeCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}

var encodeCommand = cli.Command{
	Name:  "encode",
	Usage: "split a file into data and parity shards plus a manifest",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "k", Value: 4, Usage: "original shard count"},
		cli.IntFlag{Name: "r", Value: 2, Usage: "recovery shard count"},
		cli.StringFlag{Name: "input, i", Usage: "file to encode"},
		cli.StringFlag{Name: "prefix, p", Value: "out", Usage: "shard file prefix"},
		cli.StringFlag{Name: "manifest, m", Value: "", Usage: "manifest path, defaults to <prefix>.manifest.json"},
		cli.StringFlag{Name: "c", Value: "", Usage: "config from json file, which will override the command from shell"},
	},
	Action: runEncode,
}

var decodeCommand = cli.Command{
	Name:  "decode",
	Usage: "reassemble a file from surviving shard files and a manifest",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "manifest, m", Usage: "manifest path written by encode"},
		cli.StringFlag{Name: "output, o", Value: "out.decoded", Usage: "reconstructed file path"},
		cli.StringFlag{Name: "c", Value: "", Usage: "config from json file, which will override the command from shell"},
	},
	Action: runDecode,
}

func runEncode(c *cli.Context) error {
	config := Config{
		OriginalCount: c.Int("k"),
		RecoveryCount: c.Int("r"),
		Input:         c.String("input"),
		Prefix:        c.String("prefix"),
		Manifest:      c.String("manifest"),
	}
	if cfgPath := c.String("c"); cfgPath != "" {
		if err := parseJSONConfig(&config, cfgPath); err != nil {
			return errors.Wrap(err, "loading config")
		}
	}
	if config.Input == "" {
		return errors.New("encode: -input is required")
	}
	if config.Manifest == "" {
		config.Manifest = config.Prefix + ".manifest.json"
	}

	data, err := os.ReadFile(config.Input)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	blockBytes := (len(data) + config.OriginalCount - 1) / config.OriginalCount
	if blockBytes == 0 {
		blockBytes = 1
	}
	params := rscm.EncoderParams{
		OriginalCount: config.OriginalCount,
		RecoveryCount: config.RecoveryCount,
		BlockBytes:    blockBytes,
	}

	originals := rscm.AllocShards(params.OriginalCount, params.BlockBytes)
	for i := range originals {
		lo := i * blockBytes
		hi := lo + blockBytes
		if lo < len(data) {
			if hi > len(data) {
				hi = len(data)
			}
			copy(originals[i], data[lo:hi])
		}
	}
	originalBlocks := make([]rscm.Block, params.OriginalCount)
	for i := range originalBlocks {
		originalBlocks[i] = rscm.Block{Index: i, Data: originals[i]}
	}

	recovery := rscm.AllocShards(params.RecoveryCount, params.BlockBytes)
	if err := rscm.Encode(params, originalBlocks, recovery); err != nil {
		return errors.Wrap(err, "encode")
	}

	indices := make([]int, 0, params.OriginalCount+params.RecoveryCount)
	for i, data := range originals {
		path := shardPath(config.Prefix, i)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.Wrap(err, "writing shard")
		}
		indices = append(indices, i)
	}
	for k, data := range recovery {
		idx := params.OriginalCount + k
		path := shardPath(config.Prefix, idx)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.Wrap(err, "writing shard")
		}
		indices = append(indices, idx)
	}

	m := Manifest{
		OriginalCount: params.OriginalCount,
		RecoveryCount: params.RecoveryCount,
		BlockBytes:    params.BlockBytes,
		FileSize:      int64(len(data)),
		Indices:       indices,
	}
	if err := writeManifest(config.Manifest, m); err != nil {
		return errors.Wrap(err, "writing manifest")
	}

	log.Printf("encoded %s into %d+%d shards (%s)", config.Input, params.OriginalCount, params.RecoveryCount, config.Manifest)
	return nil
}

func runDecode(c *cli.Context) error {
	config := Config{
		Manifest: c.String("manifest"),
		Output:   c.String("output"),
	}
	if cfgPath := c.String("c"); cfgPath != "" {
		if err := parseJSONConfig(&config, cfgPath); err != nil {
			return errors.Wrap(err, "loading config")
		}
	}
	if config.Manifest == "" {
		return errors.New("decode: -manifest is required")
	}

	m, err := readManifest(config.Manifest)
	if err != nil {
		return errors.Wrap(err, "reading manifest")
	}
	prefix := manifestPrefix(config.Manifest)

	params := rscm.EncoderParams{
		OriginalCount: m.OriginalCount,
		RecoveryCount: m.RecoveryCount,
		BlockBytes:    m.BlockBytes,
	}

	var blocks []rscm.Block
	for _, idx := range m.Indices {
		if len(blocks) == params.OriginalCount {
			break
		}
		path := shardPath(prefix, idx)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("skipping missing shard %s: %v", path, err)
			continue
		}
		blocks = append(blocks, rscm.Block{Index: idx, Data: data})
	}

	if err := rscm.Decode(params, blocks); err != nil {
		return errors.Wrap(err, "decode")
	}

	out := make([]byte, 0, params.OriginalCount*params.BlockBytes)
	byIndex := make(map[int][]byte, len(blocks))
	for _, b := range blocks {
		byIndex[b.Index] = b.Data
	}
	for i := 0; i < params.OriginalCount; i++ {
		out = append(out, byIndex[i]...)
	}
	if int64(len(out)) > m.FileSize {
		out = out[:m.FileSize]
	}

	if err := os.WriteFile(config.Output, out, 0644); err != nil {
		return errors.Wrap(err, "writing output")
	}

	log.Printf("decoded %s -> %s (%d bytes)", config.Manifest, config.Output, len(out))
	return nil
}

func shardPath(prefix string, index int) string {
	return fmt.Sprintf("%s.%03d.shard", prefix, index)
}

func manifestPrefix(manifestPath string) string {
	base := filepath.Base(manifestPath)
	const suffix = ".manifest.json"
	if len(base) > len(suffix) && base[len(base)-len(suffix):] == suffix {
		base = base[:len(base)-len(suffix)]
	}
	return filepath.Join(filepath.Dir(manifestPath), base)
}
