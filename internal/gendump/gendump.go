// Package gendump implements the two generator-dump encoders used by
// symmetry.Group's diagnostic output (spec.md §4.3.4, §6 "write_search_generators
// / write_all_generators").
//
// WriteText reproduces the original tool's "generators.py" format exactly:
// one Python-literal permutation list per generator, over a compacted
// vertex numbering that only covers vertices actually moved by some
// generator. WriteBinary supplements it with a compact binary framing for
// large grounded tasks, where the text form becomes unwieldy: each
// generator's (from, to) vertex-mapping arrays are delta/bit-packed with
// ronanh/intcomp before being framed with fxamacker/cbor/v2.
package gendump

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/ronanh/intcomp"
)

// Generator is the moved-vertex mapping of one group generator: only
// entries with from != to are present, exactly as
// Group.add_to_be_written_generator builds it in the original tool.
type Generator map[int]int

// WriteText writes generators in the "generators.py" format: first compact
// the set of vertices actually referenced by any generator to consecutive
// ids, then print each generator as a full permutation list over that
// compacted vertex set, one list per line.
func WriteText(w io.Writer, generators []Generator) error {
	vertexToID := make(map[int]int)
	counter := 0
	for _, g := range generators {
		for from, to := range g {
			if _, ok := vertexToID[from]; !ok {
				vertexToID[from] = counter
				counter++
			}
			if _, ok := vertexToID[to]; !ok {
				vertexToID[to] = counter
				counter++
			}
		}
	}

	for _, g := range generators {
		perm := make([]int, counter)
		for i := range perm {
			perm[i] = i
		}
		for from, to := range g {
			perm[vertexToID[from]] = vertexToID[to]
		}
		if _, err := fmt.Fprint(w, "["); err != nil {
			return err
		}
		for i, v := range perm {
			if i > 0 {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprint(w, v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "]"); err != nil {
			return err
		}
	}
	return nil
}

// binaryGenerator is the cbor-framed, intcomp-compressed representation of
// one Generator.
type binaryGenerator struct {
	// NumEntries is the number of (from, to) pairs before compression, kept
	// so decompression knows how many uint32s to expect back.
	NumEntries int `cbor:"n"`
	// From/To are the moved-vertex source/destination arrays, each
	// compressed independently with intcomp (sorted source vertices compress
	// especially well as monotone deltas).
	From []uint32 `cbor:"f"`
	To   []uint32 `cbor:"t"`
}

func toUint32Sorted(g Generator) (from, to []uint32) {
	from = make([]uint32, 0, len(g))
	for f := range g {
		from = append(from, uint32(f))
	}
	// simple insertion sort: generators are small (moved-vertex counts are
	// a tiny fraction of the grounded task), no need for sort.Slice overhead.
	for i := 1; i < len(from); i++ {
		for j := i; j > 0 && from[j-1] > from[j]; j-- {
			from[j-1], from[j] = from[j], from[j-1]
		}
	}
	to = make([]uint32, len(from))
	for i, f := range from {
		to[i] = uint32(g[int(f)])
	}
	return from, to
}

// WriteBinary cbor-encodes the compressed generator list to w.
func WriteBinary(w io.Writer, generators []Generator) error {
	out := make([]binaryGenerator, len(generators))
	for i, g := range generators {
		from, to := toUint32Sorted(g)
		out[i] = binaryGenerator{
			NumEntries: len(from),
			From:       intcomp.CompressUint32(from, nil),
			To:         intcomp.CompressUint32(to, nil),
		}
	}
	data, err := cbor.Marshal(out)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadBinary decodes a binary generator dump written by WriteBinary.
func ReadBinary(r io.Reader) ([]Generator, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var stored []binaryGenerator
	if err := cbor.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	generators := make([]Generator, len(stored))
	for i, bg := range stored {
		from := intcomp.UncompressUint32(bg.From, nil)[:bg.NumEntries]
		to := intcomp.UncompressUint32(bg.To, nil)[:bg.NumEntries]
		g := make(Generator, bg.NumEntries)
		for j := 0; j < bg.NumEntries; j++ {
			g[int(from[j])] = int(to[j])
		}
		generators[i] = g
	}
	return generators, nil
}
