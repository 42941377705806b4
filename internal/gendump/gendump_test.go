package gendump_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvardsen/symplan/internal/gendump"
)

func TestWriteTextCompactsVertexNumbering(t *testing.T) {
	generators := []gendump.Generator{
		{10: 11, 11: 10},
		{10: 12, 12: 10},
	}
	var buf bytes.Buffer
	require.NoError(t, gendump.WriteText(&buf, generators))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
	// Three distinct vertices referenced overall (10, 11, 12) -> each
	// permutation list has length 3 over the compacted numbering.
	assert.Equal(t, "[1, 0, 2]", string(lines[0]))
}

func TestWriteBinaryRoundTrips(t *testing.T) {
	generators := []gendump.Generator{
		{0: 1, 1: 2, 2: 0},
		{5: 7, 7: 5},
	}
	var buf bytes.Buffer
	require.NoError(t, gendump.WriteBinary(&buf, generators))
	got, err := gendump.ReadBinary(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(generators))
	for i, g := range generators {
		// go-cmp pinpoints which moved-vertex entry differs on failure,
		// more useful here than testify's whole-map diff for a round-trip
		// through an intermediate compact numbering.
		if diff := cmp.Diff(g, got[i]); diff != "" {
			t.Errorf("generator %d round-trip mismatch (-want +got):\n%s", i, diff)
		}
	}
}
