package report

import (
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/codahale/thyrse/hazmat/kt128"
)

// Fingerprint computes a content hash of a parsed hypergraph instance
// (vertex count plus the edge family) using KT128, the KangarooTwelve XOF.
// It is included in every Report so two reports produced from byte-identical
// `.hgr` input (spec §8 property 5, determinism) can be compared without
// diffing the full instance.
//
// The hash is order-sensitive in edge order (matching the input file's edge
// order) but not in within-edge member order, since FromInput itself treats
// an edge as a set.
func Fingerprint(n int, edges [][]int) string {
	h := kt128.New()
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(n))
	_, _ = h.Write(lenBuf[:])
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(edges)))
	_, _ = h.Write(lenBuf[:])
	for _, e := range edges {
		sorted := append([]int(nil), e...)
		sort.Ints(sorted)
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(sorted)))
		_, _ = h.Write(lenBuf[:])
		for _, v := range sorted {
			binary.LittleEndian.PutUint64(lenBuf[:], uint64(v))
			_, _ = h.Write(lenBuf[:])
		}
	}
	sum := make([]byte, h.Size()) // KT128's default output size (32 bytes)
	_, _ = h.Read(sum)
	return hex.EncodeToString(sum)
}
