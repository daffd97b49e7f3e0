package hgr

import (
	"bufio"
	"io"
	"strconv"
)

// Write serializes inst back to `.hgr` text, translating 0-based internal
// vertex ids to the format's 1-based ids. The inverse of Read.
func Write(w io.Writer, inst Instance) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("p hs " + strconv.Itoa(inst.N) + " " + strconv.Itoa(len(inst.Edges)) + "\n"); err != nil {
		return err
	}
	for _, edge := range inst.Edges {
		for i, v := range edge {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(v + 1)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ToFileIDs translates a slice of 0-based internal vertex ids (as produced
// by a solver operating on an Instance read via Read) back to the format's
// 1-based ids, for emitting a solution in the same id space as the input
// file. The inverse of Read's per-vertex "v - 1" translation.
func ToFileIDs(vertices []int) []int {
	out := make([]int, len(vertices))
	for i, v := range vertices {
		out[i] = v + 1
	}
	return out
}
