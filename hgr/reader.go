package hgr

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Instance is a parsed `.hgr` hypergraph: N vertices (0-based internally)
// and M edges, each edge a slice of 0-based vertex ids.
type Instance struct {
	N     int
	Edges [][]int
}

// Read parses the `.hgr` text format from r, mirroring the original Python
// reference reader's line-by-line logic: blank lines and lines starting
// with 'c' are comments; exactly one `p hs N M` line is required; every
// other non-comment line is one edge of whitespace-separated 1-based vertex
// ids, validated against [1, N] and translated to 0-based ids on the way
// in. The declared M is checked against the number of edge lines actually
// read.
func Read(r io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	n, m := -1, -1
	haveProblem := false
	var edges [][]int

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}

		fields := strings.Fields(text)
		if fields[0] == "p" {
			if haveProblem {
				return Instance{}, &ParseError{Line: line, Err: ErrDuplicateProblemLine}
			}
			pn, pm, err := parseProblemLine(fields)
			if err != nil {
				return Instance{}, &ParseError{Line: line, Err: err}
			}
			n, m = pn, pm
			haveProblem = true
			continue
		}

		if !haveProblem {
			return Instance{}, &ParseError{Line: line, Err: ErrMissingProblemLine}
		}

		edge := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 1 || v > n {
				return Instance{}, &ParseError{Line: line, Err: ErrVertexOutOfRange}
			}
			edge[i] = v - 1 // 1-based file id -> 0-based internal id
		}
		edges = append(edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return Instance{}, err
	}

	if !haveProblem {
		return Instance{}, &ParseError{Line: line, Err: ErrMissingProblemLine}
	}
	if len(edges) != m {
		return Instance{}, &ParseError{Line: line, Err: ErrEdgeCountMismatch}
	}

	return Instance{N: n, Edges: edges}, nil
}

func parseProblemLine(fields []string) (n, m int, err error) {
	if len(fields) != 4 || fields[1] != "hs" {
		return 0, 0, ErrMalformedProblemLine
	}
	n, errN := strconv.Atoi(fields[2])
	m, errM := strconv.Atoi(fields[3])
	if errN != nil || errM != nil || n < 0 || m < 0 {
		return 0, 0, ErrMalformedProblemLine
	}
	return n, m, nil
}
