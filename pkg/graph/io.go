package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pathmax/pathmax/pkg/errors"
)

// =============================================================================
// Graph Text Format API
// =============================================================================
//
// The input format is a hard contract shared with external tooling:
//
//	line 1:        n m
//	lines 2..m+1:  u v w
//
// n and m are non-negative integers (vertex count, edge count); each edge
// line names two vertex labels and a non-negative weight (integer or
// decimal). The vertex set is the union of labels in the m edge lines and
// must have cardinality n. Blank lines are skipped; anything after the
// m-th edge line is ignored.
//
// Result output is two lines: the total path weight formatted as an
// integer, then the space-separated vertex labels of the path.

// Read parses a graph from r in the text input format.
// Returns a MALFORMED_INPUT error when the content disagrees with the
// declared header, or an EMPTY_GRAPH error for a zero vertex count.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, ok := nextLine(sc)
	if !ok {
		return nil, errors.New(errors.ErrCodeMalformedInput, "missing header line")
	}
	n, m, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, m)
	for i := 0; i < m; i++ {
		line, ok := nextLine(sc)
		if !ok {
			return nil, errors.New(errors.ErrCodeMalformedInput,
				"declared %d edges but input ends after %d", m, i)
		}
		e, err := parseEdgeLine(i, line)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "read input")
	}

	return Build(n, edges)
}

// ReadFile parses a graph from the file at path.
// Returns a FILE_NOT_FOUND error when the file cannot be opened.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// WriteResult writes a solve result to w in the output format: the total
// weight formatted as an integer on the first line, then the
// space-separated path labels.
func WriteResult(w io.Writer, value float64, p Path) error {
	_, err := fmt.Fprintf(w, "%d\n%s\n", int64(value), p.String())
	return err
}

// =============================================================================
// Internal Implementation
// =============================================================================

// nextLine returns the next non-blank line.
func nextLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			return sc.Text(), true
		}
	}
	return "", false
}

func parseHeader(line string) (n, m int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errors.New(errors.ErrCodeMalformedInput,
			"header must be %q, got %q", "n m", line)
	}
	n, err = parseCount(fields[0], "vertex")
	if err != nil {
		return 0, 0, err
	}
	m, err = parseCount(fields[1], "edge")
	if err != nil {
		return 0, 0, err
	}
	return n, m, nil
}

func parseCount(s, kind string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeMalformedInput, err, "parse %s count %q", kind, s)
	}
	if v < 0 {
		return 0, errors.New(errors.ErrCodeMalformedInput, "negative %s count %d", kind, v)
	}
	return v, nil
}

func parseEdgeLine(i int, line string) (Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Edge{}, errors.New(errors.ErrCodeMalformedInput,
			"edge %d must be %q, got %q", i, "u v w", line)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Edge{}, errors.Wrap(errors.ErrCodeMalformedInput, err,
			"edge %d has unparseable weight %q", i, fields[2])
	}
	e := Edge{U: fields[0], V: fields[1], Weight: w}
	if err := validateEdge(i, e); err != nil {
		return Edge{}, err
	}
	return e, nil
}

