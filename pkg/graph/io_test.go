package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pathmax/pathmax/pkg/errors"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOrder int
		wantSize  int
		wantCode  errors.Code
	}{
		{
			name:      "Triangle",
			input:     "3 3\na b 3\nb c 4\na c 5\n",
			wantOrder: 3,
			wantSize:  3,
		},
		{
			name:      "BlankLinesSkipped",
			input:     "\n2 1\n\na b 5\n\n",
			wantOrder: 2,
			wantSize:  1,
		},
		{
			name:      "DecimalWeights",
			input:     "2 1\na b 2.5\n",
			wantOrder: 2,
			wantSize:  1,
		},
		{
			name:      "TrailingLinesIgnored",
			input:     "2 1\na b 5\nthis line is not read\n",
			wantOrder: 2,
			wantSize:  1,
		},
		{
			name:     "EmptyInput",
			input:    "",
			wantCode: errors.ErrCodeMalformedInput,
		},
		{
			name:     "EmptyGraph",
			input:    "0 0\n",
			wantCode: errors.ErrCodeEmptyGraph,
		},
		{
			name:     "HeaderTooShort",
			input:    "3\na b 1\n",
			wantCode: errors.ErrCodeMalformedInput,
		},
		{
			name:     "HeaderNotNumeric",
			input:    "x y\n",
			wantCode: errors.ErrCodeMalformedInput,
		},
		{
			name:     "FewerEdgesThanDeclared",
			input:    "3 3\na b 1\nb c 2\n",
			wantCode: errors.ErrCodeMalformedInput,
		},
		{
			name:     "EdgeLineTooShort",
			input:    "2 1\na b\n",
			wantCode: errors.ErrCodeMalformedInput,
		},
		{
			name:     "EdgeLineTooLong",
			input:    "2 1\na b 1 extra\n",
			wantCode: errors.ErrCodeMalformedInput,
		},
		{
			name:     "BadWeight",
			input:    "2 1\na b heavy\n",
			wantCode: errors.ErrCodeMalformedInput,
		},
		{
			name:     "NegativeWeight",
			input:    "2 1\na b -3\n",
			wantCode: errors.ErrCodeMalformedInput,
		},
		{
			name:     "VertexCountMismatch",
			input:    "4 2\na b 1\nb c 2\n",
			wantCode: errors.ErrCodeMalformedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Read(strings.NewReader(tt.input))
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Read() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if g.Order() != tt.wantOrder {
				t.Errorf("Order() = %d, want %d", g.Order(), tt.wantOrder)
			}
			if g.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", g.Size(), tt.wantSize)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "case.txt")
	if err := os.WriteFile(path, []byte("2 1\na b 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if g.Order() != 2 {
		t.Errorf("Order() = %d, want 2", g.Order())
	}

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want code %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, 9, Path{"a", "c", "b"}); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	want := "9\na c b\n"
	if buf.String() != want {
		t.Errorf("WriteResult() = %q, want %q", buf.String(), want)
	}
}

func TestWriteResultTruncatesToInteger(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, 9.75, Path{"a", "b"}); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}
	if got := buf.String(); got != "9\na b\n" {
		t.Errorf("WriteResult() = %q, want %q", got, "9\na b\n")
	}
}
