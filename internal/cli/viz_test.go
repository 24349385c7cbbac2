package cli

import "testing"

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"graph.txt", "svg", "graph.svg"},
		{"cases/big.txt", "png", "cases/big.png"},
		{"noext", "dot", "noext.dot"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.input, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}
