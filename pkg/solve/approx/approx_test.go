package approx

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/pathmax/pathmax/pkg/errors"
	"github.com/pathmax/pathmax/pkg/graph"
	"github.com/pathmax/pathmax/pkg/solve/exact"
)

func mustGraph(t *testing.T, vertices []string, edges []graph.Edge) *graph.Graph {
	t.Helper()
	g, err := graph.New(vertices, edges)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	return g
}

// randomGraph builds a connected random graph on n vertices: a random
// spanning tree plus extra random edges.
func randomGraph(t *testing.T, n int, extra int, seed int64) *graph.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	vertices := make([]string, n)
	for i := range vertices {
		vertices[i] = fmt.Sprintf("v%d", i+1)
	}

	var edges []graph.Edge
	for i := 1; i < n; i++ {
		j := rng.Intn(i)
		edges = append(edges, graph.Edge{U: vertices[j], V: vertices[i], Weight: float64(1 + rng.Intn(100))})
	}
	for k := 0; k < extra; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if i == j {
			continue
		}
		edges = append(edges, graph.Edge{U: vertices[i], V: vertices[j], Weight: float64(1 + rng.Intn(100))})
	}

	g, err := graph.New(vertices, edges)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	return g
}

func TestSolveEmptyGraph(t *testing.T) {
	_, err := Solve(context.Background(), nil, Options{})
	if !errors.Is(err, errors.ErrCodeEmptyGraph) {
		t.Errorf("Solve(nil) error = %v, want code %s", err, errors.ErrCodeEmptyGraph)
	}
}

func TestSolveTwoVertex(t *testing.T) {
	g := mustGraph(t, []string{"a", "b"}, []graph.Edge{{U: "a", V: "b", Weight: 5}})

	res, err := Solve(context.Background(), g, Options{Seed: 1})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if res.Value != 5 {
		t.Errorf("Value = %v, want 5", res.Value)
	}
	if s := res.Path.String(); s != "a b" && s != "b a" {
		t.Errorf("Path = %q, want %q or %q", s, "a b", "b a")
	}
}

func TestSolveSingleVertex(t *testing.T) {
	g := mustGraph(t, []string{"solo"}, nil)

	res, err := Solve(context.Background(), g, Options{})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if res.Value != 0 || res.Path.String() != "solo" {
		t.Errorf("Solve() = %v %q, want 0 %q", res.Value, res.Path, "solo")
	}
}

func TestExactDominatesApprox(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := randomGraph(t, 4+int(seed%5), 4, seed)

		exactRes, err := exact.Solve(context.Background(), g, exact.Options{})
		if err != nil {
			t.Fatalf("exact.Solve() error = %v", err)
		}
		approxRes, err := Solve(context.Background(), g, Options{Seed: seed})
		if err != nil {
			t.Fatalf("Solve() error = %v", err)
		}

		if !approxRes.Path.Simple(g) {
			t.Errorf("seed %d: approx path %v is not simple", seed, approxRes.Path)
		}
		if approxRes.Value > exactRes.Value {
			t.Errorf("seed %d: approx value %v exceeds exact value %v", seed, approxRes.Value, exactRes.Value)
		}

		recomputed, err := approxRes.Path.Value(g)
		if err != nil || recomputed != approxRes.Value {
			t.Errorf("seed %d: recomputed value = %v (err %v), want %v", seed, recomputed, err, approxRes.Value)
		}
	}
}

func TestSolveReproducible(t *testing.T) {
	g := randomGraph(t, 9, 6, 3)

	first, err := Solve(context.Background(), g, Options{Seed: 42})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Solve(context.Background(), g, Options{Seed: 42})
		if err != nil {
			t.Fatalf("Solve() error = %v", err)
		}
		if again.Value != first.Value || again.Path.String() != first.Path.String() {
			t.Fatalf("same seed produced %v %q then %v %q", first.Value, first.Path, again.Value, again.Path)
		}
	}
}

func TestLargerBudgetNeverHurts(t *testing.T) {
	// Seeds derive from (start, seed index, strategy) independently of
	// the total budget, so a larger budget runs a superset of the
	// smaller budget's attempts.
	g := randomGraph(t, 10, 8, 11)

	small, err := Solve(context.Background(), g, Options{Seed: 7, SeedsPerStart: 2})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	large, err := Solve(context.Background(), g, Options{Seed: 7, SeedsPerStart: 6})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if large.Value < small.Value {
		t.Errorf("budget 6 value %v < budget 2 value %v", large.Value, small.Value)
	}
}

func TestParallelMatchesSequentialValue(t *testing.T) {
	g := randomGraph(t, 8, 6, 5)

	seq, err := Solve(context.Background(), g, Options{Seed: 9})
	if err != nil {
		t.Fatalf("sequential Solve() error = %v", err)
	}
	par, err := Solve(context.Background(), g, Options{Seed: 9, Workers: 4})
	if err != nil {
		t.Fatalf("parallel Solve() error = %v", err)
	}
	if par.Value != seq.Value {
		t.Errorf("parallel value = %v, want %v", par.Value, seq.Value)
	}
	if !par.Path.Simple(g) {
		t.Errorf("parallel path %v is not simple", par.Path)
	}
}

func TestSeedBudgetBoostBand(t *testing.T) {
	tests := []struct {
		order    int
		perStart int
		want     int
	}{
		{order: 5, perStart: 4, want: 4},
		{order: 8, perStart: 4, want: 6},  // 4 * 1.35 = 5.4, rounded up
		{order: 12, perStart: 4, want: 6},
		{order: 13, perStart: 4, want: 4},
		{order: 10, perStart: 0, want: 6}, // default budget, boosted
	}

	for _, tt := range tests {
		if got := seedBudget(tt.order, tt.perStart); got != tt.want {
			t.Errorf("seedBudget(%d, %d) = %d, want %d", tt.order, tt.perStart, got, tt.want)
		}
	}
}

func TestStartOrderByDegree(t *testing.T) {
	g := mustGraph(t, []string{"a", "b", "c", "d"}, []graph.Edge{
		{U: "a", V: "b", Weight: 1},
		{U: "b", V: "c", Weight: 1},
		{U: "b", V: "d", Weight: 1},
		{U: "c", V: "d", Weight: 1},
	})

	got := startOrder(g)
	want := []string{"b", "c", "d", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("startOrder() = %v, want %v", got, want)
		}
	}
}
