package cli

import (
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathmax/pathmax/pkg/gen"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	vertices int    // number of vertices
	edges    int    // edge target (sparse shape only, 0 = auto)
	seed     int64  // random seed (0 = time-based)
	output   string // output file path (stdout if empty)
}

// newGenCmd creates the gen command for producing test-case files.
func newGenCmd() *cobra.Command {
	opts := genOpts{vertices: 10}

	cmd := &cobra.Command{
		Use:   "gen <shape>",
		Short: "Generate a random test-case graph",
		Long: `Generate a random test-case graph in the solver input format.

Shapes: ` + strings.Join(gen.Shapes(), ", ") + `

The "trap" shape is adversarial: the locally best first edge leads away
from the longest path, which exercises the lookahead and backtracking
strategies of the approximate engine.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: gen.Shapes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			seed := opts.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			c, err := gen.Generate(args[0], opts.vertices, opts.edges, rng)
			if err != nil {
				return err
			}
			logger.Debugf("Generated %s graph: %d vertices, %d edges, seed %d",
				args[0], len(c.Vertices), len(c.Edges), seed)

			if opts.output == "" {
				return c.WriteTo(os.Stdout)
			}

			f, err := os.Create(opts.output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := c.WriteTo(f); err != nil {
				return err
			}

			printSuccess("Generated %s graph", args[0])
			printGraphStats(len(c.Vertices), len(c.Edges))
			printFile(opts.output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.vertices, "vertices", "n", opts.vertices, "number of vertices")
	cmd.Flags().IntVarP(&opts.edges, "edges", "m", 0, "edge count target (sparse shape, 0 = auto)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
