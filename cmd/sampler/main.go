// Command sampler ingests each split's AAG, builds a ROBDD, counts
// weighted satisfying paths, samples uniform satisfying assignments, and
// aggregates the per-split draws into one JSON document (§4.C-§4.H, §6).
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hwrand/robdd/internal/aag"
	"github.com/hwrand/robdd/internal/bdd"
	"github.com/hwrand/robdd/internal/obslog"
	"github.com/hwrand/robdd/internal/report"
	"github.com/hwrand/robdd/internal/sample"
	"github.com/hwrand/robdd/internal/verilog"
)

var tagIntermediates bool
var writeDot bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sampler <input_dir> <random_seed> <solution_num> <output_file> <split_num>",
		Short:         "Sample uniform satisfying assignments from a partitioned constraint circuit",
		Args:          cobra.ExactArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("sampler: bad random_seed %q: %w", args[1], err)
			}
			solutionNum, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("sampler: bad solution_num %q: %w", args[2], err)
			}
			splitNum, err := strconv.Atoi(args[4])
			if err != nil {
				return fmt.Errorf("sampler: bad split_num %q: %w", args[4], err)
			}
			return run(args[0], seed, solutionNum, args[3], splitNum)
		},
	}
	cmd.Flags().BoolVar(&tagIntermediates, "tag", false, "stamp a run id into per-split intermediate filenames")
	cmd.Flags().BoolVar(&writeDot, "dot", false, "write a GraphViz rendering of each split's ROBDD next to its intermediate solution file")
	return cmd
}

func run(inputDir string, seed int64, solutionNum int, outputFile string, splitNum int) error {
	log := obslog.Logger("sampler")
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	oriInputNum, width, err := loadGlobalShape(inputDir)
	if err != nil {
		return err
	}

	agg := sample.NewAggregator(solutionNum, oriInputNum, width)
	rng := rand.New(rand.NewSource(seed))

	for q := 0; q < splitNum; q++ {
		aagPath := filepath.Join(inputDir, "reordered_aags", fmt.Sprintf("reordered_%d.aag", q))
		f, err := os.Open(aagPath)
		if err != nil {
			return fmt.Errorf("sampler: opening %s: %w", aagPath, err)
		}
		aagFile, err := aag.Load(f)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("sampler: parsing %s: %w", aagPath, err)
		}
		if closeErr != nil {
			return fmt.Errorf("sampler: closing %s: %w", aagPath, closeErr)
		}

		splitFinal, err := solveSplit(log, aagFile, oriInputNum, width, solutionNum, rng, dotPathFor(inputDir, q))
		if err != nil {
			return fmt.Errorf("sampler: solving split %d: %w", q, err)
		}

		for i, reshaped := range splitFinal {
			agg.Merge(i, reshaped)
		}

		if err := writeIntermediate(inputDir, q, runID.String(), splitFinal); err != nil {
			return err
		}
	}

	doc := report.Build(agg.Result())
	out, err := report.Marshal(doc)
	if err != nil {
		return fmt.Errorf("sampler: marshaling output: %w", err)
	}
	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		return fmt.Errorf("sampler: writing %s: %w", outputFile, err)
	}
	log.Debug().Int("splits", splitNum).Int("solutions", solutionNum).Str("output_file", outputFile).Msg("done")
	return nil
}

// solveSplit builds the ROBDD for one split's AAG, counts path weights,
// draws solutionNum samples, and reshapes each into the global variable
// shape. The manager is torn down before returning, per §5's per-split
// engine lifecycle.
func solveSplit(log zerolog.Logger, f *aag.File, oriInputNum int, width []int, solutionNum int, rng *rand.Rand, dotPath string) ([][][]bool, error) {
	m, root, err := bdd.Build(f)
	if err != nil {
		return nil, err
	}
	counter := bdd.NewCounter(m)
	drawer := sample.NewDrawer(m, counter, len(f.Inputs))
	log.Debug().Int("inputs", len(f.Inputs)).Int("gates", len(f.Gates)).Msg("built ROBDD for split")

	if dotPath != "" {
		if err := writeDotFile(m, root, dotPath); err != nil {
			m.Release(root)
			m.Close()
			return nil, err
		}
	}

	out := make([][][]bool, solutionNum)
	for i := 0; i < solutionNum; i++ {
		drawn := drawer.Draw(root, rng)
		out[i] = sample.Reshape(oriInputNum, width, f, drawn)
	}

	m.Release(root)
	if err := m.Close(); err != nil {
		return nil, fmt.Errorf("tearing down engine: %w", err)
	}
	return out, nil
}

// dotPathFor returns the path solveSplit should render split q's ROBDD to,
// or "" when --dot was not passed.
func dotPathFor(inputDir string, q int) string {
	if !writeDot {
		return ""
	}
	return filepath.Join(inputDir, fmt.Sprintf("split_%d.dot", q))
}

func writeDotFile(m *bdd.Manager, root bdd.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sampler: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := m.WriteDot(f, root); err != nil {
		return fmt.Errorf("sampler: writing %s: %w", path, err)
	}
	return nil
}

// loadGlobalShape recovers the original variable count and per-variable
// widths from json2verilog.v, per §6.
func loadGlobalShape(inputDir string) (int, []int, error) {
	path := filepath.Join(inputDir, "json2verilog.v")
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("sampler: opening %s: %w", path, err)
	}
	defer f.Close()

	mod, err := verilog.Parse(f)
	if err != nil {
		return 0, nil, fmt.Errorf("sampler: parsing %s: %w", path, err)
	}
	width := make([]int, mod.TotalVariables())
	for _, v := range mod.Variables {
		width[v.Ordinal] = v.Width
	}
	return mod.TotalVariables(), width, nil
}

// writeIntermediate writes the always-produced per-split intermediate
// artifact (solution_<q>.json, §6). When --tag is set the run id is folded
// into the filename so concurrent sampler invocations against the same
// input_dir never collide.
func writeIntermediate(inputDir string, q int, runID string, final [][][]bool) error {
	name := fmt.Sprintf("solution_%d.json", q)
	if tagIntermediates {
		name = fmt.Sprintf("solution_%d.%s.json", q, runID)
	}
	path := filepath.Join(inputDir, name)
	doc := report.Build(final)
	out, err := report.Marshal(doc)
	if err != nil {
		return fmt.Errorf("sampler: marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("sampler: writing %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
