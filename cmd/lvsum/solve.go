package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsum/internal/problem"
	"github.com/katalvlaran/lvsum/largestsum"
)

var (
	// ErrTargetRequired is returned when neither --target nor --file is given.
	ErrTargetRequired = errors.New("solve: --target or --file is required")

	// ErrFileAndArgs is returned when items come from both --file and arguments.
	ErrFileAndArgs = errors.New("solve: items given both in --file and as arguments")

	// ErrBadFormat is returned for an unknown --format value.
	ErrBadFormat = errors.New("solve: --format must be text, yaml or json")
)

// solve flags
var (
	solveTarget     uint64
	solveFile       string
	solveRecurrence string
	solveBacktrack  string
	solveMaxCells   uint64
	solveFormat     string
)

// solveCmd finds the largest subset sum not exceeding the target
var solveCmd = &cobra.Command{
	Use:   "solve [items...]",
	Short: "Find the subset whose sum equals or comes closest below a target",
	Long: `Finds a subset of the given non-negative integers whose sum equals the
target. Without an exact match, the closest reachable sum below the target is
returned. The subset is listed in discovery order.

Examples:
  lvsum solve --target 11 1 2 3 4 5 6 7
  lvsum solve --file problem.yaml --format json
  lvsum solve --target 8 --recurrence take-or-skip 2 2 3 4`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().Uint64VarP(&solveTarget, "target", "t", 0, "Target sum")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "YAML problem file (target + items)")
	solveCmd.Flags().StringVar(&solveRecurrence, "recurrence", "", "take-only or take-or-skip (overrides config)")
	solveCmd.Flags().StringVar(&solveBacktrack, "backtrack", "", "skip-unchanged or inclusion-flags (overrides config)")
	solveCmd.Flags().Uint64Var(&solveMaxCells, "max-cells", 0, "Deficit table cell limit (overrides config)")
	solveCmd.Flags().StringVarP(&solveFormat, "format", "o", "text", "Output format: text, yaml or json")
}

// solveOutput is the yaml/json shape of a solve result.
type solveOutput struct {
	Target    uint64   `yaml:"target" json:"target"`
	Sum       uint64   `yaml:"sum" json:"sum"`
	Subset    []uint64 `yaml:"subset" json:"subset"`
	Deficit   uint64   `yaml:"deficit" json:"deficit"`
	Row       int      `yaml:"row" json:"row"`
	RowsBuilt int      `yaml:"rows_built" json:"rows_built"`
	Exact     bool     `yaml:"exact" json:"exact"`
}

// runSolve resolves the problem and options, runs the solver and prints the result.
func runSolve(cmd *cobra.Command, args []string) error {
	p, err := resolveProblem(cmd, args)
	if err != nil {
		return err
	}
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	logger.Info("Solving",
		zap.Uint64("target", p.Target),
		zap.Int("items", len(p.Items)),
		zap.Stringer("recurrence", opts.Recurrence),
		zap.Stringer("backtrack", opts.Backtrack))

	res, err := largestsum.Run(p.Target, p.Items, &opts)
	if err != nil {
		if errors.Is(err, largestsum.ErrTableTooLarge) {
			logger.Error("Deficit table too large",
				zap.Int("rows", len(p.Items)+1),
				zap.Uint64("target", p.Target),
				zap.Uint64("max_cells", opts.MaxCells))
		}
		return fmt.Errorf("solve failed: %w", err)
	}

	logger.Debug("Solved",
		zap.Uint64("sum", res.Sum),
		zap.Uint64("deficit", res.Deficit),
		zap.Int("row", res.Row),
		zap.Int("rows_built", res.RowsBuilt),
		zap.Bool("exact", res.Exact))

	return writeResult(cmd.OutOrStdout(), p.Target, res, solveFormat)
}

// resolveProblem reads the instance from --file or from --target plus arguments.
func resolveProblem(cmd *cobra.Command, args []string) (problem.Problem, error) {
	if solveFile != "" {
		if len(args) > 0 {
			return problem.Problem{}, ErrFileAndArgs
		}
		p, err := problem.Load(solveFile)
		if err != nil {
			return problem.Problem{}, err
		}
		if cmd.Flags().Changed("target") {
			p.Target = solveTarget
		}
		logger.Debug("Problem loaded", zap.String("file", solveFile), zap.Int("items", len(p.Items)))

		return p, nil
	}

	if !cmd.Flags().Changed("target") {
		return problem.Problem{}, ErrTargetRequired
	}
	items, err := problem.ParseItems(args)
	if err != nil {
		return problem.Problem{}, err
	}

	return problem.Problem{Target: solveTarget, Items: items}, nil
}

// resolveOptions starts from the config and applies changed flags.
func resolveOptions(cmd *cobra.Command) (largestsum.Options, error) {
	opts := cfg.SolverOptions()

	if cmd.Flags().Changed("recurrence") {
		r, err := largestsum.ParseRecurrence(solveRecurrence)
		if err != nil {
			return opts, fmt.Errorf("--recurrence %q: %w", solveRecurrence, err)
		}
		opts.Recurrence = r
	}
	if cmd.Flags().Changed("backtrack") {
		m, err := largestsum.ParseBacktrackMode(solveBacktrack)
		if err != nil {
			return opts, fmt.Errorf("--backtrack %q: %w", solveBacktrack, err)
		}
		opts.Backtrack = m
	}
	if cmd.Flags().Changed("max-cells") {
		opts.MaxCells = solveMaxCells
	}

	return opts, nil
}

// writeResult prints res in the requested format.
func writeResult(w io.Writer, target uint64, res largestsum.Result, format string) error {
	out := solveOutput{
		Target:    target,
		Sum:       res.Sum,
		Subset:    res.Subset,
		Deficit:   res.Deficit,
		Row:       res.Row,
		RowsBuilt: res.RowsBuilt,
		Exact:     res.Exact,
	}

	switch strings.ToLower(format) {
	case "", "text":
		_, err := fmt.Fprintf(w, "sum: %d\nsubset: %v\n", out.Sum, out.Subset)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return ErrBadFormat
	}
}
