package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsum/bitwise"
)

// addCmd adds two int32 values with the bitwise full adder
var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Add two 32-bit integers using only bit operations",
	Long: `Adds two signed 32-bit integers bit by bit with a ripple-carry full
adder. Results wrap on overflow exactly like int32 arithmetic.

Example:
  lvsum add 1111 2222
  lvsum add -- -1 1`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

// runAdd parses both operands and prints their bitwise sum.
func runAdd(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("operand %q: %w", args[0], err)
	}
	b, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("operand %q: %w", args[1], err)
	}

	sum := bitwise.Add(int32(a), int32(b))
	logger.Debug("Added", zap.Int64("a", a), zap.Int64("b", b), zap.Int32("sum", sum))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
	return err
}
