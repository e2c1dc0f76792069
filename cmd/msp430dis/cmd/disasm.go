package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/msp430dis/disasm"
)

var hexLiteral string

var disasmCmd = &cobra.Command{
	Use:   "disasm [file]",
	Short: "Disassemble a raw MSP430 binary",
	Long: `disasm reads a raw little-endian MSP430 byte stream, either from a
file argument or from the --hex flag, and prints one line per decoded
instruction.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDisasm,
}

func init() {
	disasmCmd.Flags().StringVar(&hexLiteral, "hex", "", "hex-encoded instruction bytes, e.g. 0313 (spaces allowed)")
}

func runDisasm(cmd *cobra.Command, args []string) error {
	data, err := loadInput(args)
	if err != nil {
		return err
	}

	lines, walkErr := disasm.Walk(data)
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	if walkErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "msp430dis: %v\n", walkErr)
		os.Exit(1)
	}

	return nil
}

func loadInput(args []string) ([]byte, error) {
	if hexLiteral != "" {
		clean := strings.ReplaceAll(hexLiteral, " ", "")
		data, err := hex.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("msp430dis: invalid --hex literal: %w", err)
		}
		return data, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("msp430dis: need a file argument or --hex literal")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("msp430dis: failed to read %s: %w", args[0], err)
	}
	return data, nil
}
