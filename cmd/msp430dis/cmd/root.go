package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "msp430dis",
	Short: "MSP430 disassembler",
	Long:  `msp430dis decodes MSP430 16-bit machine code into human-readable assembly.`,
}

// Execute runs the root command, exiting the process with a nonzero status
// on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
