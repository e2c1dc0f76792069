// Package main provides the entry point for msp430dis, a disassembler for
// the MSP430 16-bit instruction set.
package main

import "github.com/sarchlab/msp430dis/cmd/msp430dis/cmd"

func main() {
	cmd.Execute()
}
