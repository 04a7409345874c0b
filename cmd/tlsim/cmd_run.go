package main

import (
	"github.com/spf13/cobra"

	"tlsim"
)

// runCmd runs the bundled adder+register demo design to completion,
// printing its monitor lines to stdout. Mirrors the shape of a
// front-end-driven `sim` subcommand dispatching straight into the kernel.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build and run the bundled 8-bit adder + clocked register demo",

	RunE: func(cmd *cobra.Command, args []string) error {
		top, err := buildAdderDemo()
		if err != nil {
			return err
		}

		k := tlsim.NewKernel()
		if err := k.Build(top); err != nil {
			return err
		}
		k.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
