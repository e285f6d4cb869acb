// Command pynext is the compiler and toolchain CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const toolVersion = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "pynext",
	Short: "pynext language compiler and toolchain",
	Long:  "pynext compiles a small statically-typed, block-delimited language to a typed SSA IR and runs it.",
}

func main() {
	rootCmd.Version = toolVersion

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
