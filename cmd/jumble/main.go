package main

import (
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/ts4z/jumble/config"
)

var (
	echoArgs   bool
	inputRange string
	headCount  uint64
	outputFile string
	zeroTerm   bool

	clock clockwork.Clock = clockwork.NewRealClock()
)

var rootCmd = &cobra.Command{
	Use:   "jumble [FILE | -e ARG... | -i L-H]",
	Short: "Write a random permutation of the input lines",
	Long: `Jumble writes a random permutation of its input lines to standard
output.  Input comes from a file or standard input, from literal
arguments (-e), or from an inclusive numeric range (-i L-H).`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&echoArgs, "echo", "e", false, "treat each ARG as an input line")
	rootCmd.Flags().StringVarP(&inputRange, "input-range", "i", "", "treat each number L through H as an input line")
	rootCmd.Flags().Uint64VarP(&headCount, "head-count", "n", 0, "output at most NUM lines")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write result to FILE instead of standard output")
	rootCmd.Flags().BoolVarP(&zeroTerm, "zero-terminated", "z", false, "terminate lines with NUL, not newline")
	rootCmd.MarkFlagsMutuallyExclusive("echo", "input-range")
	rootCmd.SilenceUsage = true
}

func main() {
	config.Init()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
