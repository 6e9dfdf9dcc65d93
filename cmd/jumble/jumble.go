package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ts4z/jumble/config"
	"github.com/ts4z/jumble/lines"
	"github.com/ts4z/jumble/shuffle"
)

func run(cmd *cobra.Command, args []string) error {
	seq, err := resolve(cmd, args)
	if err != nil {
		return err
	}

	outlines := clamp(seq.Len(), cmd.Flags().Changed("head-count"), headCount)

	src := shuffle.NewSource(shuffle.SeedMicros(clock))
	shuffle.Sample(seq, outlines, src)

	return writeSample(cmd, seq, outlines)
}

// resolve picks the input mode from the flags and produces the line
// sequence for it.  Echo and range mode are mutually exclusive; cobra
// enforces that before we get here.
func resolve(cmd *cobra.Command, args []string) (lines.Sequence, error) {
	switch {
	case echoArgs:
		return lines.FromArgs(args), nil

	case cmd.Flags().Changed("input-range"):
		if len(args) > 0 {
			return nil, usageError(cmd, "--input-range takes no FILE argument")
		}
		return lines.ParseRange(inputRange)

	default:
		if len(args) > 1 {
			return nil, usageError(cmd, "too many arguments")
		}
		name := "-"
		if len(args) == 1 {
			name = args[0]
		}
		in, err := lines.Open(name)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		return lines.ReadAll(in)
	}
}

// clamp applies --head-count.  Asking for more lines than exist just
// gets you everything; that's the user's problem, not an error.
func clamp(numlines int, requested bool, n uint64) int {
	if !requested || n >= uint64(numlines) {
		return numlines
	}
	return int(n)
}

func writeSample(cmd *cobra.Command, seq lines.Sequence, outlines int) error {
	name := outputFile
	if name == "" {
		name = config.Output()
	}
	eol := byte('\n')
	if zeroTerm || (!cmd.Flags().Changed("zero-terminated") && config.ZeroTerminated()) {
		eol = 0
	}

	if name == "" {
		return emit(os.Stdout, seq, outlines, eol)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("can't create %s: %w", name, err)
	}
	if err := emit(f, seq, outlines, eol); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}

// emit writes the trailing outlines entries of seq, where Sample left
// the selected lines, one terminator after each.
func emit(w io.Writer, seq lines.Sequence, outlines int, eol byte) error {
	bw := bufio.NewWriter(w)
	for i := seq.Len() - outlines; i < seq.Len(); i++ {
		if _, err := bw.WriteString(seq.At(i)); err != nil {
			return err
		}
		if err := bw.WriteByte(eol); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func usageError(cmd *cobra.Command, msg string) error {
	_ = cmd.Usage()
	return errors.New(msg)
}
