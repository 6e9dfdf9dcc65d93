// Package lines turns one of jumble's three input modes (file/stdin,
// literal arguments, numeric range) into an addressable sequence of
// lines plus a count.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Sequence is an ordered, mutable collection of line handles.  The
// shuffler only needs Len and Swap (the sort.Interface subset); the
// output stage renders individual entries with At.
type Sequence interface {
	Len() int
	Swap(i, j int)
	At(i int) string
}

// textSequence backs both the file/stdin mode (lines we read and own)
// and the echo mode (strings borrowed from os.Args).  Go's GC makes
// the owned/borrowed distinction moot; the two modes differ only in
// who allocated the strings.
type textSequence []string

func (s textSequence) Len() int        { return len(s) }
func (s textSequence) Swap(i, j int)   { s[i], s[j] = s[j], s[i] }
func (s textSequence) At(i int) string { return s[i] }

// rangeSequence holds synthetic handles for --input-range.  Handle v
// stands for the number lo+v; no text exists until At renders it.
type rangeSequence struct {
	lo      uint64
	handles []uint64
}

func (s *rangeSequence) Len() int      { return len(s.handles) }
func (s *rangeSequence) Swap(i, j int) { s.handles[i], s.handles[j] = s.handles[j], s.handles[i] }

func (s *rangeSequence) At(i int) string {
	return strconv.FormatUint(s.lo+s.handles[i], 10)
}

// RangeError reports a range spec we can't use, whether it failed to
// parse or would describe more lines than we can index.
type RangeError struct {
	Spec string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bad range %q", e.Spec)
}

// FromArgs builds a sequence that aliases args in place.  The caller's
// slice is shuffled directly; nothing is copied.
func FromArgs(args []string) Sequence {
	return textSequence(args)
}

// ParseRange parses a LOW-HIGH spec (inclusive on both ends, split on
// the first hyphen) and builds a sequence of numeric handles for it.
func ParseRange(spec string) (Sequence, error) {
	los, his, ok := strings.Cut(spec, "-")
	if !ok {
		return nil, &RangeError{Spec: spec}
	}
	lo, err := strconv.ParseUint(los, 10, 64)
	if err != nil {
		return nil, &RangeError{Spec: spec}
	}
	hi, err := strconv.ParseUint(his, 10, 64)
	if err != nil {
		return nil, &RangeError{Spec: spec}
	}
	if hi < lo {
		return nil, &RangeError{Spec: spec}
	}
	span := hi - lo
	if span == math.MaxUint64 {
		// span+1 would wrap; nobody has that much memory anyway
		return nil, &RangeError{Spec: spec}
	}
	n, err := safecast.Conv[int](span + 1)
	if err != nil {
		return nil, &RangeError{Spec: spec}
	}
	handles := make([]uint64, n)
	for i := range handles {
		handles[i] = uint64(i)
	}
	return &rangeSequence{lo: lo, handles: handles}, nil
}

// ReadAll slurps newline-terminated lines from r into a sequence.
// The final line is kept even if the input doesn't end in a newline.
// Empty input yields an empty sequence, which is not an error.
func ReadAll(r io.Reader) (Sequence, error) {
	var seq textSequence
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			seq = append(seq, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return seq, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
}

// Open returns the input stream for name.  "-" (or the empty string)
// means stdin, which is handed back behind a no-op Close so callers
// can defer Close unconditionally.
func Open(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("can't open %s: %w", name, err)
	}
	return f, nil
}
