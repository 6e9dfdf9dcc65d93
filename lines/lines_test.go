package lines

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func render(seq Sequence) []string {
	out := make([]string, seq.Len())
	for i := range out {
		out[i] = seq.At(i)
	}
	return out
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []string
		wantErr bool
	}{
		{
			name: "simple range",
			spec: "3-5",
			want: []string{"3", "4", "5"},
		},
		{
			name: "single-element range",
			spec: "3-3",
			want: []string{"3"},
		},
		{
			name: "zero is a fine lower bound",
			spec: "0-2",
			want: []string{"0", "1", "2"},
		},
		{
			name: "large values render in full",
			spec: "18446744073709551613-18446744073709551615",
			want: []string{"18446744073709551613", "18446744073709551614", "18446744073709551615"},
		},
		{
			name:    "reversed bounds",
			spec:    "5-3",
			wantErr: true,
		},
		{
			name:    "no hyphen",
			spec:    "35",
			wantErr: true,
		},
		{
			name:    "empty",
			spec:    "",
			wantErr: true,
		},
		{
			name:    "missing high bound",
			spec:    "3-",
			wantErr: true,
		},
		{
			name:    "missing low bound",
			spec:    "-5",
			wantErr: true,
		},
		{
			name:    "not numbers",
			spec:    "a-b",
			wantErr: true,
		},
		{
			name:    "negative bound",
			spec:    "3--5",
			wantErr: true,
		},
		{
			name:    "count wraps uint64",
			spec:    "0-18446744073709551615",
			wantErr: true,
		},
		{
			name:    "count exceeds addressable size",
			spec:    "0-9223372036854775807",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ParseRange(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRange(%q) succeeded, want bad range", tt.spec)
				}
				var re *RangeError
				if !errors.As(err, &re) {
					t.Errorf("ParseRange(%q) error = %v, want *RangeError", tt.spec, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRange(%q) = %v", tt.spec, err)
			}
			if got := render(seq); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRange(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestRangeErrorMessage(t *testing.T) {
	_, err := ParseRange("5-3")
	if err == nil {
		t.Fatal("ParseRange(\"5-3\") succeeded")
	}
	if got, want := err.Error(), `bad range "5-3"`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestFromArgsAliasesCallerSlice(t *testing.T) {
	args := []string{"a", "b", "c"}
	seq := FromArgs(args)

	if seq.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", seq.Len())
	}
	if got := render(seq); !reflect.DeepEqual(got, args) {
		t.Errorf("sequence = %v, want %v", got, args)
	}

	// no copy is made: swapping through the sequence moves the
	// caller's strings
	seq.Swap(0, 2)
	if args[0] != "c" || args[2] != "a" {
		t.Errorf("after Swap(0, 2) args = %v, want [c b a]", args)
	}
}

func TestReadAll(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "terminated lines",
			input: "one\ntwo\nthree\n",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "unterminated final line",
			input: "one\ntwo",
			want:  []string{"one", "two"},
		},
		{
			name:  "blank lines survive",
			input: "\n\n",
			want:  []string{"", ""},
		},
		{
			name:  "single line without newline",
			input: "lonely",
			want:  []string{"lonely"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ReadAll(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadAll() = %v", err)
			}
			if seq.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", seq.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				if got := seq.At(i); got != want {
					t.Errorf("At(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestRangeSwapMovesValues(t *testing.T) {
	seq, err := ParseRange("10-12")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	seq.Swap(0, 2)
	if got, want := render(seq), []string{"12", "11", "10"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after Swap(0, 2) = %v, want %v", got, want)
	}
}
