// uwc - Ultra word count
//
// A modern, high-performance wc written in Go.
// Uses manual argument parsing for POSIX compatibility (supports -lw style
// combined flags).
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kolkov/uwc"
	"github.com/kolkov/uwc/internal/input"
	"github.com/kolkov/uwc/internal/locale"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: uwc [-clmwL] [--files0-from F] [-j N] [file ...]"
	longUsage  = `Print newline, word, and byte counts for each FILE, and a total row if
more than one FILE is given. With no FILE, or when FILE is -, read stdin.
A word is a non-zero-length run of non-whitespace delimited by whitespace.

Count selection (default -lwc):
  -l, --lines            print the newline counts
  -w, --words            print the word counts
  -c, --bytes            print the byte counts
  -m, --chars            print the character counts (multi-byte aware)
  -L, --max-line-length  print the length of the longest line

Input:
  --files0-from F        read NUL-terminated names from F ('-' for stdin)
                         cannot be combined with FILE operands
                         FILEs ending in .lz4 are decompressed while counting

Performance options:
  -j N                   count files with N parallel workers
                         (default: min(4, NumCPU); -j 0 uses all CPUs)

Other:
  -h, --help             show this help message
  -version               show uwc version and exit
`
)

// selection records which counters were requested on the command line.
type selection struct {
	lines, words, bytes, chars, maxLine bool
}

func (s selection) none() bool {
	return !s.lines && !s.words && !s.bytes && !s.chars && !s.maxLine
}

//nolint:gocyclo,funlen // CLI argument parsing is inherently complex
func main() {
	// Parse command line arguments manually rather than using the "flag"
	// package, so we can support clustered short flags like '-lw' the way
	// POSIX wc does.
	var sel selection
	var files0From string
	workers := -1 // default: min(4, NumCPU)

	var i int
	for i = 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-l", "--lines":
			sel.lines = true
		case "-w", "--words":
			sel.words = true
		case "-c", "--bytes":
			sel.bytes = true
		case "-m", "--chars":
			sel.chars = true
		case "-L", "--max-line-length":
			sel.maxLine = true
		case "--files0-from":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: --files0-from")
			}
			i++
			files0From = os.Args[i]
		case "-j":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -j")
			}
			i++
			n, err := strconv.Atoi(os.Args[i])
			if err != nil || n < 0 {
				errorExitf("invalid number of workers: %s", os.Args[i])
			}
			workers = n
		case "-h", "--help":
			fmt.Printf("uwc %s - Ultra word count\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("uwc version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			fmt.Printf("  lanes:  %s\n", uwc.TierName())
			os.Exit(0)
		default:
			switch {
			case strings.HasPrefix(arg, "--files0-from="):
				files0From = arg[len("--files0-from="):]
			case strings.HasPrefix(arg, "-j"):
				n, err := strconv.Atoi(arg[2:])
				if err != nil || n < 0 {
					errorExitf("invalid number of workers: %s", arg[2:])
				}
				workers = n
			case len(arg) > 1 && arg[1] != '-':
				// Clustered short flags: -lw, -cm, ...
				for _, f := range arg[1:] {
					switch f {
					case 'l':
						sel.lines = true
					case 'w':
						sel.words = true
					case 'c':
						sel.bytes = true
					case 'm':
						sel.chars = true
					case 'L':
						sel.maxLine = true
					default:
						errorExitf("flag provided but not defined: -%c", f)
					}
				}
			default:
				errorExitf("flag provided but not defined: %s", arg)
			}
		}
	}

	// POSIX default selection.
	if sel.none() {
		sel.lines = true
		sel.words = true
		sel.bytes = true
	}

	// Remaining args are input operands.
	paths := os.Args[i:]

	if files0From != "" {
		if len(paths) > 0 {
			errorExitf("file operands cannot be combined with --files0-from")
		}
		var err error
		paths, err = readFiles0(files0From)
		if err != nil {
			errorExitf("%s: %v", files0From, err)
		}
		if len(paths) == 0 {
			return
		}
	}

	loc := locale.Detect()

	if len(paths) == 0 {
		counts, err := input.CountPath(input.Stdin, loc, nil)
		if err != nil {
			errorExitf("%v", err)
		}
		printCounts(counts, sel, "")
		return
	}

	results := input.CountAll(paths, loc, nil, input.PoolConfig{Workers: workers})

	var total uwc.Counts
	failed := false
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "uwc: %v\n", r.Err)
			failed = true
			continue
		}
		total = uwc.Merge(total, r.Counts)
		printCounts(r.Counts, sel, r.Path)
	}
	if len(paths) > 1 {
		printCounts(total, sel, "total")
	}
	if failed {
		os.Exit(1)
	}
}

func readFiles0(from string) ([]string, error) {
	r, err := input.Open(from)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return input.ReadFiles0(r)
}

// printCounts writes one row: the selected counters in the fixed order
// lines, words, chars, bytes, max-line-length, tab-separated, followed by
// the operand name.
func printCounts(c uwc.Counts, sel selection, name string) {
	var sb strings.Builder
	if sel.lines {
		fmt.Fprintf(&sb, "%d\t", c.Lines)
	}
	if sel.words {
		fmt.Fprintf(&sb, "%d\t", c.Words)
	}
	if sel.chars {
		fmt.Fprintf(&sb, "%d\t", c.Chars)
	}
	if sel.bytes {
		fmt.Fprintf(&sb, "%d\t", c.Bytes)
	}
	if sel.maxLine {
		fmt.Fprintf(&sb, "%d\t", c.MaxLineLength)
	}
	row := strings.TrimSuffix(sb.String(), "\t")
	if name != "" {
		fmt.Printf("%s\t%s\n", row, name)
	} else {
		fmt.Println(row)
	}
}

func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "uwc: "+format+"\n", args...)
	fmt.Fprintln(os.Stderr, shortUsage)
	os.Exit(2)
}
