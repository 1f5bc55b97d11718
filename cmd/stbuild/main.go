// stbuild builds the range min-max tree index over a parentheses sequence
// given as the single positional argument and reports the construction time
// as one CSV line: workers,input,n,seconds.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"SuccinctBP/bits"
	"SuccinctBP/rmmtree"
)

func main() {
	var (
		workers = flag.Int("workers", runtime.NumCPU(), "Number of construction workers")
		mem     = flag.Bool("mem", false, "Print the index memory report to stderr")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-workers N] [-mem] <parentheses sequence>\n", os.Args[0])
		os.Exit(1)
	}
	input := flag.Arg(0)

	b, err := bits.NewFromParentheses(input)
	if err != nil {
		fail("bad input: %v", err)
	}

	runtime.GOMAXPROCS(*workers)

	start := time.Now()
	st, err := rmmtree.New(b, *workers)
	if err != nil {
		fail("build failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d,%s,%d,%f\n", *workers, input, b.Len(), elapsed.Seconds())

	if *mem {
		fmt.Fprint(os.Stderr, st.MemDetailed().String())
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
