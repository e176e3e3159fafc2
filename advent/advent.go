package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
)

func main() {
	log.SetFlags(0)
	profile := flag.String("fgprof", "", "Write a wall-clock profile of the solution to this file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	fn, ok := solutions[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", flag.Arg(0))
	}
	if *profile == "" {
		fn(flag.Args()[1:])
		return
	}
	f, err := os.Create(*profile)
	if err != nil {
		log.Fatal(err)
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	fn(flag.Args()[1:])
	if err := stop(); err != nil {
		log.Fatalln("Error writing profile:", err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [-fgprof file] [solution] [input]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "The puzzle input is read from stdin if no input file is given.")
}

var solutions = make(map[string]func([]string))

func register(name string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// openInput returns the puzzle input named by the first of args, or stdin.
func openInput(args []string) (io.ReadCloser, error) {
	switch len(args) {
	case 0:
		return io.NopCloser(os.Stdin), nil
	case 1:
		return os.Open(args[0])
	default:
		return nil, fmt.Errorf("too many args (want at most an input file; got %d)", len(args))
	}
}

// mustOpenInput is openInput for solution entry points.
func mustOpenInput(args []string) io.ReadCloser {
	r, err := openInput(args)
	if err != nil {
		log.Fatal(err)
	}
	return r
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
