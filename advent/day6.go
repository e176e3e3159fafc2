package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

func init() {
	register("6", day6)
}

func day6(args []string) {
	r := mustOpenInput(args)
	defer r.Close()
	signal, err := parseSignal(r)
	if err != nil {
		log.Fatal(err)
	}
	for _, size := range []int{4, 14} {
		n, err := findMarker(signal, size)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(n)
	}
}

func parseSignal(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			return s, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("empty signal")
}

// findMarker returns the number of characters of signal that have been
// read when the last size characters are all different.
func findMarker(signal string, size int) (int, error) {
	var counts [256]int
	var dups int
	for i := 0; i < len(signal); i++ {
		if counts[signal[i]]++; counts[signal[i]] == 2 {
			dups++
		}
		if i >= size {
			c := signal[i-size]
			if counts[c]--; counts[c] == 1 {
				dups--
			}
		}
		if i >= size-1 && dups == 0 {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no run of %d distinct characters", size)
}
