package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

func init() {
	register("4", day4)
}

func day4(args []string) {
	r := mustOpenInput(args)
	defer r.Close()
	pairs, err := parseAssignments(r)
	if err != nil {
		log.Fatal(err)
	}
	var contained, overlapping int
	for _, p := range pairs {
		if p[0].contains(p[1]) || p[1].contains(p[0]) {
			contained++
		}
		if p[0].overlaps(p[1]) {
			overlapping++
		}
	}
	fmt.Println(contained)
	fmt.Println(overlapping)
}

// A sectionRange is an inclusive range of section IDs.
type sectionRange struct {
	lo, hi int64
}

func (r sectionRange) contains(r1 sectionRange) bool {
	return r.lo <= r1.lo && r.hi >= r1.hi
}

func (r sectionRange) overlaps(r1 sectionRange) bool {
	return r.lo <= r1.hi && r1.lo <= r.hi
}

func parseAssignments(r io.Reader) ([][2]sectionRange, error) {
	var pairs [][2]sectionRange
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		a, b, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: bad assignment pair %q", line, s)
		}
		var pair [2]sectionRange
		var err error
		if pair[0], err = parseSectionRange(a); err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err)
		}
		if pair[1], err = parseSectionRange(b); err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err)
		}
		pairs = append(pairs, pair)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func parseSectionRange(s string) (sectionRange, error) {
	var r sectionRange
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return r, fmt.Errorf("bad range %q", s)
	}
	var err error
	if r.lo, err = strconv.ParseInt(lo, 10, 64); err != nil {
		return r, fmt.Errorf("bad range %q", s)
	}
	if r.hi, err = strconv.ParseInt(hi, 10, 64); err != nil {
		return r, fmt.Errorf("bad range %q", s)
	}
	if r.lo > r.hi {
		return r, fmt.Errorf("range %q is backwards", s)
	}
	return r, nil
}
