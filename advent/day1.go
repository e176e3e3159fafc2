package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
)

func init() {
	register("1", day1)
}

func day1(args []string) {
	r := mustOpenInput(args)
	defer r.Close()
	elves, err := parseCalories(r)
	if err != nil {
		log.Fatal(err)
	}
	top, err := topCalories(elves, 1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(top)
	top, err = topCalories(elves, 3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(top)
}

// parseCalories reads groups of calorie counts separated by blank lines.
// Each group is one elf's inventory.
func parseCalories(r io.Reader) ([][]int64, error) {
	var elves [][]int64
	var cur []int64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			if cur != nil {
				elves = append(elves, cur)
				cur = nil
			}
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad calorie count %q", line, s)
		}
		cur = append(cur, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		elves = append(elves, cur)
	}
	if len(elves) == 0 {
		return nil, errors.New("no elves")
	}
	return elves, nil
}

// topCalories sums the totals of the n elves carrying the most calories.
// If there are fewer than n elves, it sums all of them.
func topCalories(elves [][]int64, n int) (int64, error) {
	if len(elves) == 0 {
		return 0, errors.New("no elves")
	}
	totals := make([]int64, len(elves))
	for i, elf := range elves {
		for _, c := range elf {
			totals[i] += c
		}
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i] > totals[j] })
	if n > len(totals) {
		n = len(totals)
	}
	var sum int64
	for _, t := range totals[:n] {
		sum += t
	}
	return sum, nil
}
