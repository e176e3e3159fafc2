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
	register("3", day3)
}

func day3(args []string) {
	r := mustOpenInput(args)
	defer r.Close()
	sacks, err := parseRucksacks(r)
	if err != nil {
		log.Fatal(err)
	}
	sum, err := sharedItemPriorities(sacks)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sum)
	sum, err = badgePriorities(sacks)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sum)
}

// An itemSet is a bitmask of item types indexed by priority.
type itemSet uint64

func itemsOf(s string) itemSet {
	var set itemSet
	for i := 0; i < len(s); i++ {
		set |= 1 << priority(s[i])
	}
	return set
}

// only returns the priority of the single item in set.
func (set itemSet) only() (int, error) {
	if set == 0 {
		return 0, errors.New("no common item")
	}
	p := -1
	for i := 1; i <= 52; i++ {
		if set&(1<<i) == 0 {
			continue
		}
		if p >= 0 {
			return 0, errors.New("more than one common item")
		}
		p = i
	}
	return p, nil
}

func priority(c byte) int {
	if c >= 'a' && c <= 'z' {
		return int(c-'a') + 1
	}
	return int(c-'A') + 27
}

func isItem(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type rucksack struct {
	left, right string
}

func (s rucksack) all() itemSet { return itemsOf(s.left) | itemsOf(s.right) }

func parseRucksacks(r io.Reader) ([]rucksack, error) {
	var sacks []rucksack
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		if len(s)%2 != 0 {
			return nil, fmt.Errorf("line %d: odd number of items (%d)", line, len(s))
		}
		for i := 0; i < len(s); i++ {
			if !isItem(s[i]) {
				return nil, fmt.Errorf("line %d: bad item %q", line, s[i])
			}
		}
		sacks = append(sacks, rucksack{left: s[:len(s)/2], right: s[len(s)/2:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sacks, nil
}

// sharedItemPriorities sums the priority of the item type found in both
// compartments of each rucksack.
func sharedItemPriorities(sacks []rucksack) (int, error) {
	var sum int
	for i, s := range sacks {
		p, err := (itemsOf(s.left) & itemsOf(s.right)).only()
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %s", i+1, err)
		}
		sum += p
	}
	return sum, nil
}

// badgePriorities sums the priority of the badge carried by each group of
// three consecutive elves.
func badgePriorities(sacks []rucksack) (int, error) {
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("%d rucksacks cannot be split into groups of 3", len(sacks))
	}
	var sum int
	for i := 0; i < len(sacks); i += 3 {
		badge := sacks[i].all() & sacks[i+1].all() & sacks[i+2].all()
		p, err := badge.only()
		if err != nil {
			return 0, fmt.Errorf("group %d: %s", i/3+1, err)
		}
		sum += p
	}
	return sum, nil
}
