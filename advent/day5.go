package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func init() {
	register("5", day5)
	register("5step", day5Step)
}

func day5(args []string) {
	fs := flag.NewFlagSet("5", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Dump the parsed plan to stderr")
	fs.Parse(args)

	r := mustOpenInput(fs.Args())
	defer r.Close()
	plan, err := parseCratePlan(r)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		logCratePlan(plan)
	}
	for _, mode := range []craneMode{oneAtATime, blockPreserving} {
		tops, err := plan.topCrates(mode)
		if err != nil {
			log.Fatalf("%s: %s", mode, err)
		}
		fmt.Println(tops)
	}
}

func logCratePlan(plan *cratePlan) {
	var crates int64
	for _, s := range plan.stacks {
		crates += int64(len(s))
	}
	log.Printf("%d stacks holding %s crates; %s moves",
		len(plan.stacks), humanize.Comma(crates), humanize.Comma(int64(len(plan.moves))))
	dump := struct {
		Stacks []string
		Moves  []string
	}{}
	for _, s := range plan.stacks {
		dump.Stacks = append(dump.Stacks, string(s))
	}
	for _, m := range plan.moves {
		dump.Moves = append(dump.Moves, m.String())
	}
	log.Printf("%# v", pretty.Formatter(dump))
}

var (
	errMalformedDrawing   = errors.New("malformed drawing")
	errInvalidInstruction = errors.New("invalid instruction")
	errStackIndex         = errors.New("stack index out of range")
	errStackDepth         = errors.New("not enough crates in stack")
)

// A craneMode says how a crane relocates several crates in one move.
type craneMode int

const (
	// oneAtATime moves crates individually, so the moved block ends up
	// reversed on its destination.
	oneAtATime craneMode = iota
	// blockPreserving lifts the crates at once and keeps their order.
	blockPreserving
)

func (m craneMode) String() string {
	switch m {
	case oneAtATime:
		return "one-at-a-time"
	case blockPreserving:
		return "block-preserving"
	}
	return fmt.Sprintf("craneMode(%d)", int(m))
}

// A crateStack holds crate labels bottom to top.
type crateStack []byte

// A move relocates n crates from the top of stack from to the top of
// stack to. Stack indexes are 0-based.
type move struct {
	n, from, to int
}

func (m move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.n, m.from+1, m.to+1)
}

// A cratePlan is a starting arrangement of stacks and the moves to apply
// to it. It is not modified once parsed; see run.
type cratePlan struct {
	stacks []crateStack
	moves  []move
}

func parseCratePlan(r io.Reader) (*cratePlan, error) {
	var drawing []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if strings.TrimSpace(scanner.Text()) == "" {
			break
		}
		drawing = append(drawing, scanner.Text())
	}
	stacks, err := parseDrawing(drawing)
	if err != nil {
		return nil, err
	}
	plan := &cratePlan{stacks: stacks}
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		m, err := parseMove(s, len(stacks))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		plan.moves = append(plan.moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return plan, nil
}

// parseDrawing reads a drawing of crates such as
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// The last line labels the stacks; crate k of each row above it sits at
// column 1+4k. Line numbers in errors count from the top of the drawing.
func parseDrawing(lines []string) ([]crateStack, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no drawing", errMalformedDrawing)
	}
	labelLine := len(lines)
	labels := strings.TrimRight(lines[labelLine-1], " ")
	names := strings.Fields(labels)
	for k, name := range names {
		if name != strconv.Itoa(k+1) {
			return nil, fmt.Errorf("line %d: %w: stack label %q should be %d",
				labelLine, errMalformedDrawing, name, k+1)
		}
		if col := 1 + 4*k; !strings.HasPrefix(labels[min(col, len(labels)):], name) {
			return nil, fmt.Errorf("line %d: %w: stack label %s is not at column %d",
				labelLine, errMalformedDrawing, name, col+1)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("line %d: %w: no stack labels", labelLine, errMalformedDrawing)
	}

	stacks := make([]crateStack, len(names))
	width := 4*len(names) - 1
	height := 0
	for i := labelLine - 2; i >= 0; i-- {
		row := strings.TrimRight(lines[i], " ")
		if len(row) > width {
			return nil, fmt.Errorf("line %d: %w: row is wider than the stack labels",
				i+1, errMalformedDrawing)
		}
		for k := range stacks {
			c, ok, err := crateAt(row, k)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %s", i+1, errMalformedDrawing, err)
			}
			if !ok {
				continue
			}
			if len(stacks[k]) != height {
				return nil, fmt.Errorf("line %d: %w: crate %c in stack %d has nothing under it",
					i+1, errMalformedDrawing, c, k+1)
			}
			stacks[k] = append(stacks[k], c)
		}
		height++
	}
	return stacks, nil
}

// crateAt returns the label of the crate drawn in cell k of row, if any.
func crateAt(row string, k int) (byte, bool, error) {
	start := 4 * k
	if start >= len(row) {
		return 0, false, nil
	}
	end := min(start+4, len(row))
	cell := row[start:end]
	if strings.TrimSpace(cell) == "" {
		return 0, false, nil
	}
	if len(cell) < 3 || cell[0] != '[' || cell[2] != ']' || cell[1] == ' ' ||
		(len(cell) == 4 && cell[3] != ' ') {
		return 0, false, fmt.Errorf("bad crate %q at column %d", strings.TrimRight(cell, " "), start+1)
	}
	return cell[1], true, nil
}

// parseMove parses an instruction of the form "move 3 from 1 to 2" for
// a drawing of numStacks stacks.
func parseMove(s string, numStacks int) (move, error) {
	var m move
	fields := strings.Fields(s)
	if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
		return m, fmt.Errorf("%w %q", errInvalidInstruction, s)
	}
	var nums [3]int
	for i, field := range []string{fields[1], fields[3], fields[5]} {
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return m, fmt.Errorf("%w %q: bad number %q", errInvalidInstruction, s, field)
		}
		nums[i] = int(n)
	}
	m = move{n: nums[0], from: nums[1] - 1, to: nums[2] - 1}
	for _, idx := range []int{m.from, m.to} {
		if idx < 0 || idx >= numStacks {
			return m, fmt.Errorf("%w: %q refers to stack %d of %d", errStackIndex, s, idx+1, numStacks)
		}
	}
	return m, nil
}

func (p *cratePlan) cloneStacks() []crateStack {
	stacks := make([]crateStack, len(p.stacks))
	for i, s := range p.stacks {
		stacks[i] = append(crateStack(nil), s...)
	}
	return stacks
}

// run applies the plan's moves to a copy of its stacks and returns the
// final arrangement.
func (p *cratePlan) run(mode craneMode) ([]crateStack, error) {
	stacks := p.cloneStacks()
	for i, m := range p.moves {
		if err := applyMove(stacks, m, mode); err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return stacks, nil
}

// topCrates runs the plan and reports the crate on top of each stack.
func (p *cratePlan) topCrates(mode craneMode) (string, error) {
	stacks, err := p.run(mode)
	if err != nil {
		return "", err
	}
	return topsOf(stacks), nil
}

// topsOf concatenates the top crate of each stack. Empty stacks are
// skipped.
func topsOf(stacks []crateStack) string {
	var b strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			b.WriteByte(s[len(s)-1])
		}
	}
	return b.String()
}

func applyMove(stacks []crateStack, m move, mode craneMode) error {
	for _, idx := range []int{m.from, m.to} {
		if idx < 0 || idx >= len(stacks) {
			return fmt.Errorf("%w: stack %d of %d", errStackIndex, idx+1, len(stacks))
		}
	}
	src := stacks[m.from]
	if m.n < 0 || m.n > len(src) {
		return fmt.Errorf("%w: stack %d holds %d crates", errStackDepth, m.from+1, len(src))
	}
	switch mode {
	case oneAtATime:
		for i := 0; i < m.n; i++ {
			top := len(stacks[m.from]) - 1
			c := stacks[m.from][top]
			stacks[m.from] = stacks[m.from][:top]
			stacks[m.to] = append(stacks[m.to], c)
		}
	case blockPreserving:
		block := append(crateStack(nil), src[len(src)-m.n:]...)
		stacks[m.from] = src[:len(src)-m.n]
		stacks[m.to] = append(stacks[m.to], block...)
	default:
		panic(fmt.Sprintf("bad crane mode %d", int(mode)))
	}
	return nil
}

// drawStacks renders stacks in the same format parseDrawing reads.
func drawStacks(stacks []crateStack) string {
	height := 0
	for _, s := range stacks {
		height = max(height, len(s))
	}
	var b strings.Builder
	for h := height - 1; h >= 0; h-- {
		var row strings.Builder
		for k, s := range stacks {
			if k > 0 {
				row.WriteByte(' ')
			}
			if h < len(s) {
				fmt.Fprintf(&row, "[%c]", s[h])
			} else {
				row.WriteString("   ")
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}
	for k := range stacks {
		if k > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, " %d ", k+1)
	}
	b.WriteByte('\n')
	return b.String()
}
