package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const day5Sample = `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func mustParseCratePlan(t *testing.T, input string) *cratePlan {
	t.Helper()
	plan, err := parseCratePlan(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	return plan
}

func stackStrings(stacks []crateStack) []string {
	s := make([]string, len(stacks))
	for i, stack := range stacks {
		s[i] = string(stack)
	}
	return s
}

func TestParseCratePlan(t *testing.T) {
	plan := mustParseCratePlan(t, day5Sample)
	wantStacks := []string{"ZN", "MCD", "P"}
	if diff := pretty.Diff(stackStrings(plan.stacks), wantStacks); len(diff) > 0 {
		t.Errorf("stacks differ from %v:\n%s", wantStacks, strings.Join(diff, "\n"))
	}
	wantMoves := []move{
		{n: 1, from: 1, to: 0},
		{n: 3, from: 0, to: 2},
		{n: 2, from: 1, to: 0},
		{n: 1, from: 0, to: 1},
	}
	if len(plan.moves) != len(wantMoves) {
		t.Fatalf("got %d moves; want %d", len(plan.moves), len(wantMoves))
	}
	for i, m := range plan.moves {
		if m != wantMoves[i] {
			t.Errorf("move %d: got %+v; want %+v", i+1, m, wantMoves[i])
		}
	}
}

func TestParseDrawingStackCount(t *testing.T) {
	for _, tt := range []struct {
		drawing []string
		want    int
	}{
		{[]string{" 1 "}, 1},
		{[]string{"[A]", " 1"}, 1},
		{[]string{"    [B]", " 1   2   3   4 "}, 4},
		{[]string{"[A]         [D]", "[A] [B] [C] [D]", " 1   2   3   4   5   6"}, 6},
	} {
		stacks, err := parseDrawing(tt.drawing)
		if err != nil {
			t.Errorf("parseDrawing(%q): %s", tt.drawing, err)
			continue
		}
		if got := len(stacks); got != tt.want {
			t.Errorf("parseDrawing(%q): got %d stacks; want %d", tt.drawing, got, tt.want)
		}
	}
}

func TestParseDrawingError(t *testing.T) {
	for _, drawing := range [][]string{
		nil,
		{"[A] [B]"},
		{"[A]", " 2"},
		{"[A]", "1   2"},
		{"[A] [B] [C]", " 1   2"},
		{"[AA]", " 1   2"},
		{"A", " 1"},
		{"[A]", "", " 1"},
		{"[A]", "    [B]", " 1   2"},
	} {
		_, err := parseDrawing(drawing)
		if !errors.Is(err, errMalformedDrawing) {
			t.Errorf("parseDrawing(%q): got error %v; want %v", drawing, err, errMalformedDrawing)
		}
	}
}

func TestParseMoveError(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want error
	}{
		{"", errInvalidInstruction},
		{"move a from 1 to 2", errInvalidInstruction},
		{"move 1 from 1", errInvalidInstruction},
		{"move 1 from 1 to 2 now", errInvalidInstruction},
		{"shift 1 from 1 to 2", errInvalidInstruction},
		{"move -1 from 1 to 2", errInvalidInstruction},
		{"move 1 from 1 to +2", errInvalidInstruction},
		{"move 99999999999999999999 from 1 to 2", errInvalidInstruction},
		{"move 1 from 0 to 2", errStackIndex},
		{"move 1 from 1 to 4", errStackIndex},
	} {
		m, err := parseMove(tt.s, 3)
		if !errors.Is(err, tt.want) {
			t.Errorf("parseMove(%q): got (%v, %v); want error %v", tt.s, m, err, tt.want)
		}
	}
}

func TestParseCratePlanInstructionLine(t *testing.T) {
	input := strings.Replace(day5Sample, "move 2 from 2 to 1", "move two from 2 to 1", 1)
	_, err := parseCratePlan(strings.NewReader(input))
	if !errors.Is(err, errInvalidInstruction) {
		t.Fatalf("got error %v; want %v", err, errInvalidInstruction)
	}
	if want := "line 8:"; !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got error %q; want it to start with %q", err, want)
	}
}

func TestTopCrates(t *testing.T) {
	plan := mustParseCratePlan(t, day5Sample)
	for _, tt := range []struct {
		mode craneMode
		want string
	}{
		{oneAtATime, "CMZ"},
		{blockPreserving, "MCD"},
	} {
		got, err := plan.topCrates(tt.mode)
		if err != nil {
			t.Fatalf("%s: %s", tt.mode, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q; want %q", tt.mode, got, tt.want)
		}
	}
	// The parsed plan is untouched.
	want := []string{"ZN", "MCD", "P"}
	if diff := pretty.Diff(stackStrings(plan.stacks), want); len(diff) > 0 {
		t.Errorf("plan stacks changed:\n%s", strings.Join(diff, "\n"))
	}
}

func TestRunNoMoves(t *testing.T) {
	for _, tt := range []struct {
		input string
		tops  string
	}{
		{"    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3\n", "NDP"},
		{"[N] [D]\n 1   2   3\n\n", "ND"},
	} {
		plan := mustParseCratePlan(t, tt.input)
		for _, mode := range []craneMode{oneAtATime, blockPreserving} {
			stacks, err := plan.run(mode)
			if err != nil {
				t.Fatal(err)
			}
			if diff := pretty.Diff(stackStrings(stacks), stackStrings(plan.stacks)); len(diff) > 0 {
				t.Errorf("%s: stacks changed with no moves:\n%s", mode, strings.Join(diff, "\n"))
			}
			if got := topsOf(stacks); got != tt.tops {
				t.Errorf("%s: got tops %q; want %q", mode, got, tt.tops)
			}
		}
	}
}

func TestApplyMove(t *testing.T) {
	for _, tt := range []struct {
		m     move
		one   []string
		block []string
	}{
		{move{1, 0, 1}, []string{"AB", "XYC"}, []string{"AB", "XYC"}},
		{move{3, 0, 1}, []string{"", "XYCBA"}, []string{"", "XYABC"}},
		{move{2, 1, 0}, []string{"ABCYX", ""}, []string{"ABCXY", ""}},
		{move{0, 0, 1}, []string{"ABC", "XY"}, []string{"ABC", "XY"}},
		{move{2, 0, 0}, []string{"ABC", "XY"}, []string{"ABC", "XY"}},
	} {
		for _, mode := range []craneMode{oneAtATime, blockPreserving} {
			stacks := []crateStack{crateStack("ABC"), crateStack("XY")}
			if err := applyMove(stacks, tt.m, mode); err != nil {
				t.Fatalf("%s %s: %s", mode, tt.m, err)
			}
			want := tt.one
			if mode == blockPreserving {
				want = tt.block
			}
			if diff := pretty.Diff(stackStrings(stacks), want); len(diff) > 0 {
				t.Errorf("%s %s: got %q; want %q", mode, tt.m, stackStrings(stacks), want)
			}
		}
	}
}

func TestApplyMoveError(t *testing.T) {
	for _, tt := range []struct {
		m    move
		want error
	}{
		{move{4, 0, 1}, errStackDepth},
		{move{1, 2, 1}, errStackIndex},
		{move{1, 0, -1}, errStackIndex},
	} {
		for _, mode := range []craneMode{oneAtATime, blockPreserving} {
			stacks := []crateStack{crateStack("ABC"), crateStack("XY")}
			err := applyMove(stacks, tt.m, mode)
			if !errors.Is(err, tt.want) {
				t.Errorf("%s %v: got error %v; want %v", mode, tt.m, err, tt.want)
			}
		}
	}
}

func TestRunDepthError(t *testing.T) {
	input := strings.Replace(day5Sample, "move 3 from 1 to 3", "move 4 from 1 to 3", 1)
	plan := mustParseCratePlan(t, input)
	for _, mode := range []craneMode{oneAtATime, blockPreserving} {
		_, err := plan.run(mode)
		if !errors.Is(err, errStackDepth) {
			t.Errorf("%s: got error %v; want %v", mode, err, errStackDepth)
		}
	}
}

func TestDrawStacks(t *testing.T) {
	plan := mustParseCratePlan(t, day5Sample)
	want := "    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3 \n"
	got := drawStacks(plan.stacks)
	if got != want {
		t.Errorf("got drawing\n%s\nwant\n%s", got, want)
	}
	stacks, err := parseDrawing(strings.Split(strings.TrimSuffix(got, "\n"), "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(stackStrings(stacks), stackStrings(plan.stacks)); len(diff) > 0 {
		t.Errorf("redrawn stacks differ:\n%s", strings.Join(diff, "\n"))
	}
}

func TestCrateStepper(t *testing.T) {
	plan := mustParseCratePlan(t, day5Sample)
	s := newCrateStepper(plan)
	var out bytes.Buffer
	for _, line := range []string{"", "n 10", "t"} {
		if s.command(&out, line) {
			t.Fatalf("command %q quit", line)
		}
	}
	if got, want := out.String(), "CMZ\n"; !strings.HasSuffix(got, want) {
		t.Errorf("got output ending %q; want %q", got, want)
	}
	out.Reset()
	for _, line := range []string{"m", "n 4", "t"} {
		s.command(&out, line)
	}
	if got, want := out.String(), "MCD\n"; !strings.HasSuffix(got, want) {
		t.Errorf("got output ending %q; want %q", got, want)
	}
	if !s.command(&out, "q") {
		t.Error("q did not quit")
	}
}
