package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// day5Step replays a crate plan one move at a time at an interactive
// prompt. The plan must come from a file since stdin is the terminal.
func day5Step(args []string) {
	if len(args) != 1 {
		log.Fatal("need 1 arg (the puzzle input file)")
	}
	f, err := os.Open(args[0])
	if err != nil {
		log.Fatal(err)
	}
	plan, err := parseCratePlan(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	l, err := readline.NewEx(&readline.Config{
		HistoryFile: filepath.Join(os.TempDir(), "advent-5step.txt"),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	s := newCrateStepper(plan)
	fmt.Fprint(l.Stdout(), drawStacks(s.stacks))
	for {
		l.SetPrompt(s.prompt())
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		if quit := s.command(l.Stdout(), line); quit {
			return
		}
	}
}

// A crateStepper applies a plan's moves one at a time to its own copy of
// the stacks.
type crateStepper struct {
	plan   *cratePlan
	mode   craneMode
	stacks []crateStack
	next   int // index of the next move to apply
}

func newCrateStepper(plan *cratePlan) *crateStepper {
	return &crateStepper{plan: plan, stacks: plan.cloneStacks()}
}

func (s *crateStepper) prompt() string {
	return fmt.Sprintf("[%s] move %d/%d> ", s.mode, s.next, len(s.plan.moves))
}

func (s *crateStepper) reset() {
	s.stacks = s.plan.cloneStacks()
	s.next = 0
}

// step applies up to n moves. It stops early at the end of the plan or
// at the first move that fails.
func (s *crateStepper) step(n int) (applied int, err error) {
	for ; applied < n && s.next < len(s.plan.moves); applied++ {
		m := s.plan.moves[s.next]
		if err := applyMove(s.stacks, m, s.mode); err != nil {
			return applied, fmt.Errorf("move %d (%s): %w", s.next+1, m, err)
		}
		s.next++
	}
	return applied, nil
}

const crateStepperHelp = `commands:
  n [count]  apply the next count moves (default 1; a blank line is "n")
  p          print the stacks
  t          print the top crates
  m          switch crane mode and reset
  r          reset to the starting stacks
  q          quit
`

// command runs one line typed at the prompt, writing any output to w. It
// reports whether the user asked to quit.
func (s *crateStepper) command(w io.Writer, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		fields = []string{"n"}
	}
	switch fields[0] {
	case "n":
		count := 1
		if len(fields) > 1 {
			var err error
			count, err = strconv.Atoi(fields[1])
			if err != nil || count < 1 {
				fmt.Fprintf(w, "bad move count %q\n", fields[1])
				return false
			}
		}
		applied, err := s.step(count)
		if err != nil {
			fmt.Fprintln(w, err)
		}
		if applied == 0 && err == nil {
			fmt.Fprintln(w, "no moves left")
			return false
		}
		fmt.Fprint(w, drawStacks(s.stacks))
	case "p":
		fmt.Fprint(w, drawStacks(s.stacks))
	case "t":
		fmt.Fprintln(w, topsOf(s.stacks))
	case "m":
		if s.mode == oneAtATime {
			s.mode = blockPreserving
		} else {
			s.mode = oneAtATime
		}
		s.reset()
		fmt.Fprintf(w, "using %s crane\n", s.mode)
	case "r":
		s.reset()
		fmt.Fprint(w, drawStacks(s.stacks))
	case "q":
		return true
	default:
		fmt.Fprint(w, crateStepperHelp)
	}
	return false
}
