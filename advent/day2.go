package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
)

func init() {
	register("2", day2)
}

func day2(args []string) {
	r := mustOpenInput(args)
	defer r.Close()
	rounds, err := parseStrategyGuide(r)
	if err != nil {
		log.Fatal(err)
	}
	var score1, score2 int
	for _, rd := range rounds {
		score1 += rd.shapeScore()
		score2 += rd.outcomeScore()
	}
	fmt.Println(score1)
	fmt.Println(score2)
}

type shape int

const (
	rock shape = iota
	paper
	scissors
)

// beats reports the shape that s defeats.
func (s shape) beats() shape { return (s + 2) % 3 }

// beatenBy reports the shape that defeats s.
func (s shape) beatenBy() shape { return (s + 1) % 3 }

func (s shape) score() int { return int(s) + 1 }

type outcome int

const (
	lose outcome = iota
	draw
	win
)

func (o outcome) score() int { return 3 * int(o) }

func play(me, them shape) outcome {
	switch them {
	case me:
		return draw
	case me.beats():
		return win
	default:
		return lose
	}
}

// A round is one line of the strategy guide. The second column is kept
// as an index (0, 1, 2 for X, Y, Z) because the two parts of the puzzle
// read it differently.
type round struct {
	them shape
	col2 int
}

// shapeScore scores the round reading the second column as the shape to
// throw.
func (rd round) shapeScore() int {
	me := shape(rd.col2)
	return me.score() + play(me, rd.them).score()
}

// outcomeScore scores the round reading the second column as the
// outcome to arrange.
func (rd round) outcomeScore() int {
	want := outcome(rd.col2)
	var me shape
	switch want {
	case lose:
		me = rd.them.beats()
	case draw:
		me = rd.them
	case win:
		me = rd.them.beatenBy()
	}
	return me.score() + want.score()
}

func parseStrategyGuide(r io.Reader) ([]round, error) {
	var rounds []round
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		rd, err := parseRound(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err)
		}
		rounds = append(rounds, rd)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}

func parseRound(s string) (round, error) {
	var rd round
	fields := strings.Fields(s)
	if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
		return rd, fmt.Errorf("bad round %q", s)
	}
	c0, c1 := fields[0][0], fields[1][0]
	if c0 < 'A' || c0 > 'C' {
		return rd, fmt.Errorf("bad opponent shape %q", c0)
	}
	if c1 < 'X' || c1 > 'Z' {
		return rd, fmt.Errorf("bad second column %q", c1)
	}
	rd.them = shape(c0 - 'A')
	rd.col2 = int(c1 - 'X')
	return rd, nil
}
