package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/connect4-agents/internal/domain"
	"github.com/iamasit07/connect4-agents/internal/service/simulation"
)

type tickMsg time.Time

// replay steps through a finished game one turn per tick.
type replay struct {
	board  *domain.Board
	turns  []simulation.Turn
	next   int
	result simulation.GameResult
	first  string
	second string
	seed   int64
	delay  time.Duration
	paused bool
}

func newReplay(cols, rows int, turns []simulation.Turn, result simulation.GameResult, first, second string, seed int64, delay time.Duration) replay {
	return replay{
		board:  domain.NewBoard(cols, rows),
		turns:  turns,
		result: result,
		first:  first,
		second: second,
		seed:   seed,
		delay:  delay,
	}
}

func (m replay) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m replay) Init() tea.Cmd {
	return m.tick()
}

func (m replay) done() bool { return m.next >= len(m.turns) }

func (m *replay) step() {
	if m.done() {
		return
	}
	t := m.turns[m.next]
	m.board.Drop(t.Column, t.Color)
	m.next++
}

func (m replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.paused = !m.paused
			if !m.paused && !m.done() {
				return m, m.tick()
			}
		case "n", "right":
			m.step()
		}
	case tickMsg:
		if m.paused || m.done() {
			return m, nil
		}
		m.step()
		if !m.done() {
			return m, m.tick()
		}
	}
	return m, nil
}

func (m replay) View() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "X %s  vs  O %s   (seed %d)\n\n", m.first, m.second, m.seed)
	for c := 0; c < m.board.ColumnCount(); c++ {
		fmt.Fprintf(&sb, "%d", c%10)
	}
	sb.WriteString("\n")
	sb.WriteString(m.board.String())
	sb.WriteString("\n")

	if m.next > 0 {
		last := m.turns[m.next-1]
		fmt.Fprintf(&sb, "Move %d/%d: %s -> column %d\n", m.next, len(m.turns), last.Color, last.Column)
	} else {
		fmt.Fprintf(&sb, "Move 0/%d\n", len(m.turns))
	}

	if m.done() {
		fmt.Fprintf(&sb, "Result: %s (starter %s)\n", m.result.Outcome, m.result.Starter)
		if m.result.Err != nil {
			fmt.Fprintf(&sb, "Error: %v\n", m.result.Err)
		}
	} else if m.paused {
		sb.WriteString("Paused\n")
	}

	sb.WriteString("\nspace pause, n step, q quit\n")
	return sb.String()
}
