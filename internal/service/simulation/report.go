package simulation

import (
	"fmt"
	"strings"
)

// Report renders the summary table printed by the CLI.
func (s *Summary) Report() string {
	t := s.Tally
	var sb strings.Builder
	sb.WriteString("\n===== SIM COMPLETE =====\n")
	fmt.Fprintf(&sb, "%q as FIRST\n%q as SECOND\n", s.FirstName, s.SecondName)
	sb.WriteString("                 Amt    Pct\n")
	fmt.Fprintf(&sb, "  First Wins:   %5d  %6.2f%%\n", t.FirstWins, t.percent(t.FirstWins))
	fmt.Fprintf(&sb, "  Second Wins:  %5d  %6.2f%%\n", t.SecondWins, t.percent(t.SecondWins))
	fmt.Fprintf(&sb, "  Draws:        %5d  %6.2f%%\n", t.Draws, t.percent(t.Draws))
	fmt.Fprintf(&sb, "  Errors:       %5d  %6.2f%%\n", t.Errors, t.percent(t.Errors))
	for _, msg := range t.ErrorMessages() {
		fmt.Fprintf(&sb, "   %5dx: %q\n", t.ErrorCounts[msg], msg)
	}
	sb.WriteString("========================\n")
	return sb.String()
}

// Event is the analytics payload for a finished batch.
func (s *Summary) Event() map[string]any {
	return map[string]any{
		"batchId":    s.BatchID,
		"first":      s.Config.First,
		"second":     s.Config.Second,
		"games":      s.Tally.Games,
		"seed":       s.Config.Seed,
		"firstWins":  s.Tally.FirstWins,
		"secondWins": s.Tally.SecondWins,
		"draws":      s.Tally.Draws,
		"errors":     s.Tally.Errors,
		"elapsedMs":  s.Elapsed.Milliseconds(),
	}
}
