package simulation

import "sort"

// Tally accumulates game results. Tallies from independent workers are
// combined with Merge.
type Tally struct {
	Games       int            `json:"games"`
	FirstWins   int            `json:"firstWins"`
	SecondWins  int            `json:"secondWins"`
	Draws       int            `json:"draws"`
	Errors      int            `json:"errors"`
	TotalMoves  int            `json:"totalMoves"`
	ErrorCounts map[string]int `json:"errorCounts,omitempty"`
}

func (t *Tally) Add(r GameResult) {
	t.Games++
	t.TotalMoves += r.Moves
	switch r.Outcome {
	case FirstWins:
		t.FirstWins++
	case SecondWins:
		t.SecondWins++
	case Draw:
		t.Draws++
	default:
		t.Errors++
		msg := "unknown error"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		if t.ErrorCounts == nil {
			t.ErrorCounts = make(map[string]int)
		}
		t.ErrorCounts[msg]++
	}
}

func (t *Tally) Merge(o Tally) {
	t.Games += o.Games
	t.FirstWins += o.FirstWins
	t.SecondWins += o.SecondWins
	t.Draws += o.Draws
	t.Errors += o.Errors
	t.TotalMoves += o.TotalMoves
	for msg, n := range o.ErrorCounts {
		if t.ErrorCounts == nil {
			t.ErrorCounts = make(map[string]int)
		}
		t.ErrorCounts[msg] += n
	}
}

// ErrorMessages returns the distinct error messages in sorted order.
func (t Tally) ErrorMessages() []string {
	msgs := make([]string, 0, len(t.ErrorCounts))
	for msg := range t.ErrorCounts {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return msgs
}

func (t Tally) percent(n int) float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(n) / float64(t.Games) * 100
}
