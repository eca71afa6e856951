package bot

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/iamasit07/connect4-agents/internal/domain"
)

func newTestAgent(h Heuristic) *Agent {
	return NewAgent("test", h, rand.New(rand.NewSource(1)))
}

func TestDecideScenarios(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		heuristic Heuristic
		wantCol   int
		wantRule  Rule
	}{
		{
			name:      "empty board opens in the centre",
			rows:      []string{".......", ".......", ".......", ".......", ".......", "......."},
			heuristic: Adjacency,
			wantCol:   3, wantRule: RuleCenterPreference,
		},
		{
			name:      "empty board opens in the centre with lookahead",
			rows:      []string{".......", ".......", ".......", ".......", ".......", "......."},
			heuristic: Lookahead,
			wantCol:   3, wantRule: RuleCenterPreference,
		},
		{
			name:      "three on the bottom row wins on the left end",
			rows:      []string{".......", ".......", ".......", ".......", ".......", "..XXX.."},
			heuristic: Adjacency,
			wantCol:   1, wantRule: RuleImmediateWin,
		},
		{
			name:      "blocks a vertical three",
			rows:      []string{".......", ".......", ".......", "....O..", "....O..", "X.X.O.X"},
			heuristic: Adjacency,
			wantCol:   4, wantRule: RuleMustBlock,
		},
		{
			name:      "winning beats blocking",
			rows:      []string{".......", ".......", ".......", "......O", "......O", "XXX...O"},
			heuristic: Lookahead,
			wantCol:   3, wantRule: RuleImmediateWin,
		},
		{
			name:      "adjacency tie broken by blocking",
			rows:      []string{"......", "......", "......", "......", "......", "OO.X.."},
			heuristic: Adjacency,
			wantCol:   2, wantRule: RuleHeuristicScore,
		},
		{
			name:      "adjacency full tie goes left",
			rows:      []string{"......", "......", "......", "......", "......", "......"},
			heuristic: Adjacency,
			wantCol:   0, wantRule: RuleHeuristicScore,
		},
		{
			name:      "lookahead extends the longest streak",
			rows:      []string{"......", "......", "......", "......", "......", "XX...."},
			heuristic: Lookahead,
			wantCol:   2, wantRule: RuleHeuristicScore,
		},
		{
			name:      "lookahead sets up an open three",
			rows:      []string{".......", ".......", ".......", ".......", ".......", "..XX..."},
			heuristic: Lookahead,
			wantCol:   1, wantRule: RuleSetupOwnWin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows...)
			d, err := newTestAgent(tt.heuristic).Decide(b, domain.First, domain.Second)
			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if d.Column != tt.wantCol || d.Rule != tt.wantRule {
				t.Errorf("Decide = column %d (%s), want column %d (%s)\n%s",
					d.Column, d.Rule, tt.wantCol, tt.wantRule, b)
			}
		})
	}
}

func TestDecideAvoidsDangerousCentre(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXO....",
	)
	for _, h := range []Heuristic{Adjacency, Lookahead} {
		d, err := newTestAgent(h).Decide(b, domain.First, domain.Second)
		if err != nil {
			t.Fatal(err)
		}
		if d.Column == 3 {
			t.Errorf("%s agent played the dangerous centre (%s)", h, d.Rule)
		}
		if d.Rule == RuleRandomFallback || d.Rule == RuleStalemateFallback {
			t.Errorf("%s agent fell back although safe columns exist", h)
		}
	}
}

func TestDecideStalemateFallback(t *testing.T) {
	b := mustBoard(t,
		"XOX.",
		"OOO.",
		"XOX.",
	)
	d, err := newTestAgent(Adjacency).Decide(b, domain.First, domain.Second)
	if err != nil {
		t.Fatal(err)
	}
	if d.Column != 3 || d.Rule != RuleStalemateFallback {
		t.Errorf("Decide = %d (%s), want 3 (%s)", d.Column, d.Rule, RuleStalemateFallback)
	}
}

func TestDecideFullBoard(t *testing.T) {
	b := mustBoard(t,
		"XO",
		"OX",
	)
	a := newTestAgent(Adjacency)
	if _, err := a.Decide(b, domain.First, domain.Second); !errors.Is(err, domain.ErrNoLegalMove) {
		t.Fatalf("err = %v, want ErrNoLegalMove", err)
	}
	if err := a.Move(b, domain.First, domain.Second); !errors.Is(err, domain.ErrNoLegalMove) {
		t.Fatalf("Move err = %v", err)
	}
}

func TestDecideRejectsBadColors(t *testing.T) {
	b := domain.NewBoard(7, 6)
	a := newTestAgent(Adjacency)
	if _, err := a.Decide(b, domain.First, domain.First); !errors.Is(err, domain.ErrInvalidColor) {
		t.Errorf("err = %v, want ErrInvalidColor", err)
	}
	if _, err := a.Decide(b, domain.Empty, domain.First); !errors.Is(err, domain.ErrInvalidColor) {
		t.Errorf("err = %v, want ErrInvalidColor", err)
	}
}

func TestMovePlacesExactlyOneToken(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		b := randomPosition(rng, 7, 6, rng.Intn(30))
		if b.IsFull() || domain.Winner(b) != domain.Empty {
			continue
		}
		me := domain.First
		if b.TokenCount()%2 == 1 {
			me = domain.Second
		}
		for _, kind := range Kinds() {
			e, _ := NewEngine(kind, rand.New(rand.NewSource(int64(i))))
			after := b.Clone()
			if err := e.Move(after, me, me.Opponent()); err != nil {
				t.Fatalf("%s Move: %v", kind, err)
			}
			if _, err := domain.Validate(b, after, me); err != nil {
				t.Fatalf("%s produced an invalid turn: %v\n%s", kind, err, after)
			}
		}
	}
}

func TestDecisionProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		b := randomPosition(rng, 7, 6, rng.Intn(36))
		if b.IsFull() {
			continue
		}
		me := domain.First
		if b.TokenCount()%2 == 1 {
			me = domain.Second
		}
		opp := me.Opponent()
		winCol, canWin := BestThreatColumn(b, me, 0, true)
		blockCol, mustBlock := BestThreatColumn(b, opp, 0, true)

		for _, h := range []Heuristic{Adjacency, Lookahead} {
			d, err := newTestAgent(h).Decide(b, me, opp)
			if err != nil {
				t.Fatal(err)
			}
			if b.LowestEmptyRow(d.Column) < 0 {
				t.Fatalf("chose full column %d", d.Column)
			}
			switch {
			case canWin:
				if d.Rule != RuleImmediateWin || d.Column != winCol {
					t.Fatalf("missed win in column %d: got %d (%s)\n%s", winCol, d.Column, d.Rule, b)
				}
			case mustBlock:
				if d.Rule != RuleMustBlock || d.Column != blockCol {
					t.Fatalf("missed block in column %d: got %d (%s)\n%s", blockCol, d.Column, d.Rule, b)
				}
			}
			switch d.Rule {
			case RuleSetupOwnWin, RuleCenterPreference, RuleHeuristicScore:
				if IsDangerous(b, d.Column, me) {
					t.Fatalf("%s chose dangerous column %d via %s\n%s", h, d.Column, d.Rule, b)
				}
			}
		}
	}
}

func TestHeuristicTieGoesLeftmost(t *testing.T) {
	// mirror images: both candidate columns score the same
	left := mustBoard(t, "......", "......", "......", "......", "......", ".X..X.")
	d, err := newTestAgent(Adjacency).Decide(left, domain.First, domain.Second)
	if err != nil {
		t.Fatal(err)
	}
	if d.Column != 0 {
		t.Errorf("Decide = %d, want leftmost column 0", d.Column)
	}
}
