package main

import (
	"errors"
	"testing"

	game "github.com/CodeAndHammer/minigames/internal/game"
	models "github.com/CodeAndHammer/minigames/internal/models"
)

func TestDecideTable(t *testing.T) {
	cases := []struct {
		player, computer models.Move
		want             models.RpsResult
	}{
		{models.Rock, models.Scissors, models.RpsWin},
		{models.Paper, models.Rock, models.RpsWin},
		{models.Scissors, models.Paper, models.RpsWin},
		{models.Rock, models.Paper, models.RpsLose},
		{models.Paper, models.Scissors, models.RpsLose},
		{models.Scissors, models.Rock, models.RpsLose},
		{models.Rock, models.Rock, models.RpsDraw},
		{models.Paper, models.Paper, models.RpsDraw},
		{models.Scissors, models.Scissors, models.RpsDraw},
	}
	for _, c := range cases {
		if got := game.Decide(c.player, c.computer); got != c.want {
			t.Errorf("Decide(%s, %s) = %s, want %s", c.player, c.computer, got, c.want)
		}
	}
}

func TestDecideIsSymmetric(t *testing.T) {
	for _, a := range models.AllMoves {
		for _, b := range models.AllMoves {
			ab, ba := game.Decide(a, b), game.Decide(b, a)
			switch ab {
			case models.RpsWin:
				if ba != models.RpsLose {
					t.Errorf("%s beats %s but reverse is %s", a, b, ba)
				}
			case models.RpsLose:
				if ba != models.RpsWin {
					t.Errorf("%s loses to %s but reverse is %s", a, b, ba)
				}
			case models.RpsDraw:
				if ba != models.RpsDraw || a != b {
					t.Errorf("draw between %s and %s", a, b)
				}
			}
		}
	}
}

func TestRoundScore(t *testing.T) {
	if game.RoundScore(models.RpsWin) != 10 || game.RoundScore(models.RpsDraw) != 5 || game.RoundScore(models.RpsLose) != 0 {
		t.Error("round scores must be 10/5/0")
	}
}

func TestPlayUpdatesCounters(t *testing.T) {
	// computer plays rock, paper, scissors in turn
	e := game.NewRockPaperScissors(&seqSource{vals: []int{0, 1, 2}})
	st := models.RpsState{}

	results := []models.RpsResult{}
	for i := 0; i < 3; i++ {
		out, err := e.Play(&st, models.Paper)
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
		if !out.Recorded || out.Kind != game.OutcomeRound {
			t.Errorf("round outcome = %+v", out)
		}
		if out.Score != game.RoundScore(out.Result) {
			t.Errorf("score %d does not match result %s", out.Score, out.Result)
		}
		results = append(results, out.Result)
	}

	want := []models.RpsResult{models.RpsWin, models.RpsDraw, models.RpsLose}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("round %d result = %s, want %s", i, results[i], want[i])
		}
	}
	if st.PlayerWins != 1 || st.Draws != 1 || st.ComputerWins != 1 {
		t.Errorf("counters = %+v", st)
	}
	if len(st.History) != 3 || st.History[0].Computer != models.Rock {
		t.Errorf("history = %+v", st.History)
	}
}

func TestParseMove(t *testing.T) {
	if m, err := game.ParseMove(" Rock "); err != nil || m != models.Rock {
		t.Errorf("ParseMove(Rock) = %v, %v", m, err)
	}
	if _, err := game.ParseMove("lizard"); !errors.Is(err, game.ErrUnknownChoice) {
		t.Errorf("ParseMove(lizard) err = %v, want ErrUnknownChoice", err)
	}
}
