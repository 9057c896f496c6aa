package game

import (
	constants "github.com/CodeAndHammer/minigames/internal/constants"
	models "github.com/CodeAndHammer/minigames/internal/models"
	random "github.com/CodeAndHammer/minigames/internal/random"
)

type RockPaperScissors struct {
	rng random.Source
}

func NewRockPaperScissors(rng random.Source) *RockPaperScissors {
	return &RockPaperScissors{rng: rng}
}

// ParseMove maps a choice string to a move.
func ParseMove(choice string) (models.Move, error) {
	m, ok := models.ParseMove(choice)
	if !ok {
		return 0, ErrUnknownChoice
	}
	return m, nil
}

// Decide applies the rule table from the player's side.
func Decide(player, computer models.Move) models.RpsResult {
	switch {
	case player == computer:
		return models.RpsDraw
	case player.Beats(computer):
		return models.RpsWin
	default:
		return models.RpsLose
	}
}

func RoundScore(r models.RpsResult) int {
	switch r {
	case models.RpsWin:
		return constants.RpsWinScore
	case models.RpsDraw:
		return constants.RpsDrawScore
	default:
		return constants.RpsLoseScore
	}
}

// Play draws the computer move and settles the round. Every round is recorded.
func (e *RockPaperScissors) Play(st *models.RpsState, player models.Move) (Outcome, error) {
	if player < models.Rock || player > models.Scissors {
		return Outcome{}, ErrUnknownChoice
	}
	computer := random.Pick(e.rng, models.AllMoves)
	result := Decide(player, computer)

	switch result {
	case models.RpsWin:
		st.PlayerWins++
	case models.RpsLose:
		st.ComputerWins++
	default:
		st.Draws++
	}
	st.History = append(st.History, models.RpsRound{Player: player, Computer: computer, Result: result})

	return Outcome{
		Game:     models.RockPaperScissors,
		Kind:     OutcomeRound,
		Player:   &player,
		Computer: &computer,
		Result:   result,
		Score:    RoundScore(result),
		Points:   RoundScore(result),
		Recorded: true,
	}, nil
}
