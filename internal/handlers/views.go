package handlers

import (
	"github.com/samber/lo"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	game "github.com/CodeAndHammer/minigames/internal/game"
	models "github.com/CodeAndHammer/minigames/internal/models"
	session "github.com/CodeAndHammer/minigames/internal/session"
)

// Grade bands for a finished quiz.
const (
	GradeExcellent = "🌟 Excellent!"
	GradeGood      = "👍 Good Job!"
	GradeStudy     = "📚 Keep Studying!"
)

// GradeFor maps a quiz percentage to its band.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= constants.QuizExcellentPercent:
		return GradeExcellent
	case percentage >= constants.QuizGoodPercent:
		return GradeGood
	default:
		return GradeStudy
	}
}

var gameEmoji = map[models.GameKind]string{
	models.NumberGuessing:    "🎯",
	models.RockPaperScissors: "✂️",
	models.WordScramble:      "🔤",
	models.Quiz:              "🧠",
	models.TicTacToe:         "❌⭕",
}

var moveEmoji = map[models.Move]string{
	models.Rock:     "🪨",
	models.Paper:    "📄",
	models.Scissors: "✂️",
}

var markEmoji = map[models.Mark]string{
	models.X: "❌",
	models.O: "⭕",
}

type gameInfo struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

type labelTable struct {
	Games  []gameInfo        `json:"games"`
	Moves  map[string]string `json:"moves"`
	Marks  map[string]string `json:"marks"`
	Grades []string          `json:"grades"`
}

func buildLabels() labelTable {
	return labelTable{
		Games: lo.Map(models.AllGameKinds, func(k models.GameKind, _ int) gameInfo {
			return gameInfo{Slug: k.Slug(), Title: k.Title(), Emoji: gameEmoji[k], Label: gameEmoji[k] + " " + k.Title()}
		}),
		Moves: lo.SliceToMap(models.AllMoves, func(m models.Move) (string, string) {
			return m.String(), moveEmoji[m]
		}),
		Marks: lo.MapEntries(markEmoji, func(m models.Mark, e string) (string, string) {
			return m.String(), e
		}),
		Grades: []string{GradeExcellent, GradeGood, GradeStudy},
	}
}

type numberGuessingView struct {
	models.NumberGuessingState
	Secret *int `json:"secret,omitempty"`
}

type scrambleView struct {
	models.ScrambleState
	Word string `json:"word,omitempty"`
}

type questionView struct {
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type quizView struct {
	models.QuizState
	QuestionCount int           `json:"questionCount"`
	Question      *questionView `json:"question,omitempty"`
	TotalPossible int           `json:"totalPossible,omitempty"`
	Percentage    *float64      `json:"percentage,omitempty"`
	Grade         string        `json:"grade,omitempty"`
}

type statsView struct {
	models.GameStats
	AverageScore string             `json:"averageScore"`
	LastPlayed   *models.PlayRecord `json:"lastPlayed,omitempty"`
}

// snapshot renders one game's state. Hidden answers are revealed once the
// game no longer accepts input.
func snapshot(sess *session.Session, kind models.GameKind) any {
	switch st := sess.State(kind).(type) {
	case models.NumberGuessingState:
		v := numberGuessingView{NumberGuessingState: st}
		if st.GameOver {
			v.Secret = lo.ToPtr(st.Secret)
		}
		return v
	case models.ScrambleState:
		v := scrambleView{ScrambleState: st}
		if !st.Active {
			v.Word = st.CurrentWord
		}
		return v
	case models.QuizState:
		return quizSnapshot(sess, st)
	case nil:
		return nil
	default:
		return st
	}
}

func quizSnapshot(sess *session.Session, st models.QuizState) quizView {
	v := quizView{QuizState: st, QuestionCount: sess.QuizQuestionCount()}
	if q, ok := sess.CurrentQuestion(); ok {
		v.Question = &questionView{Number: st.QuestionIndex + 1, Text: q.Question, Options: q.Options}
	}
	if st.Complete {
		v.TotalPossible = v.QuestionCount * constants.QuizPointsPerQuestion
		pct := game.Percentage(st.Score, v.QuestionCount)
		v.Percentage = &pct
		v.Grade = GradeFor(pct)
	}
	return v
}

func allSnapshots(sess *session.Session) map[string]any {
	return lo.Associate(models.AllGameKinds, func(k models.GameKind) (string, any) {
		return k.Slug(), snapshot(sess, k)
	})
}

func statsSummary(sess *session.Session) statsView {
	v := statsView{
		GameStats:    sess.Stats(),
		AverageScore: sess.AverageScore().StringFixed(1),
	}
	if last, ok := sess.LastPlayed(); ok {
		v.LastPlayed = &last
	}
	return v
}
