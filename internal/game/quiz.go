package game

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	models "github.com/CodeAndHammer/minigames/internal/models"
)

type Quiz struct {
	content *Content
}

func NewQuiz(content *Content) *Quiz {
	return &Quiz{content: content}
}

// Idle returns the inactive state shown before any quiz is started.
func (e *Quiz) Idle() models.QuizState {
	return models.QuizState{Category: e.content.Categories[0].Name, Answers: []models.QuizAnswer{}}
}

// Start begins the named category from its first question.
func (e *Quiz) Start(category string) (models.QuizState, error) {
	cat, ok := e.content.Category(category)
	if !ok {
		return models.QuizState{}, ErrUnknownCategory
	}
	return models.QuizState{
		Category: cat.Name,
		Answers:  []models.QuizAnswer{},
		Active:   true,
	}, nil
}

// Current returns the question awaiting an answer.
func (e *Quiz) Current(st *models.QuizState) (models.Question, bool) {
	if !st.Active {
		return models.Question{}, false
	}
	cat, ok := e.content.Category(st.Category)
	if !ok || st.QuestionIndex >= len(cat.Questions) {
		return models.Question{}, false
	}
	return cat.Questions[st.QuestionIndex], true
}

// QuestionCount is the number of questions in the state's category.
func (e *Quiz) QuestionCount(st *models.QuizState) int {
	cat, ok := e.content.Category(st.Category)
	if !ok {
		return 0
	}
	return len(cat.Questions)
}

// Submit answers the current question with the option text.
func (e *Quiz) Submit(st *models.QuizState, selected string) (Outcome, error) {
	if !st.Active {
		return Outcome{}, ErrNotActive
	}
	cat, ok := e.content.Category(st.Category)
	if !ok {
		return Outcome{}, ErrUnknownCategory
	}
	q := cat.Questions[st.QuestionIndex]

	selectedIndex := lo.IndexOf(q.Options, selected)
	if selectedIndex < 0 {
		return Outcome{}, ErrUnknownOption
	}
	isCorrect := selectedIndex == q.AnswerIndex
	if isCorrect {
		st.Score += constants.QuizPointsPerQuestion
	}
	st.Answers = append(st.Answers, models.QuizAnswer{
		Question:  q.Question,
		Selected:  selected,
		Correct:   q.CorrectOption(),
		IsCorrect: isCorrect,
	})

	out := Outcome{
		Game:        models.Quiz,
		IsCorrect:   isCorrect,
		Answer:      q.CorrectOption(),
		Explanation: q.Explanation,
		Score:       st.Score,
	}
	if isCorrect {
		out.Points = constants.QuizPointsPerQuestion
	}

	if st.QuestionIndex < len(cat.Questions)-1 {
		st.QuestionIndex++
		out.Kind = OutcomeNextQuestion
		return out, nil
	}

	st.Active, st.Complete = false, true
	out.Kind = OutcomeComplete
	out.Complete, out.GameOver, out.Recorded = true, true, true
	out.TotalPossible = constants.QuizPointsPerQuestion * len(cat.Questions)
	out.Percentage = Percentage(st.Score, len(cat.Questions))
	return out, nil
}

// Percentage is 100*score/(10*questionCount), rounded to two decimals.
func Percentage(score, questionCount int) float64 {
	if questionCount <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(100 * score)).
		Div(decimal.NewFromInt(int64(constants.QuizPointsPerQuestion * questionCount))).
		Round(2).
		InexactFloat64()
}
