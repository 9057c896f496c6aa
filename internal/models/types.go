package models

import (
	"slices"
	"time"
)

// GameState is one of the five per-game state records. Kind tags the variant.
type GameState interface {
	Kind() GameKind
}

type NumberGuessingState struct {
	Secret      int      `json:"-"`
	Attempts    int      `json:"attempts"`
	MaxAttempts int      `json:"maxAttempts"`
	GameOver    bool     `json:"gameOver"`
	Won         bool     `json:"won"`
	Hints       []string `json:"hints"`
}

func (NumberGuessingState) Kind() GameKind { return NumberGuessing }

func (s NumberGuessingState) Clone() NumberGuessingState {
	s.Hints = slices.Clone(s.Hints)
	return s
}

type RpsRound struct {
	Player   Move      `json:"player"`
	Computer Move      `json:"computer"`
	Result   RpsResult `json:"result"`
}

type RpsState struct {
	PlayerWins   int        `json:"playerWins"`
	ComputerWins int        `json:"computerWins"`
	Draws        int        `json:"draws"`
	History      []RpsRound `json:"history"`
}

func (RpsState) Kind() GameKind { return RockPaperScissors }

func (s RpsState) Clone() RpsState {
	s.History = slices.Clone(s.History)
	return s
}

// ScrambleState keeps CurrentWord out of JSON; snapshots reveal it only once
// the game is no longer active.
type ScrambleState struct {
	CurrentWord   string     `json:"-"`
	ScrambledWord string     `json:"scrambledWord"`
	Score         int        `json:"score"`
	Round         int        `json:"round"`
	TotalRounds   int        `json:"totalRounds"`
	Difficulty    Difficulty `json:"difficulty"`
	StartTime     time.Time  `json:"startTime"`
	Active        bool       `json:"active"`
}

func (ScrambleState) Kind() GameKind { return WordScramble }

type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer"`
	Explanation string   `json:"explanation"`
}

// CorrectOption returns the option text at AnswerIndex.
func (q Question) CorrectOption() string {
	return q.Options[q.AnswerIndex]
}

type QuizAnswer struct {
	Question  string `json:"question"`
	Selected  string `json:"selected"`
	Correct   string `json:"correct"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuizState struct {
	Category      string       `json:"category"`
	QuestionIndex int          `json:"questionIndex"`
	Score         int          `json:"score"`
	Answers       []QuizAnswer `json:"answers"`
	Active        bool         `json:"active"`
	Complete      bool         `json:"complete"`
}

func (QuizState) Kind() GameKind { return Quiz }

func (s QuizState) Clone() QuizState {
	s.Answers = slices.Clone(s.Answers)
	return s
}

type TicTacToeState struct {
	Board         [9]Mark `json:"board"`
	CurrentPlayer Mark    `json:"currentPlayer"`
	GameOver      bool    `json:"gameOver"`
	Winner        Winner  `json:"winner"`
	XWins         int     `json:"xWins"`
	OWins         int     `json:"oWins"`
	Draws         int     `json:"draws"`
}

func (TicTacToeState) Kind() GameKind { return TicTacToe }

// PlayRecord is one scoring event in the session history.
type PlayRecord struct {
	Game      string    `json:"game"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

type GameStats struct {
	GamesPlayed  int          `json:"gamesPlayed"`
	TotalScore   int          `json:"totalScore"`
	FavoriteGame string       `json:"favoriteGame"`
	History      []PlayRecord `json:"history"`
}

// GameCount is the number of plays of one game.
type GameCount struct {
	Game  string `json:"game"`
	Count int    `json:"count"`
}

// ProgressPoint is one step of the cumulative score series.
type ProgressPoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Game       string    `json:"game"`
	Score      int       `json:"score"`
	Cumulative int       `json:"cumulative"`
}

type Analytics struct {
	GamesByType []GameCount     `json:"gamesByType"`
	Progression []ProgressPoint `json:"progression"`
	Recent      []PlayRecord    `json:"recent"`
}
