package main

import (
	"testing"

	game "github.com/CodeAndHammer/minigames/internal/game"
)

// seqSource replays fixed values, each reduced modulo the requested range.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	if n <= 0 {
		panic("seqSource: empty range")
	}
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func (s *seqSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.IntN(i+1))
	}
}

const testWords = `{
  "easy": ["cat", "dog"],
  "medium": ["python"],
  "hard": ["algorithm"]
}`

const testQuiz = `{
  "categories": [
    {
      "name": "Math",
      "questions": [
        {"question": "2 + 2?", "options": ["3", "4", "5"], "answer": 1, "explanation": "Two plus two is four."},
        {"question": "3 x 3?", "options": ["6", "9"], "answer": 1, "explanation": "Three threes are nine."}
      ]
    },
    {
      "name": "Science",
      "questions": [
        {"question": "H2O is?", "options": ["Water", "Salt"], "answer": 0, "explanation": "Hydrogen and oxygen."}
      ]
    }
  ]
}`

func testContent(t *testing.T) *game.Content {
	t.Helper()
	content, err := game.LoadContent([]byte(testWords), []byte(testQuiz))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	return content
}
