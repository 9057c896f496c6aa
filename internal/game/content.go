package game

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	models "github.com/CodeAndHammer/minigames/internal/models"
	util "github.com/CodeAndHammer/minigames/internal/util"
)

type QuizCategory struct {
	Name      string            `json:"name"`
	Questions []models.Question `json:"questions"`
}

type quizFile struct {
	Categories []QuizCategory `json:"categories"`
}

// Content is the fixed word pools and quiz question sets.
type Content struct {
	Words      map[models.Difficulty][]string
	Categories []QuizCategory
}

// LoadContent parses and validates word pools and quiz data. Any empty pool or
// malformed question is a configuration defect and is returned as an error.
func LoadContent(wordsJSON, quizJSON []byte) (*Content, error) {
	words, err := parseWords(wordsJSON)
	if err != nil {
		return nil, err
	}
	categories, err := parseQuiz(quizJSON)
	if err != nil {
		return nil, err
	}
	return &Content{Words: words, Categories: categories}, nil
}

// LoadContentFiles reads override files when the paths are set and falls back
// to the embedded defaults otherwise.
func LoadContentFiles(wordsPath, quizPath string, defaultWords, defaultQuiz []byte) (*Content, error) {
	wordsJSON, err := readOr(wordsPath, defaultWords)
	if err != nil {
		return nil, err
	}
	quizJSON, err := readOr(quizPath, defaultQuiz)
	if err != nil {
		return nil, err
	}
	return LoadContent(wordsJSON, quizJSON)
}

func readOr(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	util.LogInfo("Loading content from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func parseWords(data []byte) (map[models.Difficulty][]string, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse word pools: %w", err)
	}

	pools := make(map[models.Difficulty][]string, len(models.AllDifficulties))
	for key, list := range raw {
		d, ok := models.ParseDifficulty(key)
		if !ok {
			util.LogWarn("Skipping word pool %q: unknown difficulty", key)
			continue
		}
		pools[d] = lo.Filter(lo.Map(list, func(w string, _ int) string {
			return strings.ToLower(strings.TrimSpace(w))
		}), func(w string, _ int) bool {
			if !validWord(w) {
				util.LogWarn("Skipping word %q: needs %d+ letters and a distinct arrangement", w, constants.ScrambleMinWordLen)
				return false
			}
			return true
		})
	}

	for _, d := range models.AllDifficulties {
		if len(pools[d]) == 0 {
			return nil, fmt.Errorf("word pool %q is empty", d)
		}
	}
	return pools, nil
}

// validWord requires the minimum length and at least two distinct letters, so
// a scramble different from the word always exists.
func validWord(w string) bool {
	runes := []rune(w)
	if len(runes) < constants.ScrambleMinWordLen {
		return false
	}
	return len(lo.Uniq(runes)) > 1
}

func parseQuiz(data []byte) ([]QuizCategory, error) {
	var qf quizFile
	if err := json.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parse quiz: %w", err)
	}
	if len(qf.Categories) == 0 {
		return nil, fmt.Errorf("quiz has no categories")
	}
	seen := make(map[string]struct{}, len(qf.Categories))
	for _, cat := range qf.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("quiz category without a name")
		}
		if _, dup := seen[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate quiz category %q", cat.Name)
		}
		seen[cat.Name] = struct{}{}
		if len(cat.Questions) == 0 {
			return nil, fmt.Errorf("quiz category %q has no questions", cat.Name)
		}
		for i, q := range cat.Questions {
			if len(q.Options) < 2 {
				return nil, fmt.Errorf("quiz category %q question %d: needs at least 2 options", cat.Name, i+1)
			}
			if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
				return nil, fmt.Errorf("quiz category %q question %d: answer index %d out of range", cat.Name, i+1, q.AnswerIndex)
			}
			if len(lo.Uniq(q.Options)) != len(q.Options) {
				return nil, fmt.Errorf("quiz category %q question %d: duplicate options", cat.Name, i+1)
			}
		}
	}
	return qf.Categories, nil
}

// Category looks up a quiz category by name, ignoring case.
func (c *Content) Category(name string) (QuizCategory, bool) {
	return lo.Find(c.Categories, func(cat QuizCategory) bool {
		return strings.EqualFold(cat.Name, strings.TrimSpace(name))
	})
}

func (c *Content) CategoryNames() []string {
	return lo.Map(c.Categories, func(cat QuizCategory, _ int) string { return cat.Name })
}

func (c *Content) WordCount() int {
	return lo.SumBy(models.AllDifficulties, func(d models.Difficulty) int { return len(c.Words[d]) })
}

func (c *Content) QuestionCount() int {
	return lo.SumBy(c.Categories, func(cat QuizCategory) int { return len(cat.Questions) })
}
