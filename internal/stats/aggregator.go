// Package stats accumulates scoring events for one session and derives the
// totals, favorite game, average score and analytics series.
package stats

import (
	"errors"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	models "github.com/CodeAndHammer/minigames/internal/models"
)

var ErrNegativeScore = errors.New(constants.ErrorCodeNegativeScore)

// Aggregator is not safe for concurrent use; the owning session serializes access.
type Aggregator struct {
	now     func() time.Time
	history []models.PlayRecord
	total   int
	counts  map[string]int
	order   []string
}

func New(now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{now: now, counts: make(map[string]int)}
}

// Record appends a play record. History is append-only.
func (a *Aggregator) Record(game string, score int) (models.PlayRecord, error) {
	if score < 0 {
		return models.PlayRecord{}, ErrNegativeScore
	}
	rec := models.PlayRecord{Game: game, Score: score, Timestamp: a.now()}
	a.history = append(a.history, rec)
	a.total += score
	if _, seen := a.counts[game]; !seen {
		a.order = append(a.order, game)
	}
	a.counts[game]++
	return rec, nil
}

func (a *Aggregator) GamesPlayed() int { return len(a.history) }

func (a *Aggregator) TotalScore() int { return a.total }

// FavoriteGame is the most played game; ties go to the game seen first.
func (a *Aggregator) FavoriteGame() string {
	if len(a.order) == 0 {
		return constants.NoFavoriteGame
	}
	return lo.MaxBy(a.order, func(x, best string) bool {
		return a.counts[x] > a.counts[best]
	})
}

// AverageScore is total/played rounded to one decimal place, zero when empty.
func (a *Aggregator) AverageScore() decimal.Decimal {
	if len(a.history) == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(a.total)).
		Div(decimal.NewFromInt(int64(len(a.history)))).
		Round(1)
}

func (a *Aggregator) AverageScoreString() string {
	return a.AverageScore().StringFixed(1)
}

func (a *Aggregator) LastPlayed() (models.PlayRecord, bool) {
	if len(a.history) == 0 {
		return models.PlayRecord{}, false
	}
	return a.history[len(a.history)-1], true
}

func (a *Aggregator) Snapshot() models.GameStats {
	return models.GameStats{
		GamesPlayed:  a.GamesPlayed(),
		TotalScore:   a.total,
		FavoriteGame: a.FavoriteGame(),
		History:      append([]models.PlayRecord{}, a.history...),
	}
}

func (a *Aggregator) Analytics() models.Analytics {
	byType := lo.Map(a.order, func(game string, _ int) models.GameCount {
		return models.GameCount{Game: game, Count: a.counts[game]}
	})

	cumulative := 0
	progression := lo.Map(a.history, func(r models.PlayRecord, _ int) models.ProgressPoint {
		cumulative += r.Score
		return models.ProgressPoint{Timestamp: r.Timestamp, Game: r.Game, Score: r.Score, Cumulative: cumulative}
	})

	start := max(len(a.history)-constants.RecentPlaysLimit, 0)
	recent := append([]models.PlayRecord{}, a.history[start:]...)
	slices.Reverse(recent)

	return models.Analytics{
		GamesByType: byType,
		Progression: progression,
		Recent:      recent,
	}
}

// Verify recomputes the derived fields from history and reports whether they
// match the running totals.
func Verify(s models.GameStats) bool {
	if s.GamesPlayed != len(s.History) {
		return false
	}
	if s.TotalScore != lo.SumBy(s.History, func(r models.PlayRecord) int { return r.Score }) {
		return false
	}
	if len(s.History) == 0 {
		return s.FavoriteGame == constants.NoFavoriteGame
	}
	games := lo.Map(s.History, func(r models.PlayRecord, _ int) string { return r.Game })
	counts := lo.CountValues(games)
	fav := lo.MaxBy(lo.Uniq(games), func(x, best string) bool { return counts[x] > counts[best] })
	return fav == s.FavoriteGame
}
