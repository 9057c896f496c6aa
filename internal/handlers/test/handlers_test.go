package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	data "github.com/CodeAndHammer/minigames/data"
	config "github.com/CodeAndHammer/minigames/internal/config"
	game "github.com/CodeAndHammer/minigames/internal/game"
	handlers "github.com/CodeAndHammer/minigames/internal/handlers"
	middleware "github.com/CodeAndHammer/minigames/internal/middleware"
	random "github.com/CodeAndHammer/minigames/internal/random"
	session "github.com/CodeAndHammer/minigames/internal/session"
)

type client struct {
	t    *testing.T
	srv  *httptest.Server
	http *http.Client
}

func newTestServer(t *testing.T) (*client, *handlers.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	content, err := game.LoadContent(data.Words, data.Quiz)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	cfg := &config.Config{
		CookieMaxAge:   time.Hour,
		SessionTTL:     time.Hour,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		RateLimiterTTL: time.Hour,
	}
	engines := game.NewEngines(random.NewSeeded(77), content, time.Now)
	app := &handlers.App{
		Config:    cfg,
		Content:   content,
		Sessions:  session.NewManager(engines, cfg.SessionTTL, time.Now),
		Limiters:  middleware.NewLimiters(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimiterTTL),
		StartTime: time.Now(),
	}

	srv := httptest.NewServer(handlers.NewRouter(app))
	t.Cleanup(srv.Close)

	jar, _ := cookiejar.New(nil)
	return &client{t: t, srv: srv, http: &http.Client{Jar: jar}}, app
}

func (c *client) cookie(name string) string {
	u, _ := url.Parse(c.srv.URL)
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

func (c *client) get(path string) (int, map[string]any) {
	c.t.Helper()
	resp, err := c.http.Get(c.srv.URL + path)
	if err != nil {
		c.t.Fatalf("GET %s: %v", path, err)
	}
	return decode(c.t, resp)
}

func (c *client) post(path string, body any) (int, map[string]any) {
	c.t.Helper()
	if c.cookie("csrf_token") == "" {
		c.get("/api/games")
	}
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(http.MethodPost, c.srv.URL+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-Token", c.cookie("csrf_token"))
	resp, err := c.http.Do(req)
	if err != nil {
		c.t.Fatalf("POST %s: %v", path, err)
	}
	return decode(c.t, resp)
}

func decode(t *testing.T, resp *http.Response) (int, map[string]any) {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s: %v", resp.Request.URL.Path, err)
	}
	return resp.StatusCode, out
}

func obj(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

func num(m map[string]any, key string) int {
	v, _ := m[key].(float64)
	return int(v)
}

func TestHealthz(t *testing.T) {
	c, _ := newTestServer(t)
	code, body := c.get("/healthz")
	if code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("healthz = %d %v", code, body)
	}
	if num(body, "quiz_questions") != 6 || num(body, "words_loaded") == 0 {
		t.Errorf("content counts = %v", body)
	}
}

func TestStateIssuesCookies(t *testing.T) {
	c, app := newTestServer(t)
	code, body := c.get("/api/state")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if c.cookie("session_id") == "" || c.cookie("csrf_token") == "" {
		t.Error("session or csrf cookie not issued")
	}
	games := obj(body, "games")
	for _, slug := range []string{"number-guessing", "rock-paper-scissors", "word-scramble", "quiz", "tic-tac-toe"} {
		if games[slug] == nil {
			t.Errorf("state missing %s", slug)
		}
	}
	if _, ok := obj(games, "number-guessing")["secret"]; ok {
		t.Error("secret exposed in an active game")
	}
	stats := obj(body, "stats")
	if stats["favoriteGame"] != "None" || stats["averageScore"] != "0.0" {
		t.Errorf("stats = %v", stats)
	}
	if app.Sessions.Len() != 1 {
		t.Errorf("sessions = %d, want 1", app.Sessions.Len())
	}
}

func TestPostWithoutCSRFIsRejected(t *testing.T) {
	c, _ := newTestServer(t)
	resp, err := c.http.Post(c.srv.URL+"/api/rps/play", "application/json", bytes.NewBufferString(`{"choice":"rock"}`))
	if err != nil {
		t.Fatal(err)
	}
	code, body := decode(t, resp)
	if code != http.StatusForbidden || body["error"] != "invalid_csrf_token" {
		t.Errorf("got %d %v", code, body)
	}
}

func TestNumberGuessingBinarySearch(t *testing.T) {
	c, _ := newTestServer(t)
	lo, hi := 1, 100
	var body map[string]any
	for i := 0; i < 7; i++ {
		mid := (lo + hi) / 2
		var code int
		code, body = c.post("/api/number-guessing/guess", gin.H{"value": mid})
		if code != http.StatusOK {
			t.Fatalf("guess %d: %d %v", mid, code, body)
		}
		out := obj(body, "outcome")
		if out["kind"] == "won" {
			break
		}
		switch out["hint"] {
		case "too low":
			lo = mid + 1
		case "too high":
			hi = mid - 1
		default:
			t.Fatalf("unexpected outcome %v", out)
		}
	}

	out := obj(body, "outcome")
	if out["kind"] != "won" || out["recorded"] != true {
		t.Fatalf("binary search did not win: %v", out)
	}
	state := obj(body, "state")
	if num(state, "secret") != num(out, "secret") || num(state, "secret") == 0 {
		t.Errorf("secret not revealed after the win: %v", state)
	}
	stats := obj(body, "stats")
	if num(stats, "gamesPlayed") != 1 || num(stats, "totalScore") != num(out, "score") {
		t.Errorf("stats = %v", stats)
	}

	code, body := c.post("/api/number-guessing/guess", gin.H{"value": 50})
	if code != http.StatusConflict || body["error"] != "game_over" {
		t.Errorf("guess after win = %d %v", code, body)
	}

	code, body = c.post("/api/number-guessing/start", nil)
	if code != http.StatusOK || num(obj(body, "state"), "attempts") != 0 {
		t.Errorf("restart = %d %v", code, body)
	}
}

func TestValidationErrors(t *testing.T) {
	c, _ := newTestServer(t)
	cases := []struct {
		path string
		body any
		want string
	}{
		{"/api/number-guessing/guess", gin.H{}, "invalid_input"},
		{"/api/number-guessing/guess", gin.H{"value": 101}, "out_of_range"},
		{"/api/rps/play", gin.H{"choice": "lizard"}, "unknown_choice"},
		{"/api/word-scramble/start", gin.H{"difficulty": "extreme"}, "unknown_difficulty"},
		{"/api/quiz/start", gin.H{"category": "Art"}, "unknown_category"},
		{"/api/tic-tac-toe/move", gin.H{"position": 9}, "invalid_position"},
		{"/api/tic-tac-toe/move", gin.H{"position": "a"}, "invalid_input"},
	}
	for _, tc := range cases {
		code, body := c.post(tc.path, tc.body)
		if code != http.StatusBadRequest || body["error"] != tc.want {
			t.Errorf("%s %v: got %d %v, want 400 %s", tc.path, tc.body, code, body, tc.want)
		}
	}
	_, stats := c.get("/api/stats")
	if num(stats, "gamesPlayed") != 0 {
		t.Errorf("validation failures recorded plays: %v", stats)
	}
}

func TestUnknownGame(t *testing.T) {
	c, _ := newTestServer(t)
	code, body := c.get("/api/games/chess")
	if code != http.StatusNotFound || body["error"] != "unknown_game" {
		t.Errorf("got %d %v", code, body)
	}
	code, body = c.get("/api/games/rps")
	if code != http.StatusOK || body["game"] != "rock-paper-scissors" {
		t.Errorf("rps alias = %d %v", code, body)
	}
}

func TestTicTacToeFlow(t *testing.T) {
	c, _ := newTestServer(t)
	var body map[string]any
	for _, pos := range []int{0, 3, 1, 4, 2} {
		var code int
		code, body = c.post("/api/tic-tac-toe/move", gin.H{"position": pos})
		if code != http.StatusOK {
			t.Fatalf("move %d: %d %v", pos, code, body)
		}
	}
	out := obj(body, "outcome")
	if out["winner"] != "X" || num(out, "score") != 10 {
		t.Errorf("outcome = %v", out)
	}
	if num(obj(body, "state"), "xWins") != 1 {
		t.Errorf("state = %v", obj(body, "state"))
	}

	code, body := c.post("/api/tic-tac-toe/move", gin.H{"position": 8})
	if code != http.StatusConflict || body["error"] != "game_over" {
		t.Errorf("move after win = %d %v", code, body)
	}

	code, body = c.post("/api/tic-tac-toe/reset", nil)
	if code != http.StatusOK || obj(body, "state")["gameOver"] != false {
		t.Errorf("reset = %d %v", code, body)
	}
	c.post("/api/tic-tac-toe/move", gin.H{"position": 4})
	code, body = c.post("/api/tic-tac-toe/move", gin.H{"position": 4})
	if code != http.StatusConflict || body["error"] != "cell_occupied" {
		t.Errorf("occupied = %d %v", code, body)
	}

	_, stats := c.get("/api/stats")
	if num(stats, "gamesPlayed") != 1 || stats["favoriteGame"] != "Tic-Tac-Toe" {
		t.Errorf("stats = %v", stats)
	}
}

func TestQuizFlow(t *testing.T) {
	c, _ := newTestServer(t)
	code, body := c.post("/api/quiz/start", gin.H{"category": "General Knowledge"})
	if code != http.StatusOK {
		t.Fatalf("start = %d %v", code, body)
	}
	for i := 0; i < 3; i++ {
		q := obj(obj(body, "state"), "question")
		if q == nil {
			t.Fatalf("no question at %d: %v", i, body)
		}
		if _, leaked := q["answer"]; leaked {
			t.Fatal("answer index exposed")
		}
		options, _ := q["options"].([]any)
		code, body = c.post("/api/quiz/submit", gin.H{"option": options[0]})
		if code != http.StatusOK {
			t.Fatalf("submit %d = %d %v", i, code, body)
		}
	}
	state := obj(body, "state")
	if state["complete"] != true || state["grade"] == nil || num(state, "totalPossible") != 30 {
		t.Errorf("final state = %v", state)
	}
	if obj(body, "outcome")["recorded"] != true {
		t.Errorf("final outcome = %v", obj(body, "outcome"))
	}

	code, body = c.post("/api/quiz/submit", gin.H{"option": "Paris"})
	if code != http.StatusConflict || body["error"] != "not_active" {
		t.Errorf("submit after completion = %d %v", code, body)
	}
}

func TestScrambleFlow(t *testing.T) {
	c, _ := newTestServer(t)
	code, body := c.post("/api/word-scramble/start", gin.H{"difficulty": "easy"})
	if code != http.StatusOK {
		t.Fatalf("start = %d %v", code, body)
	}
	if _, ok := obj(body, "state")["word"]; ok {
		t.Error("answer exposed while active")
	}
	for i := 0; i < 5; i++ {
		code, body = c.post("/api/word-scramble/submit", gin.H{"guess": "zzzz"})
		if code != http.StatusOK {
			t.Fatalf("submit %d = %d %v", i, code, body)
		}
	}
	state := obj(body, "state")
	if state["active"] != false || state["word"] == nil {
		t.Errorf("final state = %v", state)
	}
	stats := obj(body, "stats")
	if num(stats, "gamesPlayed") != 1 || num(stats, "totalScore") != 0 {
		t.Errorf("stats = %v", stats)
	}
}

func TestRpsAndAnalytics(t *testing.T) {
	c, _ := newTestServer(t)
	for i := 0; i < 3; i++ {
		if code, body := c.post("/api/rps/play", gin.H{"choice": "rock"}); code != http.StatusOK {
			t.Fatalf("play = %d %v", code, body)
		}
	}
	code, body := c.get("/api/stats/analytics")
	if code != http.StatusOK {
		t.Fatalf("analytics = %d", code)
	}
	byType, _ := body["gamesByType"].([]any)
	recent, _ := body["recent"].([]any)
	progression, _ := body["progression"].([]any)
	if len(byType) != 1 || len(recent) != 3 || len(progression) != 3 {
		t.Errorf("analytics = %v", body)
	}
}

func TestSessionReset(t *testing.T) {
	c, app := newTestServer(t)
	c.post("/api/rps/play", gin.H{"choice": "paper"})
	oldID := c.cookie("session_id")

	code, body := c.post("/api/session/reset", nil)
	if code != http.StatusOK {
		t.Fatalf("reset = %d %v", code, body)
	}
	newID := c.cookie("session_id")
	if newID == "" || newID == oldID {
		t.Errorf("session id not rotated: %q -> %q", oldID, newID)
	}
	if _, ok := app.Sessions.Lookup(oldID); ok {
		t.Error("old session still registered")
	}
	if num(obj(body, "stats"), "gamesPlayed") != 0 {
		t.Errorf("stats after reset = %v", obj(body, "stats"))
	}
}

func TestGamesLabels(t *testing.T) {
	c, _ := newTestServer(t)
	code, body := c.get("/api/games")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	games, _ := body["games"].([]any)
	if len(games) != 5 {
		t.Errorf("games = %v", body["games"])
	}
	if obj(body, "moves")["rock"] != "🪨" || obj(body, "marks")["X"] != "❌" {
		t.Errorf("labels = %v", body)
	}
}

func TestGradeFor(t *testing.T) {
	cases := map[float64]string{
		100:   handlers.GradeExcellent,
		80:    handlers.GradeExcellent,
		79.99: handlers.GradeGood,
		60:    handlers.GradeGood,
		59.99: handlers.GradeStudy,
		0:     handlers.GradeStudy,
	}
	for pct, want := range cases {
		if got := handlers.GradeFor(pct); got != want {
			t.Errorf("GradeFor(%v) = %q, want %q", pct, got, want)
		}
	}
}
