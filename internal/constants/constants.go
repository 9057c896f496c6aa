package constants

const (
	NumberMin         = 1
	NumberMax         = 100
	NumberMaxAttempts = 7
	NumberBaseScore   = 100
	NumberAttemptCost = 10
	NumberMinScore    = 10
)

const (
	RpsWinScore  = 10
	RpsDrawScore = 5
	RpsLoseScore = 0
)

const (
	ScrambleTotalRounds = 5
	ScrambleMaxPoints   = 20
	ScrambleMinPoints   = 5
	ScrambleMinWordLen  = 3
)

const (
	QuizPointsPerQuestion = 10
	QuizExcellentPercent  = 80
	QuizGoodPercent       = 60
)

const (
	TicTacToeCells     = 9
	TicTacToeWinScore  = 10
	TicTacToeDrawScore = 5
)

const (
	HintTooLow  = "too low"
	HintTooHigh = "too high"
)

const (
	NoFavoriteGame    = "None"
	RecentPlaysLimit  = 10
	SessionCookieName = "session_id"
	CSRFCookieName    = "csrf_token"
	CSRFHeaderName    = "X-CSRF-Token"
	RequestIDHeader   = "X-Request-Id"
)

const (
	RouteHealthz        = "/healthz"
	RouteGames          = "/api/games"
	RouteGame           = "/api/games/:game"
	RouteState          = "/api/state"
	RouteStats          = "/api/stats"
	RouteAnalytics      = "/api/stats/analytics"
	RouteQuizCategories = "/api/quiz/categories"
	RouteNumberStart    = "/api/number-guessing/start"
	RouteNumberGuess    = "/api/number-guessing/guess"
	RouteRpsPlay        = "/api/rps/play"
	RouteScrambleStart  = "/api/word-scramble/start"
	RouteScrambleSubmit = "/api/word-scramble/submit"
	RouteQuizStart      = "/api/quiz/start"
	RouteQuizSubmit     = "/api/quiz/submit"
	RouteTicTacToeMove  = "/api/tic-tac-toe/move"
	RouteTicTacToeReset = "/api/tic-tac-toe/reset"
	RouteSessionReset   = "/api/session/reset"
)

const (
	ErrorCodeInvalidInput      = "invalid_input"
	ErrorCodeOutOfRange        = "out_of_range"
	ErrorCodeInvalidPosition   = "invalid_position"
	ErrorCodeUnknownChoice     = "unknown_choice"
	ErrorCodeUnknownOption     = "unknown_option"
	ErrorCodeUnknownDifficulty = "unknown_difficulty"
	ErrorCodeUnknownCategory   = "unknown_category"
	ErrorCodeUnknownGame       = "unknown_game"
	ErrorCodeGameOver          = "game_over"
	ErrorCodeNotActive         = "not_active"
	ErrorCodeCellOccupied      = "cell_occupied"
	ErrorCodeNegativeScore     = "negative_score"
	ErrorCodeInvalidCSRF       = "invalid_csrf_token"
	ErrorCodeRateLimited       = "rate_limited"
	ErrorCodeInternal          = "internal_error"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)
