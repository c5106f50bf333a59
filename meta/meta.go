package meta

// Defaults for an analysis run.
const (
	STRATEGY      = "default"
	MAX_TURNS     = 10
	OPENING_HAND  = 7
	ANALYSIS_MODE = "optimal"
	SELECTION     = "greedy"
)

// Paths reported per turn, clamped to [MIN_PATHS, MAX_PATHS].
const (
	PATHS_PER_TURN = 5
	MIN_PATHS      = 1
	MAX_PATHS      = 20
)

// Exploration depth in full mode, clamped to [MIN_DEPTH, MAX_DEPTH].
const (
	DEPTH     = 3
	MIN_DEPTH = 1
	MAX_DEPTH = 10
)

// Number of games per matchup in experiments.
const NUM_GAMES = 20
