package request

// GuessRequest is the request body for validating a puzzle guess
type GuessRequest struct {
	Guess string `json:"guess"`
}

// ScoreRequest is the request body for scoring a guess against a solution
type ScoreRequest struct {
	Guess    string `json:"guess"`
	Solution string `json:"solution"`
}

// CreateGameRequest is the request body for creating a guess-who session.
// Each selection is a [name, year] pair.
type CreateGameRequest struct {
	Championships [][]string `json:"championships"`
}
