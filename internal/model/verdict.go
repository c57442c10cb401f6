package model

// LetterVerdict is the per-position result of scoring a guess
type LetterVerdict string

const (
	VerdictExact   LetterVerdict = "exact"   // right letter, right position
	VerdictPresent LetterVerdict = "present" // right letter, wrong position
	VerdictAbsent  LetterVerdict = "absent"  // letter not in the solution
)

// ScoreGuess scores a guess against a solution of the same length using
// two passes: exact matches first, then each unresolved guess position
// claims the leftmost unconsumed solution position with the same letter.
// The consumption step prevents repeated guess letters from matching a
// single solution letter more than once.
func ScoreGuess(guess, solution string) ([]LetterVerdict, error) {
	g := []rune(guess)
	sol := []rune(solution)
	if len(g) != len(sol) {
		return nil, ErrGuessLengthMismatch
	}

	verdicts := make([]LetterVerdict, len(g))
	consumed := make([]bool, len(sol))

	for i := range g {
		if g[i] == sol[i] {
			verdicts[i] = VerdictExact
			consumed[i] = true
		}
	}

	for i := range g {
		if verdicts[i] == VerdictExact {
			continue
		}
		verdicts[i] = VerdictAbsent
		for j := range sol {
			if !consumed[j] && sol[j] == g[i] {
				verdicts[i] = VerdictPresent
				consumed[j] = true
				break
			}
		}
	}

	return verdicts, nil
}
