package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreGuessExactMatch(t *testing.T) {
	verdicts, err := ScoreGuess("senna", "senna")
	require.NoError(t, err)

	for _, v := range verdicts {
		assert.Equal(t, VerdictExact, v)
	}
}

func TestScoreGuessAnagramHasNoAbsent(t *testing.T) {
	// Same letters, scrambled: every position is exact or present
	verdicts, err := ScoreGuess("halminto", "hamilton")
	require.NoError(t, err)

	for i, v := range verdicts {
		assert.NotEqual(t, VerdictAbsent, v, "position %d", i)
	}
	assert.Equal(t, VerdictExact, verdicts[0])
	assert.Equal(t, VerdictExact, verdicts[1])
}

func TestScoreGuessRepeatedLettersConsumeSolution(t *testing.T) {
	// Solution has exactly two n's, so only two of five can match
	verdicts, err := ScoreGuess("nnnnn", "senna")
	require.NoError(t, err)

	matched := 0
	for _, v := range verdicts {
		if v != VerdictAbsent {
			matched++
		}
	}
	assert.Equal(t, 2, matched)
}

func TestScoreGuessExactConsumesBeforePresent(t *testing.T) {
	// The exact 'n' at position 3 must not also satisfy the 'n' at
	// position 0 via the present pass
	verdicts, err := ScoreGuess("nsenn", "senna")
	require.NoError(t, err)

	assert.Equal(t, VerdictExact, verdicts[3])

	nMatches := 0
	for i, v := range verdicts {
		if (i == 0 || i == 3 || i == 4) && v != VerdictAbsent {
			nMatches++
		}
	}
	assert.Equal(t, 2, nMatches, "only two n's exist in the solution")
}

func TestScoreGuessLengthMismatch(t *testing.T) {
	_, err := ScoreGuess("senna", "hamilton")
	assert.ErrorIs(t, err, ErrGuessLengthMismatch)
}

func TestScoreGuessAllAbsent(t *testing.T) {
	verdicts, err := ScoreGuess("zzzzz", "senna")
	require.NoError(t, err)

	for _, v := range verdicts {
		assert.Equal(t, VerdictAbsent, v)
	}
}
