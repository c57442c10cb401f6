package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase passthrough", "hamilton", "hamilton"},
		{"case folded", "HAMILTON", "hamilton"},
		{"diacritics stripped", "Sébastien", "sebastien"},
		{"hyphen kept", "Villeneuve-Pironi", "villeneuve-pironi"},
		{"punctuation dropped", "O'Ward", "oward"},
		{"spaces dropped", "de la Rosa", "delarosa"},
		{"digits kept", "driver2", "driver2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
