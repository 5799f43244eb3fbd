package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_FoldsCaseAndAccents(t *testing.T) {
	assert.Equal(t, "saude e bem estar", Normalize("Saúde e Bem-Estar"))
	assert.Equal(t, "creme brulee", Normalize("Crème  Brûlée"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "money back guarantee", Normalize("  Money-Back   Guarantee\n"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Saúde e Bem-Estar",
		"  ALL   CAPS\twith\ttabs  ",
		"já normalizado",
		"",
		"ação-reação",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestSqueeze_RemovesAllWhitespace(t *testing.T) {
	assert.Equal(t, "glucotrust", Squeeze("Gluco Trust"))
	assert.Equal(t, "glucotrust", Squeeze(Squeeze("Gluco  Trust")))
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Squeeze("   "))
}
