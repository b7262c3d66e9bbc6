package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPrefersSetValue(t *testing.T) {
	t.Setenv("MEDINA_TEST_ENV_KEY", "console")
	assert.Equal(t, "console", Get("MEDINA_TEST_ENV_KEY", "json"))
}

func TestGetFallsBackWhenUnset(t *testing.T) {
	assert.Equal(t, "json", Get("MEDINA_TEST_ENV_MISSING", "json"))
}

func TestGetTreatsBlankAsUnset(t *testing.T) {
	t.Setenv("MEDINA_TEST_ENV_BLANK", "   ")
	assert.Equal(t, "json", Get("MEDINA_TEST_ENV_BLANK", "json"))
}
