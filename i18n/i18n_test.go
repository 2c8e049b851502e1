package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_Placeholders(t *testing.T) {
	got := T("en", "setcity_ok", "city", "Berlin, DE", "tz", "Europe/Berlin")
	assert.Equal(t, "City set to: Berlin, DE (timezone: Europe/Berlin).", got)
}

func TestT_UnknownLangFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, T("en", "delete_ok"), T("de", "delete_ok"))
	assert.Equal(t, T("en", "delete_ok"), T("", "delete_ok"))
}

func TestT_Russian(t *testing.T) {
	assert.Equal(t, "Удалено.", T("ru", "delete_ok"))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", T("en", "no_such_key"))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, "ru", Norm("ru"))
	assert.Equal(t, "en", Norm("en"))
	assert.Equal(t, "en", Norm("fr"))
}
