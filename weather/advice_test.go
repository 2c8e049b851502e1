package weather

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"weatherbot-backend/i18n"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestAdvise_RainColdWindSuppressesClouds(t *testing.T) {
	s := &Snapshot{
		Temp:   fp(2),
		Wind:   fp(15),
		Clouds: ip(90),
		RainMM: 1,
	}
	got := Advise(s, "en")
	tips := strings.Split(got, " • ")

	assert.Len(t, tips, 3)
	assert.Equal(t, i18n.T("en", "advice_umbrella"), tips[0])
	assert.Equal(t, i18n.T("en", "advice_very_cold"), tips[1])
	assert.Equal(t, i18n.T("en", "advice_very_windy"), tips[2])
	assert.NotContains(t, got, i18n.T("en", "advice_overcast"))
}

func TestAdvise_TemperatureTierBoundaries(t *testing.T) {
	cases := []struct {
		temp float64
		key  string
	}{
		{3, "advice_very_cold"},
		{7, "advice_warm_coat"},
		{14, "advice_light_jacket"},
		{22, "advice_comfy"},
		{27, "advice_warm"},
		{27.1, "advice_hot"},
	}
	for _, tc := range cases {
		got := Advise(&Snapshot{Temp: fp(tc.temp)}, "en")
		assert.Equal(t, i18n.T("en", tc.key), got, "temp=%v", tc.temp)
	}
}

func TestAdvise_WindTiers(t *testing.T) {
	assert.Equal(t, i18n.T("en", "advice_very_windy"), Advise(&Snapshot{Wind: fp(13)}, "en"))
	assert.Equal(t, i18n.T("en", "advice_breezy"), Advise(&Snapshot{Wind: fp(8)}, "en"))
	assert.Equal(t, i18n.T("en", "advice_default"), Advise(&Snapshot{Wind: fp(7.9)}, "en"))
}

func TestAdvise_CloudTiersWithoutRain(t *testing.T) {
	assert.Equal(t, i18n.T("en", "advice_overcast"), Advise(&Snapshot{Clouds: ip(80)}, "en"))
	assert.Equal(t, i18n.T("en", "advice_mostly_cloudy"), Advise(&Snapshot{Clouds: ip(60)}, "en"))
	assert.Equal(t, i18n.T("en", "advice_default"), Advise(&Snapshot{Clouds: ip(59)}, "en"))
}

func TestAdvise_ConditionKeywordsTriggerPrecipitation(t *testing.T) {
	got := Advise(&Snapshot{Condition: "light drizzle"}, "en")
	assert.Contains(t, got, i18n.T("en", "advice_umbrella"))

	got = Advise(&Snapshot{Condition: "heavy snow"}, "en")
	assert.Contains(t, got, i18n.T("en", "advice_snow_shoes"))
}

func TestAdvise_CapAtThree(t *testing.T) {
	// Rain + snow + cold + wind match four rules; output keeps the first three.
	s := &Snapshot{
		Temp:   fp(-5),
		Wind:   fp(20),
		RainMM: 2,
		SnowMM: 3,
	}
	got := Advise(s, "en")
	tips := strings.Split(got, " • ")
	assert.Len(t, tips, 3)
	assert.Equal(t, i18n.T("en", "advice_umbrella"), tips[0])
	assert.Equal(t, i18n.T("en", "advice_snow_shoes"), tips[1])
	assert.Equal(t, i18n.T("en", "advice_very_cold"), tips[2])
}

func TestAdvise_NoSignalsDefault(t *testing.T) {
	assert.Equal(t, i18n.T("en", "advice_default"), Advise(&Snapshot{Condition: "clear sky"}, "en"))
	assert.Equal(t, i18n.T("ru", "advice_default"), Advise(&Snapshot{Condition: "clear sky"}, "ru"))
}

func TestFormatDetails(t *testing.T) {
	s := &Snapshot{
		Temp:      fp(11.6),
		FeelsLike: fp(10.2),
		Condition: "overcast clouds",
		Wind:      fp(4.5),
		Clouds:    ip(95),
		RainMM:    0.3,
	}
	got := FormatDetails(s, "en")
	lines := strings.Split(got, "\n")
	assert.Equal(t, "• Temperature: 12°C (feels like 10°C)", lines[0])
	assert.Equal(t, "• Condition: overcast clouds", lines[1])
	assert.Equal(t, "• Wind: 4.5 m/s", lines[2])
	assert.Equal(t, "• Cloudiness: 95%", lines[3])
	assert.Equal(t, "• Rain (last hour): 0.3 mm", lines[4])
}

func TestFormatDetails_TempWithoutFeelsLike(t *testing.T) {
	got := FormatDetails(&Snapshot{Temp: fp(5), Condition: "mist"}, "en")
	assert.True(t, strings.HasPrefix(got, "• Temperature: 5°C\n"))
	assert.NotContains(t, got, "feels like")
}
