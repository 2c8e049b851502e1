package weather

import (
	"math"
	"strconv"
	"strings"

	"weatherbot-backend/i18n"
)

// Advise maps a snapshot to clothing/activity tips in the given language.
// Rules fire in a fixed order (precipitation, temperature tier, wind tier,
// cloudiness); the result is deduplicated, capped at three tips and joined
// with " • ". With no matching rule a single cheerful default is returned.
func Advise(s *Snapshot, lang string) string {
	var tips []string
	cond := strings.ToLower(s.Condition)

	rainy := s.RainMM > 0 || strings.Contains(cond, "rain") ||
		strings.Contains(cond, "drizzle") || strings.Contains(cond, "shower")
	if rainy {
		tips = append(tips, i18n.T(lang, "advice_umbrella"))
	}
	if s.SnowMM > 0 || strings.Contains(cond, "snow") {
		tips = append(tips, i18n.T(lang, "advice_snow_shoes"))
	}

	if s.Temp != nil {
		switch temp := *s.Temp; {
		case temp <= 3:
			tips = append(tips, i18n.T(lang, "advice_very_cold"))
		case temp <= 7:
			tips = append(tips, i18n.T(lang, "advice_warm_coat"))
		case temp <= 14:
			tips = append(tips, i18n.T(lang, "advice_light_jacket"))
		case temp <= 22:
			tips = append(tips, i18n.T(lang, "advice_comfy"))
		case temp <= 27:
			tips = append(tips, i18n.T(lang, "advice_warm"))
		default:
			tips = append(tips, i18n.T(lang, "advice_hot"))
		}
	}

	if s.Wind != nil {
		switch wind := *s.Wind; {
		case wind >= 13:
			tips = append(tips, i18n.T(lang, "advice_very_windy"))
		case wind >= 8:
			tips = append(tips, i18n.T(lang, "advice_breezy"))
		}
	}

	// Cloud tips are noise when it is already raining.
	if s.Clouds != nil && s.RainMM == 0 && !strings.Contains(cond, "rain") {
		switch clouds := *s.Clouds; {
		case clouds >= 80:
			tips = append(tips, i18n.T(lang, "advice_overcast"))
		case clouds >= 60:
			tips = append(tips, i18n.T(lang, "advice_mostly_cloudy"))
		}
	}

	if len(tips) == 0 {
		return i18n.T(lang, "advice_default")
	}

	var dedup []string
	for _, tip := range tips {
		seen := false
		for _, d := range dedup {
			if d == tip {
				seen = true
				break
			}
		}
		if !seen {
			dedup = append(dedup, tip)
		}
	}
	if len(dedup) > 3 {
		dedup = dedup[:3]
	}
	return strings.Join(dedup, " • ")
}

// FormatDetails renders the weather detail block shown under the advice line.
func FormatDetails(s *Snapshot, lang string) string {
	var parts []string
	switch {
	case s.Temp != nil && s.FeelsLike != nil:
		parts = append(parts, i18n.T(lang, "w_temp",
			"t", roundStr(*s.Temp), "fl", roundStr(*s.FeelsLike)))
	case s.Temp != nil:
		parts = append(parts, i18n.T(lang, "w_temp_simple", "t", roundStr(*s.Temp)))
	}
	parts = append(parts, i18n.T(lang, "w_condition", "cond", s.Condition))
	if s.Wind != nil {
		parts = append(parts, i18n.T(lang, "w_wind", "w", floatStr(*s.Wind)))
	}
	if s.Clouds != nil {
		parts = append(parts, i18n.T(lang, "w_clouds", "c", strconv.Itoa(*s.Clouds)))
	}
	if s.RainMM > 0 {
		parts = append(parts, i18n.T(lang, "w_rain", "mm", floatStr(s.RainMM)))
	}
	if s.SnowMM > 0 {
		parts = append(parts, i18n.T(lang, "w_snow", "mm", floatStr(s.SnowMM)))
	}
	return strings.Join(parts, "\n")
}

func roundStr(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
}

func floatStr(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
