// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

// NormalizePhone strips common separators and validates E.164 format.
// Returns the cleaned number and whether it is usable for SMS/WhatsApp.
func NormalizePhone(phone string) (string, bool) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRe.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}
