// Package mask produces redacted, display-only copies of business
// profiles so an operator can preview results without seeing real
// company identities.
package mask

import (
	"regexp"
	"strings"

	"github.com/krykos/leadscout/internal/model"
)

// RedactedURL replaces source_url in every masked profile.
const RedactedURL = "[REDACTED]"

// minRedactableNameLen guards against masking on trivial names.
const minRedactableNameLen = 3

// Placeholder returns the positional placeholder for a lead index:
// Target-A through Target-Z, then spreadsheet-style Target-AA, Target-AB, …
func Placeholder(index int) string {
	var letters []byte
	n := index
	for {
		letters = append([]byte{byte('A' + n%26)}, letters...)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return "Target-" + string(letters)
}

// Mask returns a redacted copy of the profile. The company name becomes the
// positional placeholder, source_url becomes a fixed redacted literal, and
// every occurrence of the original name's leading token in string or
// list-of-string fields is replaced by the placeholder. The input profile
// is never mutated.
func Mask(profile model.BusinessProfile, index int) model.BusinessProfile {
	placeholder := Placeholder(index)
	masked := profile.Clone()

	// The leading token of a multi-word name is the distinctive part
	// ("Acme" in "Acme Corp").
	token := firstToken(profile.CompanyName())
	if len(token) >= minRedactableNameLen {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(token))
		for key, value := range masked {
			switch v := value.(type) {
			case string:
				masked[key] = pattern.ReplaceAllString(v, placeholder)
			case []string:
				for i, item := range v {
					v[i] = pattern.ReplaceAllString(item, placeholder)
				}
			case []any:
				for i, item := range v {
					if s, ok := item.(string); ok {
						v[i] = pattern.ReplaceAllString(s, placeholder)
					}
				}
			}
		}
	}

	masked.SetCompanyName(placeholder)
	masked.SetSourceURL(RedactedURL)
	return masked
}

func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
