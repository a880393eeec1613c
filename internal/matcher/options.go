package matcher

import "strings"

// projectOption fits a stored answer onto one of a field's fixed options.
// Tries, in order: case-insensitive exact equality, substring containment
// in either direction, then yes/no boolean normalization ("Y", "true", "1"
// pick the Yes option). Returns "" when nothing fits; the caller falls
// back to the raw answer rather than dropping the field.
func projectOption(answer string, options []string) string {
	answerLower := strings.ToLower(answer)

	for _, option := range options {
		if strings.ToLower(option) == answerLower {
			return option
		}
	}

	for _, option := range options {
		optionLower := strings.ToLower(option)
		if strings.Contains(optionLower, answerLower) || strings.Contains(answerLower, optionLower) {
			return option
		}
	}

	switch answerLower {
	case "yes", "y", "true", "1":
		for _, option := range options {
			if l := strings.ToLower(option); l == "yes" || l == "y" {
				return option
			}
		}
	case "no", "n", "false", "0":
		for _, option := range options {
			if l := strings.ToLower(option); l == "no" || l == "n" {
				return option
			}
		}
	}

	return ""
}
