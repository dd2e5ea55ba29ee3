package questionbank

import (
	"regexp"
	"strings"
)

// Models regularly label options even when told not to. CleanOption
// strips one leading letter marker ("A) ", "b. ") and one leading
// "OptionN:" marker, then trims. Already-clean text passes through
// unchanged.
var (
	letterMarkerRe = regexp.MustCompile(`(?i)^[A-D][).]\s*`)
	optionMarkerRe = regexp.MustCompile(`(?i)^Option\d+:\s*`)
)

// CleanOption normalizes raw option text coming back from the model.
func CleanOption(text string) string {
	if text == "" {
		return ""
	}
	text = letterMarkerRe.ReplaceAllString(text, "")
	text = optionMarkerRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// DifficultyLevelID maps a difficulty label to the question bank's
// numeric level id. Unknown or empty labels resolve to 1: earlier
// pipeline revisions disagreed on this fallback, and level 1 is the
// documented default.
func DifficultyLevelID(label string) int {
	switch label {
	case "Easy":
		return 1
	case "Medium":
		return 2
	case "Hard":
		return 3
	default:
		return 1
	}
}
