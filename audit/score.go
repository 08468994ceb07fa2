package audit

import (
	"regexp"
	"strconv"
)

// defaultScore is used when no valid score can be extracted from an
// analysis, or when an audit has no rule-based fallback.
const defaultScore = 50

// scorePatterns are tried in order; the first match with a value in
// [0, 100] wins.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Score:\s*(\d+)`),
	regexp.MustCompile(`(?i)Score\s*[:\-]\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*/\s*100`),
	regexp.MustCompile(`(?i)(\d+)\s*out of\s*100`),
}

// extractScore pulls the numeric score out of a free-text analysis.
// Returns defaultScore when no pattern yields a valid value.
func (a *Auditor) extractScore(text, name string) int {
	for _, pattern := range scorePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		score, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if score >= 0 && score <= 100 {
			return score
		}
	}
	a.logger().Warn("no valid score found in analysis, using fallback", "audit", name)
	return defaultScore
}
