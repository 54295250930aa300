package evaluation

import "regexp"

// ApplyCorrections replaces every literal occurrence of each candidate's
// Original with its Suggestion, in input order. Later candidates see the output
// of earlier ones, so overlapping originals resolve by position in the list.
// Candidates with an empty Original or Suggestion are skipped.
func ApplyCorrections(text string, corrections []CorrectionCandidate) string {
	for _, c := range corrections {
		if c.Original == "" || c.Suggestion == "" {
			continue
		}
		pattern := regexp.MustCompile(regexp.QuoteMeta(c.Original))
		text = pattern.ReplaceAllLiteralString(text, c.Suggestion)
	}
	return text
}
