package evaluation

import (
	"math"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var fenceJSON = regexp.MustCompile("(?i)```json")

// extractEnvelope strips markdown fences and cuts the text down to the
// outermost JSON object.
func extractEnvelope(raw string) (string, error) {
	text := fenceJSON.ReplaceAllString(raw, "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", parseErr(ErrNoJSONFound, raw, "no object delimiters")
	}

	payload := text[start : end+1]
	if !gjson.Valid(payload) {
		return "", parseErr(ErrInvalidJSON, raw, "payload does not parse")
	}
	return payload, nil
}

// ParseVerdicts decodes the {"analise":[...]} envelope returned by the model.
// An empty "analise" array is a valid answer; a missing or mistyped one is not.
func ParseVerdicts(raw string) ([]RawVerdict, error) {
	payload, err := extractEnvelope(raw)
	if err != nil {
		return nil, err
	}

	analise := gjson.Get(payload, "analise")
	if !analise.Exists() {
		return nil, parseErr(ErrMalformedModelResponse, raw, `missing "analise" field`)
	}
	if !analise.IsArray() {
		return nil, parseErr(ErrMalformedModelResponse, raw, `"analise" is not an array`)
	}

	items := analise.Array()
	verdicts := make([]RawVerdict, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, parseErr(ErrMalformedModelResponse, raw, "analise[%d] is not an object", i)
		}

		criterio := item.Get("criterio")
		if criterio.Type != gjson.Number || criterio.Num != math.Trunc(criterio.Num) {
			return nil, parseErr(ErrMalformedModelResponse, raw, "analise[%d].criterio is not an integer", i)
		}

		status := Status(item.Get("status").String())
		if item.Get("status").Type != gjson.String || !status.Overridable() {
			return nil, parseErr(ErrMalformedModelResponse, raw, "analise[%d].status %q is not Aprovado/Reprovado", i, item.Get("status").Raw)
		}

		var justification string
		switch j := item.Get("justificativa"); j.Type {
		case gjson.String:
			justification = strings.TrimSpace(j.Str)
		case gjson.Null:
		default:
			return nil, parseErr(ErrMalformedModelResponse, raw, "analise[%d].justificativa is not a string", i)
		}

		verdicts = append(verdicts, RawVerdict{
			CriterionID:   int(criterio.Int()),
			Status:        status,
			Justification: justification,
		})
	}
	return verdicts, nil
}

// ParseLinks decodes the {"links":[...]} envelope of the link extraction
// prompt. The result is trimmed, deduplicated in first-seen order and never nil.
func ParseLinks(raw string) ([]string, error) {
	payload, err := extractEnvelope(raw)
	if err != nil {
		return nil, err
	}

	field := gjson.Get(payload, "links")
	if !field.Exists() || !field.IsArray() {
		return nil, parseErr(ErrMalformedModelResponse, raw, `"links" is missing or not an array`)
	}

	links := make([]string, 0)
	seen := make(map[string]struct{})
	for _, item := range field.Array() {
		link := strings.TrimSpace(item.String())
		if link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links, nil
}

// ParseCorrections decodes the {"correcoes":[...]} envelope of the suggestion
// prompt. A missing "correcoes" field means the model found nothing to fix.
func ParseCorrections(raw string) ([]CorrectionCandidate, error) {
	payload, err := extractEnvelope(raw)
	if err != nil {
		return nil, err
	}

	field := gjson.Get(payload, "correcoes")
	corrections := make([]CorrectionCandidate, 0)
	if !field.Exists() || field.Type == gjson.Null {
		return corrections, nil
	}
	if !field.IsArray() {
		return nil, parseErr(ErrMalformedModelResponse, raw, `"correcoes" is not an array`)
	}

	for _, item := range field.Array() {
		if !item.IsObject() {
			continue
		}
		corrections = append(corrections, CorrectionCandidate{
			Original:   item.Get("original").String(),
			Suggestion: item.Get("sugestao").String(),
			Context:    item.Get("contexto").String(),
		})
	}
	return corrections, nil
}
