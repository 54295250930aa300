package evaluation

import "math"

// MissingJustification fills a rejected verdict the model left unexplained.
const MissingJustification = "O modelo reprovou este critério sem apresentar justificativa."

// Score maps the parsed verdicts onto the catalog. Every catalog criterion gets
// exactly one verdict; ids the catalog does not know are ignored and the first
// verdict wins when the model repeats an id.
func Score(catalog *Catalog, parsed []RawVerdict) Result {
	byID := make(map[int]RawVerdict, len(parsed))
	for _, rv := range parsed {
		if _, ok := catalog.Lookup(rv.CriterionID); !ok {
			continue
		}
		if _, dup := byID[rv.CriterionID]; dup {
			continue
		}
		byID[rv.CriterionID] = rv
	}

	verdicts := make([]Verdict, 0, catalog.Len())
	for _, cr := range catalog.criteria {
		v := Verdict{
			CriterionID: cr.ID,
			Description: cr.DisplayText,
		}

		if cr.Variant == VariantManual {
			v.Status = StatusManualReview
			verdicts = append(verdicts, v)
			continue
		}

		rv, found := byID[cr.ID]
		if !found {
			v.Status = StatusError
			verdicts = append(verdicts, v)
			continue
		}

		v.Status = rv.Status
		switch rv.Status {
		case StatusApproved:
			v.Justification = ""
		case StatusRejected:
			v.Justification = rv.Justification
			if v.Justification == "" {
				v.Justification = MissingJustification
			}
		}
		verdicts = append(verdicts, v)
	}

	return Result{
		FinalScore: FinalScore(catalog, verdicts),
		Verdicts:   verdicts,
	}
}

// FinalScore is round(100 * approved auto verdicts / auto criteria), or 0 for a
// catalog without auto criteria. Verdicts on manual criteria never count.
func FinalScore(catalog *Catalog, verdicts []Verdict) int {
	total := catalog.AutoCount()
	if total == 0 {
		return 0
	}

	approved := 0
	for _, v := range verdicts {
		cr, ok := catalog.Lookup(v.CriterionID)
		if !ok || cr.Variant != VariantAuto {
			continue
		}
		if v.Status == StatusApproved {
			approved++
		}
	}
	return int(math.Round(100 * float64(approved) / float64(total)))
}
