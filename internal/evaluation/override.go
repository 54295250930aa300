package evaluation

import "fmt"

// ApplyOverride sets the status of one criterion as decided by a reviewer and
// recomputes the score. The input result is left untouched. Overrides are not
// persisted; the caller owns the returned copy.
func ApplyOverride(catalog *Catalog, result Result, criterionID int, status Status) (Result, error) {
	if !status.Overridable() {
		return Result{}, fmt.Errorf("%w: status %q cannot be set by a reviewer", ErrValidation, status)
	}
	if _, ok := catalog.Lookup(criterionID); !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownCriterion, criterionID)
	}
	if err := catalog.CheckShape(result); err != nil {
		return Result{}, err
	}

	verdicts := make([]Verdict, len(result.Verdicts))
	copy(verdicts, result.Verdicts)
	for i := range verdicts {
		if verdicts[i].CriterionID == criterionID {
			verdicts[i].Status = status
			verdicts[i].ManuallyEdited = true
		}
	}

	return Result{
		FinalScore: FinalScore(catalog, verdicts),
		Verdicts:   verdicts,
	}, nil
}
