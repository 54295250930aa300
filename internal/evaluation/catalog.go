package evaluation

import (
	"fmt"
	"strings"
)

type Variant string

const (
	VariantAuto   Variant = "auto"
	VariantManual Variant = "manual"
)

// Kind identifies which material is being evaluated. It doubles as the
// report "tipo".
type Kind string

const (
	KindProfessor Kind = "professor"
	KindStudent   Kind = "aluno"
)

type Criterion struct {
	ID          int     `json:"id"`
	DisplayText string  `json:"displayText"`
	Variant     Variant `json:"type"`
	Instruction string  `json:"-"`
}

// Catalog is an immutable, ordered set of criteria keyed by id.
type Catalog struct {
	kind     Kind
	framing  string
	criteria []Criterion
	index    map[int]int
	autos    int
}

func NewCatalog(kind Kind, framing string, criteria []Criterion) (*Catalog, error) {
	c := &Catalog{
		kind:     kind,
		framing:  framing,
		criteria: make([]Criterion, len(criteria)),
		index:    make(map[int]int, len(criteria)),
	}
	copy(c.criteria, criteria)

	for i, cr := range c.criteria {
		if _, dup := c.index[cr.ID]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate criterion id %d", kind, cr.ID)
		}
		switch cr.Variant {
		case VariantAuto:
			if strings.TrimSpace(cr.Instruction) == "" {
				return nil, fmt.Errorf("catalog %s: auto criterion %d has no instruction", kind, cr.ID)
			}
			c.autos++
		case VariantManual:
		default:
			return nil, fmt.Errorf("catalog %s: criterion %d has unknown variant %q", kind, cr.ID, cr.Variant)
		}
		c.index[cr.ID] = i
	}
	return c, nil
}

func mustCatalog(kind Kind, framing string, criteria []Criterion) *Catalog {
	c, err := NewCatalog(kind, framing, criteria)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Kind() Kind {
	return c.kind
}

// Framing is the role description that opens the evaluation prompt.
func (c *Catalog) Framing() string {
	return c.framing
}

func (c *Catalog) Len() int {
	return len(c.criteria)
}

func (c *Catalog) AutoCount() int {
	return c.autos
}

// Criteria returns a copy of every criterion in catalog order.
func (c *Catalog) Criteria() []Criterion {
	out := make([]Criterion, len(c.criteria))
	copy(out, c.criteria)
	return out
}

// Auto returns the model-evaluated criteria in catalog order.
func (c *Catalog) Auto() []Criterion {
	out := make([]Criterion, 0, c.autos)
	for _, cr := range c.criteria {
		if cr.Variant == VariantAuto {
			out = append(out, cr)
		}
	}
	return out
}

func (c *Catalog) Lookup(id int) (Criterion, bool) {
	i, ok := c.index[id]
	if !ok {
		return Criterion{}, false
	}
	return c.criteria[i], true
}

// CheckShape verifies that r carries exactly one verdict per catalog
// criterion. Results coming back from clients go through here before any
// override is applied.
func (c *Catalog) CheckShape(r Result) error {
	if len(r.Verdicts) != len(c.criteria) {
		return fmt.Errorf("%w: expected %d verdicts, got %d", ErrValidation, len(c.criteria), len(r.Verdicts))
	}
	seen := make(map[int]struct{}, len(r.Verdicts))
	for _, v := range r.Verdicts {
		if _, ok := c.index[v.CriterionID]; !ok {
			return fmt.Errorf("%w: criterion %d is not part of the %s catalog", ErrValidation, v.CriterionID, c.kind)
		}
		if _, dup := seen[v.CriterionID]; dup {
			return fmt.Errorf("%w: duplicate verdict for criterion %d", ErrValidation, v.CriterionID)
		}
		seen[v.CriterionID] = struct{}{}
	}
	return nil
}

// CatalogFor returns the built-in catalog for a kind.
func CatalogFor(kind Kind) (*Catalog, error) {
	switch kind {
	case KindProfessor:
		return professorCatalog, nil
	case KindStudent:
		return studentCatalog, nil
	}
	return nil, fmt.Errorf("%w: unknown evaluation type %q", ErrValidation, kind)
}
