package evaluation

// Status is the outcome of one criterion. The values are the literal strings
// stored in report payloads and expected from the model.
type Status string

const (
	StatusApproved     Status = "Aprovado"
	StatusRejected     Status = "Reprovado"
	StatusManualReview Status = "Análise Manual"
	StatusError        Status = "Erro"
)

// Overridable reports whether a reviewer may set a verdict to s.
func (s Status) Overridable() bool {
	return s == StatusApproved || s == StatusRejected
}

// Verdict is the per-criterion outcome of one evaluation run.
type Verdict struct {
	CriterionID    int    `json:"criterio"`
	Description    string `json:"descricao"`
	Status         Status `json:"status"`
	Justification  string `json:"justificativa"`
	ManuallyEdited bool   `json:"manualEdit"`
}

// Result is what gets shown to the user and embedded in the stored report.
type Result struct {
	FinalScore int       `json:"pontuacaoFinal"`
	Verdicts   []Verdict `json:"analise"`
}

// RawVerdict is a verdict as decoded from the model, before it is matched
// against a catalog.
type RawVerdict struct {
	CriterionID   int
	Status        Status
	Justification string
}

// Curriculum is the selected "ementa" used as evaluation context.
type Curriculum struct {
	Disciplina           string `json:"nome_disciplina"`
	CargaHoraria         string `json:"carga_horaria"`
	Objetivos            string `json:"objetivos"`
	ConteudoProgramatico string `json:"conteudo_programatico"`
}

// LinkAnalysis is the vetting outcome for one URL found in the document.
type LinkAnalysis struct {
	Link        string `json:"link"`
	Status      string `json:"status"`
	Description string `json:"descricao"`
	DisplayText string `json:"displayText,omitempty"`
}

// CorrectionCandidate is a literal text substitution proposed for a document.
type CorrectionCandidate struct {
	Original   string `json:"original"`
	Suggestion string `json:"sugestao"`
	Context    string `json:"contexto,omitempty"`
}
