package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCorrections(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		corrections []CorrectionCandidate
		want        string
	}{
		{
			name: "empty list is a no-op",
			text: "Legal, né?",
			want: "Legal, né?",
		},
		{
			name:        "replaces every occurrence",
			text:        "Legal, né? Muito legal, né? Legal, né?",
			corrections: []CorrectionCandidate{{Original: "Legal, né?", Suggestion: "Interessante."}},
			want:        "Interessante. Muito legal, né? Interessante.",
		},
		{
			name:        "sequential, not simultaneous",
			text:        "AB",
			corrections: []CorrectionCandidate{{Original: "A", Suggestion: "X"}, {Original: "X", Suggestion: "Y"}},
			want:        "YB",
		},
		{
			name:        "regex metacharacters are literal",
			text:        "Custo (R$ 10.00)? Sim. Custo (R$ 10a00)?",
			corrections: []CorrectionCandidate{{Original: "(R$ 10.00)?", Suggestion: "de R$ 10,00"}},
			want:        "Custo de R$ 10,00 Sim. Custo (R$ 10a00)?",
		},
		{
			name:        "suggestion is not expanded",
			text:        "aluno",
			corrections: []CorrectionCandidate{{Original: "aluno", Suggestion: "$0 estudante ${1}"}},
			want:        "$0 estudante ${1}",
		},
		{
			name: "incomplete candidates are skipped",
			text: "Aluno",
			corrections: []CorrectionCandidate{
				{Original: "", Suggestion: "x"},
				{Original: "Aluno", Suggestion: ""},
			},
			want: "Aluno",
		},
		{
			name:        "no match is a no-op",
			text:        "Estudante",
			corrections: []CorrectionCandidate{{Original: "Aluno", Suggestion: "Estudante"}},
			want:        "Estudante",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyCorrections(tt.text, tt.corrections))
		})
	}
}
