package evaluation

import (
	"fmt"
	"strings"
)

const (
	noCurriculumNotice = "NENHUMA EMENTA FOI SELECIONADA. Considere apenas os critérios listados."
	noLinksNotice      = "NÃO FORAM ENCONTRADOS LINKS OU A ANÁLISE DE LINKS NÃO ESTÁ DISPONÍVEL."
	notInformed        = "N/D"
)

type PromptInput struct {
	Framing      string
	DocumentText string
	Criteria     []Criterion
	Curriculum   *Curriculum
	LinkSummary  string
}

// BuildPrompt assembles the evaluation prompt. Criteria are numbered by their
// catalog id so the answer can be matched back regardless of order.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString(strings.TrimSpace(in.Framing))
	b.WriteString("\n\n")

	if in.Curriculum != nil {
		b.WriteString("EMENTA SELECIONADA:\n")
		fmt.Fprintf(&b, "- Disciplina: %s\n", in.Curriculum.Disciplina)
		fmt.Fprintf(&b, "- Carga horária: %s\n", in.Curriculum.CargaHoraria)
		fmt.Fprintf(&b, "- Objetivos: %s\n", in.Curriculum.Objetivos)
		fmt.Fprintf(&b, "- Conteúdo programático: %s\n", in.Curriculum.ConteudoProgramatico)
	} else {
		b.WriteString(noCurriculumNotice)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if summary := strings.TrimSpace(in.LinkSummary); summary != "" {
		b.WriteString("ANÁLISE DOS LINKS EXTERNOS (GERADA ANTERIORMENTE):\n")
		b.WriteString(summary)
		b.WriteString("\n")
	} else {
		b.WriteString(noLinksNotice)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(`Sua resposta deve ser APENAS UM OBJETO JSON VÁLIDO.
Para cada critério, determine o status como "Aprovado" ou "Reprovado".

INSTRUÇÃO IMPORTANTE PARA JUSTIFICATIVA:
- Para critérios APROVADOS, a "justificativa" deve ser uma string vazia "".
- Para critérios REPROVADOS, a "justificativa" deve ser curta e cirúrgica, apontando no máximo dois exemplos claros do problema e sua localização (capítulo e seção, se possível). Não liste todas as ocorrências.

LISTA DE CRITÉRIOS PARA ANÁLISE:
`)
	for _, cr := range in.Criteria {
		text := strings.TrimSpace(cr.Instruction)
		if text == "" {
			text = cr.DisplayText
		}
		fmt.Fprintf(&b, "%d. %s\n", cr.ID, text)
	}

	b.WriteString("\nAPOSTILA COMPLETA PARA ANÁLISE:\n---\n")
	b.WriteString(in.DocumentText)
	b.WriteString("\n---\n\n")

	b.WriteString(`FORMATO JSON DE SAÍDA OBRIGATÓRIO (um item por critério, usando o número do critério):
{"analise": [{"criterio": <number>, "status": "<Aprovado ou Reprovado>", "justificativa": "<string>"}]}
`)
	return b.String()
}

// FormatLinkSummary renders vetting results for inclusion in the prompt.
func FormatLinkSummary(analyses []LinkAnalysis) string {
	if len(analyses) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(analyses))
	for i, a := range analyses {
		status := a.Status
		if status == "" {
			status = notInformed
		}
		desc := a.Description
		if desc == "" {
			desc = notInformed
		}
		blocks = append(blocks, fmt.Sprintf("Link %d:\n  URL: %s\n  Status: %s\n  Descrição: %s", i+1, a.Link, status, desc))
	}
	return strings.Join(blocks, "\n\n")
}

// BuildLinkPrompt asks the model for every URL present in the text.
func BuildLinkPrompt(documentText string) string {
	return fmt.Sprintf(`Você é um extrator de links. A partir do texto abaixo, identifique todos os links (URLs) presentes.

Responda APENAS em JSON válido, no formato:
{"links": ["https://exemplo.com/1", "https://exemplo.com/2"]}

Se não houver nenhum link, responda:
{"links": []}

Texto:
"""
%s
"""
`, documentText)
}

// SuggestionInput describes a rejected criterion for which literal text
// corrections are requested.
type SuggestionInput struct {
	CriterionID   int
	Description   string
	Justification string
	Curriculum    *Curriculum
}

// BuildSuggestionPrompt asks the model for literal replacements of the
// problematic excerpts quoted in a justification.
func BuildSuggestionPrompt(in SuggestionInput) string {
	justification := strings.TrimSpace(in.Justification)
	if justification == "" {
		justification = "Sem justificativa detalhada."
	}
	objetivos, conteudo := "Não informados", "Não informado"
	if in.Curriculum != nil {
		if in.Curriculum.Objetivos != "" {
			objetivos = in.Curriculum.Objetivos
		}
		if in.Curriculum.ConteudoProgramatico != "" {
			conteudo = in.Curriculum.ConteudoProgramatico
		}
	}

	return fmt.Sprintf(`Você é um revisor pedagógico de materiais didáticos para o ensino médio.

Entrada:
- Critério %d: "%s"
- Justificativa (com exemplos de trechos problemáticos): "%s"
- Objetivos da ementa: "%s"
- Conteúdo programático: "%s"

Tarefa:
1) Identifique na justificativa as expressões ou trechos problemáticos, principalmente os que aparecem entre aspas.
2) Para cada trecho, escreva uma versão adequada a um material didático do ensino médio (linguagem clara, formal e objetiva).
3) Para cada correção retorne:
   - "original": o trecho exato como aparece no material; ele será usado literalmente para localizar e substituir, então não invente variações.
   - "sugestao": o trecho reescrito.
   - "contexto": local aproximado (ex.: "Capítulo 3, exemplos").

Não gere comentários genéricos sobre a apostila inteira. "original" deve ser curto e localizável no texto.

Retorne APENAS um JSON válido no formato:
{"correcoes": [{"original": "...", "sugestao": "...", "contexto": "..."}]}

Se não houver nada a corrigir, retorne:
{"correcoes": []}
`, in.CriterionID, in.Description, justification, objetivos, conteudo)
}
