package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

const studentAnswer = `Segue a avaliação:
` + "```json" + `
{"analise": [
  {"criterio": 1, "status": "Aprovado", "justificativa": "ok"},
  {"criterio": 2, "status": "Aprovado"},
  {"criterio": 3, "status": "Aprovado"},
  {"criterio": 4, "status": "Reprovado", "justificativa": "Uso de \"né?\" no Capítulo 1"},
  {"criterio": 5, "status": "Aprovado"},
  {"criterio": 8, "status": "Reprovado", "justificativa": ""}
]}
` + "```"

type fakeGenerator struct {
	mu        sync.Mutex
	links     string
	linksErr  error
	answer    string
	answerErr error
	prompts   []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if strings.Contains(prompt, "extrator de links") {
		return f.links, f.linksErr
	}
	return f.answer, f.answerErr
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prompts[len(f.prompts)-1]
}

type fakeVetter struct {
	err   error
	calls int
}

func (f *fakeVetter) Analyze(_ context.Context, links []string) ([]evaluation.LinkAnalysis, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]evaluation.LinkAnalysis, 0, len(links))
	for _, l := range links {
		out = append(out, evaluation.LinkAnalysis{Link: l, Status: "Reprovado", Description: "pendente"})
	}
	return out, nil
}

type fakeReportSink struct {
	mu      sync.Mutex
	err     error
	reports []*model.Report
}

func (f *fakeReportSink) Create(_ context.Context, r *model.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, r)
	return nil
}

func (f *fakeReportSink) saved() []*model.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.Report(nil), f.reports...)
}

type fakeEmentaFinder map[uint]*model.Ementa

func (f fakeEmentaFinder) FindByID(_ context.Context, id uint) (*model.Ementa, error) {
	if e, ok := f[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func plainText(_ string, data []byte) (string, error) {
	return string(data), nil
}

type evalFixture struct {
	gen     *fakeGenerator
	vetter  *fakeVetter
	reports *fakeReportSink
	uc      *EvaluationUsecase
}

func newEvalFixture() *evalFixture {
	f := &evalFixture{
		gen:     &fakeGenerator{links: `{"links": ["https://a.example"]}`, answer: studentAnswer},
		vetter:  &fakeVetter{},
		reports: &fakeReportSink{},
	}
	ementas := fakeEmentaFinder{7: {ID: 7, NomeDisciplina: "Biologia", Objetivos: "Células"}}
	f.uc = NewEvaluationUsecase(f.gen, f.vetter, f.reports, ementas, plainText)
	return f
}

func studentInput() EvaluateInput {
	return EvaluateInput{
		UserID:   uuid.New(),
		Kind:     evaluation.KindStudent,
		FileName: "apostila.docx",
		Data:     []byte("Texto da apostila com https://a.example"),
	}
}

func TestEvaluationUsecase_Evaluate(t *testing.T) {
	f := newEvalFixture()
	in := studentInput()

	out, err := f.uc.Evaluate(context.Background(), in)
	require.NoError(t, err)
	f.uc.Drain()

	assert.Equal(t, 67, out.Result.FinalScore)
	require.Len(t, out.Result.Verdicts, 8)
	assert.Equal(t, evaluation.StatusManualReview, out.Result.Verdicts[5].Status)
	assert.Equal(t, evaluation.StatusManualReview, out.Result.Verdicts[6].Status)
	assert.Equal(t, evaluation.StatusRejected, out.Result.Verdicts[7].Status)
	assert.Equal(t, evaluation.MissingJustification, out.Result.Verdicts[7].Justification)
	assert.Empty(t, out.Result.Verdicts[0].Justification)
	assert.Equal(t, "Texto da apostila com https://a.example", out.Text)

	prompt := f.gen.lastPrompt()
	assert.Contains(t, prompt, "URL: https://a.example")
	assert.Equal(t, 1, f.vetter.calls)

	saved := f.reports.saved()
	require.Len(t, saved, 1)
	assert.Equal(t, in.UserID, saved[0].UsuarioID)
	assert.Equal(t, "aluno", saved[0].Tipo)
	content := []byte(saved[0].Conteudo)
	assert.Equal(t, int64(67), gjson.GetBytes(content, "resultado.pontuacaoFinal").Int())
	assert.Equal(t, "apostila.docx", gjson.GetBytes(content, "arquivo").String())
	assert.Equal(t, 8, len(gjson.GetBytes(content, "resultado.analise").Array()))
}

func TestEvaluationUsecase_ProfessorNeedsEmenta(t *testing.T) {
	f := newEvalFixture()
	in := studentInput()
	in.Kind = evaluation.KindProfessor

	_, err := f.uc.Evaluate(context.Background(), in)
	assert.ErrorIs(t, err, evaluation.ErrValidation)

	missing := uint(99)
	in.EmentaID = &missing
	_, err = f.uc.Evaluate(context.Background(), in)
	assert.ErrorIs(t, err, evaluation.ErrValidation)

	found := uint(7)
	in.EmentaID = &found
	f.gen.answer = `{"analise": []}`
	out, err := f.uc.Evaluate(context.Background(), in)
	require.NoError(t, err)
	f.uc.Drain()
	assert.Equal(t, "Biologia", out.Ementa.NomeDisciplina)
	assert.Contains(t, f.gen.lastPrompt(), "- Disciplina: Biologia")
	assert.Zero(t, out.Result.FinalScore)
	for _, v := range out.Result.Verdicts {
		assert.Equal(t, evaluation.StatusError, v.Status)
	}
}

func TestEvaluationUsecase_RejectsBadInput(t *testing.T) {
	f := newEvalFixture()

	in := studentInput()
	in.Kind = "diretor"
	_, err := f.uc.Evaluate(context.Background(), in)
	assert.ErrorIs(t, err, evaluation.ErrValidation)

	in = studentInput()
	in.Data = nil
	_, err = f.uc.Evaluate(context.Background(), in)
	assert.ErrorIs(t, err, evaluation.ErrValidation)

	assert.Empty(t, f.gen.prompts)
}

func TestEvaluationUsecase_ParseFailureSavesNothing(t *testing.T) {
	for name, answer := range map[string]string{
		"no json":      "Não consegui avaliar.",
		"invalid json": `{"analise": [}`,
		"malformed":    `{"analise": [{"criterio": "um", "status": "Aprovado"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			f := newEvalFixture()
			f.gen.answer = answer

			_, err := f.uc.Evaluate(context.Background(), studentInput())
			f.uc.Drain()

			assert.True(t, evaluation.IsParseFailure(err), err)
			assert.Empty(t, f.reports.saved())
		})
	}
}

func TestEvaluationUsecase_ModelUnavailable(t *testing.T) {
	f := newEvalFixture()
	f.gen.answerErr = errors.New("quota exceeded")

	_, err := f.uc.Evaluate(context.Background(), studentInput())
	f.uc.Drain()

	assert.ErrorIs(t, err, evaluation.ErrModelUnavailable)
	assert.Empty(t, f.reports.saved())
}

func TestEvaluationUsecase_LinkFailuresDegrade(t *testing.T) {
	t.Run("extraction", func(t *testing.T) {
		f := newEvalFixture()
		f.gen.linksErr = errors.New("timeout")

		out, err := f.uc.Evaluate(context.Background(), studentInput())
		require.NoError(t, err)
		f.uc.Drain()
		assert.Equal(t, 67, out.Result.FinalScore)
		assert.Contains(t, f.gen.lastPrompt(), "NÃO FORAM ENCONTRADOS LINKS")
		assert.Zero(t, f.vetter.calls)
	})

	t.Run("vetting", func(t *testing.T) {
		f := newEvalFixture()
		f.vetter.err = errors.New("down")

		out, err := f.uc.Evaluate(context.Background(), studentInput())
		require.NoError(t, err)
		f.uc.Drain()
		assert.Equal(t, 67, out.Result.FinalScore)
		assert.Contains(t, f.gen.lastPrompt(), "NÃO FORAM ENCONTRADOS LINKS")
	})

	t.Run("unparseable links", func(t *testing.T) {
		f := newEvalFixture()
		f.gen.links = `{"links": "https://a.example"}`

		_, err := f.uc.Evaluate(context.Background(), studentInput())
		require.NoError(t, err)
		f.uc.Drain()
	})
}

func TestEvaluationUsecase_PersistenceFailureIsSwallowed(t *testing.T) {
	f := newEvalFixture()
	f.reports.err = errors.New("connection refused")

	out, err := f.uc.Evaluate(context.Background(), studentInput())
	f.uc.Drain()

	require.NoError(t, err)
	assert.Equal(t, 67, out.Result.FinalScore)
}

func TestEvaluationUsecase_Override(t *testing.T) {
	f := newEvalFixture()
	out, err := f.uc.Evaluate(context.Background(), studentInput())
	require.NoError(t, err)
	f.uc.Drain()

	overridden, err := f.uc.Override(evaluation.KindStudent, out.Result, 8, evaluation.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, 83, overridden.FinalScore)
	assert.True(t, overridden.Verdicts[7].ManuallyEdited)
	assert.Len(t, f.reports.saved(), 1, "overrides are not persisted")

	_, err = f.uc.Override(evaluation.KindStudent, out.Result, 42, evaluation.StatusApproved)
	assert.ErrorIs(t, err, evaluation.ErrUnknownCriterion)

	_, err = f.uc.Override("diretor", out.Result, 8, evaluation.StatusApproved)
	assert.ErrorIs(t, err, evaluation.ErrValidation)
}

func TestEvaluationUsecase_AnalyzeLinks(t *testing.T) {
	f := newEvalFixture()

	_, err := f.uc.AnalyzeLinks(context.Background(), nil)
	assert.ErrorIs(t, err, evaluation.ErrValidation)

	got, err := f.uc.AnalyzeLinks(context.Background(), []string{"https://b.example"})
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", got[0].Link)
}
