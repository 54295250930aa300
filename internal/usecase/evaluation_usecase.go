package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/fadilmartias/apostila-analyzer/internal/service"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportSink interface {
	Create(ctx context.Context, report *model.Report) error
}

type EmentaFinder interface {
	FindByID(ctx context.Context, id uint) (*model.Ementa, error)
}

// TextExtractor turns an uploaded file into plain text.
type TextExtractor func(fileName string, data []byte) (string, error)

type EvaluateInput struct {
	UserID   uuid.UUID
	Kind     evaluation.Kind
	FileName string
	Data     []byte
	EmentaID *uint
}

type EvaluationOutput struct {
	Result   evaluation.Result
	Text     string
	FileName string
	Ementa   *model.Ementa
}

type EvaluationUsecase struct {
	invoker *evaluation.Invoker
	links   service.LinkVetter
	reports ReportSink
	ementas EmentaFinder
	extract TextExtractor

	persistTimeout time.Duration
	pending        sync.WaitGroup
}

func NewEvaluationUsecase(gen evaluation.Generator, links service.LinkVetter, reports ReportSink, ementas EmentaFinder, extract TextExtractor) *EvaluationUsecase {
	return &EvaluationUsecase{
		invoker:        evaluation.NewInvoker(gen),
		links:          links,
		reports:        reports,
		ementas:        ementas,
		extract:        extract,
		persistTimeout: 15 * time.Second,
	}
}

// Evaluate runs one document through extraction, link vetting, the model and
// the scorer. The report is saved in the background; a failed save is logged
// and never changes what the caller gets back.
func (uc *EvaluationUsecase) Evaluate(ctx context.Context, in EvaluateInput) (*EvaluationOutput, error) {
	catalog, err := evaluation.CatalogFor(in.Kind)
	if err != nil {
		return nil, invalid("Tipo de avaliação inválido. Use \"professor\" ou \"aluno\".")
	}
	if len(in.Data) == 0 {
		return nil, invalid("Arquivo é obrigatório.")
	}
	if in.Kind == evaluation.KindProfessor && in.EmentaID == nil {
		return nil, invalid("Selecione uma ementa para avaliar o material do professor.")
	}

	text, err := uc.extract(in.FileName, in.Data)
	if err != nil {
		return nil, err
	}

	var ementa *model.Ementa
	if in.EmentaID != nil {
		ementa, err = uc.ementas.FindByID(ctx, *in.EmentaID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("Ementa não encontrada.")
		}
		if err != nil {
			return nil, fmt.Errorf("load ementa %d: %w", *in.EmentaID, err)
		}
	}

	prompt := evaluation.BuildPrompt(evaluation.PromptInput{
		Framing:      catalog.Framing(),
		DocumentText: text,
		Criteria:     catalog.Auto(),
		Curriculum:   curriculumOf(ementa),
		LinkSummary:  uc.linkSummary(ctx, text),
	})

	raw, err := uc.invoker.Evaluate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := evaluation.ParseVerdicts(raw)
	if err != nil {
		var pe *evaluation.ParseError
		if errors.As(err, &pe) {
			log.Printf("Evaluation parse failed for %s: %v; raw model output: %s", in.FileName, err, pe.Raw)
		}
		return nil, err
	}

	result := evaluation.Score(catalog, parsed)

	if ctx.Err() == nil {
		uc.persist(in, ementa, result)
	}

	return &EvaluationOutput{
		Result:   result,
		Text:     text,
		FileName: in.FileName,
		Ementa:   ementa,
	}, nil
}

// linkSummary never fails: links are context for the model, not a requirement.
func (uc *EvaluationUsecase) linkSummary(ctx context.Context, text string) string {
	urls, err := uc.invoker.ExtractLinks(ctx, text)
	if err != nil {
		log.Printf("Link extraction failed, continuing without links: %v", err)
		return ""
	}
	if len(urls) == 0 {
		return ""
	}
	analyses, err := uc.links.Analyze(ctx, urls)
	if err != nil {
		log.Printf("Link vetting failed, continuing without links: %v", err)
		return ""
	}
	return evaluation.FormatLinkSummary(analyses)
}

func (uc *EvaluationUsecase) persist(in EvaluateInput, ementa *model.Ementa, result evaluation.Result) {
	content, err := json.Marshal(dto.ReportContent{
		Aba:       string(in.Kind),
		Arquivo:   in.FileName,
		Ementa:    ementa,
		Resultado: result,
	})
	if err != nil {
		log.Printf("%v: encode report: %v", evaluation.ErrPersistence, err)
		return
	}
	report := &model.Report{
		ID:        uuid.New(),
		UsuarioID: in.UserID,
		Titulo:    fmt.Sprintf("Avaliação %s - %s", in.Kind, in.FileName),
		Tipo:      string(in.Kind),
		Conteudo:  datatypes.JSON(content),
	}

	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), uc.persistTimeout)
		defer cancel()
		if err := uc.reports.Create(ctx, report); err != nil {
			log.Printf("%v: %s for user %s: %v", evaluation.ErrPersistence, in.FileName, in.UserID, err)
		}
	}()
}

// Drain blocks until background report saves have finished.
func (uc *EvaluationUsecase) Drain() {
	uc.pending.Wait()
}

func (uc *EvaluationUsecase) Override(kind evaluation.Kind, result evaluation.Result, criterionID int, status evaluation.Status) (evaluation.Result, error) {
	catalog, err := evaluation.CatalogFor(kind)
	if err != nil {
		return evaluation.Result{}, invalid("Tipo de avaliação inválido. Use \"professor\" ou \"aluno\".")
	}
	return evaluation.ApplyOverride(catalog, result, criterionID, status)
}

// AnalyzeLinks vets an explicit list of URLs.
func (uc *EvaluationUsecase) AnalyzeLinks(ctx context.Context, links []string) ([]evaluation.LinkAnalysis, error) {
	if len(links) == 0 {
		return nil, invalid("Lista de links é obrigatória.")
	}
	return uc.links.Analyze(ctx, links)
}

func curriculumOf(e *model.Ementa) *evaluation.Curriculum {
	if e == nil {
		return nil
	}
	return &evaluation.Curriculum{
		Disciplina:           e.NomeDisciplina,
		CargaHoraria:         e.CargaHoraria,
		Objetivos:            e.Objetivos,
		ConteudoProgramatico: e.ConteudoProgramatico,
	}
}
