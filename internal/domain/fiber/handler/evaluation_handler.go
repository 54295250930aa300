package handler

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/middleware"
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EvaluationHandler struct {
	uc        *usecase.EvaluationUsecase
	maxBytes  int64
	perMinute int
}

// NewEvaluationHandler limits each user to perMinute evaluations since every
// one of them costs two model calls.
func NewEvaluationHandler(uc *usecase.EvaluationUsecase, maxBytes int64, perMinute int) *EvaluationHandler {
	return &EvaluationHandler{uc: uc, maxBytes: maxBytes, perMinute: perMinute}
}

func (h *EvaluationHandler) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Post("/avaliacoes", auth, middleware.RateLimiter(h.perMinute, time.Minute), h.Evaluate)
	api.Post("/avaliacoes/override", auth, h.Override)
	api.Post("/analyze-links", h.AnalyzeLinks)
}

func (h *EvaluationHandler) Evaluate(c *fiber.Ctx) error {
	fileName, data, err := readUpload(c, "arquivo", h.maxBytes)
	if err != nil {
		return badRequest(c, err.Error(), err)
	}

	var ementaID *uint
	if raw := strings.TrimSpace(c.FormValue("ementa_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return badRequest(c, "ementa_id inválido.", err)
		}
		v := uint(id)
		ementaID = &v
	}

	kind := evaluation.Kind(strings.ToLower(strings.TrimSpace(c.FormValue("tipo"))))
	out, err := h.uc.Evaluate(c.UserContext(), usecase.EvaluateInput{
		UserID:   actorOf(c).ID,
		Kind:     kind,
		FileName: fileName,
		Data:     data,
		EmentaID: ementaID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Avaliação concluída",
		Data: dto.EvaluateResponse{
			Tipo:          string(kind),
			Arquivo:       out.FileName,
			Ementa:        out.Ementa,
			Resultado:     out.Result,
			TextoOriginal: out.Text,
		},
	})
}

func (h *EvaluationHandler) Override(c *fiber.Ctx) error {
	var req dto.OverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido.", err)
	}
	if req.Criterio == nil || req.Status == "" {
		return badRequest(c, "Critério e status são obrigatórios.")
	}

	result, err := h.uc.Override(evaluation.Kind(req.Tipo), req.Resultado, *req.Criterio, evaluation.Status(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Critério atualizado",
		Data:    result,
	})
}

func (h *EvaluationHandler) AnalyzeLinks(c *fiber.Ctx) error {
	var req dto.AnalyzeLinksRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido.", err)
	}
	analysis, err := h.uc.AnalyzeLinks(c.UserContext(), req.Links)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Links analisados",
		Data:    dto.AnalyzeLinksResponse{Analysis: analysis},
	})
}

// uploadError is a user-facing message about a bad multipart upload.
type uploadError string

func (e uploadError) Error() string {
	return string(e)
}

const errUnreadableUpload = uploadError("Não foi possível ler o arquivo enviado.")

// readUpload loads a multipart file into memory after checking its size.
func readUpload(c *fiber.Ctx, field string, maxBytes int64) (string, []byte, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil, uploadError(fmt.Sprintf("Arquivo é obrigatório (campo %q).", field))
	}
	if maxBytes > 0 && file.Size > maxBytes {
		return "", nil, uploadError(fmt.Sprintf("Arquivo muito grande (máximo %d MB).", maxBytes/(1024*1024)))
	}
	f, err := file.Open()
	if err != nil {
		return "", nil, errUnreadableUpload
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, errUnreadableUpload
	}
	return file.Filename, data, nil
}
