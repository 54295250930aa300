package handler

import (
	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CorrectionHandler struct {
	uc *usecase.CorrectionUsecase
}

func NewCorrectionHandler(uc *usecase.CorrectionUsecase) *CorrectionHandler {
	return &CorrectionHandler{uc: uc}
}

func (h *CorrectionHandler) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Post("/sugestoes", auth, h.Suggest)
	api.Post("/aplicar-correcoes", auth, h.Apply)
}

func (h *CorrectionHandler) Suggest(c *fiber.Ctx) error {
	var req dto.SuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido.", err)
	}
	corrections, err := h.uc.Suggest(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Sugestões geradas",
		Data:    dto.SuggestionResponse{Correcoes: corrections},
	})
}

// Apply streams the corrected document back as an attachment.
func (h *CorrectionHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyCorrectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido.", err)
	}
	export, err := h.uc.Export(req)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(export.Format.FileName())
	c.Set(fiber.HeaderContentType, export.Format.ContentType())
	return c.Send(export.Data)
}
