package handler

import (
	"strconv"

	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EmentaHandler struct {
	uc       *usecase.EmentaUsecase
	maxBytes int64
}

func NewEmentaHandler(uc *usecase.EmentaUsecase, maxBytes int64) *EmentaHandler {
	return &EmentaHandler{uc: uc, maxBytes: maxBytes}
}

func (h *EmentaHandler) RegisterRoutes(api fiber.Router, auth, admin fiber.Handler) {
	api.Get("/ementas", h.List)
	api.Get("/ementas/:id", h.Get)
	api.Post("/ementas/recomendar", auth, h.Recommend)
	api.Post("/ementas/:id/indexar", auth, admin, h.Index)
}

func (h *EmentaHandler) List(c *fiber.Ctx) error {
	ementas, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Ementas",
		Data:    ementas,
	})
}

func (h *EmentaHandler) Get(c *fiber.Ctx) error {
	id, err := ementaID(c)
	if err != nil {
		return badRequest(c, "ID de ementa inválido.", err)
	}
	ementa, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Ementa",
		Data:    ementa,
	})
}

func (h *EmentaHandler) Index(c *fiber.Ctx) error {
	id, err := ementaID(c)
	if err != nil {
		return badRequest(c, "ID de ementa inválido.", err)
	}
	if err := h.uc.Index(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Ementa indexada",
	})
}

func (h *EmentaHandler) Recommend(c *fiber.Ctx) error {
	fileName, data, err := readUpload(c, "arquivo", h.maxBytes)
	if err != nil {
		return badRequest(c, err.Error(), err)
	}
	topK, _ := strconv.Atoi(c.Query("limite"))

	ementas, err := h.uc.Recommend(c.UserContext(), fileName, data, topK)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Ementas recomendadas",
		Data:    dto.RecommendResponse{Arquivo: fileName, Ementas: ementas},
	})
}

func ementaID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	return uint(id), err
}
