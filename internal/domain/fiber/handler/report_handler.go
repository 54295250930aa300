package handler

import (
	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	reports := api.Group("/relatorios", auth)
	reports.Post("/", h.Create)
	reports.Get("/", h.List)
	reports.Get("/:id", h.Get)
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido.", err)
	}
	report, err := h.uc.Create(c.UserContext(), actorOf(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Relatório salvo",
		Data:    report,
	})
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	reports, pagination, err := h.uc.List(c.UserContext(), actorOf(c), c.QueryInt("page", 1), c.QueryInt("page_size", 0))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Relatórios",
		Data:       reports,
		Pagination: pagination,
	})
}

func (h *ReportHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "ID de relatório inválido.", err)
	}
	report, err := h.uc.Get(c.UserContext(), actorOf(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Relatório",
		Data:    report,
	})
}
