package handler

import (
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	uc *usecase.AdminUsecase
}

func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(api fiber.Router, auth, admin fiber.Handler) {
	api.Get("/admin/dashboard", auth, admin, h.Dashboard)
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Dashboard administrativo",
		Data:    dashboard,
	})
}
