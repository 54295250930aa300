package handler

import (
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/dto"
	"github.com/fadilmartias/apostila-analyzer/internal/middleware"
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(api fiber.Router) {
	limit := middleware.RateLimiter(10, time.Minute)
	api.Post("/register", limit, h.Register)
	api.Post("/login", limit, h.Login)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido.", err)
	}
	if fe := registerFormError(req); fe != nil {
		return util.FormErrorResponse(c, fe)
	}
	out, err := h.uc.Register(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Usuário registrado",
		Data:    out,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido.", err)
	}
	out, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Login realizado",
		Data:    out,
	})
}

func registerFormError(req dto.RegisterRequest) *util.FormError {
	errs := map[string]string{}
	if req.Name == "" {
		errs["name"] = "obrigatório"
	}
	if req.Email == "" {
		errs["email"] = "obrigatório"
	}
	if req.Password == "" {
		errs["password"] = "obrigatório"
	}
	if len(errs) == 0 {
		return nil
	}
	return util.NewFormError("Nome, e-mail e senha são obrigatórios.", errs)
}
