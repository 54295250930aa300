package handler

import (
	"errors"
	"log"

	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"github.com/fadilmartias/apostila-analyzer/internal/middleware"
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

// statusOf maps domain errors to an HTTP status and a message safe for users.
// Model output never reaches the message; it is only logged by the usecase.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, evaluation.ErrUnsupportedFormat):
		return fiber.StatusBadRequest, "Formato de arquivo não suportado. Envie um arquivo .docx."
	case errors.Is(err, evaluation.ErrUnknownCriterion):
		return fiber.StatusBadRequest, "Critério desconhecido para este tipo de avaliação."
	case errors.Is(err, evaluation.ErrValidation):
		return fiber.StatusBadRequest, "Requisição inválida."
	case errors.Is(err, usecase.ErrUnauthorized):
		return fiber.StatusUnauthorized, "Não autorizado."
	case errors.Is(err, usecase.ErrForbidden):
		return fiber.StatusForbidden, "Acesso negado."
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.StatusNotFound, "Recurso não encontrado."
	case errors.Is(err, usecase.ErrConflict):
		return fiber.StatusConflict, "Conflito com um registro existente."
	case evaluation.IsParseFailure(err):
		return fiber.StatusBadGateway, "A resposta da IA não pôde ser interpretada. Tente novamente."
	case errors.Is(err, evaluation.ErrModelUnavailable):
		return fiber.StatusBadGateway, "Serviço de IA indisponível no momento. Tente novamente."
	default:
		return fiber.StatusInternalServerError, "Erro interno do servidor."
	}
}

func respondError(c *fiber.Ctx, err error) error {
	code, message := statusOf(err)
	var ue *usecase.UserError
	if errors.As(err, &ue) {
		message = ue.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

func badRequest(c *fiber.Ctx, message string, errs ...error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: message,
	}, errs...)
}

func actorOf(c *fiber.Ctx) usecase.Actor {
	user, _ := middleware.CurrentUser(c)
	return usecase.Actor{ID: user.ID, Role: user.Role}
}
