package serverutils

import (
	"errors"

	"compare-audius-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the failure shape of every /api endpoint
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// SuccessBody acknowledges deletes and batch writes
type SuccessBody struct {
	Success bool `json:"success"`
}

func SuccessResponse() SuccessBody {
	return SuccessBody{Success: true}
}

// StatusFor maps an error kind to its HTTP status
func StatusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindConflict:
		return fiber.StatusConflict
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// MessageFor is the client-facing text for err
func MessageFor(err error) string {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return apperror.PublicMessage(err)
}
