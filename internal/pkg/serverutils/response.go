package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// APIError is the JSON body returned for every failed request.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(code int, message string) APIError {
	return APIError{Code: code, Message: message}
}

// APISuccess wraps every successful JSON body.
type APISuccess struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func SuccessResponse(message string, data interface{}) APISuccess {
	return APISuccess{Message: message, Data: data}
}

// ErrorHandlerMiddleware recovers panics and turns unhandled errors into the
// standard error body so handlers can simply return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
