// Package common holds response types shared by every API.
package common

import "github.com/gofiber/fiber/v2"

// ErrorResponse represents a standardized error response structure.
// It provides consistent error formatting across all API endpoints.
type ErrorResponse struct {
	// Error indicates whether this is an error response
	Error bool `json:"error"`

	// Message contains the error message description
	Message string `json:"message"`
}

// SendError writes an ErrorResponse with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Error:   true,
		Message: message,
	})
}
