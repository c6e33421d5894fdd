package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/outflo/outflo-backend/internal/models"
)

// respondValidationError writes a 400 envelope for a binding failure,
// expanding validator errors into field-level messages.
func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, models.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, models.APIError{
			Success: false,
			Message: "Invalid request data",
			Errors:  fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, models.Err("Invalid request data", err.Error()))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
