package middleware

import (
	"net/http"
	"reflect"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidatedBodyKey is the gin context key under which ValidateRequest
// stores the bound request body.
const ValidatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON body into a fresh instance of the given
// prototype's type and runs struct validation on it. On failure the request
// is aborted with a 400 carrying field-level details; on success handlers
// can read the bound value from the context via ValidatedBodyKey.
func ValidateRequest(prototype interface{}) gin.HandlerFunc {
	bodyType := reflect.TypeOf(prototype)
	if bodyType.Kind() == reflect.Ptr {
		bodyType = bodyType.Elem()
	}

	return func(c *gin.Context) {
		// A new instance per request so concurrent requests never share state.
		body := reflect.New(bodyType).Interface()

		if err := c.ShouldBindJSON(body); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(err.Error())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			c.Abort()
			return
		}

		c.Set(ValidatedBodyKey, body)
		c.Next()
	}
}
