package helper

import (
	"errors"
	"net/http"

	"blog-api/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

// HTTPHelper writes the response envelope shared by every handler:
// {"success": bool, ...}. Typed service errors are mapped to status codes
// here so handlers never switch on error strings.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// SendSuccess ...
// 200 with a data payload.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// SendCreated ...
// 201 with a data payload.
func (u *HTTPHelper) SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// SendList ...
// 200 with a count alongside the collection.
func (u *HTTPHelper) SendList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// SendError ...
// Map a typed service error to its transport status.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

// SendBadRequest ...
// 400 for malformed request bodies and parameters.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

// SendUnauthorizedError ...
// 401 for missing or failed authentication.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case errors.As(err, &models.ErrorValidation{}):
		return http.StatusBadRequest
	case errors.As(err, &models.ErrorUnauthenticated{}):
		return http.StatusUnauthorized
	case errors.As(err, &models.ErrorForbidden{}):
		return http.StatusForbidden
	case errors.As(err, &models.ErrorOwnership{}):
		return http.StatusForbidden
	case errors.As(err, &models.ErrorNotFound{}):
		return http.StatusNotFound
	case errors.As(err, &models.ErrorConflict{}):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendValidationError ...
// Translate validator errors into a per-field message map.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": errorResponse,
	})
}
