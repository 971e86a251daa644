package response

import (
	"errors"
	"net/http"

	"patidestek/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Response is the unified JSON envelope. The HTTP status code is the error
// contract; Message is a human-readable explanation.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "OK",
		Data:    data,
	})
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "Created",
		Data:    data,
	})
}

// Error writes an error response with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code:    status,
		Message: message,
	})
}

// Abort writes an error response and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	Error(c, status, message)
	c.Abort()
}

// BindError reports a request-binding failure as a 400, flattening
// validator.ValidationErrors into a readable message.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		Error(c, http.StatusBadRequest, "validation failed on field '"+f.Field()+"' ("+f.Tag()+")")
		return
	}
	Error(c, http.StatusBadRequest, err.Error())
}

// HandleError maps a service error onto the HTTP status taxonomy.
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		Error(c, http.StatusConflict, err.Error())
	default:
		Error(c, http.StatusInternalServerError, "internal server error")
	}
}
