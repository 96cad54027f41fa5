package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/woundcare-api/pkg/errors"
)

// FieldRequest edits one named field.
type FieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// ToggleRequest flips one option of a multi-select field.
type ToggleRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// ConfirmRequest guards destructive actions.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// Confirmed binds an optional ConfirmRequest body and reports whether it
// confirms the action. An unconfirmed action is answered with 409.
func Confirmed(c *gin.Context, action string) bool {
	var req ConfirmRequest
	if c.Request.ContentLength != 0 && !Bind(c, &req) {
		return false
	}
	if !req.Confirm {
		_ = c.Error(apperrors.Conflict(action+" requires confirmation", nil))
		return false
	}
	return true
}

// Bind decodes the JSON body into req. On failure the error is recorded on the
// context and false is returned; the middleware chain writes the response.
func Bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(apperrors.BadRequest("invalid request body", err))
		return false
	}
	return true
}
