package formsapi

import (
	"errors"
	"net/http"

	"studio-site/internal/forms"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	submitter forms.Submitter
	tracker   forms.Tracker
	log       *zap.Logger
}

// NewHandler accepts a nil tracker; a nil submitter behaves like forms.NopSubmitter.
func NewHandler(submitter forms.Submitter, tracker forms.Tracker, log *zap.Logger) *Handler {
	if submitter == nil {
		submitter = forms.NopSubmitter{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{submitter: submitter, tracker: tracker, log: log}
}

// POST /api/forms/:type
func (h *Handler) Submit(c *gin.Context) {
	formType := c.Param("type")
	if !forms.KnownType(formType) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Unknown form type"})
		return
	}

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Malformed JSON"})
		return
	}

	if err := forms.Validate(formType, data); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Validation failed", "fields": fieldErrs})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	submissionID := uuid.NewString()
	result, err := h.submitter.Submit(c.Request.Context(), formType, data)
	if err != nil {
		h.log.Error("form submission failed",
			zap.String("form_type", formType),
			zap.String("submission_id", submissionID),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.log.Info("form submitted", zap.String("form_type", formType), zap.String("submission_id", submissionID))
	c.JSON(http.StatusOK, gin.H{"success": true, "id": submissionID, "data": result})
}

type trackRequest struct {
	FormID    string `json:"formId" binding:"required"`
	FieldName string `json:"fieldName"`
	Action    string `json:"action"`
}

// POST /api/forms/:type/events
//
// Without a fieldName the event is a form view, otherwise a field interaction.
func (h *Handler) Track(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event"})
		return
	}

	if req.FieldName == "" {
		forms.Track(h.tracker, forms.EventFormView, map[string]any{
			"formId":   req.FormID,
			"formType": c.Param("type"),
		})
	} else {
		forms.Track(h.tracker, forms.EventFieldInteraction, map[string]any{
			"formId":    req.FormID,
			"formType":  c.Param("type"),
			"fieldName": req.FieldName,
			"action":    req.Action,
		})
	}
	c.Status(http.StatusNoContent)
}
