package handlers // Controller layer translates HTTP <-> service calls.

import (
	"errors"
	"net/http"

	"VisitorIntake/models"
	"VisitorIntake/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// MaxBodyBytes caps a submission body; a name never needs more than a few bytes.
const MaxBodyBytes = 100 << 10

// VisitorHandler serves the intake endpoint.
type VisitorHandler struct {
	svc services.VisitorService
}

// NewVisitorHandler constructs a handler with its service.
func NewVisitorHandler(svc services.VisitorService) *VisitorHandler {
	return &VisitorHandler{svc: svc}
}

// Submit handles POST /api/visitors.
// 200 {"success":true} for any accepted name, stored or not; 400 {"error":...} otherwise.
func (h *VisitorHandler) Submit(c *gin.Context) {
	var req models.VisitorRequest
	if c.ContentType() == binding.MIMEJSON { // other content types are not parsed: no name
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
		if err := c.ShouldBindJSON(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "request entity too large"})
				return
			}
			req.Name = nil // unreadable or non-object body counts as no name
		}
	}

	v := h.svc.Submit(c.Request.Context(), models.Submission{
		Name:      req.Name,
		UserAgent: c.GetHeader("User-Agent"), // "" when absent
	})
	if !v.Accepted() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: v.Reason.Message()})
		return
	}
	c.JSON(http.StatusOK, models.SubmitResponse{Success: true})
}
