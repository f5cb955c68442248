package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nnsriram27/physpropprior-study/internal/services"
)

type SubmissionHandler struct {
	sessions *services.SessionService
}

func NewSubmissionHandler(sessions *services.SessionService) *SubmissionHandler {
	return &SubmissionHandler{sessions: sessions}
}

// Download godoc
// @Summary      Download the responses file
// @Description  Pretty-printed submission payload as responses_<slug>.json; always available, even when remote sync fails
// @Tags         submissions
// @Produce      json
// @Param        name path string true "Participant name"
// @Success      200 {object} models.SubmissionPayload
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{name}/download [get]
func (h *SubmissionHandler) Download(c *gin.Context) {
	payload, filename, err := h.sessions.Download(c.Param("name"))
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, payload)
}

// Send godoc
// @Summary      Send responses to the configured endpoint
// @Description  Manual delivery of the current submission payload; upload failure is reported, and the download path stays available
// @Tags         submissions
// @Produce      json
// @Param        name path string true "Participant name"
// @Success      200 {object} MessageResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/sessions/{name}/send [post]
func (h *SubmissionHandler) Send(c *gin.Context) {
	if err := h.sessions.Send(c.Request.Context(), c.Param("name")); err != nil {
		status := http.StatusBadGateway
		if err == services.ErrNoSession || err == services.ErrNameRequired || err == services.ErrNoEndpoint {
			status = statusFor(err)
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "responses uploaded"})
}
