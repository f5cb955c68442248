package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nnsriram27/physpropprior-study/internal/models"
	"github.com/nnsriram27/physpropprior-study/internal/services"
)

// CollectHandler receives submission payloads. Pointing RESPONSE_ENDPOINT
// at this route makes the server its own collector.
type CollectHandler struct {
	results *services.ResultsService
}

func NewCollectHandler(results *services.ResultsService) *CollectHandler {
	return &CollectHandler{results: results}
}

// Collect godoc
// @Summary      Accept a submission payload
// @Description  Stores autosave snapshots (overwriting the prior snapshot per participant) and final submissions
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/responses [post]
func (h *CollectHandler) Collect(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read body"})
		return
	}

	var payload models.AutosavePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	sub, err := h.results.Record(&payload, body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "submission stored", "id": sub.ID})
}
