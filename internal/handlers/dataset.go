package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nnsriram27/physpropprior-study/internal/dataset"
)

type DatasetHandler struct {
	loader   dataset.Loader
	manifest func() []string
}

func NewDatasetHandler(loader dataset.Loader, manifest func() []string) *DatasetHandler {
	return &DatasetHandler{loader: loader, manifest: manifest}
}

// GetDataset godoc
// @Summary      Fetch a question set
// @Tags         datasets
// @Produce      json
// @Param        name path string true "Question set name (may contain a packs/ prefix)"
// @Success      200 {array} models.Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/datasets/{name} [get]
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	// The wildcard param keeps its leading slash; pack names like
	// packs/user_01 arrive as /packs/user_01.
	name := strings.TrimPrefix(c.Param("name"), "/")
	questions, err := h.loader.Load(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: dataset.ErrLoadFailure.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetManifest godoc
// @Summary      Fetch the pack manifest
// @Description  List of assignable pack names; empty when no manifest is configured
// @Tags         datasets
// @Produce      json
// @Success      200 {object} map[string][]string
// @Router       /api/v1/packs/manifest [get]
func (h *DatasetHandler) GetManifest(c *gin.Context) {
	packNames := h.manifest()
	if packNames == nil {
		packNames = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"packs": packNames})
}
