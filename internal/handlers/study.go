package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nnsriram27/physpropprior-study/internal/services"
)

// StudyHandler is the organizer-facing view over sessions and results.
type StudyHandler struct {
	results *services.ResultsService
}

func NewStudyHandler(results *services.ResultsService) *StudyHandler {
	return &StudyHandler{results: results}
}

// ListSessions godoc
// @Summary      List participant sessions
// @Description  Every durable session record with its progress counters
// @Tags         study
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.SessionOverview
// @Router       /api/v1/study/sessions [get]
func (h *StudyHandler) ListSessions(c *gin.Context) {
	sessions, err := h.results.Sessions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// ListSubmissions godoc
// @Summary      List collected submissions
// @Tags         study
// @Produce      json
// @Security     BearerAuth
// @Param        autosaves query bool false "Include autosave snapshots"
// @Success      200 {array} models.StoredSubmission
// @Router       /api/v1/study/submissions [get]
func (h *StudyHandler) ListSubmissions(c *gin.Context) {
	includeAutosaves, _ := strconv.ParseBool(c.DefaultQuery("autosaves", "false"))

	subs, err := h.results.ListSubmissions(includeAutosaves)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Summary godoc
// @Summary      Aggregate study metrics
// @Description  Per-field success rates and the axis/method/attribute table over completed submissions
// @Tags         study
// @Produce      json
// @Security     BearerAuth
// @Param        download query bool false "Return as attachment"
// @Success      200 {object} services.Summary
// @Router       /api/v1/study/summary [get]
func (h *StudyHandler) Summary(c *gin.Context) {
	summary, err := h.results.Summarize()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if download, _ := strconv.ParseBool(c.Query("download")); download {
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", services.ExportFilename("study_summary")))
		c.IndentedJSON(http.StatusOK, summary)
		return
	}
	c.JSON(http.StatusOK, summary)
}
