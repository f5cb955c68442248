package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nnsriram27/physpropprior-study/internal/services"
)

type ParticipantHandler struct {
	sessions *services.SessionService
}

func NewParticipantHandler(sessions *services.SessionService) *ParticipantHandler {
	return &ParticipantHandler{sessions: sessions}
}

type StartSessionRequest struct {
	Name         string `json:"name" binding:"required" example:"alice"`
	QuestionSet  string `json:"question_set,omitempty" example:"packs/user_01"`
	AssignmentID string `json:"assignment_id,omitempty"`
	WorkerID     string `json:"worker_id,omitempty"`
	HitID        string `json:"hit_id,omitempty"`
	TurkSubmitTo string `json:"turk_submit_to,omitempty"`
}

type AnswerRequest struct {
	Choice string `json:"choice" binding:"required" example:"A"`
}

// StartSession godoc
// @Summary      Start or resume a survey session
// @Description  Resumes the session stored under the normalized name, or creates one (assigning a question pack when none is given)
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body StartSessionRequest true "Participant identity and optional startup parameters"
// @Success      200 {object} services.SessionState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/start [post]
func (h *ParticipantHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: services.ErrNameRequired.Error()})
		return
	}

	state, err := h.sessions.Start(c.Request.Context(), services.StartParams{
		Name:         req.Name,
		QuestionSet:  req.QuestionSet,
		AssignmentID: req.AssignmentID,
		WorkerID:     req.WorkerID,
		HitID:        req.HitID,
		TurkSubmitTo: req.TurkSubmitTo,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetState godoc
// @Summary      Get session state
// @Description  Current question, progress counters, and navigation gating for a participant
// @Tags         sessions
// @Produce      json
// @Param        name path string true "Participant name"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{name} [get]
func (h *ParticipantHandler) GetState(c *gin.Context) {
	state, err := h.sessions.State(c.Param("name"))
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Answer godoc
// @Summary      Answer the current question
// @Description  Records the choice for the active question; a later choice overwrites an earlier one
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        name path string true "Participant name"
// @Param        request body AnswerRequest true "Choice (A or B)"
// @Success      200 {object} services.SessionState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{name}/answer [post]
func (h *ParticipantHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessions.Answer(c.Param("name"), req.Choice)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Skip godoc
// @Summary      Skip the current question
// @Tags         sessions
// @Produce      json
// @Param        name path string true "Participant name"
// @Success      200 {object} services.SessionState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{name}/skip [post]
func (h *ParticipantHandler) Skip(c *gin.Context) {
	state, err := h.sessions.Skip(c.Param("name"))
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Next godoc
// @Summary      Advance to the next question
// @Description  Only permitted once the current question is answered or skipped
// @Tags         sessions
// @Produce      json
// @Param        name path string true "Participant name"
// @Success      200 {object} services.SessionState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{name}/next [post]
func (h *ParticipantHandler) Next(c *gin.Context) {
	state, err := h.sessions.Next(c.Param("name"))
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Back godoc
// @Summary      Return to the previous question
// @Tags         sessions
// @Produce      json
// @Param        name path string true "Participant name"
// @Success      200 {object} services.SessionState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{name}/back [post]
func (h *ParticipantHandler) Back(c *gin.Context) {
	state, err := h.sessions.Back(c.Param("name"))
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

func statusFor(err error) int {
	if errors.Is(err, services.ErrNoSession) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
