package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozrabal/mentor-api-sub000/internal/services"
	"github.com/ozrabal/mentor-api-sub000/internal/ws"
)

type InterviewHandler struct {
	interviews *services.InterviewService
	hub        *ws.Hub
}

func NewInterviewHandler(interviews *services.InterviewService, hub *ws.Hub) *InterviewHandler {
	return &InterviewHandler{interviews: interviews, hub: hub}
}

type StartInterviewRequest struct {
	JobProfileID  uint   `json:"job_profile_id" binding:"required" example:"1"`
	InterviewType string `json:"interview_type" binding:"omitempty,oneof=behavioral technical mixed" example:"mixed"`
}

type SubmitAnswerRequest struct {
	QuestionID      string `json:"question_id" binding:"required" example:"7f9c35c4-1a37-44c5-bb08-6d9f78c7f76a"`
	AnswerText      string `json:"answer_text" example:"In my previous role I faced..."`
	DurationSeconds int    `json:"duration_seconds" binding:"min=0" example:"95"`
}

type CompleteInterviewRequest struct {
	EndedEarly bool `json:"ended_early" example:"false"`
}

// Start godoc
// @Summary      Start an interview
// @Description  Open a new interview session against a job profile and get the first question
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body StartInterviewRequest true "Interview settings"
// @Success      201 {object} services.StartResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/interviews [post]
func (h *InterviewHandler) Start(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.interviews.Start(c.Request.Context(), userID, req.JobProfileID, req.InterviewType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// SubmitAnswer godoc
// @Summary      Submit an answer
// @Description  Score the answer to the current question, get feedback and the next question
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        request body SubmitAnswerRequest true "Answer"
// @Success      200 {object} services.AnswerResult
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/interviews/{id}/answers [post]
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID := c.Param("id")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.interviews.SubmitAnswer(c.Request.Context(), sessionID, userID, req.QuestionID, req.AnswerText, req.DurationSeconds)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.WSMessage{Type: "answer_scored", Data: result})
	if result.NextQuestion != nil {
		h.hub.Broadcast(sessionID, ws.WSMessage{Type: "question", Data: result.NextQuestion})
	}

	c.JSON(http.StatusOK, result)
}

// Complete godoc
// @Summary      Complete an interview
// @Description  Close the session and produce the final performance report
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        request body CompleteInterviewRequest false "Completion flags"
// @Success      200 {object} services.CompletionReport
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/interviews/{id}/complete [post]
func (h *InterviewHandler) Complete(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID := c.Param("id")

	var req CompleteInterviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	report, err := h.interviews.Complete(c.Request.Context(), sessionID, userID, req.EndedEarly)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.WSMessage{Type: "completed", Data: report})

	c.JSON(http.StatusOK, report)
}

// Cancel godoc
// @Summary      Cancel an interview
// @Description  Abandon an in-progress session; no report is produced
// @Tags         interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/interviews/{id}/cancel [post]
func (h *InterviewHandler) Cancel(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID := c.Param("id")

	if err := h.interviews.Cancel(c.Request.Context(), sessionID, userID); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.WSMessage{Type: "cancelled", Data: nil})

	c.JSON(http.StatusOK, MessageResponse{Message: "interview cancelled"})
}

// Get godoc
// @Summary      Get session state
// @Description  Current state of an interview session including the open question
// @Tags         interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/interviews/{id} [get]
func (h *InterviewHandler) Get(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID := c.Param("id")

	state, err := h.interviews.Get(c.Request.Context(), sessionID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// List godoc
// @Summary      List interviews
// @Description  All interview sessions of the authenticated user
// @Tags         interviews
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.SessionSummary
// @Router       /api/v1/interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	userID := c.GetUint("user_id")

	summaries, err := h.interviews.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetReport godoc
// @Summary      Get the closing report
// @Description  Stored performance report of a completed session
// @Tags         interviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} services.CompletionReport
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/interviews/{id}/report [get]
func (h *InterviewHandler) GetReport(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID := c.Param("id")

	report, err := h.interviews.GetReport(c.Request.Context(), sessionID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
