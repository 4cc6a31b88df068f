package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ozrabal/mentor-api-sub000/internal/services"
)

type JobProfileHandler struct {
	profiles *services.JobProfileService
}

func NewJobProfileHandler(profiles *services.JobProfileService) *JobProfileHandler {
	return &JobProfileHandler{profiles: profiles}
}

type IngestProfileRequest struct {
	Title       string `json:"title" example:"Senior Backend Engineer"`
	Description string `json:"description" binding:"required" example:"We are looking for..."`
}

// Create godoc
// @Summary      Create a job profile
// @Description  Create a job profile with explicit competencies
// @Tags         job-profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.JobProfileInput true "Profile data"
// @Success      201 {object} JobProfile
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/job-profiles [post]
func (h *JobProfileHandler) Create(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input services.JobProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.profiles.Create(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// Ingest godoc
// @Summary      Ingest a job description
// @Description  Structure a raw job description into a profile via the extraction service
// @Tags         job-profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IngestProfileRequest true "Raw description"
// @Success      201 {object} JobProfile
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/job-profiles/ingest [post]
func (h *JobProfileHandler) Ingest(c *gin.Context) {
	userID := c.GetUint("user_id")

	if !h.profiles.ExtractionAvailable() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "job extraction is not configured"})
		return
	}

	var req IngestProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.profiles.Ingest(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// Get godoc
// @Summary      Get a job profile
// @Tags         job-profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Profile ID"
// @Success      200 {object} JobProfile
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/job-profiles/{id} [get]
func (h *JobProfileHandler) Get(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
		return
	}

	profile, err := h.profiles.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if profile.UserID != userID {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "job profile belongs to another user"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary      List job profiles
// @Tags         job-profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} JobProfile
// @Router       /api/v1/job-profiles [get]
func (h *JobProfileHandler) List(c *gin.Context) {
	userID := c.GetUint("user_id")

	profiles, err := h.profiles.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}
