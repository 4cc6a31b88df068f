package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozrabal/mentor-api-sub000/internal/services"
)

type QuestionHandler struct {
	bank *services.QuestionBank
}

func NewQuestionHandler(bank *services.QuestionBank) *QuestionHandler {
	return &QuestionHandler{bank: bank}
}

// Create godoc
// @Summary      Add a question to the bank
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.QuestionInput true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var input services.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.bank.Add(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// List godoc
// @Summary      List bank questions
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        category query string false "Filter by competency category"
// @Param        type query string false "Filter by question type"
// @Success      200 {array} Question
// @Router       /api/v1/questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.bank.List(c.Request.Context(), c.Query("category"), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}
