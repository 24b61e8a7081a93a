package v1

import (
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionUC domain.QuestionUsecase
}

func NewQuestionHandler(read *gin.RouterGroup, write *gin.RouterGroup, questionUC domain.QuestionUsecase) {
	handler := &QuestionHandler{questionUC: questionUC}

	read.GET("/questions", handler.List)

	write.POST("/questions", handler.Create)
	write.PUT("/questions/:id", handler.Update)
	write.DELETE("/questions/:id", handler.Delete)
}

// List godoc
// @Summary      List Questions
// @Description  All screening questions sorted ascending by order
// @Tags         questions
// @Produce      json
// @Success      200  {array}   domain.Question
// @Failure      500  {object}  response.MessageResponse
// @Router       /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, questions)
}

// Create godoc
// @Summary      Create Question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        question  body      domain.QuestionInput  true  "Question"
// @Success      201  {object}  domain.Question
// @Failure      400  {object}  response.MessageResponse
// @Failure      500  {object}  response.MessageResponse
// @Security     BearerAuth
// @Router       /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req domain.QuestionInput
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.questionUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, question)
}

// Update godoc
// @Summary      Update Question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id        path      string                true  "Question ID"
// @Param        question  body      domain.QuestionInput  true  "Question"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.MessageResponse
// @Failure      404  {object}  response.MessageResponse
// @Security     BearerAuth
// @Router       /questions/{id} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	var req domain.QuestionInput
	if !bindJSON(c, &req) {
		return
	}

	if err := h.questionUC.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Question updated")
}

// Delete godoc
// @Summary      Delete Question
// @Description  Deletes the question and every answer given to it
// @Tags         questions
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.MessageResponse
// @Security     BearerAuth
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	if err := h.questionUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Question deleted")
}
