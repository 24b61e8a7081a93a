package v1

import (
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerUC domain.AnswerUsecase
}

func NewAnswerHandler(protected *gin.RouterGroup, answerUC domain.AnswerUsecase) {
	handler := &AnswerHandler{answerUC: answerUC}

	protected.POST("/answers", handler.Submit)
	protected.GET("/answers/:candidateId", handler.ListByCandidate)
	protected.DELETE("/answers/:id", handler.Delete)
}

// Submit godoc
// @Summary      Submit Answers
// @Description  Saves a batch of answers, each with a copy of the question text at submission time
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        answers  body      domain.SubmitAnswersInput  true  "Answers"
// @Success      201  {array}   domain.Answer
// @Failure      400  {object}  response.MessageResponse
// @Failure      500  {object}  response.MessageResponse
// @Router       /answers [post]
func (h *AnswerHandler) Submit(c *gin.Context) {
	var req domain.SubmitAnswersInput
	if !bindJSON(c, &req) {
		return
	}

	answers, err := h.answerUC.SubmitBatch(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, answers)
}

// ListByCandidate godoc
// @Summary      List Candidate Answers
// @Tags         answers
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate ID"
// @Success      200  {array}   domain.Answer
// @Failure      500  {object}  response.MessageResponse
// @Router       /answers/{candidateId} [get]
func (h *AnswerHandler) ListByCandidate(c *gin.Context) {
	answers, err := h.answerUC.ListByCandidate(c.Request.Context(), c.Param("candidateId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, answers)
}

// Delete godoc
// @Summary      Delete Answer
// @Tags         answers
// @Produce      json
// @Param        id   path      string  true  "Answer ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.MessageResponse
// @Router       /answers/{id} [delete]
func (h *AnswerHandler) Delete(c *gin.Context) {
	if err := h.answerUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Answer deleted")
}
