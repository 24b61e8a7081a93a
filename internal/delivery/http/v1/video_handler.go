package v1

import (
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUC domain.VideoUsecase
}

func NewVideoHandler(protected *gin.RouterGroup, videoUC domain.VideoUsecase) {
	handler := &VideoHandler{videoUC: videoUC}

	protected.POST("/videos", handler.Create)
	protected.GET("/videos/:candidateId", handler.ListByCandidate)
	protected.DELETE("/videos/:id", handler.Delete)
}

// Create godoc
// @Summary      Record Video
// @Description  Stores a reference to an externally hosted interview video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        video  body      domain.VideoInput  true  "Video"
// @Success      201  {object}  domain.Video
// @Failure      400  {object}  response.MessageResponse
// @Failure      500  {object}  response.MessageResponse
// @Router       /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req domain.VideoInput
	if !bindJSON(c, &req) {
		return
	}

	video, err := h.videoUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, video)
}

// ListByCandidate godoc
// @Summary      List Candidate Videos
// @Tags         videos
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate ID"
// @Success      200  {array}   domain.Video
// @Failure      500  {object}  response.MessageResponse
// @Router       /videos/{candidateId} [get]
func (h *VideoHandler) ListByCandidate(c *gin.Context) {
	videos, err := h.videoUC.ListByCandidate(c.Request.Context(), c.Param("candidateId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, videos)
}

// Delete godoc
// @Summary      Delete Video
// @Tags         videos
// @Produce      json
// @Param        id   path      string  true  "Video ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.MessageResponse
// @Router       /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Video deleted")
}
