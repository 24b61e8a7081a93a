package v1

import (
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directoryUC domain.DirectoryUsecase
}

func NewDirectoryHandler(recruiter *gin.RouterGroup, directoryUC domain.DirectoryUsecase) {
	handler := &DirectoryHandler{directoryUC: directoryUC}

	recruiter.GET("/candidates", handler.ListCandidates)
	recruiter.GET("/recruiters", handler.ListRecruiters)
}

// ListCandidates godoc
// @Summary      List Candidates
// @Description  Every candidate with their videos and answers nested
// @Tags         directory
// @Produce      json
// @Success      200  {array}   domain.CandidateDetail
// @Failure      500  {object}  response.MessageResponse
// @Security     BearerAuth
// @Router       /candidates [get]
func (h *DirectoryHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.directoryUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidates)
}

// ListRecruiters godoc
// @Summary      List Recruiters
// @Tags         directory
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  response.MessageResponse
// @Security     BearerAuth
// @Router       /recruiters [get]
func (h *DirectoryHandler) ListRecruiters(c *gin.Context) {
	recruiters, err := h.directoryUC.ListRecruiters(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, recruiters)
}
