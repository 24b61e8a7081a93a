package v1

import (
	"errors"
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const cvFormField = "cv"

type CVHandler struct {
	cvUC domain.CVUsecase
}

// NewCVHandler registers the upload route on upload, metadata lookup on read
// and public file download on files.
func NewCVHandler(read, upload, files *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	upload.POST("/cv", handler.Upload)
	read.GET("/cv/:candidateId", handler.GetByCandidate)
	files.GET("/uploads/cvs/:file", handler.Serve)
}

// Upload godoc
// @Summary      Upload CV
// @Description  Uploads a PDF CV (max 5MB) for a candidate, replacing any previous one
// @Tags         cv
// @Accept       multipart/form-data
// @Produce      json
// @Param        candidateId  formData  string  true  "Candidate ID"
// @Param        cv           formData  file    true  "PDF file"
// @Success      201  {object}  domain.CV
// @Failure      400  {object}  response.MessageResponse
// @Failure      500  {object}  response.MessageResponse
// @Router       /cv [post]
func (h *CVHandler) Upload(c *gin.Context) {
	upload := domain.CVUpload{}

	fileHeader, err := c.FormFile(cvFormField)
	switch {
	case err == nil:
	case errors.Is(err, http.ErrMissingFile):
		// usecase reports the missing file after checking candidateId
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.BadRequest("CV file must be at most 5MB"))
			return
		}
		c.Error(apperror.BadRequest("Invalid multipart form"))
		return
	}
	upload.CandidateID = c.PostForm("candidateId")

	if fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.Error(apperror.Internal(err))
			return
		}
		defer file.Close()

		upload.OriginalName = fileHeader.Filename
		upload.ContentType = fileHeader.Header.Get("Content-Type")
		upload.Size = fileHeader.Size
		upload.Content = file
	}

	cv, err := h.cvUC.Upload(c.Request.Context(), upload)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, cv)
}

// GetByCandidate godoc
// @Summary      Get Candidate CV
// @Tags         cv
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate ID"
// @Success      200  {object}  domain.CV
// @Failure      404  {object}  response.MessageResponse
// @Failure      500  {object}  response.MessageResponse
// @Router       /cv/{candidateId} [get]
func (h *CVHandler) GetByCandidate(c *gin.Context) {
	cv, err := h.cvUC.GetByCandidate(c.Request.Context(), c.Param("candidateId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, cv)
}

// Serve streams a stored CV file.
func (h *CVHandler) Serve(c *gin.Context) {
	file, err := h.cvUC.Open(c.Request.Context(), c.Param("file"))
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Body.Close()

	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, file.Body, map[string]string{
		"Content-Disposition": "inline",
		"Cache-Control":       "public, max-age=3600",
	})
}
