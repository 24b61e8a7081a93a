package v1

import (
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/register", handler.Register)
	public.POST("/login", handler.Login)
}

// Register godoc
// @Summary      User Registration
// @Description  Register a candidate or recruiter. New accounts start as "pending".
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterInput  true  "Registration Details"
// @Success      201    {object}  domain.User
// @Failure      400    {object}  response.MessageResponse
// @Failure      409    {object}  response.MessageResponse
// @Failure      500    {object}  response.MessageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, user)
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password. Returns the user and a session token valid for 12 hours.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginInput  true  "Login Credentials"
// @Success      200    {object}  domain.LoginResult
// @Failure      401    {object}  response.MessageResponse
// @Failure      500    {object}  response.MessageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}
