package v1

import (
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(recruiter *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := recruiter.Group("/users")
	{
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}

// Update godoc
// @Summary      Update User
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "User ID"
// @Param        user  body      domain.UpdateUserInput  true  "Username and email"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.MessageResponse
// @Failure      404  {object}  response.MessageResponse
// @Failure      409  {object}  response.MessageResponse
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req domain.UpdateUserInput
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userUC.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "User updated")
}

// Delete godoc
// @Summary      Delete User
// @Description  Deletes the user with their videos and answers
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.MessageResponse
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted")
}
