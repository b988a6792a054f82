package api

import (
	"net/http"

	reqdto "autofin/internal/handler/dto/request"
	resdto "autofin/internal/handler/dto/response"
	"autofin/internal/handler/httperr"
	"autofin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserCommands
}

func NewUserHandler(userCommands commands.UserCommands) *UserHandler {
	return &UserHandler{userCommands: userCommands}
}

// @Summary Log in or register a user
// @Description Returns the stored profile for a known user. Unknown ids are registered with default search parameters and a credit score derived from the id's last three digits.
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	u, err := h.userCommands.Login(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}
