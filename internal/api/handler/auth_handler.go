package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwell-social/inkwell/pkg/response"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3,max=64"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.accounts.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, signed, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	// Cookie keeps browser flows working; API clients use the bearer token.
	c.SetCookie("token", signed, 0, "/", "", false, true)
	response.Success(c, gin.H{"token": signed, "user": user})
}
