package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

type tokenReq struct {
	UserID string `json:"user_id" binding:"required,max=64"`
	Email  string `json:"email" binding:"omitempty,email"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// issueToken signs a token for any caller-chosen identity. Development only.
// @Summary Issue development token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body tokenReq true "Identity"
// @Success 200 {object} tokenResp
// @Router /api/v1/auth/token [post]
func (srv HTTPServer) issueToken(c *gin.Context) {
	ctx := c.Request.Context()

	var req tokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		srv.l.Warnf(ctx, "httpserver.issueToken: invalid request: %v", err)
		response.Error(c, errors.New("user_id is required"))
		return
	}

	token, err := srv.jwtManager.CreateToken(scope.Scope{UserID: req.UserID, Email: req.Email})
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.issueToken: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, tokenResp{AccessToken: token, TokenType: "Bearer"})
}
