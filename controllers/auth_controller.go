package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/configs"
	"github.com/phonkluver/forel-app-sub000/pkg/resp"
	"github.com/phonkluver/forel-app-sub000/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Cfg *configs.Config
}

func NewAuthController(cfg *configs.Config) *AuthController {
	return &AuthController{Cfg: cfg}
}

type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// POST /api/auth/admin
// Exchanges the shared admin secret for a 24h bearer token. This is
// the only way to obtain admin access; no per-route header checks.
func (a *AuthController) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if !a.secretMatches(req.Secret) {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken("admin", a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"expiresIn": int64(a.Cfg.JWTTTL.Seconds()),
	})
}

func (a *AuthController) secretMatches(secret string) bool {
	if a.Cfg.AdminSecretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.Cfg.AdminSecretHash), []byte(secret)) == nil
	}
	if a.Cfg.AdminSecret != "" {
		return subtle.ConstantTimeCompare([]byte(a.Cfg.AdminSecret), []byte(secret)) == 1
	}
	return false
}
