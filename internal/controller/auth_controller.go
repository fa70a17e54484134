package controller

import (
	"devita_backend/internal/service"
	"devita_backend/internal/util"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refresh_token"

type AuthController struct {
	AuthService     *service.AuthService
	CategoryService *service.CategoryService

	FrontRedirectURL string
	RefreshMaxAge    int
}

func NewAuthController(authService *service.AuthService, categoryService *service.CategoryService, frontRedirectURL string, refreshMaxAge int) *AuthController {
	return &AuthController{
		AuthService:      authService,
		CategoryService:  categoryService,
		FrontRedirectURL: frontRedirectURL,
		RefreshMaxAge:    refreshMaxAge,
	}
}

// @Summary Kakao login
// @Description Redirects the browser to the Kakao consent page
// @Tags auth
// @Success 307
// @Router /api/auth/kakao [get]
func (c *AuthController) KakaoLogin(ctx *gin.Context) {
	url, err := c.AuthService.AuthorizeURL(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// @Summary Kakao login callback
// @Description Exchanges the authorization code, provisions the user on first login, sets the refresh cookie and redirects to the front
// @Tags auth
// @Param code query string true "authorization code"
// @Param state query string true "state token"
// @Success 307
// @Router /api/auth/kakao/callback [get]
func (c *AuthController) KakaoCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	code := ctx.Query("code")
	if state == "" || code == "" {
		util.BadRequest(ctx, "missing state or code")
		return
	}

	_, pair, err := c.AuthService.HandleCallback(ctx.Request.Context(), state, code)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(refreshCookieName, pair.RefreshToken, c.RefreshMaxAge, "/", "", false, true)
	ctx.Redirect(http.StatusTemporaryRedirect,
		fmt.Sprintf("%s?accessToken=%s", c.FrontRedirectURL, pair.AccessToken))
}

// @Summary Refresh access token
// @Description Validates the refresh cookie, rotates it and returns a new access token with the user's profile and categories
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	refreshToken, err := ctx.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		util.Unauthorized(ctx)
		return
	}

	user, pair, err := c.AuthService.Refresh(ctx.Request.Context(), refreshToken)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	categories, err := c.CategoryService.ListCategories(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(refreshCookieName, pair.RefreshToken, c.RefreshMaxAge, "/", "", false, true)
	util.Success(ctx, gin.H{
		"accessToken": pair.AccessToken,
		"user": gin.H{
			"userId":          user.ID,
			"nickname":        user.Nickname,
			"email":           user.Email,
			"profileImageUrl": user.ProfileImageURL,
		},
		"categories": categories,
	})
}

// @Summary Logout
// @Description Deletes the stored refresh token and clears the cookie
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), user.UserID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.SetCookie(refreshCookieName, "", -1, "/", "", false, true)
	util.Success(ctx, gin.H{"message": "logged out"})
}
