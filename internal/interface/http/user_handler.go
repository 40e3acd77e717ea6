package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/pkg/helpers"
	"github.com/streamhive/backend/pkg/response"
)

type UserHandler struct {
	Auth    *application.AuthService
	Users   *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewUserHandler(auth *application.AuthService, users *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Auth: auth, Users: users, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// Register creates an account from a multipart form: text fields plus an
// avatar file (required) and a cover image (optional).
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required,username"`
		Email    string `form:"email" binding:"required,email"`
		FullName string `form:"fullName" binding:"required"`
		Password string `form:"password" binding:"required,pwd"`
	}
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	in := application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}

	avatarFH, err := c.FormFile("avatar")
	if err != nil {
		resp := response.Error(c, http.StatusBadRequest, "avatar file is required", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}
	avatar, closeAvatar, err := openUpload(avatarFH)
	if err != nil {
		resp := response.Error(c, http.StatusBadRequest, "failed to read avatar file", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}
	defer closeAvatar()
	in.Avatar = avatar

	if coverFH, err := c.FormFile("coverImage"); err == nil {
		cover, closeCover, err := openUpload(coverFH)
		if err != nil {
			resp := response.Error(c, http.StatusBadRequest, "failed to read cover image file", nil)
			c.JSON(resp.StatusCode, resp)
			return
		}
		defer closeCover()
		in.Cover = cover
	}

	u, err := h.Auth.Register(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u.Public(), "user registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Username == "" && req.Email == "" {
		resp := response.Error(c, http.StatusBadRequest, "username or email is required", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}

	u, pair, err := h.Auth.Login(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"user":         u.Public(),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "user logged in successfully")
}

// Refresh rotates the refresh token taken from the cookie or, failing
// that, the request body.
func (h *UserHandler) Refresh(c *gin.Context) {
	refresh, _ := c.Cookie(helpers.RefreshTokenCookie)
	if refresh == "" {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.ShouldBindJSON(&req)
		refresh = req.RefreshToken
	}
	if refresh == "" {
		resp := response.Error(c, http.StatusUnauthorized, "missing refresh token", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}

	pair, err := h.Auth.RotateRefresh(c.Request.Context(), refresh)
	if err != nil {
		fail(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "access token refreshed")
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context(), c.GetString("userID")); err != nil {
		fail(c, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "user logged out successfully")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Auth.ChangePassword(c.Request.Context(), c.GetString("userID"), req.OldPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password changed successfully")
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	u, err := h.Users.GetByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.Users.UpdateAccount(c.Request.Context(), c.GetString("userID"), req.FullName, req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.Users.UpdateAvatar, "avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.Users.UpdateCoverImage, "cover image updated successfully")
}

func (h *UserHandler) updateImage(c *gin.Context, field string, update func(ctx context.Context, userID string, file *application.Upload) (*entity.User, error), msg string) {
	fh, err := c.FormFile(field)
	if err != nil {
		resp := response.Error(c, http.StatusBadRequest, field+" file is required", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}
	up, closeUp, err := openUpload(fh)
	if err != nil {
		resp := response.Error(c, http.StatusBadRequest, "failed to read "+field+" file", nil)
		c.JSON(resp.StatusCode, resp)
		return
	}
	defer closeUp()

	u, err := update(c.Request.Context(), c.GetString("userID"), up)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), msg)
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	p, err := h.Users.ChannelProfile(c.Request.Context(), c.Param("username"), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "channel profile fetched successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	history, err := h.Users.WatchHistory(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, history, "watch history fetched successfully")
}

func (h *UserHandler) AddToWatchHistory(c *gin.Context) {
	if err := h.Users.AddToWatchHistory(c.Request.Context(), c.GetString("userID"), c.Param("videoId")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "video added to watch history")
}

func (h *UserHandler) ClearWatchHistory(c *gin.Context) {
	if err := h.Users.ClearWatchHistory(c.Request.Context(), c.GetString("userID")); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "watch history cleared")
}
