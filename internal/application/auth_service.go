package application

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/streamhive/backend/internal/domain/entity"
	"github.com/streamhive/backend/internal/domain/repository"
	"github.com/streamhive/backend/internal/media"
	"github.com/streamhive/backend/pkg/apperr"
	"github.com/streamhive/backend/pkg/helpers"
	"github.com/streamhive/backend/pkg/mailer"
)

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// AuthService owns the credential and token lifecycle: registration,
// login, access verification, refresh rotation and logout.
type AuthService struct {
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
	Media   *media.Manager
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, m *media.Manager, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Media: m, Pub: pub, Logger: logger, AppName: appName}
}

// Upload is one multipart file handed down from the HTTP layer.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Avatar   *Upload
	Cover    *Upload
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Avatar == nil {
		return nil, apperr.Validation("avatar file is required")
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Upstream("failed to hash password", err)
	}

	avatarURL, err := s.Media.AttachNew(ctx, media.KindAvatar, in.Username, in.Avatar.Filename, in.Avatar.ContentType, in.Avatar.Reader)
	if err != nil {
		return nil, apperr.Upstream("failed to upload avatar", err)
	}
	coverURL := ""
	if in.Cover != nil {
		coverURL, err = s.Media.AttachNew(ctx, media.KindCover, in.Username, in.Cover.Filename, in.Cover.ContentType, in.Cover.Reader)
		if err != nil {
			return nil, apperr.Upstream("failed to upload cover image", err)
		}
	}

	u := &entity.User{
		Username:      in.Username,
		Email:         in.Email,
		FullName:      in.FullName,
		AvatarURL:     avatarURL,
		CoverImageURL: coverURL,
		Password:      hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("user with email or username already exists")
		}
		return nil, apperr.Upstream("failed to register user", err)
	}

	s.sendWelcome(ctx, u)
	return u, nil
}

func (s *AuthService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]any{"AppName": s.AppName, "FullName": u.FullName, "Username": u.Username},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}

// Login checks credentials by username or email and issues a token pair.
func (s *AuthService) Login(ctx context.Context, username, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Users.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, TokenPair{}, apperr.NotFound("user does not exist")
		}
		return nil, TokenPair{}, apperr.Upstream("failed to load user", err)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, apperr.Unauthorized("invalid user credentials")
	}
	pair, err := s.IssueTokenPair(ctx, u.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// IssueTokenPair signs a new access/refresh pair and persists the refresh
// token as the user's single current value, invalidating any prior one.
func (s *AuthService) IssueTokenPair(ctx context.Context, userID string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(userID)
	if err != nil {
		return TokenPair{}, apperr.Upstream("failed to generate access token", err)
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, apperr.Upstream("failed to generate refresh token", err)
	}
	if err := s.Users.SetRefreshToken(ctx, userID, refresh); err != nil {
		return TokenPair{}, apperr.Upstream("failed to persist refresh token", err)
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// VerifyAccess validates an access token and confirms the user still
// exists. Every failure mode collapses to an authorization error.
func (s *AuthService) VerifyAccess(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.ParseAccessToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("invalid access token")
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("invalid access token")
	}
	return u, nil
}

// RotateRefresh exchanges a refresh token for a new pair. The presented
// token must be cryptographically valid and byte-equal to the stored
// current value; a stale token from before a rotation is rejected.
func (s *AuthService) RotateRefresh(ctx context.Context, presented string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(presented)
	if err != nil {
		return TokenPair{}, apperr.Unauthorized("invalid refresh token")
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, apperr.Unauthorized("invalid refresh token")
	}
	if u.RefreshToken == "" || u.RefreshToken != presented {
		return TokenPair{}, apperr.Unauthorized("refresh token is expired or used")
	}
	return s.IssueTokenPair(ctx, u.ID)
}

// Logout clears the stored refresh token, ending the session everywhere.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.Users.SetRefreshToken(ctx, userID, ""); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return apperr.Upstream("failed to log out", err)
	}
	return nil
}

// ChangePassword verifies the old password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Upstream("failed to load user", err)
	}
	if !helpers.CompareHashAndPassword(u.Password, oldPassword) {
		return apperr.Unauthorized("invalid old password")
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return apperr.Upstream("failed to hash password", err)
	}
	if err := s.Users.UpdatePassword(ctx, userID, hash); err != nil {
		return apperr.Upstream("failed to update password", err)
	}
	return nil
}
