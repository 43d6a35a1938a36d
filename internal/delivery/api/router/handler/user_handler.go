// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/delivery/api/session"
	"vidtube/internal/delivery/api/upload"
	"vidtube/internal/domain/entity"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	SessionUC usecase.SessionUsecase
	Transport *session.Transport
	Intake    *upload.Intake
	Logger    *slog.Logger
}

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	userUC    usecase.UserUsecase
	sessionUC usecase.SessionUsecase
	transport *session.Transport
	intake    *upload.Intake
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		sessionUC: params.SessionUC,
		transport: params.Transport,
		intake:    params.Intake,
		logger:    params.Logger,
	}
}

// RegisterRequest is the multipart form of a registration.
type RegisterRequest struct {
	FullName string `form:"fullName" json:"fullName" validate:"required,notblank"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Username string `form:"username" json:"username" validate:"required,notblank"`
	Password string `form:"password" json:"password" validate:"required,notblank"`
}

// LoginRequest accepts either username or email.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RefreshRequest carries the refresh token for clients that do not keep cookies.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

// ChangePasswordRequest represents the request body for changing the password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,notblank"`
}

// UpdateAccountRequest represents the request body for updating account details
type UpdateAccountRequest struct {
	FullName string `json:"fullName" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
}

// SessionResponse is returned by login and refresh.
type SessionResponse struct {
	User         *UserView `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// Register handles the multipart registration request.
func (h *UserHandler) Register(c echo.Context) error {
	files, err := h.intake.Claim(c, usecase.FieldAvatar, usecase.FieldCoverImage)
	defer files.Release()
	if err != nil {
		return errors.WithStack(err)
	}

	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
		Avatar:     files.Path(usecase.FieldAvatar),
		CoverImage: files.Path(usecase.FieldCoverImage),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(user), "User registered successfully")
}

// Login handles the login request and sets the session cookies.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.transport.Bind(c, output.Tokens)

	return response.Success(c, http.StatusOK, newSessionResponse(output), "Login successful")
}

// RefreshToken rotates the token pair. The cookie wins over the body field.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		req = RefreshRequest{}
	}

	output, err := h.sessionUC.Refresh(c.Request().Context(), h.transport.RefreshToken(c, req.RefreshToken))
	if err != nil {
		return errors.WithStack(err)
	}

	h.transport.Bind(c, output.Tokens)

	return response.Success(c, http.StatusOK, newSessionResponse(output), "Access token refreshed")
}

// Logout invalidates the stored refresh fingerprint and then clears the cookies.
// Cookies are kept when the store could not be updated so the client sees the failure.
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	h.transport.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{}, "User logged out")
}

// ChangePassword handles the password change request.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), user.ID, usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	// The refresh fingerprint is gone, so the cookies are dead weight.
	h.transport.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{}, "Password changed successfully")
}

// CurrentUser returns the authenticated user.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Current user fetched successfully")
}

// UpdateAccount handles the account details update.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.userUC.UpdateAccount(c.Request().Context(), user.ID, usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(updated), "Account details updated successfully")
}

// UpdateAvatar replaces the avatar image.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.replaceImage(c, usecase.FieldAvatar, h.userUC.UpdateAvatar, "Avatar updated successfully")
}

// UpdateCoverImage replaces the cover image.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.replaceImage(c, usecase.FieldCoverImage, h.userUC.UpdateCoverImage, "Cover image updated successfully")
}

func (h *UserHandler) replaceImage(
	c echo.Context,
	field string,
	update func(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error),
	message string,
) error {
	user, err := principal(c)
	if err != nil {
		return err
	}

	files, err := h.intake.Claim(c, field)
	defer files.Release()
	if err != nil {
		return errors.WithStack(err)
	}

	updated, err := update(c.Request().Context(), user.ID, files.Path(field))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(updated), message)
}

func newSessionResponse(output *usecase.SessionOutput) *SessionResponse {
	return &SessionResponse{
		User:         newUserView(output.User),
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}
}
