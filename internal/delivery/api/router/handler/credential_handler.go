// Package handler contains the HTTP handlers of the API delivery.
package handler

import (
	"net/http"

	"herbal/internal/delivery/api/response"
	"herbal/internal/errors"
	"herbal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Response bodies of the credential endpoints.
const (
	MessageMissingCredentials = "Please provide both username and password"
	MessageUsernameTaken      = "Username already exists"
	MessageUserCreated        = "User created successfully"
	MessageUserNotFound       = "User not found"
	MessageInvalidPassword    = "Invalid password"
	MessageLoginSuccessful    = "Login successful"
)

// CredentialHandler serves /register and /login.
type CredentialHandler struct {
	uc usecase.CredentialUsecase
}

// NewCredentialHandler is the constructor for CredentialHandler, injected by Fx.
func NewCredentialHandler(uc usecase.CredentialUsecase) *CredentialHandler {
	return &CredentialHandler{uc: uc}
}

// Register handles POST /register.
func (h *CredentialHandler) Register(c echo.Context) error {
	input, ok := bindCredentials(c)
	if !ok {
		return response.Text(c, http.StatusBadRequest, MessageMissingCredentials)
	}

	outcome, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	switch outcome {
	case usecase.OutcomeInvalidInput:
		return response.Text(c, http.StatusBadRequest, MessageMissingCredentials)
	case usecase.OutcomeConflict:
		return response.Text(c, http.StatusBadRequest, MessageUsernameTaken)
	case usecase.OutcomeCreated:
		return response.Text(c, http.StatusCreated, MessageUserCreated)
	default:
		return errors.Errorf("unexpected register outcome %s", outcome)
	}
}

// Login handles POST /login. No session or token is issued.
func (h *CredentialHandler) Login(c echo.Context) error {
	input, ok := bindCredentials(c)
	if !ok {
		return response.Text(c, http.StatusBadRequest, MessageMissingCredentials)
	}

	outcome, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	switch outcome {
	case usecase.OutcomeInvalidInput:
		return response.Text(c, http.StatusBadRequest, MessageMissingCredentials)
	case usecase.OutcomeNotFound:
		return response.Text(c, http.StatusNotFound, MessageUserNotFound)
	case usecase.OutcomeUnauthorized:
		return response.Text(c, http.StatusUnauthorized, MessageInvalidPassword)
	case usecase.OutcomeAuthenticated:
		return response.Text(c, http.StatusOK, MessageLoginSuccessful)
	default:
		return errors.Errorf("unexpected login outcome %s", outcome)
	}
}

// bindCredentials decodes the JSON body. An undecodable body counts as missing fields.
func bindCredentials(c echo.Context) (*usecase.CredentialsInput, bool) {
	input := new(usecase.CredentialsInput)
	if err := (&echo.DefaultBinder{}).BindBody(c, input); err != nil {
		return nil, false
	}

	return input, true
}
