package handler

import (
	"errors"
	"net/http"

	"github.com/emzola/scribe/data/dto"
	"github.com/emzola/scribe/service"
)

// CreateAuthenticationToken godoc
// @Summary Log in
// @Description This endpoint checks a user's credentials and returns an authentication token
// @Tags auth
// @Accept  json
// @Produce json
// @Param body body dto.CreateAuthenticationTokenRequestBody true "JSON payload required to log in"
// @Success 200 {object} dto.AuthenticationResponse
// @Failure 400
// @Failure 401
// @Failure 422
// @Failure 500
// @Router /v1/auth/login [post]
func (h *Handler) createAuthenticationTokenHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateAuthenticationTokenRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if errs := h.validateRequest(requestBody); errs != nil {
		h.failedValidationResponse(w, r, errs)
		return
	}
	token, user, err := h.service.CreateAuthenticationToken(r.Context(), requestBody.Email, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.serviceValidationResponse(w, r, err)
		case errors.Is(err, service.ErrInvalidCredentials):
			h.invalidCredentialsResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: dto.AuthenticationResponse{Token: token, User: user}}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
