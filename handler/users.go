package handler

import (
	"errors"
	"net/http"

	"github.com/emzola/scribe/data/dto"
	"github.com/emzola/scribe/service"
)

// RegisterUser godoc
// @Summary Register a new user
// @Description This endpoint registers a new user and returns an authentication token
// @Tags auth
// @Accept  json
// @Produce json
// @Param body body dto.RegisterUserRequestBody true "JSON payload required to register a user"
// @Success 201 {object} dto.AuthenticationResponse
// @Failure 400
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/auth/signup [post]
func (h *Handler) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.RegisterUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if errs := h.validateRequest(requestBody); errs != nil {
		h.failedValidationResponse(w, r, errs)
		return
	}
	token, user, err := h.service.RegisterUser(r.Context(), requestBody.Name, requestBody.Email, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.serviceValidationResponse(w, r, err)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.duplicateEmailResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusCreated, envelope{Success: true, Data: dto.AuthenticationResponse{Token: token, User: user}}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowUser godoc
// @Summary Show the authenticated user
// @Tags users
// @Produce json
// @Param token header string true "Bearer token"
// @Success 200 {object} data.User
// @Failure 401
// @Failure 500
// @Router /v1/users/me [get]
func (h *Handler) showUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.ShowUser(r.Context(), h.contextGetUser(r).ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
