package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/scribe/data/dto"
	"github.com/emzola/scribe/service"
)

// ListComments godoc
// @Summary List the comments of a post
// @Description This endpoint lists the top-level comments of a post, newest first
// @Tags comments
// @Produce json
// @Param postId path int true "ID of post"
// @Success 200 {array} data.Comment
// @Failure 404
// @Failure 500
// @Router /v1/posts/{postId}/comments [get]
func (h *Handler) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	h.writeComments(w, r, postID)
}

// ListCommentsByQuery godoc
// @Summary List the comments of a post
// @Description This endpoint lists the top-level comments of the post named by the postId query parameter
// @Tags comments
// @Produce json
// @Param postId query int true "ID of post"
// @Success 200 {array} data.Comment
// @Failure 422
// @Failure 500
// @Router /v1/comments [get]
func (h *Handler) listCommentsByQueryHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readInt64Query(r, "postId")
	if err != nil {
		h.failedValidationResponse(w, r, map[string]string{"postId": err.Error()})
		return
	}
	h.writeComments(w, r, postID)
}

func (h *Handler) writeComments(w http.ResponseWriter, r *http.Request, postID int64) {
	comments, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: comments}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateComment godoc
// @Summary Create a new comment
// @Description This endpoint creates a comment on a post, optionally as a reply to another comment
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param postId path int true "ID of post for comment"
// @Param body body dto.CreateCommentRequestBody true "JSON payload required to create a comment"
// @Success 201 {object} data.Comment
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/posts/{postId}/comments [post]
func (h *Handler) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateCommentRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if errs := h.validateRequest(requestBody); errs != nil {
		h.failedValidationResponse(w, r, errs)
		return
	}
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	comment, err := h.service.CreateComment(r.Context(), user.ID, postID, requestBody.Content, requestBody.ParentComment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.serviceValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/posts/%d/comments/%d", postID, comment.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{Success: true, Data: comment}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowComment godoc
// @Summary Get a comment
// @Description This endpoint retrieves a single comment of a post with its author
// @Tags comments
// @Produce json
// @Param postId path int true "ID of post"
// @Param commentId path int true "ID of comment to get"
// @Success 200 {object} data.Comment
// @Failure 404
// @Failure 500
// @Router /v1/posts/{postId}/comments/{commentId} [get]
func (h *Handler) showCommentHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	comment, err := h.service.GetComment(r.Context(), commentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	if comment.PostID != postID {
		h.notFoundResponse(w, r)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: comment}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateComment godoc
// @Summary Update the content of a comment
// @Description This endpoint replaces the content of a comment owned by the caller and marks it as edited
// @Tags comments
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param postId path int true "ID of post"
// @Param commentId path int true "ID of comment to update"
// @Param body body dto.UpdateCommentRequestBody true "JSON payload required to update a comment"
// @Success 200 {object} data.Comment
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/posts/{postId}/comments/{commentId} [put]
func (h *Handler) updateCommentHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateCommentRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if errs := h.validateRequest(requestBody); errs != nil {
		h.failedValidationResponse(w, r, errs)
		return
	}
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	comment, err := h.service.UpdateComment(r.Context(), user.ID, commentID, requestBody.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.serviceValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: comment}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description This endpoint deletes a comment owned by the caller together with its direct replies
// @Tags comments
// @Produce json
// @Param token header string true "Bearer token"
// @Param postId path int true "ID of post"
// @Param commentId path int true "ID of comment to delete"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/posts/{postId}/comments/{commentId} [delete]
func (h *Handler) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := h.readIDParam(r, "commentId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	err = h.service.DeleteComment(r.Context(), user.ID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Message: "comment successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
