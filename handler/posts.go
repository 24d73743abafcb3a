package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/scribe/data/dto"
	"github.com/emzola/scribe/service"
)

// maxCoverRequestSize bounds the multipart body of a cover upload.
const maxCoverRequestSize = 6 << 20

func (h *Handler) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPosts(r.Context())
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: posts}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreatePost godoc
// @Summary Create a new post
// @Description This endpoint creates a new post from a markdown body
// @Tags posts
// @Accept  json
// @Produce json
// @Param body body dto.CreatePostRequestBody true "JSON payload required to create a post"
// @Success 201 {object} data.Post
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /v1/posts [post]
func (h *Handler) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreatePostRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if errs := h.validateRequest(requestBody); errs != nil {
		h.failedValidationResponse(w, r, errs)
		return
	}
	post, err := h.service.CreatePost(r.Context(), requestBody.Title, requestBody.Content, requestBody.Excerpt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.serviceValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/posts/%d", post.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{Success: true, Data: post}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showPostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: post}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdatePost godoc
// @Summary Update the details of a post
// @Description This endpoint updates the supplied fields of a post
// @Tags posts
// @Accept  json
// @Produce json
// @Param postId path int true "ID of post to update"
// @Param body body dto.UpdatePostRequestBody true "JSON payload required to update a post"
// @Success 200 {object} data.Post
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/posts/{postId} [put]
func (h *Handler) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdatePostRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if errs := h.validateRequest(requestBody); errs != nil {
		h.failedValidationResponse(w, r, errs)
		return
	}
	post, err := h.service.UpdatePost(r.Context(), postID, requestBody.Title, requestBody.Content, requestBody.Excerpt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.serviceValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: post}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeletePost(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Message: "post successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdatePostCover godoc
// @Summary Upload a post cover image
// @Description This endpoint uploads a jpeg or png cover image for a post
// @Tags posts
// @Accept  multipart/form-data
// @Produce json
// @Param postId path int true "ID of post"
// @Param cover formData file true "Cover image"
// @Success 200 {object} data.Post
// @Failure 400
// @Failure 404
// @Failure 413
// @Failure 415
// @Failure 500
// @Router /v1/posts/{postId}/cover [patch]
func (h *Handler) updatePostCoverHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCoverRequestSize)
	postID, err := h.readIDParam(r, "postId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = r.ParseMultipartForm(maxCoverRequestSize)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			h.contentTooLargeResponse(w, r)
		default:
			h.badRequestResponse(w, r, err)
		}
		return
	}
	file, fileHeader, err := r.FormFile("cover")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	defer file.Close()
	post, err := h.service.UpdatePostCover(r.Context(), postID, file, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrContentTooLarge):
			h.contentTooLargeResponse(w, r)
		case errors.Is(err, service.ErrUnsupportedMediaType):
			h.unsupportedMediaTypeResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{Success: true, Data: post}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
