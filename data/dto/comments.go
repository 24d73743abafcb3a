package dto

// CreateCommentRequestBody defines the request body for CreateComment service.
type CreateCommentRequestBody struct {
	Content       string `json:"content" validate:"required"`
	ParentComment *int64 `json:"parentComment" validate:"omitempty,gt=0"`
}

// UpdateCommentRequestBody defines the request body for UpdateComment service.
type UpdateCommentRequestBody struct {
	Content string `json:"content" validate:"required"`
}
