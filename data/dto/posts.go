package dto

// CreatePostRequestBody defines the request body for CreatePost service.
type CreatePostRequestBody struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Excerpt string `json:"excerpt"`
}

// UpdatePostRequestBody defines the request body for UpdatePost service.
// Absent fields are left unchanged.
type UpdatePostRequestBody struct {
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Content *string `json:"content" validate:"omitempty,min=1"`
	Excerpt *string `json:"excerpt"`
}
