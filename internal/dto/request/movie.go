package request

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	DurationMin int     `json:"durationMin" validate:"required,min=1"`
}

type UpdateMovieRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	DurationMin *int    `json:"durationMin,omitempty" validate:"omitempty,min=1"`
}
