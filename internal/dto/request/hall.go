package request

type CreateHallRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

type UpdateHallRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
}
