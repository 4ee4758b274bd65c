package response

import (
	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
)

type HallResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func HallToResponse(hall *entity.Hall) HallResponse {
	return HallResponse{
		ID:       hall.ID,
		Name:     hall.Name,
		Capacity: hall.Capacity,
	}
}
