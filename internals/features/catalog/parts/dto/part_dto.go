package dto

import (
	"time"

	"github.com/google/uuid"

	partModel "coursehub_backend/internals/features/catalog/parts/model"
)

type CreatePartRequest struct {
	PartName string `json:"part_name" validate:"required,min=2,max=50"`
}

func (r *CreatePartRequest) ToModel(slug string) *partModel.PartModel {
	return &partModel.PartModel{
		PartName: r.PartName,
		PartSlug: slug,
	}
}

type PartResponse struct {
	PartID        uuid.UUID `json:"part_id"`
	PartName      string    `json:"part_name"`
	PartSlug      string    `json:"part_slug"`
	CourseCount   int64     `json:"course_count"`
	PartCreatedAt time.Time `json:"part_created_at"`
}

func ToPartResponse(m *partModel.PartModel, courseCount int64) PartResponse {
	return PartResponse{
		PartID:        m.PartID,
		PartName:      m.PartName,
		PartSlug:      m.PartSlug,
		CourseCount:   courseCount,
		PartCreatedAt: m.PartCreatedAt,
	}
}
