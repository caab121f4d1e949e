package dto

import (
	"github.com/google/uuid"

	commentModel "coursehub_backend/internals/features/engagement/comments/model"
)

type CreateCommentRequest struct {
	Body     string     `json:"body" validate:"required,min=1,max=2000"`
	ParentID *uuid.UUID `json:"parent_id"`
}

func (r *CreateCommentRequest) ToModel(courseID, userID uuid.UUID) *commentModel.CommentModel {
	return &commentModel.CommentModel{
		CommentCourseID: courseID,
		CommentUserID:   userID,
		CommentBody:     r.Body,
		CommentParentID: r.ParentID,
	}
}
