package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/catalog/courses/dto"
	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	commentModel "coursehub_backend/internals/features/engagement/comments/model"
	commentService "coursehub_backend/internals/features/engagement/comments/service"
	reviewService "coursehub_backend/internals/features/engagement/reviews/service"
	lectureModel "coursehub_backend/internals/features/lectures/model"
	lectureService "coursehub_backend/internals/features/lectures/service"
	helper "coursehub_backend/internals/helpers"
)

// GET /api/public/courses/detail/:id
// The whole course page: media, tags, rating summary + stars, reviews
// newest-first, comment tree, lectures with their videos, and the
// caller's resume point when a token is present.
func (ctl *CourseController) Detail(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	return ctl.renderDetail(c, courseID)
}

// GET /api/public/courses/by-slug/:slug — same payload, slug key.
func (ctl *CourseController) DetailBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course courseModel.CourseModel
	if err := ctl.DB.Select("course_id").
		First(&course, "LOWER(course_slug) = LOWER(?)", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up course")
	}
	return ctl.renderDetail(c, course.CourseID)
}

func (ctl *CourseController) renderDetail(c *fiber.Ctx, courseID uuid.UUID) error {
	var row courseCardRow
	res := ctl.cardQuery().Where("courses.course_id = ?", courseID).Scan(&row)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	if res.RowsAffected == 0 || row.CourseID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	detail := dto.CourseDetailResponse{
		CourseID:    row.CourseID,
		CourseName:  row.CourseName,
		CourseSlug:  row.CourseSlug,
		CourseBody:  row.CourseBody,
		CourseLevel: row.CourseLevel,
		CoursePrice: row.CoursePrice,
		IsFree:      row.IsFree(),
		ImageURL:    row.CourseImageURL,
		VideoURL:    row.CourseVideoURL,
		Gallery:     row.CourseGallery,
		TeacherID:   row.CourseTeacherID,
		TeacherName: row.TeacherName,
		PartID:      row.CoursePartID,
		PartName:    row.PartName,
		CreatedAt:   row.CourseCreatedAt,
		UpdatedAt:   row.CourseUpdatedAt,
	}

	// Tags
	var tags []string
	if err := ctl.DB.Model(&courseModel.TagModel{}).
		Where("tag_course_id = ?", courseID).
		Order("tag_name ASC").
		Pluck("tag_name", &tags).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tags")
	}
	detail.Tags = tags
	if detail.Tags == nil {
		detail.Tags = []string{}
	}

	// Rating aggregate
	summary, err := reviewService.CourseRatingSummary(ctl.DB, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate ratings")
	}
	detail.Rating = summary

	// Likes (+ whether the caller liked it)
	viewerID := helper.GetUserIDFromTokenIfAny(c)
	ctl.DB.Model(&courseModel.CourseLikeModel{}).
		Where("like_course_id = ?", courseID).Count(&detail.LikeCount)
	if viewerID != uuid.Nil {
		var n int64
		ctl.DB.Model(&courseModel.CourseLikeModel{}).
			Where("like_course_id = ? AND like_user_id = ?", courseID, viewerID).Count(&n)
		detail.Liked = n > 0
	}

	// Reviews, newest first, with author + rating
	type reviewRow struct {
		ReviewID  uuid.UUID `json:"review_id"`
		UserID    uuid.UUID `json:"user_id"`
		UserName  string    `json:"user_name"`
		Body      string    `json:"body"`
		Rating    *int      `json:"rating,omitempty"`
		CreatedAt string    `json:"created_at"`
	}
	var reviews []reviewRow
	if err := ctl.DB.
		Table("reviews r").
		Select(`r.review_id, r.review_user_id AS user_id, u.user_name,
			r.review_body AS body, rt.rating_value AS rating,
			r.review_created_at AS created_at`).
		Joins("JOIN users u ON u.id = r.review_user_id").
		Joins("LEFT JOIN ratings rt ON rt.rating_review_id = r.review_id").
		Where("r.review_course_id = ? AND r.review_deleted_at IS NULL", courseID).
		Order("r.review_created_at DESC").
		Scan(&reviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reviews")
	}
	detail.Reviews = reviews

	// Comment thread
	var comments []commentModel.CommentModel
	if err := ctl.DB.
		Where("comment_course_id = ?", courseID).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load comments")
	}
	detail.Comments = commentService.BuildCommentTree(comments)

	// Lectures with their videos
	var lectures []lectureModel.LectureModel
	if err := ctl.DB.
		Where("lecture_course_id = ?", courseID).
		Order("lecture_created_at ASC").
		Find(&lectures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lectures")
	}
	type lectureBlock struct {
		Lecture lectureModel.LectureModel `json:"lecture"`
		Videos  []lectureModel.VideoModel `json:"videos"`
	}
	blocks := make([]lectureBlock, 0, len(lectures))
	for i := range lectures {
		var vids []lectureModel.VideoModel
		if err := ctl.DB.
			Joins("JOIN lecture_videos lv ON lv.lecture_video_video_id = videos.video_id").
			Where("lv.lecture_video_lecture_id = ?", lectures[i].LectureID).
			Order("videos.video_created_at ASC").
			Find(&vids).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lecture videos")
		}
		blocks = append(blocks, lectureBlock{Lecture: lectures[i], Videos: vids})
	}
	detail.Lectures = blocks

	// All course videos
	var videos []lectureModel.VideoModel
	if err := ctl.DB.
		Where("video_course_id = ?", courseID).
		Order("video_created_at ASC").
		Find(&videos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load videos")
	}
	detail.Videos = videos

	// Resume point for authenticated callers
	if viewerID != uuid.Nil {
		lw, err := lectureService.LastWatchedForUser(ctl.DB, viewerID, courseID)
		if err == nil && lw != nil {
			detail.LastWatched = lw
		}
	}

	return helper.JsonOK(c, "OK", detail)
}
