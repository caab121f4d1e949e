package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	lectureModel "coursehub_backend/internals/features/lectures/model"
)

// PickLastWatched resolves which video a user should resume in a
// course: the video of their most recent view, or the course's first
// video (by creation order) when they have not watched anything yet.
// Returns nil when the course has no videos at all.
func PickLastWatched(views []lectureModel.VideoViewModel, videos []lectureModel.VideoModel) *lectureModel.VideoModel {
	if len(videos) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*lectureModel.VideoModel, len(videos))
	for i := range videos {
		byID[videos[i].VideoID] = &videos[i]
	}

	var best *lectureModel.VideoViewModel
	for i := range views {
		if _, ok := byID[views[i].ViewVideoID]; !ok {
			continue
		}
		if best == nil || views[i].ViewLastWatchedAt.After(best.ViewLastWatchedAt) {
			best = &views[i]
		}
	}
	if best != nil {
		return byID[best.ViewVideoID]
	}

	first := &videos[0]
	for i := 1; i < len(videos); i++ {
		if videos[i].VideoCreatedAt.Before(first.VideoCreatedAt) {
			first = &videos[i]
		}
	}
	return first
}

// LastWatchedForUser loads the user's views within a course and
// resolves the resume video.
func LastWatchedForUser(db *gorm.DB, userID, courseID uuid.UUID) (*lectureModel.VideoModel, error) {
	var videos []lectureModel.VideoModel
	if err := db.
		Where("video_course_id = ?", courseID).
		Order("video_created_at ASC").
		Find(&videos).Error; err != nil {
		return nil, err
	}

	var views []lectureModel.VideoViewModel
	if userID != uuid.Nil {
		if err := db.
			Where("view_user_id = ? AND view_course_id = ?", userID, courseID).
			Find(&views).Error; err != nil {
			return nil, err
		}
	}

	return PickLastWatched(views, videos), nil
}

// RecordView upserts the (user, video) row with a fresh timestamp.
func RecordView(db *gorm.DB, userID uuid.UUID, video *lectureModel.VideoModel) error {
	return db.Exec(`
		INSERT INTO video_views (view_user_id, view_video_id, view_course_id, view_last_watched_at)
		VALUES (?, ?, ?, NOW())
		ON CONFLICT (view_user_id, view_video_id)
		DO UPDATE SET view_last_watched_at = NOW()`,
		userID, video.VideoID, video.VideoCourseID,
	).Error
}
