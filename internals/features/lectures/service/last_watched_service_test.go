package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	lectureModel "coursehub_backend/internals/features/lectures/model"
)

func mkVideo(id uuid.UUID, created time.Time) lectureModel.VideoModel {
	return lectureModel.VideoModel{VideoID: id, VideoCreatedAt: created}
}

func mkView(videoID uuid.UUID, at time.Time) lectureModel.VideoViewModel {
	return lectureModel.VideoViewModel{ViewVideoID: videoID, ViewLastWatchedAt: at}
}

func TestPickLastWatchedNoVideos(t *testing.T) {
	if got := PickLastWatched(nil, nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestPickLastWatchedFallsBackToFirstVideo(t *testing.T) {
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	v1 := mkVideo(uuid.New(), base.Add(time.Hour))
	v2 := mkVideo(uuid.New(), base) // oldest, the course's first video

	got := PickLastWatched(nil, []lectureModel.VideoModel{v1, v2})
	if got == nil || got.VideoID != v2.VideoID {
		t.Fatalf("expected fallback to earliest video, got %+v", got)
	}
}

func TestPickLastWatchedMostRecentView(t *testing.T) {
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	v1 := mkVideo(uuid.New(), base)
	v2 := mkVideo(uuid.New(), base.Add(time.Hour))

	views := []lectureModel.VideoViewModel{
		mkView(v1.VideoID, base.Add(24*time.Hour)),
		mkView(v2.VideoID, base.Add(48*time.Hour)), // most recent
	}
	got := PickLastWatched(views, []lectureModel.VideoModel{v1, v2})
	if got == nil || got.VideoID != v2.VideoID {
		t.Fatalf("expected most recently watched video, got %+v", got)
	}
}

func TestPickLastWatchedIgnoresForeignViews(t *testing.T) {
	base := time.Now().UTC()
	v1 := mkVideo(uuid.New(), base)

	// View of a video that no longer belongs to the course.
	views := []lectureModel.VideoViewModel{
		mkView(uuid.New(), base.Add(time.Hour)),
	}
	got := PickLastWatched(views, []lectureModel.VideoModel{v1})
	if got == nil || got.VideoID != v1.VideoID {
		t.Fatalf("expected fallback to course video, got %+v", got)
	}
}
