package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	"coursehub_backend/internals/features/lectures/dto"
	lectureModel "coursehub_backend/internals/features/lectures/model"
	lectureService "coursehub_backend/internals/features/lectures/service"
	helper "coursehub_backend/internals/helpers"
)

type LectureController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLectureController(db *gorm.DB) *LectureController {
	return &LectureController{DB: db, Validate: validator.New()}
}

// POST /api/u/courses/:id/lectures (teacher)
// Only the course's own teacher may add lectures to it.
func (lc *LectureController) CreateLecture(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := lc.DB.Select("course_id", "course_teacher_id").
		First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up course")
	}
	if course.CourseTeacherID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the course teacher can add lectures")
	}

	var req dto.CreateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.LectureName = strings.TrimSpace(req.LectureName)
	if err := lc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	lecture := req.ToModel(courseID, userID)
	if err := lc.DB.Create(lecture).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lecture")
	}

	return helper.JsonCreated(c, "Lecture created", lecture)
}

// POST /api/u/lectures/:id/videos (teacher)
// Multipart "file" upload or a video_file_url in the body. The video is
// created under the lecture's course and linked to the lecture.
func (lc *LectureController) AttachVideo(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	lectureID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lecture id")
	}

	var lecture lectureModel.LectureModel
	if err := lc.DB.First(&lecture, "lecture_id = ?", lectureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lecture not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up lecture")
	}
	if lecture.LectureUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the lecture author can attach videos")
	}

	var req dto.AttachVideoRequest
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req.VideoName = strings.TrimSpace(c.FormValue("video_name"))
		req.VideoFileURL = strings.TrimSpace(c.FormValue("video_file_url"))
		if v := strings.TrimSpace(c.FormValue("duration_seconds")); v != "" {
			if d, err := strconv.ParseFloat(v, 64); err == nil && d >= 0 {
				req.DurationSeconds = d
			} else {
				// Probe output is advisory; a bad value is dropped, not fatal.
				log.Printf("[WARN] ignoring invalid duration_seconds %q for lecture %s", v, lectureID)
			}
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := lc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	fileURL := req.VideoFileURL
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		url, err := helper.SaveUploadedFile("videos", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store video file")
		}
		fileURL = url
	}
	if fileURL == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "A video file or video_file_url is required")
	}

	video := lectureModel.VideoModel{
		VideoName:     req.VideoName,
		VideoFileURL:  fileURL,
		VideoCourseID: lecture.LectureCourseID,
		VideoUserID:   userID,
	}
	if req.DurationSeconds > 0 {
		video.VideoMeta = datatypes.JSON([]byte(
			`{"duration_seconds":` + strconv.FormatFloat(req.DurationSeconds, 'f', -1, 64) + `}`,
		))
	}

	err = lc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&video).Error; err != nil {
			return err
		}
		return tx.Create(&lectureModel.LectureVideoModel{
			LectureVideoLectureID: lectureID,
			LectureVideoVideoID:   video.VideoID,
		}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to attach video")
	}

	return helper.JsonCreated(c, "Video attached", video)
}

// GET /api/u/courses/:id/videos/:video_id
// Returns the video and records the view as the caller's new
// last-watched point in this course.
func (lc *LectureController) VideoDetail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	videoID, err := uuid.Parse(c.Params("video_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}

	var video lectureModel.VideoModel
	if err := lc.DB.
		First(&video, "video_id = ? AND video_course_id = ?", videoID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load video")
	}

	if err := lectureService.RecordView(lc.DB, userID, &video); err != nil {
		// The page must still render; the resume point just won't move.
		log.Printf("[WARN] failed to record video view user=%s video=%s: %v", userID, videoID, err)
	}

	var siblings []lectureModel.VideoModel
	if err := lc.DB.
		Where("video_course_id = ?", courseID).
		Order("video_created_at ASC").
		Find(&siblings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course videos")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"video":         video,
		"course_videos": siblings,
	})
}

// GET /api/public/courses/:id/lectures
func (lc *LectureController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var lectures []lectureModel.LectureModel
	if err := lc.DB.
		Where("lecture_course_id = ?", courseID).
		Order("lecture_created_at ASC").
		Find(&lectures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load lectures")
	}

	return helper.JsonOK(c, "OK", lectures)
}
