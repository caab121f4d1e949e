package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/catalog/courses/dto"
	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	courseService "coursehub_backend/internals/features/catalog/courses/service"
	partModel "coursehub_backend/internals/features/catalog/parts/model"
	reviewService "coursehub_backend/internals/features/engagement/reviews/service"
	helper "coursehub_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

// courseCardRow feeds the listing card without N+1 lookups.
type courseCardRow struct {
	courseModel.CourseModel
	TeacherName string
	PartName    string
}

func (ctl *CourseController) cardQuery() *gorm.DB {
	return ctl.DB.
		Table("courses").
		Select("courses.*, u.user_name AS teacher_name, p.part_name AS part_name").
		Joins("JOIN users u ON u.id = courses.course_teacher_id").
		Joins("JOIN parts p ON p.part_id = courses.course_part_id").
		Where("courses.course_deleted_at IS NULL")
}

func (ctl *CourseController) toCards(rows []courseCardRow) ([]dto.CourseLiteResponse, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].CourseID)
	}
	summaries, err := reviewService.CourseRatingSummaries(ctl.DB, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseLiteResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToCourseLiteResponse(
			&rows[i].CourseModel, rows[i].TeacherName, rows[i].PartName,
			summaries[rows[i].CourseID],
		))
	}
	return out, nil
}

// listPage runs the shared paginate-then-load flow for listing routes.
// The page is clamped against the filtered total first, so a page past
// the end serves the last page instead of an empty one.
func (ctl *CourseController) listPage(c *fiber.Ctx, scope func(*gorm.DB) *gorm.DB, message string) error {
	countQ := ctl.DB.Model(&courseModel.CourseModel{})
	if scope != nil {
		countQ = scope(countQ)
	}
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	paging := helper.ResolvePagingClamped(c, total, helper.CourseListPerPage)

	q := ctl.cardQuery()
	if scope != nil {
		q = scope(q)
	}
	var rows []courseCardRow
	if err := q.
		Order("courses.course_created_at ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load courses")
	}

	cards, err := ctl.toCards(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate ratings")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, message, cards, p)
}

// GET /api/public/courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	return ctl.listPage(c, nil, "Courses")
}

// GET /api/public/courses/:slug
// All courses of one category (by category slug).
func (ctl *CourseController) ListByPartSlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var part partModel.PartModel
	if err := ctl.DB.First(&part, "LOWER(part_slug) = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up category")
	}

	return ctl.listPage(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("course_part_id = ?", part.PartID)
	}, part.PartName)
}

// GET /api/public/courses/tag/:name
func (ctl *CourseController) ListByTag(c *fiber.Ctx) error {
	tag := strings.TrimSpace(c.Params("name"))
	if tag == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tag name is required")
	}

	return ctl.listPage(c, func(q *gorm.DB) *gorm.DB {
		return q.Where(
			"course_id IN (SELECT tag_course_id FROM tags WHERE LOWER(tag_name) = LOWER(?))",
			tag,
		)
	}, "Courses tagged "+tag)
}

// GET /api/public/search
// query= category= price_level= skill_level= — all AND'd, free text is
// an OR-group over name/level/price.
func (ctl *CourseController) Search(c *fiber.Ctx) error {
	filters := courseService.NormalizeSearchFilters(
		c.Query("query"),
		c.Query("category"),
		c.Query("price_level"),
		c.Query("skill_level"),
	)
	return ctl.listPage(c, func(q *gorm.DB) *gorm.DB {
		return filters.Apply(q)
	}, "Search results")
}

// GET /api/public/full-search?quer=
// One term, matched against category names and the course free-text
// group. Unpaginated; this feeds the site-wide search box.
func (ctl *CourseController) FullSearch(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("quer"))
	if term == "" {
		return helper.JsonOK(c, "Search results", fiber.Map{
			"parts":   []partModel.PartModel{},
			"courses": []dto.CourseLiteResponse{},
		})
	}

	var parts []partModel.PartModel
	if err := ctl.DB.
		Where("part_name ILIKE ?", "%"+term+"%").
		Order("part_name ASC").
		Find(&parts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search categories")
	}

	filters := courseService.SearchFilters{Query: term}
	var rows []courseCardRow
	if err := filters.Apply(ctl.cardQuery()).
		Order("courses.course_created_at ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search courses")
	}
	cards, err := ctl.toCards(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate ratings")
	}

	return helper.JsonOK(c, "Search results", fiber.Map{
		"parts":   parts,
		"courses": cards,
	})
}

// GET /api/public/home
// Featured newest courses plus the category strip.
func (ctl *CourseController) Home(c *fiber.Ctx) error {
	var rows []courseCardRow
	if err := ctl.cardQuery().
		Order("courses.course_created_at DESC").
		Limit(8).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load courses")
	}
	cards, err := ctl.toCards(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate ratings")
	}

	var parts []partModel.PartModel
	if err := ctl.DB.Order("part_name ASC").Find(&parts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load categories")
	}

	return helper.JsonOK(c, "Home", fiber.Map{
		"featured": cards,
		"parts":    parts,
	})
}

// GET /api/public/users/:id/courses is folded into the profile route;
// this variant backs the teacher's account page with an optional
// ?query= filter over their own courses.
func (ctl *CourseController) ListByTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	query := strings.TrimSpace(c.Query("query"))

	return ctl.listPage(c, func(q *gorm.DB) *gorm.DB {
		q = q.Where("course_teacher_id = ?", teacherID)
		if query != "" {
			q = q.Where("course_name ILIKE ?", "%"+query+"%")
		}
		return q
	}, "Teacher courses")
}

// POST /api/u/courses (teacher role)
// Multipart: fields + optional image, video and gallery files. The
// image goes through the webp pipeline; video and gallery are stored
// as uploaded.
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req.CourseName = strings.TrimSpace(c.FormValue("course_name"))
		req.CourseBody = c.FormValue("course_body")
		req.CourseLevel = strings.TrimSpace(c.FormValue("course_level"))
		if v := strings.TrimSpace(c.FormValue("course_price")); v != "" {
			price, err := strconv.Atoi(v)
			if err != nil || price < 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course price")
			}
			req.CoursePrice = price
		}
		partID, err := uuid.Parse(strings.TrimSpace(c.FormValue("part_id")))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid part id")
		}
		req.PartID = partID
		for _, t := range strings.Split(c.FormValue("tags"), ",") {
			if t = strings.TrimSpace(t); t != "" {
				req.Tags = append(req.Tags, t)
			}
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var part partModel.PartModel
	if err := ctl.DB.First(&part, "part_id = ?", req.PartID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Category not found")
	}

	base := helper.Slugify(req.CourseName, 100)
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctl.DB, "courses", "course_slug", base, nil, 100)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	course := req.ToModel(teacherID, slug)

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := helper.UploadImageAsWebP("courses", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to process course image")
		}
		course.CourseImageURL = &url
	}
	if fh, err := c.FormFile("video"); err == nil && fh != nil {
		url, err := helper.SaveUploadedFile("courses/videos", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store course video")
		}
		course.CourseVideoURL = &url
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["gallery"] {
			url, err := helper.UploadImageAsWebP("courses/gallery", fh)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Failed to process gallery image")
			}
			course.CourseGallery = append(course.CourseGallery, url)
		}
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		for _, t := range req.Tags {
			tag := courseModel.TagModel{TagName: t, TagCourseID: course.CourseID}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.JsonCreated(c, "Course created", course)
}

// DELETE /api/a/courses/:id (staff)
// Cascade: tags, likes, reviews, ratings, comments, lectures, videos
// and views go with the course in one transaction.
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctl.DB.Select("course_id").First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up course")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		stmts := []string{
			`DELETE FROM video_views WHERE view_course_id = ?`,
			`DELETE FROM lecture_videos WHERE lecture_video_lecture_id IN
			   (SELECT lecture_id FROM lectures WHERE lecture_course_id = ?)`,
			`DELETE FROM videos WHERE video_course_id = ?`,
			`DELETE FROM lectures WHERE lecture_course_id = ?`,
			`DELETE FROM comments WHERE comment_course_id = ?`,
			`DELETE FROM ratings WHERE rating_course_id = ?`,
			`DELETE FROM reviews WHERE review_course_id = ?`,
			`DELETE FROM course_likes WHERE like_course_id = ?`,
			`DELETE FROM tags WHERE tag_course_id = ?`,
			`DELETE FROM courses WHERE course_id = ?`,
		}
		for _, s := range stmts {
			if err := tx.Exec(s, courseID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": courseID})
}
