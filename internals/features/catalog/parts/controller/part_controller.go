package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/catalog/parts/dto"
	partModel "coursehub_backend/internals/features/catalog/parts/model"
	helper "coursehub_backend/internals/helpers"
)

type PartController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPartController(db *gorm.DB) *PartController {
	return &PartController{DB: db, Validate: validator.New()}
}

// GET /api/public/parts
// Every category with its live course count.
func (pc *PartController) List(c *fiber.Ctx) error {
	var parts []partModel.PartModel
	if err := pc.DB.Order("part_name ASC").Find(&parts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load categories")
	}

	type countRow struct {
		PartID uuid.UUID
		N      int64
	}
	var counts []countRow
	if err := pc.DB.
		Table("courses").
		Select("course_part_id AS part_id, COUNT(*) AS n").
		Where("course_deleted_at IS NULL").
		Group("course_part_id").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}
	byPart := make(map[uuid.UUID]int64, len(counts))
	for _, r := range counts {
		byPart[r.PartID] = r.N
	}

	out := make([]dto.PartResponse, 0, len(parts))
	for i := range parts {
		out = append(out, dto.ToPartResponse(&parts[i], byPart[parts[i].PartID]))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/a/parts (staff)
func (pc *PartController) Create(c *fiber.Ctx) error {
	var req dto.CreatePartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.PartName = strings.TrimSpace(req.PartName)
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	base := helper.Slugify(req.PartName, 100)
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), pc.DB, "parts", "part_slug", base, nil, 100)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	part := req.ToModel(slug)
	if err := pc.DB.Create(part).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Category already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}

	return helper.JsonCreated(c, "Category created", dto.ToPartResponse(part, 0))
}
