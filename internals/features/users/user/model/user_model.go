package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:255;unique;not null" json:"user_name" validate:"required,min=3,max=255"`
	Email    string    `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Phone    string    `gorm:"size:20" json:"phone"`
	Address  string    `gorm:"size:50" json:"address"`

	// Role is fixed at creation: teacher or student
	Role    string `gorm:"type:varchar(10);not null;default:'student'" json:"role" validate:"required,oneof=teacher student"`
	IsStaff bool   `gorm:"not null;default:false" json:"is_staff"`

	AvatarURL *string `gorm:"type:text" json:"avatar_url,omitempty"`
	GoogleID  *string `gorm:"size:255;unique" json:"google_id,omitempty"`

	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName keeps the table name aligned with the schema
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsTeacher() bool {
	return u.Role == constants.RoleTeacher
}

func (u *UserModel) IsStudent() bool {
	return u.Role == constants.RoleStudent
}

// SetDefaultValues applies defaults before validation
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
}

// Validate checks the input against the rules defined above
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	err := validate.Struct(u)
	if err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError turns validator errors into readable messages
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " is required."
			case "email":
				errorMessages[fieldErr.Field()] = "Invalid email format."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be under " + fieldErr.Param() + " characters."
			case "oneof":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be one of " + fieldErr.Param() + "."
			default:
				errorMessages[fieldErr.Field()] = "Invalid format."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}

	return err
}

func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
