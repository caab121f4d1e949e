package database

import (
	"log"

	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	partModel "coursehub_backend/internals/features/catalog/parts/model"
	commentModel "coursehub_backend/internals/features/engagement/comments/model"
	reviewModel "coursehub_backend/internals/features/engagement/reviews/model"
	lectureModel "coursehub_backend/internals/features/lectures/model"
	orderModel "coursehub_backend/internals/features/payment/orders/model"
	authModel "coursehub_backend/internals/features/users/auth/model"
	followModel "coursehub_backend/internals/features/users/follow/model"
	userModel "coursehub_backend/internals/features/users/user/model"
)

// Migrate runs AutoMigrate over every model. Parent tables first so FK
// constraints resolve.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklist{},
		&followModel.UserFollowModel{},
		&partModel.PartModel{},
		&courseModel.CourseModel{},
		&courseModel.TagModel{},
		&courseModel.CourseLikeModel{},
		&reviewModel.ReviewModel{},
		&reviewModel.RatingModel{},
		&commentModel.CommentModel{},
		&lectureModel.LectureModel{},
		&lectureModel.VideoModel{},
		&lectureModel.LectureVideoModel{},
		&lectureModel.VideoViewModel{},
		&orderModel.OrderModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ AutoMigrate done.")
}
