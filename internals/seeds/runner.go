package seeds

import (
	"gorm.io/gorm"

	parts "coursehub_backend/internals/seeds/parts"
	users "coursehub_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	parts.SeedPartsFromJSON(db, "internals/seeds/parts/data_parts.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
