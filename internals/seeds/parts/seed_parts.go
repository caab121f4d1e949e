package parts

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	partModel "coursehub_backend/internals/features/catalog/parts/model"
	helper "coursehub_backend/internals/helpers"
)

type PartSeed struct {
	PartName string `json:"part_name"`
}

func SeedPartsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading part seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var inputs []PartSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing partModel.PartModel
		if err := db.Where("LOWER(part_name) = LOWER(?)", data.PartName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Category '%s' already exists, skipped.", data.PartName)
			continue
		}

		base := helper.Slugify(data.PartName, 100)
		slug, err := helper.EnsureUniqueSlugCI(context.Background(), db, "parts", "part_slug", base, nil, 100)
		if err != nil {
			log.Printf("❌ Failed to build slug for '%s': %v", data.PartName, err)
			continue
		}

		part := partModel.PartModel{PartName: data.PartName, PartSlug: slug}
		if err := db.Create(&part).Error; err != nil {
			log.Printf("❌ Failed to insert category '%s': %v", data.PartName, err)
		} else {
			log.Printf("✅ Inserted category '%s'", data.PartName)
		}
	}
}
