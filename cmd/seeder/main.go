package main

import (
	"log"

	"coursehub_backend/internals/configs"
	seeds "coursehub_backend/internals/seeds"
)

// Standalone seeder entrypoint. Run from the repo root so the JSON
// seed paths resolve.
func main() {
	configs.LoadEnv()

	db := configs.InitSeederDB()
	seeds.RunAllSeeds(db)

	log.Println("✅ Seeding done.")
}
