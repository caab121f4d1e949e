package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "coursehub_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler prunes expired blacklist rows once a
// day. TTL grace is configurable via TOKEN_BLACKLIST_TTL_DAYS.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Pruning token_blacklist...")

			deleteBefore := time.Now().UTC().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			if n, err := authRepo.CleanupExpiredBlacklist(db, deleteBefore); err != nil {
				log.Printf("[CLEANUP ERROR] Failed to prune expired tokens: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d expired tokens removed", n)
			} else {
				log.Println("[CLEANUP] Nothing to remove")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
