// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"gajidpr_backend/internals/features/users/auth/service"
)

// StartRevokedTokenCleanup menjalankan purge harian atas revoked_tokens
// yang sudah lewat masa berlakunya. Berhenti saat stop ditutup.
func StartRevokedTokenCleanup(db *gorm.DB, interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := service.PurgeExpired(db)
				if err != nil {
					log.Printf("[ERROR] purge revoked_tokens gagal: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("[INFO] purge revoked_tokens: %d entri dibuang", n)
				}
			case <-stop:
				return
			}
		}
	}()
}
