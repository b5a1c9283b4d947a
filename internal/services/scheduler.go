package services

import (
	"log"
	"time"

	"github.com/pelinsarix/themind/internal/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// StartCleanupScheduler prunes games untouched for longer than maxAge,
// terminal or abandoned alike. A game without live viewers stays
// referenceable until then. Each deletion runs under that game's lock so a
// late request never races a half-removed game.
func (s *GameService) StartCleanupScheduler(maxAge time.Duration) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("cleanup: scheduler init failed: %v", err)
		return
	}

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			cutoff := time.Now().Add(-maxAge)

			var stale []models.Game
			if err := s.db.Where("updated_at < ?", cutoff).Find(&stale).Error; err != nil {
				log.Printf("cleanup: query failed: %v", err)
				return
			}

			for _, game := range stale {
				s.deleteGame(game.GameID)
			}
			if len(stale) > 0 {
				log.Printf("cleanup: removed %d stale games", len(stale))
			}
		}),
	)
	if err != nil {
		log.Printf("cleanup: job registration failed: %v", err)
		return
	}

	sched.Start()
}

func (s *GameService) deleteGame(gameID string) {
	s.locks.Lock(gameID)
	defer s.locks.Unlock(gameID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", gameID).Delete(&models.PlayedCard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", gameID).Delete(&models.HandCard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", gameID).Delete(&models.Player{}).Error; err != nil {
			return err
		}
		return tx.Where("game_id = ?", gameID).Delete(&models.Game{}).Error
	})
	if err != nil {
		log.Printf("cleanup: failed to delete game %s: %v", gameID, err)
		return
	}
	s.cache.Invalidate(gameID)
}
