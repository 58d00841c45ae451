package services

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
)

// HealthService checks database reachability
type HealthService struct {
	db *gorm.DB
}

// NewHealthService creates a new health service
func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{db: db}
}

// ProbeDatabase pings the database and logs pool stats
func (s *HealthService) ProbeDatabase(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		log.Printf("❌ Health probe: %v", err)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Printf("❌ Health probe: database unreachable: %v", err)
		return err
	}

	stats := sqlDB.Stats()
	log.Printf("💓 Health probe: database ok [open=%d in_use=%d idle=%d]",
		stats.OpenConnections, stats.InUse, stats.Idle)
	return nil
}
