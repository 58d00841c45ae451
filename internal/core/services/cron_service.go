package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// CronService runs the database health probe on a schedule
type CronService struct {
	health   *HealthService
	cron     *cron.Cron
	schedule string
}

// NewCronService creates a cron service; an empty schedule disables it
func NewCronService(health *HealthService, schedule string) *CronService {
	return &CronService{
		health:   health,
		cron:     cron.New(),
		schedule: schedule,
	}
}

// Start registers the health probe and starts the scheduler
func (s *CronService) Start() error {
	if s.schedule == "" {
		log.Println("⏸️ Health probe disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		_ = s.health.ProbeDatabase(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("⏰ Health probe scheduled [%s]", s.schedule)
	return nil
}

// Stop waits for a running probe to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 Cron service stopped")
}
