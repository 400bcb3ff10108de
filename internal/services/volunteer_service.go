package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"gorm.io/gorm"
)

type VolunteerService struct {
	db *gorm.DB
}

func NewVolunteerService(db *gorm.DB) *VolunteerService {
	return &VolunteerService{db: db}
}

func (s *VolunteerService) ActiveEnrollmentCount(userID uuid.UUID) (int64, error) {
	var n int64
	err := s.db.Model(&models.VolunteerEnrollment{}).
		Where("user_id = ? AND estado = ?", userID, models.InscripcionActiva).
		Count(&n).Error
	return n, err
}

// TotalHours sums the hours a volunteer accumulated across every
// enrollment, finished ones included.
func (s *VolunteerService) TotalHours(userID uuid.UUID) (float64, error) {
	var total float64
	err := s.db.Model(&models.VolunteerEnrollment{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(horas_acumuladas), 0)").
		Scan(&total).Error
	return total, err
}

func (s *VolunteerService) UpcomingActivities(limit int) ([]models.VolunteerActivity, error) {
	var activities []models.VolunteerActivity
	err := s.db.Where("fecha >= ?", time.Now()).
		Order("fecha ASC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
