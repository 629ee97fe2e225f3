package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DashboardSnapshot records the stats computed by one dashboard refresh.
type DashboardSnapshot struct {
	gorm.Model
	BatchID string         `gorm:"size:36;uniqueIndex;not null" json:"batch_id"`
	TakenAt time.Time      `gorm:"index" json:"taken_at"`
	Stats   datatypes.JSON `json:"stats"`
}

func (s *DashboardSnapshot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.BatchID == "" {
		s.BatchID = strings.ToLower(uuid.New().String())
	}
	return nil
}
