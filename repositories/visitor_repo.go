// repository hides GORM details behind an interface -> DB-agnostic, insert only.
package repositories

import (
	"context"

	"VisitorIntake/models"

	"gorm.io/gorm"
)

// VisitorRepository is the only write path for visitor records.
type VisitorRepository interface {
	Create(ctx context.Context, v *models.Visitor) error
}

// visitorRepo holds a *gorm.DB that can talk to any configured dialect.
type visitorRepo struct{ db *gorm.DB }

// NewVisitorRepository injects *gorm.DB and returns the interface.
func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepo{db: db}
}

// Create inserts one row; the ctx deadline bounds the round trip.
func (r *visitorRepo) Create(ctx context.Context, v *models.Visitor) error {
	return r.db.WithContext(ctx).Create(v).Error
}
