package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error

	// FindByIDForAccount scopes lookups to the owning account so one user
	// cannot read or export another user's trips.
	FindByIDForAccount(ctx context.Context, tripID, accountID string) (*db_models.Trip, error)
	ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (t *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) FindByIDForAccount(ctx context.Context, tripID, accountID string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", tripID, accountID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (t *tripRepository) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := t.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
