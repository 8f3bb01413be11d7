package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type ElectionStorage interface {
	Get(ctx context.Context, id string) (*Election, error)
	GetByProcess(ctx context.Context, processID string) ([]*Election, error)
}

type GormElectionStorage struct {
	DB *gorm.DB
}

func (s *GormElectionStorage) Get(ctx context.Context, id string) (*Election, error) {
	var e Election
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *GormElectionStorage) GetByProcess(ctx context.Context, processID string) ([]*Election, error) {
	var elections []*Election
	err := s.DB.WithContext(ctx).
		Where("process_id = ?", processID).
		Order("created_at ASC, id ASC").
		Find(&elections).Error
	if err != nil {
		return nil, err
	}
	return elections, nil
}
