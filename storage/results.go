package storage

import (
	"context"

	"gorm.io/gorm"
)

// ResultStorage reads the tabulated rows written by ProcessStorage.Close.
type ResultStorage interface {
	GetByElection(ctx context.Context, electionID string) ([]*ElectionResult, error)
	GetByProcess(ctx context.Context, processID string) ([]*ElectionResult, error)
}

type GormResultStorage struct {
	DB *gorm.DB
}

func (s *GormResultStorage) GetByElection(ctx context.Context, electionID string) ([]*ElectionResult, error) {
	var rows []*ElectionResult
	err := s.DB.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("rank ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormResultStorage) GetByProcess(ctx context.Context, processID string) ([]*ElectionResult, error) {
	var rows []*ElectionResult
	err := s.DB.WithContext(ctx).Model(&ElectionResult{}).
		Joins("JOIN elections ON elections.id = election_results.election_id").
		Where("elections.process_id = ?", processID).
		Order("election_results.election_id ASC, election_results.rank ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
