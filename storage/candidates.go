package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lcardenas7/Edusyn-sub000/logging"
)

type CandidateStorage interface {
	// Create inserts a pending candidacy, assigning the next ballot number
	// of the election. Returns ErrDuplicateCandidate when the person is
	// already registered in the election.
	Create(ctx context.Context, candidate *Candidate) error
	Get(ctx context.Context, id string) (*Candidate, error)
	GetByElection(ctx context.Context, electionID string) ([]*Candidate, error)
	// Approve and Reject only act on pending candidacies. A candidacy
	// that was already decided returns ErrCandidateNotPending.
	Approve(ctx context.Context, id string, approverID string) error
	Reject(ctx context.Context, id string, approverID string, reason string) error
}

type GormCandidateStorage struct {
	DB *gorm.DB
}

func (s *GormCandidateStorage) Create(ctx context.Context, candidate *Candidate) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if candidate.BallotNumber == 0 {
			var count int64
			if err := tx.Model(&Candidate{}).Where("election_id = ?", candidate.ElectionID).Count(&count).Error; err != nil {
				logging.Log.Errorf("CANDIDATE: failed to count candidates: %v", err)
				return err
			}
			candidate.BallotNumber = int(count) + 1
		}

		err := tx.Create(candidate).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logging.Log.Warnf("CANDIDATE: person %s already registered in election %s", candidate.PersonID, candidate.ElectionID)
			return ErrDuplicateCandidate
		}
		if err != nil {
			logging.Log.Errorf("CANDIDATE: failed to create candidacy: %v", err)
			return err
		}
		return nil
	})
}

func (s *GormCandidateStorage) Get(ctx context.Context, id string) (*Candidate, error) {
	var c Candidate
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormCandidateStorage) GetByElection(ctx context.Context, electionID string) ([]*Candidate, error) {
	var candidates []*Candidate
	err := s.DB.WithContext(ctx).
		Where("election_id = ?", electionID).
		Order("ballot_number ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func (s *GormCandidateStorage) Approve(ctx context.Context, id string, approverID string) error {
	return s.setApproval(ctx, id, CandidateStatusApproved, approverID, "")
}

func (s *GormCandidateStorage) Reject(ctx context.Context, id string, approverID string, reason string) error {
	return s.setApproval(ctx, id, CandidateStatusRejected, approverID, reason)
}

func (s *GormCandidateStorage) setApproval(ctx context.Context, id string, status string, approverID string, reason string) error {
	now := time.Now().UTC()
	result := s.DB.WithContext(ctx).Model(&Candidate{}).
		Where("id = ? AND status = ?", id, CandidateStatusPending).
		Updates(map[string]any{
			"status":           status,
			"rejection_reason": reason,
			"approved_by":      approverID,
			"approved_at":      now,
		})
	if result.Error != nil {
		logging.Log.Errorf("CANDIDATE: failed to set status %s on %s: %v", status, id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&Candidate{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		logging.Log.Warnf("CANDIDATE: refusing to set status %s on already-decided candidacy %s", status, id)
		return ErrCandidateNotPending
	}
	return nil
}
