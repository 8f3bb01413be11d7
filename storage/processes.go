package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lcardenas7/Edusyn-sub000/election"
	"github.com/lcardenas7/Edusyn-sub000/logging"
)

type ProcessStorage interface {
	// Create inserts the process together with its generated elections in
	// one transaction. Creation is not complete until the catalog exists.
	Create(ctx context.Context, process *ElectionProcess, elections []*Election) error
	Get(ctx context.Context, id string) (*ElectionProcess, error)
	GetByInstitution(ctx context.Context, institutionID string) ([]*ElectionProcess, error)
	// GetCurrent returns the single non-archived process of an institution,
	// or nil when there is none.
	GetCurrent(ctx context.Context, institutionID string) (*ElectionProcess, error)
	Update(ctx context.Context, process *ElectionProcess) error
	UpdatePhase(ctx context.Context, id string, phase string) error
	// Cancel flips the process to the given terminal phase and archives it
	// so a new process can be created for the same year.
	Cancel(ctx context.Context, id string, phase string) error
	// Close tabulates every child election and flips the process from
	// fromPhase to toPhase. The vote reads, the result rows and the phase
	// flip share one transaction, so the stored results always reflect
	// the vote set at the moment the close commits. Returns
	// ErrPhaseConflict when the process is no longer in fromPhase.
	Close(ctx context.Context, id string, fromPhase, toPhase string, computedAt time.Time) error
}

type GormProcessStorage struct {
	DB *gorm.DB
}

func (s *GormProcessStorage) Create(ctx context.Context, process *ElectionProcess, elections []*Election) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&ElectionProcess{}).
			Where("institution_id = ? AND academic_year = ? AND archived = ?", process.InstitutionID, process.AcademicYear, false).
			Count(&count).Error
		if err != nil {
			logging.Log.Errorf("PROCESS: duplicate check failed: %v", err)
			return err
		}
		if count > 0 {
			return ErrDuplicateProcess
		}

		if err := tx.Create(process).Error; err != nil {
			logging.Log.Errorf("PROCESS: failed to create process: %v", err)
			return err
		}
		if len(elections) > 0 {
			if err := tx.Create(elections).Error; err != nil {
				logging.Log.Errorf("PROCESS: failed to create election catalog: %v", err)
				return err
			}
		}
		return nil
	})
}

func (s *GormProcessStorage) Get(ctx context.Context, id string) (*ElectionProcess, error) {
	var process ElectionProcess
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&process).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &process, nil
}

func (s *GormProcessStorage) GetByInstitution(ctx context.Context, institutionID string) ([]*ElectionProcess, error) {
	var processes []*ElectionProcess
	err := s.DB.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("academic_year DESC, created_at DESC").
		Find(&processes).Error
	if err != nil {
		return nil, err
	}
	return processes, nil
}

func (s *GormProcessStorage) GetCurrent(ctx context.Context, institutionID string) (*ElectionProcess, error) {
	var process ElectionProcess
	err := s.DB.WithContext(ctx).
		Where("institution_id = ? AND archived = ?", institutionID, false).
		Order("created_at DESC").
		First(&process).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &process, nil
}

func (s *GormProcessStorage) Update(ctx context.Context, process *ElectionProcess) error {
	var existing ElectionProcess
	err := s.DB.WithContext(ctx).Where("id = ?", process.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Save(process).Error
}

func (s *GormProcessStorage) UpdatePhase(ctx context.Context, id string, phase string) error {
	result := s.DB.WithContext(ctx).Model(&ElectionProcess{}).Where("id = ?", id).Update("phase", phase)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormProcessStorage) Cancel(ctx context.Context, id string, phase string) error {
	result := s.DB.WithContext(ctx).Model(&ElectionProcess{}).Where("id = ?", id).
		Updates(map[string]any{"phase": phase, "archived": true})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormProcessStorage) Close(ctx context.Context, id string, fromPhase, toPhase string, computedAt time.Time) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var elections []*Election
		if err := tx.Where("process_id = ?", id).Find(&elections).Error; err != nil {
			logging.Log.Errorf("PROCESS: failed to load elections for close of %s: %v", id, err)
			return err
		}

		for _, e := range elections {
			rows, err := tabulateElection(tx, e.ID, computedAt)
			if err != nil {
				logging.Log.Errorf("PROCESS: tabulation failed for election %s: %v", e.ID, err)
				return err
			}
			if err := tx.Where("election_id = ?", e.ID).Delete(&ElectionResult{}).Error; err != nil {
				logging.Log.Errorf("PROCESS: failed to clear results for election %s: %v", e.ID, err)
				return err
			}
			if len(rows) == 0 {
				continue
			}
			if err := tx.Create(rows).Error; err != nil {
				logging.Log.Errorf("PROCESS: failed to store results for election %s: %v", e.ID, err)
				return err
			}
		}

		result := tx.Model(&ElectionProcess{}).Where("id = ? AND phase = ?", id, fromPhase).Update("phase", toPhase)
		if result.Error != nil {
			logging.Log.Errorf("PROCESS: failed to close process %s: %v", id, result.Error)
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&ElectionProcess{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			logging.Log.Warnf("PROCESS: refusing to close %s, no longer in phase %s", id, fromPhase)
			return ErrPhaseConflict
		}
		return nil
	})
}

// tabulateElection aggregates the ballots of one election into ranked result
// rows, reading through the enclosing transaction.
func tabulateElection(tx *gorm.DB, electionID string, computedAt time.Time) ([]*ElectionResult, error) {
	var votes []*Vote
	if err := tx.Where("election_id = ?", electionID).Find(&votes).Error; err != nil {
		return nil, err
	}
	var candidates []*Candidate
	if err := tx.Where("election_id = ?", electionID).Find(&candidates).Error; err != nil {
		return nil, err
	}

	ballots := make([]election.Ballot, 0, len(votes))
	for _, v := range votes {
		ballots = append(ballots, election.Ballot{CandidateID: v.CandidateID})
	}
	refs := make([]election.CandidateRef, 0, len(candidates))
	for _, c := range candidates {
		refs = append(refs, election.CandidateRef{ID: c.ID, RegisteredAt: c.CreatedAt})
	}

	tabulated := election.Tabulate(ballots, refs)
	rows := make([]*ElectionResult, 0, len(tabulated))
	for _, r := range tabulated {
		rows = append(rows, &ElectionResult{
			ID:          uuid.NewString(),
			ElectionID:  electionID,
			CandidateID: r.CandidateID,
			Votes:       r.Votes,
			Percentage:  r.Percentage,
			Rank:        r.Rank,
			Winner:      r.Winner,
			ComputedAt:  computedAt,
		})
	}
	return rows, nil
}
