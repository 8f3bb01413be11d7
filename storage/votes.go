package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lcardenas7/Edusyn-sub000/logging"
)

type VoteStorage interface {
	// Create appends one immutable vote. The storage-level unique index on
	// (election_id, voter_id) makes the duplicate check atomic under
	// concurrent submissions; ErrDuplicateVote is returned on violation.
	Create(ctx context.Context, vote *Vote) error
	GetByElection(ctx context.Context, electionID string) ([]*Vote, error)
	// VotedElections returns the set of election ids, among those given,
	// the voter has already voted in.
	VotedElections(ctx context.Context, voterID string, electionIDs []string) (map[string]bool, error)
	CountDistinctVoters(ctx context.Context, processID string) (int64, error)
	// CountDistinctVotersByGrade breaks the distinct-voter count of a
	// process down by the grade of each voter's active enrollment in the
	// process's own institution and academic year.
	CountDistinctVotersByGrade(ctx context.Context, processID string) (map[string]int64, error)
}

type GormVoteStorage struct {
	DB *gorm.DB
}

func (s *GormVoteStorage) Create(ctx context.Context, vote *Vote) error {
	err := s.DB.WithContext(ctx).Create(vote).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logging.Log.Warnf("VOTE: duplicate vote rejected for voter %s in election %s", vote.VoterID, vote.ElectionID)
		return ErrDuplicateVote
	}
	if err != nil {
		logging.Log.Errorf("VOTE: failed to create vote: %v", err)
		return err
	}
	return nil
}

func (s *GormVoteStorage) GetByElection(ctx context.Context, electionID string) ([]*Vote, error) {
	var votes []*Vote
	err := s.DB.WithContext(ctx).Where("election_id = ?", electionID).Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *GormVoteStorage) VotedElections(ctx context.Context, voterID string, electionIDs []string) (map[string]bool, error) {
	voted := make(map[string]bool, len(electionIDs))
	if len(electionIDs) == 0 {
		return voted, nil
	}

	var ids []string
	err := s.DB.WithContext(ctx).Model(&Vote{}).
		Where("voter_id = ? AND election_id IN ?", voterID, electionIDs).
		Pluck("election_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		voted[id] = true
	}
	return voted, nil
}

func (s *GormVoteStorage) CountDistinctVoters(ctx context.Context, processID string) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&Vote{}).
		Joins("JOIN elections ON elections.id = votes.election_id").
		Where("elections.process_id = ?", processID).
		Distinct("votes.voter_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormVoteStorage) CountDistinctVotersByGrade(ctx context.Context, processID string) (map[string]int64, error) {
	type gradeCount struct {
		GradeID string
		Voters  int64
	}

	var rows []gradeCount
	err := s.DB.WithContext(ctx).Model(&Vote{}).
		Select("groups.grade_id AS grade_id, COUNT(DISTINCT votes.voter_id) AS voters").
		Joins("JOIN elections ON elections.id = votes.election_id").
		Joins("JOIN election_processes ON election_processes.id = elections.process_id").
		Joins("JOIN enrollments ON enrollments.person_id = votes.voter_id AND enrollments.status = ? AND enrollments.academic_year = election_processes.academic_year", EnrollmentStatusActive).
		Joins("JOIN groups ON groups.id = enrollments.group_id AND groups.institution_id = election_processes.institution_id").
		Where("elections.process_id = ?", processID).
		Group("groups.grade_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.GradeID] = row.Voters
	}
	return counts, nil
}
