package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVote(electionID string, voterID string, candidateID *string) *Vote {
	return &Vote{
		ID:          uuid.NewString(),
		ElectionID:  electionID,
		VoterID:     voterID,
		CandidateID: candidateID,
	}
}

func TestVoteStorage_Create(t *testing.T) {
	db := openTestDB(t)
	votes := &GormVoteStorage{DB: db}
	ctx := context.Background()

	_, e := seedVotingSchool(t, db, "school-1", "voter-1", "voter-2")

	t.Run("records a vote", func(t *testing.T) {
		candidateID := uuid.NewString()
		require.NoError(t, votes.Create(ctx, newVote(e.ID, "voter-1", &candidateID)))

		stored, err := votes.GetByElection(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "voter-1", stored[0].VoterID)
	})

	t.Run("records a blank vote", func(t *testing.T) {
		require.NoError(t, votes.Create(ctx, newVote(e.ID, "voter-2", nil)))

		stored, err := votes.GetByElection(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, stored, 2)
	})

	t.Run("rejects a second vote by the same voter", func(t *testing.T) {
		err := votes.Create(ctx, newVote(e.ID, "voter-1", nil))
		assert.ErrorIs(t, err, ErrDuplicateVote)

		stored, err := votes.GetByElection(ctx, e.ID)
		require.NoError(t, err)
		assert.Len(t, stored, 2)
	})
}

func TestVoteStorage_ConcurrentDuplicates(t *testing.T) {
	db := openTestDB(t)
	votes := &GormVoteStorage{DB: db}
	ctx := context.Background()

	_, e := seedVotingSchool(t, db, "school-1", "voter-1")

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = votes.Create(ctx, newVote(e.ID, "voter-1", nil))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateVote)
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := votes.GetByElection(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestVoteStorage_VotedElections(t *testing.T) {
	db := openTestDB(t)
	votes := &GormVoteStorage{DB: db}
	processes := &GormProcessStorage{DB: db}
	ctx := context.Background()

	process := testProcess("school-1", 2026)
	first := testElection(process.ID, "personero")
	second := testElection(process.ID, "contralor")
	require.NoError(t, processes.Create(ctx, process, []*Election{first, second}))

	require.NoError(t, votes.Create(ctx, newVote(first.ID, "voter-1", nil)))

	voted, err := votes.VotedElections(ctx, "voter-1", []string{first.ID, second.ID})
	require.NoError(t, err)
	assert.True(t, voted[first.ID])
	assert.False(t, voted[second.ID])

	voted, err = votes.VotedElections(ctx, "voter-2", []string{first.ID, second.ID})
	require.NoError(t, err)
	assert.Empty(t, voted)

	voted, err = votes.VotedElections(ctx, "voter-1", nil)
	require.NoError(t, err)
	assert.Empty(t, voted)
}

func TestVoteStorage_DistinctVoterCounts(t *testing.T) {
	db := openTestDB(t)
	votes := &GormVoteStorage{DB: db}
	processes := &GormProcessStorage{DB: db}
	ctx := context.Background()

	// two elections so the same voter can appear twice in the votes table
	process := testProcess("school-1", 2026)
	first := testElection(process.ID, "personero")
	second := testElection(process.ID, "contralor")
	require.NoError(t, processes.Create(ctx, process, []*Election{first, second}))

	grade := &Grade{ID: uuid.NewString(), InstitutionID: "school-1", Name: "Décimo", Ordinal: 10, Active: true}
	group := &Group{ID: uuid.NewString(), InstitutionID: "school-1", GradeID: grade.ID, Name: "10A", Active: true}
	require.NoError(t, db.Create(grade).Error)
	require.NoError(t, db.Create(group).Error)
	for _, voter := range []string{"voter-1", "voter-2"} {
		require.NoError(t, db.Create(&Enrollment{
			ID: uuid.NewString(), PersonID: voter, GroupID: group.ID,
			AcademicYear: 2026, Status: EnrollmentStatusActive,
		}).Error)
	}

	// stale enrollments that must not leak into the grade breakdown:
	// voter-1 is also active at another school, and in last year's grade
	otherSchoolGrade := &Grade{ID: uuid.NewString(), InstitutionID: "school-2", Name: "Décimo", Ordinal: 10, Active: true}
	otherSchoolGroup := &Group{ID: uuid.NewString(), InstitutionID: "school-2", GradeID: otherSchoolGrade.ID, Name: "10A", Active: true}
	lastYearGrade := &Grade{ID: uuid.NewString(), InstitutionID: "school-1", Name: "Noveno", Ordinal: 9, Active: true}
	lastYearGroup := &Group{ID: uuid.NewString(), InstitutionID: "school-1", GradeID: lastYearGrade.ID, Name: "9A", Active: true}
	for _, m := range []any{otherSchoolGrade, otherSchoolGroup, lastYearGrade, lastYearGroup} {
		require.NoError(t, db.Create(m).Error)
	}
	require.NoError(t, db.Create(&Enrollment{
		ID: uuid.NewString(), PersonID: "voter-1", GroupID: otherSchoolGroup.ID,
		AcademicYear: 2026, Status: EnrollmentStatusActive,
	}).Error)
	require.NoError(t, db.Create(&Enrollment{
		ID: uuid.NewString(), PersonID: "voter-1", GroupID: lastYearGroup.ID,
		AcademicYear: 2025, Status: EnrollmentStatusActive,
	}).Error)

	require.NoError(t, votes.Create(ctx, newVote(first.ID, "voter-1", nil)))
	require.NoError(t, votes.Create(ctx, newVote(second.ID, "voter-1", nil)))
	require.NoError(t, votes.Create(ctx, newVote(first.ID, "voter-2", nil)))

	count, err := votes.CountDistinctVoters(ctx, process.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	byGrade, err := votes.CountDistinctVotersByGrade(ctx, process.ID)
	require.NoError(t, err)
	require.Len(t, byGrade, 1)
	assert.EqualValues(t, 2, byGrade[grade.ID])
}
