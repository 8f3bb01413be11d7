package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessStorage_Create(t *testing.T) {
	db := openTestDB(t)
	processes := &GormProcessStorage{DB: db}
	elections := &GormElectionStorage{DB: db}
	ctx := context.Background()

	t.Run("creates process with its catalog", func(t *testing.T) {
		process := testProcess("school-1", 2026)
		catalog := []*Election{
			testElection(process.ID, "personero"),
			testElection(process.ID, "contralor"),
		}
		require.NoError(t, processes.Create(ctx, process, catalog))

		stored, err := processes.Get(ctx, process.ID)
		require.NoError(t, err)
		assert.Equal(t, process.ID, stored.ID)
		assert.Equal(t, "draft", stored.Phase)

		children, err := elections.GetByProcess(ctx, process.ID)
		require.NoError(t, err)
		assert.Len(t, children, 2)
	})

	t.Run("rejects second process for same institution and year", func(t *testing.T) {
		err := processes.Create(ctx, testProcess("school-1", 2026), nil)
		assert.ErrorIs(t, err, ErrDuplicateProcess)
	})

	t.Run("rolls the process back when the catalog insert fails", func(t *testing.T) {
		process := testProcess("school-2", 2026)
		bad := testElection(process.ID, "personero")
		catalog := []*Election{bad, {ID: bad.ID, ProcessID: process.ID, Office: "contralor"}}

		err := processes.Create(ctx, process, catalog)
		require.Error(t, err)

		_, err = processes.Get(ctx, process.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("different institution same year is fine", func(t *testing.T) {
		assert.NoError(t, processes.Create(ctx, testProcess("school-3", 2026), nil))
	})
}

func TestProcessStorage_GetCurrent(t *testing.T) {
	db := openTestDB(t)
	processes := &GormProcessStorage{DB: db}
	ctx := context.Background()

	t.Run("nil when the institution has no process", func(t *testing.T) {
		current, err := processes.GetCurrent(ctx, "school-1")
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("returns the non-archived process", func(t *testing.T) {
		process := testProcess("school-1", 2026)
		require.NoError(t, processes.Create(ctx, process, nil))

		current, err := processes.GetCurrent(ctx, "school-1")
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, process.ID, current.ID)
	})

	t.Run("cancelled process no longer counts as current", func(t *testing.T) {
		current, err := processes.GetCurrent(ctx, "school-1")
		require.NoError(t, err)
		require.NotNil(t, current)

		require.NoError(t, processes.Cancel(ctx, current.ID, "cancelled"))

		current, err = processes.GetCurrent(ctx, "school-1")
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("a replacement process can be created after cancellation", func(t *testing.T) {
		assert.NoError(t, processes.Create(ctx, testProcess("school-1", 2026), nil))
	})
}

func TestProcessStorage_PhaseUpdates(t *testing.T) {
	db := openTestDB(t)
	processes := &GormProcessStorage{DB: db}
	ctx := context.Background()

	process := testProcess("school-1", 2026)
	require.NoError(t, processes.Create(ctx, process, nil))

	t.Run("updates the phase", func(t *testing.T) {
		require.NoError(t, processes.UpdatePhase(ctx, process.ID, "registration"))

		stored, err := processes.Get(ctx, process.ID)
		require.NoError(t, err)
		assert.Equal(t, "registration", stored.Phase)
		assert.False(t, stored.Archived)
	})

	t.Run("unknown process", func(t *testing.T) {
		assert.ErrorIs(t, processes.UpdatePhase(ctx, "missing", "voting"), ErrNotFound)
		assert.ErrorIs(t, processes.Cancel(ctx, "missing", "cancelled"), ErrNotFound)
	})

	t.Run("cancel archives the process", func(t *testing.T) {
		require.NoError(t, processes.Cancel(ctx, process.ID, "cancelled"))

		stored, err := processes.Get(ctx, process.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", stored.Phase)
		assert.True(t, stored.Archived)
	})
}

func TestProcessStorage_Close(t *testing.T) {
	db := openTestDB(t)
	processes := &GormProcessStorage{DB: db}
	candidates := &GormCandidateStorage{DB: db}
	votes := &GormVoteStorage{DB: db}
	results := &GormResultStorage{DB: db}
	ctx := context.Background()
	now := time.Now().UTC()

	newProcessInPhase := func(t *testing.T, institutionID string, phase string) (*ElectionProcess, *Election) {
		process := testProcess(institutionID, 2026)
		process.Phase = phase
		e := testElection(process.ID, "personero")
		require.NoError(t, processes.Create(ctx, process, []*Election{e}))
		return process, e
	}

	t.Run("tabulates the stored ballots and flips the phase together", func(t *testing.T) {
		process, e := newProcessInPhase(t, "school-1", "voting")

		candidate := newCandidate(e.ID, "person-1")
		require.NoError(t, candidates.Create(ctx, candidate))
		require.NoError(t, candidates.Approve(ctx, candidate.ID, "admin-1"))

		require.NoError(t, votes.Create(ctx, newVote(e.ID, "voter-1", &candidate.ID)))
		require.NoError(t, votes.Create(ctx, newVote(e.ID, "voter-2", &candidate.ID)))
		require.NoError(t, votes.Create(ctx, newVote(e.ID, "voter-3", nil)))

		require.NoError(t, processes.Close(ctx, process.ID, "voting", "closed", now))

		stored, err := processes.Get(ctx, process.ID)
		require.NoError(t, err)
		assert.Equal(t, "closed", stored.Phase)

		rows, err := results.GetByElection(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.NotNil(t, rows[0].CandidateID)
		assert.Equal(t, candidate.ID, *rows[0].CandidateID)
		assert.Equal(t, 2, rows[0].Votes)
		assert.True(t, rows[0].Winner)
		assert.Nil(t, rows[1].CandidateID)
		assert.Equal(t, 1, rows[1].Votes)
	})

	t.Run("counts every ballot committed before the close", func(t *testing.T) {
		process, e := newProcessInPhase(t, "school-2", "voting")

		for _, voter := range []string{"voter-1", "voter-2", "voter-3"} {
			require.NoError(t, votes.Create(ctx, newVote(e.ID, voter, nil)))
		}
		// a ballot that lands just before the close still counts
		require.NoError(t, votes.Create(ctx, newVote(e.ID, "voter-4", nil)))

		require.NoError(t, processes.Close(ctx, process.ID, "voting", "closed", now))

		stored, err := votes.GetByElection(ctx, e.ID)
		require.NoError(t, err)
		rows, err := results.GetByElection(ctx, e.ID)
		require.NoError(t, err)

		counted := 0
		for _, row := range rows {
			counted += row.Votes
		}
		assert.Equal(t, len(stored), counted)
	})

	t.Run("rolls everything back when the process left the voting phase", func(t *testing.T) {
		process, e := newProcessInPhase(t, "school-3", "campaign")
		require.NoError(t, votes.Create(ctx, newVote(e.ID, "voter-1", nil)))

		err := processes.Close(ctx, process.ID, "voting", "closed", now)
		assert.ErrorIs(t, err, ErrPhaseConflict)

		stored, err := processes.Get(ctx, process.ID)
		require.NoError(t, err)
		assert.Equal(t, "campaign", stored.Phase)

		rows, err := results.GetByElection(ctx, e.ID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("closing twice is rejected", func(t *testing.T) {
		process, _ := newProcessInPhase(t, "school-4", "voting")

		require.NoError(t, processes.Close(ctx, process.ID, "voting", "closed", now))
		err := processes.Close(ctx, process.ID, "voting", "closed", now)
		assert.ErrorIs(t, err, ErrPhaseConflict)
	})

	t.Run("unknown process", func(t *testing.T) {
		err := processes.Close(ctx, "missing", "voting", "closed", now)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
