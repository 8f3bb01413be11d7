package election

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testElectionRefs() []Ref {
	return []Ref{
		{ID: "e-personero", Office: OfficePersonero},
		{ID: "e-contralor", Office: OfficeContralor},
		{ID: "e-grade-10", Office: OfficeGradeRep, GradeID: "grade-10"},
		{ID: "e-grade-11", Office: OfficeGradeRep, GradeID: "grade-11"},
		{ID: "e-group-10a", Office: OfficeGroupRep, GradeID: "grade-10", GroupID: "group-10a"},
		{ID: "e-group-10b", Office: OfficeGroupRep, GradeID: "grade-10", GroupID: "group-10b"},
		{ID: "e-group-11a", Office: OfficeGroupRep, GradeID: "grade-11", GroupID: "group-11a"},
	}
}

func electionIDs(refs []Ref) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestEligibleElections(t *testing.T) {
	t.Run("enrolled voter gets institution plus own grade and group", func(t *testing.T) {
		eligible := EligibleElections(testElectionRefs(), &EnrollmentRef{GroupID: "group-10a", GradeID: "grade-10"})

		assert.Equal(t, []string{"e-personero", "e-contralor", "e-grade-10", "e-group-10a"}, electionIDs(eligible))
	})

	t.Run("other grade", func(t *testing.T) {
		eligible := EligibleElections(testElectionRefs(), &EnrollmentRef{GroupID: "group-11a", GradeID: "grade-11"})

		assert.Equal(t, []string{"e-personero", "e-contralor", "e-grade-11", "e-group-11a"}, electionIDs(eligible))
	})

	t.Run("no enrollment means no eligibility", func(t *testing.T) {
		assert.Nil(t, EligibleElections(testElectionRefs(), nil))
	})

	t.Run("empty election set", func(t *testing.T) {
		eligible := EligibleElections(nil, &EnrollmentRef{GroupID: "group-10a", GradeID: "grade-10"})
		assert.Empty(t, eligible)
	})
}

func TestPendingElections(t *testing.T) {
	eligible := EligibleElections(testElectionRefs(), &EnrollmentRef{GroupID: "group-10a", GradeID: "grade-10"})
	require.Len(t, eligible, 4)

	t.Run("nothing voted yet", func(t *testing.T) {
		pending := PendingElections(eligible, nil)
		assert.Len(t, pending, 4)
		assert.False(t, HasCompletedVoting(eligible, nil))
	})

	t.Run("partially voted", func(t *testing.T) {
		voted := map[string]bool{"e-personero": true, "e-group-10a": true}
		pending := PendingElections(eligible, voted)

		assert.Equal(t, []string{"e-contralor", "e-grade-10"}, electionIDs(pending))
		assert.False(t, HasCompletedVoting(eligible, voted))
	})

	t.Run("all voted", func(t *testing.T) {
		voted := map[string]bool{
			"e-personero": true, "e-contralor": true,
			"e-grade-10": true, "e-group-10a": true,
		}
		assert.Empty(t, PendingElections(eligible, voted))
		assert.True(t, HasCompletedVoting(eligible, voted))
	})

	t.Run("eligible for nothing counts as completed", func(t *testing.T) {
		assert.True(t, HasCompletedVoting(nil, nil))
	})
}
