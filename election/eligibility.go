package election

// Ref identifies one election of the currently-voting process for
// eligibility resolution.
type Ref struct {
	ID      string
	Office  OfficeType
	GradeID string
	GroupID string
}

// EnrollmentRef is the voter's current active enrollment: the group they
// belong to and that group's grade.
type EnrollmentRef struct {
	GroupID string
	GradeID string
}

// EligibleElections resolves which elections a voter may cast a ballot in:
// every institution-wide office election, the grade-representative election
// for their grade and the group-representative election for their group.
// A voter with no active enrollment is eligible for nothing.
func EligibleElections(all []Ref, enrollment *EnrollmentRef) []Ref {
	if enrollment == nil {
		return nil
	}

	eligible := make([]Ref, 0, len(all))
	for _, e := range all {
		switch e.Office {
		case OfficePersonero, OfficeContralor:
			eligible = append(eligible, e)
		case OfficeGradeRep:
			if e.GradeID == enrollment.GradeID {
				eligible = append(eligible, e)
			}
		case OfficeGroupRep:
			if e.GroupID == enrollment.GroupID {
				eligible = append(eligible, e)
			}
		}
	}
	return eligible
}

// PendingElections is the eligible set minus elections the voter has
// already voted in.
func PendingElections(eligible []Ref, voted map[string]bool) []Ref {
	pending := make([]Ref, 0, len(eligible))
	for _, e := range eligible {
		if !voted[e.ID] {
			pending = append(pending, e)
		}
	}
	return pending
}

// HasCompletedVoting reports whether the voter has no pending elections
// left. A voter eligible for nothing has, trivially, completed voting.
func HasCompletedVoting(eligible []Ref, voted map[string]bool) bool {
	return len(PendingElections(eligible, voted)) == 0
}
