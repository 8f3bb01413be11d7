package storage

import "errors"

var (
	ErrNotFound            = errors.New("item not found in storage")
	ErrDuplicateProcess    = errors.New("a process already exists for this institution and year")
	ErrDuplicateCandidate  = errors.New("a candidacy already exists for this person in this election")
	ErrDuplicateVote       = errors.New("a vote already exists for this voter in this election")
	ErrCandidateNotPending = errors.New("candidacy has already been decided")
	ErrPhaseConflict       = errors.New("process is not in the expected phase")
)
