package models

// CastVoteRequest submits one ballot. A nil CandidateID is a blank vote
// and is only accepted when the process allows blank votes.
type CastVoteRequest struct {
	ElectionID  string  `json:"electionId"`
	CandidateID *string `json:"candidateId"`
}

type CastVoteResponse struct {
	Message    string `json:"message"`
	ElectionID string `json:"electionId"`
}

type PendingElectionsResponse struct {
	VoterID   string             `json:"voterId"`
	Elections []ElectionResponse `json:"elections"`
}

type VotingStatusResponse struct {
	VoterID   string `json:"voterId"`
	Completed bool   `json:"completed"`
	Pending   int    `json:"pending"`
}
