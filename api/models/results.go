package models

import (
	"math"
	"time"

	"github.com/lcardenas7/Edusyn-sub000/storage"
)

// ElectionResultRow is one tabulated row. A nil CandidateID marks the
// blank-vote row. Percentage is rounded to one decimal for display; full
// precision stays in storage.
type ElectionResultRow struct {
	CandidateID *string `json:"candidateId"`
	Blank       bool    `json:"blank"`
	Votes       int     `json:"votes"`
	Percentage  float64 `json:"percentage"`
	Rank        int     `json:"rank"`
	Winner      bool    `json:"winner"`
}

type ElectionResultsResponse struct {
	ElectionID string              `json:"electionId"`
	Office     string              `json:"office"`
	TotalVotes int                 `json:"totalVotes"`
	ComputedAt time.Time           `json:"computedAt"`
	Rows       []ElectionResultRow `json:"rows"`
}

type ProcessResultsResponse struct {
	ProcessID string                    `json:"processId"`
	Elections []ElectionResultsResponse `json:"elections"`
}

type VotingStatsResponse struct {
	ProcessID         string  `json:"processId"`
	EligibleVoters    int64   `json:"eligibleVoters"`
	Voters            int64   `json:"voters"`
	ParticipationRate float64 `json:"participationRate"`
}

type GradeParticipationResponse struct {
	GradeID           string  `json:"gradeId"`
	GradeName         string  `json:"gradeName"`
	EligibleVoters    int64   `json:"eligibleVoters"`
	Voters            int64   `json:"voters"`
	ParticipationRate float64 `json:"participationRate"`
}

type ParticipationResponse struct {
	VotingStatsResponse
	ByGrade []GradeParticipationResponse `json:"byGrade"`
}

func TransformResultFromStorage(r *storage.ElectionResult) ElectionResultRow {
	return ElectionResultRow{
		CandidateID: r.CandidateID,
		Blank:       r.CandidateID == nil,
		Votes:       r.Votes,
		Percentage:  RoundPercentage(r.Percentage),
		Rank:        r.Rank,
		Winner:      r.Winner,
	}
}

// RoundPercentage applies the one-decimal display precision.
func RoundPercentage(p float64) float64 {
	return math.Round(p*10) / 10
}
