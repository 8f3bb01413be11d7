package models

import (
	"time"

	"github.com/lcardenas7/Edusyn-sub000/storage"
)

type RegisterCandidateRequest struct {
	ElectionID string `json:"electionId"`
	PersonID   string `json:"personId"`
	Slogan     string `json:"slogan"`
	Proposals  string `json:"proposals"`
	PhotoURL   string `json:"photoUrl"`
	Color      string `json:"color"`
}

type RejectCandidateRequest struct {
	Reason string `json:"reason"`
}

type CandidateResponse struct {
	ID              string     `json:"id"`
	ElectionID      string     `json:"electionId"`
	PersonID        string     `json:"personId"`
	Slogan          string     `json:"slogan,omitempty"`
	Proposals       string     `json:"proposals,omitempty"`
	PhotoURL        string     `json:"photoUrl,omitempty"`
	Color           string     `json:"color,omitempty"`
	BallotNumber    int        `json:"ballotNumber"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func TransformCandidateFromStorage(c *storage.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:              c.ID,
		ElectionID:      c.ElectionID,
		PersonID:        c.PersonID,
		Slogan:          c.Slogan,
		Proposals:       c.Proposals,
		PhotoURL:        c.PhotoURL,
		Color:           c.Color,
		BallotNumber:    c.BallotNumber,
		Status:          c.Status,
		RejectionReason: c.RejectionReason,
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      c.ApprovedAt,
		CreatedAt:       c.CreatedAt,
	}
}
