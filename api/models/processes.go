package models

import (
	"time"

	"github.com/lcardenas7/Edusyn-sub000/storage"
)

type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type CreateProcessRequest struct {
	InstitutionID string     `json:"institutionId"`
	AcademicYear  int        `json:"academicYear"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Registration  TimeWindow `json:"registration"`
	Campaign      TimeWindow `json:"campaign"`
	Voting        TimeWindow `json:"voting"`

	PersoneroEnabled bool `json:"personeroEnabled"`
	ContralorEnabled bool `json:"contralorEnabled"`
	GradeRepEnabled  bool `json:"gradeRepEnabled"`
	GroupRepEnabled  bool `json:"groupRepEnabled"`
	BlankVoteAllowed bool `json:"blankVoteAllowed"`
}

// UpdateProcessRequest edits a draft process. Office flags are not part of
// the request: the election catalog was generated from them at creation.
type UpdateProcessRequest struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Registration TimeWindow `json:"registration"`
	Campaign     TimeWindow `json:"campaign"`
	Voting       TimeWindow `json:"voting"`

	BlankVoteAllowed bool `json:"blankVoteAllowed"`
}

type AdvanceProcessRequest struct {
	Phase string `json:"phase"`
}

type ProcessResponse struct {
	ID            string     `json:"id"`
	InstitutionID string     `json:"institutionId"`
	AcademicYear  int        `json:"academicYear"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Registration  TimeWindow `json:"registration"`
	Campaign      TimeWindow `json:"campaign"`
	Voting        TimeWindow `json:"voting"`

	PersoneroEnabled bool `json:"personeroEnabled"`
	ContralorEnabled bool `json:"contralorEnabled"`
	GradeRepEnabled  bool `json:"gradeRepEnabled"`
	GroupRepEnabled  bool `json:"groupRepEnabled"`
	BlankVoteAllowed bool `json:"blankVoteAllowed"`

	Phase     string    `json:"phase"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ElectionResponse struct {
	ID        string  `json:"id"`
	ProcessID string  `json:"processId"`
	Office    string  `json:"office"`
	GradeID   *string `json:"gradeId,omitempty"`
	GroupID   *string `json:"groupId,omitempty"`
	Active    bool    `json:"active"`
}

func TransformProcessFromStorage(p *storage.ElectionProcess) ProcessResponse {
	return ProcessResponse{
		ID:            p.ID,
		InstitutionID: p.InstitutionID,
		AcademicYear:  p.AcademicYear,
		Name:          p.Name,
		Description:   p.Description,
		Registration:  TimeWindow{Start: p.RegistrationStart, End: p.RegistrationEnd},
		Campaign:      TimeWindow{Start: p.CampaignStart, End: p.CampaignEnd},
		Voting:        TimeWindow{Start: p.VotingStart, End: p.VotingEnd},

		PersoneroEnabled: p.PersoneroEnabled,
		ContralorEnabled: p.ContralorEnabled,
		GradeRepEnabled:  p.GradeRepEnabled,
		GroupRepEnabled:  p.GroupRepEnabled,
		BlankVoteAllowed: p.BlankVoteAllowed,

		Phase:     p.Phase,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

func TransformElectionFromStorage(e *storage.Election) ElectionResponse {
	return ElectionResponse{
		ID:        e.ID,
		ProcessID: e.ProcessID,
		Office:    e.Office,
		GradeID:   e.GradeID,
		GroupID:   e.GroupID,
		Active:    e.Active,
	}
}
