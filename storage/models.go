package storage

import "time"

// Candidate approval states.
const (
	CandidateStatusPending  = "pending"
	CandidateStatusApproved = "approved"
	CandidateStatusRejected = "rejected"
)

// Enrollment states. Only active enrollments make a voter eligible.
const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusWithdrawn = "withdrawn"
	EnrollmentStatusPromoted  = "promoted"
)

// ElectionProcess is one institution's election cycle for one academic
// year. At most one non-archived process may exist per (institution, year);
// cancelled processes are archived so a new cycle can replace them.
type ElectionProcess struct {
	ID            string `gorm:"primaryKey;column:id"`
	InstitutionID string `gorm:"column:institution_id;not null;index:idx_processes_institution"`
	AcademicYear  int    `gorm:"column:academic_year;not null"`
	Name          string `gorm:"column:name;not null"`
	Description   string `gorm:"column:description"`

	RegistrationStart time.Time `gorm:"column:registration_start"`
	RegistrationEnd   time.Time `gorm:"column:registration_end"`
	CampaignStart     time.Time `gorm:"column:campaign_start"`
	CampaignEnd       time.Time `gorm:"column:campaign_end"`
	VotingStart       time.Time `gorm:"column:voting_start"`
	VotingEnd         time.Time `gorm:"column:voting_end"`

	PersoneroEnabled bool `gorm:"column:personero_enabled;not null"`
	ContralorEnabled bool `gorm:"column:contralor_enabled;not null"`
	GradeRepEnabled  bool `gorm:"column:grade_rep_enabled;not null"`
	GroupRepEnabled  bool `gorm:"column:group_rep_enabled;not null"`
	BlankVoteAllowed bool `gorm:"column:blank_vote_allowed;not null"`

	Phase     string    `gorm:"column:phase;not null"`
	Archived  bool      `gorm:"column:archived;not null;default:false"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ElectionProcess) TableName() string {
	return "election_processes"
}

// Election is a single contestable seat owned by one process, scoped to
// the institution, one grade or one group depending on its office type.
type Election struct {
	ID        string    `gorm:"primaryKey;column:id"`
	ProcessID string    `gorm:"column:process_id;not null;index:idx_elections_process"`
	Office    string    `gorm:"column:office;not null"`
	GradeID   *string   `gorm:"column:grade_id"`
	GroupID   *string   `gorm:"column:group_id"`
	Active    bool      `gorm:"column:active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Election) TableName() string {
	return "elections"
}

// Candidate is a person's candidacy for one election. The unique index on
// (election_id, person_id) enforces at most one candidacy per person per
// election at the storage level.
type Candidate struct {
	ID              string     `gorm:"primaryKey;column:id"`
	ElectionID      string     `gorm:"column:election_id;not null;uniqueIndex:idx_candidates_election_person,priority:1"`
	PersonID        string     `gorm:"column:person_id;not null;uniqueIndex:idx_candidates_election_person,priority:2"`
	Slogan          string     `gorm:"column:slogan"`
	Proposals       string     `gorm:"column:proposals"`
	PhotoURL        string     `gorm:"column:photo_url"`
	Color           string     `gorm:"column:color"`
	BallotNumber    int        `gorm:"column:ballot_number;not null"`
	Status          string     `gorm:"column:status;not null"`
	RejectionReason string     `gorm:"column:rejection_reason"`
	ApprovedBy      *string    `gorm:"column:approved_by"`
	ApprovedAt      *time.Time `gorm:"column:approved_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// Vote is one immutable ballot. A nil CandidateID is a blank vote. The
// unique index on (election_id, voter_id) is the at-most-one-vote
// guarantee; any application-level duplicate check is defense in depth only.
type Vote struct {
	ID          string    `gorm:"primaryKey;column:id"`
	ElectionID  string    `gorm:"column:election_id;not null;uniqueIndex:idx_votes_election_voter,priority:1"`
	VoterID     string    `gorm:"column:voter_id;not null;uniqueIndex:idx_votes_election_voter,priority:2"`
	CandidateID *string   `gorm:"column:candidate_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Vote) TableName() string {
	return "votes"
}

// ElectionResult is derived state: one row per candidate (or blank) of a
// tabulated election. Rows are replaced wholesale on every tabulation run,
// never edited.
type ElectionResult struct {
	ID          string    `gorm:"primaryKey;column:id"`
	ElectionID  string    `gorm:"column:election_id;not null;index:idx_results_election"`
	CandidateID *string   `gorm:"column:candidate_id"`
	Votes       int       `gorm:"column:votes;not null"`
	Percentage  float64   `gorm:"column:percentage;not null"`
	Rank        int       `gorm:"column:rank;not null"`
	Winner      bool      `gorm:"column:winner;not null"`
	ComputedAt  time.Time `gorm:"column:computed_at"`
}

func (ElectionResult) TableName() string {
	return "election_results"
}

// Grade belongs to one institution. Grade scoping is explicit so one
// institution's catalog cannot leak into another's.
type Grade struct {
	ID            string `gorm:"primaryKey;column:id"`
	InstitutionID string `gorm:"column:institution_id;not null;index:idx_grades_institution"`
	Name          string `gorm:"column:name;not null"`
	Ordinal       int    `gorm:"column:ordinal;not null"`
	Active        bool   `gorm:"column:active;not null;default:true"`
}

func (Grade) TableName() string {
	return "grades"
}

// Group is one class group within a grade.
type Group struct {
	ID            string `gorm:"primaryKey;column:id"`
	InstitutionID string `gorm:"column:institution_id;not null;index:idx_groups_institution"`
	GradeID       string `gorm:"column:grade_id;not null;index:idx_groups_grade"`
	Name          string `gorm:"column:name;not null"`
	Active        bool   `gorm:"column:active;not null;default:true"`
}

func (Group) TableName() string {
	return "groups"
}

// Enrollment registers a student in a group for an academic year. The
// election subsystem only reads enrollments; they are written by the
// academic administration modules.
type Enrollment struct {
	ID           string    `gorm:"primaryKey;column:id"`
	PersonID     string    `gorm:"column:person_id;not null;index:idx_enrollments_person"`
	GroupID      string    `gorm:"column:group_id;not null;index:idx_enrollments_group"`
	AcademicYear int       `gorm:"column:academic_year;not null"`
	Status       string    `gorm:"column:status;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
