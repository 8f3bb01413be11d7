// Package reports turns already-tabulated election results and
// participation aggregates into printable documents. It is a pure
// read-side consumer: it lays out numbers it is handed and never
// recomputes a tally.
package reports

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// referenceAlphabet is used for the short reference code stamped on every
// generated document.
const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReference generates the document reference code.
func NewReference() (string, error) {
	return gonanoid.Generate(referenceAlphabet, 8)
}

// ResultRow is one already-tabulated row of an election, resolved to a
// printable label. Blank-vote rows carry the Blank flag.
type ResultRow struct {
	Label      string
	Blank      bool
	Votes      int
	Percentage float64
	Rank       int
	Winner     bool
}

// ElectionSummary is the printable view of one election's results.
type ElectionSummary struct {
	Office     string
	Scope      string
	TotalVotes int
	Rows       []ResultRow
}

// TallyCertificate is the printable record of a closed process: every
// election's final numbers under one reference code.
type TallyCertificate struct {
	Reference     string
	ProcessName   string
	InstitutionID string
	AcademicYear  int
	GeneratedAt   time.Time
	Elections     []ElectionSummary
}

// ElectionReport is the printable view of a single election.
type ElectionReport struct {
	Reference   string
	ProcessName string
	GeneratedAt time.Time
	Election    ElectionSummary
}

// GradeParticipation is one per-grade turnout line.
type GradeParticipation struct {
	GradeName string
	Eligible  int64
	Voters    int64
	Rate      float64
}

// ParticipationReport is the printable turnout summary of a process.
type ParticipationReport struct {
	Reference   string
	ProcessName string
	GeneratedAt time.Time
	Eligible    int64
	Voters      int64
	Rate        float64
	ByGrade     []GradeParticipation
}

// Renderer lays documents out. Implementations own formatting only; all
// numbers arrive precomputed.
type Renderer interface {
	ContentType() string
	RenderTallyCertificate(certificate *TallyCertificate) ([]byte, error)
	RenderElectionReport(report *ElectionReport) ([]byte, error)
	RenderParticipationReport(report *ParticipationReport) ([]byte, error)
}
