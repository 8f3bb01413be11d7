package election

import (
	"sort"
	"time"
)

// Ballot is one cast vote as the tabulator sees it. A nil CandidateID is a
// blank vote.
type Ballot struct {
	CandidateID *string
}

// CandidateRef identifies a candidate for tabulation purposes. RegisteredAt
// is the tie-break key: on equal vote counts the earlier candidacy ranks
// first, with ID as the final total-order key.
type CandidateRef struct {
	ID           string
	RegisteredAt time.Time
}

// Result is one tabulated row. A nil CandidateID is the blank-vote row.
type Result struct {
	CandidateID *string
	Votes       int
	Percentage  float64
	Rank        int
	Winner      bool
}

// Tabulate aggregates the ballots of a single election into ranked,
// percentage-annotated rows. Every known candidate gets a row even with
// zero votes; a blank row is added only when at least one blank ballot was
// cast. The winner is the rank-1 row when it is a candidate row and at
// least one ballot was cast; a blank-vote plurality produces no winner.
//
// Tabulate is a pure function: running it twice over the same inputs yields
// identical rows.
func Tabulate(ballots []Ballot, candidates []CandidateRef) []Result {
	counts := make(map[string]int, len(candidates))
	blank := 0
	for _, b := range ballots {
		if b.CandidateID == nil {
			blank++
			continue
		}
		counts[*b.CandidateID]++
	}
	total := len(ballots)

	ordered := make([]CandidateRef, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].RegisteredAt.Equal(ordered[j].RegisteredAt) {
			return ordered[i].RegisteredAt.Before(ordered[j].RegisteredAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	rows := make([]Result, 0, len(ordered)+1)
	for _, c := range ordered {
		id := c.ID
		rows = append(rows, Result{
			CandidateID: &id,
			Votes:       counts[c.ID],
			Percentage:  percentage(counts[c.ID], total),
		})
	}
	if blank > 0 {
		rows = append(rows, Result{
			Votes:      blank,
			Percentage: percentage(blank, total),
		})
	}

	// Stable sort keeps the registration order on ties and leaves the
	// blank row behind any candidate row with the same count.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Votes > rows[j].Votes
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	if len(rows) > 0 && total > 0 && rows[0].CandidateID != nil {
		rows[0].Winner = true
	}

	return rows
}

func percentage(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(votes) / float64(total) * 100
}
