package reports

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// TextRenderer renders plain-text documents. It is the default renderer;
// richer layouts (PDF, spreadsheets) plug in behind the same interface.
type TextRenderer struct{}

func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *TextRenderer) RenderTallyCertificate(certificate *TallyCertificate) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "TALLY CERTIFICATE %s\n", certificate.Reference)
	fmt.Fprintf(&buf, "%s - academic year %d\n", certificate.ProcessName, certificate.AcademicYear)
	fmt.Fprintf(&buf, "Institution %s\n", certificate.InstitutionID)
	fmt.Fprintf(&buf, "Generated %s\n\n", certificate.GeneratedAt.Format("2006-01-02 15:04 MST"))

	for _, e := range certificate.Elections {
		if err := writeElection(&buf, &e); err != nil {
			return nil, err
		}
		buf.WriteString("\n")
	}

	writeSignatureBlock(&buf)
	return buf.Bytes(), nil
}

func (r *TextRenderer) RenderElectionReport(report *ElectionReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "ELECTION RESULTS %s\n", report.Reference)
	fmt.Fprintf(&buf, "%s\n", report.ProcessName)
	fmt.Fprintf(&buf, "Generated %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	if err := writeElection(&buf, &report.Election); err != nil {
		return nil, err
	}

	writeSignatureBlock(&buf)
	return buf.Bytes(), nil
}

func (r *TextRenderer) RenderParticipationReport(report *ParticipationReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "PARTICIPATION REPORT %s\n", report.Reference)
	fmt.Fprintf(&buf, "%s\n", report.ProcessName)
	fmt.Fprintf(&buf, "Generated %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	fmt.Fprintf(&buf, "Eligible voters: %d\n", report.Eligible)
	fmt.Fprintf(&buf, "Voters:          %d\n", report.Voters)
	fmt.Fprintf(&buf, "Participation:   %.1f%%\n\n", report.Rate)

	if len(report.ByGrade) > 0 {
		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Grade\tEligible\tVoters\tRate")
		for _, grade := range report.ByGrade {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n", grade.GradeName, grade.Eligible, grade.Voters, grade.Rate)
		}
		if err := w.Flush(); err != nil {
			return nil, err
		}
		buf.WriteString("\n")
	}

	writeSignatureBlock(&buf)
	return buf.Bytes(), nil
}

func writeElection(buf *bytes.Buffer, e *ElectionSummary) error {
	fmt.Fprintf(buf, "%s%s (%d votes cast)\n", e.Office, e.Scope, e.TotalVotes)

	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Rank\tCandidate\tVotes\tPercentage\t")
	for _, row := range e.Rows {
		marker := ""
		if row.Winner {
			marker = "WINNER"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.1f%%\t%s\n", row.Rank, row.Label, row.Votes, row.Percentage, marker)
	}
	return w.Flush()
}

func writeSignatureBlock(buf *bytes.Buffer) {
	buf.WriteString("\n\n____________________________\n")
	buf.WriteString("Electoral committee\n")
	buf.WriteString("\n\n____________________________\n")
	buf.WriteString("Institution representative\n")
}
