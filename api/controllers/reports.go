package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lcardenas7/Edusyn-sub000/api/models"
	"github.com/lcardenas7/Edusyn-sub000/api/transport"
	"github.com/lcardenas7/Edusyn-sub000/logging"
	"github.com/lcardenas7/Edusyn-sub000/reports"
	"github.com/lcardenas7/Edusyn-sub000/storage"
)

// ReportsController assembles printable report payloads from tabulated
// results and hands them to a renderer. Rendering failures are document
// errors only and never touch stored results.
type ReportsController struct {
	processes   storage.ProcessStorage
	elections   storage.ElectionStorage
	candidates  storage.CandidateStorage
	results     storage.ResultStorage
	votes       storage.VoteStorage
	enrollments storage.EnrollmentStorage
	renderer    reports.Renderer
}

func NewReportsController(
	processes storage.ProcessStorage,
	elections storage.ElectionStorage,
	candidates storage.CandidateStorage,
	results storage.ResultStorage,
	votes storage.VoteStorage,
	enrollments storage.EnrollmentStorage,
	renderer reports.Renderer,
) *ReportsController {
	return &ReportsController{
		processes:   processes,
		elections:   elections,
		candidates:  candidates,
		results:     results,
		votes:       votes,
		enrollments: enrollments,
		renderer:    renderer,
	}
}

func (c *ReportsController) RegisterRoutes(engine *gin.Engine) {
	admin := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	admin.GET("/processes/:id/reports/tally", c.tallyCertificate)
	admin.GET("/processes/:id/reports/participation", c.participationReport)
	admin.GET("/elections/:id/reports/results", c.electionReport)
}

// @Security AdminToken
// tallyCertificate godoc
// @Summary Generate the printable tally certificate of a process
// @Tags reports
// @Produce plain
// @Param id path string true "Process ID"
// @Success 200 {string} string "Rendered document"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse "Document generation failed"
// @Router /api/admin/processes/{id}/reports/tally [get]
func (c *ReportsController) tallyCertificate(g *gin.Context) {
	process, ok := c.loadProcess(g)
	if !ok {
		return
	}

	elections, err := c.elections.GetByProcess(g.Request.Context(), process.ID)
	if err != nil {
		logging.Log.Errorf("REPORT: failed to load elections for %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load elections"})
		return
	}

	summaries := make([]reports.ElectionSummary, 0, len(elections))
	for _, e := range elections {
		summary, err := c.electionSummary(g, e)
		if err != nil {
			logging.Log.Errorf("REPORT: failed to load results for election %s: %v", e.ID, err)
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load results"})
			return
		}
		summaries = append(summaries, *summary)
	}

	reference, err := reports.NewReference()
	if err != nil {
		c.renderFailure(g, err)
		return
	}

	document, err := c.renderer.RenderTallyCertificate(&reports.TallyCertificate{
		Reference:     reference,
		ProcessName:   process.Name,
		InstitutionID: process.InstitutionID,
		AcademicYear:  process.AcademicYear,
		GeneratedAt:   time.Now().UTC(),
		Elections:     summaries,
	})
	if err != nil {
		c.renderFailure(g, err)
		return
	}

	g.Data(http.StatusOK, c.renderer.ContentType(), document)
}

// @Security AdminToken
// electionReport godoc
// @Summary Generate the printable results document of one election
// @Tags reports
// @Produce plain
// @Param id path string true "Election ID"
// @Success 200 {string} string "Rendered document"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse "Document generation failed"
// @Router /api/admin/elections/{id}/reports/results [get]
func (c *ReportsController) electionReport(g *gin.Context) {
	electionID := g.Param("id")
	e, err := c.elections.Get(g.Request.Context(), electionID)
	if errors.Is(err, storage.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "election not found"})
		return
	}
	if err != nil {
		logging.Log.Errorf("REPORT: failed to load election %s: %v", electionID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load election"})
		return
	}

	process, err := c.processes.Get(g.Request.Context(), e.ProcessID)
	if err != nil {
		logging.Log.Errorf("REPORT: failed to load process %s: %v", e.ProcessID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load process"})
		return
	}

	summary, err := c.electionSummary(g, e)
	if err != nil {
		logging.Log.Errorf("REPORT: failed to load results for election %s: %v", e.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load results"})
		return
	}

	reference, err := reports.NewReference()
	if err != nil {
		c.renderFailure(g, err)
		return
	}

	document, err := c.renderer.RenderElectionReport(&reports.ElectionReport{
		Reference:   reference,
		ProcessName: process.Name,
		GeneratedAt: time.Now().UTC(),
		Election:    *summary,
	})
	if err != nil {
		c.renderFailure(g, err)
		return
	}

	g.Data(http.StatusOK, c.renderer.ContentType(), document)
}

// @Security AdminToken
// participationReport godoc
// @Summary Generate the printable participation report of a process
// @Tags reports
// @Produce plain
// @Param id path string true "Process ID"
// @Success 200 {string} string "Rendered document"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse "Document generation failed"
// @Router /api/admin/processes/{id}/reports/participation [get]
func (c *ReportsController) participationReport(g *gin.Context) {
	process, ok := c.loadProcess(g)
	if !ok {
		return
	}

	eligible, err := c.enrollments.CountActive(g.Request.Context(), process.InstitutionID, process.AcademicYear)
	if err != nil {
		logging.Log.Errorf("REPORT: failed to count enrollments for %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not compute statistics"})
		return
	}
	voters, err := c.votes.CountDistinctVoters(g.Request.Context(), process.ID)
	if err != nil {
		logging.Log.Errorf("REPORT: failed to count voters for %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not compute statistics"})
		return
	}
	headcounts, err := c.enrollments.HeadcountByGrade(g.Request.Context(), process.InstitutionID, process.AcademicYear)
	if err != nil {
		logging.Log.Errorf("REPORT: failed to load headcounts for %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not compute statistics"})
		return
	}
	votersByGrade, err := c.votes.CountDistinctVotersByGrade(g.Request.Context(), process.ID)
	if err != nil {
		logging.Log.Errorf("REPORT: failed to load voters by grade for %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not compute statistics"})
		return
	}

	byGrade := make([]reports.GradeParticipation, 0, len(headcounts))
	for _, h := range headcounts {
		if h.Enrolled == 0 {
			continue
		}
		byGrade = append(byGrade, reports.GradeParticipation{
			GradeName: h.GradeName,
			Eligible:  h.Enrolled,
			Voters:    votersByGrade[h.GradeID],
			Rate:      participationRate(votersByGrade[h.GradeID], h.Enrolled),
		})
	}

	reference, err := reports.NewReference()
	if err != nil {
		c.renderFailure(g, err)
		return
	}

	document, err := c.renderer.RenderParticipationReport(&reports.ParticipationReport{
		Reference:   reference,
		ProcessName: process.Name,
		GeneratedAt: time.Now().UTC(),
		Eligible:    eligible,
		Voters:      voters,
		Rate:        participationRate(voters, eligible),
		ByGrade:     byGrade,
	})
	if err != nil {
		c.renderFailure(g, err)
		return
	}

	g.Data(http.StatusOK, c.renderer.ContentType(), document)
}

// electionSummary resolves the stored result rows of an election into a
// printable summary, labelling candidate rows by ballot number and person.
func (c *ReportsController) electionSummary(g *gin.Context, e *storage.Election) (*reports.ElectionSummary, error) {
	rows, err := c.results.GetByElection(g.Request.Context(), e.ID)
	if err != nil {
		return nil, err
	}
	candidates, err := c.candidates.GetByElection(g.Request.Context(), e.ID)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string, len(candidates))
	for _, candidate := range candidates {
		labels[candidate.ID] = fmt.Sprintf("#%d %s", candidate.BallotNumber, candidate.PersonID)
	}

	summary := &reports.ElectionSummary{
		Office: e.Office,
		Scope:  electionScope(e),
		Rows:   make([]reports.ResultRow, 0, len(rows)),
	}
	for _, row := range rows {
		label := "Blank votes"
		blank := true
		if row.CandidateID != nil {
			label = labels[*row.CandidateID]
			blank = false
		}
		summary.TotalVotes += row.Votes
		summary.Rows = append(summary.Rows, reports.ResultRow{
			Label:      label,
			Blank:      blank,
			Votes:      row.Votes,
			Percentage: row.Percentage,
			Rank:       row.Rank,
			Winner:     row.Winner,
		})
	}
	return summary, nil
}

func electionScope(e *storage.Election) string {
	if e.GroupID != nil {
		return fmt.Sprintf(" - group %s", *e.GroupID)
	}
	if e.GradeID != nil {
		return fmt.Sprintf(" - grade %s", *e.GradeID)
	}
	return ""
}

func (c *ReportsController) renderFailure(g *gin.Context, err error) {
	logging.Log.Errorf("REPORT: document generation failed: %v", err)
	g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not generate document"})
}

func (c *ReportsController) loadProcess(g *gin.Context) (*storage.ElectionProcess, bool) {
	id := g.Param("id")
	process, err := c.processes.Get(g.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "process not found"})
		return nil, false
	}
	if err != nil {
		logging.Log.Errorf("REPORT: failed to get process %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load process"})
		return nil, false
	}
	return process, true
}
