package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lcardenas7/Edusyn-sub000/api/models"
	"github.com/lcardenas7/Edusyn-sub000/api/transport"
	"github.com/lcardenas7/Edusyn-sub000/logging"
	"github.com/lcardenas7/Edusyn-sub000/storage"
)

type ResultsController struct {
	processes   storage.ProcessStorage
	elections   storage.ElectionStorage
	results     storage.ResultStorage
	votes       storage.VoteStorage
	enrollments storage.EnrollmentStorage
}

func NewResultsController(
	processes storage.ProcessStorage,
	elections storage.ElectionStorage,
	results storage.ResultStorage,
	votes storage.VoteStorage,
	enrollments storage.EnrollmentStorage,
) *ResultsController {
	return &ResultsController{
		processes:   processes,
		elections:   elections,
		results:     results,
		votes:       votes,
		enrollments: enrollments,
	}
}

func (c *ResultsController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/elections/:id/results", c.electionResults)
	engine.GET("/api/processes/:id/results", c.processResults)

	admin := engine.Group("/api/admin/processes", transport.AdminAuthMiddleware())
	admin.GET("/:id/stats", c.participationStats)
}

// electionResults godoc
// @Summary Get the tabulated results of one election
// @Tags results
// @Produce json
// @Param id path string true "Election ID"
// @Success 200 {object} models.ElectionResultsResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/elections/{id}/results [get]
func (c *ResultsController) electionResults(g *gin.Context) {
	electionID := g.Param("id")
	e, err := c.elections.Get(g.Request.Context(), electionID)
	if errors.Is(err, storage.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "election not found"})
		return
	}
	if err != nil {
		logging.Log.Errorf("RESULT: failed to load election %s: %v", electionID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load election"})
		return
	}

	rows, err := c.results.GetByElection(g.Request.Context(), electionID)
	if err != nil {
		logging.Log.Errorf("RESULT: failed to load results for %s: %v", electionID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load results"})
		return
	}

	g.JSON(http.StatusOK, buildElectionResults(e, rows))
}

// processResults godoc
// @Summary Get the tabulated results of every election of a process
// @Tags results
// @Produce json
// @Param id path string true "Process ID"
// @Success 200 {object} models.ProcessResultsResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/processes/{id}/results [get]
func (c *ResultsController) processResults(g *gin.Context) {
	processID := g.Param("id")
	if _, err := c.processes.Get(g.Request.Context(), processID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "process not found"})
			return
		}
		logging.Log.Errorf("RESULT: failed to load process %s: %v", processID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load process"})
		return
	}

	elections, err := c.elections.GetByProcess(g.Request.Context(), processID)
	if err != nil {
		logging.Log.Errorf("RESULT: failed to load elections for %s: %v", processID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load elections"})
		return
	}

	allRows, err := c.results.GetByProcess(g.Request.Context(), processID)
	if err != nil {
		logging.Log.Errorf("RESULT: failed to load results for process %s: %v", processID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load results"})
		return
	}

	byElection := make(map[string][]*storage.ElectionResult)
	for _, row := range allRows {
		byElection[row.ElectionID] = append(byElection[row.ElectionID], row)
	}

	response := models.ProcessResultsResponse{
		ProcessID: processID,
		Elections: make([]models.ElectionResultsResponse, 0, len(elections)),
	}
	for _, e := range elections {
		response.Elections = append(response.Elections, buildElectionResults(e, byElection[e.ID]))
	}

	g.JSON(http.StatusOK, response)
}

// @Security AdminToken
// participationStats godoc
// @Summary Voting and participation statistics of a process
// @Tags results
// @Produce json
// @Param id path string true "Process ID"
// @Success 200 {object} models.ParticipationResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes/{id}/stats [get]
func (c *ResultsController) participationStats(g *gin.Context) {
	processID := g.Param("id")
	process, err := c.processes.Get(g.Request.Context(), processID)
	if errors.Is(err, storage.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "process not found"})
		return
	}
	if err != nil {
		logging.Log.Errorf("RESULT: failed to load process %s: %v", processID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load process"})
		return
	}

	response, err := c.buildParticipation(g, process)
	if err != nil {
		logging.Log.Errorf("RESULT: failed to compute stats for %s: %v", processID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not compute statistics"})
		return
	}

	g.JSON(http.StatusOK, response)
}

func (c *ResultsController) buildParticipation(g *gin.Context, process *storage.ElectionProcess) (*models.ParticipationResponse, error) {
	eligible, err := c.enrollments.CountActive(g.Request.Context(), process.InstitutionID, process.AcademicYear)
	if err != nil {
		return nil, err
	}
	voters, err := c.votes.CountDistinctVoters(g.Request.Context(), process.ID)
	if err != nil {
		return nil, err
	}

	headcounts, err := c.enrollments.HeadcountByGrade(g.Request.Context(), process.InstitutionID, process.AcademicYear)
	if err != nil {
		return nil, err
	}
	votersByGrade, err := c.votes.CountDistinctVotersByGrade(g.Request.Context(), process.ID)
	if err != nil {
		return nil, err
	}

	response := &models.ParticipationResponse{
		VotingStatsResponse: models.VotingStatsResponse{
			ProcessID:         process.ID,
			EligibleVoters:    eligible,
			Voters:            voters,
			ParticipationRate: participationRate(voters, eligible),
		},
		ByGrade: make([]models.GradeParticipationResponse, 0, len(headcounts)),
	}

	// Grades with zero eligible voters are omitted.
	for _, h := range headcounts {
		if h.Enrolled == 0 {
			continue
		}
		response.ByGrade = append(response.ByGrade, models.GradeParticipationResponse{
			GradeID:           h.GradeID,
			GradeName:         h.GradeName,
			EligibleVoters:    h.Enrolled,
			Voters:            votersByGrade[h.GradeID],
			ParticipationRate: participationRate(votersByGrade[h.GradeID], h.Enrolled),
		})
	}
	return response, nil
}

func participationRate(voters, eligible int64) float64 {
	if eligible == 0 {
		return 0
	}
	return models.RoundPercentage(float64(voters) / float64(eligible) * 100)
}

func buildElectionResults(e *storage.Election, rows []*storage.ElectionResult) models.ElectionResultsResponse {
	response := models.ElectionResultsResponse{
		ElectionID: e.ID,
		Office:     e.Office,
		Rows:       make([]models.ElectionResultRow, 0, len(rows)),
	}
	for _, row := range rows {
		response.TotalVotes += row.Votes
		response.ComputedAt = row.ComputedAt
		response.Rows = append(response.Rows, models.TransformResultFromStorage(row))
	}
	return response
}
