package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lcardenas7/Edusyn-sub000/api/models"
	"github.com/lcardenas7/Edusyn-sub000/api/transport"
	"github.com/lcardenas7/Edusyn-sub000/election"
	"github.com/lcardenas7/Edusyn-sub000/logging"
	"github.com/lcardenas7/Edusyn-sub000/metrics"
	"github.com/lcardenas7/Edusyn-sub000/storage"
)

type ProcessController struct {
	processes   storage.ProcessStorage
	elections   storage.ElectionStorage
	enrollments storage.EnrollmentStorage
}

func NewProcessController(
	processes storage.ProcessStorage,
	elections storage.ElectionStorage,
	enrollments storage.EnrollmentStorage,
) *ProcessController {
	return &ProcessController{
		processes:   processes,
		elections:   elections,
		enrollments: enrollments,
	}
}

func (c *ProcessController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin/processes", transport.AdminAuthMiddleware())

	group.POST("", c.create)
	group.GET("", c.list)
	group.GET("/:id", c.get)
	group.PUT("/:id", c.update)
	group.GET("/:id/elections", c.listElections)
	group.POST("/:id/advance", c.advance)
	group.POST("/:id/close", c.close)
	group.POST("/:id/cancel", c.cancel)
}

// @Security AdminToken
// create godoc
// @Summary Create an election process and generate its election catalog
// @Tags processes
// @Accept json
// @Produce json
// @Param process body models.CreateProcessRequest true "Process configuration"
// @Success 200 {object} models.ProcessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid configuration"
// @Failure 409 {object} models.ErrorResponse "A process already exists for this year"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes [post]
func (c *ProcessController) create(g *gin.Context) {
	var req models.CreateProcessRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if req.InstitutionID == "" || req.Name == "" || req.AcademicYear <= 0 {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "institutionId, name and academicYear are required"})
		return
	}
	for _, w := range []models.TimeWindow{req.Registration, req.Campaign, req.Voting} {
		if !w.Start.Before(w.End) {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "every window must start before it ends"})
			return
		}
	}

	process := &storage.ElectionProcess{
		ID:            uuid.NewString(),
		InstitutionID: req.InstitutionID,
		AcademicYear:  req.AcademicYear,
		Name:          req.Name,
		Description:   req.Description,

		RegistrationStart: req.Registration.Start,
		RegistrationEnd:   req.Registration.End,
		CampaignStart:     req.Campaign.Start,
		CampaignEnd:       req.Campaign.End,
		VotingStart:       req.Voting.Start,
		VotingEnd:         req.Voting.End,

		PersoneroEnabled: req.PersoneroEnabled,
		ContralorEnabled: req.ContralorEnabled,
		GradeRepEnabled:  req.GradeRepEnabled,
		GroupRepEnabled:  req.GroupRepEnabled,
		BlankVoteAllowed: req.BlankVoteAllowed,

		Phase:     string(election.PhaseDraft),
		CreatedBy: g.GetHeader("x-voter-id"),
	}

	elections, err := c.generateCatalog(g, process)
	if err != nil {
		logging.Log.Errorf("PROCESS: failed to generate election catalog: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not generate election catalog"})
		return
	}

	if err := c.processes.Create(g.Request.Context(), process, elections); err != nil {
		if errors.Is(err, storage.ErrDuplicateProcess) {
			logging.Log.Warnf("PROCESS: duplicate process for institution %s year %d", req.InstitutionID, req.AcademicYear)
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "a process already exists for this institution and year"})
			return
		}
		logging.Log.Errorf("PROCESS: failed to create process: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not create process"})
		return
	}

	logging.Log.Infof("PROCESS: created process %s with %d elections", process.ID, len(elections))
	g.JSON(http.StatusOK, models.TransformProcessFromStorage(process))
}

// generateCatalog instantiates the empty seats for a new process from the
// institution's grade and group catalogs.
func (c *ProcessController) generateCatalog(g *gin.Context, process *storage.ElectionProcess) ([]*storage.Election, error) {
	grades, err := c.enrollments.GradesByInstitution(g.Request.Context(), process.InstitutionID)
	if err != nil {
		return nil, err
	}
	groups, err := c.enrollments.GroupsByInstitution(g.Request.Context(), process.InstitutionID)
	if err != nil {
		return nil, err
	}

	gradeRefs := make([]election.GradeRef, 0, len(grades))
	for _, grade := range grades {
		gradeRefs = append(gradeRefs, election.GradeRef{ID: grade.ID, Name: grade.Name})
	}
	groupRefs := make([]election.GroupRef, 0, len(groups))
	for _, group := range groups {
		groupRefs = append(groupRefs, election.GroupRef{ID: group.ID, GradeID: group.GradeID, Name: group.Name, Active: group.Active})
	}

	seats := election.BuildCatalog(election.CatalogConfig{
		Personero:           process.PersoneroEnabled,
		Contralor:           process.ContralorEnabled,
		GradeRepresentative: process.GradeRepEnabled,
		GroupRepresentative: process.GroupRepEnabled,
	}, gradeRefs, groupRefs)

	elections := make([]*storage.Election, 0, len(seats))
	for _, seat := range seats {
		e := &storage.Election{
			ID:        uuid.NewString(),
			ProcessID: process.ID,
			Office:    string(seat.Office),
			Active:    true,
		}
		if seat.GradeID != "" {
			gradeID := seat.GradeID
			e.GradeID = &gradeID
		}
		if seat.GroupID != "" {
			groupID := seat.GroupID
			e.GroupID = &groupID
		}
		elections = append(elections, e)
	}
	return elections, nil
}

// @Security AdminToken
// list godoc
// @Summary List election processes of an institution
// @Tags processes
// @Produce json
// @Param institutionId query string true "Institution ID"
// @Success 200 {array} models.ProcessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes [get]
func (c *ProcessController) list(g *gin.Context) {
	institutionID := g.Query("institutionId")
	if institutionID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "institutionId is required"})
		return
	}

	processes, err := c.processes.GetByInstitution(g.Request.Context(), institutionID)
	if err != nil {
		logging.Log.Errorf("PROCESS: failed to list processes: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not list processes"})
		return
	}

	responses := make([]models.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		responses = append(responses, models.TransformProcessFromStorage(p))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// get godoc
// @Summary Get one election process
// @Tags processes
// @Produce json
// @Param id path string true "Process ID"
// @Success 200 {object} models.ProcessResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes/{id} [get]
func (c *ProcessController) get(g *gin.Context) {
	process, ok := c.loadProcess(g)
	if !ok {
		return
	}
	g.JSON(http.StatusOK, models.TransformProcessFromStorage(process))
}

// @Security AdminToken
// update godoc
// @Summary Edit the configuration of a draft process
// @Description Name, description, windows and the blank-vote flag can change while the process is in draft. Office flags are fixed at creation because the catalog was generated from them.
// @Tags processes
// @Accept json
// @Produce json
// @Param id path string true "Process ID"
// @Param process body models.UpdateProcessRequest true "Updated configuration"
// @Success 200 {object} models.ProcessResponse
// @Failure 400 {object} models.ErrorResponse "Process is no longer in draft"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes/{id} [put]
func (c *ProcessController) update(g *gin.Context) {
	process, ok := c.loadProcess(g)
	if !ok {
		return
	}

	if election.Phase(process.Phase) != election.PhaseDraft {
		logging.Log.Warnf("PROCESS: refusing to edit %s in phase %s", process.ID, process.Phase)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "process configuration is read-only after draft"})
		return
	}

	var req models.UpdateProcessRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Name == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return
	}
	for _, w := range []models.TimeWindow{req.Registration, req.Campaign, req.Voting} {
		if !w.Start.Before(w.End) {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "every window must start before it ends"})
			return
		}
	}

	process.Name = req.Name
	process.Description = req.Description
	process.RegistrationStart = req.Registration.Start
	process.RegistrationEnd = req.Registration.End
	process.CampaignStart = req.Campaign.Start
	process.CampaignEnd = req.Campaign.End
	process.VotingStart = req.Voting.Start
	process.VotingEnd = req.Voting.End
	process.BlankVoteAllowed = req.BlankVoteAllowed

	if err := c.processes.Update(g.Request.Context(), process); err != nil {
		logging.Log.Errorf("PROCESS: failed to update %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not update process"})
		return
	}

	logging.Log.Infof("PROCESS: updated configuration of %s", process.ID)
	g.JSON(http.StatusOK, models.TransformProcessFromStorage(process))
}

// @Security AdminToken
// listElections godoc
// @Summary List the election catalog of a process
// @Tags processes
// @Produce json
// @Param id path string true "Process ID"
// @Success 200 {array} models.ElectionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes/{id}/elections [get]
func (c *ProcessController) listElections(g *gin.Context) {
	process, ok := c.loadProcess(g)
	if !ok {
		return
	}

	elections, err := c.elections.GetByProcess(g.Request.Context(), process.ID)
	if err != nil {
		logging.Log.Errorf("PROCESS: failed to list elections for %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not list elections"})
		return
	}

	responses := make([]models.ElectionResponse, 0, len(elections))
	for _, e := range elections {
		responses = append(responses, models.TransformElectionFromStorage(e))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// advance godoc
// @Summary Advance a process to the next lifecycle phase
// @Description Only the next phase in sequence is accepted; closing goes through the close operation.
// @Tags processes
// @Accept json
// @Produce json
// @Param id path string true "Process ID"
// @Param transition body models.AdvanceProcessRequest true "Target phase"
// @Success 200 {object} models.ProcessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid transition"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes/{id}/advance [post]
func (c *ProcessController) advance(g *gin.Context) {
	process, ok := c.loadProcess(g)
	if !ok {
		return
	}

	var req models.AdvanceProcessRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	target := election.Phase(req.Phase)
	if !target.Valid() {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown phase"})
		return
	}
	if target == election.PhaseClosed {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "closing requires the close operation"})
		return
	}
	if target == election.PhaseCancelled {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "cancelling requires the cancel operation"})
		return
	}
	if err := election.ValidateTransition(election.Phase(process.Phase), target); err != nil {
		logging.Log.Warnf("PROCESS: invalid transition %s -> %s for %s", process.Phase, target, process.ID)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid phase transition"})
		return
	}

	if err := c.processes.UpdatePhase(g.Request.Context(), process.ID, string(target)); err != nil {
		logging.Log.Errorf("PROCESS: failed to advance %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not advance process"})
		return
	}

	metrics.PhaseTransitions.WithLabelValues(string(target)).Inc()
	logging.Log.Infof("PROCESS: %s advanced %s -> %s", process.ID, process.Phase, target)

	process.Phase = string(target)
	g.JSON(http.StatusOK, models.TransformProcessFromStorage(process))
}

// @Security AdminToken
// close godoc
// @Summary Close a process, tabulating every child election
// @Description Tabulation of all elections and the phase flip commit as one unit of work; any failure leaves the process in voting.
// @Tags processes
// @Produce json
// @Param id path string true "Process ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Process is not in voting phase"
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes/{id}/close [post]
func (c *ProcessController) close(g *gin.Context) {
	process, ok := c.loadProcess(g)
	if !ok {
		return
	}

	if election.Phase(process.Phase) != election.PhaseVoting {
		logging.Log.Warnf("PROCESS: refusing to close %s in phase %s", process.ID, process.Phase)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "process is not in voting phase"})
		return
	}

	elections, err := c.elections.GetByProcess(g.Request.Context(), process.ID)
	if err != nil {
		logging.Log.Errorf("PROCESS: failed to load elections for close of %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not close process"})
		return
	}

	err = c.processes.Close(g.Request.Context(), process.ID,
		string(election.PhaseVoting), string(election.PhaseClosed), time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrPhaseConflict) {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "process is not in voting phase"})
			return
		}
		logging.Log.Errorf("PROCESS: failed to close %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not close process"})
		return
	}

	metrics.TabulationRuns.Add(float64(len(elections)))
	metrics.ProcessesClosed.Inc()
	metrics.PhaseTransitions.WithLabelValues(string(election.PhaseClosed)).Inc()
	logging.Log.Infof("PROCESS: closed %s, tabulated %d elections", process.ID, len(elections))
	g.JSON(http.StatusOK, models.MessageResponse{Message: "process closed"})
}

// @Security AdminToken
// cancel godoc
// @Summary Cancel a process from any non-terminal phase
// @Tags processes
// @Produce json
// @Param id path string true "Process ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/processes/{id}/cancel [post]
func (c *ProcessController) cancel(g *gin.Context) {
	process, ok := c.loadProcess(g)
	if !ok {
		return
	}

	if election.Phase(process.Phase).Terminal() {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "process is already closed or cancelled"})
		return
	}

	if err := c.processes.Cancel(g.Request.Context(), process.ID, string(election.PhaseCancelled)); err != nil {
		logging.Log.Errorf("PROCESS: failed to cancel %s: %v", process.ID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not cancel process"})
		return
	}

	metrics.PhaseTransitions.WithLabelValues(string(election.PhaseCancelled)).Inc()
	logging.Log.Infof("PROCESS: cancelled %s", process.ID)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "process cancelled"})
}

func (c *ProcessController) loadProcess(g *gin.Context) (*storage.ElectionProcess, bool) {
	id := g.Param("id")
	process, err := c.processes.Get(g.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "process not found"})
		return nil, false
	}
	if err != nil {
		logging.Log.Errorf("PROCESS: failed to get process %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load process"})
		return nil, false
	}
	return process, true
}
