package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lcardenas7/Edusyn-sub000/api/models"
	"github.com/lcardenas7/Edusyn-sub000/api/transport"
	"github.com/lcardenas7/Edusyn-sub000/election"
	"github.com/lcardenas7/Edusyn-sub000/logging"
	"github.com/lcardenas7/Edusyn-sub000/storage"
)

type CandidateController struct {
	candidates storage.CandidateStorage
	elections  storage.ElectionStorage
	processes  storage.ProcessStorage
}

func NewCandidateController(candidates storage.CandidateStorage, elections storage.ElectionStorage, processes storage.ProcessStorage) *CandidateController {
	return &CandidateController{
		candidates: candidates,
		elections:  elections,
		processes:  processes,
	}
}

func (c *CandidateController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/api/candidates", c.register)
	engine.GET("/api/elections/:id/candidates", c.listByElection)

	admin := engine.Group("/api/admin/candidates", transport.AdminAuthMiddleware())
	admin.POST("/:id/approve", c.approve)
	admin.POST("/:id/reject", c.reject)
}

// register godoc
// @Summary Register a candidacy for an election
// @Description Only accepted while the owning process is in its registration phase. New candidacies start pending.
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body models.RegisterCandidateRequest true "Candidacy"
// @Success 200 {object} models.CandidateResponse
// @Failure 400 {object} models.ErrorResponse "Not in registration phase"
// @Failure 404 {object} models.ErrorResponse "Election not found"
// @Failure 409 {object} models.ErrorResponse "Duplicate candidacy"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/candidates [post]
func (c *CandidateController) register(g *gin.Context) {
	var req models.RegisterCandidateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.ElectionID == "" || req.PersonID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "electionId and personId are required"})
		return
	}

	e, err := c.elections.Get(g.Request.Context(), req.ElectionID)
	if errors.Is(err, storage.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "election not found"})
		return
	}
	if err != nil {
		logging.Log.Errorf("CANDIDATE: failed to load election %s: %v", req.ElectionID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load election"})
		return
	}

	process, err := c.processes.Get(g.Request.Context(), e.ProcessID)
	if err != nil {
		logging.Log.Errorf("CANDIDATE: failed to load process %s: %v", e.ProcessID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load process"})
		return
	}
	if election.Phase(process.Phase) != election.PhaseRegistration {
		logging.Log.Warnf("CANDIDATE: registration rejected for election %s, process in phase %s", e.ID, process.Phase)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "process is not in registration phase"})
		return
	}

	candidate := &storage.Candidate{
		ID:         uuid.NewString(),
		ElectionID: req.ElectionID,
		PersonID:   req.PersonID,
		Slogan:     req.Slogan,
		Proposals:  req.Proposals,
		PhotoURL:   req.PhotoURL,
		Color:      req.Color,
		Status:     storage.CandidateStatusPending,
	}

	if err := c.candidates.Create(g.Request.Context(), candidate); err != nil {
		if errors.Is(err, storage.ErrDuplicateCandidate) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "this person is already registered in this election"})
			return
		}
		logging.Log.Errorf("CANDIDATE: failed to register candidacy: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not register candidacy"})
		return
	}

	logging.Log.Infof("CANDIDATE: registered %s (person %s) in election %s", candidate.ID, candidate.PersonID, candidate.ElectionID)
	g.JSON(http.StatusOK, models.TransformCandidateFromStorage(candidate))
}

// listByElection godoc
// @Summary List the candidates of an election
// @Tags candidates
// @Produce json
// @Param id path string true "Election ID"
// @Success 200 {array} models.CandidateResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/elections/{id}/candidates [get]
func (c *CandidateController) listByElection(g *gin.Context) {
	electionID := g.Param("id")
	if _, err := c.elections.Get(g.Request.Context(), electionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "election not found"})
			return
		}
		logging.Log.Errorf("CANDIDATE: failed to load election %s: %v", electionID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load election"})
		return
	}

	candidates, err := c.candidates.GetByElection(g.Request.Context(), electionID)
	if err != nil {
		logging.Log.Errorf("CANDIDATE: failed to list candidates for %s: %v", electionID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not list candidates"})
		return
	}

	responses := make([]models.CandidateResponse, 0, len(candidates))
	for _, candidate := range candidates {
		responses = append(responses, models.TransformCandidateFromStorage(candidate))
	}
	g.JSON(http.StatusOK, responses)
}

// guardReviewable checks that a candidacy can still be decided: the candidate
// must exist and the owning process must not have reached a terminal phase.
func (c *CandidateController) guardReviewable(g *gin.Context, id string) bool {
	candidate, err := c.candidates.Get(g.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "candidate not found"})
		return false
	}
	if err != nil {
		logging.Log.Errorf("CANDIDATE: failed to load %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load candidate"})
		return false
	}

	e, err := c.elections.Get(g.Request.Context(), candidate.ElectionID)
	if err != nil {
		logging.Log.Errorf("CANDIDATE: failed to load election %s: %v", candidate.ElectionID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load election"})
		return false
	}
	process, err := c.processes.Get(g.Request.Context(), e.ProcessID)
	if err != nil {
		logging.Log.Errorf("CANDIDATE: failed to load process %s: %v", e.ProcessID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load process"})
		return false
	}
	if election.Phase(process.Phase).Terminal() {
		logging.Log.Warnf("CANDIDATE: refusing to decide %s, process %s is %s", id, process.ID, process.Phase)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "process is already closed or cancelled"})
		return false
	}
	return true
}

// @Security AdminToken
// approve godoc
// @Summary Approve a pending candidacy
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.CandidateResponse
// @Failure 400 {object} models.ErrorResponse "Process already closed or cancelled"
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Candidacy already decided"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/candidates/{id}/approve [post]
func (c *CandidateController) approve(g *gin.Context) {
	id := g.Param("id")
	approverID := g.GetHeader("x-voter-id")

	if !c.guardReviewable(g, id) {
		return
	}

	if err := c.candidates.Approve(g.Request.Context(), id, approverID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "candidate not found"})
			return
		}
		if errors.Is(err, storage.ErrCandidateNotPending) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "candidacy has already been decided"})
			return
		}
		logging.Log.Errorf("CANDIDATE: failed to approve %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not approve candidate"})
		return
	}

	candidate, err := c.candidates.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("CANDIDATE: failed to reload %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load candidate"})
		return
	}

	logging.Log.Infof("CANDIDATE: approved %s", id)
	g.JSON(http.StatusOK, models.TransformCandidateFromStorage(candidate))
}

// @Security AdminToken
// reject godoc
// @Summary Reject a pending candidacy with a reason
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param rejection body models.RejectCandidateRequest true "Rejection reason"
// @Success 200 {object} models.CandidateResponse
// @Failure 400 {object} models.ErrorResponse "Missing reason or process already closed"
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Candidacy already decided"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/candidates/{id}/reject [post]
func (c *CandidateController) reject(g *gin.Context) {
	id := g.Param("id")
	approverID := g.GetHeader("x-voter-id")

	var req models.RejectCandidateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Reason == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "a rejection reason is required"})
		return
	}

	if !c.guardReviewable(g, id) {
		return
	}

	if err := c.candidates.Reject(g.Request.Context(), id, approverID, req.Reason); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "candidate not found"})
			return
		}
		if errors.Is(err, storage.ErrCandidateNotPending) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "candidacy has already been decided"})
			return
		}
		logging.Log.Errorf("CANDIDATE: failed to reject %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not reject candidate"})
		return
	}

	candidate, err := c.candidates.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("CANDIDATE: failed to reload %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load candidate"})
		return
	}

	logging.Log.Infof("CANDIDATE: rejected %s: %s", id, req.Reason)
	g.JSON(http.StatusOK, models.TransformCandidateFromStorage(candidate))
}
