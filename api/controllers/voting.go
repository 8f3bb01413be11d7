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
	"github.com/lcardenas7/Edusyn-sub000/metrics"
	"github.com/lcardenas7/Edusyn-sub000/storage"
)

type VotingController struct {
	processes   storage.ProcessStorage
	elections   storage.ElectionStorage
	candidates  storage.CandidateStorage
	votes       storage.VoteStorage
	enrollments storage.EnrollmentStorage
}

func NewVotingController(
	processes storage.ProcessStorage,
	elections storage.ElectionStorage,
	candidates storage.CandidateStorage,
	votes storage.VoteStorage,
	enrollments storage.EnrollmentStorage,
) *VotingController {
	return &VotingController{
		processes:   processes,
		elections:   elections,
		candidates:  candidates,
		votes:       votes,
		enrollments: enrollments,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/voting", transport.VoterAuthMiddleware())

	group.GET("/pending", c.pendingElections)
	group.GET("/completed", c.votingStatus)
	group.POST("/votes", c.castVote)
}

// pendingElections godoc
// @Summary List the elections a voter may still vote in
// @Description Empty when the voter has no active enrollment, has voted everywhere, or no process is in its voting phase.
// @Tags voting
// @Produce json
// @Param institutionId query string true "Institution ID"
// @Param x-voter-id header string true "Voter identity"
// @Success 200 {object} models.PendingElectionsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/voting/pending [get]
func (c *VotingController) pendingElections(g *gin.Context) {
	voterID := g.GetString(transport.VoterKey)
	institutionID := g.Query("institutionId")
	if institutionID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "institutionId is required"})
		return
	}

	pending, _, err := c.resolvePending(g, institutionID, voterID)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to resolve pending elections for %s: %v", voterID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not resolve pending elections"})
		return
	}

	g.JSON(http.StatusOK, models.PendingElectionsResponse{VoterID: voterID, Elections: pending})
}

// votingStatus godoc
// @Summary Report whether a voter has completed voting
// @Tags voting
// @Produce json
// @Param institutionId query string true "Institution ID"
// @Param x-voter-id header string true "Voter identity"
// @Success 200 {object} models.VotingStatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/voting/completed [get]
func (c *VotingController) votingStatus(g *gin.Context) {
	voterID := g.GetString(transport.VoterKey)
	institutionID := g.Query("institutionId")
	if institutionID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "institutionId is required"})
		return
	}

	pending, _, err := c.resolvePending(g, institutionID, voterID)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to resolve voting status for %s: %v", voterID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not resolve voting status"})
		return
	}

	g.JSON(http.StatusOK, models.VotingStatusResponse{
		VoterID:   voterID,
		Completed: len(pending) == 0,
		Pending:   len(pending),
	})
}

// resolvePending computes the voter's pending election set for the
// institution's currently-voting process. A nil process or one outside the
// voting phase yields an empty set, as does a voter without an active
// enrollment.
func (c *VotingController) resolvePending(g *gin.Context, institutionID, voterID string) ([]models.ElectionResponse, *storage.ElectionProcess, error) {
	none := make([]models.ElectionResponse, 0)

	process, err := c.processes.GetCurrent(g.Request.Context(), institutionID)
	if err != nil {
		return nil, nil, err
	}
	if process == nil || election.Phase(process.Phase) != election.PhaseVoting {
		return none, process, nil
	}

	enrollment, err := c.enrollments.ActiveEnrollment(g.Request.Context(), voterID, institutionID, process.AcademicYear)
	if err != nil {
		return nil, nil, err
	}

	elections, err := c.elections.GetByProcess(g.Request.Context(), process.ID)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]*storage.Election, len(elections))
	refs := make([]election.Ref, 0, len(elections))
	for _, e := range elections {
		if !e.Active {
			continue
		}
		byID[e.ID] = e
		refs = append(refs, electionRef(e))
	}

	eligible := election.EligibleElections(refs, enrollmentRef(enrollment))

	ids := make([]string, 0, len(eligible))
	for _, e := range eligible {
		ids = append(ids, e.ID)
	}
	voted, err := c.votes.VotedElections(g.Request.Context(), voterID, ids)
	if err != nil {
		return nil, nil, err
	}

	responses := none
	for _, ref := range election.PendingElections(eligible, voted) {
		responses = append(responses, models.TransformElectionFromStorage(byID[ref.ID]))
	}
	return responses, process, nil
}

// castVote godoc
// @Summary Cast one ballot in an election
// @Description A vote is final: there is no update or retraction. Blank votes are only accepted when the process allows them.
// @Tags voting
// @Accept json
// @Produce json
// @Param x-voter-id header string true "Voter identity"
// @Param vote body models.CastVoteRequest true "Ballot"
// @Success 200 {object} models.CastVoteResponse
// @Failure 400 {object} models.ErrorResponse "Not in voting phase, invalid candidate or blank disallowed"
// @Failure 404 {object} models.ErrorResponse "Election not found"
// @Failure 409 {object} models.ErrorResponse "Voter already voted in this election"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/voting/votes [post]
func (c *VotingController) castVote(g *gin.Context) {
	voterID := g.GetString(transport.VoterKey)

	var req models.CastVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.ElectionID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "electionId is required"})
		return
	}

	e, err := c.elections.Get(g.Request.Context(), req.ElectionID)
	if errors.Is(err, storage.ErrNotFound) {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "election not found"})
		return
	}
	if err != nil {
		logging.Log.Errorf("VOTE: failed to load election %s: %v", req.ElectionID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load election"})
		return
	}
	if !e.Active {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "election is not active"})
		return
	}

	process, err := c.processes.Get(g.Request.Context(), e.ProcessID)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to load process %s: %v", e.ProcessID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load process"})
		return
	}
	if election.Phase(process.Phase) != election.PhaseVoting {
		logging.Log.Warnf("VOTE: rejected vote for election %s, process in phase %s", e.ID, process.Phase)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "process is not in voting phase"})
		return
	}

	enrollment, err := c.enrollments.ActiveEnrollment(g.Request.Context(), voterID, process.InstitutionID, process.AcademicYear)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to resolve enrollment for %s: %v", voterID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not resolve enrollment"})
		return
	}
	if len(election.EligibleElections([]election.Ref{electionRef(e)}, enrollmentRef(enrollment))) == 0 {
		logging.Log.Warnf("VOTE: voter %s is not eligible for election %s", voterID, e.ID)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "you are not eligible to vote in this election"})
		return
	}

	if req.CandidateID == nil {
		if !process.BlankVoteAllowed {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "blank votes are not allowed in this process"})
			return
		}
	} else {
		candidate, err := c.candidates.Get(g.Request.Context(), *req.CandidateID)
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "candidate does not exist"})
			return
		}
		if err != nil {
			logging.Log.Errorf("VOTE: failed to load candidate %s: %v", *req.CandidateID, err)
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load candidate"})
			return
		}
		if candidate.ElectionID != e.ID {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "candidate does not belong to this election"})
			return
		}
		if candidate.Status != storage.CandidateStatusApproved {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "candidate is not approved"})
			return
		}
	}

	vote := &storage.Vote{
		ID:          uuid.NewString(),
		ElectionID:  e.ID,
		VoterID:     voterID,
		CandidateID: req.CandidateID,
	}

	if err := c.votes.Create(g.Request.Context(), vote); err != nil {
		if errors.Is(err, storage.ErrDuplicateVote) {
			metrics.VoteConflicts.Inc()
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "you have already voted in this election"})
			return
		}
		logging.Log.Errorf("VOTE: failed to record vote: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not record vote"})
		return
	}

	metrics.VotesCast.Inc()
	logging.Log.Infof("VOTE: recorded vote in election %s", e.ID)
	g.JSON(http.StatusOK, models.CastVoteResponse{Message: "vote recorded", ElectionID: e.ID})
}

func electionRef(e *storage.Election) election.Ref {
	ref := election.Ref{ID: e.ID, Office: election.OfficeType(e.Office)}
	if e.GradeID != nil {
		ref.GradeID = *e.GradeID
	}
	if e.GroupID != nil {
		ref.GroupID = *e.GroupID
	}
	return ref
}

func enrollmentRef(enrollment *storage.ActiveEnrollment) *election.EnrollmentRef {
	if enrollment == nil {
		return nil
	}
	return &election.EnrollmentRef{GroupID: enrollment.GroupID, GradeID: enrollment.GradeID}
}
