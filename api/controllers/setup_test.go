package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	testutils "github.com/lcardenas7/Edusyn-sub000/api/controllers/testing"
	"github.com/lcardenas7/Edusyn-sub000/api/models"
	"github.com/lcardenas7/Edusyn-sub000/logging"
	"github.com/lcardenas7/Edusyn-sub000/metrics"
	"github.com/lcardenas7/Edusyn-sub000/reports"
	"github.com/lcardenas7/Edusyn-sub000/storage"
)

const testAdminToken = "test-admin-token"

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logging.Log = logrus.New()
	metrics.Bootstrap()
	t.Setenv("ADMIN_TOKEN", testAdminToken)

	db, err := storage.Open(filepath.Join(t.TempDir(), "elections.db"))
	require.NoError(t, err)

	processes := &storage.GormProcessStorage{DB: db}
	elections := &storage.GormElectionStorage{DB: db}
	candidates := &storage.GormCandidateStorage{DB: db}
	votes := &storage.GormVoteStorage{DB: db}
	results := &storage.GormResultStorage{DB: db}
	enrollments := &storage.GormEnrollmentStorage{DB: db}

	gin.SetMode(gin.TestMode)
	r := gin.New()

	NewProcessController(processes, elections, enrollments).RegisterRoutes(r)
	NewCandidateController(candidates, elections, processes).RegisterRoutes(r)
	NewVotingController(processes, elections, candidates, votes, enrollments).RegisterRoutes(r)
	NewResultsController(processes, elections, results, votes, enrollments).RegisterRoutes(r)
	NewReportsController(processes, elections, candidates, results, votes, enrollments, &reports.TextRenderer{}).RegisterRoutes(r)

	return &testEnv{db: db, router: r}
}

func adminHeaders() map[string]string {
	return map[string]string{"x-admin-token": testAdminToken}
}

func voterHeaders(voterID string) map[string]string {
	return map[string]string{"x-voter-id": voterID}
}

// testSchool holds the seeded academic structure of one institution: two
// grades with one group each, plus whatever students the test enrolls.
type testSchool struct {
	institutionID string
	tenth         *storage.Grade
	eleventh      *storage.Grade
	tenthA        *storage.Group
	eleventhA     *storage.Group
}

func seedSchool(t *testing.T, db *gorm.DB, institutionID string) *testSchool {
	t.Helper()

	school := &testSchool{
		institutionID: institutionID,
		tenth:         &storage.Grade{ID: uuid.NewString(), InstitutionID: institutionID, Name: "Décimo", Ordinal: 10, Active: true},
		eleventh:      &storage.Grade{ID: uuid.NewString(), InstitutionID: institutionID, Name: "Once", Ordinal: 11, Active: true},
	}
	school.tenthA = &storage.Group{ID: uuid.NewString(), InstitutionID: institutionID, GradeID: school.tenth.ID, Name: "10A", Active: true}
	school.eleventhA = &storage.Group{ID: uuid.NewString(), InstitutionID: institutionID, GradeID: school.eleventh.ID, Name: "11A", Active: true}

	require.NoError(t, db.Create(school.tenth).Error)
	require.NoError(t, db.Create(school.eleventh).Error)
	require.NoError(t, db.Create(school.tenthA).Error)
	require.NoError(t, db.Create(school.eleventhA).Error)
	return school
}

func (s *testSchool) enroll(t *testing.T, db *gorm.DB, personID string, group *storage.Group) {
	t.Helper()
	require.NoError(t, db.Create(&storage.Enrollment{
		ID:           uuid.NewString(),
		PersonID:     personID,
		GroupID:      group.ID,
		AcademicYear: 2026,
		Status:       storage.EnrollmentStatusActive,
	}).Error)
}

func newCreateProcessRequest(institutionID string) models.CreateProcessRequest {
	now := time.Now().UTC()
	return models.CreateProcessRequest{
		InstitutionID: institutionID,
		AcademicYear:  2026,
		Name:          "Gobierno escolar 2026",
		Registration:  models.TimeWindow{Start: now, End: now.Add(7 * 24 * time.Hour)},
		Campaign:      models.TimeWindow{Start: now.Add(7 * 24 * time.Hour), End: now.Add(14 * 24 * time.Hour)},
		Voting:        models.TimeWindow{Start: now.Add(14 * 24 * time.Hour), End: now.Add(15 * 24 * time.Hour)},

		PersoneroEnabled: true,
		ContralorEnabled: true,
		GradeRepEnabled:  true,
		GroupRepEnabled:  true,
		BlankVoteAllowed: true,
	}
}

func createProcess(t *testing.T, env *testEnv, req models.CreateProcessRequest) models.ProcessResponse {
	t.Helper()
	res := testutils.PerformRequest(env.router, http.MethodPost, "/api/admin/processes", req, adminHeaders())
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var process models.ProcessResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &process))
	return process
}

func listElections(t *testing.T, env *testEnv, processID string) []models.ElectionResponse {
	t.Helper()
	res := testutils.PerformRequest(env.router, http.MethodGet,
		fmt.Sprintf("/api/admin/processes/%s/elections", processID), nil, adminHeaders())
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var elections []models.ElectionResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &elections))
	return elections
}

// advanceTo walks the process through the phase sequence from wherever it
// currently is up to target.
func advanceTo(t *testing.T, env *testEnv, processID string, target string) {
	t.Helper()

	res := testutils.PerformRequest(env.router, http.MethodGet,
		"/api/admin/processes/"+processID, nil, adminHeaders())
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var current models.ProcessResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &current))

	sequence := []string{"draft", "registration", "campaign", "voting"}
	from, to := -1, -1
	for i, phase := range sequence {
		if phase == current.Phase {
			from = i
		}
		if phase == target {
			to = i
		}
	}
	require.GreaterOrEqual(t, from, 0, "process in unexpected phase %s", current.Phase)
	require.GreaterOrEqual(t, to, from, "cannot advance %s back to %s", current.Phase, target)

	for _, phase := range sequence[from+1 : to+1] {
		res := testutils.PerformRequest(env.router, http.MethodPost,
			fmt.Sprintf("/api/admin/processes/%s/advance", processID),
			models.AdvanceProcessRequest{Phase: phase}, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	}
}

func registerCandidate(t *testing.T, env *testEnv, electionID string, personID string) models.CandidateResponse {
	t.Helper()
	res := testutils.PerformRequest(env.router, http.MethodPost, "/api/candidates",
		models.RegisterCandidateRequest{ElectionID: electionID, PersonID: personID, Slogan: "Por un mejor colegio"}, nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var candidate models.CandidateResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &candidate))
	return candidate
}

func approveCandidate(t *testing.T, env *testEnv, candidateID string) {
	t.Helper()
	res := testutils.PerformRequest(env.router, http.MethodPost,
		fmt.Sprintf("/api/admin/candidates/%s/approve", candidateID), nil, adminHeaders())
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
}

func castVote(t *testing.T, env *testEnv, voterID string, electionID string, candidateID *string) *httptest.ResponseRecorder {
	t.Helper()
	return testutils.PerformRequest(env.router, http.MethodPost, "/api/voting/votes",
		models.CastVoteRequest{ElectionID: electionID, CandidateID: candidateID}, voterHeaders(voterID))
}

func mustCastVote(t *testing.T, env *testEnv, voterID string, electionID string, candidateID *string) {
	t.Helper()
	res := castVote(t, env, voterID, electionID, candidateID)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
}

func electionByOffice(t *testing.T, elections []models.ElectionResponse, office string) models.ElectionResponse {
	t.Helper()
	for _, e := range elections {
		if e.Office == office {
			return e
		}
	}
	t.Fatalf("no election with office %s", office)
	return models.ElectionResponse{}
}
