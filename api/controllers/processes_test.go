package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutils "github.com/lcardenas7/Edusyn-sub000/api/controllers/testing"
	"github.com/lcardenas7/Edusyn-sub000/api/models"
)

func TestProcessController_Create(t *testing.T) {
	env := setupTestEnv(t)
	school := seedSchool(t, env.db, "school-1")

	t.Run("rejects missing admin token", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/admin/processes",
			newCreateProcessRequest(school.institutionID), nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		req := newCreateProcessRequest(school.institutionID)
		req.Name = ""
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/admin/processes", req, adminHeaders())
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("rejects a window that ends before it starts", func(t *testing.T) {
		req := newCreateProcessRequest(school.institutionID)
		req.Voting.Start, req.Voting.End = req.Voting.End, req.Voting.Start
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/admin/processes", req, adminHeaders())
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("creates the process with its full catalog", func(t *testing.T) {
		process := createProcess(t, env, newCreateProcessRequest(school.institutionID))
		assert.Equal(t, "draft", process.Phase)
		assert.Equal(t, 2026, process.AcademicYear)

		// personero + contralor + 2 grade seats + 2 group seats
		elections := listElections(t, env, process.ID)
		require.Len(t, elections, 6)

		byOffice := make(map[string]int)
		for _, e := range elections {
			byOffice[e.Office]++
			assert.True(t, e.Active)
		}
		assert.Equal(t, 1, byOffice["personero"])
		assert.Equal(t, 1, byOffice["contralor"])
		assert.Equal(t, 2, byOffice["grade_representative"])
		assert.Equal(t, 2, byOffice["group_representative"])

		grade := electionByOffice(t, elections, "grade_representative")
		assert.NotNil(t, grade.GradeID)
		assert.Nil(t, grade.GroupID)

		group := electionByOffice(t, elections, "group_representative")
		assert.NotNil(t, group.GroupID)
	})

	t.Run("rejects a second process for the same year", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/admin/processes",
			newCreateProcessRequest(school.institutionID), adminHeaders())
		assert.Equal(t, http.StatusConflict, res.Code)
	})

	t.Run("only enabled offices generate elections", func(t *testing.T) {
		other := seedSchool(t, env.db, "school-2")
		req := newCreateProcessRequest(other.institutionID)
		req.ContralorEnabled = false
		req.GradeRepEnabled = false
		req.GroupRepEnabled = false

		process := createProcess(t, env, req)
		elections := listElections(t, env, process.ID)
		require.Len(t, elections, 1)
		assert.Equal(t, "personero", elections[0].Office)
	})
}

func TestProcessController_GetAndList(t *testing.T) {
	env := setupTestEnv(t)
	school := seedSchool(t, env.db, "school-1")
	process := createProcess(t, env, newCreateProcessRequest(school.institutionID))

	t.Run("get", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet,
			"/api/admin/processes/"+process.ID, nil, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		var got models.ProcessResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
		assert.Equal(t, process.ID, got.ID)
	})

	t.Run("get unknown process", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet,
			"/api/admin/processes/missing", nil, adminHeaders())
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("list requires institutionId", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/admin/processes", nil, adminHeaders())
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("list by institution", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet,
			"/api/admin/processes?institutionId="+school.institutionID, nil, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		var listed []models.ProcessResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, process.ID, listed[0].ID)
	})
}

func TestProcessController_Update(t *testing.T) {
	env := setupTestEnv(t)
	school := seedSchool(t, env.db, "school-1")
	process := createProcess(t, env, newCreateProcessRequest(school.institutionID))

	newUpdateRequest := func() models.UpdateProcessRequest {
		created := newCreateProcessRequest(school.institutionID)
		return models.UpdateProcessRequest{
			Name:         "Gobierno escolar 2026 (ajustado)",
			Description:  "Calendario corregido",
			Registration: created.Registration,
			Campaign:     created.Campaign,
			Voting:       created.Voting,

			BlankVoteAllowed: false,
		}
	}

	update := func(processID string, req models.UpdateProcessRequest) *httptest.ResponseRecorder {
		return testutils.PerformRequest(env.router, http.MethodPut,
			"/api/admin/processes/"+processID, req, adminHeaders())
	}

	t.Run("requires the admin token", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPut,
			"/api/admin/processes/"+process.ID, newUpdateRequest(), nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("edits a draft process", func(t *testing.T) {
		res := update(process.ID, newUpdateRequest())
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var got models.ProcessResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
		assert.Equal(t, "Gobierno escolar 2026 (ajustado)", got.Name)
		assert.False(t, got.BlankVoteAllowed)
		assert.Equal(t, "draft", got.Phase)
	})

	t.Run("requires a name", func(t *testing.T) {
		req := newUpdateRequest()
		req.Name = ""
		assert.Equal(t, http.StatusBadRequest, update(process.ID, req).Code)
	})

	t.Run("rejects a window that ends before it starts", func(t *testing.T) {
		req := newUpdateRequest()
		req.Voting.Start, req.Voting.End = req.Voting.End, req.Voting.Start
		assert.Equal(t, http.StatusBadRequest, update(process.ID, req).Code)
	})

	t.Run("unknown process", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, update("missing", newUpdateRequest()).Code)
	})

	t.Run("read-only once registration starts", func(t *testing.T) {
		advanceTo(t, env, process.ID, "registration")
		assert.Equal(t, http.StatusBadRequest, update(process.ID, newUpdateRequest()).Code)
	})
}

func TestProcessController_Advance(t *testing.T) {
	env := setupTestEnv(t)
	school := seedSchool(t, env.db, "school-1")

	advance := func(processID string, phase string) int {
		res := testutils.PerformRequest(env.router, http.MethodPost,
			fmt.Sprintf("/api/admin/processes/%s/advance", processID),
			models.AdvanceProcessRequest{Phase: phase}, adminHeaders())
		return res.Code
	}

	process := createProcess(t, env, newCreateProcessRequest(school.institutionID))

	t.Run("rejects an unknown phase", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, advance(process.ID, "tallying"))
	})

	t.Run("rejects skipping a phase", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, advance(process.ID, "voting"))
	})

	t.Run("rejects closed and cancelled targets", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, advance(process.ID, "closed"))
		assert.Equal(t, http.StatusBadRequest, advance(process.ID, "cancelled"))
	})

	t.Run("advances one phase at a time", func(t *testing.T) {
		for _, phase := range []string{"registration", "campaign", "voting"} {
			res := testutils.PerformRequest(env.router, http.MethodPost,
				fmt.Sprintf("/api/admin/processes/%s/advance", process.ID),
				models.AdvanceProcessRequest{Phase: phase}, adminHeaders())
			require.Equal(t, http.StatusOK, res.Code, res.Body.String())

			var got models.ProcessResponse
			require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
			assert.Equal(t, phase, got.Phase)
		}
	})

	t.Run("rejects moving backwards", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, advance(process.ID, "registration"))
	})

	t.Run("unknown process", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, advance("missing", "registration"))
	})
}

func TestProcessController_Cancel(t *testing.T) {
	env := setupTestEnv(t)
	school := seedSchool(t, env.db, "school-1")
	process := createProcess(t, env, newCreateProcessRequest(school.institutionID))

	cancel := func(processID string) int {
		res := testutils.PerformRequest(env.router, http.MethodPost,
			fmt.Sprintf("/api/admin/processes/%s/cancel", processID), nil, adminHeaders())
		return res.Code
	}

	t.Run("cancels a draft process", func(t *testing.T) {
		require.Equal(t, http.StatusOK, cancel(process.ID))

		res := testutils.PerformRequest(env.router, http.MethodGet,
			"/api/admin/processes/"+process.ID, nil, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		var got models.ProcessResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
		assert.Equal(t, "cancelled", got.Phase)
	})

	t.Run("a cancelled process stays cancelled", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, cancel(process.ID))
	})

	t.Run("a new process can replace the cancelled one", func(t *testing.T) {
		replacement := createProcess(t, env, newCreateProcessRequest(school.institutionID))
		assert.NotEqual(t, process.ID, replacement.ID)
	})
}

func TestProcessController_CloseGuards(t *testing.T) {
	env := setupTestEnv(t)
	school := seedSchool(t, env.db, "school-1")
	process := createProcess(t, env, newCreateProcessRequest(school.institutionID))

	closeProcess := func(processID string) int {
		res := testutils.PerformRequest(env.router, http.MethodPost,
			fmt.Sprintf("/api/admin/processes/%s/close", processID), nil, adminHeaders())
		return res.Code
	}

	t.Run("cannot close from draft", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, closeProcess(process.ID))
	})

	t.Run("cannot close from campaign", func(t *testing.T) {
		advanceTo(t, env, process.ID, "campaign")
		assert.Equal(t, http.StatusBadRequest, closeProcess(process.ID))
	})

	t.Run("unknown process", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, closeProcess("missing"))
	})

	t.Run("closes from voting", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodPost,
			fmt.Sprintf("/api/admin/processes/%s/advance", process.ID),
			models.AdvanceProcessRequest{Phase: "voting"}, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		require.Equal(t, http.StatusOK, closeProcess(process.ID))

		got := testutils.PerformRequest(env.router, http.MethodGet,
			"/api/admin/processes/"+process.ID, nil, adminHeaders())
		var stored models.ProcessResponse
		require.NoError(t, json.Unmarshal(got.Body.Bytes(), &stored))
		assert.Equal(t, "closed", stored.Phase)
	})

	t.Run("closing twice fails", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, closeProcess(process.ID))
	})
}
