package adminapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption-workflow/internal/adapters/adminapi"
	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/httpclient"
	"pet-adoption-workflow/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{AdminAuth: true}))
	t.Cleanup(ts.Close)
	return ts
}

func submit(t *testing.T, baseURL, username string) int64 {
	t.Helper()
	c, err := httpclient.New(baseURL)
	require.NoError(t, err)

	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "/api/questionnaire", map[string]any{
		"username": username,
		"answers": map[string]string{
			"living_space":      "apartment",
			"activity_level":    "low",
			"maintenance_level": "low",
			"budget":            "medium",
			"pet_type":          "cat",
		},
	}, &out))
	return out.ID
}

func TestClient_QuestionnaireFlow(t *testing.T) {
	ctx := context.Background()
	ts := newServer(t)

	c, err := adminapi.New(adminapi.Options{BaseURL: ts.URL, Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	first := submit(t, ts.URL, "lena")
	second := submit(t, ts.URL, "mike")

	pending, err := c.PendingQuestionnaires(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "lena", pending[0].Username)
	assert.Equal(t, "cat", pending[0].Answers.PetType)
	assert.NotZero(t, pending[0].UserID)

	approval, err := c.ApproveQuestionnaire(ctx, first, []int64{2, 5})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5}, approval.ApprovedPets)
	assert.Equal(t, workflow.StatusApproved, approval.Questionnaire.Status)

	_, err = c.ApproveQuestionnaire(ctx, first, []int64{1})
	assert.ErrorIs(t, err, workflow.ErrNotFound)

	_, err = c.RejectQuestionnaire(ctx, second, "APPROVED")
	assert.ErrorIs(t, err, workflow.ErrConflict)

	rejection, err := c.RejectQuestionnaire(ctx, second, "")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRejected, rejection.Questionnaire.Status)

	pending, err = c.PendingQuestionnaires(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestClient_Adoptions(t *testing.T) {
	ctx := context.Background()
	ts := newServer(t)

	public, err := httpclient.New(ts.URL)
	require.NoError(t, err)
	var created struct {
		RequestID int64 `json:"request_id"`
	}
	require.NoError(t, public.DoJSON(ctx, http.MethodPost, "/api/adoptions", map[string]any{"pet_id": 3, "username": "nora"}, &created))

	c, err := adminapi.New(adminapi.Options{BaseURL: ts.URL, Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	all, err := c.Adoptions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Charlie", all[0].PetName)

	got, err := c.UpdateAdoption(ctx, created.RequestID, "approve", "")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, got.Status)

	_, err = c.UpdateAdoption(ctx, created.RequestID, "reject", "")
	assert.ErrorIs(t, err, workflow.ErrConflict)

	_, err = c.UpdateAdoption(ctx, created.RequestID, "archive", "")
	assert.ErrorIs(t, err, workflow.ErrValidation)
}

func TestClient_BadCredentials(t *testing.T) {
	ts := newServer(t)

	c, err := adminapi.New(adminapi.Options{BaseURL: ts.URL, Username: "admin", Password: "wrong"})
	require.NoError(t, err)

	_, err = c.Adoptions(context.Background())
	var se *httpclient.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
}
