package recommendations_test

import (
	"context"
	"testing"

	"pet-adoption-workflow/internal/adapters/storage/memory"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/recommendations"
	"pet-adoption-workflow/internal/domain/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var answers = questionnaires.Answers{
	LivingSpace:      "apartment",
	ActivityLevel:    "low",
	MaintenanceLevel: "low",
	Budget:           "medium",
	PetType:          "cat",
}

func setup(t *testing.T) (*questionnaires.Service, *recommendations.Reader) {
	t.Helper()
	db := memory.NewDB()
	require.NoError(t, db.SeedPets(context.Background(), []pets.Pet{
		{ID: 1, Name: "Max", Type: "dog"},
		{ID: 2, Name: "Bella", Type: "cat"},
		{ID: 3, Name: "Charlie", Type: "dog"},
	}))
	return questionnaires.NewService(memory.NewQuestionnairesStore(db), questionnaires.Options{}),
		recommendations.NewReader(memory.NewRecommendationsStore(db))
}

func TestGetCurrent_NoSubmissions(t *testing.T) {
	_, reader := setup(t)

	_, err := reader.GetCurrent(context.Background(), "ghost")
	assert.ErrorIs(t, err, workflow.ErrNotFound)

	_, err = reader.GetCurrent(context.Background(), " ")
	assert.ErrorIs(t, err, workflow.ErrValidation)
}

func TestGetCurrent_PendingReturnsAnswers(t *testing.T) {
	ctx := context.Background()
	svc, reader := setup(t)

	sub, err := svc.Submit(ctx, "carol", answers)
	require.NoError(t, err)

	cur, err := reader.GetCurrent(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, cur.QuestionnaireID)
	assert.Equal(t, workflow.StatusPending, cur.Status)
	require.NotNil(t, cur.Answers)
	assert.Equal(t, answers, *cur.Answers)
	assert.Empty(t, cur.Recommendations)
}

func TestGetCurrent_LatestSubmissionWins(t *testing.T) {
	ctx := context.Background()
	svc, reader := setup(t)

	first, err := svc.Submit(ctx, "carol", answers)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, first.ID, []int64{1})
	require.NoError(t, err)

	second, err := svc.Submit(ctx, "carol", answers)
	require.NoError(t, err)

	cur, err := reader.GetCurrent(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, second.ID, cur.QuestionnaireID)
	assert.Equal(t, workflow.StatusPending, cur.Status)

	_, err = svc.Reject(ctx, second.ID, nil)
	require.NoError(t, err)

	cur, err = reader.GetCurrent(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRejected, cur.Status)
	assert.Nil(t, cur.Answers)
	assert.Zero(t, cur.Count())
}

func TestGetCurrent_ApprovedAccumulatesGrantsInOrder(t *testing.T) {
	ctx := context.Background()
	svc, reader := setup(t)

	first, err := svc.Submit(ctx, "carol", answers)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, first.ID, []int64{3, 1})
	require.NoError(t, err)

	second, err := svc.Submit(ctx, "carol", answers)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, second.ID, []int64{2, 3})
	require.NoError(t, err)

	cur, err := reader.GetCurrent(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, cur.Status)
	require.Equal(t, 4, cur.Count())

	names := make([]string, 0, cur.Count())
	for _, p := range cur.Recommendations {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Charlie", "Max", "Bella", "Charlie"}, names)
}
