package adoptions_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"pet-adoption-workflow/internal/adapters/storage/memory"
	"pet-adoption-workflow/internal/domain/adoptions"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	mu sync.Mutex
	n  int
}

func (o *countingObserver) Transition(string, int64, workflow.Status, workflow.Status) {
	o.mu.Lock()
	o.n++
	o.mu.Unlock()
}

func newService(t *testing.T, machine workflow.Machine, obs workflow.Observer) (*adoptions.Service, *memory.DB) {
	t.Helper()
	db := memory.NewDB()
	require.NoError(t, db.SeedPets(context.Background(), []pets.Pet{
		{ID: 1, Name: "Max", Type: "dog"},
		{ID: 2, Name: "Bella", Type: "cat"},
	}))
	return adoptions.NewService(memory.NewAdoptionsStore(db), adoptions.Options{Machine: machine, Observer: obs}), db
}

func TestCreate_SnapshotsPetName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, workflow.Machine{}, nil)

	req, err := svc.Create(ctx, 2, "dave")
	require.NoError(t, err)
	assert.NotZero(t, req.ID)
	assert.Equal(t, int64(2), req.PetID)
	assert.Equal(t, "Bella", req.PetName)
	assert.Equal(t, "dave", req.Username)
	assert.Equal(t, workflow.StatusPending, req.Status)
	assert.Equal(t, req.CreatedAt, req.UpdatedAt)
}

func TestCreate_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, workflow.Machine{}, nil)

	_, err := svc.Create(ctx, 0, "dave")
	assert.ErrorIs(t, err, workflow.ErrValidation)

	_, err = svc.Create(ctx, 1, "  ")
	assert.ErrorIs(t, err, workflow.ErrValidation)

	_, err = svc.Create(ctx, 99, "dave")
	assert.ErrorIs(t, err, workflow.ErrNotFound)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, workflow.Machine{}, nil)

	a, err := svc.Create(ctx, 1, "dave")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "erin")
	require.NoError(t, err)
	b, err := svc.Create(ctx, 2, "dave")
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, "dave")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, a.ID, mine[0].ID)
	assert.Equal(t, b.ID, mine[1].ID)

	none, err := svc.ListForUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.ListForUser(ctx, "")
	assert.ErrorIs(t, err, workflow.ErrValidation)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateStatus_ApproveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	obs := &countingObserver{}
	svc, _ := newService(t, workflow.Machine{}, obs)

	req, err := svc.Create(ctx, 1, "dave")
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, req.ID, "approve", nil)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, got.Status)

	again, err := svc.UpdateStatus(ctx, req.ID, "APPROVE", nil)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, again.Status)
	assert.Equal(t, got.UpdatedAt, again.UpdatedAt)
	assert.Equal(t, 1, obs.n)
}

func TestUpdateStatus_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, workflow.Machine{}, nil)

	req, err := svc.Create(ctx, 1, "dave")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, req.ID, "maybe", nil)
	assert.ErrorIs(t, err, workflow.ErrValidation)

	_, err = svc.UpdateStatus(ctx, 0, "approve", nil)
	assert.ErrorIs(t, err, workflow.ErrValidation)

	_, err = svc.UpdateStatus(ctx, 999, "approve", nil)
	assert.ErrorIs(t, err, workflow.ErrNotFound)

	rejected := workflow.StatusRejected
	_, err = svc.UpdateStatus(ctx, req.ID, "approve", &rejected)
	assert.ErrorIs(t, err, workflow.ErrConflict)

	_, err = svc.UpdateStatus(ctx, req.ID, "reject", nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, req.ID, "approve", nil)
	assert.ErrorIs(t, err, workflow.ErrConflict)

	mine, err := svc.ListForUser(ctx, "dave")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, workflow.StatusRejected, mine[0].Status)
}

func TestUpdateStatus_LegacyOverwrite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, workflow.Machine{AllowOverwrite: true}, nil)

	req, err := svc.Create(ctx, 1, "dave")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, req.ID, "reject", nil)
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, req.ID, "approve", nil)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, got.Status)
}

func TestUpdateStatus_ConcurrentOppositeActions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, workflow.Machine{}, nil)

	req, err := svc.Create(ctx, 1, "dave")
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        []workflow.Status
		conflicts int
	)
	for i := 0; i < 10; i++ {
		action := "approve"
		if i%2 == 1 {
			action = "reject"
		}
		wg.Add(1)
		go func(action string) {
			defer wg.Done()
			out, err := svc.UpdateStatus(ctx, req.ID, action, nil)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok = append(ok, out.Status)
			case errors.Is(err, workflow.ErrConflict):
				conflicts++
			}
		}(action)
	}
	wg.Wait()

	// todas las respuestas exitosas coinciden con el único estado final
	require.NotEmpty(t, ok)
	for _, s := range ok {
		assert.Equal(t, ok[0], s)
	}
	assert.Equal(t, 10, len(ok)+conflicts)

	mine, err := svc.ListForUser(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, ok[0], mine[0].Status)
}
