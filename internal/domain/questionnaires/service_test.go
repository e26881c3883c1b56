package questionnaires_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"pet-adoption-workflow/internal/adapters/storage/memory"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/recommendations"
	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var answers = questionnaires.Answers{
	LivingSpace:      "house",
	ActivityLevel:    "high",
	MaintenanceLevel: "medium",
	Budget:           "high",
	PetType:          "dog",
}

type transitionRec struct {
	entity   string
	id       int64
	from, to workflow.Status
}

type recordingObserver struct {
	mu  sync.Mutex
	got []transitionRec
}

func (o *recordingObserver) Transition(entity string, id int64, from, to workflow.Status) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.got = append(o.got, transitionRec{entity, id, from, to})
}

func (o *recordingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.got)
}

type fixture struct {
	db     *memory.DB
	svc    *questionnaires.Service
	users  users.Repository
	reader *recommendations.Reader
	obs    *recordingObserver
}

func newFixture(t *testing.T, machine workflow.Machine) fixture {
	t.Helper()

	db := memory.NewDB()
	require.NoError(t, db.SeedPets(context.Background(), []pets.Pet{
		{ID: 1, Name: "Max", Type: "dog"},
		{ID: 3, Name: "Charlie", Type: "dog"},
		{ID: 7, Name: "Nala", Type: "cat"},
		{ID: 9, Name: "Rocky", Type: "dog"},
	}))

	obs := &recordingObserver{}
	return fixture{
		db: db,
		svc: questionnaires.NewService(memory.NewQuestionnairesStore(db), questionnaires.Options{
			Machine:  machine,
			Observer: obs,
		}),
		users:  memory.NewUserRepo(db),
		reader: recommendations.NewReader(memory.NewRecommendationsStore(db)),
		obs:    obs,
	}
}

func TestSubmit_CreatesUserAndPendingRow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	sub, err := f.svc.Submit(ctx, "  alice ", answers)
	require.NoError(t, err)
	assert.NotZero(t, sub.ID)
	assert.Equal(t, "alice", sub.Username)
	assert.Equal(t, workflow.StatusPending, sub.Status)
	assert.False(t, sub.CreatedAt.IsZero())

	u, err := f.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, u.PasswordHash)
	assert.False(t, users.CheckPassword(u.PasswordHash, ""), "placeholder credential must not match an empty password")

	pending, err := f.svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, sub.ID, pending[0].ID)
	assert.Equal(t, u.ID, pending[0].UserID)
	assert.Equal(t, answers, pending[0].Answers)
	assert.Equal(t, workflow.StatusPending, pending[0].Status)
}

func TestSubmit_ReusesExistingUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	_, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)
	first, err := f.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)
	second, err := f.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

func TestSubmit_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	_, err := f.svc.Submit(ctx, "   ", answers)
	assert.ErrorIs(t, err, workflow.ErrValidation)

	missing := answers
	missing.Budget = ""
	_, err = f.svc.Submit(ctx, "bob", missing)
	require.ErrorIs(t, err, workflow.ErrValidation)
	assert.Contains(t, err.Error(), "budget")

	// nada persistido: ni usuario ni envío
	_, err = f.users.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, workflow.ErrNotFound)
	pending, err := f.svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApprove_GrantsPets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	sub, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)

	res, err := f.svc.Approve(ctx, sub.ID, []int64{7, 9})
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, res.Submission.Status)
	assert.Equal(t, []int64{7, 9}, res.PetIDs)

	cur, err := f.reader.GetCurrent(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, cur.Status)
	assert.Equal(t, 2, cur.Count())
	assert.Equal(t, "Nala", cur.Recommendations[0].Name)
	assert.Equal(t, "Rocky", cur.Recommendations[1].Name)

	pending, err := f.svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.Equal(t, []transitionRec{{workflow.EntityQuestionnaire, sub.ID, workflow.StatusPending, workflow.StatusApproved}}, f.obs.got)
}

func TestApprove_DuplicatePetIDsArePreserved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	sub, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, sub.ID, []int64{1, 1})
	require.NoError(t, err)

	cur, err := f.reader.GetCurrent(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, cur.Count())
}

func TestApprove_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	sub, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)

	t.Run("empty pet ids", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, sub.ID, nil)
		assert.ErrorIs(t, err, workflow.ErrValidation)
	})

	t.Run("non-positive pet id", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, sub.ID, []int64{1, 0})
		assert.ErrorIs(t, err, workflow.ErrValidation)
	})

	t.Run("unknown questionnaire", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, 999, []int64{1})
		assert.ErrorIs(t, err, workflow.ErrNotFound)
	})

	t.Run("unknown pets leave the row pending", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, sub.ID, []int64{1, 42, 42})
		require.ErrorIs(t, err, workflow.ErrValidation)
		assert.Contains(t, err.Error(), "[42]")

		pending, err := f.svc.ListPending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, workflow.StatusPending, pending[0].Status)
	})

	t.Run("already approved", func(t *testing.T) {
		_, err := f.svc.Approve(ctx, sub.ID, []int64{1})
		require.NoError(t, err)

		_, err = f.svc.Approve(ctx, sub.ID, []int64{3})
		assert.ErrorIs(t, err, workflow.ErrNotFound)

		// el segundo intento no agregó grants
		cur, err := f.reader.GetCurrent(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 1, cur.Count())
	})
}

func TestApprove_ConcurrentApproversHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	sub, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)

	const n = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		notFound int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Approve(ctx, sub.ID, []int64{1})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, workflow.ErrNotFound):
				notFound++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, notFound)

	cur, err := f.reader.GetCurrent(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, cur.Count())
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	sub, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)

	got, err := f.svc.Reject(ctx, sub.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRejected, got.Status)

	// idempotente: no escribe ni notifica de nuevo
	got, err = f.svc.Reject(ctx, sub.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRejected, got.Status)
	assert.Equal(t, 1, f.obs.count())

	_, err = f.svc.Reject(ctx, 999, nil)
	assert.ErrorIs(t, err, workflow.ErrNotFound)

	cur, err := f.reader.GetCurrent(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRejected, cur.Status)
	assert.Nil(t, cur.Answers)
	assert.Empty(t, cur.Recommendations)
}

func TestReject_ApprovedIsConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	sub, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)
	_, err = f.svc.Approve(ctx, sub.ID, []int64{1})
	require.NoError(t, err)

	_, err = f.svc.Reject(ctx, sub.ID, nil)
	assert.ErrorIs(t, err, workflow.ErrConflict)

	cur, err := f.reader.GetCurrent(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, cur.Status)
}

func TestReject_LegacyOverwriteKeepsGrants(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{AllowOverwrite: true})

	sub, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)
	_, err = f.svc.Approve(ctx, sub.ID, []int64{1, 3})
	require.NoError(t, err)

	got, err := f.svc.Reject(ctx, sub.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRejected, got.Status)

	u, err := f.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	granted, err := memory.NewRecommendationsStore(f.db).GrantedPets(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, granted, 2)
}

func TestReject_ExpectedStatusToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, workflow.Machine{})

	sub, err := f.svc.Submit(ctx, "alice", answers)
	require.NoError(t, err)

	approved := workflow.StatusApproved
	_, err = f.svc.Reject(ctx, sub.ID, &approved)
	assert.ErrorIs(t, err, workflow.ErrConflict)

	pending := workflow.StatusPending
	got, err := f.svc.Reject(ctx, sub.ID, &pending)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRejected, got.Status)
}

// failingStore delega en el store en memoria pero hace fallar InsertSubmission.
type failingStore struct {
	*memory.QuestionnairesStore
	err error
}

func (s failingStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx questionnaires.Tx) error) error {
	return s.QuestionnairesStore.RunInTx(ctx, func(ctx context.Context, tx questionnaires.Tx) error {
		return fn(ctx, failingTx{Tx: tx, err: s.err})
	})
}

type failingTx struct {
	questionnaires.Tx
	err error
}

func (t failingTx) InsertSubmission(context.Context, questionnaires.Submission) (questionnaires.Submission, error) {
	return questionnaires.Submission{}, t.err
}

func TestSubmit_StorageFaultRollsBackUser(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	fault := errors.New("disk I/O error")

	svc := questionnaires.NewService(failingStore{QuestionnairesStore: memory.NewQuestionnairesStore(db), err: fault}, questionnaires.Options{})

	_, err := svc.Submit(ctx, "alice", answers)
	require.Error(t, err)

	var se *workflow.StorageError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, fault)
	assert.Contains(t, err.Error(), "disk I/O error")

	_, err = memory.NewUserRepo(db).GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, workflow.ErrNotFound, "user creation must roll back with the failed insert")
}
