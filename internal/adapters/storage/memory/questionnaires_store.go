package memory

import (
	"context"
	"sort"
	"time"

	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"
)

type QuestionnairesStore struct {
	db *DB
}

func NewQuestionnairesStore(db *DB) *QuestionnairesStore {
	return &QuestionnairesStore{db: db}
}

func (s *QuestionnairesStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx questionnaires.Tx) error) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	return s.db.runInTx(func(st *state) error {
		return fn(ctx, &questionnairesTx{st: st})
	})
}

func (s *QuestionnairesStore) ListPending(ctx context.Context) ([]questionnaires.PendingSubmission, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	out := make([]questionnaires.PendingSubmission, 0)
	s.db.read(func(st *state) {
		for _, sub := range st.submissions {
			if sub.Status != workflow.StatusPending {
				continue
			}
			u, ok := st.userByUsername(sub.Username)
			if !ok {
				continue
			}
			out = append(out, questionnaires.PendingSubmission{Submission: sub, UserID: u.ID})
		}
	})

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type questionnairesTx struct {
	st *state
}

func (t *questionnairesTx) GetUserByUsername(ctx context.Context, username string) (users.User, error) {
	u, ok := t.st.userByUsername(username)
	if !ok {
		return users.User{}, workflow.ErrNotFound
	}
	return u, nil
}

func (t *questionnairesTx) CreateUser(ctx context.Context, u users.User) (users.User, error) {
	created, ok := t.st.insertUser(u)
	if !ok {
		return users.User{}, workflow.Conflict("username already exists")
	}
	return created, nil
}

func (t *questionnairesTx) InsertSubmission(ctx context.Context, sub questionnaires.Submission) (questionnaires.Submission, error) {
	sub.ID = t.st.nextSubmissionID
	t.st.nextSubmissionID++
	t.st.submissions = append(t.st.submissions, sub)
	return sub, nil
}

func (t *questionnairesTx) GetSubmission(ctx context.Context, id int64) (questionnaires.Submission, error) {
	i := t.st.submissionIndex(id)
	if i < 0 {
		return questionnaires.Submission{}, workflow.ErrNotFound
	}
	return t.st.submissions[i], nil
}

func (t *questionnairesTx) CompareAndSetStatus(ctx context.Context, id int64, from, to workflow.Status, at time.Time) (bool, error) {
	i := t.st.submissionIndex(id)
	if i < 0 || t.st.submissions[i].Status != from {
		return false, nil
	}
	t.st.submissions[i].Status = to
	t.st.submissions[i].UpdatedAt = at
	return true, nil
}

func (t *questionnairesTx) MissingPetIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return missingPetIDs(t.st, ids), nil
}

func (t *questionnairesTx) InsertGrants(ctx context.Context, userID int64, petIDs []int64, at time.Time) error {
	for _, pid := range petIDs {
		t.st.grants = append(t.st.grants, grant{ID: t.st.nextGrantID, UserID: userID, PetID: pid})
		t.st.nextGrantID++
	}
	return nil
}

func missingPetIDs(st *state, ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	var missing []int64
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := st.petByID(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
