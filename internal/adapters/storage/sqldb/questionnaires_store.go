package sqldb

import (
	"context"
	"time"

	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
)

type QuestionnairesStore struct {
	db *DB
}

func NewQuestionnairesStore(db *DB) *QuestionnairesStore {
	return &QuestionnairesStore{db: db}
}

func (s *QuestionnairesStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx questionnaires.Tx) error) error {
	return s.db.withTx(ctx, func(tx *sqlx.Tx) error {
		return fn(ctx, &questionnairesTx{tx: tx, flavor: s.db.flavor})
	})
}

func (s *QuestionnairesStore) ListPending(ctx context.Context) ([]questionnaires.PendingSubmission, error) {
	sb := s.db.flavor.NewSelectBuilder()
	sb.Select(withCols(submissionCols, "u.id AS user_id")...)
	sb.From("questionnaire_answers AS q")
	sb.Join("users AS u", "u.username = q.username")
	sb.Where(sb.Equal("q.status", string(workflow.StatusPending)))
	sb.OrderBy("q.created_at", "q.id")

	var rows []submissionUserRow
	if err := selectAll(ctx, s.db.x, &rows, sb); err != nil {
		return nil, err
	}

	out := make([]questionnaires.PendingSubmission, 0, len(rows))
	for _, r := range rows {
		out = append(out, questionnaires.PendingSubmission{
			Submission: r.submissionRow.toDomain(),
			UserID:     r.UserID,
		})
	}
	return out, nil
}

type questionnairesTx struct {
	tx     *sqlx.Tx
	flavor sqlbuilder.Flavor
}

func (t *questionnairesTx) GetUserByUsername(ctx context.Context, username string) (users.User, error) {
	return userByUsername(ctx, t.tx, t.flavor, username)
}

func (t *questionnairesTx) CreateUser(ctx context.Context, u users.User) (users.User, error) {
	return insertUser(ctx, t.tx, t.flavor, u)
}

func (t *questionnairesTx) InsertSubmission(ctx context.Context, sub questionnaires.Submission) (questionnaires.Submission, error) {
	ib := t.flavor.NewInsertBuilder()
	ib.InsertInto("questionnaire_answers")
	ib.Cols("username", "living_space", "activity_level", "maintenance_level", "budget", "pet_type", "status", "created_at", "updated_at")
	ib.Values(
		sub.Username,
		sub.Answers.LivingSpace,
		sub.Answers.ActivityLevel,
		sub.Answers.MaintenanceLevel,
		sub.Answers.Budget,
		sub.Answers.PetType,
		string(sub.Status),
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	id, err := insertReturning(ctx, t.tx, ib, "id")
	if err != nil {
		return questionnaires.Submission{}, err
	}
	sub.ID = id
	return sub, nil
}

func (t *questionnairesTx) GetSubmission(ctx context.Context, id int64) (questionnaires.Submission, error) {
	sb := t.flavor.NewSelectBuilder()
	sb.Select(submissionCols...)
	sb.From("questionnaire_answers AS q")
	sb.Where(sb.Equal("q.id", id))

	var row submissionRow
	if err := getOne(ctx, t.tx, &row, sb); err != nil {
		return questionnaires.Submission{}, err
	}
	return row.toDomain(), nil
}

func (t *questionnairesTx) CompareAndSetStatus(ctx context.Context, id int64, from, to workflow.Status, at time.Time) (bool, error) {
	ub := t.flavor.NewUpdateBuilder()
	ub.Update("questionnaire_answers")
	ub.Set(ub.Assign("status", string(to)), ub.Assign("updated_at", at))
	ub.Where(ub.Equal("id", id), ub.Equal("status", string(from)))

	n, err := execAffected(ctx, t.tx, ub)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (t *questionnairesTx) MissingPetIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return missingPetIDs(ctx, t.tx, t.flavor, ids)
}

func (t *questionnairesTx) InsertGrants(ctx context.Context, userID int64, petIDs []int64, at time.Time) error {
	if len(petIDs) == 0 {
		return nil
	}

	ib := t.flavor.NewInsertBuilder()
	ib.InsertInto("approved_pets")
	ib.Cols("user_id", "pet_id", "created_at")
	for _, pid := range petIDs {
		ib.Values(userID, pid, at)
	}

	_, err := execAffected(ctx, t.tx, ib)
	return err
}
