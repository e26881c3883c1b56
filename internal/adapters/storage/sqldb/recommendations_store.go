package sqldb

import (
	"context"

	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/recommendations"

	"github.com/huandu/go-sqlbuilder"
)

// RecommendationsStore es de solo lectura: nunca abre transacciones de escritura.
type RecommendationsStore struct {
	db *DB
}

func NewRecommendationsStore(db *DB) *RecommendationsStore {
	return &RecommendationsStore{db: db}
}

func (s *RecommendationsStore) LatestSubmission(ctx context.Context, username string) (recommendations.Latest, error) {
	sb := s.db.flavor.NewSelectBuilder()
	sb.Select(withCols(submissionCols, "COALESCE(u.id, 0) AS user_id")...)
	sb.From("questionnaire_answers AS q")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users AS u", "u.username = q.username")
	sb.Where(sb.Equal("q.username", username))
	sb.OrderBy("q.created_at DESC", "q.id DESC")
	sb.Limit(1)

	var row submissionUserRow
	if err := getOne(ctx, s.db.x, &row, sb); err != nil {
		return recommendations.Latest{}, err
	}
	return recommendations.Latest{
		Submission: row.submissionRow.toDomain(),
		UserID:     row.UserID,
	}, nil
}

// GrantedPets: todos los grants del usuario, duplicados incluidos, en orden de grant.
func (s *RecommendationsStore) GrantedPets(ctx context.Context, userID int64) ([]pets.Pet, error) {
	sb := s.db.flavor.NewSelectBuilder()
	sb.Select(petCols...)
	sb.From("approved_pets AS ap")
	sb.Join("pets AS p", "p.id = ap.pet_id")
	sb.Where(sb.Equal("ap.user_id", userID))
	sb.OrderBy("ap.id")

	var rows []petRow
	if err := selectAll(ctx, s.db.x, &rows, sb); err != nil {
		return nil, err
	}
	return petsToDomain(rows), nil
}
