package memory

import (
	"context"

	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/recommendations"
	"pet-adoption-workflow/internal/domain/workflow"
)

type RecommendationsStore struct {
	db *DB
}

func NewRecommendationsStore(db *DB) *RecommendationsStore {
	return &RecommendationsStore{db: db}
}

func (s *RecommendationsStore) LatestSubmission(ctx context.Context, username string) (recommendations.Latest, error) {
	if err := ctxErr(ctx); err != nil {
		return recommendations.Latest{}, err
	}

	var (
		latest questionnaires.Submission
		found  bool
		userID int64
	)
	s.db.read(func(st *state) {
		for _, sub := range st.submissions {
			if sub.Username != username {
				continue
			}
			if !found || newer(sub, latest) {
				latest = sub
				found = true
			}
		}
		if u, ok := st.userByUsername(username); ok {
			userID = u.ID
		}
	})
	if !found {
		return recommendations.Latest{}, workflow.ErrNotFound
	}
	return recommendations.Latest{Submission: latest, UserID: userID}, nil
}

func (s *RecommendationsStore) GrantedPets(ctx context.Context, userID int64) ([]pets.Pet, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0)
	s.db.read(func(st *state) {
		// grants se agregan con id creciente, así que el orden del slice es el orden de grant
		for _, g := range st.grants {
			if g.UserID != userID {
				continue
			}
			if p, ok := st.petByID(g.PetID); ok {
				out = append(out, p)
			}
		}
	})
	return out, nil
}

// newer: created_at DESC, id DESC.
func newer(a, b questionnaires.Submission) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
