package sqldb

import (
	"time"

	"pet-adoption-workflow/internal/domain/adoptions"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"
)

// Columnas con alias explícito: los JOIN no dependen del naming de cada driver.
var (
	userCols = []string{
		"u.id AS id", "u.username AS username", "u.password_hash AS password_hash", "u.created_at AS created_at",
	}
	petCols = []string{
		"p.id AS id", "p.name AS name", "p.type AS type", "p.size AS size",
		"p.activity_level AS activity_level", "p.maintenance_level AS maintenance_level", "p.budget AS budget",
	}
	submissionCols = []string{
		"q.id AS id", "q.username AS username",
		"q.living_space AS living_space", "q.activity_level AS activity_level",
		"q.maintenance_level AS maintenance_level", "q.budget AS budget", "q.pet_type AS pet_type",
		"q.status AS status", "q.created_at AS created_at", "q.updated_at AS updated_at",
	}
	adoptionCols = []string{
		"a.request_id AS request_id", "a.pet_id AS pet_id", "a.pet_name AS pet_name", "a.username AS username",
		"a.status AS status", "a.created_at AS created_at", "a.updated_at AS updated_at",
	}
)

func withCols(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

type userRow struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r userRow) toDomain() users.User {
	return users.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

type petRow struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	Type             string `db:"type"`
	Size             string `db:"size"`
	ActivityLevel    string `db:"activity_level"`
	MaintenanceLevel string `db:"maintenance_level"`
	Budget           string `db:"budget"`
}

func (r petRow) toDomain() pets.Pet {
	return pets.Pet{
		ID:               r.ID,
		Name:             r.Name,
		Type:             r.Type,
		Size:             r.Size,
		ActivityLevel:    r.ActivityLevel,
		MaintenanceLevel: r.MaintenanceLevel,
		Budget:           r.Budget,
	}
}

func petsToDomain(rows []petRow) []pets.Pet {
	out := make([]pets.Pet, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

type submissionRow struct {
	ID               int64     `db:"id"`
	Username         string    `db:"username"`
	LivingSpace      string    `db:"living_space"`
	ActivityLevel    string    `db:"activity_level"`
	MaintenanceLevel string    `db:"maintenance_level"`
	Budget           string    `db:"budget"`
	PetType          string    `db:"pet_type"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r submissionRow) toDomain() questionnaires.Submission {
	return questionnaires.Submission{
		ID:       r.ID,
		Username: r.Username,
		Answers: questionnaires.Answers{
			LivingSpace:      r.LivingSpace,
			ActivityLevel:    r.ActivityLevel,
			MaintenanceLevel: r.MaintenanceLevel,
			Budget:           r.Budget,
			PetType:          r.PetType,
		},
		Status:    workflow.Status(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

type submissionUserRow struct {
	submissionRow
	UserID int64 `db:"user_id"`
}

type adoptionRow struct {
	RequestID int64     `db:"request_id"`
	PetID     int64     `db:"pet_id"`
	PetName   string    `db:"pet_name"`
	Username  string    `db:"username"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r adoptionRow) toDomain() adoptions.Request {
	return adoptions.Request{
		ID:        r.RequestID,
		PetID:     r.PetID,
		PetName:   r.PetName,
		Username:  r.Username,
		Status:    workflow.Status(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func adoptionsToDomain(rows []adoptionRow) []adoptions.Request {
	out := make([]adoptions.Request, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}
