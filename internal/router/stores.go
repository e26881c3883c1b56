package router

import (
	"pet-adoption-workflow/internal/adapters/storage/memory"
	"pet-adoption-workflow/internal/adapters/storage/sqldb"
	"pet-adoption-workflow/internal/domain/adoptions"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/recommendations"
	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/ports/auth"
)

// Stores agrupa los puertos de persistencia de cada módulo sobre un mismo store relacional.
type Stores struct {
	Users           users.Repository
	Pets            pets.Repository
	Questionnaires  questionnaires.Store
	Recommendations recommendations.Store
	Adoptions       adoptions.Store
	Admins          auth.AdminVerifier
}

func SQLStores(db *sqldb.DB) Stores {
	return Stores{
		Users:           sqldb.NewUsersRepo(db),
		Pets:            sqldb.NewPetsRepo(db),
		Questionnaires:  sqldb.NewQuestionnairesStore(db),
		Recommendations: sqldb.NewRecommendationsStore(db),
		Adoptions:       sqldb.NewAdoptionsStore(db),
		Admins:          sqldb.NewAdminVerifier(db),
	}
}

func MemoryStores(db *memory.DB) Stores {
	return Stores{
		Users:           memory.NewUserRepo(db),
		Pets:            memory.NewPetRepo(db),
		Questionnaires:  memory.NewQuestionnairesStore(db),
		Recommendations: memory.NewRecommendationsStore(db),
		Adoptions:       memory.NewAdoptionsStore(db),
		Admins:          memory.NewAdminVerifier(db),
	}
}
