package memory

import (
	"context"
	"sync"

	"pet-adoption-workflow/internal/domain/adoptions"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/users"
)

// DB es el store relacional en memoria (modo dev y tests).
// Todas las tablas viven detrás de un solo lock; una transacción toma el lock
// exclusivo y, si falla, restaura la foto tomada al inicio.
type DB struct {
	mu sync.RWMutex
	st state
}

type grant struct {
	ID     int64
	UserID int64
	PetID  int64
}

type admin struct {
	Username string
	Password string
}

type state struct {
	users       []users.User
	pets        []pets.Pet
	submissions []questionnaires.Submission
	grants      []grant
	adoptions   []adoptions.Request
	admins      []admin

	nextUserID       int64
	nextSubmissionID int64
	nextGrantID      int64
	nextRequestID    int64
}

func NewDB() *DB {
	return &DB{st: state{
		nextUserID:       1,
		nextSubmissionID: 1,
		nextGrantID:      1,
		nextRequestID:    1,
	}}
}

// SeedPets agrega mascotas con ids explícitos (dato de referencia). Ids ya presentes se ignoran.
func (db *DB) SeedPets(ctx context.Context, items []pets.Pet) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	return db.runInTx(func(st *state) error {
		for _, p := range items {
			if _, ok := st.petByID(p.ID); ok {
				continue
			}
			st.pets = append(st.pets, p)
		}
		return nil
	})
}

func (db *DB) SeedAdmin(ctx context.Context, username, password string) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	return db.runInTx(func(st *state) error {
		for _, a := range st.admins {
			if a.Username == username {
				return nil
			}
		}
		st.admins = append(st.admins, admin{Username: username, Password: password})
		return nil
	})
}

func (db *DB) SeedUser(ctx context.Context, u users.User) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	return db.runInTx(func(st *state) error {
		st.insertUser(u)
		return nil
	})
}

func (db *DB) runInTx(fn func(st *state) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	snapshot := db.st.clone()
	if err := fn(&db.st); err != nil {
		db.st = snapshot
		return err
	}
	return nil
}

func (db *DB) read(fn func(st *state)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(&db.st)
}

func (s state) clone() state {
	out := s
	out.users = append([]users.User(nil), s.users...)
	out.pets = append([]pets.Pet(nil), s.pets...)
	out.submissions = append([]questionnaires.Submission(nil), s.submissions...)
	out.grants = append([]grant(nil), s.grants...)
	out.adoptions = append([]adoptions.Request(nil), s.adoptions...)
	out.admins = append([]admin(nil), s.admins...)
	return out
}

func (s *state) userByUsername(username string) (users.User, bool) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return users.User{}, false
}

func (s *state) insertUser(u users.User) (users.User, bool) {
	if _, exists := s.userByUsername(u.Username); exists {
		return users.User{}, false
	}
	u.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, u)
	return u, true
}

func (s *state) petByID(id int64) (pets.Pet, bool) {
	for _, p := range s.pets {
		if p.ID == id {
			return p, true
		}
	}
	return pets.Pet{}, false
}

func (s *state) submissionIndex(id int64) int {
	for i, sub := range s.submissions {
		if sub.ID == id {
			return i
		}
	}
	return -1
}

func (s *state) adoptionIndex(id int64) int {
	for i, r := range s.adoptions {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// ctxErr permite que un ctx cancelado aborte la operación igual que en SQL.
func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
