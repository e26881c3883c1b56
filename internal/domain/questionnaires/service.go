package questionnaires

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/logger"
	"pet-adoption-workflow/internal/platform/validation"
)

type Service struct {
	store   Store
	machine workflow.Machine
	obs     workflow.Observer
	log     logger.Logger

	now         func() time.Time
	placeholder func() (string, error)
}

type Options struct {
	Machine  workflow.Machine
	Observer workflow.Observer // puede ser nil
	Logger   logger.Logger     // puede ser nil
}

func NewService(store Store, opts Options) *Service {
	obs := opts.Observer
	if obs == nil {
		obs = workflow.NopObserver()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:       store,
		machine:     opts.Machine,
		obs:         obs,
		log:         log.With(map[string]any{"component": "questionnaires"}),
		now:         time.Now,
		placeholder: users.PlaceholderPasswordHash,
	}
}

// Submit persiste un envío PENDING. Si el usuario no existe lo crea con una credencial
// placeholder; alta de usuario e insert del envío van en la misma transacción.
// La aprobación siempre es posterior y la hace un admin.
func (s *Service) Submit(ctx context.Context, username string, answers Answers) (Submission, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Submission{}, workflow.Validation("username is required")
	}
	if err := validation.Struct(answers); err != nil {
		return Submission{}, err
	}

	now := s.now().UTC()
	var (
		out         Submission
		userCreated bool
	)
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetUserByUsername(ctx, username); err != nil {
			if !errors.Is(err, workflow.ErrNotFound) {
				return err
			}
			hash, err := s.placeholder()
			if err != nil {
				return err
			}
			if _, err := tx.CreateUser(ctx, users.User{
				Username:     username,
				PasswordHash: hash,
				CreatedAt:    now,
			}); err != nil {
				return err
			}
			userCreated = true
		}

		sub, err := tx.InsertSubmission(ctx, Submission{
			Username:  username,
			Answers:   answers,
			Status:    workflow.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		out = sub
		return nil
	})
	if err != nil {
		s.log.Error("submit questionnaire failed", map[string]any{"username": username, "err": err})
		return Submission{}, workflow.Storage("submit questionnaire", err)
	}

	s.log.Info("questionnaire submitted", map[string]any{
		"questionnaire_id": out.ID,
		"username":         username,
		"user_created":     userCreated,
	})
	return out, nil
}

// ListPending devuelve todos los envíos PENDING con la identidad de su usuario.
// El orden (created_at, id) es solo por determinismo.
func (s *Service) ListPending(ctx context.Context) ([]PendingSubmission, error) {
	items, err := s.store.ListPending(ctx)
	if err != nil {
		return nil, workflow.Storage("list pending questionnaires", err)
	}
	return items, nil
}

// Approve pasa un envío PENDING a APPROVED y crea un grant por cada pet id, todo en una transacción.
// Una aprobación sin mascotas se rechaza. Ids de mascotas inexistentes fallan con validation.
func (s *Service) Approve(ctx context.Context, id int64, petIDs []int64) (Approval, error) {
	if id <= 0 {
		return Approval{}, workflow.Validation("questionnaire id must be positive")
	}
	if len(petIDs) == 0 {
		return Approval{}, workflow.Validation("pet_ids are required for approval")
	}
	for _, pid := range petIDs {
		if pid <= 0 {
			return Approval{}, workflow.Validation(fmt.Sprintf("invalid pet id %d", pid))
		}
	}

	now := s.now().UTC()
	var out Approval
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		sub, err := tx.GetSubmission(ctx, id)
		if errors.Is(err, workflow.ErrNotFound) || (err == nil && sub.Status != workflow.StatusPending) {
			return notPending(id)
		}
		if err != nil {
			return err
		}

		u, err := tx.GetUserByUsername(ctx, sub.Username)
		if errors.Is(err, workflow.ErrNotFound) {
			return workflow.NotFound(fmt.Sprintf("user %q not found", sub.Username))
		}
		if err != nil {
			return err
		}

		missing, err := tx.MissingPetIDs(ctx, petIDs)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return workflow.Validation(fmt.Sprintf("unknown pet ids %v", missing))
		}

		ok, err := tx.CompareAndSetStatus(ctx, id, workflow.StatusPending, workflow.StatusApproved, now)
		if err != nil {
			return err
		}
		if !ok {
			// otro aprobador/rechazador ganó entre la lectura y el update
			return notPending(id)
		}

		if err := tx.InsertGrants(ctx, u.ID, petIDs, now); err != nil {
			return err
		}

		sub.Status = workflow.StatusApproved
		sub.UpdatedAt = now
		out = Approval{
			Submission: sub,
			UserID:     u.ID,
			PetIDs:     append([]int64(nil), petIDs...),
		}
		return nil
	})
	if err != nil {
		s.logFailure("approve questionnaire failed", id, err)
		return Approval{}, workflow.Storage("approve questionnaire", err)
	}

	s.obs.Transition(workflow.EntityQuestionnaire, id, workflow.StatusPending, workflow.StatusApproved)
	s.log.Info("questionnaire approved", map[string]any{
		"questionnaire_id": id,
		"user_id":          out.UserID,
		"pet_ids":          out.PetIDs,
	})
	return out, nil
}

// Reject pasa un envío a REJECTED según la tabla de transiciones.
// Rechazar algo ya REJECTED es un no-op. Des-aprobar (APPROVED -> REJECTED) solo se permite
// con Machine.AllowOverwrite y en ese caso los grants existentes NO se retiran.
// expected es el token opcional de concurrencia optimista.
func (s *Service) Reject(ctx context.Context, id int64, expected *workflow.Status) (Submission, error) {
	if id <= 0 {
		return Submission{}, workflow.Validation("questionnaire id must be positive")
	}

	now := s.now().UTC()
	var (
		out  Submission
		from workflow.Status
		noop bool
	)
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		sub, err := tx.GetSubmission(ctx, id)
		if errors.Is(err, workflow.ErrNotFound) {
			return workflow.NotFound(fmt.Sprintf("questionnaire %d not found", id))
		}
		if err != nil {
			return err
		}
		from = sub.Status

		noop, err = s.machine.Check(sub.Status, workflow.StatusRejected, expected)
		if err != nil {
			return err
		}
		if noop {
			out = sub
			return nil
		}

		ok, err := tx.CompareAndSetStatus(ctx, id, sub.Status, workflow.StatusRejected, now)
		if err != nil {
			return err
		}
		if !ok {
			return workflow.Conflict(fmt.Sprintf("questionnaire %d changed concurrently", id))
		}

		sub.Status = workflow.StatusRejected
		sub.UpdatedAt = now
		out = sub
		return nil
	})
	if err != nil {
		s.logFailure("reject questionnaire failed", id, err)
		return Submission{}, workflow.Storage("reject questionnaire", err)
	}

	if !noop {
		s.obs.Transition(workflow.EntityQuestionnaire, id, from, workflow.StatusRejected)
		if from == workflow.StatusApproved {
			s.log.Warn("approved questionnaire overwritten to rejected; grants kept", map[string]any{"questionnaire_id": id})
		}
	}
	s.log.Info("questionnaire rejected", map[string]any{"questionnaire_id": id, "noop": noop})
	return out, nil
}

func (s *Service) logFailure(msg string, id int64, err error) {
	fields := map[string]any{"questionnaire_id": id, "err": err}
	if workflow.IsDomain(err) {
		s.log.Warn(msg, fields)
		return
	}
	s.log.Error(msg, fields)
}

func notPending(id int64) error {
	return workflow.NotFound(fmt.Sprintf("questionnaire %d not found or already processed", id))
}
