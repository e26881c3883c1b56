package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/logger"
)

type Service struct {
	store   Store
	machine workflow.Machine
	obs     workflow.Observer
	log     logger.Logger
	now     func() time.Time
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
		store:   store,
		machine: opts.Machine,
		obs:     obs,
		log:     log.With(map[string]any{"component": "adoptions"}),
		now:     time.Now,
	}
}

// Create registra una solicitud PENDING con la foto del nombre de la mascota
// y devuelve la fila releída por su request_id.
func (s *Service) Create(ctx context.Context, petID int64, username string) (Request, error) {
	username = strings.TrimSpace(username)
	if petID <= 0 || username == "" {
		return Request{}, workflow.Validation("pet_id and username are required")
	}

	now := s.now().UTC()
	var out Request
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		pet, err := tx.GetPet(ctx, petID)
		if errors.Is(err, workflow.ErrNotFound) {
			return workflow.NotFound(fmt.Sprintf("pet %d not found", petID))
		}
		if err != nil {
			return err
		}

		id, err := tx.Insert(ctx, Request{
			PetID:     pet.ID,
			PetName:   pet.Name,
			Username:  username,
			Status:    workflow.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}

		out, err = tx.Get(ctx, id)
		return err
	})
	if err != nil {
		s.logFailure("create adoption request failed", 0, err)
		return Request{}, workflow.Storage("create adoption request", err)
	}

	s.log.Info("adoption request created", map[string]any{
		"request_id": out.ID,
		"pet_id":     out.PetID,
		"username":   out.Username,
	})
	return out, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Request, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, workflow.Storage("list adoption requests", err)
	}
	return items, nil
}

func (s *Service) ListForUser(ctx context.Context, username string) ([]Request, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, workflow.Validation("username is required")
	}
	items, err := s.store.ListByUsername(ctx, username)
	if err != nil {
		return nil, workflow.Storage("list adoption requests", err)
	}
	return items, nil
}

// UpdateStatus aplica APPROVE/REJECT (case-insensitive) según la tabla de transiciones.
// Repetir la misma acción es idempotente. Cambiar entre APPROVED y REJECTED solo se permite
// con Machine.AllowOverwrite. Devuelve la fila releída tras el update.
func (s *Service) UpdateStatus(ctx context.Context, requestID int64, rawAction string, expected *workflow.Status) (Request, error) {
	action, err := workflow.ParseAction(rawAction)
	if err != nil {
		return Request{}, err
	}
	if requestID <= 0 {
		return Request{}, workflow.Validation("request id must be positive")
	}
	target := action.Target()

	now := s.now().UTC()
	var (
		out  Request
		from workflow.Status
		noop bool
	)
	err = s.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		cur, err := tx.Get(ctx, requestID)
		if errors.Is(err, workflow.ErrNotFound) {
			return workflow.NotFound(fmt.Sprintf("adoption request %d not found", requestID))
		}
		if err != nil {
			return err
		}
		from = cur.Status

		noop, err = s.machine.Check(cur.Status, target, expected)
		if err != nil {
			return err
		}
		if !noop {
			ok, err := tx.CompareAndSetStatus(ctx, requestID, cur.Status, target, now)
			if err != nil {
				return err
			}
			if !ok {
				return workflow.Conflict(fmt.Sprintf("adoption request %d changed concurrently", requestID))
			}
		}

		out, err = tx.Get(ctx, requestID)
		if errors.Is(err, workflow.ErrNotFound) {
			return workflow.NotFound(fmt.Sprintf("adoption request %d not found", requestID))
		}
		return err
	})
	if err != nil {
		s.logFailure("update adoption request failed", requestID, err)
		return Request{}, workflow.Storage("update adoption request", err)
	}

	if !noop {
		s.obs.Transition(workflow.EntityAdoption, requestID, from, target)
	}
	s.log.Info("adoption request updated", map[string]any{
		"request_id": requestID,
		"action":     string(action),
		"status":     string(out.Status),
		"noop":       noop,
	})
	return out, nil
}

func (s *Service) logFailure(msg string, id int64, err error) {
	fields := map[string]any{"err": err}
	if id > 0 {
		fields["request_id"] = id
	}
	if workflow.IsDomain(err) {
		s.log.Warn(msg, fields)
		return
	}
	s.log.Error(msg, fields)
}
