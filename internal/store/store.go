// Package store persists the last planner session (settings, year, month)
// on a best-effort basis. Nothing here ever fails the caller: a broken or
// missing record reads as nil and a failed write is only logged.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/alexanderramin/wallplanner/internal/repository"
	"go.uber.org/zap"
)

// Key is the fixed record key. The suffix versions the record layout.
const Key = "planner-state-v1"

// Store reads and writes the single StoredPlannerState record.
type Store struct {
	kv     repository.KVRepo
	logger *zap.Logger
}

func New(kv repository.KVRepo, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger.Named("store")}
}

// storedRecord mirrors StoredPlannerState with pointers, so a record missing
// year, month or settings can be told apart from one holding zero values.
type storedRecord struct {
	Settings *domain.PlannerSettings `json:"settings"`
	Year     *int                    `json:"year"`
	Month    *int                    `json:"month"`
}

// Read returns the persisted state, or nil when there is none or it cannot
// be used.
func (s *Store) Read(ctx context.Context) *domain.StoredPlannerState {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("reading planner state", zap.Error(err))
		}
		return nil
	}
	if raw == "" {
		return nil
	}

	var rec storedRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Debug("decoding planner state", zap.Error(err))
		return nil
	}
	if rec.Settings == nil || rec.Year == nil || rec.Month == nil {
		s.logger.Debug("discarding incomplete planner state")
		return nil
	}

	return &domain.StoredPlannerState{
		Settings: *rec.Settings,
		Year:     *rec.Year,
		Month:    *rec.Month,
	}
}

// Write overwrites the persisted state. Errors are swallowed.
func (s *Store) Write(ctx context.Context, state domain.StoredPlannerState) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.logger.Debug("encoding planner state", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, Key, string(raw)); err != nil {
		s.logger.Debug("writing planner state", zap.Error(err))
	}
}

// Clear removes the persisted state.
func (s *Store) Clear(ctx context.Context) {
	if err := s.kv.Delete(ctx, Key); err != nil {
		s.logger.Debug("clearing planner state", zap.Error(err))
	}
}
