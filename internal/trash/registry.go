// Package trash maps an item-type tag to the soft-delete, restore and purge
// behaviour of the matching entity. Every caller (manual trash actions and
// the auto-delete scheduler) dispatches through one Registry.
package trash

import (
	"context"
	"fmt"
	"sort"
	"time"

	"officehub-be/internal/apperror"
	"officehub-be/internal/entity"
	"officehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Handler operates on one entity kind. All methods run against the unit of
// work they are given, so they join the caller's transaction.
type Handler interface {
	// Snapshot loads a live (not yet trashed) item.
	Snapshot(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error)
	SoftDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID, at time.Time) error
	Restore(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error)
	HardDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) error
}

type Registry struct {
	handlers map[entity.ItemType]Handler
}

// NewRegistry returns a registry with the note, reminder, survey and event
// handlers installed.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[entity.ItemType]Handler)}
	r.Register(entity.ItemTypeNote, noteHandler{})
	r.Register(entity.ItemTypeReminder, reminderHandler{})
	r.Register(entity.ItemTypeSurvey, surveyHandler{})
	r.Register(entity.ItemTypeEvent, eventHandler{})
	return r
}

func (r *Registry) Register(itemType entity.ItemType, h Handler) {
	r.handlers[itemType] = h
}

func (r *Registry) Handler(itemType entity.ItemType) (Handler, error) {
	h, ok := r.handlers[itemType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnsupportedItemType, itemType)
	}
	return h, nil
}

// Types returns the registered tags in a stable order.
func (r *Registry) Types() []entity.ItemType {
	out := make([]entity.ItemType, 0, len(r.handlers))
	for t := range r.handlers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Registry) Snapshot(ctx context.Context, uow unitofwork.UnitOfWork, itemType entity.ItemType, itemId uuid.UUID) (entity.TrashableItem, error) {
	h, err := r.Handler(itemType)
	if err != nil {
		return nil, err
	}
	return h.Snapshot(ctx, uow, itemId)
}

func (r *Registry) SoftDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemType entity.ItemType, itemId uuid.UUID, at time.Time) error {
	h, err := r.Handler(itemType)
	if err != nil {
		return err
	}
	return h.SoftDelete(ctx, uow, itemId, at)
}

func (r *Registry) Restore(ctx context.Context, uow unitofwork.UnitOfWork, itemType entity.ItemType, itemId uuid.UUID) (entity.TrashableItem, error) {
	h, err := r.Handler(itemType)
	if err != nil {
		return nil, err
	}
	return h.Restore(ctx, uow, itemId)
}

func (r *Registry) HardDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemType entity.ItemType, itemId uuid.UUID) error {
	h, err := r.Handler(itemType)
	if err != nil {
		return err
	}
	return h.HardDelete(ctx, uow, itemId)
}

func missing(itemType entity.ItemType, itemId uuid.UUID) error {
	return fmt.Errorf("%w: %s %s", apperror.ErrUnderlyingEntityMissing, itemType, itemId)
}

// affected turns a repository (rows, err) pair into the registry's error
// vocabulary.
func affected(rows int64, err error, op string, itemType entity.ItemType, itemId uuid.UUID) error {
	if err != nil {
		return apperror.PersistenceFailure(fmt.Sprintf("%s %s", itemType, op), err)
	}
	if rows == 0 {
		return missing(itemType, itemId)
	}
	return nil
}
