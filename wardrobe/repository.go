package wardrobe

import (
	"fmt"
	"strings"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"wardrobeapi/models"
)

// IDLayout is the creation timestamp format used for item ids.
const IDLayout = "2006-01-02T15:04:05.000000000Z"

// PersistFunc receives the full collection after every mutation.
type PersistFunc func([]models.ClothingItem) error

type Option func(*Repository)

// WithClock replaces the time source used for id generation.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// Repository owns the ordered wardrobe collection, newest first. Every
// mutation is applied to a copy, handed to the persist callback and only
// committed once persisting succeeded.
type Repository struct {
	mu      sync.RWMutex
	items   []models.ClothingItem
	persist PersistFunc
	now     func() time.Time
	lastID  time.Time
}

func NewRepository(items []models.ClothingItem, persist PersistFunc, opts ...Option) *Repository {
	r := &Repository{
		items:   cloneItems(items),
		persist: persist,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.persist == nil {
		r.persist = func([]models.ClothingItem) error { return nil }
	}
	return r
}

func cloneItems(items []models.ClothingItem) []models.ClothingItem {
	out := make([]models.ClothingItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func (r *Repository) indexOf(id string) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// nextID must be called with the write lock held.
func (r *Repository) nextID() string {
	t := r.now().UTC()
	if !t.After(r.lastID) {
		t = r.lastID.Add(time.Nanosecond)
	}
	id := t.Format(IDLayout)
	for r.indexOf(id) >= 0 {
		t = t.Add(time.Nanosecond)
		id = t.Format(IDLayout)
	}
	r.lastID = t
	return id
}

func (r *Repository) commit(next []models.ClothingItem) error {
	if err := r.persist(cloneItems(next)); err != nil {
		return fmt.Errorf("persisting wardrobe: %w", err)
	}
	r.items = next
	return nil
}

// Add assigns a fresh id, marks the item available and prepends it.
func (r *Repository) Add(draft models.NewClothingItem) (models.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := draft.WithIdentity(r.nextID())
	next := make([]models.ClothingItem, 0, len(r.items)+1)
	next = append(next, item)
	next = append(next, r.items...)
	if err := r.commit(next); err != nil {
		return models.ClothingItem{}, err
	}
	zlog.Info().Str("itemId", item.ID).Str("name", item.Name).Msg("[Wardrobe] item added")
	return item.Clone(), nil
}

// UpdateByID replaces the stored item with the same id, keeping its position.
// An unknown id leaves the collection untouched and reports ErrNotFound.
func (r *Repository) UpdateByID(item models.ClothingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(item.ID)
	if idx < 0 {
		return models.NotFoundError("Item", item.ID)
	}
	next := make([]models.ClothingItem, len(r.items))
	copy(next, r.items)
	next[idx] = item.Clone()
	if err := r.commit(next); err != nil {
		return err
	}
	zlog.Info().Str("itemId", item.ID).Msg("[Wardrobe] item updated")
	return nil
}

// ToggleAvailability flips IsAvailable of one item and returns the result.
func (r *Repository) ToggleAvailability(id string) (models.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.ClothingItem{}, models.NotFoundError("Item", id)
	}
	next := make([]models.ClothingItem, len(r.items))
	copy(next, r.items)
	toggled := next[idx].Clone()
	toggled.IsAvailable = !toggled.IsAvailable
	next[idx] = toggled
	if err := r.commit(next); err != nil {
		return models.ClothingItem{}, err
	}
	zlog.Info().Str("itemId", id).Bool("available", toggled.IsAvailable).Msg("[Wardrobe] availability toggled")
	return toggled.Clone(), nil
}

func (r *Repository) ListAll() []models.ClothingItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneItems(r.items)
}

func (r *Repository) ListAvailable() []models.ClothingItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.ClothingItem{}
	for _, item := range r.items {
		if item.IsAvailable {
			out = append(out, item.Clone())
		}
	}
	return out
}

func (r *Repository) Get(id string) (models.ClothingItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return models.ClothingItem{}, models.NotFoundError("Item", id)
	}
	return r.items[idx].Clone(), nil
}

// Resolve maps ids onto items in the order given. Any unknown id fails the
// whole call with a resolution error naming every missing id.
func (r *Repository) Resolve(ids []string) ([]models.ClothingItem, error) {
	out, missing := r.lookup(ids)
	if len(missing) > 0 {
		return nil, models.ResolutionError(missing)
	}
	return out, nil
}

// Select is Resolve for ids chosen by the caller rather than by the stylist:
// unknown ids are a NotFound error.
func (r *Repository) Select(ids []string) ([]models.ClothingItem, error) {
	out, missing := r.lookup(ids)
	if len(missing) > 0 {
		return nil, models.NewAppError(
			models.ErrNotFound,
			"These items are not in your wardrobe: "+strings.Join(missing, ", "),
			nil,
		)
	}
	return out, nil
}

func (r *Repository) lookup(ids []string) ([]models.ClothingItem, []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ClothingItem, 0, len(ids))
	var missing []string
	for _, id := range ids {
		idx := r.indexOf(id)
		if idx < 0 {
			missing = append(missing, id)
			continue
		}
		out = append(out, r.items[idx].Clone())
	}
	return out, missing
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
