package wardrobe

import (
	"encoding/json"
	"fmt"

	"github.com/getsentry/sentry-go"
	zlog "github.com/rs/zerolog/log"

	"wardrobeapi/models"
)

// Adapter persists the wardrobe and the profile as two JSON blobs under
// fixed keys of a KeyValueStore.
type Adapter struct {
	kv   KeyValueStore
	seed bool
}

func NewAdapter(kv KeyValueStore, seed bool) *Adapter {
	return &Adapter{kv: kv, seed: seed}
}

func (a *Adapter) initialWardrobe() []models.ClothingItem {
	if a.seed {
		return SeedWardrobe()
	}
	return []models.ClothingItem{}
}

// LoadWardrobe returns the stored collection. A missing or unreadable blob
// yields the initial wardrobe; only a store failure is returned as an error.
func (a *Adapter) LoadWardrobe() ([]models.ClothingItem, error) {
	raw, ok, err := a.kv.Get(models.WardrobeKey)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", models.WardrobeKey, err)
	}
	if !ok {
		zlog.Info().Bool("seed", a.seed).Msg("[Wardrobe] no stored wardrobe, starting fresh")
		return a.initialWardrobe(), nil
	}
	var items []models.ClothingItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		zlog.Error().Err(err).Msg("[Wardrobe] stored wardrobe is corrupt, falling back to initial wardrobe")
		sentry.CaptureException(err)
		return a.initialWardrobe(), nil
	}
	if items == nil {
		items = []models.ClothingItem{}
	}
	return items, nil
}

func (a *Adapter) SaveWardrobe(items []models.ClothingItem) error {
	if items == nil {
		items = []models.ClothingItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return a.kv.Set(models.WardrobeKey, string(raw))
}

// LoadProfile returns the stored profile or an empty one when nothing
// readable is stored.
func (a *Adapter) LoadProfile() (models.UserProfile, error) {
	raw, ok, err := a.kv.Get(models.ProfileKey)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("reading %s: %w", models.ProfileKey, err)
	}
	if !ok {
		return models.EmptyProfile(), nil
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		zlog.Error().Err(err).Msg("[Profile] stored profile is corrupt, using empty profile")
		sentry.CaptureException(err)
		return models.EmptyProfile(), nil
	}
	if profile.StylePreferences == nil {
		profile.StylePreferences = []models.StylePreference{}
	}
	if profile.FavoriteColors == nil {
		profile.FavoriteColors = []string{}
	}
	return profile, nil
}

func (a *Adapter) SaveProfile(profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return a.kv.Set(models.ProfileKey, string(raw))
}

// Open loads both blobs, writes them back so the store reflects the state the
// process starts with, and returns the repository and profile store bound to
// this adapter.
func Open(a *Adapter, opts ...Option) (*Repository, *ProfileStore, error) {
	items, err := a.LoadWardrobe()
	if err != nil {
		return nil, nil, err
	}
	profile, err := a.LoadProfile()
	if err != nil {
		return nil, nil, err
	}
	if err := a.SaveWardrobe(items); err != nil {
		return nil, nil, fmt.Errorf("writing %s: %w", models.WardrobeKey, err)
	}
	if err := a.SaveProfile(profile); err != nil {
		return nil, nil, fmt.Errorf("writing %s: %w", models.ProfileKey, err)
	}
	zlog.Info().Int("items", len(items)).Msg("[Wardrobe] state loaded")
	return NewRepository(items, a.SaveWardrobe, opts...), NewProfileStore(profile, a.SaveProfile), nil
}
