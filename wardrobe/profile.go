package wardrobe

import (
	"fmt"
	"sync"

	zlog "github.com/rs/zerolog/log"

	"wardrobeapi/models"
)

// ProfileStore holds the user profile singleton. It is only ever replaced
// as a whole.
type ProfileStore struct {
	mu      sync.RWMutex
	profile models.UserProfile
	persist func(models.UserProfile) error
}

func NewProfileStore(profile models.UserProfile, persist func(models.UserProfile) error) *ProfileStore {
	if persist == nil {
		persist = func(models.UserProfile) error { return nil }
	}
	return &ProfileStore{profile: profile.Normalize(), persist: persist}
}

func cloneProfile(p models.UserProfile) models.UserProfile {
	out := p
	out.StylePreferences = append([]models.StylePreference{}, p.StylePreferences...)
	out.FavoriteColors = append([]string{}, p.FavoriteColors...)
	return out
}

func (s *ProfileStore) Get() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfile(s.profile)
}

// Save normalizes and persists profile, replacing the previous one.
func (s *ProfileStore) Save(profile models.UserProfile) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace(profile.Normalize())
}

// SetPhoto replaces only the reference photo and persists the whole profile.
func (s *ProfileStore) SetPhoto(photoURL string) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := cloneProfile(s.profile)
	next.PhotoURL = photoURL
	return s.replace(next)
}

func (s *ProfileStore) replace(next models.UserProfile) (models.UserProfile, error) {
	if err := s.persist(cloneProfile(next)); err != nil {
		return models.UserProfile{}, fmt.Errorf("persisting profile: %w", err)
	}
	s.profile = next
	zlog.Info().
		Int("stylePreferences", len(next.StylePreferences)).
		Bool("photo", next.HasPhoto()).
		Msg("[Profile] saved")
	return cloneProfile(next), nil
}
