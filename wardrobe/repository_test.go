package wardrobe

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobeapi/models"
)

func newItem(name string) models.NewClothingItem {
	return models.NewClothingItem{
		Name:      name,
		ImageURL:  "https://cdn.example.com/" + name + ".png",
		Category:  models.CategoryTop,
		Gender:    models.GenderUnisex,
		Colors:    []models.ColorDetail{{Type: models.ColorPrimary, Name: "White", Hex: "#FFFFFF"}},
		Tags:      []string{"basic"},
		Fabric:    "Cotton",
		Texture:   "Soft",
		Season:    models.SeasonSummer,
		Formality: models.FormalityCasual,
		Fit:       models.FitRegular,
		Layering:  models.LayeringBase,
	}
}

func frozenClock() func() time.Time {
	t := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestAddPrependsWithUniqueIds(t *testing.T) {
	var persisted [][]models.ClothingItem
	repo := NewRepository(nil, func(items []models.ClothingItem) error {
		persisted = append(persisted, items)
		return nil
	}, WithClock(frozenClock()))

	names := []string{"a", "b", "c", "d"}
	for _, name := range names {
		_, err := repo.Add(newItem(name))
		require.NoError(t, err)
	}

	items := repo.ListAll()
	require.Len(t, items, 4)
	assert.Len(t, persisted, 4)
	ids := map[string]bool{}
	for i, item := range items {
		assert.Equal(t, names[len(names)-1-i], item.Name)
		assert.True(t, item.IsAvailable)
		ids[item.ID] = true
	}
	assert.Len(t, ids, 4)
	assert.Equal(t, "2025-03-01T10:00:00.000000000Z", items[3].ID)
	assert.Equal(t, "2025-03-01T10:00:00.000000001Z", items[2].ID)
}

func TestUpdateByIdReplacesOnlyTarget(t *testing.T) {
	repo := NewRepository(SeedWardrobe(), nil)
	before := repo.ListAll()

	changed := before[2]
	changed.Name = "Vintage Leather Jacket"
	changed.Tags = []string{"Vintage"}
	require.NoError(t, repo.UpdateByID(changed))

	after := repo.ListAll()
	require.Len(t, after, len(before))
	for i := range before {
		if i == 2 {
			assert.Equal(t, changed, after[i])
			continue
		}
		want, _ := json.Marshal(before[i])
		got, _ := json.Marshal(after[i])
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestUpdateByUnknownIdIsNotFound(t *testing.T) {
	calls := 0
	repo := NewRepository(SeedWardrobe(), func([]models.ClothingItem) error {
		calls++
		return nil
	})
	before := repo.ListAll()

	err := repo.UpdateByID(models.ClothingItem{ID: "missing", Name: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.Equal(t, before, repo.ListAll())
	assert.Zero(t, calls)
}

func TestToggleAvailabilityIsItsOwnInverse(t *testing.T) {
	repo := NewRepository(SeedWardrobe(), nil)
	original, err := repo.Get("5")
	require.NoError(t, err)

	toggled, err := repo.ToggleAvailability("5")
	require.NoError(t, err)
	assert.Equal(t, !original.IsAvailable, toggled.IsAvailable)

	restored, err := repo.ToggleAvailability("5")
	require.NoError(t, err)
	assert.Equal(t, original, restored)

	_, err = repo.ToggleAvailability("nope")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestListAvailableFilters(t *testing.T) {
	repo := NewRepository(SeedWardrobe(), nil)
	available := repo.ListAvailable()
	assert.Len(t, available, 5)
	for _, item := range available {
		assert.NotEqual(t, "5", item.ID)
	}
}

func TestListReturnsCopies(t *testing.T) {
	repo := NewRepository(SeedWardrobe(), nil)
	items := repo.ListAll()
	items[0].Name = "changed"
	items[0].Tags[0] = "changed"

	fresh, _ := repo.Get(items[0].ID)
	assert.Equal(t, "Plain White T-Shirt", fresh.Name)
	assert.Equal(t, "Solid", fresh.Tags[0])
}

func TestFailedPersistDoesNotCommit(t *testing.T) {
	repo := NewRepository(SeedWardrobe(), func([]models.ClothingItem) error {
		return errors.New("disk full")
	})

	_, err := repo.Add(newItem("x"))
	require.Error(t, err)
	_, err = repo.ToggleAvailability("1")
	require.Error(t, err)

	assert.Equal(t, 6, repo.Len())
	item, _ := repo.Get("1")
	assert.True(t, item.IsAvailable)
}

func TestResolveIsAllOrNothing(t *testing.T) {
	repo := NewRepository(SeedWardrobe(), nil)

	items, err := repo.Resolve([]string{"2", "1"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "1", items[1].ID)

	items, err = repo.Resolve([]string{"1", "42", "43"})
	require.Error(t, err)
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, models.ErrResolution))
	assert.Contains(t, models.UserMessage(err), "42, 43")
}

func TestResolveIncludesUnavailableItems(t *testing.T) {
	repo := NewRepository(SeedWardrobe(), nil)
	items, err := repo.Resolve([]string{"5"})
	require.NoError(t, err)
	assert.False(t, items[0].IsAvailable)
}

func TestSelectUnknownIdIsNotFound(t *testing.T) {
	repo := NewRepository(SeedWardrobe(), nil)

	items, err := repo.Select([]string{"3", "1"})
	require.NoError(t, err)
	assert.Equal(t, "3", items[0].ID)

	items, err = repo.Select([]string{"1", "nope"})
	require.Error(t, err)
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.False(t, errors.Is(err, models.ErrResolution))
	assert.Contains(t, models.UserMessage(err), "nope")
}
