package catalog

import (
	"testing"

	"github.com/PetroczyP/mergington-activities/internal/i18n"
	"github.com/PetroczyP/mergington-activities/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activity(id, huName string, capacity int, participants ...string) models.Activity {
	return models.Activity{
		ID:              id,
		MaxParticipants: capacity,
		Text: map[i18n.Lang]models.ActivityText{
			i18n.English:   {Name: id, Description: "desc", Schedule: "sched"},
			i18n.Hungarian: {Name: huName, Description: "leírás", Schedule: "időpont"},
		},
		Participants: participants,
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 9, c.Len())

	ids := c.IDs()
	assert.Equal(t, "Chess Club", ids[0])
	assert.Equal(t, "Science Olympiad", ids[len(ids)-1])

	chess, ok := c.Activity("Chess Club")
	require.True(t, ok)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestResolve(t *testing.T) {
	c := Default()

	t.Run("EnglishName", func(t *testing.T) {
		id, ok := c.Resolve("Chess Club", i18n.English)
		require.True(t, ok)
		assert.Equal(t, "Chess Club", id)
	})

	t.Run("HungarianName", func(t *testing.T) {
		id, ok := c.Resolve("Sakk Klub", i18n.Hungarian)
		require.True(t, ok)
		assert.Equal(t, "Chess Club", id)

		id, ok = c.Resolve("Programozás Tanfolyam", i18n.Hungarian)
		require.True(t, ok)
		assert.Equal(t, "Programming Class", id)
	})

	t.Run("HungarianAcceptsCanonicalName", func(t *testing.T) {
		id, ok := c.Resolve("Chess Club", i18n.Hungarian)
		require.True(t, ok)
		assert.Equal(t, "Chess Club", id)
	})

	t.Run("EnglishRejectsHungarianName", func(t *testing.T) {
		_, ok := c.Resolve("Sakk Klub", i18n.English)
		assert.False(t, ok)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, ok := c.Resolve("Nonexistent Club", i18n.English)
		assert.False(t, ok)
		_, ok = c.Resolve("Nonexistent Club", i18n.Hungarian)
		assert.False(t, ok)
	})
}

func TestNameMappingIsBidirectional(t *testing.T) {
	c := Default()
	for _, id := range c.IDs() {
		hu := c.DisplayName(id, i18n.Hungarian)
		back, ok := c.Resolve(hu, i18n.Hungarian)
		require.Truef(t, ok, "%q does not resolve", hu)
		assert.Equal(t, id, back)

		en, ok := c.Translate(hu, i18n.Hungarian, i18n.English)
		require.True(t, ok)
		assert.Equal(t, id, en)
	}
}

func TestActivityReturnsCopies(t *testing.T) {
	c := Default()
	a, _ := c.Activity("Chess Club")
	a.Participants[0] = "mutated@mergington.edu"

	again, _ := c.Activity("Chess Club")
	assert.Equal(t, "michael@mergington.edu", again.Participants[0])
}

func TestNewRejectsInvalidActivities(t *testing.T) {
	cases := map[string][]models.Activity{
		"Empty":                {},
		"ZeroCapacity":         {activity("Chess Club", "Sakk Klub", 0)},
		"DuplicateID":          {activity("Chess Club", "Sakk Klub", 5), activity("Chess Club", "Sakk Klub 2", 5)},
		"DuplicateLocalName":   {activity("Chess Club", "Klub", 5), activity("Drama Club", "Klub", 5)},
		"SeedOverCapacity":     {activity("Chess Club", "Sakk Klub", 1, "a@x.edu", "b@x.edu")},
		"DuplicateParticipant": {activity("Chess Club", "Sakk Klub", 5, "a@x.edu", "a@x.edu")},
	}
	for name, activities := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(activities)
			assert.Error(t, err)
		})
	}

	t.Run("MissingHungarianText", func(t *testing.T) {
		a := activity("Chess Club", "Sakk Klub", 5)
		delete(a.Text, i18n.Hungarian)
		_, err := New([]models.Activity{a})
		assert.Error(t, err)
	})

	t.Run("EnglishNameDiffersFromID", func(t *testing.T) {
		a := activity("Chess Club", "Sakk Klub", 5)
		a.Text[i18n.English] = models.ActivityText{Name: "Chess"}
		_, err := New([]models.Activity{a})
		assert.Error(t, err)
	})
}
