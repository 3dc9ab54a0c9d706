// Package catalog holds the static activity metadata and the bidirectional
// mapping between canonical activity ids and their localized names.
// A Catalog is immutable once built and safe for concurrent use.
package catalog

import (
	"fmt"
	"strings"

	"github.com/PetroczyP/mergington-activities/internal/i18n"
	"github.com/PetroczyP/mergington-activities/internal/models"
)

// Catalog indexes activities by canonical id and by localized name.
type Catalog struct {
	order      []string
	activities map[string]models.Activity
	// names maps a localized display name to its canonical id, per language.
	names map[i18n.Lang]map[string]string
}

// New validates the activities and builds a catalog. Seed participants are
// copied; the catalog never exposes them for mutation.
func New(activities []models.Activity) (*Catalog, error) {
	if len(activities) == 0 {
		return nil, fmt.Errorf("catalog: no activities")
	}

	c := &Catalog{
		order:      make([]string, 0, len(activities)),
		activities: make(map[string]models.Activity, len(activities)),
		names:      make(map[i18n.Lang]map[string]string),
	}
	for _, lang := range i18n.Supported() {
		c.names[lang] = make(map[string]string, len(activities))
	}

	for _, a := range activities {
		if err := validate(a); err != nil {
			return nil, err
		}
		if _, exists := c.activities[a.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate activity %q", a.ID)
		}
		for _, lang := range i18n.Supported() {
			name := a.Text[lang].Name
			if other, taken := c.names[lang][name]; taken {
				return nil, fmt.Errorf("catalog: %s name %q used by both %q and %q", lang, name, other, a.ID)
			}
			c.names[lang][name] = a.ID
		}

		a.Participants = append([]string(nil), a.Participants...)
		text := make(map[i18n.Lang]models.ActivityText, len(a.Text))
		for lang, t := range a.Text {
			text[lang] = t
		}
		a.Text = text

		c.activities[a.ID] = a
		c.order = append(c.order, a.ID)
	}

	return c, nil
}

// Default builds the catalog from the built-in seed data.
func Default() *Catalog {
	c, err := New(Seed())
	if err != nil {
		panic(err)
	}
	return c
}

func validate(a models.Activity) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("catalog: activity id is required")
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("catalog: %q: max participants must be positive, got %d", a.ID, a.MaxParticipants)
	}
	for _, lang := range i18n.Supported() {
		text, ok := a.Text[lang]
		if !ok || strings.TrimSpace(text.Name) == "" {
			return fmt.Errorf("catalog: %q: missing %s name", a.ID, lang)
		}
	}
	if a.Text[i18n.English].Name != a.ID {
		return fmt.Errorf("catalog: %q: english name %q must equal the id", a.ID, a.Text[i18n.English].Name)
	}
	for lang := range a.Text {
		if !lang.Valid() {
			return fmt.Errorf("catalog: %q: unsupported language %q", a.ID, lang)
		}
	}
	if len(a.Participants) > a.MaxParticipants {
		return fmt.Errorf("catalog: %q: %d seed participants exceed capacity %d", a.ID, len(a.Participants), a.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("catalog: %q: duplicate seed participant %q", a.ID, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Resolve maps an activity name given in lang to its canonical id.
// Hungarian requests also accept the canonical English name.
func (c *Catalog) Resolve(ref string, lang i18n.Lang) (string, bool) {
	if lang == i18n.Hungarian {
		if id, ok := c.names[i18n.Hungarian][ref]; ok {
			return id, true
		}
	}
	if _, ok := c.activities[ref]; ok {
		return ref, true
	}
	return "", false
}

// Activity returns the seed definition for a canonical id.
func (c *Catalog) Activity(id string) (models.Activity, bool) {
	a, ok := c.activities[id]
	if !ok {
		return models.Activity{}, false
	}
	a.Participants = append([]string(nil), a.Participants...)
	return a, true
}

// IDs returns the canonical ids in seed order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// Activities returns every seed definition in seed order.
func (c *Catalog) Activities() []models.Activity {
	out := make([]models.Activity, 0, len(c.order))
	for _, id := range c.order {
		a, _ := c.Activity(id)
		out = append(out, a)
	}
	return out
}

// Localize returns the display text of an activity, falling back to English
// for an unsupported language.
func (c *Catalog) Localize(id string, lang i18n.Lang) (models.ActivityText, bool) {
	a, ok := c.activities[id]
	if !ok {
		return models.ActivityText{}, false
	}
	if text, ok := a.Text[lang]; ok {
		return text, true
	}
	return a.Text[i18n.English], true
}

// DisplayName returns the localized name of an activity.
func (c *Catalog) DisplayName(id string, lang i18n.Lang) string {
	text, ok := c.Localize(id, lang)
	if !ok {
		return id
	}
	return text.Name
}

// Translate returns the name of an activity in another language.
func (c *Catalog) Translate(ref string, from, to i18n.Lang) (string, bool) {
	id, ok := c.Resolve(ref, from)
	if !ok {
		return "", false
	}
	return c.DisplayName(id, to), true
}

// Len returns the number of activities.
func (c *Catalog) Len() int {
	return len(c.order)
}
