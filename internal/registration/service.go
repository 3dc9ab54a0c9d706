// Package registration implements capacity-safe signup and unregistration
// over the in-memory participant store.
package registration

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/PetroczyP/mergington-activities/internal/catalog"
	"github.com/PetroczyP/mergington-activities/internal/i18n"
	"github.com/PetroczyP/mergington-activities/internal/models"
)

// Result is the outcome of a successful Register or Unregister.
type Result struct {
	ActivityID     string
	ActivityName   string
	Participant    string
	Lang           i18n.Lang
	Message        string
	AvailableSpots int
}

// Service resolves localized activity names through the catalog and applies
// registrations to the store. It is safe for concurrent use.
type Service struct {
	catalog *catalog.Catalog
	store   *Store
	logger  *zap.Logger
}

// NewService builds a service whose store is seeded from the catalog.
func NewService(c *catalog.Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: c,
		store:   NewStore(c.Activities()),
		logger:  logger,
	}
}

func (s *Service) resolve(activityRef string, lang i18n.Lang) (string, error) {
	if !lang.Valid() {
		return "", fmt.Errorf("resolve %q: unsupported language %q", activityRef, lang)
	}
	id, ok := s.catalog.Resolve(activityRef, lang)
	if !ok {
		return "", reject(ErrNotFound, activityRef, "")
	}
	return id, nil
}

// Register signs participant up for the activity named activityRef in lang.
// Rejections wrap ErrNotFound, ErrAlreadyRegistered or ErrCapacityExceeded.
func (s *Service) Register(ctx context.Context, activityRef, participant string, lang i18n.Lang) (*Result, error) {
	id, err := s.resolve(activityRef, lang)
	if err != nil {
		return nil, err
	}

	left, err := s.store.Add(id, participant)
	if err != nil {
		s.logger.Debug("signup rejected",
			zap.String("activity", id),
			zap.String("participant", participant),
			zap.String("lang", lang.String()),
			zap.Error(err),
		)
		return nil, reject(err, activityRef, participant)
	}

	name := s.catalog.DisplayName(id, lang)
	s.logger.Info("participant registered",
		zap.String("activity", id),
		zap.String("participant", participant),
		zap.String("lang", lang.String()),
		zap.Int("available_spots", left),
	)
	return &Result{
		ActivityID:     id,
		ActivityName:   name,
		Participant:    participant,
		Lang:           lang,
		Message:        i18n.Sprintf(lang, i18n.MsgSignedUp, participant, name),
		AvailableSpots: left,
	}, nil
}

// Unregister removes participant from the activity named activityRef in lang.
// Rejections wrap ErrNotFound or ErrNotRegistered.
func (s *Service) Unregister(ctx context.Context, activityRef, participant string, lang i18n.Lang) (*Result, error) {
	id, err := s.resolve(activityRef, lang)
	if err != nil {
		return nil, err
	}

	left, err := s.store.Remove(id, participant)
	if err != nil {
		s.logger.Debug("unregister rejected",
			zap.String("activity", id),
			zap.String("participant", participant),
			zap.String("lang", lang.String()),
			zap.Error(err),
		)
		return nil, reject(err, activityRef, participant)
	}

	name := s.catalog.DisplayName(id, lang)
	s.logger.Info("participant unregistered",
		zap.String("activity", id),
		zap.String("participant", participant),
		zap.String("lang", lang.String()),
		zap.Int("available_spots", left),
	)
	return &Result{
		ActivityID:     id,
		ActivityName:   name,
		Participant:    participant,
		Lang:           lang,
		Message:        i18n.Sprintf(lang, i18n.MsgUnregistered, participant, name),
		AvailableSpots: left,
	}, nil
}

// Get returns one activity rendered for lang.
func (s *Service) Get(ctx context.Context, activityRef string, lang i18n.Lang) (*models.ActivityView, error) {
	id, err := s.resolve(activityRef, lang)
	if err != nil {
		return nil, err
	}
	view, ok := s.view(id, lang)
	if !ok {
		return nil, reject(ErrNotFound, activityRef, "")
	}
	return &view, nil
}

// List returns every activity rendered for lang, in catalog order. Each
// participant list is a snapshot taken under that activity's lock.
func (s *Service) List(ctx context.Context, lang i18n.Lang) []models.ActivityView {
	if !lang.Valid() {
		lang = i18n.Default
	}
	ids := s.catalog.IDs()
	views := make([]models.ActivityView, 0, len(ids))
	for _, id := range ids {
		if view, ok := s.view(id, lang); ok {
			views = append(views, view)
		}
	}
	return views
}

func (s *Service) view(id string, lang i18n.Lang) (models.ActivityView, bool) {
	a, ok := s.catalog.Activity(id)
	if !ok {
		return models.ActivityView{}, false
	}
	participants, ok := s.store.Participants(id)
	if !ok {
		return models.ActivityView{}, false
	}
	text, _ := s.catalog.Localize(id, lang)
	return models.ActivityView{
		ID:              id,
		Name:            text.Name,
		Description:     text.Description,
		Schedule:        text.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
		AvailableSpots:  a.MaxParticipants - len(participants),
	}, true
}
