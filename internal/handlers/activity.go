package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/PetroczyP/mergington-activities/internal/i18n"
	"github.com/PetroczyP/mergington-activities/internal/models"
	"github.com/PetroczyP/mergington-activities/internal/notifier"
	"github.com/PetroczyP/mergington-activities/internal/registration"
)

type ActivityHandler struct {
	service     *registration.Service
	notifier    notifier.Notifier
	logger      *zap.Logger
	defaultLang i18n.Lang
}

func NewActivityHandler(service *registration.Service, n notifier.Notifier, logger *zap.Logger, defaultLang i18n.Lang) *ActivityHandler {
	if n == nil {
		n = notifier.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if !defaultLang.Valid() {
		defaultLang = i18n.Default
	}
	return &ActivityHandler{
		service:     service,
		notifier:    n,
		logger:      logger,
		defaultLang: defaultLang,
	}
}

// LangInput selects the response language. An explicit lang query wins over
// Accept-Language.
type LangInput struct {
	Lang           string `query:"lang" doc:"Response language (en or hu)"`
	AcceptLanguage string `header:"Accept-Language"`
}

func (h *ActivityHandler) lang(in LangInput) (i18n.Lang, error) {
	if in.Lang != "" {
		lang, ok := i18n.ParseLang(in.Lang)
		if !ok {
			fallback := h.headerLang(in.AcceptLanguage)
			return "", huma.Error422UnprocessableEntity(i18n.Sprintf(fallback, i18n.MsgUnsupportedLanguage), &huma.ErrorDetail{
				Location: "query.lang",
				Value:    in.Lang,
			})
		}
		return lang, nil
	}
	return h.headerLang(in.AcceptLanguage), nil
}

func (h *ActivityHandler) headerLang(header string) i18n.Lang {
	if strings.TrimSpace(header) == "" {
		return h.defaultLang
	}
	return i18n.MatchAcceptLanguage(header)
}

type ListActivitiesRequest struct {
	LangInput
}

type ListActivitiesResponse struct {
	Body map[string]models.ActivityView
}

func (h *ActivityHandler) HandleList(ctx context.Context, input *ListActivitiesRequest) (*ListActivitiesResponse, error) {
	lang, err := h.lang(input.LangInput)
	if err != nil {
		return nil, err
	}

	views := h.service.List(ctx, lang)
	res := &ListActivitiesResponse{Body: make(map[string]models.ActivityView, len(views))}
	for _, v := range views {
		res.Body[v.Name] = v
	}
	return res, nil
}

type GetActivityRequest struct {
	LangInput
	ActivityName string `path:"activityName" doc:"Activity name in the requested language"`
}

type GetActivityResponse struct {
	Body models.ActivityView
}

func (h *ActivityHandler) HandleGet(ctx context.Context, input *GetActivityRequest) (*GetActivityResponse, error) {
	lang, err := h.lang(input.LangInput)
	if err != nil {
		return nil, err
	}

	view, err := h.service.Get(ctx, input.ActivityName, lang)
	if err != nil {
		return nil, h.statusError(err, lang)
	}
	return &GetActivityResponse{Body: *view}, nil
}

type MembershipRequest struct {
	LangInput
	ActivityName string `path:"activityName" doc:"Activity name in the requested language"`
	Body         struct {
		Email string `json:"email" format:"email" doc:"Student email"`
	}
}

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *ActivityHandler) HandleSignup(ctx context.Context, input *MembershipRequest) (*MessageResponse, error) {
	lang, err := h.lang(input.LangInput)
	if err != nil {
		return nil, err
	}

	result, err := h.service.Register(ctx, input.ActivityName, normalizeEmail(input.Body.Email), lang)
	if err != nil {
		return nil, h.statusError(err, lang)
	}

	if err := h.notifier.NotifySignup(ctx, event(result)); err != nil {
		h.logger.Warn("signup notification failed", zap.String("activity", result.ActivityID), zap.Error(err))
	}

	res := &MessageResponse{}
	res.Body.Message = result.Message
	return res, nil
}

func (h *ActivityHandler) HandleUnregister(ctx context.Context, input *MembershipRequest) (*MessageResponse, error) {
	lang, err := h.lang(input.LangInput)
	if err != nil {
		return nil, err
	}

	result, err := h.service.Unregister(ctx, input.ActivityName, normalizeEmail(input.Body.Email), lang)
	if err != nil {
		return nil, h.statusError(err, lang)
	}

	if err := h.notifier.NotifyUnregister(ctx, event(result)); err != nil {
		h.logger.Warn("unregister notification failed", zap.String("activity", result.ActivityID), zap.Error(err))
	}

	res := &MessageResponse{}
	res.Body.Message = result.Message
	return res, nil
}

// statusError maps service errors to huma status errors carrying the
// localized message as the problem detail.
func (h *ActivityHandler) statusError(err error, lang i18n.Lang) error {
	switch {
	case errors.Is(err, registration.ErrNotFound):
		return huma.Error404NotFound(i18n.Sprintf(lang, i18n.MsgActivityNotFound))
	case errors.Is(err, registration.ErrAlreadyRegistered):
		return huma.Error400BadRequest(i18n.Sprintf(lang, i18n.MsgAlreadyRegistered))
	case errors.Is(err, registration.ErrCapacityExceeded):
		return huma.Error400BadRequest(i18n.Sprintf(lang, i18n.MsgActivityFull))
	case errors.Is(err, registration.ErrNotRegistered):
		return huma.Error400BadRequest(i18n.Sprintf(lang, i18n.MsgNotRegistered))
	}
	h.logger.Error("unexpected registration error", zap.Error(err))
	return huma.Error500InternalServerError("Internal server error")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func event(r *registration.Result) notifier.Event {
	return notifier.Event{
		ActivityID:     r.ActivityID,
		ActivityName:   r.ActivityName,
		Participant:    r.Participant,
		Lang:           r.Lang,
		AvailableSpots: r.AvailableSpots,
	}
}
