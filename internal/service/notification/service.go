package notification

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-api/internal/email"
	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

// Service manages persisted notifications. When a mail recipient is
// configured, every new notification is also sent there; mail delivery
// failures are logged but never fail the create.
type Service struct {
	reg      *repository.Registry
	sender   email.Sender
	notifyTo string
}

func NewService(reg *repository.Registry, sender email.Sender, notifyTo string) *Service {
	if sender == nil {
		sender = email.NopSender{}
	}
	return &Service{reg: reg, sender: sender, notifyTo: notifyTo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateNotificationRequest) (model.Notification, error) {
	n := model.Notification{
		ID:        uuid.NewString(),
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		IsRead:    false,
		RelatedID: req.RelatedID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reg.Notifications.Insert(ctx, n); err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	if s.notifyTo != "" {
		if err := s.sender.Send(s.notifyTo, n.Title, n.Message); err != nil {
			log.Warn().Err(err).Str("notification_id", n.ID).Msg("notification email delivery failed")
		}
	}
	return n, nil
}

// List returns notifications newest first.
func (s *Service) List(_ context.Context) []model.Notification {
	out := s.reg.Notifications.List()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Service) UnreadCount(_ context.Context) int {
	count := 0
	for _, n := range s.reg.Notifications.List() {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (s *Service) MarkRead(ctx context.Context, id string) (model.Notification, error) {
	n, ok := s.reg.Notifications.Get(id)
	if !ok {
		return model.Notification{}, repository.ErrNotFound
	}
	n.IsRead = true
	if err := s.reg.Notifications.Update(ctx, n); err != nil {
		return model.Notification{}, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return n, nil
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	items := s.reg.Notifications.List()
	for i := range items {
		items[i].IsRead = true
	}
	if err := s.reg.Notifications.Replace(ctx, items); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.reg.Notifications.Remove(ctx, id)
}
