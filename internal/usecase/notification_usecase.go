package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/i18n"
)

// PushSender delivers a push message to one device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]interface{}) error
}

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pushSender       PushSender
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	pushSender PushSender,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pushSender:       pushSender,
	}
}

type NotifyInput struct {
	RecipientID string
	SenderID    string
	SenderName  string
	Type        string
	Category    string
	Data        map[string]interface{}
}

// Notify persists a notification record and fires a push to the recipient's
// registered device. The push is best effort: its failure is logged, never
// returned, so the triggering write always stands.
func (uc *NotificationUseCase) Notify(ctx context.Context, input NotifyInput) error {
	recipient, err := uc.userRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		log.Printf("Notify Error: Recipient %s not found: %v", input.RecipientID, err)
		return err
	}

	lang := recipient.Language
	title := i18n.T(lang, "notification."+input.Type+".title")
	body := i18n.T(lang, "notification."+input.Type+".body")
	if input.SenderName != "" {
		body = fmt.Sprintf(body, input.SenderName)
	}

	notification := &entity.Notification{
		RecipientID: input.RecipientID,
		SenderID:    input.SenderID,
		Type:        input.Type,
		Category:    input.Category,
		Title:       title,
		Body:        body,
		Data:        input.Data,
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return err
	}

	if recipient.PushToken != "" && uc.pushSender != nil {
		go func(token, title, body string, data map[string]interface{}) {
			pushCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := uc.pushSender.Send(pushCtx, token, title, body, data); err != nil {
				log.Printf("Push Warning: Delivery to %s failed: %v", input.RecipientID, err)
			}
		}(recipient.PushToken, title, body, input.Data)
	}

	return nil
}

func (uc *NotificationUseCase) List(ctx context.Context, userID, category string, limit, offset int) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.ListByRecipient(ctx, userID, category, limit, offset)
}

func (uc *NotificationUseCase) CountUnread(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.RecipientID != userID {
		return errors.Forbidden("Not your notification", nil)
	}

	return uc.notificationRepo.MarkRead(ctx, id)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}
