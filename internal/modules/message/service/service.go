package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/message/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/message/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/ratelimiter"
	"github.com/rakandev/portfolio-cms/pkg/response"
)

// Notifier fans a new contact-form submission out to connected admin
// clients. A nil notifier disables the feature.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, message *entity.Message)
}

type MessageService interface {
	SubmitMessage(ctx context.Context, clientIP string, req dto.CreateMessageRequest) (*dto.CreatedMessageResponse, error)
	GetMessages(ctx context.Context, filter dto.MessageFilter) ([]*entity.Message, response.Pagination, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, req dto.UpdateMessageRequest) (*entity.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int64, error)
}

type messageService struct {
	repo     repository.MessageRepository
	limiter  ratelimiter.Limiter
	notifier Notifier
}

func NewMessageService(repo repository.MessageRepository, limiter ratelimiter.Limiter, notifier Notifier) MessageService {
	return &messageService{repo: repo, limiter: limiter, notifier: notifier}
}

// SubmitMessage is the public contact-form entry point. Fields are
// validated on their trimmed form, and the rate limit is checked before
// anything is persisted; a rejection carries no hint of the remaining
// quota.
func (s *messageService) SubmitMessage(ctx context.Context, clientIP string, req dto.CreateMessageRequest) (*dto.CreatedMessageResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	content := strings.TrimSpace(req.Content)

	// Binding only rejects empty strings; whitespace-only fields would
	// otherwise persist a blank message.
	if name == "" || email == "" || content == "" {
		return nil, fmt.Errorf("%w: name, email and content must not be blank", apperror.ErrInvalidInput)
	}

	var subject *string
	if req.Subject != nil {
		if trimmed := strings.TrimSpace(*req.Subject); trimmed != "" {
			subject = &trimmed
		}
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, clientIP)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("%w: too many messages, please try again later", apperror.ErrRateLimitExceeded)
		}
	}

	message := &entity.Message{
		Name:    name,
		Email:   email,
		Subject: subject,
		Content: content,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(ctx, message)
	}

	return &dto.CreatedMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		CreatedAt: message.CreatedAt,
	}, nil
}

func (s *messageService) GetMessages(ctx context.Context, filter dto.MessageFilter) ([]*entity.Message, response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	messages, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	return messages, response.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *messageService) GetMessage(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return message, nil
}

func (s *messageService) UpdateMessage(ctx context.Context, id uuid.UUID, req dto.UpdateMessageRequest) (*entity.Message, error) {
	message, err := s.GetMessage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsRead != nil {
		message.IsRead = *req.IsRead
	}
	if req.IsStarred != nil {
		message.IsStarred = *req.IsStarred
	}
	if req.IsArchived != nil {
		message.IsArchived = *req.IsArchived
	}
	if req.Replied != nil {
		if *req.Replied {
			if message.RepliedAt == nil {
				now := time.Now()
				message.RepliedAt = &now
			}
		} else {
			message.RepliedAt = nil
		}
	}

	if err := s.repo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	message, err := s.GetMessage(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, message.ID); err != nil {
		return err
	}
	log.Printf("message from %s deleted", message.Email)
	return nil
}

func (s *messageService) CountUnread(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}
