package message

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/message/dto"
	"github.com/rakandev/portfolio-cms/internal/modules/message/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
	"github.com/rakandev/portfolio-cms/pkg/ratelimiter"
)

type recordingNotifier struct {
	notified []*entity.Message
}

func (n *recordingNotifier) NotifyNewMessage(_ context.Context, m *entity.Message) {
	n.notified = append(n.notified, m)
}

func setupService(t *testing.T, limiter ratelimiter.Limiter, notifier Notifier) MessageService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Message{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewMessageService(repository.NewMessageRepository(db), limiter, notifier)
}

func TestSubmitMessageNormalizesAndNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := setupService(t, nil, notifier)
	ctx := context.Background()

	created, err := svc.SubmitMessage(ctx, "198.51.100.7", dto.CreateMessageRequest{
		Name:    "  Jane Visitor  ",
		Email:   " Jane@Example.COM ",
		Content: "hello there",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if created.Name != "Jane Visitor" {
		t.Errorf("name = %q, want trimmed", created.Name)
	}
	if created.Email != "jane@example.com" {
		t.Errorf("email = %q, want lowercased and trimmed", created.Email)
	}
	if len(notifier.notified) != 1 {
		t.Fatalf("notified %d times, want 1", len(notifier.notified))
	}
	if notifier.notified[0].ID != created.ID {
		t.Error("notifier received a different message")
	}
}

func TestSubmitMessageRejectsBlankFields(t *testing.T) {
	svc := setupService(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateMessageRequest
	}{
		{"whitespace name", dto.CreateMessageRequest{Name: "   ", Email: "a@example.com", Content: "hi"}},
		{"whitespace email", dto.CreateMessageRequest{Name: "A", Email: " \t ", Content: "hi"}},
		{"whitespace content", dto.CreateMessageRequest{Name: "A", Email: "a@example.com", Content: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitMessage(ctx, "203.0.113.9", tt.req)
			if err == nil {
				t.Fatal("blank field should be rejected")
			}
			if apperror.MapErrorToStatus(err) != 400 {
				t.Errorf("status = %d, want 400", apperror.MapErrorToStatus(err))
			}
		})
	}

	// Nothing was persisted.
	_, pagination, err := svc.GetMessages(ctx, dto.MessageFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if pagination.Total != 0 {
		t.Errorf("total = %d, want 0", pagination.Total)
	}
}

func TestSubmitMessageTrimsSubjectAndContent(t *testing.T) {
	svc := setupService(t, nil, nil)
	ctx := context.Background()

	subject := "  Hello  "
	created, err := svc.SubmitMessage(ctx, "203.0.113.9", dto.CreateMessageRequest{
		Name:    "A",
		Email:   "a@example.com",
		Subject: &subject,
		Content: "  hi there  ",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.Subject == nil || *created.Subject != "Hello" {
		t.Errorf("subject = %v, want trimmed Hello", created.Subject)
	}

	stored, err := svc.GetMessage(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Content != "hi there" {
		t.Errorf("content = %q, want trimmed", stored.Content)
	}

	// A whitespace-only subject is treated as absent.
	blank := "   "
	created, err = svc.SubmitMessage(ctx, "203.0.113.9", dto.CreateMessageRequest{
		Name:    "A",
		Email:   "a@example.com",
		Subject: &blank,
		Content: "hi",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.Subject != nil {
		t.Errorf("subject = %q, want nil", *created.Subject)
	}
}

func TestSubmitMessageRateLimited(t *testing.T) {
	limiter := ratelimiter.NewMemoryLimiter(2, time.Hour)
	defer limiter.Stop()
	svc := setupService(t, limiter, nil)
	ctx := context.Background()

	req := dto.CreateMessageRequest{Name: "A", Email: "a@example.com", Content: "hi"}

	for i := 0; i < 2; i++ {
		if _, err := svc.SubmitMessage(ctx, "203.0.113.9", req); err != nil {
			t.Fatalf("submit %d failed: %v", i+1, err)
		}
	}

	_, err := svc.SubmitMessage(ctx, "203.0.113.9", req)
	if err == nil {
		t.Fatal("third submit should be rate limited")
	}
	if apperror.MapErrorToStatus(err) != 429 {
		t.Errorf("status = %d, want 429", apperror.MapErrorToStatus(err))
	}

	// Nothing was persisted for the rejected request.
	_, pagination, err := svc.GetMessages(ctx, dto.MessageFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if pagination.Total != 2 {
		t.Errorf("total = %d, want 2", pagination.Total)
	}

	// A different client is unaffected.
	if _, err := svc.SubmitMessage(ctx, "203.0.113.10", req); err != nil {
		t.Errorf("other client should be allowed: %v", err)
	}
}

func TestUpdateMessageFlags(t *testing.T) {
	svc := setupService(t, nil, nil)
	ctx := context.Background()

	created, err := svc.SubmitMessage(ctx, "203.0.113.9", dto.CreateMessageRequest{
		Name: "A", Email: "a@example.com", Content: "hi",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	read, starred := true, true
	updated, err := svc.UpdateMessage(ctx, created.ID, dto.UpdateMessageRequest{
		IsRead:    &read,
		IsStarred: &starred,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.IsRead || !updated.IsStarred {
		t.Error("flags not applied")
	}
	if updated.RepliedAt != nil {
		t.Error("replied_at should stay nil until marked replied")
	}

	replied := true
	updated, err = svc.UpdateMessage(ctx, created.ID, dto.UpdateMessageRequest{Replied: &replied})
	if err != nil {
		t.Fatalf("mark replied failed: %v", err)
	}
	if updated.RepliedAt == nil {
		t.Fatal("replied_at should be set")
	}
	first := *updated.RepliedAt

	// Marking replied again keeps the original timestamp.
	updated, err = svc.UpdateMessage(ctx, created.ID, dto.UpdateMessageRequest{Replied: &replied})
	if err != nil {
		t.Fatalf("second mark replied failed: %v", err)
	}
	if !updated.RepliedAt.Equal(first) {
		t.Error("replied_at changed on repeated mark")
	}
}

func TestCountUnreadSkipsArchived(t *testing.T) {
	svc := setupService(t, nil, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.SubmitMessage(ctx, "203.0.113.9", dto.CreateMessageRequest{
			Name: "A", Email: "a@example.com", Content: "hi",
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	messages, _, err := svc.GetMessages(ctx, dto.MessageFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	archived := true
	if _, err := svc.UpdateMessage(ctx, messages[0].ID, dto.UpdateMessageRequest{IsArchived: &archived}); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	count, err := svc.CountUnread(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("unread = %d, want 2 with archived excluded", count)
	}
}
