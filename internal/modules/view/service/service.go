package view

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/modules/view/repository"
	"github.com/rakandev/portfolio-cms/pkg/apperror"
)

const (
	counterPrefix = "page_views:count:"
	pendingSetKey = "page_views:pending"
)

type ViewService interface {
	TrackView(ctx context.Context, path string) error
	GetPageViews(ctx context.Context) ([]*entity.PageView, error)
	TotalViews(ctx context.Context) (int64, error)
	Stop()
}

// viewService buffers increments in redis and flushes them to the database
// on a ticker, so a traffic burst costs one INCR per hit instead of one
// write transaction. Without redis it falls back to direct upserts.
type viewService struct {
	repo   repository.PageViewRepository
	rdb    *redis.Client
	stopCh chan struct{}
}

func NewViewService(repo repository.PageViewRepository, rdb *redis.Client, flushInterval time.Duration) ViewService {
	s := &viewService{repo: repo, rdb: rdb, stopCh: make(chan struct{})}

	if rdb != nil {
		if flushInterval <= 0 {
			flushInterval = time.Minute
		}
		go s.syncLoop(flushInterval)
	}

	return s
}

func (s *viewService) TrackView(ctx context.Context, path string) error {
	path = normalizePath(path)
	if path == "" {
		return fmt.Errorf("%w: path is required", apperror.ErrInvalidInput)
	}

	if s.rdb == nil {
		return s.repo.AddViews(ctx, path, 1)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Incr(ctx, counterPrefix+path)
	pipe.SAdd(ctx, pendingSetKey, path)
	if _, err := pipe.Exec(ctx); err != nil {
		// The buffer being down should not lose the view.
		return s.repo.AddViews(ctx, path, 1)
	}
	return nil
}

func (s *viewService) GetPageViews(ctx context.Context) ([]*entity.PageView, error) {
	return s.repo.FindAll(ctx)
}

func (s *viewService) TotalViews(ctx context.Context) (int64, error) {
	return s.repo.TotalViews(ctx)
}

func (s *viewService) syncLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Flush(context.Background()); err != nil {
				log.Printf("page view flush failed: %v", err)
			}
		case <-s.stopCh:
			return
		}
	}
}

// Flush drains the buffered counters into the database. Paths whose
// counter cannot be written back stay pending for the next pass.
func (s *viewService) Flush(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	paths, err := s.rdb.SMembers(ctx, pendingSetKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read pending paths: %w", err)
	}

	for _, path := range paths {
		raw, err := s.rdb.GetDel(ctx, counterPrefix+path).Result()
		if err == redis.Nil {
			s.rdb.SRem(ctx, pendingSetKey, path)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to drain counter for %s: %w", path, err)
		}

		delta, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || delta <= 0 {
			s.rdb.SRem(ctx, pendingSetKey, path)
			continue
		}

		if err := s.repo.AddViews(ctx, path, delta); err != nil {
			// Put the delta back so it is retried next tick.
			s.rdb.IncrBy(ctx, counterPrefix+path, delta)
			return fmt.Errorf("failed to persist views for %s: %w", path, err)
		}
		s.rdb.SRem(ctx, pendingSetKey, path)
	}

	return nil
}

// Stop terminates the sync loop and flushes whatever is still buffered.
func (s *viewService) Stop() {
	if s.rdb == nil {
		return
	}
	close(s.stopCh)
	if err := s.Flush(context.Background()); err != nil {
		log.Printf("final page view flush failed: %v", err)
	}
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 300 {
		path = path[:300]
	}
	return path
}
