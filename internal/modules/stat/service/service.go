package stat

import (
	"context"

	messagerepo "github.com/rakandev/portfolio-cms/internal/modules/message/repository"
	postrepo "github.com/rakandev/portfolio-cms/internal/modules/post/repository"
	projectrepo "github.com/rakandev/portfolio-cms/internal/modules/project/repository"
	viewrepo "github.com/rakandev/portfolio-cms/internal/modules/view/repository"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalProjects  int64 `json:"total_projects"`
	TotalPosts     int64 `json:"total_posts"`
	UnreadMessages int64 `json:"unread_messages"`
	TotalViews     int64 `json:"total_views"`
}

type StatService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type statService struct {
	projects projectrepo.ProjectRepository
	posts    postrepo.PostRepository
	messages messagerepo.MessageRepository
	views    viewrepo.PageViewRepository
}

func NewStatService(
	projects projectrepo.ProjectRepository,
	posts postrepo.PostRepository,
	messages messagerepo.MessageRepository,
	views viewrepo.PageViewRepository,
) StatService {
	return &statService{projects: projects, posts: posts, messages: messages, views: views}
}

func (s *statService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalProjects, err = s.projects.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = s.posts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.UnreadMessages, err = s.messages.CountUnread(ctx); err != nil {
		return nil, err
	}
	if stats.TotalViews, err = s.views.TotalViews(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
