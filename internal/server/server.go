package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rakandev/portfolio-cms/internal/config"
	"github.com/rakandev/portfolio-cms/internal/middleware"
	certificatehandler "github.com/rakandev/portfolio-cms/internal/modules/certificate/delivery/http"
	certificaterepo "github.com/rakandev/portfolio-cms/internal/modules/certificate/repository"
	certificateservice "github.com/rakandev/portfolio-cms/internal/modules/certificate/service"
	educationhandler "github.com/rakandev/portfolio-cms/internal/modules/education/delivery/http"
	educationrepo "github.com/rakandev/portfolio-cms/internal/modules/education/repository"
	educationservice "github.com/rakandev/portfolio-cms/internal/modules/education/service"
	experiencehandler "github.com/rakandev/portfolio-cms/internal/modules/experience/delivery/http"
	experiencerepo "github.com/rakandev/portfolio-cms/internal/modules/experience/repository"
	experienceservice "github.com/rakandev/portfolio-cms/internal/modules/experience/service"
	messagehandler "github.com/rakandev/portfolio-cms/internal/modules/message/delivery/http"
	messagerepo "github.com/rakandev/portfolio-cms/internal/modules/message/repository"
	messageservice "github.com/rakandev/portfolio-cms/internal/modules/message/service"
	"github.com/rakandev/portfolio-cms/internal/modules/notification"
	notificationhandler "github.com/rakandev/portfolio-cms/internal/modules/notification/delivery/http"
	posthandler "github.com/rakandev/portfolio-cms/internal/modules/post/delivery/http"
	postrepo "github.com/rakandev/portfolio-cms/internal/modules/post/repository"
	postservice "github.com/rakandev/portfolio-cms/internal/modules/post/service"
	profilehandler "github.com/rakandev/portfolio-cms/internal/modules/profile/delivery/http"
	profilerepo "github.com/rakandev/portfolio-cms/internal/modules/profile/repository"
	profileservice "github.com/rakandev/portfolio-cms/internal/modules/profile/service"
	projecthandler "github.com/rakandev/portfolio-cms/internal/modules/project/delivery/http"
	projectrepo "github.com/rakandev/portfolio-cms/internal/modules/project/repository"
	projectservice "github.com/rakandev/portfolio-cms/internal/modules/project/service"
	searchhandler "github.com/rakandev/portfolio-cms/internal/modules/search/delivery/http"
	searchservice "github.com/rakandev/portfolio-cms/internal/modules/search/service"
	settinghandler "github.com/rakandev/portfolio-cms/internal/modules/setting/delivery/http"
	settingrepo "github.com/rakandev/portfolio-cms/internal/modules/setting/repository"
	settingservice "github.com/rakandev/portfolio-cms/internal/modules/setting/service"
	skillhandler "github.com/rakandev/portfolio-cms/internal/modules/skill/delivery/http"
	skillrepo "github.com/rakandev/portfolio-cms/internal/modules/skill/repository"
	skillservice "github.com/rakandev/portfolio-cms/internal/modules/skill/service"
	sociallinkhandler "github.com/rakandev/portfolio-cms/internal/modules/sociallink/delivery/http"
	sociallinkrepo "github.com/rakandev/portfolio-cms/internal/modules/sociallink/repository"
	sociallinkservice "github.com/rakandev/portfolio-cms/internal/modules/sociallink/service"
	stathandler "github.com/rakandev/portfolio-cms/internal/modules/stat/delivery/http"
	statservice "github.com/rakandev/portfolio-cms/internal/modules/stat/service"
	testimonialhandler "github.com/rakandev/portfolio-cms/internal/modules/testimonial/delivery/http"
	testimonialrepo "github.com/rakandev/portfolio-cms/internal/modules/testimonial/repository"
	testimonialservice "github.com/rakandev/portfolio-cms/internal/modules/testimonial/service"
	uploadhandler "github.com/rakandev/portfolio-cms/internal/modules/upload/delivery/http"
	userhandler "github.com/rakandev/portfolio-cms/internal/modules/user/delivery/http"
	userrepo "github.com/rakandev/portfolio-cms/internal/modules/user/repository"
	userservice "github.com/rakandev/portfolio-cms/internal/modules/user/service"
	viewhandler "github.com/rakandev/portfolio-cms/internal/modules/view/delivery/http"
	viewrepo "github.com/rakandev/portfolio-cms/internal/modules/view/repository"
	viewservice "github.com/rakandev/portfolio-cms/internal/modules/view/service"
	"github.com/rakandev/portfolio-cms/pkg/ratelimiter"
	"github.com/rakandev/portfolio-cms/pkg/storage"
)

// Server owns the router and the background workers that need an orderly
// shutdown (view flusher, notification hub, memory limiter).
type Server struct {
	cfg    *config.Config
	router *gin.Engine

	viewSvc viewservice.ViewService
	hub     *notification.Hub
	cleanup []func()
}

// New wires every module. rdb, imageStorage and searchSvc may be nil; the
// features backed by them degrade instead of failing startup.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, imageStorage storage.ImageStorage, searchSvc searchservice.SearchService) *Server {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg}

	// Repositories.
	users := userrepo.NewUserRepository(db)
	profiles := profilerepo.NewProfileRepository(db)
	projects := projectrepo.NewProjectRepository(db)
	posts := postrepo.NewPostRepository(db)
	experiences := experiencerepo.NewExperienceRepository(db)
	educations := educationrepo.NewEducationRepository(db)
	skills := skillrepo.NewSkillRepository(db)
	certificates := certificaterepo.NewCertificateRepository(db)
	testimonials := testimonialrepo.NewTestimonialRepository(db)
	socialLinks := sociallinkrepo.NewSocialLinkRepository(db)
	messages := messagerepo.NewMessageRepository(db)
	settings := settingrepo.NewSettingRepository(db)
	pageViews := viewrepo.NewPageViewRepository(db)

	// Contact-form rate limiting: shared window via redis when available,
	// per-process otherwise.
	var contactLimiter ratelimiter.Limiter
	if rdb != nil {
		contactLimiter = ratelimiter.NewRedisLimiter(rdb, "contact", cfg.ContactRateLimit, cfg.ContactRateWindow)
	} else {
		memLimiter := ratelimiter.NewMemoryLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow)
		s.cleanup = append(s.cleanup, memLimiter.Stop)
		contactLimiter = memLimiter
	}

	s.hub = notification.NewHub(rdb)
	s.viewSvc = viewservice.NewViewService(pageViews, rdb, time.Minute)

	// Services.
	authSvc := userservice.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	profileSvc := profileservice.NewProfileService(profiles)
	projectSvc := projectservice.NewProjectService(projects, searchSvc)
	postSvc := postservice.NewPostService(posts, searchSvc)
	experienceSvc := experienceservice.NewExperienceService(experiences)
	educationSvc := educationservice.NewEducationService(educations)
	skillSvc := skillservice.NewSkillService(skills)
	certificateSvc := certificateservice.NewCertificateService(certificates)
	testimonialSvc := testimonialservice.NewTestimonialService(testimonials)
	socialLinkSvc := sociallinkservice.NewSocialLinkService(socialLinks)
	messageSvc := messageservice.NewMessageService(messages, contactLimiter, s.hub)
	settingSvc := settingservice.NewSettingService(settings)
	statSvc := statservice.NewStatService(projects, posts, messages, pageViews)

	// Handlers.
	authHandler := userhandler.NewAuthHandler(authSvc)
	profileHandler := profilehandler.NewProfileHandler(profileSvc)
	projectHandler := projecthandler.NewProjectHandler(projectSvc)
	postHandler := posthandler.NewPostHandler(postSvc)
	experienceHandler := experiencehandler.NewExperienceHandler(experienceSvc)
	educationHandler := educationhandler.NewEducationHandler(educationSvc)
	skillHandler := skillhandler.NewSkillHandler(skillSvc)
	certificateHandler := certificatehandler.NewCertificateHandler(certificateSvc)
	testimonialHandler := testimonialhandler.NewTestimonialHandler(testimonialSvc)
	socialLinkHandler := sociallinkhandler.NewSocialLinkHandler(socialLinkSvc)
	messageHandler := messagehandler.NewMessageHandler(messageSvc)
	settingHandler := settinghandler.NewSettingHandler(settingSvc)
	statHandler := stathandler.NewStatHandler(statSvc)
	viewHandler := viewhandler.NewViewHandler(s.viewSvc)
	searchHandler := searchhandler.NewSearchHandler(searchSvc)
	notificationHandler := notificationhandler.NewNotificationHandler(s.hub)
	uploadHandler := uploadhandler.NewUploadHandler(imageStorage)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.POST("/auth/login", authHandler.Login)

	auth := middleware.NewAuthMiddleware(cfg.JWTSecret)

	admin := api.Group("/admin", auth.RequireAuth())
	{
		admin.GET("/me", authHandler.Me)
		admin.PUT("/me", authHandler.UpdateAccount)

		admin.GET("/stats", statHandler.Dashboard)

		admin.GET("/profile", profileHandler.Get)
		admin.PUT("/profile", profileHandler.Update)

		admin.POST("/projects", projectHandler.Create)
		admin.GET("/projects", projectHandler.List)
		admin.GET("/projects/:id", projectHandler.Get)
		admin.PUT("/projects/:id", projectHandler.Update)
		admin.DELETE("/projects/:id", projectHandler.Delete)

		admin.POST("/posts", postHandler.Create)
		admin.GET("/posts", postHandler.List)
		admin.GET("/posts/:id", postHandler.Get)
		admin.PUT("/posts/:id", postHandler.Update)
		admin.DELETE("/posts/:id", postHandler.Delete)

		admin.POST("/experiences", experienceHandler.Create)
		admin.GET("/experiences", experienceHandler.List)
		admin.GET("/experiences/:id", experienceHandler.Get)
		admin.PUT("/experiences/:id", experienceHandler.Update)
		admin.DELETE("/experiences/:id", experienceHandler.Delete)

		admin.POST("/educations", educationHandler.Create)
		admin.GET("/educations", educationHandler.List)
		admin.GET("/educations/:id", educationHandler.Get)
		admin.PUT("/educations/:id", educationHandler.Update)
		admin.DELETE("/educations/:id", educationHandler.Delete)

		admin.POST("/skills", skillHandler.Create)
		admin.GET("/skills", skillHandler.List)
		admin.GET("/skills/:id", skillHandler.Get)
		admin.PUT("/skills/:id", skillHandler.Update)
		admin.DELETE("/skills/:id", skillHandler.Delete)

		admin.POST("/certificates", certificateHandler.Create)
		admin.GET("/certificates", certificateHandler.List)
		admin.GET("/certificates/:id", certificateHandler.Get)
		admin.PUT("/certificates/:id", certificateHandler.Update)
		admin.DELETE("/certificates/:id", certificateHandler.Delete)

		admin.POST("/testimonials", testimonialHandler.Create)
		admin.GET("/testimonials", testimonialHandler.List)
		admin.GET("/testimonials/:id", testimonialHandler.Get)
		admin.PUT("/testimonials/:id", testimonialHandler.Update)
		admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

		admin.POST("/social-links", socialLinkHandler.Create)
		admin.GET("/social-links", socialLinkHandler.List)
		admin.GET("/social-links/:id", socialLinkHandler.Get)
		admin.PUT("/social-links/:id", socialLinkHandler.Update)
		admin.DELETE("/social-links/:id", socialLinkHandler.Delete)

		admin.GET("/messages", messageHandler.List)
		admin.GET("/messages/ws", notificationHandler.Stream)
		admin.GET("/messages/:id", messageHandler.Get)
		admin.PUT("/messages/:id", messageHandler.Update)
		admin.DELETE("/messages/:id", messageHandler.Delete)

		admin.GET("/settings", settingHandler.List)
		admin.GET("/settings/:key", settingHandler.Get)
		admin.PUT("/settings/:key", settingHandler.Upsert)
		admin.DELETE("/settings/:key", settingHandler.Delete)

		admin.GET("/views", viewHandler.List)

		admin.POST("/uploads", uploadHandler.Upload)
		admin.DELETE("/uploads", uploadHandler.Delete)
	}

	public := api.Group("/public")
	{
		public.GET("/profile", profileHandler.PublicGet)
		public.GET("/projects", projectHandler.PublicList)
		public.GET("/projects/:slug", projectHandler.PublicGetBySlug)
		public.GET("/posts", postHandler.PublicList)
		public.GET("/posts/:slug", postHandler.PublicGetBySlug)
		public.GET("/experiences", experienceHandler.PublicList)
		public.GET("/educations", educationHandler.PublicList)
		public.GET("/skills", skillHandler.PublicList)
		public.GET("/certificates", certificateHandler.PublicList)
		public.GET("/testimonials", testimonialHandler.PublicList)
		public.GET("/social-links", socialLinkHandler.PublicList)
		public.GET("/settings", settingHandler.PublicList)
		public.GET("/search", searchHandler.Search)
		public.POST("/messages", messageHandler.Submit)
		public.POST("/views", viewHandler.Track)
	}

	s.router = router
	return s
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests and
// stops the background workers.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s", s.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	s.viewSvc.Stop()
	s.hub.Close()
	for _, fn := range s.cleanup {
		fn()
	}

	return nil
}
