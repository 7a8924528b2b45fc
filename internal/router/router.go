package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/notebook/internal/auth"
	"github.com/monocle-dev/notebook/internal/handlers"
	"github.com/monocle-dev/notebook/internal/metrics"
	"github.com/monocle-dev/notebook/internal/middleware"
	"github.com/monocle-dev/notebook/internal/services"
	"github.com/monocle-dev/notebook/internal/views"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Handler        *handlers.Handler
	Accounts       *services.AccountService
	Cookies        *auth.Cookies
	Metrics        *metrics.Metrics
	Log            *logrus.Logger
	AllowedOrigins []string
}

func NewRouter(opts Options) (*gin.Engine, error) {
	templates, err := views.Load()

	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(templates)

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(opts.Log))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := opts.Handler

	r.GET("/health", h.HealthCheck)
	r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	site := r.Group("/", middleware.LoadUser(opts.Cookies, opts.Accounts, opts.Log))
	{
		site.GET("/login", h.LoginPage)
		site.POST("/login", h.Login)
		site.GET("/sign-up", h.SignUpPage)
		site.POST("/sign-up", h.SignUp)

		private := site.Group("/", middleware.RequireUser(opts.Cookies, opts.Log))
		{
			private.GET("/", h.Index)
			private.GET("/logout", h.Logout)
			private.GET("/note_list", h.NoteList)
			private.GET("/note/:id", h.ViewNote)
			private.GET("/edit/:id", h.EditNotePage)
			private.GET("/delete/:id", h.ConfirmDelete)

			forms := private.Group("/", middleware.RequireCSRF(opts.Cookies.Sessions(), opts.Log))
			{
				forms.POST("/add", h.AddNote)
				forms.POST("/edit/:id", h.EditNote)
				forms.POST("/delete/:id", h.DeleteNote)
			}
		}
	}

	return r, nil
}
