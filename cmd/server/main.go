package main

import (
	"context"
	"log"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"scibind/internal/config"
	"scibind/internal/handlers"
	appMiddleware "scibind/internal/middleware"
	"scibind/internal/services"
	"scibind/internal/shell"
	"scibind/web"
	"scibind/web/templates/layouts"
	"scibind/web/templates/pages"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	cfg := config.Load()

	var authClient *auth.Client
	if cfg.FirebaseConfigured() {
		var err error
		authClient, err = services.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			if cfg.IsProduction() {
				log.Fatalf("Failed to initialize Firebase: %v", err)
			}
			log.Printf("Warning: Firebase initialization failed, sign-in is disabled: %v", err)
			authClient = nil
		}
	}
	if authClient == nil {
		if cfg.AllowAnonymous() {
			log.Println("Warning: Firebase not configured, binder pages are public")
		} else {
			log.Println("Warning: Firebase unavailable, binder pages redirect to login")
		}
	}

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = services.InitDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := services.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	} else {
		log.Println("Warning: DATABASE_URL not set, binders will not be resolved")
	}

	var binders appMiddleware.BinderFinder
	if db != nil {
		store := services.NewBinderStore(db)
		binders = store
		if cfg.RedisURL != "" {
			cache, err := services.NewRedisCache(cfg.RedisURL)
			if err != nil {
				log.Printf("Warning: Redis unavailable, binder lookups are uncached: %v", err)
			} else {
				defer cache.Close()
				binders = services.NewCachedBinderStore(store, cache, cfg.BinderCacheTTL)
			}
		}
	}

	binderPage, err := pages.NewBinderPage()
	if err != nil {
		log.Fatalf("Invalid binder page layout: %v", err)
	}

	e := echo.New()
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.FileFS("/favicon.ico", "static/favicon.ico", web.Static)
	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))

	authHandler := handlers.NewAuthHandler(authClient, db, cfg)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	routes := []shell.Route{
		{Pattern: pages.BinderPattern, Page: binderPage},
	}
	shell.Register(e, layouts.Base, routes,
		appMiddleware.RequireAuth(authClient, cfg.AllowAnonymous()),
		appMiddleware.ResolveBinder(binders),
	)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/login")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
