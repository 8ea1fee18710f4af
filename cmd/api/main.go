package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hfaria/ventura/internal/announcement"
	announcementStore "github.com/hfaria/ventura/internal/announcement/store"
	"github.com/hfaria/ventura/internal/audit"
	auditStore "github.com/hfaria/ventura/internal/audit/store"
	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
	businessStore "github.com/hfaria/ventura/internal/business/store"
	"github.com/hfaria/ventura/internal/config"
	"github.com/hfaria/ventura/internal/database"
	"github.com/hfaria/ventura/internal/document"
	documentStore "github.com/hfaria/ventura/internal/document/store"
	venturaHttp "github.com/hfaria/ventura/internal/http"
	adminHandler "github.com/hfaria/ventura/internal/http/admin"
	announcementHandler "github.com/hfaria/ventura/internal/http/announcement"
	authHandler "github.com/hfaria/ventura/internal/http/auth"
	businessHandler "github.com/hfaria/ventura/internal/http/business"
	documentHandler "github.com/hfaria/ventura/internal/http/document"
	investmentHandler "github.com/hfaria/ventura/internal/http/investment"
	investorHandler "github.com/hfaria/ventura/internal/http/investor"
	messageHandler "github.com/hfaria/ventura/internal/http/message"
	notificationHandler "github.com/hfaria/ventura/internal/http/notification"
	ownerHandler "github.com/hfaria/ventura/internal/http/owner"
	watchlistHandler "github.com/hfaria/ventura/internal/http/watchlist"
	"github.com/hfaria/ventura/internal/importer"
	"github.com/hfaria/ventura/internal/investment"
	investmentStore "github.com/hfaria/ventura/internal/investment/store"
	"github.com/hfaria/ventura/internal/message"
	messageStore "github.com/hfaria/ventura/internal/message/store"
	"github.com/hfaria/ventura/internal/notification"
	notificationStore "github.com/hfaria/ventura/internal/notification/store"
	"github.com/hfaria/ventura/internal/stats"
	statsStore "github.com/hfaria/ventura/internal/stats/store"
	"github.com/hfaria/ventura/internal/user"
	userStore "github.com/hfaria/ventura/internal/user/store"
	"github.com/hfaria/ventura/internal/visibility"
	visibilityStore "github.com/hfaria/ventura/internal/visibility/store"
	"github.com/hfaria/ventura/internal/watchlist"
	watchlistStore "github.com/hfaria/ventura/internal/watchlist/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	var (
		users         = userStore.New(db)
		businesses    = businessStore.New(db)
		visibilities  = visibilityStore.New(db)
		investments   = investmentStore.New(db)
		documents     = documentStore.New(db)
		notifications = notificationStore.New(db)
		audits        = auditStore.New(db)
		watchlists    = watchlistStore.New(db)
		messages      = messageStore.New(db)
		announcements = announcementStore.New(db)
		statistics    = statsStore.New(db)
	)

	issuer := auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	files := document.NewDiskStore(cfg.Uploads.Dir)

	var (
		notificationService = notification.NewService(notifications)
		auditService        = audit.NewService(audits)
		authService         = auth.NewService(users, issuer)
		userService         = user.NewService(users)
		visibilityService   = visibility.NewService(visibilities, users, businesses, notificationService, auditService)
		businessService     = business.NewService(businesses, visibilityService, notificationService, auditService)
		documentService     = document.NewService(documents, businesses, visibilityService, files, auditService)
		investmentService   = investment.NewService(investments, businesses, visibilityService, documentService, notificationService, auditService)
		watchlistService    = watchlist.NewService(watchlists, visibilityService, businesses)
		messageService      = message.NewService(messages, businesses, visibilityService)
		announcementService = announcement.NewService(announcements, businesses, visibilityService, notificationService)
		statsService        = stats.NewService(statistics)
		importService       = importer.NewService(userService)
	)

	var (
		authH         = authHandler.NewHandler(authService)
		businessH     = businessHandler.NewHandler(businessService)
		documentH     = documentHandler.NewHandler(documentService)
		investorH     = investorHandler.NewHandler(businessService)
		investmentH   = investmentHandler.NewHandler(investmentService)
		watchlistH    = watchlistHandler.NewHandler(watchlistService)
		messageH      = messageHandler.NewHandler(messageService)
		announcementH = announcementHandler.NewHandler(announcementService)
		notificationH = notificationHandler.NewHandler(notificationService)
		adminH        = adminHandler.NewHandler(userService, importService, businessService, visibilityService, investmentService, documentService, statsService, auditService)
		ownerH        = ownerHandler.NewHandler(statsService)
	)

	router := venturaHttp.New(
		issuer,
		cfg.Uploads.Dir,
		authH,
		businessH,
		documentH,
		investorH,
		investmentH,
		watchlistH,
		messageH,
		announcementH,
		notificationH,
		adminH,
		ownerH,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
