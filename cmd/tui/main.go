package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hfaria/ventura/cmd/tui/internal/view"
	"github.com/hfaria/ventura/internal/audit"
	auditStore "github.com/hfaria/ventura/internal/audit/store"
	"github.com/hfaria/ventura/internal/auth"
	"github.com/hfaria/ventura/internal/business"
	businessStore "github.com/hfaria/ventura/internal/business/store"
	"github.com/hfaria/ventura/internal/config"
	"github.com/hfaria/ventura/internal/database"
	"github.com/hfaria/ventura/internal/notification"
	notificationStore "github.com/hfaria/ventura/internal/notification/store"
	userStore "github.com/hfaria/ventura/internal/user/store"
	"github.com/hfaria/ventura/internal/visibility"
	visibilityStore "github.com/hfaria/ventura/internal/visibility/store"
)

type model struct {
	businessService *business.Service
	adminID         uuid.UUID

	currentView View

	reviewView view.ReviewModel
	listView   view.ListModel
}

type View int

const (
	ViewMenu   View = 0
	ViewReview View = 1
	ViewList   View = 2
)

func initialModel() model {
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

	users := userStore.New(db)

	account, err := users.AccountByEmail(context.Background(), cfg.Admin.Email)
	if err != nil || account == nil {
		slog.Error("ADMIN_EMAIL does not match a user", "email", cfg.Admin.Email)
		os.Exit(1)
	}

	if account.Role != auth.RoleAdmin {
		slog.Error("ADMIN_EMAIL user is not an admin", "email", cfg.Admin.Email)
		os.Exit(1)
	}

	notificationSvc := notification.NewService(notificationStore.New(db))
	auditSvc := audit.NewService(auditStore.New(db))
	visibilitySvc := visibility.NewService(visibilityStore.New(db), users, businessStore.New(db), notificationSvc, auditSvc)
	businessSvc := business.NewService(businessStore.New(db), visibilitySvc, notificationSvc, auditSvc)

	return model{
		businessService: businessSvc,
		adminID:         account.ID,
		currentView:     ViewMenu,
		reviewView:      view.NewReviewModel(businessSvc, account.ID),
		listView:        view.NewListModel(businessSvc, account.ID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.businessService, m.adminID)

				return m, m.reviewView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.businessService, m.adminID)

				return m, m.listView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Ventura Admin Console\n\n" +
				"1. Review Queue\n" +
				"2. Browse Businesses\n\n" +
				"q. Quit",
		)
	case ViewReview:
		return m.reviewView.View()
	case ViewList:
		return m.listView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
