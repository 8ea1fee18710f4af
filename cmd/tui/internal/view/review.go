package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/business"
)

// ReviewModel steps through businesses awaiting review and applies a
// status decision to each.
type ReviewModel struct {
	CommonModel
	svc     *business.Service
	adminID uuid.UUID

	queue      []*business.Business
	current    *business.Business
	totalCount int

	form       *huh.Form
	formStatus string

	status  string
	loading bool
}

func NewReviewModel(svc *business.Service, adminID uuid.UUID) ReviewModel {
	return ReviewModel{
		svc:     svc,
		adminID: adminID,
		status:  "Loading review queue...",
		loading: true,
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadQueueCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		if msg.Type == tea.KeyEsc {
			return m, Back
		}

	case loadQueueMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading queue: %v", msg.err)
			break
		}

		m.queue = msg.businesses
		m.totalCount = len(m.queue)

		if len(m.queue) == 0 {
			m.status = "Nothing waiting for review."
			break
		}

		return m.nextBusiness()

	case decisionResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving decision: %v", msg.err)
			break
		}

		if len(m.queue) > 0 {
			return m.nextBusiness()
		}

		m.current = nil
		m.form = nil
		m.status = "All done!"
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State == huh.StateCompleted {
			return m, m.decideCmd()
		}

		return m, cmd
	}

	return m, nil
}

func (m ReviewModel) nextBusiness() (tea.Model, tea.Cmd) {
	b := m.queue[0]
	m.queue = m.queue[1:]
	m.current = b

	reviewed := m.totalCount - len(m.queue)
	m.status = fmt.Sprintf("Reviewing %d/%d", reviewed, m.totalCount)

	m.formStatus = string(business.StatusUnderReview)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("status").
				Title("New status").
				Options(
					huh.NewOption("Under review", string(business.StatusUnderReview)),
					huh.NewOption("Verified", string(business.StatusVerified)),
					huh.NewOption("Approved", string(business.StatusApproved)),
					huh.NewOption("Rejected", string(business.StatusRejected)),
					huh.NewOption("Back to pending", string(business.StatusPending)),
				).
				Value(&m.formStatus),
		),
	).WithWidth(40).WithShowHelp(false)

	return m, m.form.Init()
}

func (m ReviewModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading review queue...")
	}

	if m.current == nil {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\n(Esc to back)")
	}

	b := m.current
	info := fmt.Sprintf(
		"Name:     %s\nOwner:    %s <%s>\nCategory: %s\nStatus:   %s\nRange:    %s - %s\nListed:   %s\n\n%s",
		b.Name,
		b.OwnerName, b.OwnerEmail,
		b.Category,
		b.Status,
		FormatAmount(b.MinInvestmentAmount), FormatAmount(b.MaxInvestmentAmount),
		FormatDate(b.CreatedAt),
		b.Description,
	)

	formView := ""
	if m.form != nil {
		formView = m.form.View()
	}

	return lipgloss.NewStyle().Padding(2).Render(
		fmt.Sprintf("%s\n\n%s\n\n%s\n\n(Esc to quit review)", m.status, info, formView),
	)
}

type loadQueueMsg struct {
	businesses []*business.Business
	err        error
}

func (m ReviewModel) loadQueueCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		all, err := m.svc.ListAll(ctx, business.ListFilter{})
		if err != nil {
			return loadQueueMsg{err: err}
		}

		var queue []*business.Business

		for _, b := range all {
			if b.Status == business.StatusPending || b.Status == business.StatusUnderReview {
				queue = append(queue, b)
			}
		}

		return loadQueueMsg{businesses: queue}
	}
}

type decisionResultMsg struct {
	err error
}

func (m ReviewModel) decideCmd() tea.Cmd {
	current := m.current
	status := business.Status(m.formStatus)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.UpdateStatus(ctx, m.adminID, current.ID, status)

		return decisionResultMsg{err: err}
	}
}
