package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/hfaria/ventura/internal/business"
)

type listState int

const (
	listStateBrowse listState = iota
	listStateDecide
)

// ListModel browses all business listings with a cycling status filter.
type ListModel struct {
	CommonModel
	svc     *business.Service
	adminID uuid.UUID

	state      listState
	table      table.Model
	businesses []*business.Business
	form       *huh.Form
	formStatus string

	statusFilterIdx int
	filter          business.ListFilter

	loading bool
	err     error
	status  string
}

var statusFilters = []*business.Status{
	nil,
	new(business.StatusPending),
	new(business.StatusUnderReview),
	new(business.StatusVerified),
	new(business.StatusApproved),
	new(business.StatusRejected),
}

func NewListModel(svc *business.Service, adminID uuid.UUID) ListModel {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Owner", Width: 22},
		{Title: "Status", Width: 14},
		{Title: "Min", Width: 10},
		{Title: "Max", Width: 10},
		{Title: "Listed", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		svc:     svc,
		adminID: adminID,
		table:   t,
		loading: true,
	}
}

func (m ListModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBusinessesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.businesses = msg.businesses
		m.status = ""
		m.refreshTable()

		return m, nil

	case statusSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}

		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case listStateBrowse:
		return m.updateBrowse(msg)
	case listStateDecide:
		return m.updateDecide(msg)
	}

	return m, nil
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(statusFilters)
			m.filter.Status = statusFilters[m.statusFilterIdx]

			return m, m.loadCmd()
		case "enter":
			return m.enterDecideMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) enterDecideMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.businesses) {
		return m, nil
	}

	m.formStatus = string(m.businesses[idx].Status)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Pending", string(business.StatusPending)),
					huh.NewOption("Under review", string(business.StatusUnderReview)),
					huh.NewOption("Verified", string(business.StatusVerified)),
					huh.NewOption("Approved", string(business.StatusApproved)),
					huh.NewOption("Rejected", string(business.StatusRejected)),
				).
				Value(&m.formStatus),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = listStateDecide
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) updateDecide(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = listStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveStatusCmd()
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading businesses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filterLabels := []string{"All", "Pending", "Under review", "Verified", "Approved", "Rejected"}

	header := fmt.Sprintf("Filter: [s] Status: %s | enter: set status | r: refresh | esc: back",
		activeStyle(filterLabels[m.statusFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == listStateDecide && m.form != nil {
		idx := m.table.Cursor()

		name := ""
		if idx >= 0 && idx < len(m.businesses) {
			name = m.businesses[idx].Name
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(fmt.Sprintf("Set status\n\nBusiness: %s\n\n%s", name, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.businesses))
	for _, b := range m.businesses {
		rows = append(rows, table.Row{
			b.Name,
			b.OwnerName,
			string(b.Status),
			FormatAmount(b.MinInvestmentAmount),
			FormatAmount(b.MaxInvestmentAmount),
			FormatDate(b.CreatedAt),
		})
	}

	m.table.SetRows(rows)
}

type loadBusinessesMsg struct {
	businesses []*business.Business
	err        error
}

func (m ListModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		bs, err := m.svc.ListAll(ctx, m.filter)

		return loadBusinessesMsg{businesses: bs, err: err}
	}
}

type statusSavedMsg struct {
	err error
}

func (m ListModel) saveStatusCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.businesses) {
		return nil
	}

	b := m.businesses[idx]
	status := business.Status(m.formStatus)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.UpdateStatus(ctx, m.adminID, b.ID, status)

		return statusSavedMsg{err: err}
	}
}
