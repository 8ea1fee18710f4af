package stats

import (
	"time"

	"github.com/google/uuid"
)

// Overview holds the headline platform counts shown on the admin
// dashboard.
type Overview struct {
	TotalUsers        int
	TotalOwners       int
	TotalInvestors    int
	TotalBusinesses   int
	PendingBusinesses int
	TotalInvestments  int
	TotalInvested     int64
}

// MonthlyPoint is an aggregate over one calendar month.
type MonthlyPoint struct {
	Month  time.Time
	Count  int
	Amount int64
}

// BusinessTotal ranks a business by money raised.
type BusinessTotal struct {
	BusinessID   uuid.UUID
	BusinessName string
	Count        int
	Amount       int64
}

// InvestorTotal ranks an investor by money committed.
type InvestorTotal struct {
	InvestorID   uuid.UUID
	InvestorName string
	Count        int
	Amount       int64
}

// Analytics is the admin-wide investment breakdown.
type Analytics struct {
	TotalInvestments int
	TotalInvested    int64
	Monthly          []MonthlyPoint
	TopBusinesses    []BusinessTotal
	TopInvestors     []InvestorTotal
}

// DailyPoint is an aggregate over one day.
type DailyPoint struct {
	Day    time.Time
	Count  int
	Amount int64
}

// OwnerAnalytics summarizes investment activity across one owner's
// businesses.
type OwnerAnalytics struct {
	TotalInvestments int
	TotalRaised      int64
	PerBusiness      []BusinessTotal
	Daily            []DailyPoint
}
