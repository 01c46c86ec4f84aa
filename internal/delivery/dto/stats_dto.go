package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse is the payload behind GET /api/stats/dashboard.
type DashboardStatsResponse struct {
	TotalPatients     int             `json:"totalPatients"`
	TotalDoctors      int             `json:"totalDoctors"`
	TotalAppointments int             `json:"totalAppointments"`
	AppointmentsToday int             `json:"appointmentsToday"`
	RevenueThisMonth  decimal.Decimal `json:"revenueThisMonth"`
	AppointmentsByDay []DayCount      `json:"appointmentsByDay"`
	RevenueByMonth    []MonthRevenue  `json:"revenueByMonth"`
	RecentActivity    []ActivityEntry `json:"recentActivity"`
}

// DayCount is one bar of the appointments-per-weekday chart.
type DayCount struct {
	Day          string `json:"day"`
	Appointments int    `json:"appointments"`
}

// MonthRevenue is one point of the revenue-by-month chart.
type MonthRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ActivityEntry is a human-readable line in the recent-activity feed.
type ActivityEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}
