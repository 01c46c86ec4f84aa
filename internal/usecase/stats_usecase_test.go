package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hospital-management-api/internal/domain/entity"
)

func newStatsFixture() (*fakePatientRepo, *fakeDoctorRepo, *fakeAppointmentRepo, *fakeBillRepo) {
	patients := &fakePatientRepo{patients: []entity.Patient{
		{ID: "p1", Name: "John Smith"},
		{ID: "p2", Name: "Emily Davis"},
	}}
	doctors := &fakeDoctorRepo{doctors: []entity.Doctor{
		{ID: "d1", Name: "Dr. Sarah Johnson"},
	}}
	appointments := &fakeAppointmentRepo{appointments: []entity.Appointment{
		{ID: "a1", PatientID: "p1", DoctorID: "d1", Date: "2025-06-15", Time: "09:00", Status: entity.StatusScheduled,
			CreatedAt: time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)},
		{ID: "a2", PatientID: "p2", DoctorID: "d1", Date: "2025-06-11", Time: "10:30", Status: entity.StatusCompleted,
			CreatedAt: time.Date(2025, time.June, 9, 8, 0, 0, 0, time.UTC)},
		{ID: "a3", PatientID: "gone", DoctorID: "d1", Date: "2025-06-01", Time: "14:00", Status: entity.StatusCancelled,
			CreatedAt: time.Date(2025, time.May, 30, 8, 0, 0, 0, time.UTC)},
	}}
	bills := &fakeBillRepo{bills: []entity.Bill{
		{ID: "b1", PatientID: "p1", Total: decimal.NewFromInt(150), Date: "2025-06-02"},
		{ID: "b2", PatientID: "p2", Total: decimal.NewFromInt(300), Date: "2025-06-14"},
		{ID: "b3", PatientID: "p1", Total: decimal.NewFromInt(500), Date: "2025-05-20"},
	}}
	return patients, doctors, appointments, bills
}

func TestGetDashboardStatsCounts(t *testing.T) {
	patients, doctors, appointments, bills := newStatsFixture()
	u := NewStatsUsecase(logrus.New(), patients, doctors, appointments, bills)

	// 2025-06-15 is a Sunday.
	asOf := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	stats, err := u.GetDashboardStats(context.Background(), asOf)
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if stats.TotalPatients != 2 {
		t.Errorf("TotalPatients = %d, want 2", stats.TotalPatients)
	}
	if stats.TotalDoctors != 1 {
		t.Errorf("TotalDoctors = %d, want 1", stats.TotalDoctors)
	}
	if stats.TotalAppointments != 3 {
		t.Errorf("TotalAppointments = %d, want 3", stats.TotalAppointments)
	}
	if stats.AppointmentsToday != 1 {
		t.Errorf("AppointmentsToday = %d, want 1", stats.AppointmentsToday)
	}
	if !stats.RevenueThisMonth.Equal(decimal.NewFromInt(450)) {
		t.Errorf("RevenueThisMonth = %s, want 450", stats.RevenueThisMonth)
	}
}

func TestGetDashboardStatsAppointmentsByDay(t *testing.T) {
	patients, doctors, appointments, bills := newStatsFixture()
	u := NewStatsUsecase(logrus.New(), patients, doctors, appointments, bills)

	asOf := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	stats, err := u.GetDashboardStats(context.Background(), asOf)
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if len(stats.AppointmentsByDay) != 7 {
		t.Fatalf("AppointmentsByDay has %d entries, want 7", len(stats.AppointmentsByDay))
	}
	if stats.AppointmentsByDay[0].Day != "Mon" {
		t.Errorf("week starts with %q, want Mon", stats.AppointmentsByDay[0].Day)
	}

	// The week of 2025-06-15 runs Mon 2025-06-09 through Sun 2025-06-15.
	// a2 falls on Wednesday, a1 on Sunday, a3 is outside the week.
	wantCounts := []int{0, 0, 1, 0, 0, 0, 1}
	for i, want := range wantCounts {
		if got := stats.AppointmentsByDay[i].Appointments; got != want {
			t.Errorf("AppointmentsByDay[%d] (%s) = %d, want %d", i, stats.AppointmentsByDay[i].Day, got, want)
		}
	}
}

func TestGetDashboardStatsRevenueByMonth(t *testing.T) {
	patients, doctors, appointments, bills := newStatsFixture()
	u := NewStatsUsecase(logrus.New(), patients, doctors, appointments, bills)

	asOf := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	stats, err := u.GetDashboardStats(context.Background(), asOf)
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if len(stats.RevenueByMonth) != 6 {
		t.Fatalf("RevenueByMonth has %d entries, want 6", len(stats.RevenueByMonth))
	}
	if stats.RevenueByMonth[0].Month != "Jan" || stats.RevenueByMonth[5].Month != "Jun" {
		t.Errorf("RevenueByMonth spans %s..%s, want Jan..Jun",
			stats.RevenueByMonth[0].Month, stats.RevenueByMonth[5].Month)
	}
	if !stats.RevenueByMonth[4].Revenue.Equal(decimal.NewFromInt(500)) {
		t.Errorf("May revenue = %s, want 500", stats.RevenueByMonth[4].Revenue)
	}
	if !stats.RevenueByMonth[5].Revenue.Equal(decimal.NewFromInt(450)) {
		t.Errorf("Jun revenue = %s, want 450", stats.RevenueByMonth[5].Revenue)
	}
	if !stats.RevenueByMonth[0].Revenue.IsZero() {
		t.Errorf("Jan revenue = %s, want 0", stats.RevenueByMonth[0].Revenue)
	}
}

func TestGetDashboardStatsRecentActivity(t *testing.T) {
	patients, doctors, appointments, bills := newStatsFixture()
	u := NewStatsUsecase(logrus.New(), patients, doctors, appointments, bills)

	asOf := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	stats, err := u.GetDashboardStats(context.Background(), asOf)
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if len(stats.RecentActivity) != 3 {
		t.Fatalf("RecentActivity has %d entries, want 3", len(stats.RecentActivity))
	}

	first := stats.RecentActivity[0]
	if first.Title != "Appointment scheduled" {
		t.Errorf("first.Title = %q, want %q", first.Title, "Appointment scheduled")
	}
	if first.Description != "John Smith with Dr. Sarah Johnson on 2025-06-15 at 09:00" {
		t.Errorf("first.Description = %q", first.Description)
	}

	// a3 references a patient that no longer exists.
	dangling := stats.RecentActivity[2]
	if dangling.Description != "Unknown with Dr. Sarah Johnson on 2025-06-01 at 14:00" {
		t.Errorf("dangling.Description = %q, want Unknown patient name", dangling.Description)
	}
}

func TestGetDashboardStatsRepoError(t *testing.T) {
	patients, doctors, appointments, bills := newStatsFixture()
	patients.failAll = true
	u := NewStatsUsecase(logrus.New(), patients, doctors, appointments, bills)

	_, err := u.GetDashboardStats(context.Background(), time.Now())
	if err == nil {
		t.Error("GetDashboardStats() succeeded despite repository failure")
	}
}
