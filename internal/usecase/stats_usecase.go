package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
)

const recentActivityLimit = 5

// dateLayouts are tried in order when parsing stored date strings. Records
// whose date matches none of them are skipped by the aggregations.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

type StatsUsecase interface {
	GetDashboardStats(ctx context.Context, asOf time.Time) (*dto.DashboardStatsResponse, error)
}

type statsUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	billRepo        repository.BillRepository
}

func NewStatsUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	billRepo repository.BillRepository,
) StatsUsecase {
	return &statsUsecase{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		billRepo:        billRepo,
	}
}

func (u *statsUsecase) GetDashboardStats(ctx context.Context, asOf time.Time) (*dto.DashboardStatsResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	bills, err := u.billRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list bills: %+v", err)
		return nil, err
	}
	recent, err := u.appointmentRepo.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		u.log.Warnf("Failed to list recent appointments: %+v", err)
		return nil, err
	}

	today := asOf.Format("2006-01-02")
	appointmentsToday := 0
	for i := range appointments {
		if appointments[i].Date == today {
			appointmentsToday++
		}
	}

	return &dto.DashboardStatsResponse{
		TotalPatients:     len(patients),
		TotalDoctors:      len(doctors),
		TotalAppointments: len(appointments),
		AppointmentsToday: appointmentsToday,
		RevenueThisMonth:  revenueForMonth(bills, asOf.Year(), asOf.Month()),
		AppointmentsByDay: appointmentsByDay(appointments, asOf),
		RevenueByMonth:    revenueByMonth(bills, asOf),
		RecentActivity:    recentActivity(recent, patients, doctors),
	}, nil
}

func revenueForMonth(bills []entity.Bill, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for i := range bills {
		date, ok := parseDate(bills[i].Date)
		if !ok {
			continue
		}
		if date.Year() == year && date.Month() == month {
			total = total.Add(bills[i].Total)
		}
	}
	return total
}

// appointmentsByDay counts appointments on each day of asOf's calendar week,
// Monday first.
func appointmentsByDay(appointments []entity.Appointment, asOf time.Time) []dto.DayCount {
	offset := (int(asOf.Weekday()) + 6) % 7
	monday := asOf.AddDate(0, 0, -offset)

	counts := make([]dto.DayCount, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		date := day.Format("2006-01-02")

		count := 0
		for j := range appointments {
			if appointments[j].Date == date {
				count++
			}
		}
		counts = append(counts, dto.DayCount{
			Day:          day.Format("Mon"),
			Appointments: count,
		})
	}
	return counts
}

// revenueByMonth sums bill totals for the six calendar months ending with
// asOf's month, oldest first.
func revenueByMonth(bills []entity.Bill, asOf time.Time) []dto.MonthRevenue {
	firstOfMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	months := make([]dto.MonthRevenue, 0, 6)
	for i := 5; i >= 0; i-- {
		month := firstOfMonth.AddDate(0, -i, 0)
		months = append(months, dto.MonthRevenue{
			Month:   month.Format("Jan"),
			Revenue: revenueForMonth(bills, month.Year(), month.Month()),
		})
	}
	return months
}

// recentActivity renders the most recently created appointments as feed
// entries. Dangling patient or doctor references show as "Unknown".
func recentActivity(recent []entity.Appointment, patients []entity.Patient, doctors []entity.Doctor) []dto.ActivityEntry {
	patientNames := make(map[string]string, len(patients))
	for i := range patients {
		patientNames[patients[i].ID] = patients[i].Name
	}
	doctorNames := make(map[string]string, len(doctors))
	for i := range doctors {
		doctorNames[doctors[i].ID] = doctors[i].Name
	}

	entries := make([]dto.ActivityEntry, 0, len(recent))
	for i := range recent {
		appointment := &recent[i]

		patientName, ok := patientNames[appointment.PatientID]
		if !ok {
			patientName = "Unknown"
		}
		doctorName, ok := doctorNames[appointment.DoctorID]
		if !ok {
			doctorName = "Unknown"
		}

		entries = append(entries, dto.ActivityEntry{
			Title:       fmt.Sprintf("Appointment %s", appointment.Status),
			Description: fmt.Sprintf("%s with %s on %s at %s", patientName, doctorName, appointment.Date, appointment.Time),
			Time:        appointment.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return entries
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}
