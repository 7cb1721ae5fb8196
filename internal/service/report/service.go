package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

// Service computes read-only aggregate views over the registry. Every
// report is a pure fold over collection snapshots; results are memoized
// in a short-lived cache keyed by the registry generation, so any
// mutation anywhere invalidates every cached report at once.
type Service struct {
	reg   *repository.Registry
	cache *gocache.Cache
}

func NewService(reg *repository.Registry) *Service {
	return &Service{
		reg:   reg,
		cache: gocache.New(time.Minute, 5*time.Minute),
	}
}

func (s *Service) cacheKey(kind string, args ...string) string {
	return fmt.Sprintf("%s:%s:g%d", kind, strings.Join(args, ":"), s.reg.Generation())
}

// Dashboard builds the landing-page snapshot as of now.
func (s *Service) Dashboard(_ context.Context, now time.Time) DashboardReport {
	today := now.Format(model.DateLayout)
	key := s.cacheKey("dashboard", today)
	if v, ok := s.cache.Get(key); ok {
		return v.(DashboardReport)
	}

	rep := DashboardReport{TotalPatients: s.reg.Patients.Len()}
	for _, d := range s.reg.Doctors.List() {
		if d.IsActive {
			rep.ActiveDoctors++
		}
	}
	for _, a := range s.reg.Appointments.List() {
		if a.Date == today {
			rep.TodayAppointments++
		}
		if a.Date >= today && a.Status == model.AppointmentStatusScheduled {
			rep.UpcomingAppointments = append(rep.UpcomingAppointments, a)
		}
	}
	sort.Slice(rep.UpcomingAppointments, func(i, j int) bool {
		a, b := rep.UpcomingAppointments[i], rep.UpcomingAppointments[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
	if len(rep.UpcomingAppointments) > 5 {
		rep.UpcomingAppointments = rep.UpcomingAppointments[:5]
	}

	for _, inv := range s.reg.Invoices.List() {
		rep.TotalRevenue += inv.PaidAmount
		rep.PendingAmount += inv.Outstanding()
	}

	rep.RecentPatients = s.reg.Patients.List()
	sort.Slice(rep.RecentPatients, func(i, j int) bool {
		return rep.RecentPatients[i].CreatedAt.After(rep.RecentPatients[j].CreatedAt)
	})
	if len(rep.RecentPatients) > 5 {
		rep.RecentPatients = rep.RecentPatients[:5]
	}

	s.cache.SetDefault(key, rep)
	return rep
}

// Monthly folds all activity whose date falls in the given YYYY-MM month.
func (s *Service) Monthly(_ context.Context, month string) MonthlyReport {
	key := s.cacheKey("monthly", month)
	if v, ok := s.cache.Get(key); ok {
		return v.(MonthlyReport)
	}
	rep := s.monthly(month)
	s.cache.SetDefault(key, rep)
	return rep
}

func (s *Service) monthly(month string) MonthlyReport {
	rep := MonthlyReport{Month: month}
	prefix := month + "-"

	for _, a := range s.reg.Appointments.List() {
		if !strings.HasPrefix(a.Date, prefix) {
			continue
		}
		rep.TotalAppointments++
		switch a.Status {
		case model.AppointmentStatusCompleted:
			rep.CompletedAppointments++
		case model.AppointmentStatusCancelled:
			rep.CancelledAppointments++
		case model.AppointmentStatusScheduled:
			rep.ScheduledAppointments++
		}
	}
	for _, p := range s.reg.Patients.List() {
		if strings.HasPrefix(p.CreatedAt.Format(model.DateLayout), prefix) {
			rep.NewPatients++
		}
	}

	byType := map[string]*TreatmentTypeStat{}
	for _, t := range s.reg.Treatments.List() {
		if !strings.HasPrefix(t.Date, prefix) {
			continue
		}
		rep.TotalTreatments++
		stat, ok := byType[t.TreatmentType]
		if !ok {
			stat = &TreatmentTypeStat{Type: t.TreatmentType}
			byType[t.TreatmentType] = stat
		}
		stat.Count++
		stat.Revenue += t.Cost
	}
	rep.TreatmentsByType = sortStats(byType)

	for _, inv := range s.reg.Invoices.List() {
		if !strings.HasPrefix(inv.Date, prefix) {
			continue
		}
		rep.TotalRevenue += inv.TotalAmount
		rep.TotalPaid += inv.PaidAmount
		rep.TotalPending += inv.Outstanding()
	}
	return rep
}

// Yearly computes the twelve monthly folds for the given YYYY year and
// sums them into year totals, so the totals agree with the per-month
// values by construction.
func (s *Service) Yearly(ctx context.Context, year string) YearlyReport {
	key := s.cacheKey("yearly", year)
	if v, ok := s.cache.Get(key); ok {
		return v.(YearlyReport)
	}

	rep := YearlyReport{Year: year, Months: make([]MonthlyReport, 0, 12)}
	for m := 1; m <= 12; m++ {
		monthly := s.monthly(fmt.Sprintf("%s-%02d", year, m))
		rep.Months = append(rep.Months, monthly)
		rep.TotalAppointments += monthly.TotalAppointments
		rep.CompletedAppointments += monthly.CompletedAppointments
		rep.NewPatients += monthly.NewPatients
		rep.TotalTreatments += monthly.TotalTreatments
		rep.TotalRevenue += monthly.TotalRevenue
		rep.TotalPaid += monthly.TotalPaid
		rep.TotalPending += monthly.TotalPending
	}

	s.cache.SetDefault(key, rep)
	return rep
}

// Doctors summarizes workload per doctor, every doctor included even
// with zero activity.
func (s *Service) Doctors(_ context.Context) []DoctorPerformance {
	key := s.cacheKey("doctors")
	if v, ok := s.cache.Get(key); ok {
		return copySlice(v.([]DoctorPerformance))
	}

	perf := make([]DoctorPerformance, 0)
	index := map[string]int{}
	for _, d := range s.reg.Doctors.List() {
		index[d.ID] = len(perf)
		perf = append(perf, DoctorPerformance{DoctorID: d.ID, DoctorName: d.Name})
	}
	for _, a := range s.reg.Appointments.List() {
		i, ok := index[a.DoctorID]
		if !ok {
			continue
		}
		perf[i].TotalAppointments++
		if a.Status == model.AppointmentStatusCompleted {
			perf[i].CompletedAppointments++
		}
	}
	for _, t := range s.reg.Treatments.List() {
		i, ok := index[t.DoctorID]
		if !ok {
			continue
		}
		perf[i].TotalTreatments++
		perf[i].TreatmentRevenue += t.Cost
	}

	s.cache.SetDefault(key, perf)
	return copySlice(perf)
}

// TreatmentTypes groups every treatment on record by type, most frequent
// type first.
func (s *Service) TreatmentTypes(_ context.Context) []TreatmentTypeStat {
	key := s.cacheKey("treatment_types")
	if v, ok := s.cache.Get(key); ok {
		return copySlice(v.([]TreatmentTypeStat))
	}

	byType := map[string]*TreatmentTypeStat{}
	for _, t := range s.reg.Treatments.List() {
		stat, ok := byType[t.TreatmentType]
		if !ok {
			stat = &TreatmentTypeStat{Type: t.TreatmentType}
			byType[t.TreatmentType] = stat
		}
		stat.Count++
		stat.Revenue += t.Cost
	}
	stats := sortStats(byType)

	s.cache.SetDefault(key, stats)
	return copySlice(stats)
}

// Financial folds one year of invoices. Inventory value is the current
// stock valuation and ignores the year filter. Collection rate is 0 when
// no revenue was billed.
func (s *Service) Financial(_ context.Context, year string) FinancialReport {
	key := s.cacheKey("financial", year)
	if v, ok := s.cache.Get(key); ok {
		return v.(FinancialReport)
	}

	rep := FinancialReport{Year: year}
	prefix := year + "-"
	for _, inv := range s.reg.Invoices.List() {
		if !strings.HasPrefix(inv.Date, prefix) {
			continue
		}
		rep.TotalRevenue += inv.TotalAmount
		rep.TotalPaid += inv.PaidAmount
		rep.TotalPending += inv.Outstanding()
		switch inv.Status {
		case model.InvoiceStatusPaid:
			rep.PaidInvoices++
		case model.InvoiceStatusPartial:
			rep.PartialInvoices++
		case model.InvoiceStatusUnpaid:
			rep.UnpaidInvoices++
		}
	}
	for _, item := range s.reg.Inventory.List() {
		rep.InventoryValue += item.Value()
	}
	if rep.TotalRevenue > 0 {
		rep.CollectionRate = int(math.Round(100 * rep.TotalPaid / rep.TotalRevenue))
	}

	s.cache.SetDefault(key, rep)
	return rep
}

// copySlice shields cached slices from caller mutation.
func copySlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// sortStats orders type stats by descending count, ties broken by name
// so the output is insensitive to map iteration order. Average price is
// filled here, integer-rounded.
func sortStats(byType map[string]*TreatmentTypeStat) []TreatmentTypeStat {
	stats := make([]TreatmentTypeStat, 0, len(byType))
	for _, stat := range byType {
		stat.AveragePrice = int(math.Round(stat.Revenue / float64(stat.Count)))
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Type < stats[j].Type
	})
	return stats
}
