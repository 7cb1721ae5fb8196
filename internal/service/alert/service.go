package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

// Service derives live alerts from current repository state. Alerts are
// never persisted; every call recomputes them so they can never go stale
// or pile up.
type Service struct {
	reg *repository.Registry
}

func NewService(reg *repository.Registry) *Service {
	return &Service{reg: reg}
}

// Derive computes the alert set as of now: one alert per scheduled
// appointment today, a summary for tomorrow's bookings, summaries for
// unpaid and partially paid invoices, and one per inventory item
// outside its thresholds.
func (s *Service) Derive(_ context.Context, now time.Time) []model.Alert {
	alerts := []model.Alert{}
	today := now.Format(model.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(model.DateLayout)

	tomorrowCount := 0
	for _, a := range s.reg.Appointments.List() {
		if a.Status != model.AppointmentStatusScheduled {
			continue
		}
		switch a.Date {
		case today:
			alerts = append(alerts, model.Alert{
				Type:      model.NotificationTypeAppointment,
				Title:     "Appointment today",
				Message:   fmt.Sprintf("%s with %s at %s", a.PatientName, a.DoctorName, a.Time),
				RelatedID: a.ID,
			})
		case tomorrow:
			tomorrowCount++
		}
	}
	if tomorrowCount > 0 {
		alerts = append(alerts, model.Alert{
			Type:    model.NotificationTypeAppointment,
			Title:   "Appointments tomorrow",
			Message: fmt.Sprintf("%d appointment(s) scheduled for tomorrow", tomorrowCount),
		})
	}

	var unpaidCount, partialCount int
	var unpaidSum, partialSum float64
	for _, inv := range s.reg.Invoices.List() {
		switch inv.Status {
		case model.InvoiceStatusUnpaid:
			unpaidCount++
			unpaidSum += inv.Outstanding()
		case model.InvoiceStatusPartial:
			partialCount++
			partialSum += inv.Outstanding()
		}
	}
	if unpaidCount > 0 {
		alerts = append(alerts, model.Alert{
			Type:    model.NotificationTypePayment,
			Title:   "Unpaid invoices",
			Message: fmt.Sprintf("%d unpaid invoice(s) totalling %.2f", unpaidCount, unpaidSum),
		})
	}
	if partialCount > 0 {
		alerts = append(alerts, model.Alert{
			Type:    model.NotificationTypePayment,
			Title:   "Partially paid invoices",
			Message: fmt.Sprintf("%d invoice(s) with %.2f remaining", partialCount, partialSum),
		})
	}

	for _, item := range s.reg.Inventory.List() {
		switch item.StockLevel() {
		case model.StockLevelLow:
			alerts = append(alerts, model.Alert{
				Type:      model.NotificationTypeInventory,
				Title:     "Low stock",
				Message:   fmt.Sprintf("%s is down to %d %s", item.Name, item.Quantity, item.Unit),
				RelatedID: item.ID,
			})
		case model.StockLevelHigh:
			alerts = append(alerts, model.Alert{
				Type:      model.NotificationTypeInventory,
				Title:     "Overstock",
				Message:   fmt.Sprintf("%s holds %d %s, above its maximum", item.Name, item.Quantity, item.Unit),
				RelatedID: item.ID,
			})
		}
	}

	return alerts
}
