package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/internal/events"
	"github.com/vacaytracker/vacaytracker/pkg/notification"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

const defaultFilename = "vacation_expenses"

type Service interface {
	Export(ctx context.Context, opts Options) (Result, error)
}

type ServiceImpl struct {
	trips    trip.Repo
	csv      *CSVRenderer
	json     *JSONRenderer
	pdf      *PDFRenderer
	currency string
	notifier notification.Notifier
	bus      *events.Bus
}

func NewServiceImpl(trips trip.Repo, csv *CSVRenderer, json *JSONRenderer, pdf *PDFRenderer, currencyCode string, notifier notification.Notifier, bus *events.Bus) *ServiceImpl {
	return &ServiceImpl{
		trips:    trips,
		csv:      csv,
		json:     json,
		pdf:      pdf,
		currency: currencyCode,
		notifier: notifier,
		bus:      bus,
	}
}

// Export filters the active trip's expenses per opts and renders them
// in the requested format. Exporting is all-or-nothing: a filter that
// matches no expenses produces an error notification and no payload.
func (s *ServiceImpl) Export(ctx context.Context, opts Options) (Result, error) {
	activeID, err := s.trips.ActiveID(ctx)
	if err != nil {
		return Result{}, err
	}
	if activeID == "" {
		s.notifier.Notify(notification.KindError, "Please create or select a trip first")
		return Result{}, trip.ErrNoActiveTrip
	}
	active, err := s.trips.Get(ctx, activeID)
	if err != nil {
		return Result{}, err
	}

	filtered := Filter(active.Expenses, opts)
	if len(filtered) == 0 {
		s.notifier.Notify(notification.KindError, "No expenses match the selected filters")
		return Result{}, ErrNoMatchingExpenses
	}

	baseName := strings.TrimSpace(opts.Filename)
	if baseName == "" {
		baseName = defaultFilename
	}

	var result Result
	switch opts.Format {
	case FormatCSV:
		result = Result{
			Filename:    baseName + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Data:        []byte(s.csv.Render(filtered, s.currency)),
		}
	case FormatJSON:
		rendered, err := s.json.Render(filtered, s.currency)
		if err != nil {
			return Result{}, err
		}
		result = Result{
			Filename:    baseName + ".json",
			ContentType: "application/json; charset=utf-8",
			Data:        []byte(rendered),
		}
	case FormatPDF:
		rendered, err := s.pdf.Render(filtered, opts, &active, s.currency)
		if err != nil {
			return Result{}, err
		}
		result = Result{
			Filename:    baseName + ".pdf",
			ContentType: "application/pdf",
			Data:        rendered,
		}
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}

	log.Infof("exported %d expenses as %s", len(filtered), result.Filename)
	s.notifier.Notify(notification.KindSuccess, "Report exported successfully!")
	s.bus.Publish(events.ExportCreated, events.ExportEvent{
		Format:   string(opts.Format),
		Filename: result.Filename,
		Rows:     len(filtered),
	})
	return result, nil
}

// IsOperational reports whether err is an expected, user-facing export
// failure rather than an internal one.
func IsOperational(err error) bool {
	return errors.Is(err, ErrNoMatchingExpenses) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, trip.ErrNoActiveTrip)
}
