package report

import (
	"context"
	"fmt"
	"time"

	"github.com/fredyfurtado/salon-manager/internal/model"
	"github.com/fredyfurtado/salon-manager/internal/report"
	"github.com/fredyfurtado/salon-manager/internal/repository"
	"github.com/fredyfurtado/salon-manager/pkg/metrics"
)

// VisitRevenue is the revenue screen's payload: the visits inside the
// period window plus their aggregate.
type VisitRevenue struct {
	Visits  []*model.VisitWithClient `json:"visits"`
	Summary report.Summary           `json:"summary"`
}

// LedgerReport mirrors VisitRevenue for manual ledger entries.
type LedgerReport struct {
	Entries []*model.LedgerEntry `json:"entries"`
	Summary report.Summary       `json:"summary"`
}

// Service assembles financial reports from the visit and ledger datasets.
type Service struct {
	visits  repository.VisitRepository
	ledger  repository.LedgerRepository
	metrics *metrics.Metrics
}

// NewService creates a report service. The metrics receiver may be nil.
func NewService(visits repository.VisitRepository, ledger repository.LedgerRepository, m *metrics.Metrics) *Service {
	return &Service{
		visits:  visits,
		ledger:  ledger,
		metrics: m,
	}
}

// Revenue reports visit income for the period around ref.
func (s *Service) Revenue(ctx context.Context, period report.Period, ref time.Time) (*VisitRevenue, error) {
	all, err := s.visits.ListWithClientNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load visits: %w", err)
	}

	result := &VisitRevenue{Visits: make([]*model.VisitWithClient, 0, len(all))}
	for _, v := range all {
		date, err := time.Parse(model.DateLayout, v.Date)
		if err != nil {
			return nil, fmt.Errorf("visit %d has malformed date %q: %w", v.ID, v.Date, err)
		}
		match, err := report.Matches(date, period, ref)
		if err != nil {
			return nil, err
		}
		if match {
			result.Visits = append(result.Visits, v)
			result.Summary.Total += v.Amount
			result.Summary.Count++
		}
	}

	s.observe(period)
	return result, nil
}

// Ledger reports manual ledger income for the period around ref.
func (s *Service) Ledger(ctx context.Context, period report.Period, ref time.Time) (*LedgerReport, error) {
	all, err := s.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	result := &LedgerReport{Entries: make([]*model.LedgerEntry, 0, len(all))}
	for _, e := range all {
		date, err := time.Parse(model.DateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("ledger entry %d has malformed date %q: %w", e.ID, e.Date, err)
		}
		match, err := report.Matches(date, period, ref)
		if err != nil {
			return nil, err
		}
		if match {
			result.Entries = append(result.Entries, e)
			result.Summary.Total += e.Amount
			result.Summary.Count++
		}
	}

	s.observe(period)
	return result, nil
}

func (s *Service) observe(period report.Period) {
	if s.metrics != nil {
		s.metrics.ReportsGenerated.WithLabelValues(string(period)).Inc()
	}
}
