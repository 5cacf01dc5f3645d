// Package explore coordinates the table-viewer workflow: sample a selected
// table, derive its filter controls, and serve filtered pages and guarded
// ad-hoc queries.
package explore

import (
	"context"
	"log/slog"

	"github.com/RiyaMate/Master-financial/internal/domain"
	"github.com/RiyaMate/Master-financial/internal/filter"
	"github.com/RiyaMate/Master-financial/internal/query"
)

// TableView is what selecting a table produces: the capped sample and the
// filter controls derived from it.
type TableView struct {
	Table   domain.TableRef
	Sample  *domain.Result
	Domains []domain.FilterDomain
}

// Service owns the exploration operations behind the UI.
type Service struct {
	executor    *query.Executor
	deriver     filter.Deriver
	guard       query.Guard
	sampleLimit int
	logger      *slog.Logger
}

// NewService wires the exploration service. sampleLimit caps the rows read to
// derive filter domains.
func NewService(executor *query.Executor, guard query.Guard, sampleLimit int, logger *slog.Logger) *Service {
	if sampleLimit <= 0 {
		sampleLimit = domain.DefaultPageSize
	}
	return &Service{
		executor:    executor,
		deriver:     filter.Deriver{},
		guard:       guard,
		sampleLimit: sampleLimit,
		logger:      logger,
	}
}

// SelectTable samples the table and derives its filter domains. The sample
// doubles as the first unfiltered page shown to the user.
func (s *Service) SelectTable(ctx context.Context, table domain.TableRef) (*TableView, error) {
	sample, err := s.executor.FetchSample(ctx, table, s.sampleLimit)
	if err != nil {
		return nil, err
	}
	domains := s.deriver.Derive(sample)
	s.logger.Info("table selected",
		"table", table.String(),
		"sample_rows", sample.RowCount,
		"filterable_columns", len(domains),
	)
	return &TableView{Table: table, Sample: sample, Domains: domains}, nil
}

// ApplyFilters fetches one page of the table under the given filters.
func (s *Service) ApplyFilters(ctx context.Context, table domain.TableRef, filters domain.Filters, page domain.Page) (*domain.Result, error) {
	return s.executor.FetchPage(ctx, table, page, filters)
}

// RunQuery validates console SQL against the read-only guard and executes it.
func (s *Service) RunQuery(ctx context.Context, sqlText string) (*domain.Result, error) {
	validated, err := s.guard.Validate(sqlText)
	if err != nil {
		return nil, err
	}
	return s.executor.Run(ctx, validated)
}
