package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-filter/internal/daterange"
	"task-filter/internal/domain"
	"task-filter/internal/errors"
	"task-filter/internal/logging"
)

// SampleFilterName is the name of the filter stored by SeedSampleFilter.
const SampleFilterName = "Sample Filter"

// SampleFilter returns the sample filter: due within the next ten days and
// tagged with neither tag 1 nor tag 2.
func SampleFilter() domain.TaskFilter {
	return domain.TaskFilter{
		Name:    SampleFilterName,
		DueDate: domain.NewFilterCriterion(domain.OperatorIn, daterange.NewRelativeDateRange("T+10")),
		TagIDs:  domain.NewFilterCriterion(domain.OperatorNotEqual, []int{1, 2}),
	}
}

func (a *apiImpl) ResolveExpression(expression string, today time.Time) (daterange.Range, error) {
	r, ok := daterange.Resolve(expression, today)
	if !ok {
		return daterange.Range{}, errors.NewUnresolvableExpressionError("expression", expression)
	}
	logging.Named("api").Debug().Str("expression", expression).Stringer("range", r).Msg("expression resolved")
	return r, nil
}

func (a *apiImpl) ResolveFilterDueDate(ctx context.Context, id int64, today time.Time) (*FilterDueDate, error) {
	filter, err := a.GetFilter(ctx, id)
	if err != nil {
		return nil, err
	}

	if !filter.DueDate.HasValue() {
		return nil, errors.NewInvalidInputError("DueDate", nil,
			fmt.Sprintf("task filter %d has no due date", filter.ID))
	}

	r, ok := filter.DueDateRange(today)
	if !ok {
		return nil, errors.NewUnresolvableExpressionError("DueDate", filter.DueDate.Value.Expression())
	}

	return &FilterDueDate{
		Filter:   filter,
		Operator: filter.DueDate.Operator,
		Range:    r,
	}, nil
}

func (a *apiImpl) SeedSampleFilter(ctx context.Context) (*domain.TaskFilter, error) {
	filters, err := a.ListFilters(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range filters {
		if strings.EqualFold(f.Name, SampleFilterName) {
			logging.Named("api").Debug().Int64("id", f.ID).Msg("sample filter already present")
			return f, nil
		}
	}
	return a.CreateFilter(ctx, SampleFilter())
}
