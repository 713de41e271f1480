package service

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

const dateLayout = "2006-01-02"

// storeError maps a repository error to a typed API error.
func storeError(err error, notFound, internal string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, internal)
}

func validationError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func paginate(page, size, total int) *models.Pagination {
	page, size, _ = repository.PageBounds(page, size)
	return &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func publisherOrDiscard(p events.Publisher) events.Publisher {
	if p == nil {
		return events.Discard
	}
	return p
}
