package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/eligibility"
	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

// EligibilityService runs ad-hoc structured criteria against the roster.
type EligibilityService struct {
	students  rosterReader
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewEligibilityService constructs an EligibilityService.
func NewEligibilityService(students rosterReader, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *EligibilityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EligibilityService{students: students, validator: validate, metrics: metrics, logger: logger}
}

// Check evaluates the posted criteria for every student. With OnlyEligible set,
// failing students are left out of the results but still counted in Total.
func (s *EligibilityService) Check(ctx context.Context, req models.EligibilityCheckRequest) ([]models.EligibilityResult, int, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, 0, validationError(err, "invalid criteria")
	}
	students, err := s.students.All(ctx)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	results := eligibility.EvaluateAll(eligibility.Structured{Criteria: req.Criteria}, students)
	s.metrics.RecordEvaluations(eligibility.ModeStructured, len(results))
	if !req.OnlyEligible {
		return results, len(results), nil
	}
	eligible := make([]models.EligibilityResult, 0, len(results))
	for _, r := range results {
		if r.Eligible {
			eligible = append(eligible, r)
		}
	}
	return eligible, len(results), nil
}
