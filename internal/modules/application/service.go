package application

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/amherst-artisan-market/market-backend/internal/common"
)

// Notifier dispatches a best-effort notification for a new submission and
// reports whether it went out. Failure never affects the submission.
type Notifier interface {
	NotifyNewApplication(ctx context.Context, app *Application) bool
}

// Service defines the vendor-application business logic.
type Service interface {
	// Submit validates and stores a new application, then fires the
	// notification. The returned bool is the notification outcome.
	Submit(ctx context.Context, req SubmitRequest) (*Application, bool, error)

	// ListAll returns every stored application, most recent first.
	ListAll(ctx context.Context) ([]*Application, error)

	// Update merges an admin review onto an existing application.
	Update(ctx context.Context, id string, req UpdateRequest) (*Application, error)

	// Stats aggregates applications by status.
	Stats(ctx context.Context) (*Stats, error)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

// requiredField pairs a wire field name with its submitted value. Order
// matters: the first missing field is the one reported.
type requiredField struct {
	name  string
	value string
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Application, bool, error) {
	required := []requiredField{
		{"businessName", req.BusinessName},
		{"contactName", req.ContactName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"vendorType", req.VendorType},
		{"description", req.Description},
		{"productsServices", req.ProductsServices},
		{"foodPermits", req.FoodPermits},
		{"availabilityStartWeek", req.AvailabilityStartWeek},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, false, common.NewValidationError(field.name, fmt.Sprintf("Missing required field: %s", field.name))
		}
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, false, common.NewValidationError("email", "Invalid email format")
	}

	app := &Application{
		ID:                    uuid.New().String(),
		BusinessName:          req.BusinessName,
		ContactName:           req.ContactName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Website:               req.Website,
		VendorType:            req.VendorType,
		Description:           req.Description,
		ProductsServices:      req.ProductsServices,
		Experience:            req.Experience,
		SpecialRequirements:   req.SpecialRequirements,
		FoodPermits:           req.FoodPermits,
		AvailabilityStartWeek: req.AvailabilityStartWeek,
		Status:                StatusPending,
		SubmittedAt:           time.Now().UTC(),
		ReviewedAt:            nil,
		ReviewedBy:            nil,
		Notes:                 "",
	}

	if err := s.repo.Save(ctx, app); err != nil {
		return nil, false, err
	}

	logrus.WithFields(logrus.Fields{
		"application_id": app.ID,
		"business_name":  app.BusinessName,
	}).Info("stored vendor application")

	// The submission is durable at this point; the notification outcome is
	// reported to the caller but never fails the request.
	emailSent := false
	if s.notifier != nil {
		emailSent = s.notifier.NotifyNewApplication(ctx, app)
	}

	return app, emailSent, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Application, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].SubmittedAt.Equal(apps[j].SubmittedAt) {
			return apps[i].ID < apps[j].ID
		}
		return apps[i].SubmittedAt.After(apps[j].SubmittedAt)
	})
	return apps, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Application, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch *req.Status {
		case StatusPending, StatusApproved, StatusRejected:
			app.Status = *req.Status
		default:
			return nil, common.NewValidationError("status", "status must be pending, approved, or rejected")
		}
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}

	now := time.Now().UTC()
	app.ReviewedAt = &now
	reviewedBy := "admin"
	if req.ReviewedBy != nil && *req.ReviewedBy != "" {
		reviewedBy = *req.ReviewedBy
	}
	app.ReviewedBy = &reviewedBy

	if err := s.repo.Save(ctx, app); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"application_id": app.ID,
		"status":         app.Status,
		"reviewed_by":    reviewedBy,
	}).Info("updated vendor application")

	return app, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.repo.IndexSize(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: total}
	for _, app := range apps {
		switch app.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}
