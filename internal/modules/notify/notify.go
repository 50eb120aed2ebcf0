package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amherst-artisan-market/market-backend/internal/modules/application"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Mailer is the provider-agnostic interface every email adapter must
// implement. To swap providers, implement this interface.
type Mailer interface {
	// Send delivers the message and returns the provider's email id.
	Send(ctx context.Context, msg Message) (string, error)
}

// Dispatcher sends the new-application notification to the market operators.
// Every failure is absorbed here; callers only learn whether the email went
// out.
type Dispatcher struct {
	mailer  Mailer
	from    string
	to      string
	timeout time.Duration
}

func NewDispatcher(mailer Mailer, from, to string, timeout time.Duration) *Dispatcher {
	return &Dispatcher{mailer: mailer, from: from, to: to, timeout: timeout}
}

// NotifyNewApplication emails a summary of the submitted application. The
// call is bounded by its own timeout so a slow provider cannot stall the
// submission response.
func (d *Dispatcher) NotifyNewApplication(ctx context.Context, app *application.Application) bool {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	msg := Message{
		From:    d.from,
		To:      d.to,
		Subject: fmt.Sprintf("New Vendor Application: %s", app.BusinessName),
		Text:    formatApplication(app),
	}

	emailID, err := d.mailer.Send(ctx, msg)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"application_id": app.ID,
		}).WithError(err).Error("failed to send notification email")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"application_id": app.ID,
		"email_id":       emailID,
	}).Info("notification email sent")
	return true
}

const separator = "----------------------------------------------------------"

func formatApplication(app *application.Application) string {
	var b strings.Builder

	b.WriteString("New Vendor Application Submitted - Amherst Artisan Market\n\n")
	b.WriteString("Application Details:\n")
	b.WriteString(separator + "\n\n")

	b.WriteString("BASIC INFORMATION\n")
	fmt.Fprintf(&b, "- Business Name: %s\n", app.BusinessName)
	fmt.Fprintf(&b, "- Contact Person: %s\n", app.ContactName)
	fmt.Fprintf(&b, "- Email: %s\n", app.Email)
	fmt.Fprintf(&b, "- Phone: %s\n", app.Phone)
	fmt.Fprintf(&b, "- Website: %s\n", orFallback(app.Website, "Not provided"))
	fmt.Fprintf(&b, "- Vendor Type: %s\n\n", app.VendorType)

	b.WriteString("BUSINESS DETAILS\n")
	fmt.Fprintf(&b, "- Description: %s\n", app.Description)
	fmt.Fprintf(&b, "- Products/Services: %s\n", app.ProductsServices)
	fmt.Fprintf(&b, "- Experience: %s\n\n", orFallback(app.Experience, "Not provided"))

	b.WriteString("FOOD PERMITS\n")
	fmt.Fprintf(&b, "%s\n\n", orFallback(app.FoodPermits, "Not provided"))

	b.WriteString("AVAILABILITY\n")
	fmt.Fprintf(&b, "- Start Week: %s\n\n", orFallback(app.AvailabilityStartWeek, "Not provided"))

	b.WriteString("SPECIAL REQUIREMENTS\n")
	fmt.Fprintf(&b, "%s\n\n", orFallback(app.SpecialRequirements, "None specified"))

	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "Application ID: %s\n", app.ID)
	fmt.Fprintf(&b, "Submitted: %s\n\n", app.SubmittedAt.Format(time.RFC1123))
	b.WriteString("You can review this application in the admin dashboard.\n\n")
	b.WriteString("Best regards,\nAmherst Artisan Market System")

	return b.String()
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
