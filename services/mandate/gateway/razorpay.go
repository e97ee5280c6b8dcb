package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	httpclient "github.com/piresc/roundup/internal/pkg/http"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

const (
	defaultTotalCount = 1200
	currencyINR       = "INR"
)

// RazorpayGW manages UPI AutoPay subscriptions through the Razorpay API
type RazorpayGW struct {
	client *httpclient.Client
	planID string
}

type razorpayItem struct {
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type razorpayPlan struct {
	Period   string       `json:"period"`
	Interval int          `json:"interval"`
	Item     razorpayItem `json:"item"`
}

type razorpaySubscription struct {
	PlanID         string            `json:"plan_id"`
	CustomerNotify int               `json:"customer_notify"`
	Quantity       int               `json:"quantity"`
	TotalCount     int               `json:"total_count"`
	StartAt        int64             `json:"start_at"`
	Notes          map[string]string `json:"notes"`
}

type razorpayInvoice struct {
	Type           string            `json:"type"`
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Description    string            `json:"description"`
	SubscriptionID string            `json:"subscription_id"`
	Receipt        string            `json:"receipt"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type razorpayEntity struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	ShortURL string `json:"short_url"`
}

// NewRazorpayGW creates a gateway authenticated with the key id and secret
func NewRazorpayGW(cfg *models.ProvidersConfig) *RazorpayGW {
	return &RazorpayGW{
		client: httpclient.NewClient(httpclient.ClientConfig{
			Name:       "razorpay",
			BaseURL:    cfg.RazorpayBaseURL,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			Auth:       httpclient.BasicAuth(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		}),
		planID: cfg.RazorpayPlanID,
	}
}

// CreateMandate registers a subscription the user then approves in their UPI app.
// Without a configured plan a plan sized to the mandate maximum is created first.
func (g *RazorpayGW) CreateMandate(ctx context.Context, req models.CreateMandateRequest) (*models.CreateMandateResult, error) {
	planID := g.planID
	if planID == "" {
		var plan razorpayEntity
		err := g.client.PostJSON(ctx, "/plans", razorpayPlan{
			Period:   string(req.Frequency),
			Interval: 1,
			Item: razorpayItem{
				Name:        "Roundup Investment Auto-Debit",
				Amount:      req.MaxAmountPaise,
				Currency:    currencyINR,
				Description: fmt.Sprintf("UPI AutoPay for roundup investments (max ₹%s per %s)", models.FormatRupees(req.MaxAmountPaise), req.Frequency),
			},
		}, &plan, nil)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to create Razorpay plan", logger.Err(err))
			return nil, fmt.Errorf("%w: failed to create plan: %v", models.ErrProvider, err)
		}
		planID = plan.ID
	}

	var sub razorpayEntity
	err := g.client.PostJSON(ctx, "/subscriptions", razorpaySubscription{
		PlanID:         planID,
		CustomerNotify: 1,
		Quantity:       1,
		TotalCount:     totalCount(req),
		StartAt:        req.StartDate.Unix(),
		Notes: map[string]string{
			"internal_mandate_id": req.MandateID.String(),
			"user_id":             req.UserID.String(),
			"frequency":           string(req.Frequency),
		},
	}, &sub, map[string]string{httpclient.IdempotencyHeader: req.MandateID.String()})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to create Razorpay subscription", logger.Err(err))
		return nil, fmt.Errorf("%w: failed to create subscription: %v", models.ErrProvider, err)
	}

	return &models.CreateMandateResult{ExternalID: sub.ID, Status: sub.Status, AuthLink: sub.ShortURL}, nil
}

// totalCount bounds the number of cycles by the end date when one is set
func totalCount(req models.CreateMandateRequest) int {
	if req.EndDate == nil {
		return defaultTotalCount
	}
	cycles := int(req.EndDate.Sub(req.StartDate) / req.Frequency.Interval())
	return max(cycles, 1)
}

// PauseMandate pauses the subscription immediately
func (g *RazorpayGW) PauseMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error) {
	return g.subscriptionAction(ctx, externalID, "pause", map[string]string{"pause_at": "now"})
}

// ResumeMandate resumes a paused subscription immediately
func (g *RazorpayGW) ResumeMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error) {
	return g.subscriptionAction(ctx, externalID, "resume", map[string]string{"resume_at": "now"})
}

// CancelMandate cancels the subscription without waiting for the cycle end
func (g *RazorpayGW) CancelMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error) {
	return g.subscriptionAction(ctx, externalID, "cancel", map[string]int{"cancel_at_cycle_end": 0})
}

func (g *RazorpayGW) subscriptionAction(ctx context.Context, externalID, action string, body interface{}) (*models.MandateStatusResult, error) {
	var sub razorpayEntity
	endpoint := fmt.Sprintf("/subscriptions/%s/%s", url.PathEscape(externalID), action)
	if err := g.client.PostJSON(ctx, endpoint, body, &sub, nil); err != nil {
		logger.ErrorCtx(ctx, "Razorpay subscription action failed",
			logger.String("action", action),
			logger.String("external_mandate_id", externalID),
			logger.Err(err))
		return nil, fmt.Errorf("%w: failed to %s subscription: %v", models.ErrProvider, action, err)
	}
	return &models.MandateStatusResult{Status: sub.Status}, nil
}

// ExecuteDebit raises an invoice against an active subscription.
// A subscription that is not active yields a failed result rather than an error.
func (g *RazorpayGW) ExecuteDebit(ctx context.Context, req models.DebitRequest) (*models.DebitResult, error) {
	var sub razorpayEntity
	if err := g.client.GetJSON(ctx, "/subscriptions/"+url.PathEscape(req.ExternalMandateID), &sub); err != nil {
		return nil, fmt.Errorf("%w: failed to fetch subscription: %v", models.ErrProvider, err)
	}
	switch strings.ToLower(sub.Status) {
	case "active", "authenticated":
	default:
		return &models.DebitResult{
			Status: "failed",
			Error:  fmt.Sprintf("mandate status is %s, not active", sub.Status),
		}, nil
	}

	var invoice razorpayEntity
	err := g.client.PostJSON(ctx, "/invoices", razorpayInvoice{
		Type:           "link",
		Amount:         req.AmountPaise,
		Currency:       currencyINR,
		Description:    req.Description,
		SubscriptionID: req.ExternalMandateID,
		Receipt:        req.Reference.String(),
		Notes:          map[string]string{DebitNoteKey: req.Reference.String()},
	}, &invoice, map[string]string{httpclient.IdempotencyHeader: req.Reference.String()})
	if err != nil {
		logger.WarnCtx(ctx, "Razorpay debit failed",
			logger.String("external_mandate_id", req.ExternalMandateID),
			logger.Err(err))
		return nil, fmt.Errorf("%w: failed to create invoice: %v", models.ErrProvider, err)
	}

	return &models.DebitResult{PaymentID: invoice.ID, Status: invoice.Status}, nil
}
