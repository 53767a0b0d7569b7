package coinbase

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Report is a generated statement of past fills or account activity. Poll
// Get until Status says "ready", then download from FileURL. Reports expire
// and are deleted a few days after creation.
type Report struct {
	ID          string       `json:"id"`
	Type        ReportType   `json:"type"`
	CreatedAt   Time         `json:"created_at"`
	CompletedAt Time         `json:"completed_at"`
	ExpiresAt   Time         `json:"expires_at"`
	Status      string       `json:"status"`
	UserID      string       `json:"user_id"`
	FileURL     string       `json:"file_url"`
	FileCount   int          `json:"file_count"`
	Params      ReportParams `json:"params"`
}

type ReportParams struct {
	StartDate    Time   `json:"start_date"`
	EndDate      Time   `json:"end_date"`
	Format       string `json:"format"`
	ProductID    string `json:"product_id"`
	AccountID    string `json:"account_id"`
	ProfileID    string `json:"profile_id"`
	Email        string `json:"email"`
	NewYorkState bool   `json:"new_york_state"`
}

// CreateReportResp acknowledges an accepted report request.
type CreateReportResp struct {
	ID     string     `json:"id"`
	Type   ReportType `json:"type"`
	Status string     `json:"status"`
}

// ListReportsReq filters the report listing.
type ListReportsReq struct {
	PortfolioID   string
	After         time.Time
	Limit         int
	Type          ReportType
	IgnoreExpired bool
}

// CreateReportReq requests a new report. Year is required for 1099-K
// transaction history reports; ProductID/AccountID default to "ALL".
type CreateReportReq struct {
	Type      ReportType
	StartDate time.Time
	EndDate   time.Time
	Year      string
	Format    ReportFormat
	ProductID string
	AccountID string
	Email     string
	ProfileID string
}

type ReportService struct {
	c *Client
}

// Get returns a report by id.
//
// Permissions: view, trade.
func (s *ReportService) Get(ctx context.Context, reportID string) (Report, error) {
	var report Report
	err := s.c.get(ctx, fmt.Sprintf("/reports/%s", reportID), nil, &report)
	return report, err
}

// List returns past report requests.
//
// Permissions: view, trade.
func (s *ReportService) List(ctx context.Context, req ListReportsReq) ([]Report, error) {
	q := url.Values{}
	setString(q, "portfolio_id", req.PortfolioID)
	setTime(q, "after", req.After)
	setInt(q, "limit", req.Limit)
	setString(q, "type", string(req.Type))
	setBool(q, "ignore_expired", req.IgnoreExpired)

	var reports []Report
	err := s.c.get(ctx, "/reports", q, &reports)
	return reports, err
}

// Create requests report generation.
//
// Permissions: view, trade.
func (s *ReportService) Create(ctx context.Context, req CreateReportReq) (CreateReportResp, error) {
	if req.Type == "" {
		return CreateReportResp{}, fmt.Errorf("%w: report type is required", ErrInvalidRequest)
	}
	if req.Format == "" {
		req.Format = ReportFormatPDF
	}

	b := body{
		"type":   string(req.Type),
		"format": string(req.Format),
	}
	b.setTime("start_date", req.StartDate)
	b.setTime("end_date", req.EndDate)
	b.setString("year", req.Year)
	b.setString("product_id", req.ProductID)
	b.setString("account_id", req.AccountID)
	b.setString("email", req.Email)
	b.setString("profile_id", req.ProfileID)

	var resp CreateReportResp
	err := s.c.post(ctx, "/reports", b, &resp)
	return resp, err
}
