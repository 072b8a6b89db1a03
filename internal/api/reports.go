package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// ReportsClient wraps the /reports resource.
type ReportsClient struct {
	client *Client
}

func NewReportsClient(client *Client) *ReportsClient {
	return &ReportsClient{client: client}
}

// GetAccountStatement fetches the statement for one customer over the
// [from, to] date range. Dates are plain yyyy-mm-dd strings.
func (s *ReportsClient) GetAccountStatement(ctx context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error) {
	query := url.Values{
		"customerId": {strconv.FormatInt(customerID, 10)},
		"from":       {from},
		"to":         {to},
	}
	var report models.AccountStatementReport
	if err := s.client.get(ctx, "/reports", query, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
