package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// AccountsClient wraps the /accounts resource.
type AccountsClient struct {
	client *Client
}

func NewAccountsClient(client *Client) *AccountsClient {
	return &AccountsClient{client: client}
}

// List returns every account, or only those of one customer when customerID
// is positive.
func (s *AccountsClient) List(ctx context.Context, customerID int64) ([]models.Account, error) {
	var query url.Values
	if customerID > 0 {
		query = url.Values{"customerId": {strconv.FormatInt(customerID, 10)}}
	}
	var accounts []models.Account
	if err := s.client.get(ctx, "/accounts", query, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *AccountsClient) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account
	if err := s.client.get(ctx, fmt.Sprintf("/accounts/%d", id), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountsClient) Create(ctx context.Context, in models.AccountInput) (*models.Account, error) {
	var account models.Account
	if err := s.client.do(ctx, http.MethodPost, "/accounts", nil, in, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountsClient) Update(ctx context.Context, id int64, in models.AccountInput) (*models.Account, error) {
	var account models.Account
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/accounts/%d", id), nil, in, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountsClient) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), nil, nil, nil)
}
