package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// CustomersClient wraps the /customers resource.
type CustomersClient struct {
	client *Client
}

func NewCustomersClient(client *Client) *CustomersClient {
	return &CustomersClient{client: client}
}

func (s *CustomersClient) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.client.get(ctx, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomersClient) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := s.client.get(ctx, fmt.Sprintf("/customers/%d", id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomersClient) Create(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	var customer models.Customer
	if err := s.client.do(ctx, http.MethodPost, "/customers", nil, in, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomersClient) Update(ctx context.Context, id int64, in models.CustomerInput) (*models.Customer, error) {
	var customer models.Customer
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), nil, in, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomersClient) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil, nil)
}

// UpdateStatus flips only the active flag through the dedicated status
// endpoint; the rest of the record is untouched.
func (s *CustomersClient) UpdateStatus(ctx context.Context, id int64, active bool) (*models.Customer, error) {
	query := url.Values{"active": {strconv.FormatBool(active)}}
	var customer models.Customer
	if err := s.client.do(ctx, http.MethodPatch, fmt.Sprintf("/customers/%d/status", id), query, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
