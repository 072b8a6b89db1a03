package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// TransactionsClient wraps the /transactions resource.
type TransactionsClient struct {
	client *Client
}

func NewTransactionsClient(client *Client) *TransactionsClient {
	return &TransactionsClient{client: client}
}

func (s *TransactionsClient) List(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.client.get(ctx, "/transactions", nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *TransactionsClient) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.client.get(ctx, fmt.Sprintf("/transactions/%d", id), nil, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionsClient) Create(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.client.do(ctx, http.MethodPost, "/transactions", nil, in, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionsClient) Update(ctx context.Context, id int64, in models.TransactionInput) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), nil, in, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionsClient) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil, nil)
}
