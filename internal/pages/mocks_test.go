package pages

import (
	"context"
	"fmt"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// ---- mock API implementations ----

type mockCustomersAPI struct {
	listFn         func(ctx context.Context) ([]models.Customer, error)
	createFn       func(ctx context.Context, in models.CustomerInput) (*models.Customer, error)
	updateFn       func(ctx context.Context, id int64, in models.CustomerInput) (*models.Customer, error)
	deleteFn       func(ctx context.Context, id int64) error
	updateStatusFn func(ctx context.Context, id int64, active bool) (*models.Customer, error)
}

func (m *mockCustomersAPI) List(ctx context.Context) ([]models.Customer, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCustomersAPI) Create(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCustomersAPI) Update(ctx context.Context, id int64, in models.CustomerInput) (*models.Customer, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, in)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockCustomersAPI) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return fmt.Errorf("not configured")
}

func (m *mockCustomersAPI) UpdateStatus(ctx context.Context, id int64, active bool) (*models.Customer, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, active)
	}
	return nil, fmt.Errorf("not configured")
}

type mockAccountsAPI struct {
	listFn   func(ctx context.Context, customerID int64) ([]models.Account, error)
	createFn func(ctx context.Context, in models.AccountInput) (*models.Account, error)
	updateFn func(ctx context.Context, id int64, in models.AccountInput) (*models.Account, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockAccountsAPI) List(ctx context.Context, customerID int64) ([]models.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx, customerID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountsAPI) Create(ctx context.Context, in models.AccountInput) (*models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountsAPI) Update(ctx context.Context, id int64, in models.AccountInput) (*models.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, in)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountsAPI) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return fmt.Errorf("not configured")
}

type mockTransactionsAPI struct {
	listFn   func(ctx context.Context) ([]models.Transaction, error)
	createFn func(ctx context.Context, in models.TransactionInput) (*models.Transaction, error)
	updateFn func(ctx context.Context, id int64, in models.TransactionInput) (*models.Transaction, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTransactionsAPI) List(ctx context.Context) ([]models.Transaction, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockTransactionsAPI) Create(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockTransactionsAPI) Update(ctx context.Context, id int64, in models.TransactionInput) (*models.Transaction, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, in)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockTransactionsAPI) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return fmt.Errorf("not configured")
}

type mockReportsAPI struct {
	statementFn func(ctx context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error)
}

func (m *mockReportsAPI) GetAccountStatement(ctx context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error) {
	if m.statementFn != nil {
		return m.statementFn(ctx, customerID, from, to)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

// confirmRecorder answers every prompt with a fixed decision and records the
// messages shown.
type confirmRecorder struct {
	answer  bool
	prompts []string
}

func (c *confirmRecorder) Confirm(message string) bool {
	c.prompts = append(c.prompts, message)
	return c.answer
}

func staticCustomers(customers ...models.Customer) func(context.Context) ([]models.Customer, error) {
	return func(context.Context) ([]models.Customer, error) { return customers, nil }
}

func customer(id int64, name string) models.Customer {
	return models.Customer{
		ID: id,
		CustomerInput: models.CustomerInput{
			Name: name, Gender: "Masculino", Age: 30,
			Identification: "1700000000", Address: "Quito", Phone: "0990000000",
			Password: "1234", Active: true,
		},
	}
}
