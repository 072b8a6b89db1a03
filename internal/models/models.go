package models

// Account types accepted by the backend.
const (
	AccountTypeAhorro    = "AHORRO"
	AccountTypeCorriente = "CORRIENTE"
)

// Transaction types accepted by the backend.
const (
	TransactionTypeCredito = "CREDITO"
	TransactionTypeDebito  = "DEBITO"
)

// CustomerInput is the client-supplied portion of a customer record. The id
// is always assigned by the backend.
type CustomerInput struct {
	Name           string `json:"name" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	Age            int    `json:"age" validate:"required,gte=0"`
	Identification string `json:"identification" validate:"required,numeric,max=20"`
	Address        string `json:"address" validate:"required"`
	Phone          string `json:"phone" validate:"required,numeric,max=15"`
	Password       string `json:"password" validate:"required"`
	Active         bool   `json:"active"`
}

type Customer struct {
	ID int64 `json:"id"`
	CustomerInput
}

type AccountInput struct {
	AccountNumber  int64   `json:"accountNumber" validate:"required"`
	AccountType    string  `json:"accountType" validate:"required,oneof=AHORRO CORRIENTE"`
	InitialBalance float64 `json:"initialBalance" validate:"gte=0"`
	Active         bool    `json:"active"`
	CustomerID     int64   `json:"customerId" validate:"required"`
}

type Account struct {
	ID int64 `json:"id"`
	AccountInput
}

// TransactionInput carries only the client-supplied fields; date and running
// balance are computed by the backend and never sent on create or update.
type TransactionInput struct {
	AccountID       int64   `json:"accountId" validate:"required"`
	TransactionType string  `json:"transactionType" validate:"required,oneof=CREDITO DEBITO"`
	Amount          float64 `json:"amount" validate:"required"`
}

type Transaction struct {
	ID int64 `json:"id"`
	TransactionInput
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

// TransactionReport is one movement row inside an account statement.
type TransactionReport struct {
	Date            string  `json:"date,omitempty"`
	TransactionType string  `json:"transactionType,omitempty"`
	Amount          float64 `json:"amount,omitempty"`
	Balance         float64 `json:"balance,omitempty"`
}

type AccountReport struct {
	AccountID        int64               `json:"accountId,omitempty"`
	AccountNumber    int64               `json:"accountNumber,omitempty"`
	AccountType      string              `json:"accountType,omitempty"`
	InitialBalance   float64             `json:"initialBalance,omitempty"`
	AvailableBalance float64             `json:"availableBalance,omitempty"`
	Transactions     []TransactionReport `json:"transactions,omitempty"`
}

// AccountStatementReport is the read-only aggregate returned by the reports
// endpoint. Totals are computed server-side and treated as opaque here.
type AccountStatementReport struct {
	CustomerID   int64           `json:"customerId,omitempty"`
	CustomerName string          `json:"customerName,omitempty"`
	From         string          `json:"from,omitempty"`
	To           string          `json:"to,omitempty"`
	Accounts     []AccountReport `json:"accounts,omitempty"`
	TotalCredits float64         `json:"totalCredits,omitempty"`
	TotalDebits  float64         `json:"totalDebits,omitempty"`
	PDFBase64    string          `json:"pdfBase64,omitempty"`
}
