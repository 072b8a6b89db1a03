package pages

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

func reportsFixture(statementFn func(ctx context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error)) *ReportsController {
	customersMock := &mockCustomersAPI{
		listFn: staticCustomers(
			customer(1, "John Doe"),
			customer(2, "Johnny Bravo"),
			customer(3, "Marianela Montalvo"),
		),
	}
	ctrl := NewReportsController(&mockReportsAPI{statementFn: statementFn}, customersMock)
	ctrl.Load(context.Background())
	return ctrl
}

func TestReportsLoadReportByID(t *testing.T) {
	var gotID int64
	var gotFrom, gotTo string
	ctrl := reportsFixture(func(_ context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error) {
		gotID, gotFrom, gotTo = customerID, from, to
		return &models.AccountStatementReport{CustomerID: customerID, CustomerName: "Marianela Montalvo"}, nil
	})

	ctrl.SetCriteria("3", "2024-01-01", "2024-01-31")
	ctrl.LoadReport(context.Background())

	if gotID != 3 || gotFrom != "2024-01-01" || gotTo != "2024-01-31" {
		t.Errorf("statement query = (%d, %q, %q)", gotID, gotFrom, gotTo)
	}
	view := ctrl.View()
	if view.Report == nil || view.Report.CustomerName != "Marianela Montalvo" {
		t.Errorf("report = %+v", view.Report)
	}
	if view.ErrorMessage != "" {
		t.Errorf("error message = %q", view.ErrorMessage)
	}
}

func TestReportsLoadReportByIDPrefix(t *testing.T) {
	var gotID int64
	ctrl := reportsFixture(func(_ context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error) {
		gotID = customerID
		return &models.AccountStatementReport{}, nil
	})

	ctrl.SetCriteria(" 2 - Johnny Bravo", "2024-01-01", "2024-01-31")
	ctrl.LoadReport(context.Background())

	if gotID != 2 {
		t.Errorf("resolved id %d, want 2", gotID)
	}
}

func TestReportsLoadReportByUniqueName(t *testing.T) {
	var gotID int64
	ctrl := reportsFixture(func(_ context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error) {
		gotID = customerID
		return &models.AccountStatementReport{}, nil
	})

	ctrl.SetCriteria("marianela", "2024-01-01", "2024-01-31")
	ctrl.LoadReport(context.Background())

	if gotID != 3 {
		t.Errorf("resolved id %d, want 3", gotID)
	}
}

func TestReportsAmbiguousNameKeepsDistinctMessage(t *testing.T) {
	ctrl := reportsFixture(func(context.Context, int64, string, string) (*models.AccountStatementReport, error) {
		t.Error("an ambiguous query must not reach the API")
		return nil, nil
	})

	ctrl.SetCriteria("john", "2024-01-01", "2024-01-31")
	ctrl.LoadReport(context.Background())

	view := ctrl.View()
	if view.ErrorMessage != "Hay más de un cliente con ese nombre. Especifique el customerId." {
		t.Errorf("error message = %q", view.ErrorMessage)
	}
	if view.Report != nil {
		t.Error("no report should be loaded for an ambiguous query")
	}
}

func TestReportsMissingCriteria(t *testing.T) {
	tests := []struct {
		name  string
		query string
		from  string
		to    string
	}{
		{"empty query", "", "2024-01-01", "2024-01-31"},
		{"unknown name", "nadie", "2024-01-01", "2024-01-31"},
		{"missing from", "3", "", "2024-01-31"},
		{"missing to", "3", "2024-01-01", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := reportsFixture(func(context.Context, int64, string, string) (*models.AccountStatementReport, error) {
				t.Error("incomplete criteria must not reach the API")
				return nil, nil
			})

			ctrl.SetCriteria(tc.query, tc.from, tc.to)
			ctrl.LoadReport(context.Background())

			if got := ctrl.View().ErrorMessage; got != "Debe ingresar customerId o nombre del cliente, desde y hasta." {
				t.Errorf("error message = %q", got)
			}
		})
	}
}

func TestReportsRequestFailureClearsReport(t *testing.T) {
	calls := 0
	ctrl := reportsFixture(func(context.Context, int64, string, string) (*models.AccountStatementReport, error) {
		calls++
		if calls == 1 {
			return &models.AccountStatementReport{CustomerID: 3}, nil
		}
		return nil, fmt.Errorf("boom")
	})

	ctrl.SetCriteria("3", "2024-01-01", "2024-01-31")
	ctrl.LoadReport(context.Background())
	ctrl.LoadReport(context.Background())

	view := ctrl.View()
	if view.Report != nil {
		t.Error("a failed request must clear the previous report")
	}
	if view.ErrorMessage != "Error inesperado." {
		t.Errorf("error message = %q", view.ErrorMessage)
	}
}

func TestReportsCustomerListFailureKeepsPageUsable(t *testing.T) {
	customersMock := &mockCustomersAPI{
		listFn: func(context.Context) ([]models.Customer, error) {
			return nil, fmt.Errorf("customers down")
		},
	}
	var gotID int64
	reportsMock := &mockReportsAPI{
		statementFn: func(_ context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error) {
			gotID = customerID
			return &models.AccountStatementReport{}, nil
		},
	}
	ctrl := NewReportsController(reportsMock, customersMock)
	ctrl.Load(context.Background())

	if options := ctrl.View().CustomerOptions; len(options) != 0 {
		t.Errorf("expected empty lookup, got %d options", len(options))
	}

	// Direct ids keep working without the lookup list.
	ctrl.SetCriteria("5", "2024-01-01", "2024-01-31")
	ctrl.LoadReport(context.Background())
	if gotID != 5 {
		t.Errorf("resolved id %d, want 5", gotID)
	}
}

func TestReportsPDF(t *testing.T) {
	payload := []byte("%PDF-1.4 fake")
	ctrl := reportsFixture(func(context.Context, int64, string, string) (*models.AccountStatementReport, error) {
		return &models.AccountStatementReport{
			PDFBase64: base64.StdEncoding.EncodeToString(payload),
		}, nil
	})

	if _, _, ok := ctrl.PDF(); ok {
		t.Fatal("PDF must not be available before a report is loaded")
	}

	ctrl.SetCriteria("3", "2024-01-01", "2024-01-31")
	ctrl.LoadReport(context.Background())

	filename, data, ok := ctrl.PDF()
	if !ok {
		t.Fatal("expected a decodable PDF payload")
	}
	if filename != "reporte_3_2024-01-01_2024-01-31.pdf" {
		t.Errorf("filename = %q", filename)
	}
	if string(data) != string(payload) {
		t.Errorf("decoded payload = %q", data)
	}
	if !ctrl.View().CanDownloadPDF {
		t.Error("view should advertise the download")
	}
}

func TestReportsPDFInvalidBase64(t *testing.T) {
	ctrl := reportsFixture(func(context.Context, int64, string, string) (*models.AccountStatementReport, error) {
		return &models.AccountStatementReport{PDFBase64: "no es base64 !!!"}, nil
	})

	ctrl.SetCriteria("3", "2024-01-01", "2024-01-31")
	ctrl.LoadReport(context.Background())

	if _, _, ok := ctrl.PDF(); ok {
		t.Error("an undecodable payload must not produce a download")
	}
}

func TestReportsCustomerOptionsFilter(t *testing.T) {
	ctrl := reportsFixture(nil)

	ctrl.SetCriteria("john", "", "")
	options := ctrl.View().CustomerOptions
	if len(options) != 2 {
		t.Fatalf("expected 2 options for %q, got %d", "john", len(options))
	}

	ctrl.SetCriteria("", "", "")
	if options := ctrl.View().CustomerOptions; len(options) != 3 {
		t.Errorf("empty query should list every customer, got %d", len(options))
	}
}
