package pages

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/api"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// ReportsAPI is the slice of the reports client this page consumes.
type ReportsAPI interface {
	GetAccountStatement(ctx context.Context, customerID int64, from, to string) (*models.AccountStatementReport, error)
}

const (
	missingCriteriaMessage   = "Debe ingresar customerId o nombre del cliente, desde y hasta."
	ambiguousCustomerMessage = "Hay más de un cliente con ese nombre. Especifique el customerId."
)

// Matches the "<id> - <name>" display format offered by the lookup field.
var idPrefixPattern = regexp.MustCompile(`^\s*(\d+)\s*-`)

// ReportsController owns the account-statement page: a free-text customer
// query, a date range, and the last loaded report.
type ReportsController struct {
	mu           sync.Mutex
	api          ReportsAPI
	customersAPI CustomerLister

	customers []models.Customer

	customerQuery string
	from          string
	to            string

	customerID   int64
	report       *models.AccountStatementReport
	errorMessage string
}

func NewReportsController(apiClient ReportsAPI, customers CustomerLister) *ReportsController {
	return &ReportsController{api: apiClient, customersAPI: customers}
}

// Load fetches the customer list backing the lookup field. A failure leaves
// the lookup empty; the page stays usable with direct ids.
func (c *ReportsController) Load(ctx context.Context) {
	customers, err := c.customersAPI.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.customers = nil
		return
	}
	c.customers = customers
}

// SetCriteria stores the query and date range as typed by the user.
func (c *ReportsController) SetCriteria(customerQuery, from, to string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerQuery = customerQuery
	c.from = from
	c.to = to
}

// LoadReport resolves the customer from the query and fetches the statement.
// Unresolvable criteria never reach the API; a request failure clears the
// previous report.
func (c *ReportsController) LoadReport(ctx context.Context) {
	c.mu.Lock()
	customerID, ok, ambiguous := c.resolveCustomerID()
	if ambiguous {
		c.errorMessage = ambiguousCustomerMessage
		c.mu.Unlock()
		return
	}
	if !ok || c.from == "" || c.to == "" {
		c.errorMessage = missingCriteriaMessage
		c.mu.Unlock()
		return
	}
	c.customerID = customerID
	from, to := c.from, c.to
	c.mu.Unlock()

	report, err := c.api.GetAccountStatement(ctx, customerID, from, to)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.report = nil
		c.errorMessage = api.Message(err)
		return
	}
	c.report = report
	c.errorMessage = ""
}

// resolveCustomerID maps the free-text query to a customer id: a whole
// number is used directly, a "<digits> - …" prefix yields the digits, and
// anything else is matched as a substring against loaded customer names,
// requiring exactly one hit. Caller holds the mutex.
func (c *ReportsController) resolveCustomerID() (id int64, ok bool, ambiguous bool) {
	q := strings.TrimSpace(c.customerQuery)
	if q == "" {
		return 0, false, false
	}

	if direct, err := strconv.ParseInt(q, 10, 64); err == nil {
		return direct, true, false
	}

	if m := idPrefixPattern.FindStringSubmatch(q); m != nil {
		prefix, err := strconv.ParseInt(m[1], 10, 64)
		if err == nil {
			return prefix, true, false
		}
	}

	var matches []models.Customer
	for _, customer := range c.customers {
		if containsFold(customer.Name, q) {
			matches = append(matches, customer)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].ID, true, false
	case 0:
		return 0, false, false
	default:
		return 0, false, true
	}
}

// PDF decodes the report's embedded PDF payload. ok is false when no report
// is loaded, the report carries no payload, or the payload is not valid
// base64.
func (c *ReportsController) PDF() (filename string, data []byte, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.report == nil || c.report.PDFBase64 == "" {
		return "", nil, false
	}
	decoded, err := base64.StdEncoding.DecodeString(c.report.PDFBase64)
	if err != nil {
		return "", nil, false
	}
	name := fmt.Sprintf("reporte_%d_%s_%s.pdf", c.customerID, c.from, c.to)
	return name, decoded, true
}

type ReportsView struct {
	CustomerQuery   string
	From            string
	To              string
	CustomerOptions []models.Customer
	Report          *models.AccountStatementReport
	ErrorMessage    string
	CanDownloadPDF  bool
}

func (c *ReportsController) View() ReportsView {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ReportsView{
		CustomerQuery:   c.customerQuery,
		From:            c.from,
		To:              c.to,
		CustomerOptions: c.customerOptions(),
		Report:          c.report,
		ErrorMessage:    c.errorMessage,
		CanDownloadPDF:  c.report != nil && c.report.PDFBase64 != "",
	}
}

// customerOptions filters the lookup list with the same substring rule the
// resolver uses. Caller holds the mutex.
func (c *ReportsController) customerOptions() []models.Customer {
	q := normalizeQuery(c.customerQuery)
	if q == "" {
		return append([]models.Customer(nil), c.customers...)
	}
	var options []models.Customer
	for _, customer := range c.customers {
		if containsFold(formatID(customer.ID), q) || containsFold(customer.Name, q) {
			options = append(options, customer)
		}
	}
	return options
}
