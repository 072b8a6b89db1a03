package pages

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/api"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/forms"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// TransactionsAPI is the slice of the transactions client this page consumes.
type TransactionsAPI interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Create(ctx context.Context, in models.TransactionInput) (*models.Transaction, error)
	Update(ctx context.Context, id int64, in models.TransactionInput) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// AccountLister is the read-only view of the accounts client used to resolve
// account numbers.
type AccountLister interface {
	List(ctx context.Context, customerID int64) ([]models.Account, error)
}

// TransactionsController owns the movements page. Newest movements first by
// default; account numbers are resolved from a reference list loaded
// alongside the movements.
type TransactionsController struct {
	mu       sync.Mutex
	api      TransactionsAPI
	accounts AccountLister
	confirm  Confirmer

	transactions []models.Transaction
	numberByID   map[int64]int64
	errorMessage string

	search  string
	sortKey string
	sortDir SortDir

	formOpen    bool
	formMode    FormMode
	selectedID  int64
	saving      bool
	submitted   bool
	form        models.TransactionInput
	fieldErrors map[string]string
	formError   string
}

func NewTransactionsController(apiClient TransactionsAPI, accounts AccountLister, confirm Confirmer) *TransactionsController {
	return &TransactionsController{
		api:      apiClient,
		accounts: accounts,
		confirm:  confirm,
		sortKey:  "date",
		sortDir:  SortDesc,
		form:     emptyTransaction(),
	}
}

func emptyTransaction() models.TransactionInput {
	return models.TransactionInput{TransactionType: models.TransactionTypeCredito}
}

// Load fetches movements and the account reference list in parallel; a
// reference failure degrades to raw account ids.
func (c *TransactionsController) Load(ctx context.Context) {
	var (
		wg           sync.WaitGroup
		transactions []models.Transaction
		txErr        error
		accounts     []models.Account
		accErr       error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		transactions, txErr = c.api.List(ctx)
	}()
	go func() {
		defer wg.Done()
		accounts, accErr = c.accounts.List(ctx, 0)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if accErr != nil {
		c.numberByID = nil
	} else {
		numberByID := make(map[int64]int64, len(accounts))
		for _, account := range accounts {
			numberByID[account.ID] = account.AccountNumber
		}
		c.numberByID = numberByID
	}

	if txErr != nil {
		c.errorMessage = api.Message(txErr)
		return
	}
	c.transactions = transactions
	c.errorMessage = ""
}

func (c *TransactionsController) SetSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = query
}

func (c *TransactionsController) ToggleSort(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sortKey == key {
		if c.sortDir == SortAsc {
			c.sortDir = SortDesc
		} else {
			c.sortDir = SortAsc
		}
		return
	}
	c.sortKey = key
	c.sortDir = SortAsc
}

func (c *TransactionsController) StartCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formMode = FormCreate
	c.selectedID = 0
	c.form = emptyTransaction()
	c.resetFormFlags()
	c.formOpen = true
}

func (c *TransactionsController) StartEdit(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, transaction := range c.transactions {
		if transaction.ID == id {
			c.formMode = FormEdit
			c.selectedID = id
			c.form = transaction.TransactionInput
			c.resetFormFlags()
			c.formOpen = true
			return
		}
	}
}

func (c *TransactionsController) CancelForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = false
	c.resetFormFlags()
}

func (c *TransactionsController) resetFormFlags() {
	c.submitted = false
	c.fieldErrors = nil
	c.formError = ""
}

func (c *TransactionsController) Save(ctx context.Context, in models.TransactionInput) {
	c.mu.Lock()
	c.form = in
	c.submitted = true
	c.formError = ""

	if fieldErrors := forms.Validate(in); fieldErrors != nil {
		c.fieldErrors = forms.Messages(fieldErrors)
		c.mu.Unlock()
		return
	}
	c.fieldErrors = nil
	c.saving = true
	mode, id := c.formMode, c.selectedID
	c.mu.Unlock()

	var err error
	if mode == FormEdit {
		_, err = c.api.Update(ctx, id, in)
	} else {
		_, err = c.api.Create(ctx, in)
	}

	c.mu.Lock()
	c.saving = false
	if err != nil {
		c.formError = api.Message(err)
		c.mu.Unlock()
		return
	}
	c.formOpen = false
	c.submitted = false
	c.mu.Unlock()

	c.Load(ctx)
}

func (c *TransactionsController) Delete(ctx context.Context, id int64) {
	if !c.confirm.Confirm("¿Eliminar movimiento?") {
		return
	}

	if err := c.api.Delete(ctx, id); err != nil {
		c.mu.Lock()
		c.errorMessage = api.Message(err)
		c.mu.Unlock()
		return
	}
	c.Load(ctx)
}

// accountNumber resolves an account id to its number for display, falling
// back to the raw id. Caller holds the mutex.
func (c *TransactionsController) accountNumber(accountID int64) string {
	if number, ok := c.numberByID[accountID]; ok {
		return formatID(number)
	}
	return formatID(accountID)
}

// FormatDate renders a backend timestamp for the table: dd/mm/yyyy, with
// hh:mm appended when the value carries a time component. Unparseable values
// pass through untouched.
func FormatDate(value string) string {
	hasTime := strings.ContainsAny(value, "T:")

	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if !hasTime {
			return parsed.Format("02/01/2006")
		}
		return parsed.Format("02/01/2006 15:04")
	}
	return value
}

// TransactionRow is one rendered table row with the resolved account number
// and formatted date.
type TransactionRow struct {
	models.Transaction
	AccountNumber string
	DisplayDate   string
}

type TransactionsView struct {
	Rows         []TransactionRow
	ErrorMessage string
	Search       string
	SortKey      string
	SortDir      SortDir

	FormOpen    bool
	FormMode    FormMode
	FormTitle   string
	SelectedID  int64
	Saving      bool
	Submitted   bool
	Form        models.TransactionInput
	FieldErrors map[string]string
	FormError   string
}

func (v TransactionsView) SortLabel(key string) string {
	if v.SortKey != key {
		return ""
	}
	if v.SortDir == SortAsc {
		return " ↑"
	}
	return " ↓"
}

func (v TransactionsView) FieldError(field string) string {
	return v.FieldErrors[field]
}

func (c *TransactionsController) View() TransactionsView {
	c.mu.Lock()
	defer c.mu.Unlock()

	title := "Nuevo movimiento"
	if c.formMode == FormEdit {
		title = "Editar movimiento"
	}

	return TransactionsView{
		Rows:         c.visibleRows(),
		ErrorMessage: c.errorMessage,
		Search:       c.search,
		SortKey:      c.sortKey,
		SortDir:      c.sortDir,
		FormOpen:     c.formOpen,
		FormMode:     c.formMode,
		FormTitle:    title,
		SelectedID:   c.selectedID,
		Saving:       c.saving,
		Submitted:    c.submitted,
		Form:         c.form,
		FieldErrors:  c.fieldErrors,
		FormError:    c.formError,
	}
}

func (c *TransactionsController) visibleRows() []TransactionRow {
	q := normalizeQuery(c.search)
	rows := make([]TransactionRow, 0, len(c.transactions))
	for _, transaction := range c.transactions {
		row := TransactionRow{
			Transaction:   transaction,
			AccountNumber: c.accountNumber(transaction.AccountID),
			DisplayDate:   FormatDate(transaction.Date),
		}
		if q == "" ||
			containsFold(formatID(transaction.ID), q) ||
			containsFold(transaction.TransactionType, q) ||
			containsFold(formatID(transaction.AccountID), q) ||
			containsFold(formatAmount(transaction.Amount), q) ||
			containsFold(row.AccountNumber, q) {
			rows = append(rows, row)
		}
	}
	sortTransactions(rows, c.sortKey, c.sortDir)
	return rows
}

func sortTransactions(rows []TransactionRow, key string, dir SortDir) {
	sign := dir.sign()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var cmp int
		switch key {
		case "id":
			cmp = compareNumber(float64(a.ID), float64(b.ID))
		case "transactionType":
			cmp = compareText(a.TransactionType, b.TransactionType)
		case "amount":
			cmp = compareNumber(a.Amount, b.Amount)
		case "balance":
			cmp = compareNumber(a.Balance, b.Balance)
		case "accountId":
			cmp = compareNumber(float64(a.AccountID), float64(b.AccountID))
		case "accountNumber":
			cmp = compareText(a.AccountNumber, b.AccountNumber)
		default:
			// ISO timestamps order correctly as text.
			cmp = compareText(a.Date, b.Date)
		}
		return cmp*sign < 0
	})
}
