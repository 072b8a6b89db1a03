package pages

import (
	"context"
	"sort"
	"sync"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/api"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/forms"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// AccountsAPI is the slice of the accounts client this page consumes.
type AccountsAPI interface {
	List(ctx context.Context, customerID int64) ([]models.Account, error)
	Create(ctx context.Context, in models.AccountInput) (*models.Account, error)
	Update(ctx context.Context, id int64, in models.AccountInput) (*models.Account, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerLister is the read-only view of the customers client used to
// resolve display names.
type CustomerLister interface {
	List(ctx context.Context) ([]models.Customer, error)
}

// AccountsController owns the accounts page. Besides the primary list it
// keeps the customer list loaded alongside, purely for id-to-name display.
type AccountsController struct {
	mu        sync.Mutex
	api       AccountsAPI
	customers CustomerLister
	confirm   Confirmer

	accounts     []models.Account
	nameByID     map[int64]string
	errorMessage string

	search  string
	sortKey string
	sortDir SortDir

	formOpen    bool
	formMode    FormMode
	selectedID  int64
	saving      bool
	submitted   bool
	form        models.AccountInput
	fieldErrors map[string]string
	formError   string
}

func NewAccountsController(apiClient AccountsAPI, customers CustomerLister, confirm Confirmer) *AccountsController {
	return &AccountsController{
		api:       apiClient,
		customers: customers,
		confirm:   confirm,
		sortKey:   "accountNumber",
		sortDir:   SortAsc,
		form:      emptyAccount(),
	}
}

func emptyAccount() models.AccountInput {
	return models.AccountInput{AccountType: models.AccountTypeAhorro, Active: true}
}

// Load fetches the account and customer lists in parallel. The customer list
// is reference data only: a failure there degrades to raw customer ids in the
// table instead of surfacing an error.
func (c *AccountsController) Load(ctx context.Context) {
	var (
		wg        sync.WaitGroup
		accounts  []models.Account
		accErr    error
		customers []models.Customer
		custErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		accounts, accErr = c.api.List(ctx, 0)
	}()
	go func() {
		defer wg.Done()
		customers, custErr = c.customers.List(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if custErr != nil {
		c.nameByID = nil
	} else {
		nameByID := make(map[int64]string, len(customers))
		for _, customer := range customers {
			nameByID[customer.ID] = customer.Name
		}
		c.nameByID = nameByID
	}

	if accErr != nil {
		c.errorMessage = api.Message(accErr)
		return
	}
	c.accounts = accounts
	c.errorMessage = ""
}

func (c *AccountsController) SetSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = query
}

func (c *AccountsController) ToggleSort(key string) {
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

func (c *AccountsController) StartCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formMode = FormCreate
	c.selectedID = 0
	c.form = emptyAccount()
	c.resetFormFlags()
	c.formOpen = true
}

func (c *AccountsController) StartEdit(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, account := range c.accounts {
		if account.ID == id {
			c.formMode = FormEdit
			c.selectedID = id
			c.form = account.AccountInput
			c.resetFormFlags()
			c.formOpen = true
			return
		}
	}
}

func (c *AccountsController) CancelForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = false
	c.resetFormFlags()
}

func (c *AccountsController) resetFormFlags() {
	c.submitted = false
	c.fieldErrors = nil
	c.formError = ""
}

func (c *AccountsController) Save(ctx context.Context, in models.AccountInput) {
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

// ToggleActive re-submits the whole record with the flag inverted; accounts
// have no dedicated status endpoint.
func (c *AccountsController) ToggleActive(ctx context.Context, id int64) {
	c.mu.Lock()
	account, ok := c.find(id)
	c.mu.Unlock()
	if !ok {
		return
	}

	prompt := "¿Activar cuenta?"
	if account.Active {
		prompt = "¿Desactivar cuenta?"
	}
	if !c.confirm.Confirm(prompt) {
		return
	}

	in := account.AccountInput
	in.Active = !in.Active
	if _, err := c.api.Update(ctx, id, in); err != nil {
		c.mu.Lock()
		c.errorMessage = api.Message(err)
		c.mu.Unlock()
		return
	}
	c.Load(ctx)
}

func (c *AccountsController) Delete(ctx context.Context, id int64) {
	if !c.confirm.Confirm("¿Eliminar cuenta?") {
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

func (c *AccountsController) find(id int64) (models.Account, bool) {
	for _, account := range c.accounts {
		if account.ID == id {
			return account, true
		}
	}
	return models.Account{}, false
}

// customerName resolves a customer id to its display name, falling back to
// the raw id when the reference list has no match. Caller holds the mutex.
func (c *AccountsController) customerName(customerID int64) string {
	if name, ok := c.nameByID[customerID]; ok {
		return name
	}
	return formatID(customerID)
}

// AccountRow is one rendered table row with the resolved customer name.
type AccountRow struct {
	models.Account
	CustomerName string
}

type AccountsView struct {
	Rows         []AccountRow
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
	Form        models.AccountInput
	FieldErrors map[string]string
	FormError   string
}

func (v AccountsView) SortLabel(key string) string {
	if v.SortKey != key {
		return ""
	}
	if v.SortDir == SortAsc {
		return " ↑"
	}
	return " ↓"
}

func (v AccountsView) FieldError(field string) string {
	return v.FieldErrors[field]
}

func (c *AccountsController) View() AccountsView {
	c.mu.Lock()
	defer c.mu.Unlock()

	title := "Nueva cuenta"
	if c.formMode == FormEdit {
		title = "Editar cuenta"
	}

	return AccountsView{
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

func (c *AccountsController) visibleRows() []AccountRow {
	q := normalizeQuery(c.search)
	rows := make([]AccountRow, 0, len(c.accounts))
	for _, account := range c.accounts {
		row := AccountRow{Account: account, CustomerName: c.customerName(account.CustomerID)}
		if q == "" ||
			containsFold(formatID(account.ID), q) ||
			containsFold(formatID(account.AccountNumber), q) ||
			containsFold(account.AccountType, q) ||
			containsFold(formatID(account.CustomerID), q) ||
			containsFold(row.CustomerName, q) {
			rows = append(rows, row)
		}
	}
	sortAccounts(rows, c.sortKey, c.sortDir)
	return rows
}

func sortAccounts(rows []AccountRow, key string, dir SortDir) {
	sign := dir.sign()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var cmp int
		switch key {
		case "id":
			cmp = compareNumber(float64(a.ID), float64(b.ID))
		case "accountType":
			cmp = compareText(a.AccountType, b.AccountType)
		case "initialBalance":
			cmp = compareNumber(a.InitialBalance, b.InitialBalance)
		case "customerId":
			cmp = compareNumber(float64(a.CustomerID), float64(b.CustomerID))
		case "customerName":
			cmp = compareText(a.CustomerName, b.CustomerName)
		case "active":
			cmp = compareBool(a.Active, b.Active)
		default:
			cmp = compareNumber(float64(a.AccountNumber), float64(b.AccountNumber))
		}
		return cmp*sign < 0
	})
}
