package pages

import (
	"context"
	"sort"
	"sync"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/api"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/forms"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
)

// CustomersAPI is the slice of the customers client this page consumes.
type CustomersAPI interface {
	List(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, in models.CustomerInput) (*models.Customer, error)
	Update(ctx context.Context, id int64, in models.CustomerInput) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, active bool) (*models.Customer, error)
}

// CustomersController owns the list/form/search/sort state of the customers
// page. Methods serialize on an internal mutex; every mutation reloads the
// list from the backend rather than patching it locally.
type CustomersController struct {
	mu      sync.Mutex
	api     CustomersAPI
	confirm Confirmer

	customers    []models.Customer
	errorMessage string

	search  string
	sortKey string
	sortDir SortDir

	formOpen    bool
	formMode    FormMode
	selectedID  int64
	saving      bool
	submitted   bool
	form        models.CustomerInput
	fieldErrors map[string]string
	formError   string
}

func NewCustomersController(apiClient CustomersAPI, confirm Confirmer) *CustomersController {
	return &CustomersController{
		api:     apiClient,
		confirm: confirm,
		sortKey: "name",
		sortDir: SortAsc,
		form:    emptyCustomer(),
	}
}

func emptyCustomer() models.CustomerInput {
	return models.CustomerInput{Active: true}
}

// Load replaces the in-memory list from the backend.
func (c *CustomersController) Load(ctx context.Context) {
	customers, err := c.api.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.errorMessage = api.Message(err)
		return
	}
	c.customers = customers
	c.errorMessage = ""
}

func (c *CustomersController) SetSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = query
}

// ToggleSort flips the direction when key is already active, otherwise sorts
// ascending by key.
func (c *CustomersController) ToggleSort(key string) {
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

func (c *CustomersController) StartCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formMode = FormCreate
	c.selectedID = 0
	c.form = emptyCustomer()
	c.resetFormFlags()
	c.formOpen = true
}

func (c *CustomersController) StartEdit(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, customer := range c.customers {
		if customer.ID == id {
			c.formMode = FormEdit
			c.selectedID = id
			c.form = customer.CustomerInput
			c.resetFormFlags()
			c.formOpen = true
			return
		}
	}
}

func (c *CustomersController) CancelForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = false
	c.resetFormFlags()
}

func (c *CustomersController) resetFormFlags() {
	c.submitted = false
	c.fieldErrors = nil
	c.formError = ""
}

// Save validates the form and issues the create or update. Validation
// failures never reach the network; request failures keep the form open with
// the normalized message.
func (c *CustomersController) Save(ctx context.Context, in models.CustomerInput) {
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

// ToggleStatus flips the active flag through the status endpoint after the
// user confirms. A declined prompt is a silent no-op.
func (c *CustomersController) ToggleStatus(ctx context.Context, id int64) {
	c.mu.Lock()
	customer, ok := c.find(id)
	c.mu.Unlock()
	if !ok {
		return
	}

	nextActive := !customer.Active
	prompt := "¿Desactivar cliente?"
	if nextActive {
		prompt = "¿Activar cliente?"
	}
	if !c.confirm.Confirm(prompt) {
		return
	}

	if _, err := c.api.UpdateStatus(ctx, id, nextActive); err != nil {
		c.mu.Lock()
		c.errorMessage = api.Message(err)
		c.mu.Unlock()
		return
	}
	c.Load(ctx)
}

func (c *CustomersController) Delete(ctx context.Context, id int64) {
	if !c.confirm.Confirm("¿Eliminar cliente?") {
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

func (c *CustomersController) find(id int64) (models.Customer, bool) {
	for _, customer := range c.customers {
		if customer.ID == id {
			return customer, true
		}
	}
	return models.Customer{}, false
}

// CustomersView is an immutable snapshot for rendering and tests.
type CustomersView struct {
	Rows         []models.Customer
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
	Form        models.CustomerInput
	FieldErrors map[string]string
	FormError   string
}

// SortLabel is the header marker for key: an arrow on the active sort key,
// empty otherwise.
func (v CustomersView) SortLabel(key string) string {
	if v.SortKey != key {
		return ""
	}
	if v.SortDir == SortAsc {
		return " ↑"
	}
	return " ↓"
}

// FieldError returns the validation message for a field, empty when valid.
func (v CustomersView) FieldError(field string) string {
	return v.FieldErrors[field]
}

// View snapshots the page state with the filtered, sorted rows.
func (c *CustomersController) View() CustomersView {
	c.mu.Lock()
	defer c.mu.Unlock()

	title := "Nuevo cliente"
	if c.formMode == FormEdit {
		title = "Editar cliente"
	}

	return CustomersView{
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

// visibleRows recomputes the filtered and sorted derivation of the list; the
// caller holds the mutex.
func (c *CustomersController) visibleRows() []models.Customer {
	rows := filterCustomers(c.customers, c.search)
	sortCustomers(rows, c.sortKey, c.sortDir)
	return rows
}

// filterCustomers matches a free-text query against id, name, identification
// and phone. An empty query returns the full list in order.
func filterCustomers(customers []models.Customer, query string) []models.Customer {
	rows := make([]models.Customer, 0, len(customers))
	q := normalizeQuery(query)
	for _, customer := range customers {
		if q == "" ||
			containsFold(formatID(customer.ID), q) ||
			containsFold(customer.Name, q) ||
			containsFold(customer.Identification, q) ||
			containsFold(customer.Phone, q) {
			rows = append(rows, customer)
		}
	}
	return rows
}

func sortCustomers(rows []models.Customer, key string, dir SortDir) {
	sign := dir.sign()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var cmp int
		switch key {
		case "active":
			cmp = compareBool(a.Active, b.Active)
		case "identification":
			cmp = compareText(a.Identification, b.Identification)
		case "phone":
			cmp = compareText(a.Phone, b.Phone)
		default:
			cmp = compareText(a.Name, b.Name)
		}
		return cmp*sign < 0
	})
}
