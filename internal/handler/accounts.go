package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/pages"
)

// AccountsHandler maps the /cuentas routes onto the accounts page controller.
type AccountsHandler struct {
	ctrl *pages.AccountsController
}

func NewAccountsHandler(ctrl *pages.AccountsController) *AccountsHandler {
	return &AccountsHandler{ctrl: ctrl}
}

func (h *AccountsHandler) Register(router *gin.Engine) {
	group := router.Group("/cuentas")
	group.GET("", h.Show)
	group.POST("/nuevo", h.StartCreate)
	group.POST("/:id/editar", h.StartEdit)
	group.POST("/cancelar", h.Cancel)
	group.POST("/guardar", h.Save)
	group.POST("/:id/estado", h.ToggleActive)
	group.POST("/:id/eliminar", h.Delete)
}

func (h *AccountsHandler) Show(c *gin.Context) {
	if key := c.Query("sort"); key != "" {
		h.ctrl.ToggleSort(key)
	}
	if q, ok := c.GetQuery("q"); ok {
		h.ctrl.SetSearch(q)
	}
	h.ctrl.Load(c.Request.Context())
	c.HTML(http.StatusOK, "accounts.tmpl", h.ctrl.View())
}

func (h *AccountsHandler) StartCreate(c *gin.Context) {
	h.ctrl.StartCreate()
	c.Redirect(http.StatusSeeOther, "/cuentas")
}

func (h *AccountsHandler) StartEdit(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.ctrl.StartEdit(id)
	}
	c.Redirect(http.StatusSeeOther, "/cuentas")
}

func (h *AccountsHandler) Cancel(c *gin.Context) {
	h.ctrl.CancelForm()
	c.Redirect(http.StatusSeeOther, "/cuentas")
}

func (h *AccountsHandler) Save(c *gin.Context) {
	h.ctrl.Save(c.Request.Context(), accountFormInput(c))

	if view := h.ctrl.View(); view.FormOpen {
		c.HTML(http.StatusOK, "accounts.tmpl", view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/cuentas")
}

func (h *AccountsHandler) ToggleActive(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.ctrl.ToggleActive(c.Request.Context(), id)
	}
	h.finishListAction(c)
}

func (h *AccountsHandler) Delete(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.ctrl.Delete(c.Request.Context(), id)
	}
	h.finishListAction(c)
}

func (h *AccountsHandler) finishListAction(c *gin.Context) {
	if view := h.ctrl.View(); view.ErrorMessage != "" {
		c.HTML(http.StatusOK, "accounts.tmpl", view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/cuentas")
}

func accountFormInput(c *gin.Context) models.AccountInput {
	accountNumber, _ := strconv.ParseInt(c.PostForm("accountNumber"), 10, 64)
	initialBalance, _ := strconv.ParseFloat(c.PostForm("initialBalance"), 64)
	customerID, _ := strconv.ParseInt(c.PostForm("customerId"), 10, 64)
	return models.AccountInput{
		AccountNumber:  accountNumber,
		AccountType:    c.PostForm("accountType"),
		InitialBalance: initialBalance,
		Active:         c.PostForm("active") == "true",
		CustomerID:     customerID,
	}
}
