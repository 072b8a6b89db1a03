package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/pages"
)

// TransactionsHandler maps the /movimientos routes onto the transactions
// page controller.
type TransactionsHandler struct {
	ctrl *pages.TransactionsController
}

func NewTransactionsHandler(ctrl *pages.TransactionsController) *TransactionsHandler {
	return &TransactionsHandler{ctrl: ctrl}
}

func (h *TransactionsHandler) Register(router *gin.Engine) {
	group := router.Group("/movimientos")
	group.GET("", h.Show)
	group.POST("/nuevo", h.StartCreate)
	group.POST("/:id/editar", h.StartEdit)
	group.POST("/cancelar", h.Cancel)
	group.POST("/guardar", h.Save)
	group.POST("/:id/eliminar", h.Delete)
}

func (h *TransactionsHandler) Show(c *gin.Context) {
	if key := c.Query("sort"); key != "" {
		h.ctrl.ToggleSort(key)
	}
	if q, ok := c.GetQuery("q"); ok {
		h.ctrl.SetSearch(q)
	}
	h.ctrl.Load(c.Request.Context())
	c.HTML(http.StatusOK, "transactions.tmpl", h.ctrl.View())
}

func (h *TransactionsHandler) StartCreate(c *gin.Context) {
	h.ctrl.StartCreate()
	c.Redirect(http.StatusSeeOther, "/movimientos")
}

func (h *TransactionsHandler) StartEdit(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.ctrl.StartEdit(id)
	}
	c.Redirect(http.StatusSeeOther, "/movimientos")
}

func (h *TransactionsHandler) Cancel(c *gin.Context) {
	h.ctrl.CancelForm()
	c.Redirect(http.StatusSeeOther, "/movimientos")
}

func (h *TransactionsHandler) Save(c *gin.Context) {
	h.ctrl.Save(c.Request.Context(), transactionFormInput(c))

	if view := h.ctrl.View(); view.FormOpen {
		c.HTML(http.StatusOK, "transactions.tmpl", view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/movimientos")
}

func (h *TransactionsHandler) Delete(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.ctrl.Delete(c.Request.Context(), id)
	}
	if view := h.ctrl.View(); view.ErrorMessage != "" {
		c.HTML(http.StatusOK, "transactions.tmpl", view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/movimientos")
}

func transactionFormInput(c *gin.Context) models.TransactionInput {
	accountID, _ := strconv.ParseInt(c.PostForm("accountId"), 10, 64)
	amount, _ := strconv.ParseFloat(c.PostForm("amount"), 64)
	return models.TransactionInput{
		AccountID:       accountID,
		TransactionType: c.PostForm("transactionType"),
		Amount:          amount,
	}
}
