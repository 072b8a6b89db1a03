package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/models"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/pages"
)

// CustomersHandler maps the /clientes routes onto the customers page
// controller. Successful mutations redirect (fresh GET); failures render the
// page directly so form and error state survive.
type CustomersHandler struct {
	ctrl *pages.CustomersController
}

func NewCustomersHandler(ctrl *pages.CustomersController) *CustomersHandler {
	return &CustomersHandler{ctrl: ctrl}
}

func (h *CustomersHandler) Register(router *gin.Engine) {
	group := router.Group("/clientes")
	group.GET("", h.Show)
	group.POST("/nuevo", h.StartCreate)
	group.POST("/:id/editar", h.StartEdit)
	group.POST("/cancelar", h.Cancel)
	group.POST("/guardar", h.Save)
	group.POST("/:id/estado", h.ToggleStatus)
	group.POST("/:id/eliminar", h.Delete)
}

func (h *CustomersHandler) Show(c *gin.Context) {
	if key := c.Query("sort"); key != "" {
		h.ctrl.ToggleSort(key)
	}
	if q, ok := c.GetQuery("q"); ok {
		h.ctrl.SetSearch(q)
	}
	h.ctrl.Load(c.Request.Context())
	c.HTML(http.StatusOK, "customers.tmpl", h.ctrl.View())
}

func (h *CustomersHandler) StartCreate(c *gin.Context) {
	h.ctrl.StartCreate()
	c.Redirect(http.StatusSeeOther, "/clientes")
}

func (h *CustomersHandler) StartEdit(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.ctrl.StartEdit(id)
	}
	c.Redirect(http.StatusSeeOther, "/clientes")
}

func (h *CustomersHandler) Cancel(c *gin.Context) {
	h.ctrl.CancelForm()
	c.Redirect(http.StatusSeeOther, "/clientes")
}

func (h *CustomersHandler) Save(c *gin.Context) {
	h.ctrl.Save(c.Request.Context(), customerFormInput(c))

	if view := h.ctrl.View(); view.FormOpen {
		c.HTML(http.StatusOK, "customers.tmpl", view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/clientes")
}

func (h *CustomersHandler) ToggleStatus(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.ctrl.ToggleStatus(c.Request.Context(), id)
	}
	h.finishListAction(c)
}

func (h *CustomersHandler) Delete(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.ctrl.Delete(c.Request.Context(), id)
	}
	h.finishListAction(c)
}

func (h *CustomersHandler) finishListAction(c *gin.Context) {
	if view := h.ctrl.View(); view.ErrorMessage != "" {
		c.HTML(http.StatusOK, "customers.tmpl", view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/clientes")
}

// customerFormInput decodes the posted form; unparseable numerics fall back
// to zero values so validation reports them instead of the transport.
func customerFormInput(c *gin.Context) models.CustomerInput {
	age, _ := strconv.Atoi(c.PostForm("age"))
	return models.CustomerInput{
		Name:           c.PostForm("name"),
		Gender:         c.PostForm("gender"),
		Age:            age,
		Identification: c.PostForm("identification"),
		Address:        c.PostForm("address"),
		Phone:          c.PostForm("phone"),
		Password:       c.PostForm("password"),
		Active:         c.PostForm("active") == "true",
	}
}
