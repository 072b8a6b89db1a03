package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/pages"
)

// ReportsHandler maps the /reportes routes onto the reports page controller.
type ReportsHandler struct {
	ctrl *pages.ReportsController
}

func NewReportsHandler(ctrl *pages.ReportsController) *ReportsHandler {
	return &ReportsHandler{ctrl: ctrl}
}

func (h *ReportsHandler) Register(router *gin.Engine) {
	group := router.Group("/reportes")
	group.GET("", h.Show)
	group.POST("/buscar", h.Search)
	group.GET("/pdf", h.DownloadPDF)
}

func (h *ReportsHandler) Show(c *gin.Context) {
	h.ctrl.Load(c.Request.Context())
	c.HTML(http.StatusOK, "reports.tmpl", h.ctrl.View())
}

// Search stores the criteria and loads the statement. Report and error state
// live in the controller, so plain redirect-after-post works here.
func (h *ReportsHandler) Search(c *gin.Context) {
	h.ctrl.SetCriteria(c.PostForm("customerQuery"), c.PostForm("from"), c.PostForm("to"))
	h.ctrl.LoadReport(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/reportes")
}

// DownloadPDF streams the statement's embedded PDF as an attachment; without
// a loaded report or payload it bounces back to the page.
func (h *ReportsHandler) DownloadPDF(c *gin.Context) {
	filename, data, ok := h.ctrl.PDF()
	if !ok {
		c.Redirect(http.StatusFound, "/reportes")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
