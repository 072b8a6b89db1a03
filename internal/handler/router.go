package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/middleware"
	"github.com/joregebadlibre/PruebaTecnicaEnero2026Front/internal/pages"
)

// Controllers groups the four page controllers behind the console routes.
type Controllers struct {
	Customers    *pages.CustomersController
	Accounts     *pages.AccountsController
	Transactions *pages.TransactionsController
	Reports      *pages.ReportsController
}

// NewRouter wires the console: the four pages, the metrics endpoint, and a
// catch-all redirect to the default page. templateGlob locates the html
// templates (web/templates/*.tmpl).
func NewRouter(ctrls Controllers, templateGlob string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logging())
	router.LoadHTMLGlob(templateGlob)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", redirectToCustomers)
	router.NoRoute(redirectToCustomers)

	NewCustomersHandler(ctrls.Customers).Register(router)
	NewAccountsHandler(ctrls.Accounts).Register(router)
	NewTransactionsHandler(ctrls.Transactions).Register(router)
	NewReportsHandler(ctrls.Reports).Register(router)

	return router
}

func redirectToCustomers(c *gin.Context) {
	c.Redirect(http.StatusFound, "/clientes")
}

// pathID parses the :id route parameter; ok is false on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
