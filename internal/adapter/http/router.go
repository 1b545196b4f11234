package http

import (
	"html/template"
	"net/http"

	"github.com/Brayan008/cuack-stores/internal/adapter/http/middleware"
	"github.com/Brayan008/cuack-stores/internal/entity"
	"github.com/Brayan008/cuack-stores/internal/logging"
	"github.com/Brayan008/cuack-stores/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var templateFuncs = template.FuncMap{
	// index on a value map yields a zero struct, which templates treat as
	// truthy; a nil pointer is what {{with}} needs.
	"avail": func(m map[string]entity.Availability, hawa string) *entity.Availability {
		if a, ok := m[hawa]; ok {
			return &a
		}
		return nil
	},
	"statusLabel": func(s entity.Status) string {
		if label, ok := entity.StatusLabels[s]; ok {
			return label
		}
		return string(s)
	},
	"statusClass": func(s entity.Status) string {
		switch s {
		case entity.StatusPendiente:
			return "bg-warning text-dark"
		case entity.StatusEntregado:
			return "bg-success"
		case entity.StatusCancelado:
			return "bg-danger"
		}
		return "bg-secondary"
	},
}

func NewRouter(
	home *HomeHandler,
	authH *AuthHandler,
	products *ProductsHandler,
	orderForm *OrderFormHandler,
	orders *OrdersHandler,
	sessions middleware.SessionSource,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(web.Templates, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", home.Page)
	r.GET("/auth/login", authH.Login)
	r.POST("/auth/callback", authH.Callback)
	r.GET("/auth/logout", authH.Logout)

	guarded := r.Group("/", middleware.RequireSession(sessions))
	{
		guarded.GET("/products", products.Page)
		guarded.POST("/products/availability", products.CheckAvailability)
		guarded.GET("/create-order", orderForm.Page)
		guarded.POST("/create-order", orderForm.Submit)
		guarded.GET("/orders", orders.Page)
		guarded.POST("/orders/status", orders.ChangeStatus)
	}

	// any unmatched path falls back to home
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	return r
}
