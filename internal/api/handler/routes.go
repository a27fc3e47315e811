package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/selling"
	"github.com/vfg2006/retail-sales-api/internal/usecases/storing"
	"github.com/vfg2006/retail-sales-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// shutdown encerra os streams de eventos de sessão abertos
func Authentication(service authenticating.Authenticator, shutdown <-chan struct{}) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/session",
			Method:      http.MethodGet,
			Handler:     GetCurrentSession(),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/session/events",
			Method:      http.MethodGet,
			Handler:     SessionEvents(service, shutdown),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Stores(stores storing.Storer, reports reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores",
			Method:      http.MethodGet,
			Handler:     ListStores(stores),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores",
			Method:      http.MethodPost,
			Handler:     CreateStore(stores),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id",
			Method:      http.MethodGet,
			Handler:     GetStore(stores),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id",
			Method:      http.MethodPut,
			Handler:     UpdateStore(stores),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteStore(stores),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/stores/:id/summary",
			Method:      http.MethodGet,
			Handler:     GetStoreSummary(reports),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Sales(sales selling.Seller, reports reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(reports),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/batch",
			Method:      http.MethodPost,
			Handler:     CreateSaleBatch(sales),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodGet,
			Handler:     GetSale(sales),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSale(sales),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(sales),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/monthly-sales",
			Method:      http.MethodGet,
			Handler:     GetMonthlySalesReport(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/top-items",
			Method:      http.MethodGet,
			Handler:     GetTopItemsReport(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/store-performance",
			Method:      http.MethodGet,
			Handler:     GetStorePerformanceReport(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

// PageServices reúne as dependências das páginas HTML
type PageServices struct {
	Renderer      Renderer
	Authenticator authenticating.Authenticator
	Stores        storing.Storer
	Sales         selling.Seller
	Reports       reporting.Reporter
}

// Pages retorna as rotas HTML. Todas, exceto login e logout, passam pelo AuthGate.
func Pages(s PageServices) []router.Route {
	gate := middlewares{middleware.AuthGate(s.Authenticator, loginPath)}

	return []router.Route{
		{
			Path:    loginPath,
			Method:  http.MethodGet,
			Handler: LoginPage(s.Renderer),
		},
		{
			Path:    loginPath,
			Method:  http.MethodPost,
			Handler: LoginSubmit(s.Renderer, s.Authenticator),
		},
		{
			Path:    "/logout",
			Method:  http.MethodPost,
			Handler: LogoutSubmit(s.Authenticator),
		},
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     HomePage(s.Renderer),
			Middlewares: gate,
		},
		{
			Path:        "/stores",
			Method:      http.MethodGet,
			Handler:     StoresPage(s.Renderer, s.Stores),
			Middlewares: gate,
		},
		{
			Path:        "/stores/:id",
			Method:      http.MethodGet,
			Handler:     StoreDetailPage(s.Renderer, s.Reports),
			Middlewares: gate,
		},
		{
			Path:        "/stores/:id",
			Method:      http.MethodPost,
			Handler:     StoreCreateSubmit(s.Renderer, s.Stores),
			Middlewares: gate,
		},
		{
			Path:        "/stores/:id/sales",
			Method:      http.MethodGet,
			Handler:     StoreSalesPage(s.Renderer, s.Stores, s.Sales),
			Middlewares: gate,
		},
		{
			Path:        "/stores/:id/sales",
			Method:      http.MethodPost,
			Handler:     StoreSalesSubmit(s.Renderer, s.Stores, s.Sales),
			Middlewares: gate,
		},
		{
			Path:        "/sales",
			Method:      http.MethodGet,
			Handler:     SalesPage(s.Renderer, s.Reports),
			Middlewares: gate,
		},
		{
			Path:        "/sales/add",
			Method:      http.MethodGet,
			Handler:     SaleFormPage(s.Renderer, s.Stores),
			Middlewares: gate,
		},
		{
			Path:        "/sales/add",
			Method:      http.MethodPost,
			Handler:     SaleFormSubmit(s.Renderer, s.Stores, s.Sales),
			Middlewares: gate,
		},
		{
			Path:        "/dashboard",
			Method:      http.MethodGet,
			Handler:     DashboardPage(s.Renderer, s.Reports),
			Middlewares: gate,
		},
	}
}
