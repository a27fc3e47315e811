package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Aplicados na ordem declarada, só nesta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithFallback define as respostas para caminho inexistente e método não
// suportado; handler nil mantém o padrão do httprouter
func WithFallback(notFound, methodNotAllowed http.Handler) ConfigRouter {
	return func(router *Router) {
		if notFound != nil {
			router.router.NotFound = notFound
		}
		if methodNotAllowed != nil {
			router.router.MethodNotAllowed = methodNotAllowed
		}
	}
}

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes envolve cada handler com os middlewares da rota
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, chain(route.Handler, route.Middlewares))
	}
}

func chain(handler http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
