package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/selling"
	"github.com/vfg2006/retail-sales-api/internal/usecases/storing"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/middleware"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// Renderer desenha uma página HTML a partir do nome do template
type Renderer interface {
	Render(w io.Writer, page string, data any) error
}

// Page é o modelo comum a todas as páginas
type Page struct {
	Session *domain.Session
	Error   string
	Flash   string
	Data    any
}

type loginView struct {
	Next  string
	Email string
}

type storesView struct {
	Stores []*domain.Store
}

type storeFormView struct {
	Form    domain.CreateStoreRequest
	Invalid *domain.ValidationError
}

type storeDetailView struct {
	Report *domain.StoreReport
}

type batchFormView struct {
	Action  string
	Store   *domain.Store
	Stores  []*domain.Store // Preenchido apenas no formulário com seletor de loja
	Sales   []*domain.SaleWithStore
	Form    domain.SaleBatchRequest
	Invalid *domain.ValidationError
}

type salesView struct {
	Item      string
	StartDate string
	EndDate   string
	Overview  *domain.SalesOverview
}

type dashboardView struct {
	Filter    domain.SaleFilter
	StartDate string
	EndDate   string
	Report    *domain.DashboardReport
}

const (
	loginPath       = "/login"
	storeAddSegment = "add"
)

// now é substituído nos testes
var now = time.Now

func render(w http.ResponseWriter, r *http.Request, renderer Renderer, status int, page string, data Page) {
	if data.Session == nil {
		data.Session, _ = middleware.SessionFromContext(r.Context())
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, page, data); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("pages: erro ao renderizar")
		http.Error(w, "Erro ao renderizar a página", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("pages: erro ao enviar página")
	}
}

// safeNext aceita apenas caminhos locais como destino pós-login
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, loginPath) {
		return "/"
	}
	return next
}

func salesCreatedMessage(n int) string {
	if n == 1 {
		return "1 venda registrada com sucesso"
	}
	return fmt.Sprintf("%d vendas registradas com sucesso", n)
}

func emptyBatchForm(storeID string) domain.SaleBatchRequest {
	return domain.SaleBatchRequest{
		StoreID: storeID,
		Month:   now().Format(utils.MonthLayout),
		Items:   []domain.SaleLineItem{{}},
	}
}

// withBlankRow garante uma linha vazia para o próximo item do formulário
func withBlankRow(form domain.SaleBatchRequest) domain.SaleBatchRequest {
	form.Items = append(form.Items, domain.SaleLineItem{})
	return form
}

func LoginPage(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, http.StatusOK, "login.html", Page{
			Data: loginView{Next: safeNext(r.URL.Query().Get("next"))},
		})
	}
}

// LoginSubmit autentica pelo formulário e grava o JWT no cookie de sessão
func LoginSubmit(renderer Renderer, service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render(w, r, renderer, http.StatusBadRequest, "login.html", Page{
				Error: "Formulário inválido",
				Data:  loginView{Next: "/"},
			})
			return
		}

		email := r.PostForm.Get("email")
		next := safeNext(r.PostForm.Get("next"))

		session, token, err := service.Login(r.Context(), email, r.PostForm.Get("password"))
		if err != nil {
			status, message := http.StatusInternalServerError, "Não foi possível entrar. Tente novamente."
			if authenticating.IsCredentialsError(err) {
				status, message = http.StatusUnauthorized, "E-mail ou senha inválidos"
				if errors.Is(err, authenticating.ErrUserDisabled) {
					status, message = http.StatusForbidden, "Usuário desativado"
				}
			} else {
				log.ForContext(r.Context()).WithError(err).Error("login-page: erro ao autenticar")
			}

			render(w, r, renderer, status, "login.html", Page{
				Error: message,
				Data:  loginView{Next: next, Email: email},
			})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, next, http.StatusSeeOther)
	}
}

// LogoutSubmit encerra a sessão do cookie e volta para o login
func LogoutSubmit(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			if err := service.SignOut(r.Context(), cookie.Value); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("logout-page: erro ao encerrar sessão")
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		http.Redirect(w, r, loginPath, http.StatusSeeOther)
	}
}

func HomePage(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, http.StatusOK, "home.html", Page{})
	}
}

func StoresPage(renderer Renderer, service storing.Storer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stores, err := service.ListStores(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("stores-page: erro ao listar lojas")
			render(w, r, renderer, http.StatusInternalServerError, "stores.html", Page{
				Error: "Erro ao carregar as lojas",
				Data:  storesView{},
			})
			return
		}

		render(w, r, renderer, http.StatusOK, "stores.html", Page{Data: storesView{Stores: stores}})
	}
}

// StoreDetailPage atende GET /stores/:id. httprouter não aceita /stores/add ao
// lado de /stores/:id, então o formulário de cadastro é despachado daqui.
func StoreDetailPage(renderer Renderer, service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if id == storeAddSegment {
			render(w, r, renderer, http.StatusOK, "store_form.html", Page{Data: storeFormView{}})
			return
		}

		report, err := service.StoreReport(r.Context(), id)
		if err != nil {
			if errors.Is(err, reporting.ErrStoreNotFound) {
				render(w, r, renderer, http.StatusNotFound, "store_detail.html", Page{Data: storeDetailView{}})
				return
			}

			log.ForContext(r.Context()).WithError(err).WithField("store_id", id).Error("store-page: erro ao montar resumo")
			render(w, r, renderer, http.StatusInternalServerError, "store_detail.html", Page{
				Error: "Erro ao carregar a loja",
				Data:  storeDetailView{},
			})
			return
		}

		render(w, r, renderer, http.StatusOK, "store_detail.html", Page{Data: storeDetailView{Report: report}})
	}
}

// StoreCreateSubmit atende POST /stores/:id, aceito apenas para "add"
func StoreCreateSubmit(renderer Renderer, service storing.Storer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pathParam(r, "id") != storeAddSegment {
			http.NotFound(w, r)
			return
		}

		var form domain.CreateStoreRequest
		if err := r.ParseForm(); err != nil {
			render(w, r, renderer, http.StatusBadRequest, "store_form.html", Page{
				Error: "Formulário inválido",
				Data:  storeFormView{},
			})
			return
		}

		values := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			values[key] = r.PostForm.Get(key)
		}
		if err := mapstructure.Decode(values, &form); err != nil {
			render(w, r, renderer, http.StatusBadRequest, "store_form.html", Page{
				Error: "Formulário inválido",
				Data:  storeFormView{},
			})
			return
		}

		store, err := service.CreateStore(r.Context(), form)
		if err != nil {
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				render(w, r, renderer, http.StatusBadRequest, "store_form.html", Page{
					Data: storeFormView{Form: form, Invalid: validationErr},
				})
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("store-page: erro ao criar loja")
			render(w, r, renderer, http.StatusInternalServerError, "store_form.html", Page{
				Error: "Erro ao salvar a loja",
				Data:  storeFormView{Form: form},
			})
			return
		}

		log.ForContext(r.Context()).WithField("store_id", store.ID).Info("Loja criada pelo formulário")
		http.Redirect(w, r, "/stores/"+store.ID, http.StatusSeeOther)
	}
}

// StoreSalesPage mostra o formulário de lançamento da loja e as vendas dela
func StoreSalesPage(renderer Renderer, stores storing.Storer, sales selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := Page{}
		if created, err := strconv.Atoi(r.URL.Query().Get("created")); err == nil && created > 0 {
			page.Flash = salesCreatedMessage(created)
		}

		renderStoreSales(w, r, renderer, stores, sales, http.StatusOK, page, emptyBatchForm(pathParam(r, "id")), nil)
	}
}

func StoreSalesSubmit(renderer Renderer, stores storing.Storer, sales selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")

		if err := r.ParseForm(); err != nil {
			renderStoreSales(w, r, renderer, stores, sales, http.StatusBadRequest, Page{Error: "Formulário inválido"}, emptyBatchForm(id), nil)
			return
		}

		form := selling.ParseBatchForm(r.PostForm)
		form.StoreID = id

		created, err := sales.CreateBatch(r.Context(), form)
		if err == nil {
			http.Redirect(w, r, fmt.Sprintf("/stores/%s/sales?created=%d", id, len(created)), http.StatusSeeOther)
			return
		}

		status, page, invalid := batchFailure(r, err)
		renderStoreSales(w, r, renderer, stores, sales, status, page, withBlankRow(form), invalid)
	}
}

func renderStoreSales(
	w http.ResponseWriter,
	r *http.Request,
	renderer Renderer,
	stores storing.Storer,
	sales selling.Seller,
	status int,
	page Page,
	form domain.SaleBatchRequest,
	invalid *domain.ValidationError,
) {
	id := pathParam(r, "id")

	store, err := stores.GetStore(r.Context(), id)
	if err != nil {
		if errors.Is(err, storing.ErrStoreNotFound) {
			render(w, r, renderer, http.StatusNotFound, "store_detail.html", Page{Data: storeDetailView{}})
			return
		}

		log.ForContext(r.Context()).WithError(err).WithField("store_id", id).Error("store-sales-page: erro ao buscar loja")
		render(w, r, renderer, http.StatusInternalServerError, "store_detail.html", Page{
			Error: "Erro ao carregar a loja",
			Data:  storeDetailView{},
		})
		return
	}

	list, err := sales.ListStoreSales(r.Context(), id)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("store_id", id).Error("store-sales-page: erro ao listar vendas")
		page.Error = "Erro ao carregar as vendas da loja"
	}

	page.Data = batchFormView{
		Action:  "/stores/" + id + "/sales",
		Store:   store,
		Sales:   list,
		Form:    form,
		Invalid: invalid,
	}
	render(w, r, renderer, status, "store_sales.html", page)
}

func SalesPage(renderer Renderer, service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		page := Page{}
		if created, err := strconv.Atoi(query.Get("created")); err == nil && created > 0 {
			page.Flash = salesCreatedMessage(created)
		}

		view := salesView{
			Item:      query.Get("item"),
			StartDate: query.Get("startDate"),
			EndDate:   query.Get("endDate"),
		}

		filter, err := reporting.NewSaleFilter("", view.Item, view.StartDate, view.EndDate)
		if err != nil {
			page.Error = "Datas do filtro inválidas: use AAAA-MM"
			page.Data = view
			render(w, r, renderer, http.StatusBadRequest, "sales.html", page)
			return
		}

		overview, err := service.SalesOverview(r.Context(), filter, service.PageRequest(query.Get("page"), query.Get("pageSize")))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sales-page: erro ao carregar vendas")
			page.Error = "Erro ao carregar as vendas"
			page.Data = view
			render(w, r, renderer, http.StatusInternalServerError, "sales.html", page)
			return
		}

		view.Overview = overview
		page.Data = view
		render(w, r, renderer, http.StatusOK, "sales.html", page)
	}
}

func SaleFormPage(renderer Renderer, stores storing.Storer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderSaleForm(w, r, renderer, stores, http.StatusOK, Page{}, emptyBatchForm(r.URL.Query().Get("storeId")), nil)
	}
}

func SaleFormSubmit(renderer Renderer, stores storing.Storer, sales selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderSaleForm(w, r, renderer, stores, http.StatusBadRequest, Page{Error: "Formulário inválido"}, emptyBatchForm(""), nil)
			return
		}

		form := selling.ParseBatchForm(r.PostForm)

		created, err := sales.CreateBatch(r.Context(), form)
		if err == nil {
			http.Redirect(w, r, fmt.Sprintf("/sales?created=%d", len(created)), http.StatusSeeOther)
			return
		}

		status, page, invalid := batchFailure(r, err)
		renderSaleForm(w, r, renderer, stores, status, page, withBlankRow(form), invalid)
	}
}

func renderSaleForm(
	w http.ResponseWriter,
	r *http.Request,
	renderer Renderer,
	stores storing.Storer,
	status int,
	page Page,
	form domain.SaleBatchRequest,
	invalid *domain.ValidationError,
) {
	list, err := stores.ListStores(r.Context())
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("sale-form-page: erro ao listar lojas")
		page.Error = "Erro ao carregar as lojas"
		status = http.StatusInternalServerError
	}

	page.Data = batchFormView{
		Action:  "/sales/add",
		Stores:  list,
		Form:    form,
		Invalid: invalid,
	}
	render(w, r, renderer, status, "sales_form.html", page)
}

// batchFailure traduz a falha de um lote para status, banner e erro de campo
func batchFailure(r *http.Request, err error) (int, Page, *domain.ValidationError) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, Page{}, validationErr
	}

	var batchErr *selling.BatchError
	if errors.As(err, &batchErr) {
		log.ForContext(r.Context()).WithError(err).Error("sale-form-page: lote interrompido")
		return http.StatusInternalServerError, Page{
			Error: fmt.Sprintf("Erro ao gravar o item %d. %s antes da falha.", batchErr.FailedIndex+1, salesCreatedMessage(len(batchErr.Created))),
		}, nil
	}

	if errors.Is(err, selling.ErrStoreNotFound) {
		return http.StatusNotFound, Page{Error: "Loja não encontrada"}, nil
	}

	log.ForContext(r.Context()).WithError(err).Error("sale-form-page: erro ao gravar lote")
	return http.StatusInternalServerError, Page{Error: "Erro ao gravar as vendas"}, nil
}

func DashboardPage(renderer Renderer, service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		view := dashboardView{
			StartDate: query.Get("startDate"),
			EndDate:   query.Get("endDate"),
			Report:    &domain.DashboardReport{},
		}

		filter, err := reporting.NewSaleFilter(query.Get("storeId"), "", view.StartDate, view.EndDate)
		if err != nil {
			render(w, r, renderer, http.StatusBadRequest, "dashboard.html", Page{
				Error: "Datas do filtro inválidas: use AAAA-MM-DD",
				Data:  view,
			})
			return
		}
		view.Filter = filter

		report, err := service.Dashboard(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard-page: erro ao montar relatório")
			render(w, r, renderer, http.StatusInternalServerError, "dashboard.html", Page{
				Error: "Falha ao buscar dados do dashboard",
				Data:  view,
			})
			return
		}

		view.Report = report
		render(w, r, renderer, http.StatusOK, "dashboard.html", Page{Data: view})
	}
}
