package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SergeyBogomolovv/food-order-service/internal/config"
	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
	"github.com/SergeyBogomolovv/food-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, customerID string, items []entities.ItemInput, paymentInfoID string) (entities.Order, error)
	AddItems(ctx context.Context, customerID, orderUID string, items []entities.ItemInput, paymentInfoID string) (entities.Order, error)
	ApplyAction(ctx context.Context, orderUID string, action entities.Action) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, int, error)
	ListRefunds(ctx context.Context, limit, offset uint64) ([]entities.Payment, int, error)
}

type HTTPHandler struct {
	logger      *slog.Logger
	validate    *validator.Validate
	svc         OrderService
	pageSize    int
	maxPageSize int
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, cfg config.Orders) *HTTPHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(utils.JSONTagName)

	return &HTTPHandler{
		logger:      logger.With(slog.String("handler", "http")),
		validate:    validate,
		svc:         svc,
		pageSize:    cfg.PageSize,
		maxPageSize: cfg.MaxPageSize,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/health/", h.Health)

	r.Route("/customers/{customer_id}/orders", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Patch("/{order_id}", h.AddItems)
		r.Put("/{order_id}", utils.HandlerFunc(utils.WriteMethodNotAllowed))
	})

	r.Route("/restaurant/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Patch("/{order_id}", h.ApplyAction)
		r.Put("/{order_id}", utils.HandlerFunc(utils.WriteMethodNotAllowed))
	})

	r.Get("/internal/refunds", h.ListRefunds)
}

// Health godoc
// @Summary      Проверка живости
// @Tags         health
// @Success      204
// @Router       /health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// PlaceOrder создаёт заказ.
// @Summary      Оформить заказ
// @Description  Создаёт заказ покупателя вместе с позициями и платежом
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer_id  path      string        true  "Идентификатор покупателя"
// @Param        request      body      OrderRequest  true  "Позиции и платёж"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Дубликат платежа"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /customers/{customer_id}/orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := chi.URLParam(r, "customer_id")

	var req OrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.PlaceOrder(ctx, customerID, req.Items(), req.PaymentInfoID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// AddItems добавляет позиции в заказ.
// @Summary      Дозаказать
// @Description  Добавляет позиции и новый платёж в заказ, который ещё не принят и не отклонён
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer_id  path      string        true  "Идентификатор покупателя"
// @Param        order_id     path      string        true  "Идентификатор заказа"
// @Param        request      body      OrderRequest  true  "Позиции и платёж"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации; заказ другого покупателя даёт 400 invalid_customer_for_order, а не 404"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Дубликат платежа"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /customers/{customer_id}/orders/{order_id} [patch]
func (h *HTTPHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := chi.URLParam(r, "customer_id")
	orderUID := chi.URLParam(r, "order_id")

	var req OrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.svc.AddItems(ctx, customerID, orderUID, req.Items(), req.PaymentInfoID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает заказы.
// @Summary      Список заказов
// @Description  Заказы от новых к старым, с фильтром по статусу без учёта регистра
// @Tags         restaurant
// @Produce      json
// @Param        status  query     string  false  "Статус заказа"  Enums(placed, accepted, rejected)
// @Param        page    query     int     false  "Номер страницы"
// @Param        size    query     int     false  "Размер страницы"
// @Success      200  {object}  OrderPage
// @Failure      404  {object}  utils.ErrorResponse "Нет такой страницы"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /restaurant/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	f := entities.OrderFilter{}.Page(p.limit(), p.offset())
	if status := r.URL.Query().Get("status"); status != "" {
		f = f.WithStatus(status)
	}

	orders, count, err := h.svc.ListOrders(ctx, f)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if !p.inRange(count) {
		utils.WriteError(w, utils.CodeNotFound, "Invalid page.", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, newPage(r, p, count, mapSlice(orders, OrderEntityToJSON)), http.StatusOK)
}

// ApplyAction принимает или отклоняет заказ.
// @Summary      Принять или отклонить заказ
// @Tags         restaurant
// @Accept       json
// @Produce      json
// @Param        order_id  path      string         true  "Идентификатор заказа"
// @Param        request   body      ActionRequest  true  "Действие"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации или заказ уже обработан"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /restaurant/orders/{order_id} [patch]
func (h *HTTPHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_id")

	var req ActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	action := entities.Action(req.Action)
	order, err := h.svc.ApplyAction(ctx, orderUID, action)
	if err != nil {
		orderActions.WithLabelValues(req.Action, "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	orderActions.WithLabelValues(req.Action, "ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListRefunds возвращает платежи отклонённых заказов.
// @Summary      Возвраты
// @Description  Платежи заказов, которые были отклонены
// @Tags         internal
// @Produce      json
// @Param        page  query     int  false  "Номер страницы"
// @Param        size  query     int  false  "Размер страницы"
// @Success      200  {object}  RefundPage
// @Failure      404  {object}  utils.ErrorResponse "Нет такой страницы"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /internal/refunds [get]
func (h *HTTPHandler) ListRefunds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	payments, count, err := h.svc.ListRefunds(ctx, p.limit(), p.offset())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if !p.inRange(count) {
		utils.WriteError(w, utils.CodeNotFound, "Invalid page.", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, newPage(r, p, count, mapSlice(payments, RefundEntityToJSON)), http.StatusOK)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteParseError(w, err)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteFieldError(w, ve.Code, ve.Detail, ve.Attr)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteNotFound(w)
	case errors.Is(err, entities.ErrDuplicate):
		utils.WriteError(w, utils.CodeDuplicate, "Object is a duplicate of existing data.", http.StatusConflict)
	default:
		middleware.LoggerFrom(r.Context(), h.logger).ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		utils.WriteInternalError(w)
	}
}

type page struct {
	number int
	size   int
}

func (p page) limit() uint64  { return uint64(p.size) }
func (p page) offset() uint64 { return uint64((p.number - 1) * p.size) }

// The first page always exists, even for an empty list.
func (p page) inRange(count int) bool {
	return p.number == 1 || (p.number-1)*p.size < count
}

func (h *HTTPHandler) parsePage(w http.ResponseWriter, r *http.Request) (page, bool) {
	q := r.URL.Query()
	p := page{number: 1, size: h.pageSize}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.WriteError(w, utils.CodeNotFound, "Invalid page.", http.StatusNotFound)
			return page{}, false
		}
		p.number = n
	}

	// Некорректный size молча заменяется значением по умолчанию
	if raw := q.Get("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.size = min(n, h.maxPageSize)
		}
	}
	return p, true
}

func newPage[T any](r *http.Request, p page, count int, results []T) Page[T] {
	res := Page[T]{Count: count, Results: results}
	if p.number*p.size < count {
		res.Next = pageURL(r, p.number+1)
	}
	if p.number > 1 {
		res.Previous = pageURL(r, p.number-1)
	}
	return res
}

func pageURL(r *http.Request, number int) *string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	q := r.URL.Query()
	if number == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(number))
	}

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	s := u.String()
	return &s
}
