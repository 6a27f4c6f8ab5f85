package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jasakreatif/storefront-service/internal/errs"
	"github.com/jasakreatif/storefront-service/internal/format"
	"github.com/jasakreatif/storefront-service/internal/kafka"
	"github.com/jasakreatif/storefront-service/internal/model"
	"github.com/jasakreatif/storefront-service/internal/service"
	"github.com/jasakreatif/storefront-service/internal/telegram"
)

// User-facing strings, kept verbatim from the storefront frontend.
const (
	msgOrderCreated = "Pesanan berhasil dibuat! Tim kami akan menghubungi Anda segera."
	msgOrderFailed  = "Terjadi kesalahan. Silakan coba lagi."
)

const deadlineLayout = "2006-01-02"

type OrderHandler struct {
	orders   service.OrderServicer
	catalog  service.CatalogServicer
	producer kafka.OrderEventProducer
}

func NewOrderHandler(orders service.OrderServicer, catalog service.CatalogServicer, producer kafka.OrderEventProducer) *OrderHandler {
	return &OrderHandler{orders: orders, catalog: catalog, producer: producer}
}

type createOrderData struct {
	CustomerName string `json:"customer_name"`
	ContactInfo  string `json:"contact_info"`
	ServiceID    string `json:"service_id"`
	Deadline     string `json:"deadline,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type createOrderRequest struct {
	OrderData    createOrderData             `json:"orderData"`
	TelegramData *telegram.SubmissionContext `json:"telegramData"`
}

func (r *createOrderRequest) validate() string {
	switch {
	case r.OrderData.CustomerName == "":
		return "customer_name is required"
	case r.OrderData.ContactInfo == "":
		return "contact_info is required"
	case r.OrderData.ServiceID == "":
		return "service_id is required"
	}
	return ""
}

func failCreate(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   detail,
		"message": msgOrderFailed,
	})
}

// Create is the public submission boundary. Every request is independent: one
// insert, at most one service read, no retries. The referenced service is
// fetched best-effort; a missing one leaves "service" null in the response.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failCreate(c, http.StatusBadRequest, "invalid body")
		return
	}
	if detail := req.validate(); detail != "" {
		failCreate(c, http.StatusBadRequest, detail)
		return
	}

	var deadline *time.Time
	if req.OrderData.Deadline != "" {
		d, err := time.Parse(deadlineLayout, req.OrderData.Deadline)
		if err != nil {
			failCreate(c, http.StatusBadRequest, "deadline must be formatted as YYYY-MM-DD")
			return
		}
		deadline = &d
	}
	var notes *string
	if req.OrderData.Notes != "" {
		notes = &req.OrderData.Notes
	}

	order := &model.Order{
		TelegramUserID: req.TelegramData.UserID(),
		CustomerName:   req.OrderData.CustomerName,
		ContactInfo:    req.OrderData.ContactInfo,
		ServiceID:      req.OrderData.ServiceID,
		Deadline:       deadline,
		Notes:          notes,
		Status:         model.OrderStatusNew,
	}
	if err := h.orders.Create(c.Request.Context(), order); err != nil {
		log.Printf("order: create: %v", err)
		failCreate(c, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	svc, err := h.catalog.GetByID(c.Request.Context(), order.ServiceID)
	if err != nil {
		if !errors.Is(err, errs.ErrServiceNotFound) {
			log.Printf("order: fetch service %s: %v", order.ServiceID, err)
		}
		svc = nil
	}

	h.produceAsync("order.created", order, svc)

	var user *telegram.User
	if req.TelegramData != nil {
		user = req.TelegramData.User
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"order":   order,
			"service": svc,
			"telegramData": gin.H{
				"user":      user,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			},
		},
		"message": msgOrderCreated,
	})
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// List returns all orders newest first, each joined with its service.
func (h *OrderHandler) List(c *gin.Context) {
	filter := make(map[string]interface{})
	if v := c.Query("status"); v != "" {
		filter["status = ?"] = v
	}
	if v := c.Query("telegram_user_id"); v != "" {
		filter["telegram_user_id = ?"] = v
	}

	items, total, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": items,
		"total":  total,
	})
}

// Summary returns per-status order counts for the dashboard tabs.
func (h *OrderHandler) Summary(c *gin.Context) {
	items, total, err := h.orders.List(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"counts": service.CountOrdersByStatus(items),
		"total":  total,
	})
}

type updateOrderRequest struct {
	Status     *string `json:"status,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty"`
	ResultLink *string `json:"result_link,omitempty"`
}

// Update applies an operator transition. Only fields present in the body are
// written; sending an empty string clears a field, omitting it keeps the
// stored value. Any known status may follow any other.
func (h *OrderHandler) Update(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	changes := make(map[string]interface{})
	if req.Status != nil {
		if !model.OrderStatus(*req.Status).Known() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: must be 'new', 'in_progress', 'completed', or 'cancelled'"})
			return
		}
		changes["status"] = *req.Status
	}
	if req.AdminNotes != nil {
		changes["admin_notes"] = *req.AdminNotes
	}
	if req.ResultLink != nil {
		changes["result_link"] = *req.ResultLink
	}
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no changes"})
		return
	}

	o, err := h.orders.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		log.Printf("order: update %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		return
	}

	h.produceAsync("order.updated", o, o.Service)
	c.JSON(http.StatusOK, o)
}

func orderEventPayload(o *model.Order, svc *model.Service) map[string]interface{} {
	payload := map[string]interface{}{
		"order_id":         o.ID,
		"telegram_user_id": o.TelegramUserID,
		"customer_name":    o.CustomerName,
		"service_id":       o.ServiceID,
		"status":           string(o.Status),
		"status_label":     o.Status.DisplayName(),
	}
	if svc != nil {
		payload["service_name"] = svc.Name
		payload["price_label"] = format.PriceIDR(svc.StartingPrice)
	}
	if o.Deadline != nil {
		payload["deadline"] = format.Date(*o.Deadline)
	}
	return payload
}

// produceAsync fires the event without blocking the response; the event should
// go out even after the request context is done, so it gets its own timeout.
func (h *OrderHandler) produceAsync(event string, o *model.Order, svc *model.Service) {
	if h.producer == nil {
		return
	}
	payload := orderEventPayload(o, svc)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.producer.ProduceOrderEvent(ctx, event, payload)
	}()
}
