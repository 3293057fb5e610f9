package controllers

import (
	"log/slog"

	"github.com/mayaya-dev/3awan-caferesto-api/pkg/resp"
	"github.com/mayaya-dev/3awan-caferesto-api/serializers"
	"github.com/mayaya-dev/3awan-caferesto-api/services"

	"github.com/gin-gonic/gin"
)

// OrderItemController renders timestamps in the zone given by ?tz= and
// ?tz_style=.
type OrderItemController struct {
	Service *services.OrderItemService
	Log     *slog.Logger
}

func NewOrderItemController(s *services.OrderItemService, log *slog.Logger) *OrderItemController {
	return &OrderItemController{Service: s, Log: log}
}

// GET /api/order_items
func (ctl *OrderItemController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		respondError(c, ctl.Log, "fetch order items", err)
		return
	}
	resp.OK(c, serializers.OrderItems(items, requestTimeFormat(c)))
}

// GET /api/order_items/all
func (ctl *OrderItemController) ListAll(c *gin.Context) {
	items, err := ctl.Service.ListAll()
	if err != nil {
		respondError(c, ctl.Log, "fetch order items", err)
		return
	}
	resp.OK(c, serializers.OrderItems(items, requestTimeFormat(c)))
}

// GET /api/order_items/:id
func (ctl *OrderItemController) Get(c *gin.Context) {
	id, ok := paramID(c, "OrderItem")
	if !ok {
		return
	}
	oi, err := ctl.Service.Get(id)
	if err != nil {
		respondError(c, ctl.Log, "fetch order item", err)
		return
	}
	resp.OK(c, serializers.OrderItem(oi, requestTimeFormat(c)))
}

// POST /api/order_items
func (ctl *OrderItemController) Create(c *gin.Context) {
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	oi, err := ctl.Service.Create(data)
	if err != nil {
		respondError(c, ctl.Log, "create order item", err)
		return
	}
	resp.Created(c, serializers.OrderItem(oi, requestTimeFormat(c)))
}

// PUT /api/order_items/:id
func (ctl *OrderItemController) Update(c *gin.Context) {
	id, ok := paramID(c, "OrderItem")
	if !ok {
		return
	}
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	oi, err := ctl.Service.Update(id, data)
	if err != nil {
		respondError(c, ctl.Log, "update order item", err)
		return
	}
	resp.OK(c, serializers.OrderItem(oi, requestTimeFormat(c)))
}

// DELETE /api/order_items/:id/:mode
func (ctl *OrderItemController) Delete(c *gin.Context) {
	mode, ok := deleteMode(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "OrderItem")
	if !ok {
		return
	}
	detail, err := ctl.Service.Delete(id, mode)
	if err != nil {
		respondError(c, ctl.Log, "delete order item", err)
		return
	}
	resp.Detail(c, detail)
}
