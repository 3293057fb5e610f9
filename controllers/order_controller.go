package controllers

import (
	"log/slog"

	"github.com/mayaya-dev/3awan-caferesto-api/pkg/resp"
	"github.com/mayaya-dev/3awan-caferesto-api/serializers"
	"github.com/mayaya-dev/3awan-caferesto-api/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
	Log     *slog.Logger
}

func NewOrderController(s *services.OrderService, log *slog.Logger) *OrderController {
	return &OrderController{Service: s, Log: log}
}

// GET /api/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Service.List()
	if err != nil {
		respondError(c, ctl.Log, "fetch orders", err)
		return
	}
	resp.OK(c, serializers.Orders(orders, utcFormat))
}

// GET /api/orders/all
func (ctl *OrderController) ListAll(c *gin.Context) {
	orders, err := ctl.Service.ListAll()
	if err != nil {
		respondError(c, ctl.Log, "fetch orders", err)
		return
	}
	resp.OK(c, serializers.Orders(orders, utcFormat))
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, ok := paramID(c, "Order")
	if !ok {
		return
	}
	o, err := ctl.Service.Get(id)
	if err != nil {
		respondError(c, ctl.Log, "fetch order", err)
		return
	}
	resp.OK(c, serializers.Order(o, utcFormat))
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	o, err := ctl.Service.Create(data)
	if err != nil {
		respondError(c, ctl.Log, "create order", err)
		return
	}
	resp.Created(c, serializers.Order(o, utcFormat))
}

// PUT /api/orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	id, ok := paramID(c, "Order")
	if !ok {
		return
	}
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	o, err := ctl.Service.Update(id, data)
	if err != nil {
		respondError(c, ctl.Log, "update order", err)
		return
	}
	resp.OK(c, serializers.Order(o, utcFormat))
}

// DELETE /api/orders/:id/:mode
func (ctl *OrderController) Delete(c *gin.Context) {
	mode, ok := deleteMode(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "Order")
	if !ok {
		return
	}
	detail, err := ctl.Service.Delete(id, mode)
	if err != nil {
		respondError(c, ctl.Log, "delete order", err)
		return
	}
	resp.Detail(c, detail)
}
