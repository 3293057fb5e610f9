package controllers

import (
	"log/slog"
	"strconv"

	"github.com/mayaya-dev/3awan-caferesto-api/pkg/resp"
	"github.com/mayaya-dev/3awan-caferesto-api/serializers"
	"github.com/mayaya-dev/3awan-caferesto-api/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
	Log     *slog.Logger
}

func NewMenuController(s *services.MenuService, log *slog.Logger) *MenuController {
	return &MenuController{Service: s, Log: log}
}

// GET /api/menus?category_id=
func (ctl *MenuController) List(c *gin.Context) {
	var categoryID *uint
	if raw, ok := c.GetQuery("category_id"); ok {
		n, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			resp.BadRequest(c, "category_id must be a valid ID")
			return
		}
		id := uint(n)
		categoryID = &id
	}

	menus, err := ctl.Service.List(categoryID)
	if err != nil {
		respondError(c, ctl.Log, "fetch menus", err)
		return
	}
	resp.OK(c, serializers.Menus(menus, utcFormat))
}

// GET /api/menus/all
func (ctl *MenuController) ListAll(c *gin.Context) {
	menus, err := ctl.Service.ListAll()
	if err != nil {
		respondError(c, ctl.Log, "fetch menus", err)
		return
	}
	resp.OK(c, serializers.Menus(menus, utcFormat))
}

// GET /api/menus/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := paramID(c, "Menu")
	if !ok {
		return
	}
	m, err := ctl.Service.Get(id)
	if err != nil {
		respondError(c, ctl.Log, "fetch menu", err)
		return
	}
	resp.OK(c, serializers.Menu(m, utcFormat))
}

// POST /api/menus
func (ctl *MenuController) Create(c *gin.Context) {
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	m, err := ctl.Service.Create(data)
	if err != nil {
		respondError(c, ctl.Log, "create menu", err)
		return
	}
	resp.Created(c, serializers.Menu(m, utcFormat))
}

// PUT /api/menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c, "Menu")
	if !ok {
		return
	}
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	m, err := ctl.Service.Update(id, data)
	if err != nil {
		respondError(c, ctl.Log, "update menu", err)
		return
	}
	resp.OK(c, serializers.Menu(m, utcFormat))
}

// DELETE /api/menus/:id/:mode
func (ctl *MenuController) Delete(c *gin.Context) {
	mode, ok := deleteMode(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "Menu")
	if !ok {
		return
	}
	detail, err := ctl.Service.Delete(id, mode)
	if err != nil {
		respondError(c, ctl.Log, "delete menu", err)
		return
	}
	resp.Detail(c, detail)
}
