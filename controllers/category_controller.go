package controllers

import (
	"log/slog"

	"github.com/mayaya-dev/3awan-caferesto-api/pkg/resp"
	"github.com/mayaya-dev/3awan-caferesto-api/serializers"
	"github.com/mayaya-dev/3awan-caferesto-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *services.CategoryService
	Log     *slog.Logger
}

func NewCategoryController(s *services.CategoryService, log *slog.Logger) *CategoryController {
	return &CategoryController{Service: s, Log: log}
}

// GET /api/categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Service.List()
	if err != nil {
		respondError(c, ctl.Log, "fetch categories", err)
		return
	}
	resp.OK(c, serializers.Categories(cats, utcFormat))
}

// GET /api/categories/all
func (ctl *CategoryController) ListAll(c *gin.Context) {
	cats, err := ctl.Service.ListAll()
	if err != nil {
		respondError(c, ctl.Log, "fetch categories", err)
		return
	}
	resp.OK(c, serializers.Categories(cats, utcFormat))
}

// GET /api/categories/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, ok := paramID(c, "Category")
	if !ok {
		return
	}
	cat, err := ctl.Service.Get(id)
	if err != nil {
		respondError(c, ctl.Log, "fetch category", err)
		return
	}
	resp.OK(c, serializers.Category(cat, utcFormat))
}

// POST /api/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	cat, err := ctl.Service.Create(data)
	if err != nil {
		respondError(c, ctl.Log, "create category", err)
		return
	}
	resp.Created(c, serializers.Category(cat, utcFormat))
}

// PUT /api/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := paramID(c, "Category")
	if !ok {
		return
	}
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	cat, err := ctl.Service.Update(id, data)
	if err != nil {
		respondError(c, ctl.Log, "update category", err)
		return
	}
	resp.OK(c, serializers.Category(cat, utcFormat))
}

// DELETE /api/categories/:id/:mode
func (ctl *CategoryController) Delete(c *gin.Context) {
	mode, ok := deleteMode(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "Category")
	if !ok {
		return
	}
	detail, err := ctl.Service.Delete(id, mode)
	if err != nil {
		respondError(c, ctl.Log, "delete category", err)
		return
	}
	resp.Detail(c, detail)
}
