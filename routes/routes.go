package routes

import (
	"log/slog"
	"net/http"

	"github.com/mayaya-dev/3awan-caferesto-api/configs"
	"github.com/mayaya-dev/3awan-caferesto-api/controllers"
	"github.com/mayaya-dev/3awan-caferesto-api/middlewares"
	"github.com/mayaya-dev/3awan-caferesto-api/pkg/resp"
	"github.com/mayaya-dev/3awan-caferesto-api/repository"
	"github.com/mayaya-dev/3awan-caferesto-api/services"
	"github.com/mayaya-dev/3awan-caferesto-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

const banner = "3awan CafeResto API"

// SetupRouter builds the engine with middlewares and every route.
func SetupRouter(db *gorm.DB, cfg *configs.Config, log *slog.Logger) *gin.Engine {
	// prices and ids keep their exact text until validation
	binding.EnableDecoderUseNumber = true

	r := gin.New()
	r.Use(middlewares.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", slog.Any("panic", recovered), slog.String("path", c.Request.URL.Path))
		resp.ServerError(c, "Internal Server Error")
		c.Abort()
	}))
	r.Use(middlewares.CORSMiddleware(cfg))

	RegisterRoutes(r, db, log)
	return r
}

type crud interface {
	List(*gin.Context)
	ListAll(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func resource(g *gin.RouterGroup, path string, ctl crud) {
	rg := g.Group(path)
	{
		rg.GET("", ctl.List)
		rg.GET("/all", ctl.ListAll)
		rg.GET("/:id", ctl.Get)
		rg.POST("", ctl.Create)
		rg.PUT("/:id", ctl.Update)
		rg.DELETE("/:id/:mode", ctl.Delete)
	}
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *slog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	v := validation.New(db)

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewOrderItemRepository(db)

	// Controllers
	categoryCtrl := controllers.NewCategoryController(services.NewCategoryService(db, categoryRepo, v), log)
	menuCtrl := controllers.NewMenuController(services.NewMenuService(db, menuRepo, v), log)
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db, orderRepo, itemRepo, menuRepo, v), log)
	itemCtrl := controllers.NewOrderItemController(services.NewOrderItemService(db, itemRepo, menuRepo, v), log)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) { c.String(http.StatusOK, banner) })

		resource(api, "/categories", categoryCtrl)
		resource(api, "/menus", menuCtrl)
		resource(api, "/orders", orderCtrl)
		resource(api, "/order_items", itemCtrl)
	}
}
