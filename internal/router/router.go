package router

import (
	"time"

	"ticketera/internal/config"
	"ticketera/internal/handler"
	"ticketera/internal/middleware"
	"ticketera/internal/repository"
	"ticketera/internal/service"
	"ticketera/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	pagoRepo := repository.NewPagoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(productoRepo, rdb)
	ticketSvc := service.NewTicketService(ticketRepo, productoRepo)
	pagoSvc := service.NewPagoService(pagoRepo, ticketRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	ticketsH := handler.NewTicketsHandler(ticketSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		productos := api.Group("/productos")
		{
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.ObtenerPorID)
			productos.POST("", productosH.Crear)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		tickets := api.Group("/tickets")
		{
			tickets.GET("", ticketsH.Listar)
			tickets.GET("/:id", ticketsH.ObtenerPorID)
			tickets.POST("", ticketsH.Crear)
			tickets.PUT("/:id", ticketsH.Actualizar)
			tickets.DELETE("/:id", ticketsH.Eliminar)
		}

		pagos := api.Group("/pagos")
		{
			pagos.GET("/ticket/:ticketId", pagosH.ListarPorTicket)
			pagos.POST("", pagosH.Registrar)
			pagos.DELETE("/:id", pagosH.Eliminar)
		}

		// Price-check display — read-only, cached
		api.GET("/precios/:id", consultaH.GetPrecio)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
