package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterOptions struct {
	AllowOrigins []string
}

// NewRouter wires the handler routes behind CORS, request ids and access
// logging.
func NewRouter(h *Handler, log *zap.Logger, opts RouterOptions) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	origins := opts.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", h.Health)

	menu := r.Group("/menu")
	{
		menu.GET("", h.ListMenu)
		menu.GET("/:id", h.GetMenuItem)
		menu.POST("/:id/quote", h.Quote)
	}

	cart := r.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:id", h.UpdateItem)
		cart.DELETE("/items/:id", h.RemoveItem)
	}

	return r
}
