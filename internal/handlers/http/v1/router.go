package v1

import (
	"net/http"
	"time"

	"github.com/gfdmit/blogdesk/config"
	"github.com/gfdmit/blogdesk/internal/auth"
	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	svc    *service.Service
	tokens *auth.TokenManager
}

func New(svc *service.Service, tokens *auth.TokenManager, corsConf config.CORS) *gin.Engine {
	var (
		router = gin.New()
		h      = &handlers{svc: svc, tokens: tokens}
	)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsConf.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300 * time.Second,
	}))
	router.Use(requestID(), recovery())

	router.GET("/", func(c *gin.Context) {
		respond(c, http.StatusOK, gin.H{"message": "Welcome to Blogdesk API"}, "success")
	})

	api := router.Group("/api")
	{
		api.Use(gin.Logger())

		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.POST("/logout", h.logout)
		api.GET("/me", h.requireAuth(), h.me)

		api.GET("/posts", h.listPosts)
		api.GET("/posts/:id", h.getPost)
		api.POST("/posts", h.requireAuth(), h.createPost)
		api.PUT("/posts/:id", h.requireAuth(), h.updatePost)
		api.DELETE("/posts/:id", h.requireAuth(), h.deletePost)
		api.POST("/posts/:id/view", h.addView)
		api.POST("/posts/:id/like", h.addLike)
		api.GET("/posts/:id/comments", h.listComments)
		api.GET("/archive", h.archive)

		api.GET("/categories", h.listCategories)
		api.POST("/categories", h.requireAuth(), h.createCategory)
		api.PUT("/categories/:id", h.requireAuth(), h.updateCategory)
		api.DELETE("/categories/:id", h.requireAuth(), h.deleteCategory)

		api.GET("/tags", h.listTags)
		api.POST("/tags", h.requireAuth(), h.createTag)
		api.PUT("/tags/:id", h.requireAuth(), h.updateTag)
		api.DELETE("/tags/:id", h.requireAuth(), h.deleteTag)

		api.POST("/comments", h.optionalAuth(), h.createComment)
		api.DELETE("/comments/:id", h.requireAuth(), h.deleteComment)

		api.GET("/siteinfo", h.siteInfo)
		api.GET("/menus", h.menus)

		api.GET("/tickets", h.listTickets)
		api.GET("/tickets/:id", h.getTicket)
		api.POST("/tickets", h.requireAuth(), h.createTicket)
		api.PUT("/tickets/:id", h.requireAuth(), h.updateTicket)
		api.DELETE("/tickets/:id", h.requireAuth(), h.deleteTicket)

		api.GET("/ticket-categories", h.listTicketCategories)
		api.POST("/ticket-categories", h.requireAuth(), h.createTicketCategory)
		api.PUT("/ticket-categories/:id", h.requireAuth(), h.updateTicketCategory)
		api.DELETE("/ticket-categories/:id", h.requireAuth(), h.deleteTicketCategory)

		api.GET("/quick-replies", h.listQuickReplies)
		api.GET("/quick-replies/:id", h.getQuickReply)
		api.POST("/quick-replies", h.requireAuth(), h.createQuickReply)
		api.PUT("/quick-replies/:id", h.requireAuth(), h.updateQuickReply)
		api.DELETE("/quick-replies/:id", h.requireAuth(), h.deleteQuickReply)
		api.POST("/quick-replies/:id/use", h.requireAuth(), h.useQuickReply)

		api.GET("/overview/tickets", h.ticketOverview)
		api.GET("/overview/ticket-trend", h.ticketTrend)
		api.GET("/overview/category-distribution", h.categoryDistribution)
		api.GET("/overview/status-distribution", h.statusDistribution)
		api.GET("/overview/priority-distribution", h.priorityDistribution)
	}

	return router
}
