package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/configs"
	"github.com/mwilkosz/Meta-Back-End-Developer/controllers"
	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/middlewares"
	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
	"github.com/mwilkosz/Meta-Back-End-Developer/services"
)

func Setup(cfg *configs.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, groupRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, groupRepo)
	groupSvc := services.NewGroupService(userRepo, groupRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categoryRepo)
	menuCtrl := controllers.NewMenuItemController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerCtrl := controllers.NewManagerGroupController(groupSvc)
	crewCtrl := controllers.NewDeliveryCrewGroupController(groupSvc)
	bookingCtrl := controllers.NewBookingController(bookingRepo)

	// Middleware stacks
	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	throttle := middlewares.ThrottleMiddleware(cfg.ThrottleRPS, cfg.ThrottleBurst)
	manager := middlewares.RequireGroups(db, entity.GroupManager)
	customer := middlewares.RequireGroups(db, entity.GroupCustomer)
	anyRole := middlewares.RequireGroups(db, entity.GroupCustomer, entity.GroupManager, entity.GroupDeliveryCrew)
	managerOrCrew := middlewares.RequireGroups(db, entity.GroupManager, entity.GroupDeliveryCrew)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Everything below is authenticated and throttled per user
	api := r.Group("/", auth, throttle)

	api.GET("/category", categoryCtrl.List)
	api.POST("/category", manager, categoryCtrl.Create)

	api.GET("/menu-items", menuCtrl.List)
	api.POST("/menu-items", manager, menuCtrl.Create)
	api.GET("/menu-items/:id", menuCtrl.Retrieve)
	api.PUT("/menu-items/:id", manager, menuCtrl.Update)
	api.PATCH("/menu-items/:id", manager, menuCtrl.PartialUpdate)
	api.DELETE("/menu-items/:id", manager, menuCtrl.Delete)

	cart := api.Group("/cart", customer)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	api.GET("/orders", orderCtrl.List)
	api.POST("/orders", customer, orderCtrl.Create)
	api.GET("/orders/:id", anyRole, orderCtrl.Detail)
	api.PATCH("/orders/:id", managerOrCrew, orderCtrl.Update)
	api.DELETE("/orders/:id", manager, orderCtrl.Delete)

	groups := api.Group("/groups", manager)
	{
		groups.GET("/manager/users", managerCtrl.List)
		groups.GET("/manager/users/:id", managerCtrl.List)
		groups.POST("/manager/users", managerCtrl.Add)
		groups.DELETE("/manager/users/:id", managerCtrl.Remove)

		groups.GET("/delivery-crew/users", crewCtrl.List)
		groups.GET("/delivery-crew/users/:id", crewCtrl.List)
		groups.POST("/delivery-crew/users", crewCtrl.Add)
		groups.DELETE("/delivery-crew/users/:id", crewCtrl.Remove)
	}

	api.GET("/bookings", bookingCtrl.List)
	api.POST("/bookings", bookingCtrl.Create)
	api.GET("/bookings/:id", bookingCtrl.Detail)
	api.DELETE("/bookings/:id", bookingCtrl.Delete)

	// Web app, only when templates ship with the binary's working dir
	if pages, _ := filepath.Glob("web/templates/*.html"); len(pages) > 0 {
		r.LoadHTMLGlob("web/templates/*.html")
		pageCtrl := controllers.NewPageController(menuRepo)
		r.GET("/", pageCtrl.Index)
		r.GET("/book", pageCtrl.Book)
	}

	return r
}
