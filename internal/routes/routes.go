package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/stylehub/barber-api/internal/audit"
	"github.com/stylehub/barber-api/internal/clock"
	"github.com/stylehub/barber-api/internal/config"
	"github.com/stylehub/barber-api/internal/handlers"
	infraRepo "github.com/stylehub/barber-api/internal/infra/repository"
	"github.com/stylehub/barber-api/internal/middleware"
	"github.com/stylehub/barber-api/internal/models"
	"github.com/stylehub/barber-api/internal/storage"
	ucAppointment "github.com/stylehub/barber-api/internal/usecase/appointment"
	ucCash "github.com/stylehub/barber-api/internal/usecase/cash"
	ucCRM "github.com/stylehub/barber-api/internal/usecase/crm"
	ucPOS "github.com/stylehub/barber-api/internal/usecase/pos"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	saleRepo := infraRepo.NewSaleGormRepository(db)
	cashRepo := infraRepo.NewCashGormRepository(db)
	crmRepo := infraRepo.NewCRMGormRepository(db)
	cartStore := infraRepo.NewCartRedisStore(rdb)

	photoStore := storage.NewPhotoStore(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	clk := clock.NewSystem()

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		clk,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		clk,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		clk,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	linkClientUC := ucAppointment.NewLinkGuestToClient(
		appointmentRepo,
		auditDispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, clk)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)
	listMineUC := ucAppointment.NewListMyAppointments(appointmentRepo)

	// ======================================================
	// USE CASES: POS / CASH / CRM
	// ======================================================
	cartService := ucPOS.NewCartService(cartStore, catalogRepo, appointmentRepo)

	checkoutUC := ucPOS.NewCheckout(
		cartStore,
		saleRepo,
		completeAppointmentUC,
		auditDispatcher,
		clk,
	)

	cashRegister := ucCash.NewRegister(cashRepo, auditDispatcher, clk)

	crmService := ucCRM.NewService(crmRepo, appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		confirmAppointmentUC,
		linkClientUC,
		listByDateUC,
		listByMonthUC,
	)

	publicHandler := handlers.NewPublicHandler(db, cfg, availabilityUC, createAppointmentUC)

	clientHandler := handlers.NewClientHandler(
		cfg,
		createAppointmentUC,
		cancelAppointmentUC,
		listMineUC,
	)

	posHandler := handlers.NewPOSHandler(cartService, checkoutUC)
	cashHandler := handlers.NewCashHandler(cashRegister)

	barberHandler := handlers.NewBarberHandler(db, photoStore)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)
	crmHandler := handlers.NewCRMHandler(crmService)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServiceTypes)
			publicAPI.GET("/availability", publicHandler.GetAvailability)
			publicAPI.POST("/appointments", publicHandler.Book)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CLIENT SELF-SERVICE
		// ------------------------------
		client := api.Group("/client")
		client.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRoles(models.RoleClient),
		)
		{
			client.GET("/appointments", clientHandler.ListMine)
			client.POST("/appointments", clientHandler.Book)
			client.PATCH("/appointments/:id/cancel", clientHandler.Cancel)
		}

		// ------------------------------
		// STAFF
		// ------------------------------
		staff := api.Group("/")
		staff.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRoles(
				models.RoleAdmin,
				models.RoleBarber,
				models.RoleReception,
				models.RoleAdminBarber,
			),
		)
		{
			staff.GET("/me", authHandler.Me)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			staff.POST("/appointments", appointmentHandler.Create)
			staff.GET("/appointments", appointmentHandler.ListByDate)
			staff.GET("/appointments/month", appointmentHandler.ListByMonth)
			staff.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			staff.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			staff.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			staff.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			staff.PATCH("/appointments/:id/link-client", appointmentHandler.LinkClient)

			// ------------------------------
			// POS
			// ------------------------------
			staff.GET("/pos/cart", posHandler.GetCart)
			staff.POST("/pos/cart/items", posHandler.AddItem)
			staff.DELETE("/pos/cart/items/:itemId", posHandler.RemoveItem)
			staff.PATCH("/pos/cart/items/:itemId/barber", posHandler.SetItemBarber)
			staff.DELETE("/pos/cart", posHandler.ClearCart)
			staff.POST("/pos/checkout", posHandler.Checkout)

			// ------------------------------
			// CASH DRAWER
			// ------------------------------
			staff.GET("/cash/state", cashHandler.GetState)
			staff.POST("/cash/withdrawals", cashHandler.Withdraw)
			staff.POST("/cash/cuts", cashHandler.PerformCut)
			staff.GET("/cash/history", cashHandler.History)
			staff.GET("/cash/cuts", cashHandler.ListCuts)

			// ------------------------------
			// CRM
			// ------------------------------
			staff.GET("/crm/leads", crmHandler.ListLeads)
			staff.POST("/crm/leads", crmHandler.CreateLead)
			staff.PATCH("/crm/leads/:id/status", crmHandler.UpdateLeadStatus)
			staff.POST("/crm/leads/:id/opportunity", crmHandler.ConvertToOpportunity)
			staff.POST("/crm/leads/:id/convert", crmHandler.ConvertToClient)
			staff.GET("/crm/opportunities", crmHandler.ListOpportunities)
			staff.PATCH("/crm/opportunities/:id", crmHandler.UpdateOpportunity)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRoles(models.RoleAdmin, models.RoleAdminBarber),
		)
		{
			admin.GET("/barbers", barberHandler.List)
			admin.GET("/barbers/:id", barberHandler.Get)
			admin.POST("/barbers", barberHandler.Create)
			admin.PUT("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Deactivate)
			admin.POST("/barbers/:id/photo", barberHandler.UploadPhoto)
			admin.DELETE("/barbers/:id/photo", barberHandler.DeletePhoto)

			admin.GET("/barbers/:id/working-hours", workingHoursHandler.Get)
			admin.PUT("/barbers/:id/working-hours", workingHoursHandler.Update)

			admin.GET("/services", catalogHandler.ListServiceTypes)
			admin.POST("/services", catalogHandler.CreateServiceType)
			admin.PUT("/services/:id", catalogHandler.UpdateServiceType)
			admin.DELETE("/services/:id", catalogHandler.DeleteServiceType)

			admin.GET("/products", catalogHandler.ListProducts)
			admin.POST("/products", catalogHandler.CreateProduct)
			admin.PUT("/products/:id", catalogHandler.UpdateProduct)
			admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

			admin.GET("/promotions", catalogHandler.ListPromotions)
			admin.POST("/promotions", catalogHandler.CreatePromotion)
			admin.PUT("/promotions/:id", catalogHandler.UpdatePromotion)
			admin.DELETE("/promotions/:id", catalogHandler.DeletePromotion)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
