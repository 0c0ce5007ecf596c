package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/belezaclinic/clinic-manager/internal/audit"
	"github.com/belezaclinic/clinic-manager/internal/config"
	"github.com/belezaclinic/clinic-manager/internal/handlers"
	"github.com/belezaclinic/clinic-manager/internal/middleware"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/receipts"
	"github.com/belezaclinic/clinic-manager/internal/store"
	ucBackup "github.com/belezaclinic/clinic-manager/internal/usecase/backup"
	ucInventory "github.com/belezaclinic/clinic-manager/internal/usecase/inventory"
)

// RegisterRoutes monta toda a API sobre o engine. Devolve o dispatcher de
// auditoria para o chamador drenar no shutdown.
func RegisterRoutes(r *gin.Engine, s *store.Store, cfg *config.Config, log *zap.Logger) *audit.Dispatcher {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointments := store.NewCollection[models.Appointment](s, store.SlotAppointments)
	clients := store.NewCollection[models.Client](s, store.SlotClients)
	products := store.NewCollection[models.Product](s, store.SlotProducts)
	transactions := store.NewCollection[models.Transaction](s, store.SlotTransactions)
	campaigns := store.NewCollection[models.Campaign](s, store.SlotCampaigns)

	receiptRegistry := receipts.NewRegistry()

	auditLogger := audit.New(s)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	moveStockUC := ucInventory.NewMoveStock(products, auditDispatcher)
	backupUC := ucBackup.New(s)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(s, cfg)
	meHandler := handlers.NewMeHandler(s)

	appointmentHandler := handlers.NewAppointmentHandler(appointments, auditDispatcher)
	clientHandler := handlers.NewClientHandler(clients, auditDispatcher)
	productHandler := handlers.NewProductHandler(products, moveStockUC, auditDispatcher)
	transactionHandler := handlers.NewTransactionHandler(transactions, receiptRegistry, auditDispatcher)
	campaignHandler := handlers.NewCampaignHandler(campaigns, auditDispatcher)

	dashboardHandler := handlers.NewDashboardHandler(appointments, clients, products, transactions)
	reportHandler := handlers.NewReportHandler(appointments, clients, products, transactions)
	settingsHandler := handlers.NewSettingsHandler(s, backupUC, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)
	receiptHandler := handlers.NewReceiptHandler(receiptRegistry)

	// Papéis por módulo: equipe completa nos módulos operacionais,
	// financeiro restrito à administração e recepção, o resto só admin.
	staff := []string{models.RoleAdmin, models.RoleReception, models.RoleProfessional}
	finance := []string{models.RoleAdmin, models.RoleReception}
	adminOnly := []string{models.RoleAdmin}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================

	// URLs transitórias de comprovante, fora do grupo autenticado.
	r.GET("/files/receipts/:id", receiptHandler.Serve)

	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/dashboard", middleware.RequireRoles(staff...), dashboardHandler.Summary)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			appointmentsAPI := secured.Group("/appointments", middleware.RequireRoles(staff...))
			{
				appointmentsAPI.GET("", appointmentHandler.List)
				appointmentsAPI.POST("", appointmentHandler.Create)
				appointmentsAPI.PATCH("/:id", appointmentHandler.Update)
				appointmentsAPI.PATCH("/:id/confirm", appointmentHandler.Confirm)
				appointmentsAPI.PATCH("/:id/cancel", appointmentHandler.Cancel)
				appointmentsAPI.DELETE("/:id", appointmentHandler.Delete)
			}

			// ------------------------------
			// CLIENTS
			// ------------------------------
			clientsAPI := secured.Group("/clients", middleware.RequireRoles(staff...))
			{
				clientsAPI.GET("", clientHandler.List)
				clientsAPI.POST("", clientHandler.Create)
				clientsAPI.PATCH("/:id", clientHandler.Update)
				clientsAPI.DELETE("/:id", clientHandler.Delete)
			}

			// ------------------------------
			// INVENTORY
			// ------------------------------
			productsAPI := secured.Group("/products", middleware.RequireRoles(finance...))
			{
				productsAPI.GET("", productHandler.List)
				productsAPI.POST("", productHandler.Create)
				productsAPI.PATCH("/:id", productHandler.Update)
				productsAPI.POST("/:id/movements", productHandler.Move)
				productsAPI.DELETE("/:id", productHandler.Delete)
			}

			// ------------------------------
			// FINANCE
			// ------------------------------
			transactionsAPI := secured.Group("/transactions", middleware.RequireRoles(finance...))
			{
				transactionsAPI.GET("", transactionHandler.List)
				transactionsAPI.POST("", transactionHandler.Create)
				transactionsAPI.PATCH("/:id", transactionHandler.Update)
				transactionsAPI.POST("/:id/receipt", transactionHandler.AttachReceipt)
				transactionsAPI.DELETE("/:id", transactionHandler.Delete)
			}

			// ------------------------------
			// MARKETING
			// ------------------------------
			campaignsAPI := secured.Group("/campaigns", middleware.RequireRoles(adminOnly...))
			{
				campaignsAPI.GET("", campaignHandler.List)
				campaignsAPI.POST("", campaignHandler.Create)
				campaignsAPI.PATCH("/:id/pause", campaignHandler.Pause)
				campaignsAPI.PATCH("/:id/resume", campaignHandler.Resume)
				campaignsAPI.PATCH("/:id/finish", campaignHandler.Finish)
				campaignsAPI.DELETE("/:id", campaignHandler.Delete)
			}

			// ------------------------------
			// REPORTS / SETTINGS / AUDIT
			// ------------------------------
			secured.GET("/reports/:type", middleware.RequireRoles(adminOnly...), reportHandler.Generate)

			settingsAPI := secured.Group("/settings", middleware.RequireRoles(adminOnly...))
			{
				settingsAPI.GET("", settingsHandler.Get)
				settingsAPI.PUT("", settingsHandler.Update)
				settingsAPI.GET("/backup", settingsHandler.ExportData)
				settingsAPI.POST("/restore", settingsHandler.ImportData)
				settingsAPI.POST("/reset", settingsHandler.ResetData)
			}

			secured.GET("/audit-logs", middleware.RequireRoles(adminOnly...), auditLogsHandler.List)
		}
	}

	return auditDispatcher
}
