// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	apiController "monevpdb_backend/internals/features/monev/appdata/controller"
	draftController "monevpdb_backend/internals/features/monev/drafts/controller"
	lecturerController "monevpdb_backend/internals/features/monev/lecturers/controller"
	"monevpdb_backend/internals/features/monev/realtime"
	realtimeController "monevpdb_backend/internals/features/monev/realtime/controller"
	submissionController "monevpdb_backend/internals/features/monev/submissions/controller"
	authController "monevpdb_backend/internals/features/users/auth/controller"
	authMiddleware "monevpdb_backend/internals/middlewares/auth"
	middlewares "monevpdb_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	// ===================== API LEGACY (?action=) =====================
	log.Println("[INFO] Setting up action API...")
	api := apiController.NewApiController(db, hub)
	app.Get("/api", api.HandleGet)
	app.Post("/api", api.HandlePost)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	auth := authController.NewAuthController()
	app.Post("/api/auth/admin-login", middlewares.AdminLoginRateLimiter(), auth.AdminLogin)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Setting up ADMIN group (token admin)...")
	stats := submissionController.NewStatsController(db)
	lecturers := lecturerController.NewLecturerController(db, hub)

	admin := app.Group("/api/a", authMiddleware.AdminOnly())
	admin.Get("/questions/:id/stats", stats.GetQuestionStats) // 📊 per pertanyaan
	admin.Get("/stats/overview", stats.GetOverview)           // 📈 kartu ringkas
	admin.Get("/export/results", stats.ExportResultsCSV)      // 📥 hasil lengkap
	admin.Get("/export/lecturers", lecturers.ExportCSV)       // 📥 roster
	admin.Post("/import/lecturers", lecturers.ImportCSV)      // 📤 merge by NIP

	// ===================== USER (/api/u) =====================
	log.Println("[INFO] Setting up USER group (draft form)...")
	drafts := draftController.NewDraftController(db)

	user := app.Group("/api/u")
	user.Get("/drafts/:nip", drafts.GetDraft)
	user.Put("/drafts/:nip", drafts.UpsertDraft)
	user.Delete("/drafts/:nip", drafts.DeleteDraft)

	// ===================== REALTIME =====================
	log.Println("[INFO] Setting up websocket /ws...")
	app.Use("/ws", realtimeController.UpgradeGuard())
	app.Get("/ws", realtimeController.Handler(hub))
}
