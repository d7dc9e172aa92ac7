package router

import (
	"github.com/gin-gonic/gin"

	authhandler "medtrack_backend/internal/feature/auth/transport/handler"
	"medtrack_backend/internal/feature/auth/transport/middleware"
	donationhandler "medtrack_backend/internal/feature/donations/transport/handler"
	medicinehandler "medtrack_backend/internal/feature/medicines/transport/handler"
	ngohandler "medtrack_backend/internal/feature/ngos/transport/handler"
	statisticshandler "medtrack_backend/internal/feature/statistics/transport/handler"
	"medtrack_backend/internal/platform/http/handler"
)

// Handlers bundles the feature handlers wired by main.
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Medicines  *medicinehandler.MedicineHandler
	Donations  *donationhandler.DonationHandler
	NGOs       *ngohandler.NGOHandler
	Statistics *statisticshandler.StatisticsHandler
}

// NewRouter assembles the route table. Everything except health and the
// register/login endpoints sits behind the session cookie; donation status
// changes and NGO creation additionally require the admin role.
func NewRouter(h Handlers, resolver middleware.UserResolver) *gin.Engine {
	r := gin.Default()

	// liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	r.POST("/api/auth/register", h.Auth.Register)
	r.POST("/api/auth/login", h.Auth.Login)

	authd := r.Group("/api")
	authd.Use(middleware.SessionRequired(resolver))
	{
		authd.GET("/auth/user", h.Auth.CurrentUser)
		authd.POST("/auth/logout", h.Auth.Logout)

		authd.GET("/medicines", h.Medicines.List)
		authd.GET("/medicines/:id", h.Medicines.Get)
		authd.POST("/medicines", h.Medicines.Create)
		authd.PUT("/medicines/:id", h.Medicines.Update)
		authd.DELETE("/medicines/:id", h.Medicines.Delete)

		authd.GET("/donations", h.Donations.List)
		authd.GET("/donations/:id", h.Donations.Get)
		authd.POST("/donations", h.Donations.Create)

		authd.GET("/ngos", h.NGOs.List)

		authd.GET("/statistics", h.Statistics.Summary)

		admin := authd.Group("/")
		admin.Use(middleware.AdminRequired())
		{
			admin.PUT("/donations/:id", h.Donations.Update)
			admin.POST("/ngos", h.NGOs.Create)
		}
	}

	return r
}
