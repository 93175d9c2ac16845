package router

import (
	"net/http"

	"github.com/umyrahbh/healthassist/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	CreateCheckup(c *ginext.Context)
	GetCheckup(c *ginext.Context)
	ListCheckups(c *ginext.Context)
	UpdateCheckup(c *ginext.Context)
	DeleteCheckup(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	BookAppointment(c *ginext.Context)
	GetAppointment(c *ginext.Context)
	ListAppointments(c *ginext.Context)
	GetUserAppointments(c *ginext.Context)
	RescheduleAppointment(c *ginext.Context)
	DeleteAppointment(c *ginext.Context)
	CreateCheckoutSession(c *ginext.Context)
	PaymentSuccess(c *ginext.Context)
	CreateSpecialist(c *ginext.Context)
	GetSpecialist(c *ginext.Context)
	ListSpecialists(c *ginext.Context)
	UpdateSpecialist(c *ginext.Context)
	DeleteSpecialist(c *ginext.Context)
	CreateHealthFact(c *ginext.Context)
	GetHealthFact(c *ginext.Context)
	ListHealthFacts(c *ginext.Context)
	UpdateHealthFact(c *ginext.Context)
	DeleteHealthFact(c *ginext.Context)
}

func InitRouter(mode, jwtSecret string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	authn := middleware.Auth(jwtSecret)
	admin := middleware.RequireAdmin()

	api := router.Group("/api")
	{
		// Auth
		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)

		// Public catalog
		api.GET("/checkups", h.ListCheckups)
		api.GET("/checkups/:id", h.GetCheckup)
		api.GET("/specialists", h.ListSpecialists)
		api.GET("/specialists/:id", h.GetSpecialist)
		api.GET("/health-facts", h.ListHealthFacts)
		api.GET("/health-facts/:id", h.GetHealthFact)
		api.GET("/availability", h.CheckAvailability)

		// Users
		api.POST("/users", authn, admin, h.CreateUser)
		api.GET("/users", authn, admin, h.ListUsers)
		api.GET("/users/:id", authn, h.GetUser)
		api.PUT("/users/:id", authn, h.UpdateUser)
		api.DELETE("/users/:id", authn, admin, h.DeleteUser)
		api.GET("/users/:id/appointments", authn, h.GetUserAppointments)

		// Checkup types (admin)
		api.POST("/checkups", authn, admin, h.CreateCheckup)
		api.PUT("/checkups/:id", authn, admin, h.UpdateCheckup)
		api.DELETE("/checkups/:id", authn, admin, h.DeleteCheckup)

		// Appointments
		api.POST("/appointments", authn, h.BookAppointment)
		api.GET("/appointments", authn, admin, h.ListAppointments)
		api.GET("/appointments/:id", authn, h.GetAppointment)
		api.PUT("/appointments/:id", authn, h.RescheduleAppointment)
		api.DELETE("/appointments/:id", authn, h.DeleteAppointment)

		// Payments
		api.POST("/create-checkout-session", authn, h.CreateCheckoutSession)
		api.GET("/payment-success", authn, h.PaymentSuccess)

		// Catalog admin
		api.POST("/specialists", authn, admin, h.CreateSpecialist)
		api.PUT("/specialists/:id", authn, admin, h.UpdateSpecialist)
		api.DELETE("/specialists/:id", authn, admin, h.DeleteSpecialist)
		api.POST("/health-facts", authn, admin, h.CreateHealthFact)
		api.PUT("/health-facts/:id", authn, admin, h.UpdateHealthFact)
		api.DELETE("/health-facts/:id", authn, admin, h.DeleteHealthFact)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
