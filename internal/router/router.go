package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BookAppointment(c *ginext.Context)
	CancelAppointment(c *ginext.Context)
	GetUserAppointments(c *ginext.Context)
	GetProviderSchedule(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Appointments
		api.POST("/providers/:id/appointments", h.BookAppointment)
		api.GET("/providers/:id/schedule", h.GetProviderSchedule)
		api.POST("/appointments/:id/cancel", h.CancelAppointment)
		api.GET("/users/:id/appointments", h.GetUserAppointments)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	return router
}
