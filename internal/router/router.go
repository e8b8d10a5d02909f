package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListDays(c *ginext.Context)
	ListTimes(c *ginext.Context)
	ConfirmReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	CancelByClient(c *ginext.Context)
	CancelByAdmin(c *ginext.Context)
	GetActiveReservation(c *ginext.Context)
	CheckSubscription(c *ginext.Context)
	SetMenuMessage(c *ginext.Context)
	GetMenuMessage(c *ginext.Context)
	AddDay(c *ginext.Context)
	CloseDay(c *ginext.Context)
	ListDayReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Календарь записи
		api.GET("/days", h.ListDays)
		api.GET("/days/:date/times", h.ListTimes)

		// Записи
		api.POST("/reservations", h.ConfirmReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.DELETE("/reservations/:id", h.CancelByClient)

		// Клиенты
		api.GET("/clients/:external_id/reservation", h.GetActiveReservation)
		api.GET("/clients/:external_id/subscription", h.CheckSubscription)
		api.POST("/clients/:external_id/menu", h.SetMenuMessage)
		api.GET("/clients/:external_id/menu", h.GetMenuMessage)

		// Админ
		admin := api.Group("/admin")
		{
			admin.POST("/days", h.AddDay)
			admin.POST("/days/:date/close", h.CloseDay)
			admin.GET("/days/:date/reservations", h.ListDayReservations)
			admin.POST("/reservations/:id/cancel", h.CancelByAdmin)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
