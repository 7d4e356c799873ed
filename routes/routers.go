package routes

import (
	"net/http"

	"kiosk/config"
	"kiosk/controllers"
	"kiosk/public"
	"kiosk/services"
	"kiosk/services/logger"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config, checkinService *services.CheckinService, log logger.Logger) {
	checkinController := controllers.NewCheckinController(checkinService, log)
	qrController := controllers.NewQRController(cfg.PublicURL, log)

	router.GET("/", controllers.Index)
	router.StaticFS("/static", http.FS(public.FS))

	router.GET("/qr", qrController.Page)
	router.GET("/qr.png", qrController.PNG)

	router.POST("/submit", checkinController.Submit)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/healthz", controllers.Health(checkinService.StorageDriver()))
}
