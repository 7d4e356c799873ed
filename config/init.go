package config

import (
	"fmt"
	"html/template"

	"kiosk/middleware"
	"kiosk/public"
	"kiosk/services"
	"kiosk/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

func InitApp(cfg *Config, log logger.Logger) (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.BodyLimitMiddleware(cfg.MaxBodyBytes))

	configCors := cors.DefaultConfig()
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	if len(cfg.CORSAllowOrigins) > 0 {
		configCors.AllowOrigins = cfg.CORSAllowOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to set trusted proxies: %v", err)
	}

	tmpl, err := template.ParseFS(public.FS, "templates/*.html")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse templates: %v", err)
	}
	router.SetHTMLTemplate(tmpl)

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func InitWebSocket(router *gin.Engine, m *melody.Melody, log logger.Logger) {
	router.GET("/ws", func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			log.Error("WebSocket upgrade failed: %v", err)
		}
	})
	m.HandleConnect(func(s *melody.Session) {
		log.Debug("Feed client connected: %s", s.Request.RemoteAddr)
	})
	log.Info("WebSocket initialized successfully")
}

// InitFeed chỉ mount /ws và trả về Notifier khi FEED_ENABLED bật,
// ngược lại trả về nil và không có route nào lộ tên khách.
func InitFeed(router *gin.Engine, cfg *Config, m *melody.Melody, log logger.Logger) services.Notifier {
	if !cfg.FeedEnabled {
		log.Info("Live feed disabled")
		return nil
	}
	InitWebSocket(router, m, log)
	return services.NewFeedNotifier(m)
}
