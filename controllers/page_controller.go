package controllers

import (
	"net/http"

	"kiosk/dto"
	"kiosk/public"

	"github.com/gin-gonic/gin"
)

// Index trả về trang check-in
func Index(c *gin.Context) {
	page, err := public.FS.ReadFile("index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Health trả về trạng thái server và backend lưu trữ
func Health(driver string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "ok",
			Storage: driver,
		})
	}
}
