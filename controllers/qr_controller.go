package controllers

import (
	"encoding/base64"
	"html/template"
	"net/http"
	"strings"

	"kiosk/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type QRController struct {
	PublicURL string
	Logger    logger.Logger
}

func NewQRController(publicURL string, log logger.Logger) QRController {
	return QRController{
		PublicURL: strings.TrimRight(publicURL, "/"),
		Logger:    log,
	}
}

// baseURL ưu tiên PUBLIC_URL, nếu không thì suy ra từ request
func (qc QRController) baseURL(c *gin.Context) string {
	if qc.PublicURL != "" {
		return qc.PublicURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	// chỉ nhận http/https; Host vẫn do client gửi nên triển khai thật nên đặt PUBLIC_URL
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		switch p := strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0])); p {
		case "http", "https":
			scheme = p
		}
	}
	return scheme + "://" + c.Request.Host
}

// Page trả về trang HTML nhúng mã QR trỏ về trang check-in
func (qc QRController) Page(c *gin.Context) {
	url := qc.baseURL(c)
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		qc.Logger.Error("Error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "Error generating QR code")
		return
	}

	c.HTML(http.StatusOK, "qr.html", gin.H{
		"URL":       url,
		"QRDataURL": template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
	})
}

// PNG trả về ảnh QR thô
func (qc QRController) PNG(c *gin.Context) {
	png, err := qrcode.Encode(qc.baseURL(c), qrcode.Medium, qrSize)
	if err != nil {
		qc.Logger.Error("Error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "Error generating QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
