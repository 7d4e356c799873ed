package response

import (
	"net/http"

	"kiosk/constants"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response của /submit
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Phone   string `json:"phone,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, message, phone string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Phone:   phone,
	})
}

// BadRequest trả về response lỗi dữ liệu (400)
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// ServerError trả về response lỗi server với thông báo chung
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: constants.MessageServerError,
	})
}
