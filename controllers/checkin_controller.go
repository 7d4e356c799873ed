package controllers

import (
	"reflect"
	"strings"

	"kiosk/constants"
	"kiosk/dto"
	"kiosk/errors"
	"kiosk/response"
	"kiosk/services"
	"kiosk/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
)

const maxMultipartMemory = 32 << 20

type CheckinController struct {
	Service *services.CheckinService
	Logger  logger.Logger
	decoder *schema.Decoder
}

func NewCheckinController(service *services.CheckinService, log logger.Logger) CheckinController {
	return CheckinController{
		Service: service,
		Logger:  log,
		decoder: newFormDecoder(),
	}
}

// newFormDecoder nhận thêm giá trị "on" của checkbox HTML
func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(false, func(s string) reflect.Value {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "on", "true", "1", "yes":
			return reflect.ValueOf(true)
		case "", "off", "false", "0", "no":
			return reflect.ValueOf(false)
		}
		return reflect.Value{}
	})
	return d
}

func (cc CheckinController) bind(c *gin.Context, req *dto.CheckinRequest) error {
	switch c.ContentType() {
	case gin.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return err
		}
		return cc.decoder.Decode(req, c.Request.PostForm)
	case gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return err
		}
		return cc.decoder.Decode(req, c.Request.PostForm)
	}
	return c.ShouldBindJSON(req)
}

// Submit xử lý POST /submit
func (cc CheckinController) Submit(c *gin.Context) {
	var req dto.CheckinRequest
	if err := cc.bind(c, &req); err != nil {
		cc.Logger.Debug("Invalid check-in body: %v", err)
		response.BadRequest(c, constants.MessageInvalidBody)
		return
	}

	record, err := cc.Service.Submit(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.IsClientError() {
			response.BadRequest(c, appErr.Message)
			return
		}
		cc.Logger.Error("Error processing check-in: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, services.ThankYouMessage(record.Name), record.Phone)
}
