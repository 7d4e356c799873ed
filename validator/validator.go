package validator

import (
	stderrors "errors"

	"kiosk/constants"
	"kiosk/dto"
	"kiosk/errors"
	"kiosk/utils"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("imagedataurl", func(fl validator.FieldLevel) bool {
		return utils.IsImageDataURL(fl.Field().String())
	})
	return v
}

// ValidateCheckin kiểm tra payload check-in theo thứ tự:
// đủ các trường bắt buộc, rồi selfie phải là data URL ảnh
func ValidateCheckin(req *dto.CheckinRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.NewAppError(errors.ErrCodeInvalidBody, constants.MessageInvalidBody, err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return errors.NewAppError(errors.ErrCodeRequiredField, constants.MessageMissingFields, errors.ErrMissingRequired)
		}
	}
	return errors.NewAppError(errors.ErrCodeInvalidFormat, constants.MessageInvalidImage, errors.ErrInvalidDataURL)
}

// DecodeSelfie giải mã ảnh selfie đã qua ValidateCheckin
func DecodeSelfie(req *dto.CheckinRequest) ([]byte, error) {
	data, err := utils.DecodeImageDataURL(req.Selfie)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidImage, constants.MessageInvalidData, err)
	}
	return data, nil
}
