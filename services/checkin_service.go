package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"kiosk/constants"
	"kiosk/dto"
	"kiosk/errors"
	"kiosk/models"
	"kiosk/services/logger"
	"kiosk/storage"
	"kiosk/utils"
	"kiosk/validator"
)

type CheckinService struct {
	store    storage.Store
	logger   logger.Logger
	notifier Notifier
	now      func() time.Time
}

type CheckinServiceOptions struct {
	Store    storage.Store
	Logger   logger.Logger
	Notifier Notifier
	// Now mặc định là time.Now
	Now func() time.Time
}

func NewCheckinService(opts CheckinServiceOptions) *CheckinService {
	s := &CheckinService{
		store:    opts.Store,
		logger:   opts.Logger,
		notifier: opts.Notifier,
		now:      opts.Now,
	}
	if s.logger == nil {
		s.logger = logger.NewNopLogger()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// StorageDriver trả về tên backend lưu trữ đang dùng
func (s *CheckinService) StorageDriver() string {
	return s.store.Driver()
}

// Submit kiểm tra payload, lưu ảnh rồi lưu bản ghi.
// Nếu lưu bản ghi thất bại thì ảnh vừa ghi bị xóa, file của lượt khác không bị đụng tới.
func (s *CheckinService) Submit(ctx context.Context, req *dto.CheckinRequest, clientIP string) (*models.CheckinRecord, error) {
	req.Normalize()

	if err := validator.ValidateCheckin(req); err != nil {
		return nil, err
	}
	image, err := validator.DecodeSelfie(req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	nameToken := utils.SanitizeName(req.Name)
	tsToken := utils.TimestampToken(now)

	record := &models.CheckinRecord{
		Name:          req.Name,
		Phone:         req.Phone,
		Timestamp:     utils.FormatTimestamp(now),
		WaiverVersion: constants.WaiverVersion,
		AgreedToTerms: req.Checked,
		ClientIP:      clientIP,
	}

	selfieFile, err := s.persist(ctx, nameToken, tsToken, image, record)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStorage, constants.MessageServerError, err)
	}

	s.logger.Info("Check-in received: name=%q file=%s ip=%s", record.Name, selfieFile, clientIP)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, record); err != nil {
			s.logger.Error("Error broadcasting check-in %s: %v", selfieFile, err)
		}
	}

	return record, nil
}

// persist ghi ảnh rồi bản ghi dưới cùng một token, không bao giờ ghi đè.
// Trùng tên thì thử lại với hậu tố -1, -2, ...
func (s *CheckinService) persist(ctx context.Context, nameToken, tsToken string, image []byte, record *models.CheckinRecord) (string, error) {
	for attempt := 0; attempt < constants.MaxFilenameAttempts; attempt++ {
		token := tsToken
		if attempt > 0 {
			token = fmt.Sprintf("%s-%d", tsToken, attempt)
		}
		selfieFile := utils.SelfieFilename(nameToken, token)
		recordFile := utils.RecordFilename(nameToken, token)

		if err := s.store.SaveSelfie(ctx, selfieFile, image); err != nil {
			if stderrors.Is(err, storage.ErrExists) {
				s.logger.Debug("Selfie %s already exists, retrying", selfieFile)
				continue
			}
			s.logger.Error("Error saving selfie %s: %v", selfieFile, err)
			return "", err
		}

		record.SelfieFilename = selfieFile
		err := s.store.SaveRecord(ctx, recordFile, record)
		if err == nil {
			return selfieFile, nil
		}

		// ảnh ở đây chắc chắn do request này tạo nên xóa được
		if rmErr := s.store.RemoveSelfie(ctx, selfieFile); rmErr != nil {
			s.logger.Error("Error rolling back selfie %s: %v", selfieFile, rmErr)
		}
		if stderrors.Is(err, storage.ErrExists) {
			s.logger.Debug("Record %s already exists, retrying", recordFile)
			continue
		}
		s.logger.Error("Error saving record %s: %v", recordFile, err)
		return "", err
	}

	s.logger.Error("No free filename for %s_%s after %d attempts", nameToken, tsToken, constants.MaxFilenameAttempts)
	return "", fmt.Errorf("%s_%s: %w", nameToken, tsToken, storage.ErrExists)
}

// ThankYouMessage trả về lời chào sau khi check-in thành công
func ThankYouMessage(name string) string {
	return fmt.Sprintf(constants.MessageThankYouFormat, name)
}
