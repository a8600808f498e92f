package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/ARQAP/mesa-de-ayuda/src/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	minAdminPasswordLength = 4
	// DeleteConfirmation must be typed verbatim to authorize destructive admin actions
	DeleteConfirmation = "ELIMINAR"
)

type SettingService struct {
	db       *gorm.DB
	fallback string
	log      *zap.Logger
}

// NewSettingService creates a new instance of SettingService. fallback is the admin
// password accepted until a hash is stored.
func NewSettingService(db *gorm.DB, fallback string, log *zap.Logger) *SettingService {
	return &SettingService{db: db, fallback: fallback, log: log}
}

// GetSetting looks up a setting; found is false when the key is absent
func (s *SettingService) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var setting models.SettingModel
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return setting.Value, true, nil
}

// SetSetting inserts the setting or replaces its value
func (s *SettingService) SetSetting(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.SettingModel{Key: key, Value: value}).Error
}

// DeleteSetting removes a setting; deleting a missing key is not an error
func (s *SettingService) DeleteSetting(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.SettingModel{}).Error
}

// HasAdminPassword reports whether an admin hash has been configured
func (s *SettingService) HasAdminPassword(ctx context.Context) (bool, error) {
	_, found, err := s.GetSetting(ctx, models.SettingAdminPassHash)
	return found, err
}

// VerifyAdminPassword checks candidate against the stored hash, or against the
// fallback while no hash exists. Any failure reading or comparing counts as a mismatch.
func (s *SettingService) VerifyAdminPassword(ctx context.Context, candidate string) bool {
	hash, found, err := s.GetSetting(ctx, models.SettingAdminPassHash)
	if err != nil {
		s.log.Error("No se pudo leer la clave de administrador", zap.Error(err))
		return false
	}
	if !found {
		return candidate == s.fallback
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		s.log.Warn("Hash de administrador inválido", zap.Error(err))
	}
	return err == nil
}

// VerifyAdminConfirmation authorizes destructive actions: password and the literal confirmation
func (s *SettingService) VerifyAdminConfirmation(ctx context.Context, password, confirm string) error {
	if !s.VerifyAdminPassword(ctx, password) || confirm != DeleteConfirmation {
		return ErrUnauthorized
	}
	return nil
}

// ChangeAdminPassword replaces the admin password. The current password is only
// required once a hash exists.
func (s *SettingService) ChangeAdminPassword(ctx context.Context, current, newPassword, confirm string) error {
	newPassword = strings.TrimSpace(newPassword)
	confirm = strings.TrimSpace(confirm)

	if utf8.RuneCountInString(newPassword) < minAdminPasswordLength {
		return ErrPasswordTooShort
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	hasHash, err := s.HasAdminPassword(ctx)
	if err != nil {
		return err
	}
	if hasHash && !s.VerifyAdminPassword(ctx, current) {
		return ErrWrongCurrentPassword
	}

	return s.storeAdminPassword(ctx, newPassword)
}

// ResetAdminPassword stores a new admin password without checking the current one
func (s *SettingService) ResetAdminPassword(ctx context.Context, newPassword string) error {
	newPassword = strings.TrimSpace(newPassword)
	if utf8.RuneCountInString(newPassword) < minAdminPasswordLength {
		return ErrPasswordTooShort
	}
	return s.storeAdminPassword(ctx, newPassword)
}

func (s *SettingService) storeAdminPassword(ctx context.Context, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.SetSetting(ctx, models.SettingAdminPassHash, string(hashed)); err != nil {
		return err
	}
	s.log.Info("Clave de administrador actualizada")
	return nil
}
