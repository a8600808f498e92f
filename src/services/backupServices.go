package services

import (
	"bytes"
	"context"
	"io"
	"time"

	"go.uber.org/zap"
)

// FileUploader stores a file remotely and returns its identifier
type FileUploader interface {
	Upload(ctx context.Context, name, mimeType string, content io.Reader) (string, error)
}

type BackupService struct {
	tickets  *TicketService
	uploader FileUploader
	log      *zap.Logger
	now      func() time.Time
}

// NewBackupService creates a new instance of BackupService. A nil uploader disables backups.
func NewBackupService(tickets *TicketService, uploader FileUploader, log *zap.Logger) *BackupService {
	return &BackupService{tickets: tickets, uploader: uploader, log: log, now: time.Now}
}

// Enabled reports whether an uploader is configured
func (s *BackupService) Enabled() bool {
	return s.uploader != nil
}

// Backup uploads the full CSV export and returns the remote file id
func (s *BackupService) Backup(ctx context.Context) (string, error) {
	if !s.Enabled() {
		return "", ErrBackupDisabled
	}

	var buf bytes.Buffer
	if err := s.tickets.ExportCSV(ctx, &buf); err != nil {
		return "", err
	}

	name := "tickets-" + s.now().Format("20060102-150405") + ".csv"
	fileID, err := s.uploader.Upload(ctx, name, "text/csv", &buf)
	if err != nil {
		s.log.Error("Falló el respaldo de tickets", zap.String("name", name), zap.Error(err))
		return "", err
	}

	s.log.Info("Respaldo de tickets completado", zap.String("name", name), zap.String("file_id", fileID))
	return fileID, nil
}
