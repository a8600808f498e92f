package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUploader struct {
	name     string
	mimeType string
	content  string
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, name, mimeType string, content io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.name, f.mimeType, f.content = name, mimeType, string(data)
	return "drive-file-1", nil
}

func TestBackup_Disabled(t *testing.T) {
	b := NewBackupService(newTestTicketService(t), nil, zap.NewNop())
	assert.False(t, b.Enabled())

	_, err := b.Backup(context.Background())
	assert.ErrorIs(t, err, ErrBackupDisabled)
}

func TestBackup_UploadsExport(t *testing.T) {
	tickets := newTestTicketService(t)
	submit(t, tickets, "A01", "Wifi")

	uploader := &fakeUploader{}
	b := NewBackupService(tickets, uploader, zap.NewNop())
	b.now = func() time.Time { return time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC) }

	fileID, err := b.Backup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "drive-file-1", fileID)
	assert.Equal(t, "tickets-20240501-180000.csv", uploader.name)
	assert.Equal(t, "text/csv", uploader.mimeType)
	assert.True(t, strings.HasPrefix(uploader.content, "\ufeffid,cubiculo"))
	assert.Contains(t, uploader.content, `"1","A01","Wifi"`)
}

func TestBackup_UploadError(t *testing.T) {
	uploadErr := errors.New("quota exceeded")
	b := NewBackupService(newTestTicketService(t), &fakeUploader{err: uploadErr}, zap.NewNop())

	_, err := b.Backup(context.Background())
	assert.ErrorIs(t, err, uploadErr)
}
