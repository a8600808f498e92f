package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractFolderID(t *testing.T) {
	assert.Equal(t, "1AbC_d-9", ExtractFolderID("https://drive.google.com/drive/folders/1AbC_d-9"))
	assert.Equal(t, "1AbC_d-9", ExtractFolderID("https://drive.google.com/drive/u/0/folders/1AbC_d-9?usp=sharing"))
	assert.Equal(t, "1AbC_d-9", ExtractFolderID("1AbC_d-9"))
}

func TestNewGoogleDriveUploader_MissingCredentials(t *testing.T) {
	_, err := NewGoogleDriveUploader(context.Background(), "", "", "folder", zap.NewNop())
	assert.Error(t, err)

	_, err = NewGoogleDriveUploader(context.Background(), "/no/existe.json", "", "folder", zap.NewNop())
	assert.Error(t, err)

	_, err = NewGoogleDriveUploader(context.Background(), "", "no es json", "folder", zap.NewNop())
	assert.Error(t, err)
}
