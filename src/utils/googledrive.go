package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var folderURLPattern = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)

// GoogleDriveUploader uploads files into one Drive folder using a Service Account
type GoogleDriveUploader struct {
	service  *drive.Service
	folderID string
	log      *zap.Logger
}

// NewGoogleDriveUploader loads the Service Account credentials from credentialsPath,
// or from credentialsJSON when no path is given.
func NewGoogleDriveUploader(ctx context.Context, credentialsPath, credentialsJSON, folder string, log *zap.Logger) (*GoogleDriveUploader, error) {
	credsBytes := []byte(credentialsJSON)
	if credentialsPath != "" {
		data, err := os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("error leyendo archivo de credenciales: %w", err)
		}
		credsBytes = data
	}
	if len(credsBytes) == 0 {
		return nil, fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH o GOOGLE_DRIVE_CREDENTIALS_JSON debe estar configurado")
	}

	creds, err := google.CredentialsFromJSON(ctx, credsBytes, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("error cargando credenciales: %w", err)
	}

	service, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("error creando servicio de Google Drive: %w", err)
	}

	log.Info("Servicio de Google Drive inicializado")
	return &GoogleDriveUploader{service: service, folderID: ExtractFolderID(folder), log: log}, nil
}

// Upload stores content as a new file named name and returns its Drive id
func (u *GoogleDriveUploader) Upload(ctx context.Context, name, mimeType string, content io.Reader) (string, error) {
	file := &drive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{u.folderID},
	}

	created, err := u.service.Files.Create(file).
		Media(content).
		Fields("id", "name").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("error subiendo archivo a Google Drive: %w", err)
	}

	u.log.Info("Archivo subido a Google Drive",
		zap.String("name", created.Name),
		zap.String("file_id", created.Id))
	return created.Id, nil
}

// ExtractFolderID accepts either a bare folder id or a folder URL
func ExtractFolderID(folder string) string {
	if matches := folderURLPattern.FindStringSubmatch(folder); len(matches) > 1 {
		return matches[1]
	}
	return folder
}
