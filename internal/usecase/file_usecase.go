package usecase

import (
	"context"
	"io"
	"log"
	"strings"

	"hanaplokal/internal/domain/entity"
	"hanaplokal/internal/domain/repository"
	"hanaplokal/internal/infrastructure/storage"
	"hanaplokal/pkg/errors"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var allowedFolders = map[string]bool{
	"listings":  true,
	"profiles":  true,
	"portfolio": true,
	"covers":    true,
	"documents": true,
}

type FileUseCase struct {
	storageClient *storage.CloudStorageClient
	metadataRepo  repository.FileMetadataRepository
}

func NewFileUseCase(storageClient *storage.CloudStorageClient, metadataRepo repository.FileMetadataRepository) *FileUseCase {
	return &FileUseCase{
		storageClient: storageClient,
		metadataRepo:  metadataRepo,
	}
}

type UploadInput struct {
	File        io.Reader
	ContentType string
	Size        int64
	Folder      string
	Public      bool
}

const maxUploadSize = 10 << 20 // 10 MB

func (uc *FileUseCase) Upload(ctx context.Context, ownerID string, input UploadInput) (*entity.FileMetadata, error) {
	if !allowedImageTypes[input.ContentType] && !strings.HasPrefix(input.ContentType, "application/") {
		return nil, errors.BadRequest("Unsupported content type", nil)
	}
	if input.Size > maxUploadSize {
		return nil, errors.BadRequest("File exceeds the 10 MB limit", nil)
	}
	folder := input.Folder
	if folder == "" {
		folder = "listings"
	}
	if !allowedFolders[folder] {
		return nil, errors.BadRequest("Unknown upload folder", nil)
	}

	url, objectName, err := uc.storageClient.UploadFile(ctx, input.File, input.ContentType, folder, input.Public)
	if err != nil {
		log.Printf("Upload Error: User %s folder %s: %v", ownerID, folder, err)
		return nil, errors.Internal("Failed to upload file", err)
	}

	metadata := &entity.FileMetadata{
		OwnerID:     ownerID,
		URL:         url,
		ObjectName:  objectName,
		ContentType: input.ContentType,
		Size:        input.Size,
		Folder:      folder,
		Public:      input.Public,
	}

	if err := uc.metadataRepo.Create(ctx, metadata); err != nil {
		// The object is already in the bucket; remove it rather than leak it.
		if delErr := uc.storageClient.DeleteObject(ctx, objectName); delErr != nil {
			log.Printf("Upload Error: Orphaned object %s: %v", objectName, delErr)
		}
		return nil, err
	}

	return metadata, nil
}

func (uc *FileUseCase) Delete(ctx context.Context, ownerID, fileID string) error {
	metadata, err := uc.metadataRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if metadata.OwnerID != ownerID {
		return errors.Forbidden("You don't own this file", nil)
	}

	if err := uc.storageClient.DeleteObject(ctx, metadata.ObjectName); err != nil {
		log.Printf("Delete File Warning: Object %s removal failed: %v", metadata.ObjectName, err)
	}

	return uc.metadataRepo.Delete(ctx, fileID)
}

func (uc *FileUseCase) ListMine(ctx context.Context, ownerID string, limit, offset int) ([]*entity.FileMetadata, int64, error) {
	return uc.metadataRepo.ListByOwner(ctx, ownerID, limit, offset)
}
