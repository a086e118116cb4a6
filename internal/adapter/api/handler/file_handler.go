package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"hanaplokal/internal/usecase"
	"hanaplokal/pkg/errors"
	"hanaplokal/pkg/logger"
	"hanaplokal/pkg/response"
	"hanaplokal/pkg/utils"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

func (h *FileHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("Received file: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.Header.Get("Content-Type"))

	isPublic := true
	if publicStr := c.FormValue("public"); publicStr != "" {
		isPublic, _ = strconv.ParseBool(publicStr)
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	userID := c.Get("uid").(string)

	metadata, err := h.fileUseCase.Upload(c.Request().Context(), userID, usecase.UploadInput{
		File:        src,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Folder:      c.FormValue("folder"),
		Public:      isPublic,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, metadata)
}

func (h *FileHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("File ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.fileUseCase.Delete(c.Request().Context(), userID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "File deleted",
	})
}

func (h *FileHandler) ListMine(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	files, total, err := h.fileUseCase.ListMine(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, files, total, pagination.Page, pagination.PageSize)
}
