package handlers

import (
	"finsort/internal/dto"
	"finsort/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FileHandler struct {
	fileService   *service.FileService
	importService *service.ImportService
	logger        *zap.Logger
}

func NewFileHandler(fileService *service.FileService, importService *service.ImportService, logger *zap.Logger) *FileHandler {
	return &FileHandler{
		fileService:   fileService,
		importService: importService,
		logger:        logger,
	}
}

func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

// ListFiles godoc
// @Summary List stored files and folders
// @Tags files
// @Produce json
// @Success 200 {object} dto.LibraryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /files [get]
func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	lib, err := h.fileService.List(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.LibraryFromModels(lib.Files, lib.Folders))
}

// GetFile godoc
// @Summary Get a stored file with its rows
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} dto.FileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id} [get]
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid file ID")
	}

	file, err := h.fileService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.FileFromModel(file))
}

// RenameFile godoc
// @Summary Rename a stored file
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Param request body dto.RenameRequest true "New name"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id} [patch]
func (h *FileHandler) RenameFile(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid file ID")
	}
	var req dto.RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.fileService.Rename(c.UserContext(), id, req.Name); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.MessageResponse{Message: "File renamed"})
}

// MoveFile godoc
// @Summary Move a stored file
// @Description Move a file into a folder, or to the root when folder_id is null
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Param request body dto.MoveFileRequest true "Target folder"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id}/move [post]
func (h *FileHandler) MoveFile(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid file ID")
	}
	var req dto.MoveFileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	folderID, err := dto.ParseOptionalID(req.FolderID)
	if err != nil {
		return badRequest(c, "Invalid folder ID")
	}

	if err := h.fileService.Move(c.UserContext(), id, folderID); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.MessageResponse{Message: "File moved"})
}

// DeleteFile godoc
// @Summary Delete a stored file
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id} [delete]
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid file ID")
	}

	if err := h.fileService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.MessageResponse{Message: "File deleted"})
}

// ReclassifyFile godoc
// @Summary Reclassify a stored file
// @Description Label the stored rows again with the current taxonomy and save them
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id}/reclassify [post]
func (h *FileHandler) ReclassifyFile(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid file ID")
	}

	file, unmatched, err := h.importService.ReclassifyFile(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.UploadResponse{
		Parsed:   dto.RowsFromModels(file.Rows),
		RemClass: dto.UnmatchedFromModels(unmatched),
		FileID:   file.ID.String(),
	})
}

// FileTotals godoc
// @Summary Category totals of a stored file
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {array} []interface{} "[category, total] pairs"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id}/totals [get]
func (h *FileHandler) FileTotals(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid file ID")
	}

	totals, err := h.importService.FileTotals(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.TotalsFromModels(totals))
}

// CreateFolder godoc
// @Summary Create a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param request body dto.CreateFolderRequest true "Folder"
// @Success 201 {object} dto.FolderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /folders [post]
func (h *FileHandler) CreateFolder(c *fiber.Ctx) error {
	var req dto.CreateFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	parentID, err := dto.ParseOptionalID(req.ParentID)
	if err != nil {
		return badRequest(c, "Invalid parent folder ID")
	}

	folder, err := h.fileService.CreateFolder(c.UserContext(), req.Name, parentID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FolderFromModel(folder))
}

// RenameFolder godoc
// @Summary Rename a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param id path string true "Folder ID"
// @Param request body dto.RenameRequest true "New name"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /folders/{id} [patch]
func (h *FileHandler) RenameFolder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid folder ID")
	}
	var req dto.RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.fileService.RenameFolder(c.UserContext(), id, req.Name); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Folder renamed"})
}

// MoveFolder godoc
// @Summary Move a folder
// @Description Re-parent a folder, or move it to the root when parent_id is null. A folder cannot move inside itself
// @Tags folders
// @Accept json
// @Produce json
// @Param id path string true "Folder ID"
// @Param request body dto.MoveFolderRequest true "Target parent"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /folders/{id}/move [post]
func (h *FileHandler) MoveFolder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid folder ID")
	}
	var req dto.MoveFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	parentID, err := dto.ParseOptionalID(req.ParentID)
	if err != nil {
		return badRequest(c, "Invalid parent folder ID")
	}

	if err := h.fileService.MoveFolder(c.UserContext(), id, parentID); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Folder moved"})
}

// DeleteFolder godoc
// @Summary Delete a folder
// @Description Files inside move to the root; child folders move to the deleted folder's parent
// @Tags folders
// @Produce json
// @Param id path string true "Folder ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /folders/{id} [delete]
func (h *FileHandler) DeleteFolder(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid folder ID")
	}

	if err := h.fileService.DeleteFolder(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Folder deleted"})
}
