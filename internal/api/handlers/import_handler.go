package handlers

import (
	"finsort/internal/dto"
	"finsort/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ImportHandler struct {
	importService *service.ImportService
	logger        *zap.Logger
}

func NewImportHandler(importService *service.ImportService, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// UploadCSV godoc
// @Summary Upload a bank statement
// @Description Parse a headerless CSV (date, activity, expense, income, total), classify every row and store the result
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement CSV"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /uploadcsv [post]
func (h *ImportHandler) UploadCSV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "File is required")
	}

	src, err := file.Open()
	if err != nil {
		return badRequest(c, "Failed to open file")
	}
	defer src.Close()

	res, err := h.importService.Upload(c.UserContext(), file.Filename, src)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.UploadResponse{
		Parsed:   dto.RowsFromModels(res.Rows),
		RemClass: dto.UnmatchedFromModels(res.Unmatched),
		FileID:   res.FileID.String(),
	})
}

// Reclassify godoc
// @Summary Reclassify rows
// @Description Label rows again with the current taxonomy; existing labels are discarded
// @Tags import
// @Accept json
// @Produce json
// @Param rows body []dto.Row true "Rows to reclassify"
// @Success 200 {object} dto.ReclassifyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reclassify [post]
func (h *ImportHandler) Reclassify(c *fiber.Ctx) error {
	var rows []dto.Row
	if err := c.BodyParser(&rows); err != nil {
		return badRequest(c, "Invalid request body")
	}

	res, err := h.importService.Reclassify(c.UserContext(), dto.RowsToModels(rows))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.ReclassifyResponse{
		Parsed:   dto.RowsFromModels(res.Rows),
		RemClass: dto.UnmatchedFromModels(res.Unmatched),
	})
}

// PivotTable godoc
// @Summary Category totals
// @Description Sum classified rows per category. Rows are objects or [date, activity, expense, income, classification] arrays
// @Tags import
// @Accept json
// @Produce json
// @Param rows body []dto.Row true "Classified rows"
// @Success 200 {array} []interface{} "[category, total] pairs"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pivot-table [post]
func (h *ImportHandler) PivotTable(c *fiber.Ctx) error {
	var rows []dto.PivotRow
	if err := c.BodyParser(&rows); err != nil {
		return badRequest(c, "Invalid request body")
	}

	totals, err := h.importService.Pivot(c.UserContext(), dto.PivotRowsToModels(rows))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.TotalsFromModels(totals))
}
