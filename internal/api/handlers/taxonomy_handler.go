package handlers

import (
	"strings"

	"finsort/internal/dto"
	"finsort/internal/models"
	"finsort/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TaxonomyHandler struct {
	taxonomyService *service.TaxonomyService
	logger          *zap.Logger
}

func NewTaxonomyHandler(taxonomyService *service.TaxonomyService, logger *zap.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyService: taxonomyService,
		logger:          logger,
	}
}

// AddKeyword godoc
// @Summary Attribute an activity to a category
// @Description Append the activity as a keyword of an existing category. Without type the expense table is searched first
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param request body dto.AddKeywordRequest true "Keyword"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /addnewvalue [post]
func (h *TaxonomyHandler) AddKeyword(c *fiber.Ctx) error {
	var req dto.AddKeywordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Classification) == "" || strings.TrimSpace(req.Activity) == "" {
		return badRequest(c, "classification and activity are required")
	}

	ctx := c.UserContext()
	var track models.Track
	if req.Type != "" {
		track = models.ParseTrack(req.Type)
	} else {
		var err error
		if track, err = h.taxonomyService.ResolveTrack(ctx, req.Classification); err != nil {
			return respondError(c, h.logger, err)
		}
	}

	if err := h.taxonomyService.AddKeyword(ctx, track, req.Classification, req.Activity); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.MessageResponse{
		Message:        "Keyword added",
		Classification: req.Classification,
	})
}

// AddCategory godoc
// @Summary Create a category
// @Description Create a category in the income table when chosen_type is "income", otherwise in the expense table, seeded with the selected activity
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param request body dto.AddCategoryRequest true "Category"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /addnewclassification [post]
func (h *TaxonomyHandler) AddCategory(c *fiber.Ctx) error {
	var req dto.AddCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	track := models.ParseTrack(req.ChosenType)
	if err := h.taxonomyService.AddCategory(c.UserContext(), track, req.NewClassification, req.SelectedActivity); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.MessageResponse{
		Message:        "Category added",
		Classification: strings.TrimSpace(req.NewClassification),
	})
}

// ExpenseOptions godoc
// @Summary List expense categories
// @Tags taxonomy
// @Produce json
// @Success 200 {object} dto.OptionsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expense-options [get]
func (h *TaxonomyHandler) ExpenseOptions(c *fiber.Ctx) error {
	return h.options(c, models.TrackExpense)
}

// IncomeOptions godoc
// @Summary List income categories
// @Tags taxonomy
// @Produce json
// @Success 200 {object} dto.OptionsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /income-options [get]
func (h *TaxonomyHandler) IncomeOptions(c *fiber.Ctx) error {
	return h.options(c, models.TrackIncome)
}

func (h *TaxonomyHandler) options(c *fiber.Ctx, track models.Track) error {
	names, err := h.taxonomyService.Options(c.UserContext(), track)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(dto.OptionsResponse{Options: names})
}
