package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/michaeljohnaustria/my-garden/internal/api/dto"
	"github.com/michaeljohnaustria/my-garden/internal/domain"
	"github.com/michaeljohnaustria/my-garden/internal/events"
	"github.com/michaeljohnaustria/my-garden/internal/repository"
	apperrors "github.com/michaeljohnaustria/my-garden/pkg/util"
)

const vegetableName = "Vegetable"

var vegetableRequired = []string{"vegetable_Name", "recommended_soil_type"}

// VegetablesHandler serves /api/vegetables.
type VegetablesHandler struct {
	repo     repository.VegetableRepository
	notifier changeNotifier
}

// NewVegetablesHandler constructs handler.
func NewVegetablesHandler(repo repository.VegetableRepository, dispatcher events.Dispatcher, logger *zap.Logger) *VegetablesHandler {
	return &VegetablesHandler{
		repo:     repo,
		notifier: newChangeNotifier(dispatcher, logger, domain.ResourceVegetables),
	}
}

// List handles GET /api/vegetables.
func (h *VegetablesHandler) List(c *fiber.Ctx) error {
	vegetables, err := h.repo.List(c.UserContext())
	if err != nil {
		return storeError(err, vegetableName)
	}
	return c.JSON(dto.List(lo.Map(vegetables, func(v domain.Vegetable, _ int) dto.VegetableResponse {
		return dto.NewVegetableResponse(v)
	})))
}

// Get handles GET /api/vegetables/:id.
func (h *VegetablesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	vegetable, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storeError(err, vegetableName)
	}
	return c.JSON(dto.OK(dto.NewVegetableResponse(*vegetable)))
}

// Create handles POST /api/vegetables.
func (h *VegetablesHandler) Create(c *fiber.Ctx) error {
	raw, err := decodeBody(c)
	if err != nil {
		return err
	}
	if err := requireFields(raw, vegetableRequired...); err != nil {
		return err
	}
	var req dto.VegetableRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Name == nil || req.RecommendedSoilType == nil {
		return apperrors.NewValidationError(requiredMessage(vegetableRequired), nil)
	}

	vegetable := &domain.Vegetable{Name: *req.Name, RecommendedSoilType: req.RecommendedSoilType}
	if err := h.repo.Create(c.UserContext(), vegetable); err != nil {
		return storeError(err, vegetableName)
	}
	h.notifier.notify(c, events.EventResourceCreated, vegetable.ID, dto.NewVegetableResponse(*vegetable))

	return c.Status(http.StatusCreated).JSON(dto.OK(createdData(raw, "vegetable_ID", vegetable.ID)))
}

// Update handles PUT /api/vegetables/:id.
func (h *VegetablesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	raw, err := decodeBody(c)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return apperrors.NewValidationError(msgNoDataProvided, nil)
	}
	var req dto.VegetableRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.repo.Update(c.UserContext(), id, req.Patch()); err != nil {
		return storeError(err, vegetableName)
	}
	h.notifier.notify(c, events.EventResourceUpdated, id, raw)

	return c.JSON(dto.Message(updatedMessage(vegetableName)))
}

// Delete handles DELETE /api/vegetables/:id.
func (h *VegetablesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return storeError(err, vegetableName)
	}
	h.notifier.notify(c, events.EventResourceDeleted, id, nil)

	return c.JSON(dto.Message(deletedMessage(vegetableName, id)))
}
