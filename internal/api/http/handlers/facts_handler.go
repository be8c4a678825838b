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

const factName = "Fact"

var factRequired = []string{"vegetable_ID", "soil_type_ID", "best_time_to_sow", "best_time_to_harvest"}

// FactsHandler serves /api/facts. Dates are passed to the store as submitted;
// malformed dates are rejected there.
type FactsHandler struct {
	repo     repository.FactRepository
	notifier changeNotifier
}

// NewFactsHandler constructs handler.
func NewFactsHandler(repo repository.FactRepository, dispatcher events.Dispatcher, logger *zap.Logger) *FactsHandler {
	return &FactsHandler{
		repo:     repo,
		notifier: newChangeNotifier(dispatcher, logger, domain.ResourceFacts),
	}
}

// List handles GET /api/facts.
func (h *FactsHandler) List(c *fiber.Ctx) error {
	facts, err := h.repo.List(c.UserContext())
	if err != nil {
		return storeError(err, factName)
	}
	return c.JSON(dto.List(lo.Map(facts, func(f domain.Fact, _ int) dto.FactResponse {
		return dto.NewFactResponse(f)
	})))
}

// Get handles GET /api/facts/:id.
func (h *FactsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	fact, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storeError(err, factName)
	}
	return c.JSON(dto.OK(dto.NewFactResponse(*fact)))
}

// Create handles POST /api/facts.
func (h *FactsHandler) Create(c *fiber.Ctx) error {
	raw, err := decodeBody(c)
	if err != nil {
		return err
	}
	if err := requireFields(raw, factRequired...); err != nil {
		return err
	}
	var req dto.FactRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.VegetableID == nil || req.SoilTypeID == nil || req.BestTimeToSow == nil || req.BestTimeToHarvest == nil {
		return apperrors.NewValidationError(requiredMessage(factRequired), nil)
	}

	fact := &domain.Fact{
		VegetableID:       *req.VegetableID,
		SoilTypeID:        *req.SoilTypeID,
		BestTimeToSow:     *req.BestTimeToSow,
		BestTimeToHarvest: *req.BestTimeToHarvest,
	}
	if err := h.repo.Create(c.UserContext(), fact); err != nil {
		return storeError(err, factName)
	}
	h.notifier.notify(c, events.EventResourceCreated, fact.ID, dto.NewFactResponse(*fact))

	return c.Status(http.StatusCreated).JSON(dto.OK(createdData(raw, "fact_ID", fact.ID)))
}

// Update handles PUT /api/facts/:id.
func (h *FactsHandler) Update(c *fiber.Ctx) error {
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
	var req dto.FactRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.repo.Update(c.UserContext(), id, req.Patch()); err != nil {
		return storeError(err, factName)
	}
	h.notifier.notify(c, events.EventResourceUpdated, id, raw)

	return c.JSON(dto.Message(updatedMessage(factName)))
}

// Delete handles DELETE /api/facts/:id.
func (h *FactsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return storeError(err, factName)
	}
	h.notifier.notify(c, events.EventResourceDeleted, id, nil)

	return c.JSON(dto.Message(deletedMessage(factName, id)))
}
