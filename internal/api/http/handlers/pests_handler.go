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

const pestName = "Pest"

var pestRequired = []string{"pest_Description", "remedy_Description"}

// PestsHandler serves /api/pests.
type PestsHandler struct {
	repo     repository.PestRepository
	notifier changeNotifier
}

// NewPestsHandler constructs handler.
func NewPestsHandler(repo repository.PestRepository, dispatcher events.Dispatcher, logger *zap.Logger) *PestsHandler {
	return &PestsHandler{
		repo:     repo,
		notifier: newChangeNotifier(dispatcher, logger, domain.ResourcePests),
	}
}

// List handles GET /api/pests.
func (h *PestsHandler) List(c *fiber.Ctx) error {
	pests, err := h.repo.List(c.UserContext())
	if err != nil {
		return storeError(err, pestName)
	}
	return c.JSON(dto.List(lo.Map(pests, func(p domain.Pest, _ int) dto.PestResponse {
		return dto.NewPestResponse(p)
	})))
}

// Get handles GET /api/pests/:id.
func (h *PestsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	pest, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storeError(err, pestName)
	}
	return c.JSON(dto.OK(dto.NewPestResponse(*pest)))
}

// Create handles POST /api/pests.
func (h *PestsHandler) Create(c *fiber.Ctx) error {
	raw, err := decodeBody(c)
	if err != nil {
		return err
	}
	if err := requireFields(raw, pestRequired...); err != nil {
		return err
	}
	var req dto.PestRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Description == nil || req.RemedyDescription == nil {
		return apperrors.NewValidationError(requiredMessage(pestRequired), nil)
	}

	pest := &domain.Pest{Description: *req.Description, RemedyDescription: *req.RemedyDescription}
	if err := h.repo.Create(c.UserContext(), pest); err != nil {
		return storeError(err, pestName)
	}
	h.notifier.notify(c, events.EventResourceCreated, pest.ID, dto.NewPestResponse(*pest))

	return c.Status(http.StatusCreated).JSON(dto.OK(createdData(raw, "pest_ID", pest.ID)))
}

// Update handles PUT /api/pests/:id.
func (h *PestsHandler) Update(c *fiber.Ctx) error {
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
	var req dto.PestRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.repo.Update(c.UserContext(), id, req.Patch()); err != nil {
		return storeError(err, pestName)
	}
	h.notifier.notify(c, events.EventResourceUpdated, id, raw)

	return c.JSON(dto.Message(updatedMessage(pestName)))
}

// Delete handles DELETE /api/pests/:id.
func (h *PestsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return storeError(err, pestName)
	}
	h.notifier.notify(c, events.EventResourceDeleted, id, nil)

	return c.JSON(dto.Message(deletedMessage(pestName, id)))
}
