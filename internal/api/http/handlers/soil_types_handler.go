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

const soilTypeName = "Soil type"

var soilTypeRequired = []string{"soil_type_Description"}

// SoilTypesHandler serves /api/soil_types.
type SoilTypesHandler struct {
	repo     repository.SoilTypeRepository
	notifier changeNotifier
}

func NewSoilTypesHandler(repo repository.SoilTypeRepository, dispatcher events.Dispatcher, logger *zap.Logger) *SoilTypesHandler {
	return &SoilTypesHandler{
		repo:     repo,
		notifier: newChangeNotifier(dispatcher, logger, domain.ResourceSoilTypes),
	}
}

func (h *SoilTypesHandler) List(c *fiber.Ctx) error {
	soilTypes, err := h.repo.List(c.UserContext())
	if err != nil {
		return storeError(err, soilTypeName)
	}
	return c.JSON(dto.List(lo.Map(soilTypes, func(s domain.SoilType, _ int) dto.SoilTypeResponse {
		return dto.NewSoilTypeResponse(s)
	})))
}

func (h *SoilTypesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	soilType, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storeError(err, soilTypeName)
	}
	return c.JSON(dto.OK(dto.NewSoilTypeResponse(*soilType)))
}

func (h *SoilTypesHandler) Create(c *fiber.Ctx) error {
	raw, err := decodeBody(c)
	if err != nil {
		return err
	}
	if err := requireFields(raw, soilTypeRequired...); err != nil {
		return err
	}
	var req dto.SoilTypeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Description == nil {
		return apperrors.NewValidationError(requiredMessage(soilTypeRequired), nil)
	}

	soilType := &domain.SoilType{Description: *req.Description}
	if err := h.repo.Create(c.UserContext(), soilType); err != nil {
		return storeError(err, soilTypeName)
	}
	h.notifier.notify(c, events.EventResourceCreated, soilType.ID, dto.NewSoilTypeResponse(*soilType))

	return c.Status(http.StatusCreated).JSON(dto.OK(createdData(raw, "soil_type_ID", soilType.ID)))
}

func (h *SoilTypesHandler) Update(c *fiber.Ctx) error {
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
	var req dto.SoilTypeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.repo.Update(c.UserContext(), id, req.Patch()); err != nil {
		return storeError(err, soilTypeName)
	}
	h.notifier.notify(c, events.EventResourceUpdated, id, raw)

	return c.JSON(dto.Message(updatedMessage(soilTypeName)))
}

func (h *SoilTypesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return storeError(err, soilTypeName)
	}
	h.notifier.notify(c, events.EventResourceDeleted, id, nil)

	return c.JSON(dto.Message(deletedMessage(soilTypeName, id)))
}
