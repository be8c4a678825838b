package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/michaeljohnaustria/my-garden/internal/auth"
	"github.com/michaeljohnaustria/my-garden/internal/domain"
	"github.com/michaeljohnaustria/my-garden/internal/events"
	apperrors "github.com/michaeljohnaustria/my-garden/pkg/util"
)

const (
	msgInvalidJSON    = "Invalid JSON payload"
	msgNoDataProvided = "No data provided"
)

// parseID reads the :id route parameter. The router constrains it to integers.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

// decodeBody parses the request body into a generic map, which keeps the
// submitted fields and their raw values. An empty or null body yields a nil map.
func decodeBody(c *fiber.Ctx) (map[string]any, error) {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var raw map[string]any
	if err := c.App().Config().JSONDecoder(body, &raw); err != nil {
		return nil, apperrors.NewValidationError(msgInvalidJSON, nil)
	}
	return raw, nil
}

// bindBody decodes the body into a typed request. Mismatched field types are
// reported as an invalid payload.
func bindBody(c *fiber.Ctx, target any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), target); err != nil {
		return apperrors.NewValidationError(msgInvalidJSON, map[string]any{"reason": err.Error()})
	}
	return nil
}

// requireFields fails when any of fields is absent or falsy in raw. The
// message always names every required field.
func requireFields(raw map[string]any, fields ...string) error {
	for _, f := range fields {
		if isFalsy(raw[f]) {
			return apperrors.NewValidationError(requiredMessage(fields), map[string]any{"field": f})
		}
	}
	return nil
}

// isFalsy treats null, false, zero, "" and empty collections as missing.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}

func requiredMessage(fields []string) string {
	switch len(fields) {
	case 0:
		return "fields are required"
	case 1:
		return fields[0] + " is required"
	case 2:
		return fields[0] + " and " + fields[1] + " are required"
	}
	return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1] + " are required"
}

// storeError turns a repository error into the response error. A missing row
// becomes "<name> not found"; anything else surfaces the driver message.
func storeError(err error, name string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(name, nil)
	}
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return apperrors.NewStoreError(err)
}

// createdData merges the generated id into the submitted fields.
func createdData(raw map[string]any, idKey string, id int64) map[string]any {
	data := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		data[k] = v
	}
	data[idKey] = id
	return data
}

func updatedMessage(name string) string {
	return name + " updated successfully"
}

func deletedMessage(name string, id int64) string {
	return fmt.Sprintf("%s with ID %d has been deleted", name, id)
}

// changeNotifier emits resource events after a committed write.
type changeNotifier struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	resource   domain.Resource
}

func newChangeNotifier(dispatcher events.Dispatcher, logger *zap.Logger, resource domain.Resource) changeNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return changeNotifier{dispatcher: dispatcher, logger: logger, resource: resource}
}

// notify never fails the request; the write has already been committed.
func (n changeNotifier) notify(c *fiber.Ctx, eventType events.EventType, id int64, payload any) {
	if n.dispatcher == nil {
		return
	}
	var actor string
	if claims, ok := auth.ClaimsFromCtx(c); ok {
		actor = claims.Username
	}
	event := events.NewEvent(eventType, n.resource, id, actor, payload)
	if err := n.dispatcher.Publish(c.UserContext(), event); err != nil {
		n.logger.Warn("change event delivery failed",
			zap.String("event_id", event.ID),
			zap.String("resource", string(n.resource)),
			zap.Int64("resource_id", id),
			zap.Error(err))
	}
}
