package worker

import (
	"github.com/michaeljohnaustria/my-garden/internal/service"
)

// StartChangeFeedWorker registers change feed handlers.
func StartChangeFeedWorker(changeFeed *service.ChangeFeedService) {
	if changeFeed == nil {
		return
	}
	changeFeed.RegisterHandlers()
}
