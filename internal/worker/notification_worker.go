package worker

import (
	"github.com/spec-kit/resty-service/internal/events"
	"github.com/spec-kit/resty-service/internal/service"
	"github.com/spec-kit/resty-service/internal/store"
)

// StartNotificationWorker registers notification handlers and starts
// forwarding store changes to the dispatcher. The returned func stops it.
func StartNotificationWorker(s *store.Store, dispatcher events.Dispatcher, notificationService *service.NotificationService) func() {
	if notificationService == nil || dispatcher == nil {
		return func() {}
	}
	notificationService.RegisterHandlers()
	return events.Bridge(s, dispatcher)
}
