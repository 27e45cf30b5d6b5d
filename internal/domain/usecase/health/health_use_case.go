package health

import (
	"context"

	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/model"
	"weather-app/pkg/log"
)

// UseCase reports service liveness and the reachability of the location store.
type UseCase interface {
	Check(ctx context.Context) model.HealthResponse
}

type healthUseCase struct {
	store store.LocationStore
}

// NewHealthUseCase creates the health use case over the location store.
func NewHealthUseCase(locationStore store.LocationStore) UseCase {
	return &healthUseCase{store: locationStore}
}

// Check pings the store. The service stays UP when the store is down because
// the session keeps serving from memory; the component status reflects it.
func (h *healthUseCase) Check(ctx context.Context) model.HealthResponse {
	storeComponent := model.ComponentHealthStatus{Status: model.StatusUp}
	if err := h.store.Ping(ctx); err != nil {
		log.Warnf("Location store ping failed: %v", err)
		storeComponent.Status = model.StatusDown
		storeComponent.Details = map[string]string{"error": err.Error()}
	}

	return model.HealthResponse{
		Status: model.StatusUp,
		Store:  storeComponent,
	}
}
