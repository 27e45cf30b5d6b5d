package store

import (
	"context"
	"errors"

	"weather-app/internal/domain/model"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/redis"
)

// redisLocationStore keeps the two documents as JSON blobs under fixed keys.
// There is no versioning or migration scheme; a document that fails to decode
// is treated the same as an absent one.
type redisLocationStore struct {
	client       *redis.Client
	locationsKey string
	currentKey   string
}

// NewRedisLocationStore creates a LocationStore backed by Redis.
func NewRedisLocationStore(client *redis.Client, locationsKey, currentKey string) LocationStore {
	return &redisLocationStore{
		client:       client,
		locationsKey: locationsKey,
		currentKey:   currentKey,
	}
}

// SaveLocations replaces the persisted saved-locations list.
func (s *redisLocationStore) SaveLocations(ctx context.Context, locations []model.Location) error {
	return s.client.SetJSON(ctx, s.locationsKey, locations, 0)
}

// LoadLocations returns the persisted saved-locations list.
func (s *redisLocationStore) LoadLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := s.client.GetJSON(ctx, s.locationsKey, &locations)
	if err != nil {
		if errors.Is(err, redis.ErrMalformedValue) {
			log.Warn(msg.GetMessage("store.corrupt-document", s.locationsKey, err.Error()))
			return []model.Location{}, nil
		}
		return nil, err
	}
	if locations == nil {
		return []model.Location{}, nil
	}
	return locations, nil
}

// SaveCurrentLocation replaces the persisted current location.
func (s *redisLocationStore) SaveCurrentLocation(ctx context.Context, location model.Location) error {
	return s.client.SetJSON(ctx, s.currentKey, location, 0)
}

// LoadCurrentLocation returns the persisted current location, or nil when absent.
func (s *redisLocationStore) LoadCurrentLocation(ctx context.Context) (*model.Location, error) {
	var location *model.Location
	err := s.client.GetJSON(ctx, s.currentKey, &location)
	if err != nil {
		if errors.Is(err, redis.ErrMalformedValue) {
			log.Warn(msg.GetMessage("store.corrupt-document", s.currentKey, err.Error()))
			return nil, nil
		}
		return nil, err
	}
	return location, nil
}

// Ping reports whether Redis is reachable.
func (s *redisLocationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
