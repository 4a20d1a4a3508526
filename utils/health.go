package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The first probe runs immediately so /health never serves a zero snapshot.
func StartHealthMonitor(mongoClient *mongo.Client) {
	go func() {
		ctx := context.Background()
		recordHealth(probeHealth(ctx, mongoClient))

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			recordHealth(probeHealth(ctx, mongoClient))
		}
	}()
}

func probeHealth(ctx context.Context, mongoClient *mongo.Client) HealthStatus {
	redisHealthy := false
	if CacheClient != nil {
		redisHealthy = CacheClient.Ping(ctx).Err() == nil
	}
	return HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		Redis:     redisHealthy,
		CheckedAt: time.Now(),
	}
}

func recordHealth(s HealthStatus) {
	healthMu.Lock()
	currentHealth = s
	healthMu.Unlock()
}
