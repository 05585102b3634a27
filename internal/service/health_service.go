package service

import (
	"context"
	"time"

	"wiccapedia-api/internal/dto"

	"gorm.io/gorm"
)

const (
	ServiceName    = "wiccapedia-api"
	ServiceVersion = "1.0.0"
)

type IHealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
	Info() *dto.ApiInfoResponse
}

type healthService struct {
	db *gorm.DB
}

func NewHealthService(db *gorm.DB) IHealthService {
	return &healthService{db: db}
}

// Check always answers; a failed ping only flips the database field.
func (s *healthService) Check(ctx context.Context) *dto.HealthResponse {
	status := "healthy"
	database := "connected"

	sqlDB, err := s.db.DB()
	if err == nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err = sqlDB.PingContext(pingCtx)
		cancel()
	}
	if err != nil {
		status = "degraded"
		database = "unreachable"
	}

	return &dto.HealthResponse{
		Status:    status,
		Service:   ServiceName,
		Version:   ServiceVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  database,
	}
}

func (s *healthService) Info() *dto.ApiInfoResponse {
	return &dto.ApiInfoResponse{
		Name:        ServiceName,
		Description: "Grimoire backend: users, notebooks, covers, decorations and the gem catalog",
		Version:     ServiceVersion,
		Endpoints: map[string]string{
			"health":        "GET /health",
			"users":         "POST /api/users, GET /api/users/:id",
			"notebooks":     "POST /api/notebooks, GET /api/notebooks/:id",
			"covers":        "POST /api/covers, GET /api/covers/:id, GET /api/covers/default",
			"decorations":   "POST /api/decorations, GET /api/decorations/:id",
			"gems":          "GET /api/gems, POST /api/gems, GET|PUT|DELETE /api/gems/:id",
			"gems_search":   "GET /api/gems/search?q=",
			"gems_metadata": "GET /api/gems/metadata/{colors|categories|formulas}",
			"gem_images":    "GET /images/:file",
		},
	}
}
