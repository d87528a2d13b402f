package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dormhub/dormhub-api/internal/dto"
	"github.com/dormhub/dormhub-api/internal/models"
	appErrors "github.com/dormhub/dormhub-api/pkg/errors"
)

type roomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	Available(ctx context.Context) ([]models.Room, error)
	ListWithDetails(ctx context.Context) ([]dto.RoomWithDetails, error)
}

type buildingRepository interface {
	List(ctx context.Context) ([]models.Building, error)
}

// RoomService exposes the read-side room and building views.
type RoomService struct {
	rooms     roomRepository
	buildings buildingRepository
	logger    *zap.Logger
}

// NewRoomService constructs the room service.
func NewRoomService(rooms roomRepository, buildings buildingRepository, logger *zap.Logger) *RoomService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomService{rooms: rooms, buildings: buildings, logger: logger}
}

// ListWithDetails returns every room with resolved display names.
func (s *RoomService) ListWithDetails(ctx context.Context) ([]dto.RoomWithDetails, error) {
	rooms, err := s.rooms.ListWithDetails(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	if rooms == nil {
		rooms = []dto.RoomWithDetails{}
	}
	return rooms, nil
}

// Available returns rooms with a free place.
func (s *RoomService) Available(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.rooms.Available(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list available rooms")
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

// Buildings returns the static building reference data.
func (s *RoomService) Buildings(ctx context.Context) ([]models.Building, error) {
	buildings, err := s.buildings.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list buildings")
	}
	return buildings, nil
}
