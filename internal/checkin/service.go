package checkin

import (
	"context"
	"errors"
)

var ErrMemberOrWalkInRequired = errors.New("either a member id or a walk-in name is required, not both")

type Service interface {
	Record(ctx context.Context, userID *int, walkInName *string, staffID int) (*CheckIn, error)
	Stats(ctx context.Context, userID int) (FitnessStats, error)
	ListRecent(ctx context.Context, limit int) ([]CheckInWithNames, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Record logs a gym entry. It never rejects based on the member's access
// state: attendance logging is deliberately decoupled from access
// enforcement, since staff make the entry decision at the door.
func (s *service) Record(ctx context.Context, userID *int, walkInName *string, staffID int) (*CheckIn, error) {
	hasMember := userID != nil
	hasWalkIn := walkInName != nil && *walkInName != ""
	if hasMember == hasWalkIn {
		return nil, ErrMemberOrWalkInRequired
	}

	if !hasMember {
		userID = nil
	}
	if !hasWalkIn {
		walkInName = nil
	}

	return s.repo.Create(ctx, userID, walkInName, staffID)
}

func (s *service) Stats(ctx context.Context, userID int) (FitnessStats, error) {
	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return FitnessStats{}, err
	}
	return DeriveStats(count), nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]CheckInWithNames, error) {
	return s.repo.ListRecent(ctx, limit)
}
