package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/storage"
	"github.com/splitsphere/backend/internal/util"
)

// GroupService manages groups and their membership.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group with the creator as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, name, creatorUserID string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", util.ErrInvalidInput)
	}
	if _, err := loadUser(ctx, s.store, creatorUserID); err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:      name,
		CreatorID: creatorUserID,
		Members:   []string{creatorUserID},
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	slog.Info("Group created", "group_id", group.ID, "name", name, "creator_id", creatorUserID)

	return group, nil
}

// JoinGroup adds the user to the group's member set. Closed groups and
// duplicate joins are rejected.
func (s *GroupService) JoinGroup(ctx context.Context, groupID, userID string) (*models.Group, error) {
	if _, err := loadUser(ctx, s.store, userID); err != nil {
		return nil, err
	}

	group, err := loadGroup(ctx, s.store, groupID)
	if err != nil {
		return nil, err
	}
	if group.Closed {
		return nil, fmt.Errorf("%w: cannot join group %s", util.ErrGroupClosed, groupID)
	}
	if group.HasMember(userID) {
		return nil, fmt.Errorf("%w: %s is already a member of group %s", util.ErrDuplicate, userID, groupID)
	}

	if err := s.store.AddGroupMember(ctx, groupID, userID); err != nil {
		return nil, fmt.Errorf("failed to add group member: %w", err)
	}
	group.Members = append(group.Members, userID)

	slog.Info("User joined group", "group_id", groupID, "user_id", userID)

	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return loadGroup(ctx, s.store, groupID)
}

// ListUserGroups retrieves all groups the user belongs to.
func (s *GroupService) ListUserGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	if _, err := loadUser(ctx, s.store, userID); err != nil {
		return nil, err
	}
	return s.store.ListGroupsByMember(ctx, userID)
}

// CloseGroup marks a group closed so it no longer accepts settlements or
// new members. Only the creator may close a group.
func (s *GroupService) CloseGroup(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := loadGroup(ctx, s.store, groupID)
	if err != nil {
		return nil, err
	}
	if group.CreatorID != userID {
		return nil, fmt.Errorf("%w: only the creator may close group %s", util.ErrForbidden, groupID)
	}
	if group.Closed {
		return group, nil
	}

	if err := s.store.CloseGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("failed to close group: %w", err)
	}
	group.Closed = true

	slog.Info("Group closed", "group_id", groupID, "user_id", userID)

	return group, nil
}
