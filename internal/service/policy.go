package service

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

// AccessPolicy holds every role/membership/ownership decision in one
// place, instead of re-deriving role checks per endpoint.
type AccessPolicy struct {
	memberships MembershipRepository
}

func NewAccessPolicy(memberships MembershipRepository) *AccessPolicy {
	return &AccessPolicy{memberships: memberships}
}

// RequireAdmin rejects any non-ADMIN requester.
func (p *AccessPolicy) RequireAdmin(identity domain.Identity) error {
	if !identity.IsAdmin() {
		return fmt.Errorf("%w", my_errors.ErrForbidden)
	}
	return nil
}

// CanReadTeamTasks allows admins unconditionally; members must belong to
// the team. Callers check team existence first.
func (p *AccessPolicy) CanReadTeamTasks(ctx context.Context, teamID string, identity domain.Identity) error {
	if identity.IsAdmin() {
		return nil
	}

	isMember, err := p.memberships.IsMember(ctx, teamID, identity.UserID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return fmt.Errorf("not a member of this team: %w", my_errors.ErrForbidden)
	}
	return nil
}

// CanMutateTask allows admins to mutate any task; members only tasks
// assigned to them. Callers check task existence first.
func (p *AccessPolicy) CanMutateTask(task *domain.Task, identity domain.Identity) error {
	if identity.IsAdmin() {
		return nil
	}

	if task.AssignedTo != identity.UserID {
		return fmt.Errorf("no permission to modify this task: %w", my_errors.ErrForbidden)
	}
	return nil
}
