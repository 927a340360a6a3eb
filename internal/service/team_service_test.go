package service

import (
	"context"
	"testing"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_RemoveMembers(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*TeamService, *fakeTeamRepo, *domain.Team, *domain.User) {
		userRepo := newFakeUserRepo()
		teamRepo := newFakeTeamRepo()
		svc := NewTeamService(teamRepo, userRepo)

		user := &domain.User{Name: "Dana", Email: "dana@example.com", Role: domain.RoleMember}
		require.NoError(t, userRepo.CreateUser(ctx, user))

		team := &domain.Team{Name: "Core"}
		require.NoError(t, teamRepo.CreateTeam(ctx, team))
		require.NoError(t, teamRepo.AddMembers(ctx, team.ID, []string{user.ID}))

		return svc, teamRepo, team, user
	}

	t.Run("removes existing users", func(t *testing.T) {
		svc, teamRepo, team, user := setup(t)

		require.NoError(t, svc.RemoveMembers(ctx, team.ID, []string{user.ID}))

		isMember, err := teamRepo.IsMember(ctx, team.ID, user.ID)
		require.NoError(t, err)
		assert.False(t, isMember)
	})

	t.Run("one missing id fails the whole operation", func(t *testing.T) {
		svc, teamRepo, team, user := setup(t)

		err := svc.RemoveMembers(ctx, team.ID, []string{user.ID, "ghost-id"})
		require.Error(t, err)

		missing, ok := my_errors.AsMissingUsers(err)
		require.True(t, ok)
		assert.Equal(t, []string{"ghost-id"}, missing.UserIDs)

		// Nothing was removed
		assert.Zero(t, teamRepo.removeCalls)
		isMember, err := teamRepo.IsMember(ctx, team.ID, user.ID)
		require.NoError(t, err)
		assert.True(t, isMember)
	})

	t.Run("missing team reported first", func(t *testing.T) {
		svc, _, _, user := setup(t)

		err := svc.RemoveMembers(ctx, "missing-team", []string{user.ID})
		assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
	})
}

func TestTeamService_AddMembers(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	teamRepo := newFakeTeamRepo()
	svc := NewTeamService(teamRepo, userRepo)

	user := &domain.User{Name: "Eve", Email: "eve@example.com", Role: domain.RoleMember}
	require.NoError(t, userRepo.CreateUser(ctx, user))

	team := &domain.Team{Name: "Infra"}
	require.NoError(t, teamRepo.CreateTeam(ctx, team))

	t.Run("adds members to an existing team", func(t *testing.T) {
		require.NoError(t, svc.AddMembers(ctx, team.ID, []string{user.ID}))

		isMember, err := teamRepo.IsMember(ctx, team.ID, user.ID)
		require.NoError(t, err)
		assert.True(t, isMember)
	})

	t.Run("adding again is idempotent", func(t *testing.T) {
		require.NoError(t, svc.AddMembers(ctx, team.ID, []string{user.ID}))
	})

	t.Run("missing team fails", func(t *testing.T) {
		err := svc.AddMembers(ctx, "missing-team", []string{user.ID})
		assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
	})
}

func TestTeamService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	teamRepo := newFakeTeamRepo()
	svc := NewTeamService(teamRepo, userRepo)

	team, err := svc.CreateTeam(ctx, "Design", "makes things pretty")
	require.NoError(t, err)
	assert.NotEmpty(t, team.ID)

	updated, err := svc.UpdateTeam(ctx, team.ID, "Design Systems", "makes systems pretty")
	require.NoError(t, err)
	assert.Equal(t, "Design Systems", updated.Name)

	_, err = svc.UpdateTeam(ctx, "missing-team", "X", "")
	assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)

	_, err = svc.CreateTeam(ctx, "", "")
	assert.ErrorIs(t, err, my_errors.ErrEmptyField)
}
