package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports/mocks"
)

var adminActor = domain.Actor{ID: "admin", Role: domain.RoleAdmin}
var normalActor = domain.Actor{ID: "u1", Role: domain.RoleNormal}

func TestCheckupService_Create_AppliesDefaults(t *testing.T) {
	repo := mocks.NewMockCheckupRepo(t)
	svc := NewCheckupService(repo)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.CheckupType) bool {
		return c.DurationMinutes == 30 && c.MaxSlotsPerTime == 10 && c.IsActive
	})).Return(nil)

	checkup, err := svc.Create(context.Background(), adminActor, domain.CreateCheckupInput{
		Name:  "Full Body Checkup",
		Price: 250,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, checkup.ID)
	assert.Equal(t, 30, checkup.DurationMinutes)
	assert.Equal(t, 10, checkup.MaxSlotsPerTime)
}

func TestCheckupService_Create_NonAdminDenied(t *testing.T) {
	repo := mocks.NewMockCheckupRepo(t)
	svc := NewCheckupService(repo)

	_, err := svc.Create(context.Background(), normalActor, domain.CreateCheckupInput{Name: "X", Price: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCheckupService_Create_InvalidPrice(t *testing.T) {
	repo := mocks.NewMockCheckupRepo(t)
	svc := NewCheckupService(repo)

	_, err := svc.Create(context.Background(), adminActor, domain.CreateCheckupInput{Name: "X", Price: -5})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckupService_List_NonAdminSeesActiveOnly(t *testing.T) {
	repo := mocks.NewMockCheckupRepo(t)
	svc := NewCheckupService(repo)

	repo.EXPECT().List(mock.Anything, true).Return([]*domain.CheckupType{{ID: "c1", IsActive: true}}, nil)

	checkups, err := svc.List(context.Background(), normalActor)

	require.NoError(t, err)
	assert.Len(t, checkups, 1)
}

func TestCheckupService_List_AdminSeesAll(t *testing.T) {
	repo := mocks.NewMockCheckupRepo(t)
	svc := NewCheckupService(repo)

	repo.EXPECT().List(mock.Anything, false).Return([]*domain.CheckupType{
		{ID: "c1", IsActive: true},
		{ID: "c2", IsActive: false},
	}, nil)

	checkups, err := svc.List(context.Background(), adminActor)

	require.NoError(t, err)
	assert.Len(t, checkups, 2)
}

func TestCheckupService_Update_CapacityMustBePositive(t *testing.T) {
	repo := mocks.NewMockCheckupRepo(t)
	svc := NewCheckupService(repo)

	zero := 0
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.CheckupType{ID: "c1", Name: "X", Price: 10}, nil)

	_, err := svc.Update(context.Background(), adminActor, "c1", domain.UpdateCheckupInput{MaxSlotsPerTime: &zero})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckupService_Delete_Blocked(t *testing.T) {
	repo := mocks.NewMockCheckupRepo(t)
	svc := NewCheckupService(repo)

	repo.EXPECT().Delete(mock.Anything, "c1").Return(7, domain.ErrCheckupInUse)

	count, err := svc.Delete(context.Background(), adminActor, "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCheckupInUse)
	assert.Equal(t, 7, count)
}

func TestCheckupService_Delete_NonAdminDenied(t *testing.T) {
	repo := mocks.NewMockCheckupRepo(t)
	svc := NewCheckupService(repo)

	_, err := svc.Delete(context.Background(), normalActor, "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
