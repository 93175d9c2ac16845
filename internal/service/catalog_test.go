package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports/mocks"
)

func TestCatalogService_CreateSpecialist_Success(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().CreateSpecialist(mock.Anything, mock.MatchedBy(func(s *domain.Specialist) bool {
		return s.Name == "Dr. Lim" && s.IsActive
	})).Return(nil)

	sp, err := svc.CreateSpecialist(context.Background(), adminActor, domain.CreateSpecialistInput{
		Name:           "Dr. Lim",
		Title:          "Consultant",
		Specialization: "Cardiology",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, sp.ID)
}

func TestCatalogService_CreateSpecialist_NonAdminDenied(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	_, err := svc.CreateSpecialist(context.Background(), normalActor, domain.CreateSpecialistInput{
		Name: "Dr. Lim", Title: "Consultant", Specialization: "Cardiology",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCatalogService_CreateSpecialist_BioTooLong(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	_, err := svc.CreateSpecialist(context.Background(), adminActor, domain.CreateSpecialistInput{
		Name:           "Dr. Lim",
		Title:          "Consultant",
		Specialization: "Cardiology",
		Bio:            strings.Repeat("x", 501),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_ListSpecialists_PublicSeesActiveOnly(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().ListSpecialists(mock.Anything, true).Return([]*domain.Specialist{{ID: "s1", IsActive: true}}, nil)

	specialists, err := svc.ListSpecialists(context.Background(), normalActor)

	require.NoError(t, err)
	assert.Len(t, specialists, 1)
}

func TestCatalogService_CreateHealthFact_RequiresContent(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	_, err := svc.CreateHealthFact(context.Background(), adminActor, domain.CreateHealthFactInput{Title: "Hydration"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_UpdateHealthFact_TogglesFeatured(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	featured := true
	repo.EXPECT().GetHealthFact(mock.Anything, "f1").Return(&domain.HealthFact{ID: "f1", Title: "Hydration", Content: "Drink water."}, nil)
	repo.EXPECT().UpdateHealthFact(mock.Anything, mock.MatchedBy(func(f *domain.HealthFact) bool {
		return f.IsFeatured
	})).Return(nil)

	fact, err := svc.UpdateHealthFact(context.Background(), adminActor, "f1", domain.UpdateHealthFactInput{IsFeatured: &featured})

	require.NoError(t, err)
	assert.True(t, fact.IsFeatured)
}

func TestCatalogService_DeleteHealthFact_NonAdminDenied(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	err := svc.DeleteHealthFact(context.Background(), normalActor, "f1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
