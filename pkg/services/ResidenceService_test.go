package services

import (
	"errors"
	"testing"

	"github.com/adampresley/residencias/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidenceService_GetAllReturnsSeedInOrder(t *testing.T) {
	service := NewResidenceService(ResidenceServiceConfig{DB: newTestDB(t)})

	residences, err := service.GetAll()
	require.NoError(t, err)
	require.Len(t, residences, 3)

	assert.Equal(t, "residencia-los-olivos", residences[0].Slug)
	assert.Equal(t, "residencia-las-palmas", residences[1].Slug)
	assert.Equal(t, "residencia-el-roble", residences[2].Slug)
	assert.Equal(t, 2, residences[1].GalleryIndex)
	assert.Equal(t, 8, residences[1].ImageCount)
}

func TestResidenceService_GetBySlug(t *testing.T) {
	service := NewResidenceService(ResidenceServiceConfig{DB: newTestDB(t)})

	residence, err := service.GetBySlug("residencia-el-roble")
	require.NoError(t, err)
	assert.Equal(t, "Residencia El Roble", residence.Name)
	assert.Equal(t, 3, residence.GalleryIndex)

	_, err = service.GetBySlug("does-not-exist")
	assert.True(t, errors.Is(err, models.ErrResidenceNotFound))
}

func TestResidenceService_CreateDerivesSlug(t *testing.T) {
	service := NewResidenceService(ResidenceServiceConfig{DB: newTestDB(t)})

	residence := &models.Residence{
		Name:         "Casa Del Mar",
		Location:     "Bahía",
		GalleryIndex: 4,
		ImageCount:   2,
		SortOrder:    4,
	}

	require.NoError(t, service.Create(residence))
	assert.Equal(t, "casa-del-mar", residence.Slug)

	stored, err := service.GetBySlug("casa-del-mar")
	require.NoError(t, err)
	assert.Equal(t, "Bahía", stored.Location)
	assert.Equal(t, 2, stored.ImageCount)
}

func TestResidenceService_CreateRejectsInvalid(t *testing.T) {
	service := NewResidenceService(ResidenceServiceConfig{DB: newTestDB(t)})

	err := service.Create(&models.Residence{Name: "", GalleryIndex: 1})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	err = service.Create(&models.Residence{Name: "Sin Galería", GalleryIndex: 0})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestResidenceService_CreateDuplicateSlugFails(t *testing.T) {
	service := NewResidenceService(ResidenceServiceConfig{DB: newTestDB(t)})

	err := service.Create(&models.Residence{Name: "Residencia Los Olivos", GalleryIndex: 9, ImageCount: 1})
	assert.Error(t, err)
}
