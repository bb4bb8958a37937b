package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adampresley/residencias/pkg/models"
	"github.com/gosimple/slug"
	"github.com/rfberaldo/sqlz"
)

type ResidenceServicer interface {
	Create(residence *models.Residence) error
	GetAll() ([]*models.Residence, error)
	GetBySlug(slug string) (*models.Residence, error)
}

type ResidenceServiceConfig struct {
	DB *sqlz.DB
}

type ResidenceService struct {
	db *sqlz.DB
}

func NewResidenceService(config ResidenceServiceConfig) ResidenceService {
	return ResidenceService{
		db: config.DB,
	}
}

/*
Create inserts a residence. An empty slug is derived from the name.
*/
func (s ResidenceService) Create(residence *models.Residence) error {
	var (
		err error
	)

	if strings.TrimSpace(residence.Name) == "" {
		return fmt.Errorf("%w: residence name is required", ErrInvalidArgument)
	}

	if residence.GalleryIndex <= 0 || residence.ImageCount < 0 {
		return fmt.Errorf("%w: residence '%s' has gallery %d with %d images", ErrInvalidArgument, residence.Name, residence.GalleryIndex, residence.ImageCount)
	}

	if residence.Slug == "" {
		residence.Slug = slug.Make(residence.Name)
	}

	now := time.Now().UTC()
	residence.CreatedAt = now
	residence.UpdatedAt = now

	sql := `
INSERT INTO residences (
   created_at
   , updated_at
   , name
   , slug
   , location
   , description
   , gallery_index
   , image_count
   , sort_order
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

	params := []any{
		residence.CreatedAt,
		residence.UpdatedAt,
		residence.Name,
		residence.Slug,
		residence.Location,
		residence.Description,
		residence.GalleryIndex,
		residence.ImageCount,
		residence.SortOrder,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err = s.db.Exec(ctx, sql, params...); err != nil {
		return fmt.Errorf("error inserting residence '%s': %w", residence.Slug, err)
	}

	return nil
}

func (s ResidenceService) GetAll() ([]*models.Residence, error) {
	var (
		err error
	)

	result := []*models.Residence{}

	sql := `
SELECT
   r.id
   , r.created_at
   , r.updated_at
   , r.deleted_at
   , r.name
   , r.slug
   , r.location
   , r.description
   , r.gallery_index
   , r.image_count
   , r.sort_order
FROM residences AS r
WHERE 1=1
   AND r.deleted_at IS NULL
ORDER BY r.sort_order, r.name
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.Query(ctx, &result, sql); err != nil {
		return result, fmt.Errorf("error querying for residences: %w", err)
	}

	return result, nil
}

func (s ResidenceService) GetBySlug(residenceSlug string) (*models.Residence, error) {
	var (
		err error
	)

	result := &models.Residence{}

	sql := `
SELECT
   r.id
   , r.created_at
   , r.updated_at
   , r.deleted_at
   , r.name
   , r.slug
   , r.location
   , r.description
   , r.gallery_index
   , r.image_count
   , r.sort_order
FROM residences AS r
WHERE 1=1
   AND r.deleted_at IS NULL
   AND r.slug=?
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.QueryRow(ctx, result, sql, residenceSlug); err != nil {
		if sqlz.IsNotFound(err) {
			return nil, fmt.Errorf("%w: '%s'", models.ErrResidenceNotFound, residenceSlug)
		}

		return nil, fmt.Errorf("error querying for residence '%s': %w", residenceSlug, err)
	}

	return result, nil
}
