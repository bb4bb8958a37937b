package models

import (
	"fmt"
)

var (
	ErrResidenceNotFound = fmt.Errorf("residence not found")
)

/*
Residence is a single listing on the residencias page. Its photos live
in the gallery identified by GalleryIndex, numbered 1 through ImageCount.
*/
type Residence struct {
	BaseModel

	Name         string `db:"name"`
	Slug         string `db:"slug"`
	Location     string `db:"location"`
	Description  string `db:"description"`
	GalleryIndex int    `db:"gallery_index"`
	ImageCount   int    `db:"image_count"`
	SortOrder    int    `db:"sort_order"`
}
