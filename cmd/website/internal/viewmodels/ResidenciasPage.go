package viewmodels

import "github.com/adampresley/residencias/pkg/models"

type ResidenciasPage struct {
	BaseViewModel
	Residences []ResidenceListing
}

type ResidenceListing struct {
	Residence *models.Residence
	Gallery   []GalleryImage
}
