package viewmodels

import "github.com/adampresley/residencias/pkg/models"

type ContactoPage struct {
	BaseViewModel
	Request    models.ContactRequest
	Submitted  bool
	Residences []*models.Residence
}
