package viewmodels

type HomePage struct {
	BaseViewModel
	Gallery []GalleryImage
}
