package dtos

// UploadResponse returns the stable HTTPS URL to embed in a listing and the
// object key usable as a deletion handle.
type UploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// ToggleFavoriteResponse reports which way the toggle went.
type ToggleFavoriteResponse struct {
	Favorited bool   `json:"favorited"`
	Message   string `json:"message"`
}
