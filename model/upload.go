package model

// UploadResult is the metadata returned by the image service for one
// stored image.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Format   string `json:"format,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
}

type DeleteUploadRequest struct {
	PublicID string `json:"publicId" validate:"required"`
}
