package dto

type UploadResponse struct {
	Url      string `json:"url"`
	PublicId string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
}
