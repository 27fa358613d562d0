package dto

type MediaTempMetadata struct {
	MimeType  string `json:"mime_type"`
	CreatedAt int64  `json:"created_at"`
}
