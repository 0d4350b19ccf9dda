package entities

import "time"

// Document is a metadata record pointing at an externally stored file.
//
// Storage model (DynamoDB):
//   - PK: package_id
//   - SK: name + "#" + zero-padded version
//
// Documents are append-only: a re-upload under the same name creates a new
// record with the next version instead of mutating the prior one. A document
// belongs to exactly one package and is never reassigned.
type Document struct {
	ID         string    `json:"id"`
	PackageID  string    `json:"package_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Version    int       `json:"version"`
	UploaderID string    `json:"uploader_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}
