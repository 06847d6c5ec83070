// Package upload issues presigned upload grants and tracks upload lifecycle records.
package upload

import "time"

// Request is the upload descriptor clients POST to request a grant.
// All four fields are required.
type Request struct {
	FileName   string `json:"fileName"   example:"report.png"`
	FileType   string `json:"fileType"   example:"image/png"`
	FileSize   int64  `json:"fileSize"   example:"1000"`
	FolderName string `json:"folderName" example:"services"`
}

// Grant authorizes exactly one PUT of the declared content type to Key,
// valid until the presigned URL expires. Grants are minted on demand and
// never stored.
type Grant struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	UploadID  string `json:"uploadId"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

// Upload is the lifecycle record kept for each issued grant.
type Upload struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"fileSize"`
	Folder      string    `json:"folderName"`
	ObjectKey   string    `json:"key"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Upload status values.
const (
	StatusPending  = "pending"  // grant issued, transfer not confirmed
	StatusUploaded = "uploaded" // object confirmed present in storage
	StatusRejected = "rejected" // object disagreed with the descriptor
)
