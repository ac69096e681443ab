package domain

// UploadVideoReq usecase upload video request
type UploadVideoReq struct {
	Title       string     `json:"title" validate:"required,notblank"`
	Description string     `json:"description" validate:"required,notblank"`
	Video       *MediaFile `json:"video" validate:"required"`
	Thumbnail   *MediaFile `json:"thumbnail" validate:"required"`
}

// UpdateVideoReq usecase update video request, empty / nil fields keep the stored value
type UpdateVideoReq struct {
	Title       string
	Description string
	Video       *MediaFile
	Thumbnail   *MediaFile
}

// CommentReq usecase comment request
type CommentReq struct {
	Text string `json:"text" form:"text" validate:"required,notblank"`
}
