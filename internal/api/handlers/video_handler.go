package handlers

import (
	"context"
	"io"
	"mime/multipart"

	"video_sharing_service/internal/projector"
	videodomain "video_sharing_service/internal/video/domain"
	"video_sharing_service/pkg/logger"
	"video_sharing_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// multipart field names
const (
	FieldVideo     = "video"
	FieldThumbnail = "thumbnail"
)

// VideoService video operations the HTTP layer needs
type VideoService interface {
	Upload(ctx context.Context, callerID string, req videodomain.UploadVideoReq) (*videodomain.VideoDetails, error)
	List(ctx context.Context) ([]videodomain.VideoDetails, error)
	GetByID(ctx context.Context, videoID string) (*videodomain.VideoDetails, error)
	Update(ctx context.Context, videoID string, req videodomain.UpdateVideoReq) (*videodomain.VideoDetails, error)
	Delete(ctx context.Context, videoID string) error
	React(ctx context.Context, videoID, callerID string, kind videodomain.ReactionKind) error
	Comment(ctx context.Context, videoID, callerID string, req videodomain.CommentReq) error
}

// VideoHandler 處理影片相關的 HTTP 請求
type VideoHandler struct {
	Videos VideoService
}

// NewVideoHandler 建立 VideoHandler
func NewVideoHandler(videos VideoService) *VideoHandler {
	return &VideoHandler{Videos: videos}
}

// videoFields text fields of the upload / update form
type videoFields struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// Upload 上傳影片
// @Summary 上傳影片與縮圖
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param title formData string true "title"
// @Param description formData string true "description"
// @Param video formData file true "video file"
// @Param thumbnail formData file true "thumbnail image"
// @Success 201 {object} projector.VideoSummary
// @Failure 400 {object} map[string]string
// @Router /video/upload [post]
func (h *VideoHandler) Upload(c *fiber.Ctx) error {
	var fields videoFields
	if err := parseFields(c, &fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	files, err := openFiles(c)
	if err != nil {
		return respondError(c, err)
	}
	defer files.Close()

	d, err := h.Videos.Upload(c.UserContext(), middlewares.CallerID(c), videodomain.UploadVideoReq{
		Title:       fields.Title,
		Description: fields.Description,
		Video:       files.video,
		Thumbnail:   files.thumbnail,
	})
	if err != nil {
		return respondError(c, err)
	}

	logger.Log.Info("video uploaded", zap.String("video", d.Video.ID.Hex()), zap.String("owner", d.Video.Owner))
	return c.Status(fiber.StatusCreated).JSON(projector.Summary(d))
}

// List 取得所有影片
// @Summary 影片列表
// @Tags Videos
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Success 200 {array} projector.VideoSummary
// @Router /video/get [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
	list, err := h.Videos.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projector.Summaries(list))
}

// GetByID 取得影片
// @Summary 取得影片
// @Tags Videos
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param videoId path string true "video id"
// @Success 200 {object} projector.VideoView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /video/get/{videoId} [get]
func (h *VideoHandler) GetByID(c *fiber.Ctx) error {
	d, err := h.Videos.GetByID(c.UserContext(), c.Params("videoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projector.Video(d))
}

// Update 更新影片
// @Summary 更新影片
// @Description 只替換有帶的欄位，舊媒體檔會先刪除再上傳新的
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param videoId path string true "video id"
// @Param title formData string false "title"
// @Param description formData string false "description"
// @Param video formData file false "video file"
// @Param thumbnail formData file false "thumbnail image"
// @Success 200 {object} projector.UpdatedVideoView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /video/update-video/{videoId} [put]
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	var fields videoFields
	if err := parseFields(c, &fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	files, err := openFiles(c)
	if err != nil {
		return respondError(c, err)
	}
	defer files.Close()

	d, err := h.Videos.Update(c.UserContext(), c.Params("videoId"), videodomain.UpdateVideoReq{
		Title:       fields.Title,
		Description: fields.Description,
		Video:       files.video,
		Thumbnail:   files.thumbnail,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projector.UpdatedVideo(d))
}

// Delete 刪除影片
// @Summary 刪除影片
// @Tags Videos
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param videoId path string true "video id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /video/delete/{videoId} [delete]
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	if err := h.Videos.Delete(c.UserContext(), c.Params("videoId")); err != nil {
		return respondError(c, err)
	}
	return message(c, "Video deleted successfully")
}

// Like 按讚
// @Summary 按讚
// @Tags Videos
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param videoId path string true "video id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /video/like/{videoId} [post]
func (h *VideoHandler) Like(c *fiber.Ctx) error {
	if err := h.Videos.React(c.UserContext(), c.Params("videoId"), middlewares.CallerID(c), videodomain.ReactionLike); err != nil {
		return respondError(c, err)
	}
	return message(c, "Video liked successfully")
}

// Dislike 倒讚
// @Summary 倒讚
// @Tags Videos
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param videoId path string true "video id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /video/dislike/{videoId} [post]
func (h *VideoHandler) Dislike(c *fiber.Ctx) error {
	if err := h.Videos.React(c.UserContext(), c.Params("videoId"), middlewares.CallerID(c), videodomain.ReactionDislike); err != nil {
		return respondError(c, err)
	}
	return message(c, "Video disliked successfully")
}

// Comment 留言
// @Summary 新增留言
// @Tags Videos
// @Accept json
// @Produce json
// @Param x-auth-token header string true "JWT"
// @Param videoId path string true "video id"
// @Param request body videodomain.CommentReq true "留言內容"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /video/comment/{videoId} [post]
func (h *VideoHandler) Comment(c *fiber.Ctx) error {
	var req videodomain.CommentReq
	if err := parseFields(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if err := h.Videos.Comment(c.UserContext(), c.Params("videoId"), middlewares.CallerID(c), req); err != nil {
		return respondError(c, err)
	}
	return message(c, "Comment added successfully")
}

// parseFields body parser that treats an empty body as no fields
func parseFields(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

// uploadFiles opened multipart files, nil when the field is absent
type uploadFiles struct {
	video     *videodomain.MediaFile
	thumbnail *videodomain.MediaFile
	closers   []io.Closer
}

func (f *uploadFiles) Close() {
	for _, cl := range f.closers {
		_ = cl.Close()
	}
}

func openFiles(c *fiber.Ctx) (*uploadFiles, error) {
	files := &uploadFiles{}
	form, err := c.MultipartForm()
	if err != nil {
		// not a multipart request: no files
		return files, nil
	}

	open := func(field string) (*videodomain.MediaFile, error) {
		headers := form.File[field]
		if len(headers) == 0 {
			return nil, nil
		}
		return files.open(headers[0])
	}

	if files.video, err = open(FieldVideo); err != nil {
		files.Close()
		return nil, err
	}
	if files.thumbnail, err = open(FieldThumbnail); err != nil {
		files.Close()
		return nil, err
	}
	return files, nil
}

func (f *uploadFiles) open(fh *multipart.FileHeader) (*videodomain.MediaFile, error) {
	file, err := fh.Open()
	if err != nil {
		logger.Log.Error("open multipart file failed", zap.String("file", fh.Filename), zap.Error(err))
		return nil, err
	}
	f.closers = append(f.closers, file)

	return &videodomain.MediaFile{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Reader:      file,
	}, nil
}
