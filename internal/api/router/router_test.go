package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"video_sharing_service/internal/api/handlers"
	"video_sharing_service/internal/api/router"
	channelapp "video_sharing_service/internal/channel/app"
	videoapp "video_sharing_service/internal/video/app"
	"video_sharing_service/pkg/logger"
	"video_sharing_service/pkg/metrics"
	"video_sharing_service/pkg/middlewares"
	"video_sharing_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("router-test-secret")

const testIssuer = "video_service"

type testServer struct {
	app      *fiber.App
	channels *memChannels
	videos   *memVideos
	media    *memMedia
}

func newTestServer() *testServer {
	logger.SetNewNop()
	s := &testServer{
		app:      fiber.New(),
		channels: newMemChannels(),
		videos:   newMemVideos(),
		media:    newMemMedia(),
	}
	users := memUsers{"user-a": "alice", "user-b": "bob"}
	m := metrics.New()

	channelUC := channelapp.NewChannelUseCase(s.channels, s.videos, users, m)
	videoUC := videoapp.NewVideoUseCase(s.videos, s.media, channelUC, users, nil, m)

	s.app.Use(m.Middleware())
	router.RegisterRoutes(s.app, testSecret, testIssuer,
		handlers.NewChannelHandler(channelUC),
		handlers.NewVideoHandler(videoUC),
		m,
	)
	return s
}

func bearer(userID string) string {
	tok, err := token.GenerateJWT(userID, "", testIssuer, testSecret, time.Hour)
	if err != nil {
		panic(err)
	}
	return tok
}

// call send a request as userID ("" for anonymous), body is JSON or a prepared *multipart request body
func (s *testServer) call(method, path, userID string, body interface{}) (int, []byte, error) {
	var (
		r           io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case *multipartForm:
		r, contentType = b.buf, b.contentType
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return 0, nil, err
		}
		r, contentType = bytes.NewReader(raw), fiber.MIMEApplicationJSON
	}

	req := httptest.NewRequest(method, path, r)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	if userID != "" {
		req.Header.Set(middlewares.HeaderToken, bearer(userID))
	}

	resp, err := s.app.Test(req, -1)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	return resp.StatusCode, raw, err
}

type multipartForm struct {
	buf         *bytes.Buffer
	contentType string
}

func newUploadForm(title, description string, files map[string]string) (*multipartForm, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if title != "" {
		if err := w.WriteField("title", title); err != nil {
			return nil, err
		}
	}
	if description != "" {
		if err := w.WriteField("description", description); err != nil {
			return nil, err
		}
	}
	for field, name := range files {
		fw, err := w.CreateFormFile(field, name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write([]byte("content of " + name)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &multipartForm{buf: buf, contentType: w.FormDataContentType()}, nil
}

func TestRoutesRequireToken(t *testing.T) {
	s := newTestServer()

	for _, path := range []string{"/channel/current-user", "/video/get"} {
		status, raw, err := s.call(http.MethodGet, path, "", nil)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, string(raw))
	}

	req := httptest.NewRequest(http.MethodGet, "/video/get", nil)
	req.Header.Set(middlewares.HeaderToken, "not-a-jwt")
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	otherIssuer, err := token.GenerateJWT("user-a", "", "some-other-issuer", testSecret, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/video/get", nil)
	req.Header.Set(middlewares.HeaderToken, otherIssuer)
	resp, err = s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer()

	status, raw, err := s.call(http.MethodGet, "/", "", nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "video service start!", string(raw))

	_, _, err = s.call(http.MethodGet, "/video/get", "user-a", nil)
	require.NoError(t, err)

	status, raw, err = s.call(http.MethodGet, "/metrics", "", nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), "video_service_request_duration_seconds")
}

// 測試刪除影片後頻道不再引用它
func TestDeleteDetachesFromChannel(t *testing.T) {
	s := newTestServer()

	status, raw, err := s.call(http.MethodPost, "/channel/create", "user-a", map[string]string{"name": "A's Channel", "description": "d"})
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	form, err := newUploadForm("Intro", "first", map[string]string{"video": "X.mp4", "thumbnail": "Y.png"})
	require.NoError(t, err)
	status, raw, err = s.call(http.MethodPost, "/video/upload", "user-a", form)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	assert.Equal(t, 2, s.media.count())

	var uploaded struct {
		VideoID string `json:"videoId"`
	}
	require.NoError(t, json.Unmarshal(raw, &uploaded))

	owned, err := s.channels.FindLatestByOwner(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, owned.Videos, 1)
	assert.Equal(t, uploaded.VideoID, owned.Videos[0].Hex())

	status, _, err = s.call(http.MethodDelete, "/video/delete/"+uploaded.VideoID, "user-a", nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)

	status, _, err = s.call(http.MethodGet, "/video/get/"+uploaded.VideoID, "user-a", nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, raw, err = s.call(http.MethodGet, "/channel/current-user", "user-a", nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	var ch struct {
		Videos []interface{} `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(raw, &ch))
	assert.Empty(t, ch.Videos)
	assert.Equal(t, 0, s.media.count())

	// 文件本身的 videos 也要移除, 不只是投影結果
	owned, err = s.channels.FindByID(context.Background(), owned.ID)
	require.NoError(t, err)
	assert.Empty(t, owned.Videos)
}

func TestUploadWithoutChannelCreatesNothing(t *testing.T) {
	s := newTestServer()

	form, err := newUploadForm("Intro", "first", map[string]string{"video": "X.mp4", "thumbnail": "Y.png"})
	require.NoError(t, err)
	status, raw, err := s.call(http.MethodPost, "/video/upload", "user-z", form)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"You need to create a channel first"}`, string(raw))

	_, raw, err = s.call(http.MethodGet, "/video/get", "user-z", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
	assert.Equal(t, 0, s.media.count())
}

// 測試留言順序與作者
func TestCommentsKeepOrder(t *testing.T) {
	s := newTestServer()

	_, _, err := s.call(http.MethodPost, "/channel/create", "user-a", map[string]string{"name": "A", "description": "d"})
	require.NoError(t, err)
	form, err := newUploadForm("Intro", "first", map[string]string{"video": "X.mp4", "thumbnail": "Y.png"})
	require.NoError(t, err)
	_, raw, err := s.call(http.MethodPost, "/video/upload", "user-a", form)
	require.NoError(t, err)
	var uploaded struct {
		VideoID string `json:"videoId"`
	}
	require.NoError(t, json.Unmarshal(raw, &uploaded))

	for _, c := range []struct{ user, text string }{{"user-b", "first!"}, {"user-a", "thanks"}, {"user-x", "hm"}} {
		status, _, err := s.call(http.MethodPost, "/video/comment/"+uploaded.VideoID, c.user, map[string]string{"text": c.text})
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, status)
	}

	status, _, err := s.call(http.MethodPost, "/video/comment/"+uploaded.VideoID, "user-b", map[string]string{"text": ""})
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, status)

	_, raw, err = s.call(http.MethodGet, "/video/get/"+uploaded.VideoID, "user-b", nil)
	require.NoError(t, err)

	var view struct {
		Comments []struct {
			User *struct {
				Name string `json:"name"`
			} `json:"user"`
			Text string `json:"text"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Len(t, view.Comments, 3)
	assert.Equal(t, "first!", view.Comments[0].Text)
	assert.Equal(t, "bob", view.Comments[0].User.Name)
	assert.Equal(t, "alice", view.Comments[1].User.Name)
	assert.Nil(t, view.Comments[2].User)
}
