package httpapi

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/services"
	"github.com/gin-gonic/gin"
)

// multipartOverhead is the slack allowed on top of MaxUploadSize for the
// multipart envelope.
const multipartOverhead = 1 << 20

type userSvc interface {
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (*models.User, error)
}

type fileSvc interface {
	Upload(ctx context.Context, requesterID string, in services.UploadInput) (*models.File, error)
	Get(ctx context.Context, fileID, requesterID string) (*models.File, error)
	Open(ctx context.Context, fileID, requesterID string) (*models.File, io.ReadCloser, error)
	DownloadURL(ctx context.Context, fileID, requesterID string) (string, error)
	SetVisibility(ctx context.Context, fileID, requesterID string, isPublic bool) (*models.File, error)
	ShareWithEmail(ctx context.Context, fileID, requesterID, email string) (*models.File, error)
	RevokeAccess(ctx context.Context, fileID, requesterID, userID string) (*models.File, error)
	DeleteFile(ctx context.Context, fileID, requesterID string) error
}

type catalogSvc interface {
	ListOwned(ctx context.Context, userID string) ([]*models.File, error)
	ListSharedWithMe(ctx context.Context, userID string) ([]*models.File, error)
}

type credentialsBody struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

type refreshBody struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type visibilityBody struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

type shareBody struct {
	Email string `json:"email" binding:"required"`
}

func badRequest(c *gin.Context, err error) {
	abort(c, http.StatusBadRequest, fmt.Sprintf("bad request: %v", err))
}

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var body credentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	user, err := s.users.Register(c.Request.Context(), body.Email, body.Name, body.Password)
	if err != nil {
		s.fail(c, "register", err)
		return
	}
	c.JSON(http.StatusCreated, userResponse{User: newUserJSON(user)})
}

func (s *HTTPServer) login(c *gin.Context) {
	var body credentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	tokens, err := s.users.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		s.fail(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, tokensResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *HTTPServer) refresh(c *gin.Context) {
	var body refreshBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	tokens, err := s.users.RefreshToken(c.Request.Context(), body.RefreshToken)
	if err != nil {
		s.fail(c, "refresh token", err)
		return
	}
	c.JSON(http.StatusOK, tokensResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *HTTPServer) logout(c *gin.Context) {
	var body refreshBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.users.Logout(c.Request.Context(), body.RefreshToken); err != nil {
		s.fail(c, "logout", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) me(c *gin.Context) {
	user, err := s.users.Me(c.Request.Context(), requester(c))
	if err != nil {
		s.fail(c, "me", err)
		return
	}
	c.JSON(http.StatusOK, userResponse{User: newUserJSON(user)})
}

func (s *HTTPServer) listOwned(c *gin.Context) {
	files, err := s.catalog.ListOwned(c.Request.Context(), requester(c))
	if err != nil {
		s.fail(c, "list owned", err)
		return
	}
	c.JSON(http.StatusOK, newFilesResponse(files))
}

func (s *HTTPServer) listShared(c *gin.Context) {
	files, err := s.catalog.ListSharedWithMe(c.Request.Context(), requester(c))
	if err != nil {
		s.fail(c, "list shared", err)
		return
	}
	c.JSON(http.StatusOK, newFilesResponse(files))
}

func (s *HTTPServer) upload(c *gin.Context) {
	if s.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadSize+multipartOverhead)
	}

	header, err := c.FormFile("file")
	if err != nil {
		code, _ := httpStatus(err)
		if code == http.StatusRequestEntityTooLarge {
			s.fail(c, "upload", err)
			return
		}
		abort(c, http.StatusBadRequest, "no file provided")
		return
	}

	body, err := header.Open()
	if err != nil {
		s.fail(c, "upload", err)
		return
	}
	defer body.Close()

	file, err := s.files.Upload(c.Request.Context(), requester(c), services.UploadInput{
		Name:      header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Size:      header.Size,
		Body:      body,
	})
	if err != nil {
		s.fail(c, "upload", err)
		return
	}
	c.JSON(http.StatusCreated, fileResponse{File: newFileJSON(file)})
}

func (s *HTTPServer) getFile(c *gin.Context) {
	file, err := s.files.Get(c.Request.Context(), c.Param("id"), requester(c))
	if err != nil {
		s.fail(c, "get file", err)
		return
	}
	c.JSON(http.StatusOK, fileResponse{File: newFileJSON(file)})
}

// view redirects to a presigned URL of the file's bytes.
func (s *HTTPServer) view(c *gin.Context) {
	url, err := s.files.DownloadURL(c.Request.Context(), c.Param("id"), requester(c))
	if err != nil {
		s.fail(c, "view", err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// content streams the file's bytes through the gateway. It serves backends
// whose URLs are not reachable by the browser.
func (s *HTTPServer) content(c *gin.Context) {
	file, rc, err := s.files.Open(c.Request.Context(), c.Param("id"), requester(c))
	if err != nil {
		s.fail(c, "content", err)
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"Content-Disposition": mime.FormatMediaType("inline", map[string]string{"filename": file.DisplayName}),
	}
	c.DataFromReader(http.StatusOK, file.ByteSize, file.MediaType, rc, headers)
}

func (s *HTTPServer) setVisibility(c *gin.Context) {
	var body visibilityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	file, err := s.files.SetVisibility(c.Request.Context(), c.Param("id"), requester(c), *body.IsPublic)
	if err != nil {
		s.fail(c, "set visibility", err)
		return
	}
	c.JSON(http.StatusOK, fileResponse{File: newFileJSON(file)})
}

func (s *HTTPServer) share(c *gin.Context) {
	var body shareBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	file, err := s.files.ShareWithEmail(c.Request.Context(), c.Param("id"), requester(c), body.Email)
	if err != nil {
		s.fail(c, "share", err)
		return
	}
	c.JSON(http.StatusOK, fileResponse{File: newFileJSON(file)})
}

func (s *HTTPServer) revoke(c *gin.Context) {
	file, err := s.files.RevokeAccess(c.Request.Context(), c.Param("id"), requester(c), c.Param("userID"))
	if err != nil {
		s.fail(c, "revoke", err)
		return
	}
	c.JSON(http.StatusOK, fileResponse{File: newFileJSON(file)})
}

func (s *HTTPServer) deleteFile(c *gin.Context) {
	if err := s.files.DeleteFile(c.Request.Context(), c.Param("id"), requester(c)); err != nil {
		s.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}
