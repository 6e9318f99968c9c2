package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/Camilo-Usuga/xxi-storage/internal/client/client"
	"github.com/Camilo-Usuga/xxi-storage/internal/client/config"
	"github.com/Camilo-Usuga/xxi-storage/internal/client/session"
	pb "github.com/Camilo-Usuga/xxi-storage/internal/proto"
)

// API is the subset of the gRPC client the commands use.
type API interface {
	Close() error
	OnTokens(fn func(client.Tokens))
	Register(ctx context.Context, email, name string, password []byte) (*pb.User, error)
	Login(ctx context.Context, email string, password []byte) (client.Tokens, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*pb.User, error)
	Upload(ctx context.Context, name, mediaType string, content []byte) (*pb.File, error)
	ListOwned(ctx context.Context) ([]*pb.File, error)
	ListShared(ctx context.Context) ([]*pb.File, error)
	SetVisibility(ctx context.Context, fileID string, isPublic bool) (*pb.File, error)
	Share(ctx context.Context, fileID, email string) (*pb.File, error)
	Revoke(ctx context.Context, fileID, userID string) (*pb.File, error)
	Delete(ctx context.Context, fileID string) error
	DownloadURL(ctx context.Context, fileID string) (string, error)
}

// dialAPI is a test seam for client.NewGRPCClient.
var dialAPI = func(endpoint string, tokens client.Tokens) (API, error) {
	return client.NewGRPCClient(endpoint, tokens)
}

// App carries the state shared by all commands of one invocation.
type App struct {
	cfg     *config.Config
	session *session.Session
	api     API
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
}

// connect loads the session and dials the server. Tokens stored for a
// different server are not sent.
func (a *App) connect(cfg *config.Config) error {
	a.cfg = cfg

	s, err := session.Load(cfg.SessionFile)
	if err != nil {
		return err
	}
	if s.Server != "" && s.Server != cfg.ServerEndpointAddr {
		s = &session.Session{}
	}
	a.session = s

	api, err := dialAPI(cfg.ServerEndpointAddr, client.Tokens{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.ServerEndpointAddr, err)
	}
	api.OnTokens(a.saveTokens)
	a.api = api
	return nil
}

// saveTokens persists rotated tokens. A failed write only costs a login
// later, so it is reported and not returned.
func (a *App) saveTokens(t client.Tokens) {
	a.session.Server = a.cfg.ServerEndpointAddr
	a.session.AccessToken = t.AccessToken
	a.session.RefreshToken = t.RefreshToken
	if err := session.Save(a.cfg.SessionFile, a.session); err != nil {
		fmt.Fprintf(a.errOut, "warning: could not save session: %v\n", err)
	}
}

// requestContext bounds a single RPC by the configured timeout.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg == nil || a.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.RequestTimeout)
}

func (a *App) requireLogin() error {
	if a.session == nil || !a.session.LoggedIn() {
		return client.ErrNotLoggedIn
	}
	return nil
}

// Close releases the connection, if one was opened.
func (a *App) Close() error {
	if a.api == nil {
		return nil
	}
	err := a.api.Close()
	a.api = nil
	return err
}
