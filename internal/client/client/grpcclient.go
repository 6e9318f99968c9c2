package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	pb "github.com/Camilo-Usuga/xxi-storage/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Tokens is the credential pair issued by Login and RefreshToken.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FileServiceClient

	mu       sync.Mutex
	tokens   Tokens
	onTokens func(Tokens)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

// NewGRPCClient connects to endpointURL. Extra dial options are appended to
// the defaults, which tests use to plug in an in-memory listener.
func NewGRPCClient(endpointURL string, tokens Tokens, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, tokens: tokens}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewFileServiceClient(conn)
	return c, nil
}

// OnTokens registers fn to be called whenever the token pair changes.
func (c *GRPCClient) OnTokens(fn func(Tokens)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTokens = fn
}

func (c *GRPCClient) Tokens() Tokens {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

func (c *GRPCClient) setTokens(t Tokens) {
	c.mu.Lock()
	c.tokens = t
	fn := c.onTokens
	c.mu.Unlock()

	if fn != nil {
		fn(t)
	}
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	tokens := c.Tokens()
	err := invoker(withAccessToken(ctx, tokens.AccessToken), method, req, reply, cc, opts...)
	if err == nil || method == pb.FileService_RefreshToken_FullMethodName || tokens.RefreshToken == "" {
		return err
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}

	resp, rerr := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if rerr != nil {
		return err
	}
	fresh := Tokens{AccessToken: resp.GetAccessToken(), RefreshToken: resp.GetRefreshToken()}
	c.setTokens(fresh)

	return invoker(withAccessToken(ctx, fresh.AccessToken), method, req, reply, cc, opts...)
}

// mapError converts a gRPC status into the matching common sentinel while
// keeping the server's message.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sentinel error
	switch st.Code() {
	case codes.Unauthenticated:
		sentinel = common.ErrorUnauthorized
	case codes.PermissionDenied:
		sentinel = common.ErrorNotOwner
	case codes.NotFound:
		sentinel = common.ErrorNotFound
	case codes.AlreadyExists:
		sentinel = common.ErrorAlreadyExists
	case codes.InvalidArgument:
		sentinel = common.ErrorInvalidArgument
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %w", ErrUnavailable, common.Transient(err))
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &pb.PingRequest{})
	return mapError(err)
}

// Register creates an account. The password is not retained.
func (c *GRPCClient) Register(ctx context.Context, email, name string, password []byte) (*pb.User, error) {
	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Email: email, Name: name, Password: string(password)})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

// Login exchanges credentials for a token pair and keeps it for later calls.
func (c *GRPCClient) Login(ctx context.Context, email string, password []byte) (Tokens, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return Tokens{}, mapError(err)
	}
	t := Tokens{AccessToken: resp.GetAccessToken(), RefreshToken: resp.GetRefreshToken()}
	c.setTokens(t)
	return t, nil
}

// Logout revokes the refresh token on the server and forgets both tokens.
func (c *GRPCClient) Logout(ctx context.Context) error {
	refresh := c.Tokens().RefreshToken
	if refresh != "" {
		if _, err := c.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh}); err != nil {
			return mapError(err)
		}
	}
	c.setTokens(Tokens{})
	return nil
}

func (c *GRPCClient) Me(ctx context.Context) (*pb.User, error) {
	resp, err := c.client.Me(ctx, &pb.MeRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

func (c *GRPCClient) Upload(ctx context.Context, name, mediaType string, content []byte) (*pb.File, error) {
	resp, err := c.client.Upload(ctx, &pb.UploadRequest{Name: name, MediaType: mediaType, Content: content})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.File, nil
}

func (c *GRPCClient) ListOwned(ctx context.Context) ([]*pb.File, error) {
	resp, err := c.client.ListOwned(ctx, &pb.ListOwnedRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Files, nil
}

func (c *GRPCClient) ListShared(ctx context.Context) ([]*pb.File, error) {
	resp, err := c.client.ListShared(ctx, &pb.ListSharedRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Files, nil
}

func (c *GRPCClient) SetVisibility(ctx context.Context, fileID string, isPublic bool) (*pb.File, error) {
	resp, err := c.client.SetVisibility(ctx, &pb.SetVisibilityRequest{FileId: fileID, IsPublic: isPublic})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.File, nil
}

func (c *GRPCClient) Share(ctx context.Context, fileID, email string) (*pb.File, error) {
	resp, err := c.client.Share(ctx, &pb.ShareRequest{FileId: fileID, Email: email})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.File, nil
}

func (c *GRPCClient) Revoke(ctx context.Context, fileID, userID string) (*pb.File, error) {
	resp, err := c.client.Revoke(ctx, &pb.RevokeRequest{FileId: fileID, UserId: userID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.File, nil
}

func (c *GRPCClient) Delete(ctx context.Context, fileID string) error {
	_, err := c.client.Delete(ctx, &pb.DeleteRequest{FileId: fileID})
	return mapError(err)
}

func (c *GRPCClient) DownloadURL(ctx context.Context, fileID string) (string, error) {
	resp, err := c.client.DownloadURL(ctx, &pb.DownloadURLRequest{FileId: fileID})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetUrl(), nil
}
