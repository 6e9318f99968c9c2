package grpc

import (
	"context"
	"errors"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	pb "github.com/Camilo-Usuga/xxi-storage/internal/proto"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

// publicMethods are served without an access token.
var publicMethods = map[string]bool{
	pb.FileService_Register_FullMethodName:     true,
	pb.FileService_Login_FullMethodName:        true,
	pb.FileService_RefreshToken_FullMethodName: true,
	pb.FileService_Logout_FullMethodName:       true,
	pb.FileService_Ping_FullMethodName:         true,
}

// optionalAuthMethods accept anonymous callers but still reject a bad token.
var optionalAuthMethods = map[string]bool{
	pb.FileService_DownloadURL_FullMethodName: true,
}

// UserIDFromContext returns the authenticated caller or "" for anonymous calls.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

func accessTokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AccessTokenHeaderName)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := accessTokenFromMetadata(ctx)
	if accessToken == "" {
		if optionalAuthMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)
	return handler(ctx, req)
}
