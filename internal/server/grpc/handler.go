package grpc

import (
	"bytes"
	"context"

	pb "github.com/Camilo-Usuga/xxi-storage/internal/proto"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userSvc interface {
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (*models.User, error)
}

type fileSvc interface {
	Upload(ctx context.Context, requesterID string, in services.UploadInput) (*models.File, error)
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

// fail logs err and converts it into a gRPC status.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal || status.Code(st) == codes.DataLoss {
		s.logger.Error(ctx, op+" failed", "error", err)
	} else {
		s.logger.Debug(ctx, op+" rejected", "error", err)
	}
	return st
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.GetEmail(), req.GetName(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.RegisterResponse{User: pb.UserFromModel(user)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.fail(ctx, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.users.Logout(ctx, req.GetRefreshToken()); err != nil {
		return nil, s.fail(ctx, "logout", err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.MeRequest) (*pb.MeResponse, error) {
	user, err := s.users.Me(ctx, UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "me", err)
	}
	return &pb.MeResponse{User: pb.UserFromModel(user)}, nil
}

func (s *GRPCServer) Upload(ctx context.Context, req *pb.UploadRequest) (*pb.FileResponse, error) {
	file, err := s.files.Upload(ctx, UserIDFromContext(ctx), services.UploadInput{
		Name:      req.GetName(),
		MediaType: req.GetMediaType(),
		Size:      int64(len(req.GetContent())),
		Body:      bytes.NewReader(req.GetContent()),
	})
	if err != nil {
		return nil, s.fail(ctx, "upload", err)
	}
	return &pb.FileResponse{File: pb.FileFromModel(file)}, nil
}

func (s *GRPCServer) ListOwned(ctx context.Context, _ *pb.ListOwnedRequest) (*pb.ListFilesResponse, error) {
	files, err := s.catalog.ListOwned(ctx, UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "list owned", err)
	}
	return &pb.ListFilesResponse{Files: pb.FilesFromModels(files)}, nil
}

func (s *GRPCServer) ListShared(ctx context.Context, _ *pb.ListSharedRequest) (*pb.ListFilesResponse, error) {
	files, err := s.catalog.ListSharedWithMe(ctx, UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "list shared", err)
	}
	return &pb.ListFilesResponse{Files: pb.FilesFromModels(files)}, nil
}

func (s *GRPCServer) SetVisibility(ctx context.Context, req *pb.SetVisibilityRequest) (*pb.FileResponse, error) {
	file, err := s.files.SetVisibility(ctx, req.GetFileId(), UserIDFromContext(ctx), req.GetIsPublic())
	if err != nil {
		return nil, s.fail(ctx, "set visibility", err)
	}
	return &pb.FileResponse{File: pb.FileFromModel(file)}, nil
}

func (s *GRPCServer) Share(ctx context.Context, req *pb.ShareRequest) (*pb.FileResponse, error) {
	file, err := s.files.ShareWithEmail(ctx, req.GetFileId(), UserIDFromContext(ctx), req.GetEmail())
	if err != nil {
		return nil, s.fail(ctx, "share", err)
	}
	return &pb.FileResponse{File: pb.FileFromModel(file)}, nil
}

func (s *GRPCServer) Revoke(ctx context.Context, req *pb.RevokeRequest) (*pb.FileResponse, error) {
	file, err := s.files.RevokeAccess(ctx, req.GetFileId(), UserIDFromContext(ctx), req.GetUserId())
	if err != nil {
		return nil, s.fail(ctx, "revoke", err)
	}
	return &pb.FileResponse{File: pb.FileFromModel(file)}, nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {
	if err := s.files.DeleteFile(ctx, req.GetFileId(), UserIDFromContext(ctx)); err != nil {
		return nil, s.fail(ctx, "delete", err)
	}
	return &pb.DeleteResponse{}, nil
}

func (s *GRPCServer) DownloadURL(ctx context.Context, req *pb.DownloadURLRequest) (*pb.DownloadURLResponse, error) {
	url, err := s.files.DownloadURL(ctx, req.GetFileId(), UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "download url", err)
	}
	return &pb.DownloadURLResponse{Url: url}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
