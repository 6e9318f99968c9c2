// Package grpc exposes the file services over gRPC.
package grpc

import (
	"context"
	"math"
	"net"

	"github.com/Camilo-Usuga/xxi-storage/internal/logging"
	pb "github.com/Camilo-Usuga/xxi-storage/internal/proto"
	"google.golang.org/grpc"
)

// uploadOverhead leaves room for the other UploadRequest fields.
const uploadOverhead = 1 << 20

// recvLimit is the largest message the server accepts. A zero upload limit
// means uploads are unbounded, so the limit is the largest gRPC message.
func recvLimit(maxUploadSize int64) int {
	if maxUploadSize <= 0 || maxUploadSize > math.MaxInt32-uploadOverhead {
		return math.MaxInt32
	}
	return int(maxUploadSize) + uploadOverhead
}

type GRPCServer struct {
	pb.UnimplementedFileServiceServer
	address    string
	users      userSvc
	files      fileSvc
	catalog    catalogSvc
	logger     logging.Logger
	jwtSecret  []byte
	maxRecvMsg int
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, fs fileSvc, cs catalogSvc, secretKey string, maxUploadSize int64) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		files:      fs,
		catalog:    cs,
		jwtSecret:  []byte(secretKey),
		maxRecvMsg: recvLimit(maxUploadSize),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.MaxRecvMsgSize(s.maxRecvMsg),
	)
	pb.RegisterFileServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
