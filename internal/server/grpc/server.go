package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophforum/internal/forumrpc"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	pm "github.com/dmitrijs2005/gophforum/internal/models"
	"github.com/dmitrijs2005/gophforum/internal/server/metrics"
	"github.com/dmitrijs2005/gophforum/internal/server/models"
	"github.com/dmitrijs2005/gophforum/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is implemented by services.UserService.
type UserService interface {
	SignUp(ctx context.Context, email, password, displayName string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	SignOut(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// ThreadService is implemented by services.ThreadService.
type ThreadService interface {
	Create(ctx context.Context, userID string, t pm.Thread) (*pm.Thread, error)
	List(ctx context.Context, offset, limit int) ([]pm.Thread, error)
}

// MediaService is implemented by services.MediaService.
type MediaService interface {
	Upload(ctx context.Context, userID, key, contentType string, data []byte) (string, error)
	PublicURL(key string) (string, error)
}

type GRPCServer struct {
	forumrpc.UnimplementedForumServer
	address   string
	users     UserService
	threads   ThreadService
	media     MediaService
	metrics   *metrics.Metrics
	logger    logging.Logger
	jwtSecret []byte
}

// NewGRPCServer builds the ForumService backend. m may be nil, in which case
// no RPC metrics are recorded.
func NewGRPCServer(a string, l logging.Logger, us UserService, ts ThreadService, ms MediaService, secretKey string, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		threads:   ts,
		media:     ms,
		metrics:   m,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor))
	forumrpc.RegisterForumServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
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

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
