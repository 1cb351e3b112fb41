package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophforum/internal/forumrpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fail logs err and converts it to a status for the wire.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, op+" failed", "error", err)
	} else {
		s.logger.Debug(ctx, op+" rejected", "error", err)
	}
	return st
}

// currentUser reads the caller set by accessTokenInterceptor.
func currentUser(ctx context.Context) (string, error) {
	id, ok := userIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *forumrpc.SignUpRequest) (*forumrpc.SignUpResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.SignUp(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		return nil, s.fail(ctx, "sign up", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &forumrpc.SignUpResponse{User: user.Principal()}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *forumrpc.SignInRequest) (*forumrpc.SignInResponse, error) {

	user, tokens, err := s.users.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "sign in", err)
	}

	s.logger.Info(ctx, "Signed in", "user_id", user.ID)
	return &forumrpc.SignInResponse{
		User:         user.Principal(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, _ *forumrpc.SignOutRequest) (*forumrpc.SignOutResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.users.SignOut(ctx, userID); err != nil {
		return nil, s.fail(ctx, "sign out", err)
	}
	return &forumrpc.SignOutResponse{}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, _ *forumrpc.GetUserRequest) (*forumrpc.GetUserResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "get user", err)
	}
	return &forumrpc.GetUserResponse{User: user.Principal()}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *forumrpc.RefreshTokenRequest) (*forumrpc.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, "refresh token", err)
	}

	return &forumrpc.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) InsertThread(ctx context.Context, req *forumrpc.InsertThreadRequest) (*forumrpc.InsertThreadResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	thread, err := s.threads.Create(ctx, userID, req.Thread)
	if err != nil {
		return nil, s.fail(ctx, "insert thread", err)
	}

	s.logger.Info(ctx, "Thread created", "thread_id", thread.ID, "user_id", userID)
	return &forumrpc.InsertThreadResponse{Thread: *thread}, nil
}

func (s *GRPCServer) QueryThreads(ctx context.Context, req *forumrpc.QueryThreadsRequest) (*forumrpc.QueryThreadsResponse, error) {

	threads, err := s.threads.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, s.fail(ctx, "query threads", err)
	}

	return &forumrpc.QueryThreadsResponse{Threads: threads}, nil
}

func (s *GRPCServer) Upload(ctx context.Context, req *forumrpc.UploadRequest) (*forumrpc.UploadResponse, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	key, err := s.media.Upload(ctx, userID, req.Path, req.ContentType, req.Data)
	if err != nil {
		return nil, s.fail(ctx, "upload", err)
	}

	s.logger.Info(ctx, "Uploaded", "path", key, "bytes", len(req.Data))
	return &forumrpc.UploadResponse{Path: key}, nil
}

func (s *GRPCServer) PublicURL(ctx context.Context, req *forumrpc.PublicURLRequest) (*forumrpc.PublicURLResponse, error) {

	url, err := s.media.PublicURL(req.Path)
	if err != nil {
		return nil, s.fail(ctx, "public url", err)
	}

	return &forumrpc.PublicURLResponse{URL: url}, nil
}
