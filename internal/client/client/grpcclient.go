package client

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophforum/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/forumrpc"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/models"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpcmd "google.golang.org/grpc/metadata"
)

// forumAPI is the subset of *forumrpc.ForumClient used here.
type forumAPI interface {
	SignUp(ctx context.Context, in *forumrpc.SignUpRequest, opts ...grpc.CallOption) (*forumrpc.SignUpResponse, error)
	SignIn(ctx context.Context, in *forumrpc.SignInRequest, opts ...grpc.CallOption) (*forumrpc.SignInResponse, error)
	SignOut(ctx context.Context, in *forumrpc.SignOutRequest, opts ...grpc.CallOption) (*forumrpc.SignOutResponse, error)
	GetUser(ctx context.Context, in *forumrpc.GetUserRequest, opts ...grpc.CallOption) (*forumrpc.GetUserResponse, error)
	RefreshToken(ctx context.Context, in *forumrpc.RefreshTokenRequest, opts ...grpc.CallOption) (*forumrpc.RefreshTokenResponse, error)
	InsertThread(ctx context.Context, in *forumrpc.InsertThreadRequest, opts ...grpc.CallOption) (*forumrpc.InsertThreadResponse, error)
	QueryThreads(ctx context.Context, in *forumrpc.QueryThreadsRequest, opts ...grpc.CallOption) (*forumrpc.QueryThreadsResponse, error)
	Upload(ctx context.Context, in *forumrpc.UploadRequest, opts ...grpc.CallOption) (*forumrpc.UploadResponse, error)
	PublicURL(ctx context.Context, in *forumrpc.PublicURLRequest, opts ...grpc.CallOption) (*forumrpc.PublicURLResponse, error)
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      forumAPI
	repo        metadata.Repository
	logger      logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	refreshing   singleflight.Group
}

// NewGRPCClient connects to endpointURL and restores persisted tokens from
// repo. Extra dial options are appended, which lets tests dial in-memory.
func NewGRPCClient(ctx context.Context, endpointURL string, repo metadata.Repository, l logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		repo:        repo,
		logger:      l.With("module", "grpc_client"),
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = forumrpc.NewForumClient(conn)

	if repo != nil {
		c.loadTokens(ctx, repo)
	}
	return c, nil
}

func (c *GRPCClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := grpcmd.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = grpcmd.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return grpcmd.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token and, when the server says
// it has expired, rotates the tokens once and repeats the call.
func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method == forumrpc.RefreshTokenFullMethod {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := c.tokens()
	if access != "" {
		ctx = withAccessToken(ctx, access)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || refresh == "" {
		return err
	}

	fresh, rerr := c.rotateTokens(ctx, refresh)
	if rerr != nil {
		return err
	}

	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

func (c *GRPCClient) SignUp(ctx context.Context, email, password, displayName string) (*models.Principal, error) {
	resp, err := c.client.SignUp(ctx, &forumrpc.SignUpRequest{Email: email, Password: password, DisplayName: displayName})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.User, nil
}

// SignIn authenticates and keeps the issued tokens.
func (c *GRPCClient) SignIn(ctx context.Context, email, password string) (*models.Principal, error) {
	resp, err := c.client.SignIn(ctx, &forumrpc.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	c.setTokens(ctx, resp.AccessToken, resp.RefreshToken)
	return &resp.User, nil
}

// SignOut revokes the backend session. Local tokens are dropped even when
// the call fails.
func (c *GRPCClient) SignOut(ctx context.Context) error {
	access, _ := c.tokens()
	if access == "" {
		return nil
	}
	_, err := c.client.SignOut(ctx, &forumrpc.SignOutRequest{})
	c.setTokens(ctx, "", "")
	return mapError(err)
}

// GetUser returns the principal of the held token, or nil when there is no
// token or the server no longer accepts it.
func (c *GRPCClient) GetUser(ctx context.Context) (*models.Principal, error) {
	access, _ := c.tokens()
	if access == "" {
		return nil, nil
	}
	resp, err := c.client.GetUser(ctx, &forumrpc.GetUserRequest{})
	if err != nil {
		mapped := mapError(err)
		if errors.Is(mapped, common.ErrAuth) {
			c.setTokens(ctx, "", "")
			return nil, nil
		}
		return nil, mapped
	}
	return &resp.User, nil
}

func (c *GRPCClient) InsertThread(ctx context.Context, t models.Thread) (*models.Thread, error) {
	resp, err := c.client.InsertThread(ctx, &forumrpc.InsertThreadRequest{Thread: t})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Thread, nil
}

func (c *GRPCClient) QueryThreads(ctx context.Context, offset, limit int) ([]models.Thread, error) {
	resp, err := c.client.QueryThreads(ctx, &forumrpc.QueryThreadsRequest{Offset: offset, Limit: limit})
	if err != nil {
		return nil, mapError(err)
	}
	if resp.Threads == nil {
		return []models.Thread{}, nil
	}
	return resp.Threads, nil
}

func (c *GRPCClient) Upload(ctx context.Context, path string, f models.File) error {
	_, err := c.client.Upload(ctx, &forumrpc.UploadRequest{Path: path, ContentType: f.ContentType, Data: f.Data})
	return mapError(err)
}

func (c *GRPCClient) PublicURL(ctx context.Context, path string) (string, error) {
	resp, err := c.client.PublicURL(ctx, &forumrpc.PublicURLRequest{Path: path})
	if err != nil {
		return "", mapError(err)
	}
	return resp.URL, nil
}
