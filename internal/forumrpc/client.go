package forumrpc

import (
	"context"

	"google.golang.org/grpc"
)

// ForumClient is the typed stub over a connection.
type ForumClient struct {
	cc grpc.ClientConnInterface
}

func NewForumClient(cc grpc.ClientConnInterface) *ForumClient {
	return &ForumClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ForumClient) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*SignUpResponse, error) {
	return invoke[SignUpResponse](ctx, c.cc, SignUpFullMethod, in, opts)
}

func (c *ForumClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	return invoke[SignInResponse](ctx, c.cc, SignInFullMethod, in, opts)
}

func (c *ForumClient) SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*SignOutResponse, error) {
	return invoke[SignOutResponse](ctx, c.cc, SignOutFullMethod, in, opts)
}

func (c *ForumClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, GetUserFullMethod, in, opts)
}

func (c *ForumClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, RefreshTokenFullMethod, in, opts)
}

func (c *ForumClient) InsertThread(ctx context.Context, in *InsertThreadRequest, opts ...grpc.CallOption) (*InsertThreadResponse, error) {
	return invoke[InsertThreadResponse](ctx, c.cc, InsertThreadFullMethod, in, opts)
}

func (c *ForumClient) QueryThreads(ctx context.Context, in *QueryThreadsRequest, opts ...grpc.CallOption) (*QueryThreadsResponse, error) {
	return invoke[QueryThreadsResponse](ctx, c.cc, QueryThreadsFullMethod, in, opts)
}

func (c *ForumClient) Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error) {
	return invoke[UploadResponse](ctx, c.cc, UploadFullMethod, in, opts)
}

func (c *ForumClient) PublicURL(ctx context.Context, in *PublicURLRequest, opts ...grpc.CallOption) (*PublicURLResponse, error) {
	return invoke[PublicURLResponse](ctx, c.cc, PublicURLFullMethod, in, opts)
}
