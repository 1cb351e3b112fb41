package forumrpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type echoServer struct {
	UnimplementedForumServer
}

func (echoServer) QueryThreads(_ context.Context, in *QueryThreadsRequest) (*QueryThreadsResponse, error) {
	out := make([]models.Thread, 0, in.Limit)
	for i := 0; i < in.Limit; i++ {
		out = append(out, models.Thread{ID: string(rune('a' + in.Offset + i)), Title: "t", CreatedAt: time.Unix(0, 0).UTC()})
	}
	return &QueryThreadsResponse{Threads: out}, nil
}

func (echoServer) Upload(_ context.Context, in *UploadRequest) (*UploadResponse, error) {
	return &UploadResponse{Path: in.Path + ":" + string(in.Data)}, nil
}

func dial(t *testing.T, srv ForumServer, opts ...grpc.ServerOption) *ForumClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterForumServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewForumClient(conn)
}

func TestForumClient_RoundTrip(t *testing.T) {
	c := dial(t, echoServer{})
	ctx := context.Background()

	resp, err := c.QueryThreads(ctx, &QueryThreadsRequest{Offset: 2, Limit: 3})
	require.NoError(t, err)
	require.Len(t, resp.Threads, 3)
	assert.Equal(t, "c", resp.Threads[0].ID)
	assert.Equal(t, "e", resp.Threads[2].ID)

	up, err := c.Upload(ctx, &UploadRequest{Path: "u1/a.png", Data: []byte("xyz")})
	require.NoError(t, err)
	assert.Equal(t, "u1/a.png:xyz", up.Path)
}

func TestForumClient_Unimplemented(t *testing.T) {
	c := dial(t, echoServer{})

	_, err := c.SignIn(context.Background(), &SignInRequest{Email: "a@b.c"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestServiceDesc_InterceptorSeesFullMethod(t *testing.T) {
	var seen []string
	icpt := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		seen = append(seen, info.FullMethod)
		return h(ctx, req)
	}
	c := dial(t, echoServer{}, grpc.UnaryInterceptor(icpt))

	_, err := c.QueryThreads(context.Background(), &QueryThreadsRequest{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{QueryThreadsFullMethod}, seen)
}
