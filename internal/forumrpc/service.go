package forumrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "gophforum.ForumService"

const (
	SignUpFullMethod       = "/" + ServiceName + "/SignUp"
	SignInFullMethod       = "/" + ServiceName + "/SignIn"
	SignOutFullMethod      = "/" + ServiceName + "/SignOut"
	GetUserFullMethod      = "/" + ServiceName + "/GetUser"
	RefreshTokenFullMethod = "/" + ServiceName + "/RefreshToken"
	InsertThreadFullMethod = "/" + ServiceName + "/InsertThread"
	QueryThreadsFullMethod = "/" + ServiceName + "/QueryThreads"
	UploadFullMethod       = "/" + ServiceName + "/Upload"
	PublicURLFullMethod    = "/" + ServiceName + "/PublicURL"
)

// ForumServer is implemented by the backend.
type ForumServer interface {
	SignUp(context.Context, *SignUpRequest) (*SignUpResponse, error)
	SignIn(context.Context, *SignInRequest) (*SignInResponse, error)
	SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	InsertThread(context.Context, *InsertThreadRequest) (*InsertThreadResponse, error)
	QueryThreads(context.Context, *QueryThreadsRequest) (*QueryThreadsResponse, error)
	Upload(context.Context, *UploadRequest) (*UploadResponse, error)
	PublicURL(context.Context, *PublicURLRequest) (*PublicURLResponse, error)
}

// UnimplementedForumServer answers every method with codes.Unimplemented.
// Embed it to implement ForumServer partially.
type UnimplementedForumServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedForumServer) SignUp(context.Context, *SignUpRequest) (*SignUpResponse, error) {
	return nil, unimplemented("SignUp")
}
func (UnimplementedForumServer) SignIn(context.Context, *SignInRequest) (*SignInResponse, error) {
	return nil, unimplemented("SignIn")
}
func (UnimplementedForumServer) SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error) {
	return nil, unimplemented("SignOut")
}
func (UnimplementedForumServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, unimplemented("GetUser")
}
func (UnimplementedForumServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, unimplemented("RefreshToken")
}
func (UnimplementedForumServer) InsertThread(context.Context, *InsertThreadRequest) (*InsertThreadResponse, error) {
	return nil, unimplemented("InsertThread")
}
func (UnimplementedForumServer) QueryThreads(context.Context, *QueryThreadsRequest) (*QueryThreadsResponse, error) {
	return nil, unimplemented("QueryThreads")
}
func (UnimplementedForumServer) Upload(context.Context, *UploadRequest) (*UploadResponse, error) {
	return nil, unimplemented("Upload")
}
func (UnimplementedForumServer) PublicURL(context.Context, *PublicURLRequest) (*PublicURLResponse, error) {
	return nil, unimplemented("PublicURL")
}

// unary builds the descriptor of one method, decoding into Req and passing
// through the server's interceptor chain.
func unary[Req, Resp any](name string, call func(ForumServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ForumServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ForumServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes ForumService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ForumServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("SignUp", ForumServer.SignUp),
		unary("SignIn", ForumServer.SignIn),
		unary("SignOut", ForumServer.SignOut),
		unary("GetUser", ForumServer.GetUser),
		unary("RefreshToken", ForumServer.RefreshToken),
		unary("InsertThread", ForumServer.InsertThread),
		unary("QueryThreads", ForumServer.QueryThreads),
		unary("Upload", ForumServer.Upload),
		unary("PublicURL", ForumServer.PublicURL),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "forum.proto",
}

// RegisterForumServer attaches srv to s.
func RegisterForumServer(s grpc.ServiceRegistrar, srv ForumServer) {
	s.RegisterService(&ServiceDesc, srv)
}
