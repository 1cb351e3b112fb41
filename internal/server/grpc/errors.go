package grpc

import (
	"errors"

	"github.com/dmitrijs2005/gophforum/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var statusCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrUserExists, codes.AlreadyExists},
	{common.ErrInvalidCredentials, codes.Unauthenticated},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
	{common.ErrForbidden, codes.PermissionDenied},
	{common.ErrMissingField, codes.InvalidArgument},
	{common.ErrInvalidCategory, codes.InvalidArgument},
	{common.ErrInvalidEmail, codes.InvalidArgument},
	{common.ErrTooLarge, codes.InvalidArgument},
}

// toStatus maps a service error to a gRPC status carrying the sentinel's
// text. Anything unrecognised becomes codes.Internal so internals never leak.
func toStatus(err error) error {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return status.Error(sc.code, sc.err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
