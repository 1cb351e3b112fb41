package client

import (
	"github.com/dmitrijs2005/gophforum/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError turns a gRPC error into a *common.Error carrying the server's
// message unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return common.NewTransferError(err.Error())
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied, codes.AlreadyExists:
		return common.NewAuthError(st.Message())
	case codes.InvalidArgument:
		return common.NewValidationError(st.Message())
	default:
		return common.NewTransferError(st.Message())
	}
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}
