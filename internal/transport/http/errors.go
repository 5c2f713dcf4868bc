package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "hexroom/internal/platform/errors"
)

// writeError renders a domain error as JSON. The error is first converted to
// its gRPC status, so the HTTP surface carries the same code, message, and
// metadata a gRPC client would see.
func writeError(c *gin.Context, err error) {
	st := status.Convert(apperrors.HandleError(err))
	body := gin.H{
		"error": st.Message(),
		"code":  string(apperrors.GetCode(err)),
	}
	if info := errorInfo(st); info != nil && len(info.Metadata) > 0 {
		body["metadata"] = info.Metadata
	}
	c.AbortWithStatusJSON(httpStatus(st.Code()), body)
}

// errorInfo extracts the ErrorInfo detail from a status, if attached.
func errorInfo(st *status.Status) *errdetails.ErrorInfo {
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	return nil
}

// httpStatus maps a gRPC status code to its HTTP status.
func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.FailedPrecondition:
		return http.StatusConflict
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
