package infra

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/s21platform/messenger-service/internal/config"
)

const uuidHeader = "uuid"

// AuthInterceptorGRPC pulls the authenticated user uuid out of the incoming
// metadata. The API gateway terminates auth and forwards the uuid.
func AuthInterceptorGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no metadata in request")
	}

	values := md.Get(uuidHeader)
	if len(values) == 0 || values[0] == "" {
		return nil, status.Error(codes.Unauthenticated, "no uuid in metadata")
	}

	if err := uuid.Validate(values[0]); err != nil {
		return nil, status.Error(codes.Unauthenticated, "malformed uuid in metadata")
	}

	ctx = context.WithValue(ctx, config.KeyUUID, values[0])
	return handler(ctx, req)
}

func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get(uuidHeader)
		if userUUID == "" {
			http.Error(w, "no uuid in request", http.StatusUnauthorized)
			return
		}

		// handlers parse this value unconditionally, so reject garbage here
		if err := uuid.Validate(userUUID); err != nil {
			http.Error(w, "malformed uuid in request", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
