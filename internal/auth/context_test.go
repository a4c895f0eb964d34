package auth

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-inventory-service/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestGetUserID(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, "user-1")
	assert.Equal(t, "user-1", GetUserID(ctx))

	md := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-user-id", "user-2"))
	assert.Equal(t, "user-2", GetUserID(md))

	assert.Equal(t, "", GetUserID(context.Background()))
}
