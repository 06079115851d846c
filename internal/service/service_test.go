package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gfdmit/blogdesk/internal/auth"
	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gfdmit/blogdesk/internal/repository/memory"
	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*service.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return service.New(store, tokens), store
}

func registerUser(t *testing.T, svc *service.Service, username string) repository.User {
	t.Helper()
	user, err := svc.Register(context.Background(), username, "s3cret")
	require.NoError(t, err)
	return user
}

func createPost(t *testing.T, svc *service.Service, authorID int, title string) repository.Post {
	t.Helper()
	post, err := svc.CreatePost(context.Background(), repository.PostInput{
		Title:    title,
		Content:  "content of " + title,
		AuthorID: authorID,
	})
	require.NoError(t, err)
	return post
}
