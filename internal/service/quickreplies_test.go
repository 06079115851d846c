package service_test

import (
	"context"
	"testing"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickReplyLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reply, err := svc.CreateQuickReply(ctx, repository.QuickReplyInput{
		Title: "greeting", Content: "Hello, thanks for reaching out.",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, reply.UseCount)

	content := "Hi! Thanks for reaching out."
	updated, err := svc.UpdateQuickReply(ctx, reply.ID, repository.QuickReplyPatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, content, updated.Content)

	require.NoError(t, svc.DeleteQuickReply(ctx, reply.ID))
	_, err = svc.QuickReply(ctx, reply.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUseQuickReply(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reply, err := svc.CreateQuickReply(ctx, repository.QuickReplyInput{
		Title: "greeting", Content: "hello",
	})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		used, err := svc.UseQuickReply(ctx, reply.ID)
		require.NoError(t, err)
		assert.Equal(t, i, used.UseCount)
	}

	_, err = svc.UseQuickReply(ctx, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListQuickRepliesFilter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	greetings := "greetings"
	_, err := svc.CreateQuickReply(ctx, repository.QuickReplyInput{
		Title: "hello", Content: "Hi there", Category: &greetings,
	})
	require.NoError(t, err)
	_, err = svc.CreateQuickReply(ctx, repository.QuickReplyInput{
		Title: "closing", Content: "Marking this resolved",
	})
	require.NoError(t, err)

	byCategory, total, err := svc.ListQuickReplies(ctx, repository.QuickReplyFilter{Category: greetings})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "hello", byCategory[0].Title)

	bySearch, total, err := svc.ListQuickReplies(ctx, repository.QuickReplyFilter{Search: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "closing", bySearch[0].Title)
}
