package service_test

import (
	"context"
	"testing"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "go")
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, "go")
	assert.ErrorIs(t, err, service.ErrConflict)

	renamed, err := svc.RenameCategory(ctx, category.ID, "golang")
	require.NoError(t, err)
	assert.Equal(t, "golang", renamed.Name)

	_, err = svc.RenameCategory(ctx, 999, "x")
	assert.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))
	assert.ErrorIs(t, svc.DeleteCategory(ctx, category.ID), service.ErrNotFound)
}

func TestDeleteCategoryInUse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	category, err := svc.CreateCategory(ctx, "go")
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, repository.PostInput{
		Title: "x", Content: "y", CategoryID: &category.ID, AuthorID: alice.ID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, category.ID), service.ErrInUse)
}

func TestTagLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tag, err := svc.CreateTag(ctx, "testing")
	require.NoError(t, err)

	_, err = svc.CreateTag(ctx, "testing")
	assert.ErrorIs(t, err, service.ErrConflict)

	renamed, err := svc.RenameTag(ctx, tag.ID, "tests")
	require.NoError(t, err)
	assert.Equal(t, "tests", renamed.Name)

	require.NoError(t, svc.DeleteTag(ctx, tag.ID))
}

func TestDeleteTagInUse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	tag, err := svc.CreateTag(ctx, "testing")
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, repository.PostInput{
		Title: "x", Content: "y", TagIDs: []int{tag.ID}, AuthorID: alice.ID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteTag(ctx, tag.ID), service.ErrInUse)
}

func TestCategoryCounts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	used, err := svc.CreateCategory(ctx, "used")
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, "empty")
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, repository.PostInput{
		Title: "x", Content: "y", CategoryID: &used.ID, AuthorID: alice.ID,
	})
	require.NoError(t, err)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 1, categories[0].Count)
	assert.Equal(t, 0, categories[1].Count)
}
