package service_test

import (
	"context"
	"testing"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addComment(t *testing.T, svc *service.Service, postID int, parentID *int, author string) service.CommentNode {
	t.Helper()
	node, err := svc.CreateComment(context.Background(), repository.CommentInput{
		PostID:     postID,
		ParentID:   parentID,
		AuthorName: author,
		Content:    "from " + author,
	})
	require.NoError(t, err)
	return node
}

func TestCommentTreeNesting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	post := createPost(t, svc, alice.ID, "discuss")

	root := addComment(t, svc, post.ID, nil, "anna")
	reply := addComment(t, svc, post.ID, &root.ID, "ben")
	addComment(t, svc, post.ID, &reply.ID, "carol")
	addComment(t, svc, post.ID, nil, "dave")

	tree, err := svc.CommentTree(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "anna", tree[0].AuthorName)
	assert.Equal(t, "dave", tree[1].AuthorName)

	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "ben", tree[0].Replies[0].AuthorName)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, "carol", tree[0].Replies[0].Replies[0].AuthorName)
}

func TestCommentTreeUnknownPost(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CommentTree(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateCommentParentChecks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	postA := createPost(t, svc, alice.ID, "a")
	postB := createPost(t, svc, alice.ID, "b")

	parent := addComment(t, svc, postA.ID, nil, "anna")

	missing := 999
	_, err := svc.CreateComment(ctx, repository.CommentInput{
		PostID: postA.ID, ParentID: &missing, AuthorName: "ben", Content: "x",
	})
	assert.ErrorIs(t, err, service.ErrParentNotFound)

	// a parent that lives on another post is rejected too
	_, err = svc.CreateComment(ctx, repository.CommentInput{
		PostID: postB.ID, ParentID: &parent.ID, AuthorName: "ben", Content: "x",
	})
	assert.ErrorIs(t, err, service.ErrParentNotFound)
}

func TestDeleteCommentDetachesReplies(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	post := createPost(t, svc, alice.ID, "discuss")

	parent, err := svc.CreateComment(ctx, repository.CommentInput{
		PostID: post.ID, AuthorName: "alice", Content: "root", UserID: &alice.ID,
	})
	require.NoError(t, err)
	addComment(t, svc, post.ID, &parent.ID, "ben")

	require.NoError(t, svc.DeleteComment(ctx, parent.ID, alice.ID))

	tree, err := svc.CommentTree(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "ben", tree[0].AuthorName)
	assert.Nil(t, tree[0].ParentID)
}

func TestDeleteCommentOwnership(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	post := createPost(t, svc, alice.ID, "discuss")

	owned, err := svc.CreateComment(ctx, repository.CommentInput{
		PostID: post.ID, AuthorName: "alice", Content: "mine", UserID: &alice.ID,
	})
	require.NoError(t, err)
	anonymous := addComment(t, svc, post.ID, nil, "anon")

	assert.ErrorIs(t, svc.DeleteComment(ctx, owned.ID, bob.ID), service.ErrForbidden)
	// anonymous comments have no owner, so nobody may delete them
	assert.ErrorIs(t, svc.DeleteComment(ctx, anonymous.ID, alice.ID), service.ErrForbidden)
	assert.NoError(t, svc.DeleteComment(ctx, owned.ID, alice.ID))
}
