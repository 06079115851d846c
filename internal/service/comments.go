package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/blogdesk/internal/repository"
)

type CommentNode struct {
	ID          int           `json:"id"`
	PostID      int           `json:"post_id"`
	ParentID    *int          `json:"parent_id"`
	AuthorName  string        `json:"author_name"`
	AuthorEmail *string       `json:"author_email"`
	Content     string        `json:"content"`
	CreatedAt   string        `json:"created_at"`
	Replies     []CommentNode `json:"replies"`
}

const commentTimeLayout = "2006-01-02 15:04:05"

// CommentTree returns the post's comments nested by parent. The flat list is
// grouped by parent id in one pass and assembled recursively from that index.
// A comment whose declared parent is not present in the post's list does not
// appear in the tree.
func (svc *Service) CommentTree(ctx context.Context, postID int) ([]CommentNode, error) {
	if _, err := svc.Post(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := svc.repo.CommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return buildCommentTree(comments), nil
}

func buildCommentTree(comments []repository.Comment) []CommentNode {
	children := map[int][]repository.Comment{}
	roots := []repository.Comment{}
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var assemble func(list []repository.Comment) []CommentNode
	assemble = func(list []repository.Comment) []CommentNode {
		nodes := []CommentNode{}
		for _, c := range list {
			nodes = append(nodes, CommentNode{
				ID:          c.ID,
				PostID:      c.PostID,
				ParentID:    c.ParentID,
				AuthorName:  c.AuthorName,
				AuthorEmail: c.AuthorEmail,
				Content:     c.Content,
				CreatedAt:   c.CreatedAt.Format(commentTimeLayout),
				Replies:     assemble(children[c.ID]),
			})
		}
		return nodes
	}
	return assemble(roots)
}

func (svc *Service) CreateComment(ctx context.Context, in repository.CommentInput) (CommentNode, error) {
	if _, err := svc.Post(ctx, in.PostID); err != nil {
		return CommentNode{}, err
	}

	if in.ParentID != nil {
		parent, err := svc.repo.CommentByID(ctx, *in.ParentID)
		if errors.Is(err, repository.ErrNotFound) || (err == nil && parent.PostID != in.PostID) {
			return CommentNode{}, ErrParentNotFound
		}
		if err != nil {
			return CommentNode{}, err
		}
	}

	comment, err := svc.repo.CreateComment(ctx, in)
	if err != nil {
		return CommentNode{}, err
	}
	return CommentNode{
		ID:          comment.ID,
		PostID:      comment.PostID,
		ParentID:    comment.ParentID,
		AuthorName:  comment.AuthorName,
		AuthorEmail: comment.AuthorEmail,
		Content:     comment.Content,
		CreatedAt:   comment.CreatedAt.Format(commentTimeLayout),
		Replies:     []CommentNode{},
	}, nil
}

func (svc *Service) DeleteComment(ctx context.Context, id, callerID int) error {
	comment, err := svc.repo.CommentByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("comment %w", ErrNotFound)
	}
	if err != nil {
		return err
	}
	if comment.UserID == nil || *comment.UserID != callerID {
		return ErrForbidden
	}
	return svc.repo.DeleteComment(ctx, id)
}
