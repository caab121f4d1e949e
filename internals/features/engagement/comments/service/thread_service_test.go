package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	commentModel "coursehub_backend/internals/features/engagement/comments/model"
)

func mkComment(id uuid.UUID, parent *uuid.UUID, body string, at time.Time) commentModel.CommentModel {
	return commentModel.CommentModel{
		CommentID:        id,
		CommentParentID:  parent,
		CommentBody:      body,
		CommentCreatedAt: at,
	}
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	if got := BuildCommentTree(nil); len(got) != 0 {
		t.Fatalf("expected empty tree, got %d nodes", len(got))
	}
}

func TestBuildCommentTreeOrdering(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rootA := uuid.New()
	rootB := uuid.New()
	replyA1 := uuid.New()
	replyA2 := uuid.New()

	comments := []commentModel.CommentModel{
		mkComment(rootA, nil, "root A", base),
		mkComment(rootB, nil, "root B", base.Add(time.Hour)),
		mkComment(replyA1, &rootA, "reply A1", base.Add(10*time.Minute)),
		mkComment(replyA2, &rootA, "reply A2", base.Add(20*time.Minute)),
	}

	tree := BuildCommentTree(comments)
	if len(tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree))
	}
	// Newest root first.
	if tree[0].Comment.CommentID != rootB {
		t.Errorf("expected newest root first, got %q", tree[0].Comment.CommentBody)
	}
	if len(tree[1].Replies) != 2 {
		t.Fatalf("expected 2 replies under root A, got %d", len(tree[1].Replies))
	}
	// Newest reply first.
	if tree[1].Replies[0].Comment.CommentID != replyA2 {
		t.Errorf("expected newest reply first, got %q", tree[1].Replies[0].Comment.CommentBody)
	}
}

func TestBuildCommentTreeDeepNesting(t *testing.T) {
	base := time.Now().UTC()
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	comments := []commentModel.CommentModel{
		mkComment(a, nil, "a", base),
		mkComment(b, &a, "b", base.Add(time.Minute)),
		mkComment(c, &b, "c", base.Add(2*time.Minute)),
	}

	tree := BuildCommentTree(comments)
	if len(tree) != 1 || len(tree[0].Replies) != 1 || len(tree[0].Replies[0].Replies) != 1 {
		t.Fatalf("expected a->b->c chain, got %+v", tree)
	}
}

func TestBuildCommentTreeOrphanPromoted(t *testing.T) {
	missing := uuid.New()
	orphan := uuid.New()

	comments := []commentModel.CommentModel{
		mkComment(orphan, &missing, "orphan", time.Now().UTC()),
	}

	tree := BuildCommentTree(comments)
	if len(tree) != 1 {
		t.Fatalf("expected orphan promoted to root, got %d roots", len(tree))
	}
	if tree[0].Comment.CommentID != orphan {
		t.Errorf("unexpected root: %+v", tree[0].Comment)
	}
}
