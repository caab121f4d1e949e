package service

import (
	"sort"

	"github.com/google/uuid"

	commentModel "coursehub_backend/internals/features/engagement/comments/model"
)

// CommentNode is one comment plus its direct replies.
type CommentNode struct {
	Comment commentModel.CommentModel `json:"comment"`
	Replies []CommentNode             `json:"replies"`
}

// BuildCommentTree arranges a flat comment set into root threads.
// Roots and replies are both ordered newest-first. A reply whose parent
// is missing from the set (e.g. parent soft-deleted) is promoted to a
// root so it stays visible.
func BuildCommentTree(comments []commentModel.CommentModel) []CommentNode {
	byParent := make(map[uuid.UUID][]commentModel.CommentModel)
	present := make(map[uuid.UUID]bool, len(comments))
	for _, cm := range comments {
		present[cm.CommentID] = true
	}

	var roots []commentModel.CommentModel
	for _, cm := range comments {
		if cm.CommentParentID == nil || !present[*cm.CommentParentID] {
			roots = append(roots, cm)
			continue
		}
		byParent[*cm.CommentParentID] = append(byParent[*cm.CommentParentID], cm)
	}

	var build func(list []commentModel.CommentModel) []CommentNode
	build = func(list []commentModel.CommentModel) []CommentNode {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CommentCreatedAt.After(list[j].CommentCreatedAt)
		})
		nodes := make([]CommentNode, 0, len(list))
		for _, cm := range list {
			nodes = append(nodes, CommentNode{
				Comment: cm,
				Replies: build(byParent[cm.CommentID]),
			})
		}
		return nodes
	}

	return build(roots)
}
