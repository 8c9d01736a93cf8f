package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func reply(id, postID uint, parentID *uint) Comment {
	return Comment{ID: id, PostID: postID, ParentID: parentID, Status: StatusActive}
}

func ptr(v uint) *uint { return &v }

func TestBuildCommentTree(t *testing.T) {
	// 1 and 4 are top level; 2 and 3 reply to 1; 5 replies to 3.
	comments := []Comment{
		reply(1, 10, nil),
		reply(2, 10, ptr(1)),
		reply(3, 10, ptr(1)),
		reply(4, 10, nil),
		reply(5, 10, ptr(3)),
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 2)
	require.Equal(t, uint(1), roots[0].ID)
	require.Equal(t, uint(4), roots[1].ID)

	require.Len(t, roots[0].Replies, 2)
	require.Equal(t, uint(2), roots[0].Replies[0].ID)
	require.Equal(t, uint(3), roots[0].Replies[1].ID)
	require.Len(t, roots[0].Replies[1].Replies, 1)
	require.Equal(t, uint(5), roots[0].Replies[1].Replies[0].ID)
	require.Empty(t, roots[1].Replies)
}

func TestBuildCommentTreeOrphanSurfacesAtTopLevel(t *testing.T) {
	// Parent 7 was soft-deleted and filtered out of the list; its reply
	// must not vanish.
	comments := []Comment{
		reply(6, 10, nil),
		reply(8, 10, ptr(7)),
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 2)
	require.Equal(t, uint(8), roots[1].ID)
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	require.Empty(t, BuildCommentTree(nil))
}

func TestNormalizeTagName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Go", want: "go"},
		{raw: "  Machine Learning  ", want: "machine-learning"},
		{raw: "ai\tagents", want: "ai-agents"},
		{raw: "   ", want: ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, NormalizeTagName(tc.raw), "raw %q", tc.raw)
	}
}
