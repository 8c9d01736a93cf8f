package handlers

import (
	"fmt"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/convoforge/backend/internal/models"
)

// Minimal in-memory fakes for the repository interfaces the handler tests
// exercise. Unused methods return zero values.

type fakePostRepo struct {
	posts map[uint]*models.Post
}

func newFakePostRepo(posts ...*models.Post) *fakePostRepo {
	m := make(map[uint]*models.Post, len(posts))
	for _, p := range posts {
		m[p.ID] = p
	}
	return &fakePostRepo{posts: m}
}

func (f *fakePostRepo) CreatePost(post *models.Post) error { f.posts[post.ID] = post; return nil }

func (f *fakePostRepo) GetPostByID(id uint) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: post %d", apperr.ErrNotFound, id)
	}
	cp := *post
	return &cp, nil
}

func (f *fakePostRepo) GetPostsByUserID(uint, int, int) ([]models.Post, error)    { return nil, nil }
func (f *fakePostRepo) GetPostsByUserIDs([]uint, int, int) ([]models.Post, error) { return nil, nil }
func (f *fakePostRepo) GetAllPosts(int, int) ([]models.Post, error)               { return nil, nil }
func (f *fakePostRepo) GetPostsByTag(string, int, int) ([]models.Post, error)     { return nil, nil }
func (f *fakePostRepo) UpdatePost(post *models.Post) error                        { f.posts[post.ID] = post; return nil }
func (f *fakePostRepo) ReplaceTags(*models.Post, []models.Tag) error              { return nil }

func (f *fakePostRepo) SetStatus(id uint, status models.Status) error {
	post, ok := f.posts[id]
	if !ok {
		return fmt.Errorf("%w: post %d", apperr.ErrNotFound, id)
	}
	post.Status = status
	return nil
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
}

func newFakeCommentRepo(comments ...*models.Comment) *fakeCommentRepo {
	m := make(map[uint]*models.Comment, len(comments))
	for _, c := range comments {
		m[c.ID] = c
	}
	return &fakeCommentRepo{comments: m}
}

func (f *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, fmt.Errorf("%w: comment %d", apperr.ErrNotFound, id)
	}
	cp := *comment
	return &cp, nil
}

func (f *fakeCommentRepo) GetCommentsByPostID(uint) ([]models.Comment, error) { return nil, nil }
func (f *fakeCommentRepo) UpdateComment(*models.Comment) error                { return nil }
func (f *fakeCommentRepo) SetStatus(uint, models.Status) error                { return nil }

type fakeReactionRepo struct {
	nextID uint
	rows   map[string]*models.Reaction
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{rows: make(map[string]*models.Reaction)}
}

func reactionKey(userID uint, targetType string, targetID uint) string {
	return fmt.Sprintf("%d/%s/%d", userID, targetType, targetID)
}

func (f *fakeReactionRepo) GetReaction(userID uint, targetType string, targetID uint) (*models.Reaction, error) {
	r, ok := f.rows[reactionKey(userID, targetType, targetID)]
	if !ok {
		return nil, fmt.Errorf("%w: reaction for %s %d", apperr.ErrNotFound, targetType, targetID)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReactionRepo) CreateReaction(reaction *models.Reaction) error {
	key := reactionKey(reaction.UserID, reaction.TargetType, reaction.TargetID)
	if _, exists := f.rows[key]; exists {
		return fmt.Errorf("%w: reaction for %s %d", apperr.ErrDuplicate, reaction.TargetType, reaction.TargetID)
	}
	f.nextID++
	reaction.ID = f.nextID
	cp := *reaction
	f.rows[key] = &cp
	return nil
}

func (f *fakeReactionRepo) UpdateReactionKind(id uint, kind models.ReactionKind) error {
	for _, r := range f.rows {
		if r.ID == id {
			r.Kind = kind
			return nil
		}
	}
	return fmt.Errorf("%w: reaction %d", apperr.ErrNotFound, id)
}

func (f *fakeReactionRepo) DeleteReaction(id uint) error {
	for key, r := range f.rows {
		if r.ID == id {
			delete(f.rows, key)
			return nil
		}
	}
	return fmt.Errorf("%w: reaction %d", apperr.ErrNotFound, id)
}

func (f *fakeReactionRepo) CountReactionsByKind(targetType string, targetID uint) (map[models.ReactionKind]int64, error) {
	counts := make(map[models.ReactionKind]int64)
	for _, r := range f.rows {
		if r.TargetType == targetType && r.TargetID == targetID {
			counts[r.Kind]++
		}
	}
	return counts, nil
}

type fakeConversationRepo struct {
	messages map[uint][]models.Message
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{messages: make(map[uint][]models.Message)}
}

func (f *fakeConversationRepo) CreateConversation(*models.Conversation) error { return nil }

func (f *fakeConversationRepo) GetConversationByID(id uint) (*models.Conversation, error) {
	return nil, fmt.Errorf("%w: conversation %d", apperr.ErrNotFound, id)
}

func (f *fakeConversationRepo) GetConversationsByUserID(uint) ([]models.Conversation, error) {
	return nil, nil
}

func (f *fakeConversationRepo) SetStatus(uint, models.Status) error { return nil }
func (f *fakeConversationRepo) AppendMessage(*models.Message) error { return nil }

func (f *fakeConversationRepo) GetMessageByID(id uint) (*models.Message, error) {
	return nil, fmt.Errorf("%w: message %d", apperr.ErrNotFound, id)
}

func (f *fakeConversationRepo) GetMessagesByConversationID(conversationID uint) ([]models.Message, error) {
	return f.messages[conversationID], nil
}

type fakeForkRepo struct {
	nextConvID uint
	records    []*models.ConversationFork
	posts      *fakePostRepo
}

func newFakeForkRepo(posts *fakePostRepo) *fakeForkRepo {
	return &fakeForkRepo{posts: posts}
}

func (f *fakeForkRepo) CreateFork(conversation *models.Conversation, messages []models.Message, record *models.ConversationFork) error {
	f.nextConvID++
	conversation.ID = f.nextConvID
	record.ConversationID = conversation.ID
	f.records = append(f.records, record)
	f.posts.posts[record.PostID].ForkCount++
	return nil
}

func (f *fakeForkRepo) GetForksByPostID(postID uint) ([]models.ConversationFork, error) {
	var out []models.ConversationFork
	for _, r := range f.records {
		if r.PostID == postID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeForkRepo) CountActiveForksByPostID(postID uint) (int64, error) {
	var count int64
	for _, r := range f.records {
		if r.PostID == postID {
			count++
		}
	}
	return count, nil
}
