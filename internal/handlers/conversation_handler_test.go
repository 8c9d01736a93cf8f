package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/convoforge/backend/internal/models"
	"github.com/convoforge/backend/internal/services"
	"github.com/convoforge/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newForkHandlerFixture(t *testing.T) (*ConversationHandler, *fakePostRepo) {
	t.Helper()
	sourceConvID := uint(100)
	posts := newFakePostRepo(
		&models.Post{ID: 10, UserID: 1, Title: "On forking", Content: "body",
			SourceConversationID: &sourceConvID, ConversationVisible: false, Status: models.StatusActive},
	)
	conversations := newFakeConversationRepo()
	forks := newFakeForkRepo(posts)
	svc := services.NewForkService(posts, conversations, forks)
	return NewConversationHandler(conversations, posts, nil, svc), posts
}

func forkPost(t *testing.T, h *ConversationHandler, postID, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("post_id")
	c.SetParamValues(postID)
	c.Set("userID", uint(2))

	if err := h.ForkPost(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestForkPostReturns200WithPayload(t *testing.T) {
	h, posts := newForkHandlerFixture(t)

	rec := forkPost(t, h, "10", `{"includeOriginalConversation":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ForkPostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.ConversationID)
	require.Equal(t, "Fork of: On forking", resp.Title)
	require.False(t, resp.IncludeOriginalConversation)

	post, err := posts.GetPostByID(10)
	require.NoError(t, err)
	require.Equal(t, 1, post.ForkCount)
}

func TestForkPostDowngradesPrivateInclude(t *testing.T) {
	h, _ := newForkHandlerFixture(t)

	// Source conversation is private: the fork succeeds with the flag
	// echoed back as false.
	rec := forkPost(t, h, "10", `{"includeOriginalConversation":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ForkPostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.IncludeOriginalConversation)
}

func TestForkPostMissingPost(t *testing.T) {
	h, _ := newForkHandlerFixture(t)

	rec := forkPost(t, h, "999", `{"includeOriginalConversation":false}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
