package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/cubhub/cubhub-web/internal/domain"
	"github.com/cubhub/cubhub-web/internal/render"
	"github.com/cubhub/cubhub-web/internal/upstream"
	"github.com/cubhub/cubhub-web/internal/workflow/mocks"
)

type ContentManagerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	blog     *mocks.MockBlogService
	sessions *mocks.MockSessionStore
	confirm  *mocks.MockConfirmer
	metrics  *mocks.MockRecorder

	manager *Manager
	session *domain.EditSession
	now     time.Time
	ctx     context.Context
}

func (s *ContentManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.blog = mocks.NewMockBlogService(s.ctrl)
	s.sessions = mocks.NewMockSessionStore(s.ctrl)
	s.confirm = mocks.NewMockConfirmer(s.ctrl)
	s.metrics = mocks.NewMockRecorder(s.ctrl)
	s.ctx = context.Background()

	loc, err := time.LoadLocation("Europe/London")
	s.Require().NoError(err)
	tmpl, err := render.LoadTemplates(render.EmbeddedFS())
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := NewDirectory(nil, nil, s.blog, nil, render.NewSet(tmpl, loc), nil, logger)

	s.now = time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC)
	s.manager = NewManager(s.blog, s.sessions, dir, loc, s.metrics, logger)
	s.manager.now = func() time.Time { return s.now }
	s.session = &domain.EditSession{VisitorID: "visitor-1"}

	s.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.metrics.EXPECT().ContentTransition(gomock.Any()).AnyTimes()
}

func (s *ContentManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestContentManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ContentManagerTestSuite))
}

func (s *ContentManagerTestSuite) storedPost() *domain.BlogPost {
	return &domain.BlogPost{
		ID:            "42",
		Title:         "Bedtime routines",
		Excerpt:       "Small steps",
		Content:       "Start early.\nKeep it calm.",
		Category:      "Parenting Tips",
		Author:        "Sam",
		FeaturedImage: "https://img.example/bed.jpg",
		Tags:          []string{"sleep", "routines"},
		PublishDate:   time.Date(2025, 6, 1, 18, 45, 0, 0, time.UTC),
	}
}

func (s *ContentManagerTestSuite) TestSubmit_CreateMode() {
	var sent domain.BlogPost
	s.blog.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.BlogPost) error {
			sent = p
			return nil
		})
	s.blog.EXPECT().QueryPosts(gomock.Any(), url.Values{}).Return([]domain.BlogPost{}, nil)

	out, err := s.manager.Submit(s.ctx, s.session, domain.PostDraft{Title: "A", PublishDate: "2025-07-02T09:00"}, nil)
	s.Require().NoError(err)

	s.Empty(sent.ID)
	s.Equal("A", sent.Title)
	s.Equal(time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC), sent.PublishDate)
	s.Equal(StatusPublished, out.Status)
	s.False(out.Failed)
	s.Require().NotNil(out.Articles)

	s.Nil(s.session.Editing)
	s.Equal(domain.PostDraft{PublishDate: "2025-07-02T09:00"}, s.session.Draft)
}

func (s *ContentManagerTestSuite) TestEdit_PopulatesEveryField() {
	s.blog.EXPECT().GetPost(gomock.Any(), "42").Return(s.storedPost(), nil)

	out, err := s.manager.Edit(s.ctx, s.session, "42")
	s.Require().NoError(err)

	s.True(out.ScrollTo)
	s.Equal("42", s.session.EditingID())
	s.Equal(domain.PostDraft{
		Title:         "Bedtime routines",
		Category:      "Parenting Tips",
		Author:        "Sam",
		Excerpt:       "Small steps",
		Content:       "Start early.\nKeep it calm.",
		FeaturedImage: "https://img.example/bed.jpg",
		Tags:          "sleep, routines",
		PublishDate:   "2025-06-01T19:45",
	}, s.session.Draft)

	editor := s.manager.Editor(s.session)
	s.Equal(HeadingEdit, editor.Heading)
	s.Equal(SubmitEdit, editor.SubmitLabel)
	s.True(editor.Editing)
	s.Equal("Parenting Tips", editor.Category.Value)
}

func (s *ContentManagerTestSuite) TestEdit_ThenSubmitUpdatesHeldID() {
	stored := s.storedPost()
	s.blog.EXPECT().GetPost(gomock.Any(), "42").Return(stored, nil)
	s.blog.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Times(0)
	s.blog.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.BlogPost) error {
			s.Equal("42", p.ID)
			s.Equal(stored.Tags, p.Tags)
			s.True(stored.PublishDate.Equal(p.PublishDate))
			return nil
		})
	s.blog.EXPECT().QueryPosts(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.manager.Edit(s.ctx, s.session, "42")
	s.Require().NoError(err)

	out, err := s.manager.Submit(s.ctx, s.session, s.session.Draft, nil)
	s.Require().NoError(err)
	s.Equal(StatusUpdated, out.Status)
	s.False(s.session.IsEditing())
	s.Equal(HeadingCreate, s.manager.Editor(s.session).Heading)
}

func (s *ContentManagerTestSuite) TestSubmit_FailureKeepsState() {
	s.blog.EXPECT().GetPost(gomock.Any(), "42").Return(s.storedPost(), nil)
	s.blog.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).
		Return(&upstream.Error{Service: upstream.ServiceBlog, Op: "UpdatePost", Status: 500, Body: "title taken", Err: upstream.ErrStatus})

	_, err := s.manager.Edit(s.ctx, s.session, "42")
	s.Require().NoError(err)

	draft := s.session.Draft
	draft.Title = "Changed"
	out, err := s.manager.Submit(s.ctx, s.session, draft, nil)
	s.Require().NoError(err)

	s.True(out.Failed)
	s.Equal("Error: title taken", out.Status)
	s.Nil(out.Articles)
	s.Equal("42", s.session.EditingID())
	s.Equal("Changed", s.session.Draft.Title)
}

func (s *ContentManagerTestSuite) TestEdit_LoadFailureLeavesState() {
	s.blog.EXPECT().GetPost(gomock.Any(), "9").Return(nil, upstream.ErrNotFound)

	out, err := s.manager.Edit(s.ctx, s.session, "9")
	s.Require().NoError(err)
	s.True(out.Failed)
	s.Equal(StatusLoadFailed, out.Status)
	s.False(s.session.IsEditing())
}

func (s *ContentManagerTestSuite) TestDelete_Unconfirmed() {
	prompt := `Are you sure you want to delete "Old news"? This action cannot be undone.`
	s.confirm.EXPECT().Confirm(prompt).Return(false)
	s.blog.EXPECT().DeletePost(gomock.Any(), gomock.Any()).Times(0)
	s.blog.EXPECT().QueryPosts(gomock.Any(), gomock.Any()).Times(0)

	out := s.manager.Delete(s.ctx, "7", "Old news", s.confirm)
	s.Equal(prompt, out.Confirm)
	s.Nil(out.Articles)
}

func (s *ContentManagerTestSuite) TestDelete_Confirmed() {
	s.confirm.EXPECT().Confirm(gomock.Any()).Return(true)
	s.blog.EXPECT().DeletePost(gomock.Any(), "7").Return(nil)
	s.blog.EXPECT().QueryPosts(gomock.Any(), gomock.Any()).Return([]domain.BlogPost{}, nil)

	out := s.manager.Delete(s.ctx, "7", "Old news", s.confirm)
	s.Empty(out.Confirm)
	s.False(out.Failed)
	s.Require().NotNil(out.Articles)
	s.True(out.Articles.Fragment.Empty)
}

func (s *ContentManagerTestSuite) TestDelete_Failure() {
	s.confirm.EXPECT().Confirm(gomock.Any()).Return(true)
	s.blog.EXPECT().DeletePost(gomock.Any(), "7").Return(errors.New("boom"))

	out := s.manager.Delete(s.ctx, "7", "Old news", s.confirm)
	s.True(out.Failed)
	s.Equal(StatusDeleteFailed, out.Status)
}

func (s *ContentManagerTestSuite) TestCancel() {
	s.blog.EXPECT().GetPost(gomock.Any(), "42").Return(s.storedPost(), nil)
	_, err := s.manager.Edit(s.ctx, s.session, "42")
	s.Require().NoError(err)

	s.confirm.EXPECT().Confirm(PromptCancel).Return(false)
	out, err := s.manager.Cancel(s.ctx, s.session, s.confirm)
	s.Require().NoError(err)
	s.Equal(PromptCancel, out.Confirm)
	s.True(s.session.IsEditing())

	s.session.PreviewVisible = true
	s.confirm.EXPECT().Confirm(PromptCancel).Return(true)
	_, err = s.manager.Cancel(s.ctx, s.session, s.confirm)
	s.Require().NoError(err)
	s.False(s.session.IsEditing())
	s.False(s.session.PreviewVisible)
	s.Empty(s.session.Draft.Title)
}

func (s *ContentManagerTestSuite) TestPreview_TogglesWithoutRequests() {
	draft := domain.PostDraft{Title: "Draft", Content: "Line one\nLine two"}

	_, err := s.manager.Preview(s.ctx, s.session, draft)
	s.Require().NoError(err)
	s.True(s.session.PreviewVisible)
	s.Equal(draft, s.session.Draft)

	p := s.manager.PreviewPost(s.session)
	s.Require().NotNil(p)
	s.Equal("Draft", p.Title)
	s.Equal(s.now, p.PublishDate)

	_, err = s.manager.Preview(s.ctx, s.session, draft)
	s.Require().NoError(err)
	s.False(s.session.PreviewVisible)
	s.Nil(s.manager.PreviewPost(s.session))
}

func (s *ContentManagerTestSuite) TestSubmit_UploadInlinedWhenNoURL() {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	var sent domain.BlogPost
	s.blog.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.BlogPost) error {
			sent = p
			return nil
		}).Times(2)
	s.blog.EXPECT().QueryPosts(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	_, err := s.manager.Submit(s.ctx, s.session, domain.PostDraft{Title: "A"}, &Upload{Data: png})
	s.Require().NoError(err)
	s.Contains(sent.FeaturedImage, "data:image/png;base64,")

	_, err = s.manager.Submit(s.ctx, s.session, domain.PostDraft{Title: "B", FeaturedImage: "https://img.example/b.jpg"}, &Upload{Data: png})
	s.Require().NoError(err)
	s.Equal("https://img.example/b.jpg", sent.FeaturedImage)
}

func (s *ContentManagerTestSuite) TestSession_FreshFormGetsNow() {
	s.sessions.EXPECT().LoadSession(gomock.Any(), "visitor-1").Return(&domain.EditSession{VisitorID: "visitor-1"}, nil)

	sess, err := s.manager.Session(s.ctx, "visitor-1")
	s.Require().NoError(err)
	s.Equal("2025-07-02T09:00", sess.Draft.PublishDate)
}
