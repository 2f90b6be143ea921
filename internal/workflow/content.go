package workflow

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cubhub/cubhub-web/internal/domain"
	"github.com/cubhub/cubhub-web/internal/form"
	"github.com/cubhub/cubhub-web/internal/query"
	"github.com/cubhub/cubhub-web/internal/render"
	"github.com/cubhub/cubhub-web/internal/upstream"
)

// Editor labels per mode.
const (
	HeadingCreate = "Write New Blog Article"
	SubmitCreate  = "Publish Article"
	HeadingEdit   = "Edit Blog Article"
	SubmitEdit    = "Update Article"
)

// Content manager status messages and prompts.
const (
	StatusPublished    = "Article published successfully!"
	StatusUpdated      = "Article updated successfully!"
	StatusLoadFailed   = "Error loading article"
	StatusDeleteFailed = "Error deleting article"

	PromptCancel = "Are you sure you want to cancel? Any unsaved changes will be lost."
)

// DateTimeLocal is the layout of a datetime-local input value.
const DateTimeLocal = "2006-01-02T15:04"

// Transition names reported to the Recorder.
const (
	TransitionCreate = "create"
	TransitionUpdate = "update"
	TransitionEdit   = "edit"
	TransitionCancel = "cancel"
	TransitionDelete = "delete"
	TransitionFailed = "failed"
)

// DeletePrompt names the post about to be deleted.
func DeletePrompt(title string) string {
	return `Are you sure you want to delete "` + title + `"? This action cannot be undone.`
}

// Upload is an image file sent with the editor form.
type Upload struct {
	Data []byte
}

// DataURL inlines the upload with a sniffed content type.
func (u *Upload) DataURL() string {
	if u == nil || len(u.Data) == 0 {
		return ""
	}
	return "data:" + http.DetectContentType(u.Data) + ";base64," + base64.StdEncoding.EncodeToString(u.Data)
}

// Outcome reports what a content manager action did.
type Outcome struct {
	Status string
	Failed bool
	// Confirm holds the prompt when the action needs confirmation that was
	// not given. Nothing changed.
	Confirm string
	// ScrollTo asks the page to bring the editor into view.
	ScrollTo bool
	// Articles is the re-queried article grid after a successful write.
	Articles *Result
}

// Manager runs the create/edit state machine. The "currently editing"
// reference lives on the EditSession passed to every method.
type Manager struct {
	blog     BlogService
	sessions SessionStore
	dir      *Directory
	loc      *time.Location
	metrics  Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewManager wires the content manager. Dates are shown in loc.
func NewManager(blog BlogService, sessions SessionStore, dir *Directory, loc *time.Location, metrics Recorder, logger *slog.Logger) *Manager {
	if loc == nil {
		loc = time.UTC
	}
	return &Manager{
		blog:     blog,
		sessions: sessions,
		dir:      dir,
		loc:      loc,
		metrics:  recorderOrNoop(metrics),
		logger:   logger,
		now:      time.Now,
	}
}

// Session loads the visitor's session. A fresh form gets "now" as its date.
func (m *Manager) Session(ctx context.Context, visitorID string) (*domain.EditSession, error) {
	s, err := m.sessions.LoadSession(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("load edit session: %w", err)
	}
	if s.Draft.PublishDate == "" {
		s.Draft.PublishDate = m.nowLocal()
	}
	return s, nil
}

func (m *Manager) save(ctx context.Context, s *domain.EditSession) error {
	if err := m.sessions.SaveSession(ctx, s); err != nil {
		return fmt.Errorf("save edit session: %w", err)
	}
	return nil
}

func (m *Manager) nowLocal() string {
	return m.now().In(m.loc).Format(DateTimeLocal)
}

func (m *Manager) blankDraft() domain.PostDraft {
	return domain.PostDraft{PublishDate: m.nowLocal()}
}

func (m *Manager) requery(ctx context.Context) *Result {
	if m.dir == nil {
		return nil
	}
	r := m.dir.ManagedPosts(ctx, query.PostFilter{})
	return &r
}

// Submit creates a post in create mode or updates the held post in edit mode.
// On success the reference is cleared, the form reset and the list
// re-queried. On failure state and form are kept.
func (m *Manager) Submit(ctx context.Context, s *domain.EditSession, draft domain.PostDraft, upload *Upload) (Outcome, error) {
	post := m.PostFromDraft(draft)
	if post.FeaturedImage == "" {
		post.FeaturedImage = upload.DataURL()
	}

	var (
		err        error
		status     string
		transition string
	)
	if s.IsEditing() {
		post.ID = s.Editing.ID
		err = m.blog.UpdatePost(ctx, post)
		status, transition = StatusUpdated, TransitionUpdate
	} else {
		post.ID = ""
		err = m.blog.CreatePost(ctx, post)
		status, transition = StatusPublished, TransitionCreate
	}

	if err != nil {
		m.logger.Warn("article submit failed", "editing_id", s.EditingID(), "error", err)
		m.metrics.ContentTransition(TransitionFailed)
		s.Draft = draft
		return Outcome{Status: upstream.StatusMessage(err), Failed: true}, m.save(ctx, s)
	}

	m.logger.Info("article saved", "transition", transition, "id", post.ID, "title", post.Title)
	m.metrics.ContentTransition(transition)
	s.Editing = nil
	s.Draft = m.blankDraft()
	s.PreviewVisible = false
	if err := m.save(ctx, s); err != nil {
		return Outcome{}, err
	}
	return Outcome{Status: status, Articles: m.requery(ctx)}, nil
}

// Edit fetches the post and fills the form from it. A failed fetch leaves
// the state unchanged.
func (m *Manager) Edit(ctx context.Context, s *domain.EditSession, id string) (Outcome, error) {
	post, err := m.blog.GetPost(ctx, id)
	if err != nil {
		m.logger.Warn("load article for edit failed", "id", id, "error", err)
		return Outcome{Status: StatusLoadFailed, Failed: true}, nil
	}

	s.Editing = post
	s.Draft = m.DraftFromPost(*post)
	m.metrics.ContentTransition(TransitionEdit)
	return Outcome{ScrollTo: true}, m.save(ctx, s)
}

// Cancel leaves edit mode after confirmation, resetting the form and hiding
// the preview.
func (m *Manager) Cancel(ctx context.Context, s *domain.EditSession, c Confirmer) (Outcome, error) {
	if !c.Confirm(PromptCancel) {
		return Outcome{Confirm: PromptCancel}, nil
	}
	s.Editing = nil
	s.Draft = m.blankDraft()
	s.PreviewVisible = false
	m.metrics.ContentTransition(TransitionCancel)
	return Outcome{}, m.save(ctx, s)
}

// Delete removes a post after confirmation naming it. Unconfirmed deletes
// issue no request. Failures leave local state untouched.
func (m *Manager) Delete(ctx context.Context, id, title string, c Confirmer) Outcome {
	prompt := DeletePrompt(title)
	if !c.Confirm(prompt) {
		return Outcome{Confirm: prompt}
	}
	if err := m.blog.DeletePost(ctx, id); err != nil {
		m.logger.Warn("article delete failed", "id", id, "error", err)
		return Outcome{Status: StatusDeleteFailed, Failed: true}
	}
	m.logger.Info("article deleted", "id", id)
	m.metrics.ContentTransition(TransitionDelete)
	return Outcome{Articles: m.requery(ctx)}
}

// Preview keeps the typed values and toggles the preview. No request is made.
func (m *Manager) Preview(ctx context.Context, s *domain.EditSession, draft domain.PostDraft) (Outcome, error) {
	s.Draft = draft
	s.PreviewVisible = !s.PreviewVisible
	return Outcome{}, m.save(ctx, s)
}

// PostFromDraft builds the payload. The date is read in the display zone and
// sent as UTC; an empty or unreadable date means now.
func (m *Manager) PostFromDraft(d domain.PostDraft) domain.BlogPost {
	return domain.BlogPost{
		Title:         d.Title,
		Excerpt:       d.Excerpt,
		Content:       d.Content,
		Category:      d.Category,
		Author:        d.Author,
		FeaturedImage: d.FeaturedImage,
		Tags:          form.ParseTags(d.Tags),
		PublishDate:   m.parseLocal(d.PublishDate).UTC(),
	}
}

func (m *Manager) parseLocal(v string) time.Time {
	if v == "" {
		return m.now()
	}
	t, err := time.ParseInLocation(DateTimeLocal, v, m.loc)
	if err != nil {
		m.logger.Debug("unreadable publish date, using now", "value", v)
		return m.now()
	}
	return t
}

// DraftFromPost fills every form field from p, re-deriving the local date.
func (m *Manager) DraftFromPost(p domain.BlogPost) domain.PostDraft {
	d := domain.PostDraft{
		Title:         p.Title,
		Category:      p.Category,
		Author:        p.Author,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		FeaturedImage: p.FeaturedImage,
		Tags:          form.JoinTags(p.Tags),
		PublishDate:   m.nowLocal(),
	}
	if !p.PublishDate.IsZero() {
		d.PublishDate = p.PublishDate.In(m.loc).Format(DateTimeLocal)
	}
	return d
}

// Editor builds the form view for the session's mode.
func (m *Manager) Editor(s *domain.EditSession) render.Editor {
	e := render.Editor{
		Heading:       HeadingCreate,
		SubmitLabel:   SubmitCreate,
		Category:      render.BlogCategorySelect("category", form.SentinelSelect, s.Draft.Category),
		Title:         s.Draft.Title,
		Author:        s.Draft.Author,
		Excerpt:       s.Draft.Excerpt,
		Content:       s.Draft.Content,
		FeaturedImage: s.Draft.FeaturedImage,
		Tags:          s.Draft.Tags,
		PublishDate:   s.Draft.PublishDate,
	}
	if s.IsEditing() {
		e.Heading = HeadingEdit
		e.SubmitLabel = SubmitEdit
		e.Editing = true
		e.ID = s.Editing.ID
	}
	return e
}

// PreviewPost is the post rendered in the preview, or nil when hidden.
func (m *Manager) PreviewPost(s *domain.EditSession) *domain.BlogPost {
	if !s.PreviewVisible {
		return nil
	}
	p := m.PostFromDraft(s.Draft)
	return &p
}
