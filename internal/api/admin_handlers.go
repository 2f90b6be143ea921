package api

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/cubhub/cubhub-web/internal/auth"
	"github.com/cubhub/cubhub-web/internal/domain"
	"github.com/cubhub/cubhub-web/internal/form"
	"github.com/cubhub/cubhub-web/internal/query"
	"github.com/cubhub/cubhub-web/internal/render"
	"github.com/cubhub/cubhub-web/internal/workflow"
)

const adminBlogPath = "/admin/blog"

// session loads the visitor's edit session or answers 500.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*domain.EditSession, bool) {
	sess, err := s.services.Content.Session(r.Context(), auth.VisitorID(r.Context()))
	if err != nil {
		s.logger.Error("load edit session failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

// confirmed reads the hidden field set by the confirmation page.
func confirmed(v form.Values) workflow.Confirmer {
	yes := v.Text(paramConfirm) == confirmYes
	return workflow.ConfirmFunc(func(string) bool { return yes })
}

func draftFromForm(v form.Values) domain.PostDraft {
	return domain.PostDraft{
		Title:         v.Text("title"),
		Category:      v.Text("category"),
		Author:        v.Text("author"),
		Excerpt:       v.Text("excerpt"),
		Content:       v.Text("content"),
		FeaturedImage: v.Text("featuredImage"),
		Tags:          v.Text("tags"),
		PublishDate:   v.Text("publishDate"),
	}
}

// upload reads the optional image file of a multipart editor form.
func (s *Server) upload(r *http.Request) *workflow.Upload {
	if r.MultipartForm == nil {
		return nil
	}
	file, _, err := r.FormFile(paramImageFile)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			s.logger.Warn("read image upload failed", "error", err)
		}
		return nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		return nil
	}
	return &workflow.Upload{Data: data}
}

// writeAdmin renders the content manager. articles nil means the default
// unfiltered grid.
func (s *Server) writeAdmin(w http.ResponseWriter, r *http.Request, sess *domain.EditSession, out workflow.Outcome, articles *workflow.Result, filter query.PostFilter) {
	if articles == nil {
		res := s.services.Directory.ManagedPosts(r.Context(), filter)
		articles = &res
	}

	editor := s.services.Content.Editor(sess)
	editor.ScrollTo = out.ScrollTo

	data := render.AdminBlogPage{
		Page:     s.page(r, "Manage blog", navAdmin),
		Editor:   editor,
		Articles: articles.Fragment,
		Q:        filter.Q,
		Category: render.BlogCategorySelect(query.ParamCategory, form.SentinelAny, filter.Category),
	}
	if p := s.services.Content.PreviewPost(sess); p != nil {
		view := s.render().PostView(*p)
		data.Preview = &view
	}

	switch {
	case out.Status != "":
		data.SetStatus(out.Status, out.Failed)
	case articles.Status != "":
		data.SetStatus(articles.Status, articles.Failed)
	}
	s.writePage(w, http.StatusOK, "admin_blog", data)
}

// writeConfirm asks before a destructive action. Submitting re-posts to
// action with confirm=yes.
func (s *Server) writeConfirm(w http.ResponseWriter, r *http.Request, prompt, action string, hidden ...render.Hidden) {
	s.writePage(w, http.StatusOK, "confirm", render.ConfirmPage{
		Page:       s.page(r, "Please confirm", navAdmin),
		Prompt:     prompt,
		Action:     action,
		Hidden:     hidden,
		CancelHref: adminBlogPath,
	})
}

func (s *Server) handleAdminBlog(w http.ResponseWriter, r *http.Request) {
	_, filter := postFilter(queryValues(r))
	if wantsPartial(r) {
		s.writeFragment(w, s.services.Directory.ManagedPosts(r.Context(), filter))
		return
	}

	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.writeAdmin(w, r, sess, workflow.Outcome{}, nil, filter)
}

func (s *Server) handleSubmitPost(w http.ResponseWriter, r *http.Request) {
	v, ok := s.parseForm(w, r)
	if !ok {
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	out, err := s.services.Content.Submit(r.Context(), sess, draftFromForm(v), s.upload(r))
	if err != nil {
		s.logger.Error("save edit session failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.writeAdmin(w, r, sess, out, out.Articles, query.PostFilter{})
}

func (s *Server) handleEditPost(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	out, err := s.services.Content.Edit(r.Context(), sess, chi.URLParam(r, "id"))
	if err != nil {
		s.logger.Error("save edit session failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.writeAdmin(w, r, sess, out, nil, query.PostFilter{})
}

func (s *Server) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	v, ok := s.parseForm(w, r)
	if !ok {
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	out, err := s.services.Content.Cancel(r.Context(), sess, confirmed(v))
	if err != nil {
		s.logger.Error("save edit session failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if out.Confirm != "" {
		s.writeConfirm(w, r, out.Confirm, adminBlogPath+"/cancel")
		return
	}
	http.Redirect(w, r, adminBlogPath, http.StatusSeeOther)
}

func (s *Server) handlePreviewPost(w http.ResponseWriter, r *http.Request) {
	v, ok := s.parseForm(w, r)
	if !ok {
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	out, err := s.services.Content.Preview(r.Context(), sess, draftFromForm(v))
	if err != nil {
		s.logger.Error("save edit session failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.writeAdmin(w, r, sess, out, nil, query.PostFilter{})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	v, ok := s.parseForm(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	title := v.Text(paramTitle)

	out := s.services.Content.Delete(r.Context(), id, title, confirmed(v))
	if out.Confirm != "" {
		s.writeConfirm(w, r, out.Confirm, adminBlogPath+"/"+url.PathEscape(id)+"/delete", render.Hidden{Name: paramTitle, Value: title})
		return
	}

	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.writeAdmin(w, r, sess, out, out.Articles, query.PostFilter{})
}
