package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/cubhub/cubhub-web/internal/auth"
	"github.com/cubhub/cubhub-web/internal/form"
	"github.com/cubhub/cubhub-web/internal/query"
	"github.com/cubhub/cubhub-web/internal/render"
	"github.com/cubhub/cubhub-web/internal/upstream"
	"github.com/cubhub/cubhub-web/internal/workflow"
)

// Navigation keys matched by the layout.
const (
	navListings = "listings"
	navSitters  = "sitters"
	navBlog     = "blog"
	navAdmin    = "admin"
)

func (s *Server) render() *render.Set {
	return s.services.Directory.Render()
}

// page builds the chrome for a page. The admin flag is cosmetic, so a read
// failure only hides the admin links.
func (s *Server) page(r *http.Request, title, active string) render.Page {
	p := render.Page{Title: title, Active: active, Year: s.now().Year()}
	if s.services.Preferences == nil {
		return p
	}
	on, err := s.services.Preferences.AdminMode(r.Context(), auth.VisitorID(r.Context()))
	if err != nil {
		s.logger.Warn("read admin mode failed", "error", err)
		return p
	}
	p.AdminMode = on
	return p
}

// writePage renders into a buffer first so a template error never leaves a
// half-written page.
func (s *Server) writePage(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.render().Templates.Page(&buf, name, data); err != nil {
		s.logger.Error("render page failed", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", CacheNoStore)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// writeFragment answers a partial request with the status line and the
// result list only.
func (s *Server) writeFragment(w http.ResponseWriter, res workflow.Result) {
	var buf bytes.Buffer
	status := render.Page{Status: res.Status, StatusError: res.Failed}
	if err := s.render().Templates.Fragment(&buf, "status", status); err != nil {
		s.logger.Error("render status failed", "error", err)
	}
	buf.WriteString(string(res.Fragment.HTML))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", CacheNoStore)
	_, _ = buf.WriteTo(w)
}

func wantsPartial(r *http.Request) bool {
	return r.URL.Query().Get(paramPartial) == "1"
}

func queryValues(r *http.Request) form.Values {
	return form.Values(r.URL.Query())
}

// parseForm reads urlencoded and multipart bodies alike, bounded by
// MaxUploadSize.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) (form.Values, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	err := r.ParseMultipartForm(MaxUploadSize)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		s.logger.Warn("parse form failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Could not read the submitted form.", http.StatusBadRequest)
		return nil, false
	}
	return form.Values(r.Form), true
}

// redirectBack sends the browser to its referer when that is on this host.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" && (ref.Host == "" || ref.Host == r.Host) {
		target = ref.RequestURI()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", CacheOneDay)
	http.StripPrefix("/static/", http.FileServerFS(render.StaticFS())).ServeHTTP(w, r)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	featured := s.services.Directory.Featured(r.Context(), auth.VisitorID(r.Context()))

	data := render.HomePage{Page: s.page(r, "", ""), Featured: featured.Fragment}
	data.SetStatus(featured.Status, featured.Failed)
	s.writePage(w, http.StatusOK, "home", data)
}

// listingSearch rebuilds the filter controls and the query. The controls
// fall back to the sentinel for values outside the taxonomy, but the query
// carries the submitted values as typed; rejecting them is the listing
// service's call.
func (s *Server) listingSearch(v form.Values) (render.ListingSearch, query.ListingFilter) {
	category := s.searchBinder.CategorySelect(query.ParamCategory, v.Text(query.ParamCategory))
	sub := &form.Select{Name: query.ParamSubcategory}
	s.searchBinder.Bind(category.Value, sub).Restore(v.Text(query.ParamSubcategory))

	search := render.ListingSearch{
		Category:    category,
		Subcategory: sub,
		Town:        v.Text(query.ParamTown),
		Q:           v.Text(query.ParamQ),
		DBS:         v.Checked(query.ParamDBS),
		FirstAid:    v.Checked(query.ParamFirstAid),
		Ofsted:      v.Checked(query.ParamOfsted),
		SEN:         v.Checked(query.ParamSEN),
	}
	return search, query.ListingFilter{
		Category:    v.Text(query.ParamCategory),
		Subcategory: v.Text(query.ParamSubcategory),
		Town:        search.Town,
		Q:           search.Q,
		DBS:         search.DBS,
		FirstAid:    search.FirstAid,
		Ofsted:      search.Ofsted,
		SEN:         search.SEN,
	}
}

func (s *Server) listingForm(in workflow.ListingInput) render.ListingForm {
	category := s.createBinder.CategorySelect(query.ParamCategory, in.Category)
	sub := &form.Select{Name: query.ParamSubcategory}
	s.createBinder.Bind(category.Value, sub).Restore(in.Subcategory)

	return render.ListingForm{
		Category:         category,
		Subcategory:      sub,
		Title:            in.Title,
		Town:             in.Town,
		Website:          in.Website,
		Email:            in.Email,
		Phone:            in.Phone,
		About:            in.About,
		Tags:             in.Tags,
		FeaturedImageURL: in.FeaturedImageURL,
		DBS:              in.Flags.DBS,
		FirstAid:         in.Flags.FirstAid,
		Ofsted:           in.Flags.Ofsted,
		SEN:              in.Flags.SEN,
	}
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	search, filter := s.listingSearch(queryValues(r))
	res := s.services.Directory.BrowseListings(r.Context(), filter)
	if wantsPartial(r) {
		s.writeFragment(w, res)
		return
	}

	data := render.ListingsPage{
		Page:    s.page(r, "Find childcare", navListings),
		Search:  search,
		Results: res.Fragment,
		Form:    s.listingForm(workflow.ListingInput{}),
	}
	data.SetStatus(res.Status, res.Failed)
	s.writePage(w, http.StatusOK, "listings", data)
}

// handleSubcategories re-renders a dependent select after its category
// changed. context picks the sentinel: "Any" for search, "Select…" for create.
func (s *Server) handleSubcategories(w http.ResponseWriter, r *http.Request) {
	v := queryValues(r)
	binder := s.searchBinder
	if v.Text(paramContext) == contextCreate {
		binder = s.createBinder
	}

	sub := &form.Select{Name: query.ParamSubcategory}
	binder.Bind(v.Text(query.ParamCategory), sub).Restore(v.Text(query.ParamSubcategory))

	var buf bytes.Buffer
	if err := s.render().Templates.Fragment(&buf, "select", sub); err != nil {
		s.logger.Error("render subcategory select failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	v, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	res := s.services.Submissions.CreateListing(r.Context(), workflow.ListingInputFromForm(v))
	results := res.Results
	if results == nil {
		browse := s.services.Directory.BrowseListings(r.Context(), query.ListingFilter{})
		results = &browse
	}

	search, _ := s.listingSearch(form.Values{})
	data := render.ListingsPage{
		Page:    s.page(r, "Find childcare", navListings),
		Search:  search,
		Results: results.Fragment,
		Form:    s.listingForm(res.Form),
	}
	data.SetStatus(res.Status, res.Failed)
	s.writePage(w, http.StatusOK, "listings", data)
}

func (s *Server) handleSitters(w http.ResponseWriter, r *http.Request) {
	v := queryValues(r)
	price := render.PriceRangeSelect(v.Text(query.ParamPriceRange))
	filter := query.SitterFilter{
		Location:   v.Text(query.ParamLocation),
		PriceRange: v.Text(query.ParamPriceRange),
		Skills:     v.All(query.ParamSkills),
		Verified:   v.All(query.ParamVerified),
	}

	res := s.services.Directory.BrowseSitters(r.Context(), auth.VisitorID(r.Context()), filter)
	if wantsPartial(r) {
		s.writeFragment(w, res)
		return
	}

	data := render.SittersPage{
		Page: s.page(r, "Babysitters", navSitters),
		Filters: render.SitterFilters{
			Location:   filter.Location,
			PriceRange: price,
			Skills:     render.SkillChoices(filter.Skills),
			Verified:   render.VerifiedChoices(filter.Verified),
		},
		Results: res.Fragment,
	}
	data.SetStatus(res.Status, res.Failed)
	s.writePage(w, http.StatusOK, "sitters", data)
}

func (s *Server) handleSitter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	card, bio, err := s.services.Directory.Sitter(r.Context(), auth.VisitorID(r.Context()), id)

	data := render.SitterPage{Page: s.page(r, "Babysitters", navSitters)}
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		s.writePage(w, http.StatusNotFound, "sitter", data)
		return
	case err != nil:
		data.SetStatus(workflow.StatusSittersFailed, true)
		s.writePage(w, http.StatusBadGateway, "sitter", data)
		return
	}

	data.Title = card.Title
	data.Found = true
	data.Sitter = card
	data.Bio = bio
	s.writePage(w, http.StatusOK, "sitter", data)
}

// handleToggleFavourite is the non-script fallback; enhanced pages use the
// JSON toggle instead.
func (s *Server) handleToggleFavourite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.services.Directory.ToggleFavourite(r.Context(), auth.VisitorID(r.Context()), id); err != nil {
		s.logger.Error("toggle favourite failed", "sitter_id", id, "error", err)
		http.Error(w, "Could not update your saved sitters. Please try again.", http.StatusInternalServerError)
		return
	}
	redirectBack(w, r, "/sitters")
}

func proposalForm(in workflow.ProposalInput) render.ProposalForm {
	return render.ProposalForm{
		Category:      render.BlogCategorySelect(query.ParamCategory, form.SentinelSelect, in.Category),
		Title:         in.Title,
		Author:        in.Author,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		FeaturedImage: in.FeaturedImage,
		Tags:          in.Tags,
	}
}

func postFilter(v form.Values) (*form.Select, query.PostFilter) {
	category := render.BlogCategorySelect(query.ParamCategory, form.SentinelAny, v.Text(query.ParamCategory))
	return category, query.PostFilter{Q: v.Text(query.ParamQ), Category: v.Text(query.ParamCategory)}
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	category, filter := postFilter(queryValues(r))
	res := s.services.Directory.BrowsePosts(r.Context(), filter)
	if wantsPartial(r) {
		s.writeFragment(w, res)
		return
	}

	data := render.BlogPage{
		Page:     s.page(r, "Blog", navBlog),
		Q:        filter.Q,
		Category: category,
		Results:  res.Fragment,
		Proposal: proposalForm(workflow.ProposalInput{}),
	}
	data.SetStatus(res.Status, res.Failed)
	s.writePage(w, http.StatusOK, "blog", data)
}

func (s *Server) handleProposePost(w http.ResponseWriter, r *http.Request) {
	v, ok := s.parseForm(w, r)
	if !ok {
		return
	}

	res := s.services.Submissions.ProposePost(r.Context(), workflow.ProposalInputFromForm(v))
	category, filter := postFilter(form.Values{})
	posts := s.services.Directory.BrowsePosts(r.Context(), filter)

	data := render.BlogPage{
		Page:     s.page(r, "Blog", navBlog),
		Category: category,
		Results:  posts.Fragment,
		Proposal: proposalForm(res.Form),
	}
	data.SetStatus(res.Status, res.Failed)
	s.writePage(w, http.StatusOK, "blog", data)
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, related, err := s.services.Directory.Post(r.Context(), id)

	data := render.PostPage{Page: s.page(r, "Blog", navBlog)}
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		s.writePage(w, http.StatusNotFound, "post", data)
		return
	case err != nil:
		data.SetStatus(workflow.StatusPostsFailed, true)
		s.writePage(w, http.StatusBadGateway, "post", data)
		return
	}

	data.Found = true
	data.Post = s.render().PostView(*post)
	data.Title = data.Post.Title
	data.Related = related
	s.writePage(w, http.StatusOK, "post", data)
}

func (s *Server) handleToggleAdminMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	visitorID := auth.VisitorID(ctx)

	on, err := s.services.Preferences.AdminMode(ctx, visitorID)
	if err == nil {
		err = s.services.Preferences.SetAdminMode(ctx, visitorID, !on)
	}
	if err != nil {
		s.logger.Error("toggle admin mode failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	redirectBack(w, r, "/")
}
