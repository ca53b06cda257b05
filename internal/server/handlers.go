package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/aretw0/proposal/pkg/assembler"
	"github.com/aretw0/proposal/pkg/core"
	"github.com/aretw0/proposal/pkg/export"
)

// ProposalRequest is the body of POST /api/proposal.
type ProposalRequest struct {
	Type     string      `json:"type"`
	Fields   core.Fields `json:"fields"`
	Selected []string    `json:"selected"`
}

// ProposalResponse carries the generated document. Selected lists the IDs
// that made it into the document, in dataset order.
type ProposalResponse struct {
	Type     core.DocType `json:"type"`
	Title    string       `json:"title"`
	Document string       `json:"document"`
	Selected []string     `json:"selected"`
}

// ReloadResponse reports the outcome of a dataset reload.
type ReloadResponse struct {
	Status  core.Status `json:"status"`
	Message string      `json:"message"`
}

type pageData struct {
	View     core.View
	Fields   core.Fields
	Hidden   []string
	Document string
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// session builds a request-scoped state on top of the current records.
func (s *Server) session(t core.DocType, query string, f core.Fields, ids []string) core.State {
	st := s.svc.Session().WithType(t).WithQuery(query).WithFields(f)
	st.Selected = core.NewSelection(ids...)
	return st
}

func formFields(form url.Values) core.Fields {
	return core.Fields{
		Organization: form.Get("org"),
		Audience:     form.Get("audience"),
		Duration:     form.Get("duration"),
		Headcount:    form.Get("people"),
		Topic:        form.Get("topic"),
		Pains:        form.Get("pains"),
	}
}

func (s *Server) formSession(c *gin.Context) (core.State, error) {
	if err := c.Request.ParseForm(); err != nil {
		return core.State{}, err
	}
	form := c.Request.Form
	t, err := core.ParseDocType(form.Get("type"))
	if err != nil {
		t = core.DefaultDocType
	}
	return s.session(t, form.Get("q"), formFields(form), form["id"]), nil
}

// Index renders the selection page. With generate=1 the document is shown too.
func (s *Server) Index(c *gin.Context) {
	st, err := s.formSession(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_form", err)
		return
	}

	view := core.Render(st)
	view.Items = sanitizeItems(view.Items)

	visible := make(map[string]bool, len(view.Items))
	for _, it := range view.Items {
		visible[it.ID] = true
	}
	data := pageData{View: view, Fields: st.Fields}
	for _, id := range st.Selected.IDs() {
		if !visible[id] {
			data.Hidden = append(data.Hidden, id)
		}
	}
	if c.Request.Form.Get("generate") != "" {
		data.Document = assembler.FromState(st).Text()
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		s.logger.Error("render failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "render_failed", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Tools lists the records matching ?q= as view items.
func (s *Server) Tools(c *gin.Context) {
	st := s.session(core.DefaultDocType, c.Query("q"), core.Fields{}, c.QueryArray("id"))
	RespondOK(c, core.Render(st))
}

// State exposes the service introspection state.
func (s *Server) State(c *gin.Context) {
	RespondOK(c, s.svc.State())
}

// Reload refetches the dataset. A retrieval failure is reported as 502.
func (s *Server) Reload(c *gin.Context) {
	st, err := s.svc.Reload(c.Request.Context())
	if err != nil {
		code := http.StatusBadGateway
		if errors.Is(err, core.ErrNoSource) {
			code = http.StatusServiceUnavailable
		}
		RespondError(c, code, "retrieval_failed", errors.New(st.Message()))
		return
	}
	RespondOK(c, ReloadResponse{Status: st, Message: st.Message()})
}

func (s *Server) build(c *gin.Context) (assembler.Document, core.State, bool) {
	var req ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return assembler.Document{}, core.State{}, false
	}
	t, err := core.ParseDocType(req.Type)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "unknown_type", err)
		return assembler.Document{}, core.State{}, false
	}
	st := s.session(t, "", req.Fields, req.Selected)
	return assembler.FromState(st), st, true
}

// Proposal generates a document from JSON input.
func (s *Server) Proposal(c *gin.Context) {
	doc, st, ok := s.build(c)
	if !ok {
		return
	}

	ids := []string{}
	for _, r := range st.SelectedRecords() {
		ids = append(ids, r.ID)
	}
	RespondOK(c, ProposalResponse{
		Type:     doc.Type,
		Title:    doc.Title,
		Document: doc.Text(),
		Selected: ids,
	})
}

// Download generates a document from JSON input and returns it as a file.
func (s *Server) Download(c *gin.Context) {
	doc, _, ok := s.build(c)
	if !ok {
		return
	}
	s.attach(c, doc.Text())
}

// FormDownload is Download for the HTML form.
func (s *Server) FormDownload(c *gin.Context) {
	st, err := s.formSession(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_form", err)
		return
	}
	s.attach(c, assembler.FromState(st).Text())
}

func (s *Server) attach(c *gin.Context, text string) {
	name := export.DownloadName(s.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Header("Cache-Control", NoStore)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// Static serves assets from the static directory under the cache policy.
func (s *Server) Static(c *gin.Context) {
	name := c.Param("filepath")
	c.Header("Cache-Control", s.cache.Header(name))
	c.FileFromFS(name, http.Dir(s.static))
}
