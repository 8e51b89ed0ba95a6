package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
	"github.com/msomdec/practice-demos/internal/service"
	"github.com/msomdec/practice-demos/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// RunHandler executes the demo runner and serves recorded transcripts.
type RunHandler struct {
	runs   *service.RunService
	shares *service.ShareService
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(runs *service.RunService, shares *service.ShareService) *RunHandler {
	return &RunHandler{runs: runs, shares: shares}
}

// HandleHome renders the demo list and recent runs.
// GET /{$}
func (h *RunHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	runs, err := h.runs.ListRecent(r.Context(), 20)
	if err != nil {
		slog.Error("list recent runs", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	view.HomePage(h.runs.Demos(), runs).Render(r.Context(), w)
}

// HandleList returns recent runs as JSON.
// GET /runs?limit=N
func (h *RunHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	runs, err := h.runs.ListRecent(r.Context(), limit)
	if err != nil {
		writeDomainError(w, "list runs", err)
		return
	}
	writeJSON(w, http.StatusOK, toRunDTOs(runs))
}

// HandleCreate executes every demo and returns the recorded run.
// POST /runs
func (h *RunHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	run, err := h.runs.Execute(r.Context(), io.Discard, io.Discard, nil)
	if err != nil {
		writeDomainError(w, "execute run", err)
		return
	}
	w.Header().Set("Location", "/runs/"+run.ID)
	writeJSON(w, http.StatusCreated, toRunDTO(run))
}

// HandleLive executes every demo and streams each console line to the page
// as it is printed.
// POST /runs/live
func (h *RunHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	// Reset the transcript from any previous live run.
	if err := sse.PatchElementTempl(view.LiveTranscript()); err != nil {
		slog.Debug("reset live transcript", "error", err)
		return
	}

	run, err := h.runs.Execute(r.Context(), io.Discard, io.Discard, func(line domain.RunLine) {
		if err := sse.PatchElementTempl(
			view.RunLineFragment(line),
			datastar.WithSelectorID(view.LiveLinesID),
			datastar.WithModeAppend(),
		); err != nil {
			slog.Debug("stream run line", "seq", line.Seq, "error", err)
		}
	})
	if err != nil {
		slog.Error("live run", "error", err)
		return
	}

	if err := sse.PatchElementTempl(
		view.LiveRunSaved(run.ID),
		datastar.WithSelectorID(view.LiveLinesID),
		datastar.WithModeAppend(),
	); err != nil {
		slog.Debug("stream run link", "run_id", run.ID, "error", err)
	}
}

// HandleShow renders a recorded run.
// GET /runs/{id}
func (h *RunHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	run, err := h.runs.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		renderRunError(w, r, err)
		return
	}
	view.RunPage(run, false).Render(r.Context(), w)
}

// HandleShare issues a signed share link for a run. Runs are public; the
// link is a read-only view of the transcript that expires. JSON clients get
// the link in the body; browsers are redirected to it.
// POST /runs/{id}/share
func (h *RunHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	run, err := h.runs.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, "share run", err)
		return
	}

	token, expires, err := h.shares.Issue(run.ID)
	if err != nil {
		writeDomainError(w, "issue share token", err)
		return
	}
	link := "/shared/" + token

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusCreated, ShareDTO{URL: link, ExpiresAt: expires.Format(time.RFC3339)})
		return
	}
	http.Redirect(w, r, link, http.StatusSeeOther)
}

// HandleShared renders a run reached through a share link.
// GET /shared/{token}
func (h *RunHandler) HandleShared(w http.ResponseWriter, r *http.Request) {
	runID, err := h.shares.Resolve(r.PathValue("token"))
	if err != nil {
		w.WriteHeader(http.StatusForbidden)
		view.ErrorPage(http.StatusForbidden, "Link expired", "This share link is invalid or has expired.").Render(r.Context(), w)
		return
	}

	run, err := h.runs.Get(r.Context(), runID)
	if err != nil {
		renderRunError(w, r, err)
		return
	}
	view.RunPage(run, true).Render(r.Context(), w)
}

// HandleDeleteAll removes every recorded run.
// DELETE /runs
func (h *RunHandler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.runs.DeleteAll(r.Context())
	if err != nil {
		writeDomainError(w, "delete runs", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

func renderRunError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
		w.WriteHeader(http.StatusNotFound)
		view.ErrorPage(http.StatusNotFound, "Not Found", "No run with that ID exists.").Render(r.Context(), w)
	default:
		slog.Error("load run", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
