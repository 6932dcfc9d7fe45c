package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/pkg/httpcontext"
	"github.com/healthcare24/backend/repository"
	entriesUC "github.com/healthcare24/backend/usecase/entries"
)

// recordingEntryRepo captures the filter the handler layer ends up sending to
// the ledger.
type recordingEntryRepo struct {
	called     bool
	lastFilter repository.EntryFilter
}

func (r *recordingEntryRepo) Create(_ context.Context, entry *domain.CompletionEntry) (*domain.CompletionEntry, error) {
	return entry, nil
}

func (r *recordingEntryRepo) List(_ context.Context, filter repository.EntryFilter) ([]domain.CompletionEntry, error) {
	r.called = true
	r.lastFilter = filter
	return nil, nil
}

func nurseRequest(uri string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI(uri)
	ctx.Request.Header.Set(httpcontext.HeaderUserID, "nurse-1")
	return ctx
}

func TestMyEntriesForwardsDateRange(t *testing.T) {
	repo := &recordingEntryRepo{}
	uc := entriesUC.New(repo, nil, nil, nil, nil, nil, nil)
	h := NewNurseHandler(nil, nil, uc, nil, nil)

	ctx := nurseRequest("/api/nurse/entries?startDate=2026-03-01&endDate=2026-03-10&patientId=p-1&limit=5")
	h.MyEntries(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, want 200", ctx.Response.StatusCode())
	}
	if !repo.called {
		t.Fatal("ledger was never queried")
	}
	if got, want := repo.lastFilter.From, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("from = %v, want %v", got, want)
	}
	// The end date is inclusive, so the bound is the following midnight.
	if got, want := repo.lastFilter.To, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("to = %v, want %v", got, want)
	}
	if repo.lastFilter.PatientID != "p-1" {
		t.Fatalf("patient = %q, want p-1", repo.lastFilter.PatientID)
	}
	if repo.lastFilter.NurseID != "nurse-1" {
		t.Fatalf("nurse = %q, want nurse-1", repo.lastFilter.NurseID)
	}
	if repo.lastFilter.Limit != 5 {
		t.Fatalf("limit = %d, want 5", repo.lastFilter.Limit)
	}
}

func TestMyEntriesRejectsMalformedDate(t *testing.T) {
	repo := &recordingEntryRepo{}
	uc := entriesUC.New(repo, nil, nil, nil, nil, nil, nil)
	h := NewNurseHandler(nil, nil, uc, nil, nil)

	ctx := nurseRequest("/api/nurse/entries?startDate=March%201")
	h.MyEntries(ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
	if repo.called {
		t.Fatal("ledger queried despite invalid date")
	}
}
