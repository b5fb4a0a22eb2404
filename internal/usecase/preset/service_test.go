package preset

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/dateformat"
	"github.com/kailas-cloud/dateformat/internal/domain"
	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
	dompreset "github.com/kailas-cloud/dateformat/internal/domain/preset"
)

// --- Mocks ---

type mockRepo struct {
	saved      dompreset.Preset
	saveNew    bool
	getResult  dompreset.Preset
	listResult []dompreset.Preset
	saveErr    error
	getErr     error
	listErr    error
	deleteErr  error
	deleted    string
}

func (m *mockRepo) Save(_ context.Context, p dompreset.Preset) (dompreset.Preset, bool, error) {
	m.saved = p
	return p, m.saveNew, m.saveErr
}

func (m *mockRepo) Get(_ context.Context, _ string) (dompreset.Preset, error) {
	return m.getResult, m.getErr
}

func (m *mockRepo) List(_ context.Context) ([]dompreset.Preset, error) {
	return m.listResult, m.listErr
}

func (m *mockRepo) Delete(_ context.Context, name string) error {
	m.deleted = name
	return m.deleteErr
}

func newService(repo *mockRepo) *Service {
	return New(repo, domlocale.NewRegistry())
}

// --- Tests ---

func TestDefine_HappyPath(t *testing.T) {
	repo := &mockRepo{saveNew: true}
	svc := newService(repo)

	p, created, err := svc.Define(context.Background(), Definition{
		Name: "daily", Pattern: "yyyy-MM-dd", UTC: true, Locale: "en-GB",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}
	if p.Name() != "daily" || repo.saved.Pattern() != "yyyy-MM-dd" || !repo.saved.UTC() {
		t.Errorf("unexpected saved preset: %+v", repo.saved)
	}
}

func TestDefine_Builtin(t *testing.T) {
	svc := newService(&mockRepo{})
	_, _, err := svc.Define(context.Background(), Definition{Name: "RFC822", Pattern: "yyyy"})
	if !errors.Is(err, domain.ErrBuiltinPattern) {
		t.Fatalf("expected ErrBuiltinPattern, got %v", err)
	}
}

func TestDefine_UnknownLocale(t *testing.T) {
	svc := newService(&mockRepo{})
	_, _, err := svc.Define(context.Background(), Definition{Name: "x", Pattern: "yyyy", Locale: "de"})
	if !errors.Is(err, domain.ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestDefine_Invalid(t *testing.T) {
	svc := newService(&mockRepo{})
	ctx := context.Background()
	if _, _, err := svc.Define(ctx, Definition{Name: "bad name", Pattern: "yyyy"}); !errors.Is(err, domain.ErrInvalidPatternName) {
		t.Errorf("expected ErrInvalidPatternName, got %v", err)
	}
	if _, _, err := svc.Define(ctx, Definition{Name: "ok", Pattern: "'literal'"}); !errors.Is(err, domain.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestDefine_RepoError(t *testing.T) {
	svc := newService(&mockRepo{saveErr: errors.New("connection lost")})
	if _, _, err := svc.Define(context.Background(), Definition{Name: "x", Pattern: "yyyy"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestResolve_BuiltinFirst(t *testing.T) {
	repo := &mockRepo{getErr: errors.New("must not be called")}
	svc := newService(repo)

	p, err := svc.Resolve(context.Background(), "COOKIE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Pattern() != dateformat.COOKIE {
		t.Errorf("pattern = %q, want %q", p.Pattern(), dateformat.COOKIE)
	}
}

func TestResolve_Stored(t *testing.T) {
	stored := dompreset.Reconstruct("daily", "yyyy-MM-dd", "", true, "fr", 1, 1)
	svc := newService(&mockRepo{getResult: stored})
	p, err := svc.Resolve(context.Background(), "daily")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Locale() != "fr" || !p.UTC() {
		t.Errorf("unexpected preset: %+v", p)
	}
}

func TestResolve_NotFound(t *testing.T) {
	svc := newService(&mockRepo{getErr: domain.ErrPatternNotFound})
	if _, err := svc.Resolve(context.Background(), "nope"); !errors.Is(err, domain.ErrPatternNotFound) {
		t.Fatalf("expected ErrPatternNotFound, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), "a b"); !errors.Is(err, domain.ErrInvalidPatternName) {
		t.Fatalf("expected ErrInvalidPatternName, got %v", err)
	}
}

func TestList_BuiltinsThenStored(t *testing.T) {
	stored := []dompreset.Preset{dompreset.Reconstruct("daily", "yyyy-MM-dd", "", false, "", 1, 1)}
	svc := newService(&mockRepo{listResult: stored})

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := len(dateformat.NamedPatterns())
	if len(list) != n+1 {
		t.Fatalf("len = %d, want %d", len(list), n+1)
	}
	if !list[0].Builtin || list[n].Builtin || list[n].Preset.Name() != "daily" {
		t.Errorf("unexpected ordering: first=%+v last=%+v", list[0], list[n])
	}
}

func TestDelete(t *testing.T) {
	repo := &mockRepo{}
	svc := newService(repo)
	ctx := context.Background()

	if err := svc.Delete(ctx, "daily"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deleted != "daily" {
		t.Errorf("deleted = %q", repo.deleted)
	}
	if err := svc.Delete(ctx, "ISO8601"); !errors.Is(err, domain.ErrBuiltinPattern) {
		t.Errorf("expected ErrBuiltinPattern, got %v", err)
	}

	repo.deleteErr = domain.ErrPatternNotFound
	if err := svc.Delete(ctx, "gone"); !errors.Is(err, domain.ErrPatternNotFound) {
		t.Errorf("expected ErrPatternNotFound, got %v", err)
	}
}

func TestSeed_StopsOnError(t *testing.T) {
	svc := newService(&mockRepo{})
	err := svc.Seed(context.Background(), []Definition{
		{Name: "ok", Pattern: "yyyy"},
		{Name: "JSON", Pattern: "yyyy"},
	})
	if !errors.Is(err, domain.ErrBuiltinPattern) {
		t.Fatalf("expected ErrBuiltinPattern, got %v", err)
	}
}
