package sdk

import (
	"context"
	"time"

	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
	dompreset "github.com/kailas-cloud/dateformat/internal/domain/preset"
	datetimeuc "github.com/kailas-cloud/dateformat/internal/usecase/datetime"
	presetuc "github.com/kailas-cloud/dateformat/internal/usecase/preset"
)

// --- datetimeUseCase mock ---

type mockDatetimeUC struct {
	formatFn func(ctx context.Context, req datetimeuc.Request, t time.Time) (datetimeuc.Result, error)
	parseFn  func(ctx context.Context, req datetimeuc.Request, text string) (datetimeuc.Parsed, error)
}

func (m *mockDatetimeUC) Format(ctx context.Context, req datetimeuc.Request, t time.Time) (datetimeuc.Result, error) {
	return m.formatFn(ctx, req, t)
}

func (m *mockDatetimeUC) Parse(ctx context.Context, req datetimeuc.Request, text string) (datetimeuc.Parsed, error) {
	return m.parseFn(ctx, req, text)
}

// --- presetUseCase mock ---

type mockPresetUC struct {
	defineFn  func(ctx context.Context, d presetuc.Definition) (dompreset.Preset, bool, error)
	resolveFn func(ctx context.Context, name string) (dompreset.Preset, error)
	listFn    func(ctx context.Context) ([]presetuc.Entry, error)
	deleteFn  func(ctx context.Context, name string) error
}

func (m *mockPresetUC) Define(ctx context.Context, d presetuc.Definition) (dompreset.Preset, bool, error) {
	return m.defineFn(ctx, d)
}

func (m *mockPresetUC) Resolve(ctx context.Context, name string) (dompreset.Preset, error) {
	return m.resolveFn(ctx, name)
}

func (m *mockPresetUC) List(ctx context.Context) ([]presetuc.Entry, error) {
	return m.listFn(ctx)
}

func (m *mockPresetUC) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

// --- localeUseCase mock ---

type mockLocaleUC struct {
	registerFn func(ctx context.Context, l domlocale.Locale) (domlocale.Locale, error)
	getFn      func(name string) (domlocale.Locale, error)
	namesFn    func() []string
	deleteFn   func(ctx context.Context, name string) error
}

func (m *mockLocaleUC) Register(ctx context.Context, l domlocale.Locale) (domlocale.Locale, error) {
	return m.registerFn(ctx, l)
}

func (m *mockLocaleUC) Get(name string) (domlocale.Locale, error) {
	return m.getFn(name)
}

func (m *mockLocaleUC) Names() []string {
	return m.namesFn()
}

func (m *mockLocaleUC) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}
