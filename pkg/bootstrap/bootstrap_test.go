package bootstrap

import (
	"io"
	"testing"

	"github.com/shuldan/appcore/pkg/app"
	"github.com/shuldan/appcore/pkg/logger"
	"github.com/shuldan/appcore/pkg/resolver"
)

type staticLoader struct {
	values map[string]any
}

func (l staticLoader) Load() (map[string]any, error) {
	return l.values, nil
}

func bootTestValues() map[string]any {
	return map[string]any{
		"app": map[string]any{
			"status": app.Version,
			"url":    "https://boot.test",
		},
		"cache": map[string]any{"driver": "memory"},
	}
}

func cleanup(t *testing.T) {
	t.Helper()
	app.SetCurrent(nil)
	t.Cleanup(func() {
		if ctx := app.Current(); ctx != nil {
			_ = ctx.Dispose()
		}
		app.SetCurrent(nil)
		resolver.Reset()
		resolver.ResetState()
		resolver.RegisterDefaults()
	})
}

func quietBootstrap() *Bootstrap {
	return New("APPCORE_").WithLogger(logger.New(logger.WithWriter(io.Discard)))
}

func TestBootInstallsContext(t *testing.T) {
	cleanup(t)

	ctx, err := quietBootstrap().WithLoader(staticLoader{values: bootTestValues()}).Boot()
	if err != nil {
		t.Fatalf("boot failed: %v", err)
	}

	if app.Current() != ctx {
		t.Error("boot should install the context into the slot")
	}
	if ctx.Cache() == nil {
		t.Error("booted context should carry a cache")
	}
	if _, err := ctx.Database(); err != nil {
		t.Errorf("booted context should carry a database facility: %v", err)
	}
	if _, err := ctx.Services(); err != nil {
		t.Errorf("booted context should carry a service registry: %v", err)
	}
	if !ctx.IsConfigured() {
		t.Error("status matching the current version should report configured")
	}
	if got := ctx.ApplicationURL(); got != "https://boot.test" {
		t.Errorf("expected configured URL, got %q", got)
	}
	if ctx.IsReady() {
		t.Error("boot must not flip readiness; that is the caller's call")
	}
}

func TestBootKeepsExistingContext(t *testing.T) {
	cleanup(t)

	first, err := quietBootstrap().WithLoader(staticLoader{values: bootTestValues()}).Boot()
	if err != nil {
		t.Fatal(err)
	}

	second, err := quietBootstrap().WithLoader(staticLoader{values: bootTestValues()}).Boot()
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Error("boot without replace should keep the existing context")
	}
}

func TestBootReplace(t *testing.T) {
	cleanup(t)

	first, err := quietBootstrap().WithLoader(staticLoader{values: bootTestValues()}).Boot()
	if err != nil {
		t.Fatal(err)
	}

	second, err := quietBootstrap().
		WithLoader(staticLoader{values: bootTestValues()}).
		WithReplace().
		Boot()
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Error("boot with replace should install a fresh context")
	}
	if app.Current() != second {
		t.Error("slot should hold the replacement")
	}
}

func TestBootUnknownCacheDriver(t *testing.T) {
	cleanup(t)

	values := bootTestValues()
	values["cache"] = map[string]any{"driver": "bogus"}

	if _, err := quietBootstrap().WithLoader(staticLoader{values: values}).Boot(); err == nil {
		t.Error("unknown cache driver should fail boot")
	}
}
