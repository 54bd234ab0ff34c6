package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/idilsaglam/bucket/internal/category"
)

// isolate keeps stray .bucket files out of the search path.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("BUCKET_CONFIG_PATH", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefaults(t *testing.T) {
	isolate(t)
	c, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Backend != BackendHTTP || c.URL != "http://localhost:8000" {
		t.Errorf("unexpected backend %q url %q", c.Backend, c.URL)
	}
	if c.Timeout != 5*time.Second || c.Theme != "classic" {
		t.Errorf("unexpected timeout %v theme %q", c.Timeout, c.Theme)
	}
	if !reflect.DeepEqual(c.Categories, category.DefaultLabels) {
		t.Errorf("unexpected categories %v", c.Categories)
	}
	if c.Serve.Addr != ":8000" || c.Serve.Data != "data/bucket.json" {
		t.Errorf("unexpected serve config %+v", c.Serve)
	}
}

func TestEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("BUCKET_BACKEND", "File")
	t.Setenv("BUCKET_CATEGORIES", "Home, Work,Home")
	t.Setenv("BUCKET_SERVE_ADDR", ":9090")

	c, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Backend != BackendFile || c.Path != "bucket.json" {
		t.Errorf("unexpected backend %q path %q", c.Backend, c.Path)
	}
	if want := []string{"Home", "Work"}; !reflect.DeepEqual(c.Categories, want) {
		t.Errorf("expected %v, got %v", want, c.Categories)
	}
	if c.Serve.Addr != ":9090" {
		t.Errorf("expected serve addr from env, got %q", c.Serve.Addr)
	}
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "bucket.yaml")
	body := "backend: sqlite\npath: lists/b.sqlite\ncategories: [Errands, Ideas]\ntimeout: 2s\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(viper.New(), file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Backend != BackendSQLite || c.Path != "lists/b.sqlite" || c.Timeout != 2*time.Second {
		t.Errorf("unexpected config %+v", c)
	}
	if want := []string{"Errands", "Ideas"}; !reflect.DeepEqual(c.Categories, want) {
		t.Errorf("expected %v, got %v", want, c.Categories)
	}
}

func TestUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("BUCKET_BACKEND", "carrier-pigeon")
	if _, err := Load(viper.New(), ""); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestDefaultPath(t *testing.T) {
	for backend, want := range map[string]string{
		BackendFile: "bucket.json", BackendDiskv: "bucket.db", BackendSQLite: "bucket.sqlite", BackendHTTP: "",
	} {
		if got := DefaultPath(backend); got != want {
			t.Errorf("DefaultPath(%s) = %q, want %q", backend, got, want)
		}
	}
}
