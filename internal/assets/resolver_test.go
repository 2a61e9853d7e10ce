package assets

import (
	"errors"
	"slices"
	"testing"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestResolver_LoadTemplate(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	custom := "<p>custom list</p>"
	writeTemplate(t, tmpDir, DefaultTemplateName, custom)

	resolver, err := NewResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	t.Run("custom template takes precedence", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != custom {
			t.Errorf("LoadTemplate() = %q, want custom content", got)
		}
	})

	t.Run("falls back to embedded template", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate("compact.html")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got == "" {
			t.Error("LoadTemplate() returned empty content")
		}
	})

	t.Run("missing everywhere returns ErrTemplateNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTemplate("missing.html")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name does not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTemplate("../listtemplate.html")
		if !errors.Is(err, ErrInvalidTemplateName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidTemplateName", err)
		}
	})
}

func TestResolver_ListTemplates(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeTemplate(t, tmpDir, DefaultTemplateName, "override")
	writeTemplate(t, tmpDir, "site.html", "site")

	resolver, err := NewResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	got, err := resolver.ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates() error = %v", err)
	}

	want := []string{"compact.html", DefaultTemplateName, "site.html"}
	if !slices.Equal(got, want) {
		t.Errorf("ListTemplates() = %v, want %v", got, want)
	}
}
