package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadValidCatalogs(t *testing.T) {
	dir := t.TempDir()
	toolPath := writeFile(t, dir, "tools.json", `{
		"text_generation": {
			"optimal_models": {"openai": {"default": "gpt-4"}},
			"best_providers": ["openai"]
		}
	}`)
	modelPath := writeFile(t, dir, "models.json", `{
		"language_models": {
			"gpt-4": {"context_length": 128000, "capabilities": ["creative"]}
		},
		"image_models": {}
	}`)

	catalogs := Load(toolPath, modelPath)
	entry, ok := catalogs.Tools["text_generation"]
	if !ok {
		t.Fatal("expected text_generation entry")
	}
	if entry.OptimalModels["openai"]["default"] != "gpt-4" {
		t.Fatalf("unexpected default model: %v", entry.OptimalModels)
	}
	if catalogs.Models.LanguageModels["gpt-4"].ContextLength != 128000 {
		t.Fatal("expected gpt-4 context length")
	}
}

func TestLoadMissingFilesDegradeToEmpty(t *testing.T) {
	catalogs := Load("/nonexistent/tools.json", "/nonexistent/models.json")
	if len(catalogs.Tools) != 0 {
		t.Fatalf("expected empty tool catalog, got %d entries", len(catalogs.Tools))
	}
	if len(catalogs.Models.LanguageModels) != 0 {
		t.Fatal("expected empty model catalog")
	}
}

func TestLoadMalformedDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	toolPath := writeFile(t, dir, "tools.json", `{not json`)
	modelPath := writeFile(t, dir, "models.json", `[]`)

	catalogs := Load(toolPath, modelPath)
	if len(catalogs.Tools) != 0 {
		t.Fatal("malformed tool catalog should degrade to empty")
	}
	if len(catalogs.Models.LanguageModels) != 0 {
		t.Fatal("malformed model catalog should degrade to empty")
	}
}

func TestLoadDropsMappingsWithoutDefault(t *testing.T) {
	dir := t.TempDir()
	toolPath := writeFile(t, dir, "tools.json", `{
		"code_generation": {
			"optimal_models": {"openai": {"debugging": "gpt-4"}},
			"best_providers": []
		}
	}`)
	modelPath := writeFile(t, dir, "models.json", `{"language_models": {}, "image_models": {}}`)

	catalogs := Load(toolPath, modelPath)
	if _, ok := catalogs.Tools["code_generation"]; ok {
		t.Fatal("entry without any default mapping should be dropped")
	}
}
