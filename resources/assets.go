package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"
)

const (
	iconDir        = "icon/"
	translationDir = "translations"
)

//go:embed icon/*.svg
var iconFS embed.FS

//go:embed translations/*.json
var translationFS embed.FS

var iconCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+fileName, &iconCache)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// LoadTranslations registers the embedded string tables with fyne's lang package.
func LoadTranslations() error {
	if err := lang.AddTranslationsFS(translationFS, translationDir); err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	return nil
}

// Translation returns the raw table for a language, e.g. "en".
func Translation(language string) ([]byte, error) {
	data, err := translationFS.ReadFile(translationDir + "/" + language + ".json")
	if err != nil {
		return nil, fmt.Errorf("read translation %s: %w", language, err)
	}
	return data, nil
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
