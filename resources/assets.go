package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const iconDir = "icons/"

//go:embed icons/*.svg
var iconFS embed.FS

var iconCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	if cached, ok := iconCache.Load(fileName); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := iconFS.ReadFile(iconDir + fileName)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", fileName, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	iconCache.Store(fileName, resource)
	return resource, nil
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// IconBytes returns the raw SVG bytes for the given icon file.
func IconBytes(fileName string) ([]byte, error) {
	data, err := iconFS.ReadFile(iconDir + fileName)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", fileName, err)
	}
	return data, nil
}
