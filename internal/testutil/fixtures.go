package testutil

import (
	"embed"

	"github.com/sandboxgui/wsbctl/internal/config"
)

//go:embed fixtures/*.json fixtures/*.wsb
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadDocumentFixture parses a JSON document fixture.
func LoadDocumentFixture(name string) (config.Configuration, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return config.Configuration{}, err
	}
	return config.Parse(data)
}

// FullDocument returns the fixture that sets every field.
func FullDocument() (config.Configuration, error) {
	return LoadDocumentFixture("full_document.json")
}

// FullDocumentWSB returns the expected export of FullDocument.
func FullDocumentWSB() (string, error) {
	data, err := LoadFixture("full_document.wsb")
	return string(data), err
}

// PartialDocument returns a fixture with only a few keys set and one
// unknown key.
func PartialDocument() (config.Configuration, error) {
	return LoadDocumentFixture("partial_document.json")
}
