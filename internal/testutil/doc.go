// Package testutil provides test fixtures and utilities.
//
// This package contains embedded document fixtures and a command test
// environment.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/full_document.json     // every field set, one unusable folder
//	fixtures/full_document.wsb      // expected export of full_document.json
//	fixtures/partial_document.json  // a few keys plus an unknown one
//	fixtures/malformed_folders.json // folder entries of the wrong shape
//	fixtures/out_of_range.json      // memory below the minimum
//	fixtures/invalid_json.json      // truncated JSON
//
// # Loading Fixtures
//
//	cfg, err := testutil.FullDocument()
//	want, err := testutil.FullDocumentWSB()
//	data, err := testutil.LoadFixture("invalid_json.json")
//
// # Command Tests
//
// NewTestEnv installs an app.App rooted in t.TempDir() with a mock
// executor as app.Default and restores the previous default when the test
// ends:
//
//	env := testutil.NewTestEnv(t)
//	path := env.AddDocument("box.json", config.Default())
package testutil
