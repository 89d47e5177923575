package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpLoader(t *testing.T) {
	_, err := (NoOpLoader{}).LoadDocument("http://example.com/context.jsonld")
	require.Error(t, err)

	jsonLDError := new(JsonLdError)
	require.ErrorAs(t, err, &jsonLDError)
	assert.Equal(t, LoadingDocumentFailed, jsonLDError.Code)
}

func TestLoadContext(t *testing.T) {
	t.Run("document has no @context", func(t *testing.T) {
		loader := NewCachingDocumentLoader(NoOpLoader{})
		loader.AddDocument("http://example.com/doc.jsonld", map[string]interface{}{
			"name": "no context here",
		})

		_, _, err := LoadContext(loader, "http://example.com/doc.jsonld")
		require.Error(t, err)

		jsonLDError := new(JsonLdError)
		require.ErrorAs(t, err, &jsonLDError)
		assert.Equal(t, InvalidRemoteContext, jsonLDError.Code)
	})

	t.Run("document is not an object", func(t *testing.T) {
		loader := NewCachingDocumentLoader(NoOpLoader{})
		loader.AddDocument("http://example.com/doc.jsonld", []interface{}{"not an object"})

		_, _, err := LoadContext(loader, "http://example.com/doc.jsonld")
		require.Error(t, err)

		jsonLDError := new(JsonLdError)
		require.ErrorAs(t, err, &jsonLDError)
		assert.Equal(t, InvalidRemoteContext, jsonLDError.Code)
	})

	t.Run("success", func(t *testing.T) {
		loader := NewCachingDocumentLoader(NoOpLoader{})
		loader.AddDocument("http://example.com/context.jsonld", map[string]interface{}{
			"@context": map[string]interface{}{
				"name": "http://schema.org/name",
			},
		})

		_, ctx, err := LoadContext(loader, "http://example.com/context.jsonld")
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"name": "http://schema.org/name"}, ctx)
	})

	t.Run("loader JsonLdError is returned unchanged", func(t *testing.T) {
		_, _, err := LoadContext(NoOpLoader{}, "http://example.com/context.jsonld")
		require.Error(t, err)
		jsonLDError := new(JsonLdError)
		require.ErrorAs(t, err, &jsonLDError)
		assert.Equal(t, LoadingDocumentFailed, jsonLDError.Code)
	})
}

func TestCachingDocumentLoader_PreloadWithMapping(t *testing.T) {
	base := NewCachingDocumentLoader(NoOpLoader{})
	base.AddDocument("/local/context.jsonld", map[string]interface{}{
		"@context": map[string]interface{}{"name": "http://schema.org/name"},
	})

	overlay := NewCachingDocumentLoader(base)
	err := overlay.PreloadWithMapping(map[string]string{
		"http://example.com/context.jsonld": "/local/context.jsonld",
	})
	require.NoError(t, err)

	doc, err := overlay.LoadDocument("http://example.com/context.jsonld")
	require.NoError(t, err)
	assert.Equal(t, "/local/context.jsonld", doc.DocumentURL)
}

func TestParseLinkHeader(t *testing.T) {
	header := `<http://json-ld.org/contexts/person.jsonld>; rel="http://www.w3.org/ns/json-ld#context"; type="application/ld+json"`
	parsed := ParseLinkHeader(header)

	links := parsed["http://www.w3.org/ns/json-ld#context"]
	if assert.Len(t, links, 1) {
		assert.Equal(t, "http://json-ld.org/contexts/person.jsonld", links[0]["target"])
		assert.Equal(t, "application/ld+json", links[0]["type"])
	}
}
