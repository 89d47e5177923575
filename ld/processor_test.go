package ld_test

import (
	"testing"

	. "github.com/jsonld-core/jsonld/ld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonLdProcessor_Expand(t *testing.T) {
	proc := NewJsonLdProcessor()
	opts := NewJsonLdOptions("")

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"name": "http://schema.org/name",
		},
		"name": "Jane Doe",
	}

	expanded, err := proc.Expand(doc, opts)
	require.NoError(t, err)

	require.Len(t, expanded, 1)
	node := expanded[0].(map[string]interface{})
	values := node["http://schema.org/name"].([]interface{})
	require.Len(t, values, 1)
	assert.Equal(t, "Jane Doe", values[0].(map[string]interface{})["@value"])
}

func TestJsonLdProcessor_Expand_droppedKeywordLikeKeys(t *testing.T) {
	proc := NewJsonLdProcessor()
	opts := NewJsonLdOptions("")

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"name": "http://schema.org/name",
		},
		"name":    "Jane Doe",
		"@nickel": "ignored",
	}

	expanded, err := proc.Expand(doc, opts)
	require.NoError(t, err)
	require.Len(t, expanded, 1)
	node := expanded[0].(map[string]interface{})
	_, hasNickel := node["@nickel"]
	assert.False(t, hasNickel)
}

func TestJsonLdProcessor_Expand_listOfListsRejected(t *testing.T) {
	proc := NewJsonLdProcessor()
	opts := NewJsonLdOptions("")

	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			"nested": map[string]interface{}{
				"@id":        "http://example.com/nested",
				"@container": "@list",
			},
		},
		"nested": []interface{}{
			[]interface{}{"a", "b"},
		},
	}

	_, err := proc.Expand(doc, opts)
	require.Error(t, err)
	jsonLDError := new(JsonLdError)
	require.ErrorAs(t, err, &jsonLDError)
	assert.Equal(t, ListOfLists, jsonLDError.Code)
}

func TestJsonLdProcessor_Compact_roundTrip(t *testing.T) {
	proc := NewJsonLdProcessor()
	opts := NewJsonLdOptions("")

	doc := map[string]interface{}{
		"@id": "http://example.org/test#book",
		"http://example.org/vocab#contains": map[string]interface{}{
			"@id": "http://example.org/test#chapter",
		},
		"http://purl.org/dc/elements/1.1/title": "Title",
	}

	context := map[string]interface{}{
		"@context": map[string]interface{}{
			"dc": "http://purl.org/dc/elements/1.1/",
			"ex": "http://example.org/vocab#",
			"ex:contains": map[string]interface{}{
				"@type": "@id",
			},
		},
	}

	compacted, err := proc.Compact(doc, context, opts)
	require.NoError(t, err)

	assert.Equal(t, "http://example.org/test#book", compacted["@id"])
	assert.Equal(t, "Title", compacted["dc:title"])
	assert.Equal(t, "http://example.org/test#chapter", compacted["ex:contains"])

	reExpanded, err := proc.Expand(compacted, opts)
	require.NoError(t, err)
	require.Len(t, reExpanded, 1)
	assert.Equal(t, "http://example.org/test#book", reExpanded[0].(map[string]interface{})["@id"])
}

func TestJsonLdProcessor_Expand_remoteContextOverflow(t *testing.T) {
	loader := NewCachingDocumentLoader(NoOpLoader{})

	// a chain of three distinct remote contexts, each referencing the next through its @context
	loader.AddDocument("http://example.com/ctx1.jsonld", map[string]interface{}{
		"@context": "http://example.com/ctx2.jsonld",
	})
	loader.AddDocument("http://example.com/ctx2.jsonld", map[string]interface{}{
		"@context": "http://example.com/ctx3.jsonld",
	})
	loader.AddDocument("http://example.com/ctx3.jsonld", map[string]interface{}{
		"@context": map[string]interface{}{"name": "http://schema.org/name"},
	})

	opts := NewJsonLdOptions("")
	opts.DocumentLoader = loader
	opts.MaxRemoteContexts = 2

	proc := NewJsonLdProcessor()
	doc := map[string]interface{}{
		"@context": "http://example.com/ctx1.jsonld",
		"name":     "test",
	}

	_, err := proc.Expand(doc, opts)
	require.Error(t, err)
	jsonLDError := new(JsonLdError)
	require.ErrorAs(t, err, &jsonLDError)
	assert.Equal(t, ContextOverflow, jsonLDError.Code)
}

func TestJsonLdProcessor_Expand_recursiveContextRejected(t *testing.T) {
	loader := NewCachingDocumentLoader(NoOpLoader{})
	loader.AddDocument("http://example.com/ctx.jsonld", map[string]interface{}{
		"@context": "http://example.com/ctx.jsonld",
	})

	opts := NewJsonLdOptions("")
	opts.DocumentLoader = loader

	proc := NewJsonLdProcessor()
	doc := map[string]interface{}{
		"@context": "http://example.com/ctx.jsonld",
		"name":     "test",
	}

	_, err := proc.Expand(doc, opts)
	require.Error(t, err)
	jsonLDError := new(JsonLdError)
	require.ErrorAs(t, err, &jsonLDError)
	assert.Equal(t, RecursiveContextInclusion, jsonLDError.Code)
}
