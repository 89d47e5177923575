package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJsonLdOptions_Copy(t *testing.T) {
	expected := JsonLdOptions{
		Base:                  "base",
		CompactArrays:         true,
		ProcessingMode:        JsonLd_1_1,
		DocumentLoader:        NewDefaultDocumentLoader(nil),
		OverrideProtected:     true,
		Propagate:             true,
		CompactToRelative:     true,
		UseNativeTypes:        true,
		RDFDirection:          "i18n-datatype",
		ProduceGeneralizedRdf: true,
		MaxRemoteContexts:     16,
		SafeMode:              true,
	}
	assert.Equal(t, expected, *expected.Copy())
}

func TestJsonLdOptions_Defaults(t *testing.T) {
	opts := NewJsonLdOptions("https://example.com/")
	assert.Equal(t, "https://example.com/", opts.Base)
	assert.True(t, opts.CompactArrays)
	assert.Equal(t, JsonLd_1_1, opts.ProcessingMode)
	assert.True(t, opts.Propagate)
	assert.False(t, opts.SafeMode)
	assert.Equal(t, DefaultMaxRemoteContexts, opts.MaxRemoteContexts)
}

func TestJsonLdOptions_MaxRemoteContextsFallback(t *testing.T) {
	var opts *JsonLdOptions
	assert.Equal(t, DefaultMaxRemoteContexts, opts.maxRemoteContexts())

	opts = &JsonLdOptions{}
	assert.Equal(t, DefaultMaxRemoteContexts, opts.maxRemoteContexts())

	opts.MaxRemoteContexts = 4
	assert.Equal(t, 4, opts.maxRemoteContexts())
}
