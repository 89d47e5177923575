package ld

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJsonLdError_Unwrap(t *testing.T) {
	t.Run("Details is error", func(t *testing.T) {
		err := errors.New("failed")
		assert.Equal(t, err, NewJsonLdError(UnknownError, err).Unwrap())
	})
	t.Run("Details is not an error", func(t *testing.T) {
		assert.Nil(t, NewJsonLdError(UnknownError, "failed").Unwrap())
	})
	t.Run("Details is nil", func(t *testing.T) {
		assert.Nil(t, NewJsonLdError(UnknownError, nil).Unwrap())
	})
}

func TestWarnings_Add(t *testing.T) {
	var w Warnings
	assert.Empty(t, w.All())

	w.Add(KeywordLikeTerm, "@foo")
	w.Add(MalformedIri, "not a://n iri")

	all := w.All()
	if assert.Len(t, all, 2) {
		assert.Equal(t, KeywordLikeTerm, all[0].Code)
		assert.Equal(t, "@foo", all[0].Details)
		assert.Equal(t, MalformedIri, all[1].Code)
	}
}

func TestWarnings_NilReceiver(t *testing.T) {
	var w *Warnings
	assert.NotPanics(t, func() { w.Add(KeywordLikeValue, "@bar") })
	assert.Nil(t, w.All())
}
