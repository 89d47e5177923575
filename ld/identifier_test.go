package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierFromString(t *testing.T) {
	assert.True(t, IsIRIIdentifier(IdentifierFromString("http://example.com/")))
	assert.True(t, IsBlankNodeIdentifier(IdentifierFromString("_:b0")))

	invalid := IdentifierFromString("not-an-iri")
	_, ok := invalid.(*InvalidIdentifier)
	assert.True(t, ok)
	assert.Equal(t, "not-an-iri", invalid.GetValue())
}

func TestIdentifier_Equal(t *testing.T) {
	assert.True(t, NewIRI("http://example.com/").Equal(NewIRI("http://example.com/")))
	assert.False(t, NewIRI("http://example.com/").Equal(NewIRI("http://example.org/")))
	assert.True(t, NewBlankNode("_:b0").Equal(NewBlankNode("_:b0")))
	assert.False(t, NewIRI("http://example.com/").Equal(NewBlankNode("_:b0")))
}

type schemaOrgTerm int

const (
	schemaOrgUnknown schemaOrgTerm = iota
	schemaOrgPerson
	schemaOrgName
)

type schemaOrgVocab struct{}

func (schemaOrgVocab) FromIRI(iri string) (schemaOrgTerm, bool) {
	switch iri {
	case "http://schema.org/Person":
		return schemaOrgPerson, true
	case "http://schema.org/name":
		return schemaOrgName, true
	default:
		return schemaOrgUnknown, false
	}
}

func (schemaOrgVocab) AsIRI(v schemaOrgTerm) string {
	switch v {
	case schemaOrgPerson:
		return "http://schema.org/Person"
	case schemaOrgName:
		return "http://schema.org/name"
	default:
		return ""
	}
}

func TestLexicon_Resolve(t *testing.T) {
	vocab := schemaOrgVocab{}

	known := Resolve(vocab, "http://schema.org/Person")
	id, ok := known.ID()
	assert.True(t, ok)
	assert.Equal(t, schemaOrgPerson, id)
	assert.Equal(t, "http://schema.org/Person", known.IRI(vocab))

	unknown := Resolve(vocab, "http://example.com/custom")
	_, ok = unknown.ID()
	assert.False(t, ok)
	assert.Equal(t, "http://example.com/custom", unknown.IRI(vocab))
}
