// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ld

import (
	"fmt"
)

// ErrorCode is a JSON-LD error code as per the JSON-LD API specification.
type ErrorCode string

// JsonLdError is a JSON-LD error as defined in the spec. Details carries
// whatever extra context is available: the offending value, a formatted
// message, or a wrapped error from a collaborator such as a DocumentLoader.
type JsonLdError struct { //nolint:stylecheck
	Code    ErrorCode
	Details interface{}
}

const (
	LoadingDocumentFailed       ErrorCode = "loading document failed"
	ListOfLists                 ErrorCode = "list of lists"
	InvalidIndexValue           ErrorCode = "invalid @index value"
	ConflictingIndexes          ErrorCode = "conflicting indexes"
	InvalidIDValue              ErrorCode = "invalid @id value"
	InvalidLocalContext         ErrorCode = "invalid local context"
	MultipleContextLinkHeaders  ErrorCode = "multiple context link headers"
	LoadingRemoteContextFailed  ErrorCode = "loading remote context failed"
	InvalidRemoteContext        ErrorCode = "invalid remote context"
	RecursiveContextInclusion   ErrorCode = "recursive context inclusion"
	ContextOverflow             ErrorCode = "context overflow"
	InvalidContextEntry         ErrorCode = "invalid context entry"
	InvalidContextNullification ErrorCode = "invalid context nullification"
	InvalidPropagateValue       ErrorCode = "invalid @propagate value"
	InvalidImportValue          ErrorCode = "invalid @import value"
	InvalidScopedContext        ErrorCode = "invalid scoped context"
	InvalidBaseIRI              ErrorCode = "invalid base IRI"
	InvalidBaseDirection        ErrorCode = "invalid base direction"
	InvalidVocabMapping         ErrorCode = "invalid vocab mapping"
	InvalidDefaultLanguage      ErrorCode = "invalid default language"
	InvalidVersionValue         ErrorCode = "invalid @version value"
	ProcessingModeConflict      ErrorCode = "processing mode conflict"
	KeywordRedefinition         ErrorCode = "keyword redefinition"
	InvalidTermDefinition       ErrorCode = "invalid term definition"
	InvalidReverseProperty      ErrorCode = "invalid reverse property"
	InvalidIRIMapping           ErrorCode = "invalid IRI mapping"
	IRIConfusedWithPrefix       ErrorCode = "IRI confused with prefix"
	CyclicIRIMapping            ErrorCode = "cyclic IRI mapping"
	InvalidKeywordAlias         ErrorCode = "invalid keyword alias"
	InvalidTypeMapping          ErrorCode = "invalid type mapping"
	InvalidLanguageMapping      ErrorCode = "invalid language mapping"
	CollidingKeywords           ErrorCode = "colliding keywords"
	InvalidContainerMapping     ErrorCode = "invalid container mapping"
	InvalidTypeValue            ErrorCode = "invalid type value"
	InvalidValueObject          ErrorCode = "invalid value object"
	InvalidValueObjectValue     ErrorCode = "invalid value object value"
	InvalidLanguageTaggedString ErrorCode = "invalid language-tagged string"
	InvalidLanguageTaggedValue  ErrorCode = "invalid language-tagged value"
	InvalidTypedValue           ErrorCode = "invalid typed value"
	InvalidSetOrListObject      ErrorCode = "invalid set or list object"
	InvalidLanguageMapValue     ErrorCode = "invalid language map value"
	CompactionToListOfLists     ErrorCode = "compaction to list of lists"
	InvalidReversePropertyMap   ErrorCode = "invalid reverse property map"
	InvalidReverseValue         ErrorCode = "invalid @reverse value"
	InvalidReversePropertyValue ErrorCode = "invalid reverse property value"
	InvalidPrefixValue          ErrorCode = "invalid @prefix value"
	InvalidProtectedValue       ErrorCode = "invalid @protected value"
	ProtectedTermRedefinition   ErrorCode = "protected term redefinition"
	InvalidNestValue            ErrorCode = "invalid @nest value"

	// non-spec errors, kept for callers that need to distinguish
	// collaborator failures from the JSON-LD API error codes above.
	SyntaxError    ErrorCode = "syntax error"
	NotImplemented ErrorCode = "not implemented"
	UnknownFormat  ErrorCode = "unknown format"
	InvalidInput   ErrorCode = "invalid input"
	ParseError     ErrorCode = "parse error"
	IOError        ErrorCode = "io error"
	UnknownError   ErrorCode = "unknown error"
)

func (e *JsonLdError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%v: %v", e.Code, e.Details)
	}
	return fmt.Sprintf("%v", e.Code)
}

// Unwrap lets errors.Is/errors.As see through a JsonLdError to a wrapped
// collaborator error (e.g. a DocumentLoader failure), when Details holds one.
func (e *JsonLdError) Unwrap() error {
	if err, ok := e.Details.(error); ok {
		return err
	}
	return nil
}

// NewJsonLdError creates a new instance of JsonLdError.
func NewJsonLdError(code ErrorCode, details interface{}) *JsonLdError { //nolint:stylecheck
	return &JsonLdError{Code: code, Details: details}
}

// Warning is a non-fatal diagnostic accumulated during processing: a
// malformed IRI, a malformed language tag, or a keyword-like term/value
// that was silently ignored. Warnings never abort processing.
type Warning struct {
	Code    ErrorCode
	Details interface{}
}

func (w Warning) String() string {
	if w.Details != nil {
		return fmt.Sprintf("%v: %v", w.Code, w.Details)
	}
	return string(w.Code)
}

const (
	KeywordLikeTerm  ErrorCode = "term beginning with '@' ignored"
	KeywordLikeValue ErrorCode = "value beginning with '@' ignored"
	MalformedIri     ErrorCode = "malformed IRI"
)

// Warnings accumulates non-fatal diagnostics for a single processing call.
// The zero value is ready to use.
type Warnings struct {
	items []Warning
}

// Add records a warning.
func (w *Warnings) Add(code ErrorCode, details interface{}) {
	if w == nil {
		return
	}
	w.items = append(w.items, Warning{Code: code, Details: details})
}

// All returns the accumulated warnings in emission order.
func (w *Warnings) All() []Warning {
	if w == nil {
		return nil
	}
	return w.items
}
