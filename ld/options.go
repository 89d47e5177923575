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

const (
	JsonLd_1_0 = "json-ld-1.0" //nolint:stylecheck
	JsonLd_1_1 = "json-ld-1.1" //nolint:stylecheck

	// DefaultMaxRemoteContexts bounds how many remote contexts may be
	// dereferenced while resolving a single @context value, guarding
	// against runaway chains of distinct contexts. A context that
	// references one already being loaded is rejected separately, as
	// ld.RecursiveContextInclusion, before this limit applies. The JSON-LD API
	// spec recommends an implementation-defined limit of at least 32.
	DefaultMaxRemoteContexts = 32
)

// JsonLdOptions is the JsonLdOptions type from the JSON-LD API
// specification: http://www.w3.org/TR/json-ld-api/#the-jsonldoptions-type
//
// Frame-only and RDF-serialization-only fields from the original type
// (Embed, Explicit, RequireAll, FrameDefault, OmitDefault, OmitGraph,
// UseRdfType, ProduceGeneralizedRdf as an RDF-conversion knob, Algorithm,
// UseNamespaces) are not carried here: this processor only expands and
// compacts. ProduceGeneralizedRdf and RDFDirection are kept even though
// the RDF pass itself is out of scope, because they are properties of
// the *options record* a caller building that pass on top of us would
// still need to plumb through unchanged.
type JsonLdOptions struct { //nolint:stylecheck

	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-base
	Base string
	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-compactArrays
	CompactArrays bool
	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-expandContext
	ExpandContext interface{}
	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-processingMode
	ProcessingMode string
	// http://www.w3.org/TR/json-ld-api/#widl-JsonLdOptions-documentLoader
	DocumentLoader DocumentLoader

	// OverrideProtected allows a local context processed through
	// Context.Parse to redefine protected terms, bypassing
	// ld.ProtectedTermRedefinition, and to nullify a context that has
	// protected terms.
	OverrideProtected bool

	// Propagate is the default value of @propagate for a local context
	// that does not set it explicitly.
	Propagate bool

	// CompactToRelative is carried and copied but not read by this
	// package: compaction always makes document-relative IRIs relative to
	// Base where it can (see Context.CompactIri), whatever its value.
	CompactToRelative bool

	// UseNativeTypes is carried and copied but not read by this package:
	// neither expansion nor compaction converts typed values to native
	// JSON boolean/number values.
	UseNativeTypes bool

	// RDFDirection selects how an expanded value's base direction is
	// represented when converted to RDF ("i18n-datatype" or
	// "compound-literal"). The conversion itself lives outside this
	// module; this field exists so an options record handed to us can
	// be forwarded unchanged to that conversion.
	RDFDirection string

	// ProduceGeneralizedRdf is likewise forwarded, not acted on here.
	ProduceGeneralizedRdf bool

	// MaxRemoteContexts bounds remote context dereferencing depth
	// (ld.ContextOverflow). Zero means DefaultMaxRemoteContexts.
	MaxRemoteContexts int

	// SafeMode is carried and copied but not read by this package: it
	// enables no extra checks, and context IRIs are loaded through
	// DocumentLoader whatever its value.
	SafeMode bool
}

// NewJsonLdOptions creates and returns new instance of JsonLdOptions with the given base.
func NewJsonLdOptions(base string) *JsonLdOptions { //nolint:stylecheck
	return &JsonLdOptions{
		Base:              base,
		CompactArrays:     true,
		ProcessingMode:    JsonLd_1_1,
		DocumentLoader:    NewDefaultDocumentLoader(nil),
		Propagate:         true,
		UseNativeTypes:    false,
		MaxRemoteContexts: DefaultMaxRemoteContexts,
		SafeMode:          false,
	}
}

// Copy creates a deep copy of JsonLdOptions object.
func (opt *JsonLdOptions) Copy() *JsonLdOptions {
	return &JsonLdOptions{
		Base:                   opt.Base,
		CompactArrays:          opt.CompactArrays,
		ExpandContext:          opt.ExpandContext,
		ProcessingMode:         opt.ProcessingMode,
		DocumentLoader:         opt.DocumentLoader,
		OverrideProtected:      opt.OverrideProtected,
		Propagate:              opt.Propagate,
		CompactToRelative:      opt.CompactToRelative,
		UseNativeTypes:         opt.UseNativeTypes,
		RDFDirection:           opt.RDFDirection,
		ProduceGeneralizedRdf:  opt.ProduceGeneralizedRdf,
		MaxRemoteContexts:      opt.MaxRemoteContexts,
		SafeMode:               opt.SafeMode,
	}
}

// maxRemoteContexts returns opt.MaxRemoteContexts, or the default if unset.
func (opt *JsonLdOptions) maxRemoteContexts() int {
	if opt == nil || opt.MaxRemoteContexts <= 0 {
		return DefaultMaxRemoteContexts
	}
	return opt.MaxRemoteContexts
}
