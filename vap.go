// Package vap converts VoiceAttack profile files (.vap) between their three
// representations: the compressed binary container, the equivalent XML
// document, and the profile model this module defines.
//
// A binary-form file is a raw deflate stream (no zlib or gzip envelope)
// wrapping a document of offset tables, mixed-endian identifiers,
// length-prefixed strings, and fixed-layout per-action records. The XML
// form is the host application's own export schema. Both map losslessly to
// the model in the profile package.
//
// # Decoding
//
// Decode accepts either file form and detects which one it was handed:
//
//	data, _ := os.ReadFile("flight.vap")
//	p, diags, err := vap.Decode(data)
//	if err != nil {
//	    // structural failure: no partial profile exists
//	}
//	for _, d := range diags {
//	    // redundant offset fields that disagreed with the cursor walk
//	}
//
// Structural decode errors are fatal and carry the byte offset at which
// they occurred; the binary format's offset chains make everything after a
// bad field unrecoverable, so there is no partial-decode mode. Diagnostics,
// by contrast, report redundant header fields whose stored values disagree
// with the positions actually reached; the decoded profile is complete and
// usable alongside them.
//
// # Encoding
//
// Profiles are typically built from a JSON manifest (see the manifest
// package) and written in the XML form the host application imports:
//
//	doc, _ := manifest.Parse(jsonBytes)
//	p, issues := manifest.Build(doc)
//	xmlOut, _ := vap.RenderXML(p)
//
// EncodeBinary produces the compressed binary form of the same model, the
// exact inverse of decoding a binary file.
//
// # Concurrency
//
// Every function here is a pure transformation over its input buffer; no
// state is shared between calls, and concurrent calls on different inputs
// need no coordination.
//
// This package is a thin convenience layer. The codec, vapxml, compress,
// and wire packages expose the individual layers for callers that need
// finer control.
package vap

import (
	"github.com/corinthian/voiceattack-vap-builder/codec"
	"github.com/corinthian/voiceattack-vap-builder/compress"
	"github.com/corinthian/voiceattack-vap-builder/manifest"
	"github.com/corinthian/voiceattack-vap-builder/profile"
	"github.com/corinthian/voiceattack-vap-builder/vapxml"
)

// Decode converts either file form into the profile model. XML-form input
// goes through the XML parser (and yields no diagnostics); anything else is
// inflated and decoded as the binary container.
func Decode(data []byte) (*profile.Profile, []codec.Diagnostic, error) {
	if compress.IsXML(data) {
		p, err := vapxml.Parse(data)
		return p, nil, err
	}

	return DecodeBinary(data)
}

// DecodeBinary inflates a compressed binary-form file and decodes the
// contained document.
func DecodeBinary(data []byte) (*profile.Profile, []codec.Diagnostic, error) {
	raw, err := compress.Inflate(data)
	if err != nil {
		return nil, nil, err
	}

	return codec.DecodeProfile(raw)
}

// EncodeBinary encodes the profile into a complete binary-form file:
// the binary document wrapped in a raw deflate stream.
func EncodeBinary(p *profile.Profile) ([]byte, error) {
	raw, err := codec.EncodeProfile(p)
	if err != nil {
		return nil, err
	}

	return compress.Compress(raw)
}

// RenderXML renders the profile as an XML-form .vap document.
func RenderXML(p *profile.Profile) ([]byte, error) {
	return vapxml.Render(p)
}

// ParseXML parses an XML-form .vap document into the profile model.
func ParseXML(data []byte) (*profile.Profile, error) {
	return vapxml.Parse(data)
}

// BuildManifest parses a JSON manifest and builds the profile model from
// it. Issues report commands and actions that could not be built; the
// returned profile contains every command that could.
func BuildManifest(data []byte, opts ...manifest.Option) (*profile.Profile, []manifest.Issue, error) {
	doc, err := manifest.Parse(data)
	if err != nil {
		return nil, nil, err
	}

	p, issues := manifest.Build(doc, opts...)

	return p, issues, nil
}
