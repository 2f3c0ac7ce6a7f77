// Package a2ui holds the A2UI document model, the defensive extractor that
// recovers a document from raw model output, and the deterministic fallback
// responder used when no LLM route is available.
package a2ui

// Document is a decoded A2UI response object as returned to the caller.
// It is kept as a generic map on purpose: extraction returns whatever JSON
// the model produced verbatim, without schema coercion, and the orchestrator
// may attach diagnostic keys ("_error", "_search") before the response is
// written. A document normally carries "text", "a2ui", or both.
type Document map[string]any

// Version is the A2UI protocol version emitted by this backend.
const Version = "1.0"

// Payload is the "a2ui" value of a document: a protocol version plus an
// ordered component tree.
type Payload struct {
	Version    string      `json:"version"`
	Components []Component `json:"components"`
}

// Component is one node of the UI tree. Every component carries an id
// (unique within its document, kebab-case by convention) and one of the ten
// known type kinds. Unknown types are accepted as-is; rejecting them is the
// renderer's call, not ours.
type Component struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Props    map[string]any `json:"props"`
	Children []Component    `json:"children,omitempty"`
}

// The ten component kinds the protocol defines.
const (
	TypeText      = "text"
	TypeContainer = "container"
	TypeCard      = "card"
	TypeList      = "list"
	TypeDataTable = "data-table"
	TypeChart     = "chart"
	TypeButton    = "button"
	TypeChip      = "chip"
	TypeLink      = "link"
	TypeImage     = "image"
)

// KnownType reports whether t is one of the ten component kinds.
func KnownType(t string) bool {
	switch t {
	case TypeText, TypeContainer, TypeCard, TypeList, TypeDataTable,
		TypeChart, TypeButton, TypeChip, TypeLink, TypeImage:
		return true
	}
	return false
}

// TextDocument builds a plain-text document with no component tree.
func TextDocument(text string) Document {
	return Document{"text": text}
}

// NewDocument builds a document with an optional text preamble and a
// component tree.
func NewDocument(text string, components ...Component) Document {
	doc := Document{
		"a2ui": Payload{Version: Version, Components: components},
	}
	if text != "" {
		doc["text"] = text
	}
	return doc
}
