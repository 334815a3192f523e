package models

import (
	"strings"
	"time"

	"github.com/halcyon-dev/modelcat/pkg/errors"
)

// ObjectModel is the object tag the provider reports for a single model entry
const ObjectModel = "model"

// Model represents one entry in a provider's model listing. It is validated
// on construction and immutable afterwards; a changed model is a newly
// constructed Model.
type Model struct {
	id                  string
	object              string
	created             int64
	ownedBy             string
	active              bool
	contextWindow       int
	publicApps          Optional[any]
	maxCompletionTokens Optional[int]
}

// NewModel builds a Model from already-parsed listing fields. It returns an
// *errors.InvalidArgumentError when any field violates its constraint; no
// partially valid instance is ever produced.
func NewModel(id, object string, created int64, ownedBy string, active bool, contextWindow int, publicApps Optional[any], maxCompletionTokens Optional[int]) (Model, error) {
	if strings.TrimSpace(id) == "" {
		return Model{}, &errors.InvalidArgumentError{Field: "id", Reason: "must not be blank"}
	}
	if strings.TrimSpace(object) == "" {
		return Model{}, &errors.InvalidArgumentError{Field: "object", Reason: "must not be blank"}
	}
	if created < 0 {
		return Model{}, &errors.InvalidArgumentError{Field: "created", Reason: "must not be negative"}
	}
	if strings.TrimSpace(ownedBy) == "" {
		return Model{}, &errors.InvalidArgumentError{Field: "ownedBy", Reason: "must not be blank"}
	}
	if contextWindow < 0 {
		return Model{}, &errors.InvalidArgumentError{Field: "contextWindow", Reason: "must not be negative"}
	}
	if v, ok := maxCompletionTokens.Get(); ok && v < 1 {
		return Model{}, &errors.InvalidArgumentError{Field: "maxCompletionTokens", Reason: "must be at least 1 when present"}
	}

	return Model{
		id:                  id,
		object:              object,
		created:             created,
		ownedBy:             ownedBy,
		active:              active,
		contextWindow:       contextWindow,
		publicApps:          publicApps,
		maxCompletionTokens: maxCompletionTokens,
	}, nil
}

// SimpleModel builds a Model with the "model" object tag, the current time
// in whole seconds as its creation timestamp, and no optional fields.
func SimpleModel(id, ownedBy string, active bool, contextWindow int) (Model, error) {
	return NewModel(id, ObjectModel, time.Now().Unix(), ownedBy, active, contextWindow, None[any](), None[int]())
}

// ID returns the model id
func (m Model) ID() string {
	return m.id
}

// Object returns the entry's object tag
func (m Model) Object() string {
	return m.object
}

// Created returns the creation timestamp in seconds since the epoch
func (m Model) Created() int64 {
	return m.created
}

// OwnedBy returns the owning organization
func (m Model) OwnedBy() string {
	return m.ownedBy
}

// ContextWindow returns the maximum context size in tokens
func (m Model) ContextWindow() int {
	return m.contextWindow
}

// PublicApps returns the provider's opaque public-apps value, if any
func (m Model) PublicApps() Optional[any] {
	return m.publicApps
}

// MaxCompletionTokens returns the completion-token cap, if any
func (m Model) MaxCompletionTokens() Optional[int] {
	return m.maxCompletionTokens
}

// IsActive reports whether the provider lists the model as active
func (m Model) IsActive() bool {
	return m.active
}

// HasMaxCompletionTokens reports whether a completion-token cap is present
func (m Model) HasMaxCompletionTokens() bool {
	return m.maxCompletionTokens.Present()
}

// HasPublicApps reports whether a public-apps value is present
func (m Model) HasPublicApps() bool {
	return m.publicApps.Present()
}

// EffectiveMaxTokens returns the completion-token cap when present,
// otherwise the context window
func (m Model) EffectiveMaxTokens() int {
	return m.maxCompletionTokens.OrElse(m.contextWindow)
}

// DisplayName returns the id with dashes replaced by spaces, upper-cased
func (m Model) DisplayName() string {
	return strings.ToUpper(strings.ReplaceAll(m.id, "-", " "))
}

// IsWhisperModel reports whether the id names a speech-recognition model
func (m Model) IsWhisperModel() bool {
	return containsFold(m.id, "whisper")
}

// IsTTSModel reports whether the id names a text-to-speech model
func (m Model) IsTTSModel() bool {
	return containsFold(m.id, "tts") || containsFold(m.id, "speech")
}

// IsChatModel reports whether the model serves chat completions: not a
// whisper model and the id does not contain "tts". An id containing
// "speech" but not "tts" counts as both a TTS model and a chat model.
func (m Model) IsChatModel() bool {
	return !m.IsWhisperModel() && !containsFold(m.id, "tts")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
