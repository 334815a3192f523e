package models

import (
	"strings"

	"github.com/halcyon-dev/modelcat/pkg/errors"
)

// ObjectList is the object tag the provider reports for a model listing
const ObjectList = "list"

// ModelListResponse represents a full model-listing response. It owns its
// Model elements exclusively; every query returns a freshly built slice or
// value, never a view into the backing list.
type ModelListResponse struct {
	object string
	data   []Model
}

// NewModelListResponse builds a listing from an object tag and a list of
// models. The list may be empty but not nil; the input slice is copied so
// later caller mutation cannot reach the response.
func NewModelListResponse(object string, data []Model) (ModelListResponse, error) {
	if strings.TrimSpace(object) == "" {
		return ModelListResponse{}, &errors.InvalidArgumentError{Field: "object", Reason: "must not be blank"}
	}
	if data == nil {
		return ModelListResponse{}, &errors.InvalidArgumentError{Field: "data", Reason: "must not be nil"}
	}

	owned := make([]Model, len(data))
	copy(owned, data)
	return ModelListResponse{object: object, data: owned}, nil
}

// ModelListOf builds a listing with the "list" object tag
func ModelListOf(data []Model) (ModelListResponse, error) {
	return NewModelListResponse(ObjectList, data)
}

// Object returns the listing's object tag
func (r ModelListResponse) Object() string {
	return r.object
}

// Models returns a copy of the listed models in API response order
func (r ModelListResponse) Models() []Model {
	out := make([]Model, len(r.data))
	copy(out, r.data)
	return out
}

// ModelCount returns the number of listed models
func (r ModelListResponse) ModelCount() int {
	return len(r.data)
}

// IsEmpty reports whether the listing holds no models
func (r ModelListResponse) IsEmpty() bool {
	return len(r.data) == 0
}

// ActiveModels returns the active models, order preserved
func (r ModelListResponse) ActiveModels() []Model {
	return r.filter(func(m Model) bool {
		return m.IsActive()
	})
}

// ChatModels returns the active chat models, order preserved
func (r ModelListResponse) ChatModels() []Model {
	return r.filter(func(m Model) bool {
		return m.IsChatModel() && m.IsActive()
	})
}

// WhisperModels returns the active speech-recognition models, order preserved
func (r ModelListResponse) WhisperModels() []Model {
	return r.filter(func(m Model) bool {
		return m.IsWhisperModel() && m.IsActive()
	})
}

// TTSModels returns the active text-to-speech models, order preserved
func (r ModelListResponse) TTSModels() []Model {
	return r.filter(func(m Model) bool {
		return m.IsTTSModel() && m.IsActive()
	})
}

// ModelIDs returns the listed ids in response order, duplicates included
func (r ModelListResponse) ModelIDs() []string {
	ids := make([]string, len(r.data))
	for i, m := range r.data {
		ids[i] = m.ID()
	}
	return ids
}

// HasModel reports whether some listed model has exactly the given id
func (r ModelListResponse) HasModel(modelID string) bool {
	for _, m := range r.data {
		if m.ID() == modelID {
			return true
		}
	}
	return false
}

// FindModel returns the first listed model with the given id. It returns an
// *errors.ModelNotFoundError carrying the requested id when none matches.
func (r ModelListResponse) FindModel(modelID string) (Model, error) {
	for _, m := range r.data {
		if m.ID() == modelID {
			return m, nil
		}
	}
	return Model{}, &errors.ModelNotFoundError{ModelID: modelID}
}

func (r ModelListResponse) filter(keep func(Model) bool) []Model {
	out := make([]Model, 0, len(r.data))
	for _, m := range r.data {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
