package domain

import (
	"bytes"
	"encoding/json"
)

// NamedResource is the {"name": ...} reference object PokeAPI uses for
// types, abilities and most other linked entities.
type NamedResource struct {
	Name *string `json:"name"`
}

// TypeSlot is one element of a Pokemon's types array.
type TypeSlot struct {
	Slot int            `json:"slot,omitempty"`
	Type *NamedResource `json:"type"`
}

// AbilitySlot is one element of a Pokemon's abilities array.
type AbilitySlot struct {
	IsHidden bool           `json:"is_hidden,omitempty"`
	Slot     int            `json:"slot,omitempty"`
	Ability  *NamedResource `json:"ability"`
}

// PokemonPayload is the subset of the upstream /pokemon/{name} document the
// gateway reads. Every field is optional so partially shaped payloads decode.
type PokemonPayload struct {
	Name      string          `json:"name"`
	Types     []TypeSlot      `json:"types"`
	Height    json.RawMessage `json:"height"`
	Weight    json.RawMessage `json:"weight"`
	Abilities []AbilitySlot   `json:"abilities"`
}

// PokemonInfo is the flat record returned to clients. Absent values are
// encoded as JSON null. Height and Weight hold the upstream JSON value
// verbatim, whatever its type.
type PokemonInfo struct {
	Name         string          `json:"name"`
	Type         *string         `json:"type"`
	Height       json.RawMessage `json:"height"`
	Weight       json.RawMessage `json:"weight"`
	FirstAbility *string         `json:"first_ability"`
}

// Project reduces an upstream payload to a PokemonInfo. It only fails when
// the payload has no name; missing types, abilities or measurements become nil.
func Project(p PokemonPayload) (PokemonInfo, error) {
	if p.Name == "" {
		return PokemonInfo{}, ErrMissingName
	}

	info := PokemonInfo{
		Name:   p.Name,
		Height: present(p.Height),
		Weight: present(p.Weight),
	}

	if len(p.Types) > 0 && p.Types[0].Type != nil {
		info.Type = p.Types[0].Type.Name
	}

	if len(p.Abilities) > 0 && p.Abilities[0].Ability != nil {
		info.FirstAbility = p.Abilities[0].Ability.Name
	}

	return info, nil
}

var jsonNull = []byte("null")

// present returns raw, or nil when the field was absent or an explicit null.
func present(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil
	}
	return raw
}
