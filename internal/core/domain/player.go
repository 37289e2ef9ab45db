package domain

import (
	"encoding/json"
	"errors"

	"go.trai.ch/zerr"
)

// PlayerPosition is the location the player currently stands on, if known.
type PlayerPosition struct {
	ID *string `json:"id"`
}

// Known reports whether a current location is set.
func (p PlayerPosition) Known() bool {
	return p.ID != nil
}

// ParsePlayer decodes the player file: {"id": "<location>"} or {"id": null}.
func ParsePlayer(data []byte) (PlayerPosition, error) {
	if jsonKind(data) != '{' {
		return PlayerPosition{}, errors.Join(ErrPlayerUnreadable, zerr.New("top level is not an object"))
	}

	var raw struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return PlayerPosition{}, errors.Join(ErrPlayerUnreadable, err)
	}

	switch jsonKind(raw.ID) {
	case 0, 'n':
		return PlayerPosition{}, nil
	case '"':
		var id string
		if err := json.Unmarshal(raw.ID, &id); err != nil {
			return PlayerPosition{}, errors.Join(ErrPlayerUnreadable, err)
		}
		return PlayerPosition{ID: &id}, nil
	default:
		return PlayerPosition{}, errors.Join(ErrPlayerUnreadable, zerr.New("id is not a string"))
	}
}
