package mapper

import (
	"fmt"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
)

// The wire and stored enumerations are declared separately and translated by
// name. Adding a member to either side requires an entry in both tables;
// decoration_type_mapper_test.go fails otherwise.
var (
	decorationTypeToInternal = map[dto.DecorationType]entity.DecorationType{
		dto.DecorationTypeColor:   entity.DecorationTypeColor,
		dto.DecorationTypePattern: entity.DecorationTypePattern,
		dto.DecorationTypeTexture: entity.DecorationTypeTexture,
	}
	decorationTypeToExternal = map[entity.DecorationType]dto.DecorationType{
		entity.DecorationTypeColor:   dto.DecorationTypeColor,
		entity.DecorationTypePattern: dto.DecorationTypePattern,
		entity.DecorationTypeTexture: dto.DecorationTypeTexture,
	}
)

func DecorationTypeToInternal(t dto.DecorationType) (entity.DecorationType, error) {
	internal, ok := decorationTypeToInternal[t]
	if !ok {
		return 0, fmt.Errorf("unknown decoration type %q", t)
	}
	return internal, nil
}

func DecorationTypeToExternal(t entity.DecorationType) (dto.DecorationType, error) {
	if !t.Valid() {
		return "", fmt.Errorf("unknown stored decoration type %d", t)
	}
	external, ok := decorationTypeToExternal[t]
	if !ok {
		return "", fmt.Errorf("stored decoration type %d has no wire name", t)
	}
	return external, nil
}
