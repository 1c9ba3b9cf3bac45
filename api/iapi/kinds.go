package iapi

import "maps"

type constructor func(fields map[string]any) Entity

// Entity kinds (as used in list endpoints) that have a dedicated type.
var kinds = map[string]constructor{
	"players": func(fields map[string]any) Entity { return NewPlayer(fields) },
	"towns":   func(fields map[string]any) Entity { return NewTown(fields) },
}

// Builds the object for a single element of a list response. Kinds without a
// dedicated type are not an error, they come back as [Raw].
func ConstructEntity(kind string, fields map[string]any) Entity {
	if construct, ok := kinds[kind]; ok {
		return construct(fields)
	}

	return Raw(maps.Clone(fields))
}

// Reports whether kind is constructed into a dedicated type by [ConstructEntity].
func KnownKind(kind string) bool {
	_, ok := kinds[kind]
	return ok
}
