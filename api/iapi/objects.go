package iapi

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/google/uuid"
)

// Any object built from an Imperator response. Fields returns every key/value pair exactly as it
// was received.
type Entity interface {
	Fields() map[string]any
}

// Shared by all domain objects. The API decides which fields exist, so they are kept as a copy of the
// decoded JSON object instead of a fixed struct.
type object struct {
	fields map[string]any
}

func newObject(fields map[string]any) object {
	return object{fields: maps.Clone(fields)}
}

// A shallow copy of every field on this object.
func (o object) Fields() map[string]any {
	return maps.Clone(o.fields)
}

func (o object) Get(key string) (any, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Returns the field at key formatted as a string, or "" if it does not exist or is null.
func (o object) String(key string) string {
	switch v := o.fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Returns the first of keys that has a non-empty string value.
func (o object) firstString(keys ...string) string {
	for _, k := range keys {
		if s := o.String(k); s != "" {
			return s
		}
	}

	return ""
}

func (o object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.fields)
}

// Health and membership snapshot of the Imperator Network.
type Status struct{ object }

func NewStatus(fields map[string]any) Status {
	return Status{newObject(fields)}
}

type Player struct{ object }

func NewPlayer(fields map[string]any) Player {
	return Player{newObject(fields)}
}

func (p Player) Name() string {
	return p.firstString("name", "username")
}

func (p Player) UUID() string {
	return p.String("uuid")
}

// Parses the UUID field. Works for both the dashed and undashed forms.
func (p Player) ParsedUUID() (uuid.UUID, error) {
	return uuid.Parse(p.UUID())
}

type Nation struct{ object }

func NewNation(fields map[string]any) Nation {
	return Nation{newObject(fields)}
}

func (n Nation) Name() string { return n.String("name") }
func (n Nation) ID() string   { return n.String("id") }

type Town struct{ object }

func NewTown(fields map[string]any) Town {
	return Town{newObject(fields)}
}

func (t Town) Name() string { return t.String("name") }
func (t Town) ID() string   { return t.String("id") }

// The residents list of this town as sent by the API. Nil if the town has no such field.
func (t Town) Residents() []any {
	residents, _ := t.fields["residents"].([]any)
	return residents
}

// An object of a kind this client has no type for. Returned untouched.
type Raw map[string]any

func (r Raw) Fields() map[string]any {
	return maps.Clone(r)
}
