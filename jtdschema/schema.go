package jtdschema

// Schema is one node of an RFC 8927 JSON Type Definition document. At
// most one form is populated per node: Type, Enum, Elements,
// Properties/OptionalProperties, Values, or Discriminator+Mapping. A
// node with no form populated accepts any value.
type Schema struct {
	Type               Type               `json:"type,omitempty"`
	Enum               []string           `json:"enum,omitempty"`
	Elements           *Schema            `json:"elements,omitempty"`
	Properties         map[string]*Schema `json:"properties,omitempty"`
	OptionalProperties map[string]*Schema `json:"optionalProperties,omitempty"`
	Values             *Schema            `json:"values,omitempty"`
	Discriminator      string             `json:"discriminator,omitempty"`
	Mapping            map[string]*Schema `json:"mapping,omitempty"`
	Nullable           bool               `json:"nullable,omitempty"`
}

// Type names one of the primitive JTD types.
type Type string

const (
	TypeBoolean   Type = "boolean"
	TypeString    Type = "string"
	TypeTimestamp Type = "timestamp"
	TypeInt8      Type = "int8"
	TypeUint8     Type = "uint8"
	TypeInt16     Type = "int16"
	TypeUint16    Type = "uint16"
	TypeInt32     Type = "int32"
	TypeUint32    Type = "uint32"
	TypeFloat32   Type = "float32"
	TypeFloat64   Type = "float64"
)
