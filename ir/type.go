package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	MappingType
	SequenceType
	TupleType
	ReferenceType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		BoolType:      "Bool",
		NumberType:    "Number",
		StringType:    "String",
		MappingType:   "Mapping",
		SequenceType:  "Sequence",
		TupleType:     "Tuple",
		ReferenceType: "Reference",
		ObjectType:    "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":      NullType,
		"Bool":      BoolType,
		"Number":    NumberType,
		"String":    StringType,
		"Mapping":   MappingType,
		"Sequence":  SequenceType,
		"Tuple":     TupleType,
		"Reference": ReferenceType,
		"Object":    ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		NumberType,
		StringType,
		MappingType,
		SequenceType,
		TupleType,
		ReferenceType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case MappingType, SequenceType, TupleType:
		return false
	default:
		return true
	}
}
