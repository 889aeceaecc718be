package models

import "strings"

// ValueType is a target-language primitive type.
type ValueType int

const (
	// TypeUnknown is used for empty or unrecognised SCOS types.
	TypeUnknown ValueType = iota
	TypeUnsignedInteger
	TypeSignedInteger
	TypeBoolean
	TypeReal
	TypeString
	TypeAbsoluteTime
	TypeRelativeTime
)

// ScalarTypes lists the known types in scratch-variable order.
var ScalarTypes = []ValueType{
	TypeUnsignedInteger,
	TypeSignedInteger,
	TypeBoolean,
	TypeReal,
	TypeString,
	TypeAbsoluteTime,
	TypeRelativeTime,
}

var scosPrefixes = []struct {
	prefixes []string
	typ      ValueType
}{
	{[]string{"Enum", "U8", "U16", "U32", "U64"}, TypeUnsignedInteger},
	{[]string{"S8", "S16", "S32", "S64"}, TypeSignedInteger},
	{[]string{"Boolean"}, TypeBoolean},
	{[]string{"Float"}, TypeReal},
	{[]string{"Octet Str", "Char Str"}, TypeString},
	{[]string{"Abs Time", "Abs time"}, TypeAbsoluteTime},
	{[]string{"Del Time", "Del time"}, TypeRelativeTime},
}

// ParseValueType converts a SCOS type cell (e.g. "U16", "Char Str 32") to a ValueType.
func ParseValueType(scos string) ValueType {
	for _, entry := range scosPrefixes {
		for _, p := range entry.prefixes {
			if strings.HasPrefix(scos, p) {
				return entry.typ
			}
		}
	}
	return TypeUnknown
}

type typeNames struct {
	pluto   string
	schema  string
	scratch string
}

var valueTypeNames = map[ValueType]typeNames{
	TypeUnsignedInteger: {"Unsigned integer", "unsignedInteger", "VAL_UI"},
	TypeSignedInteger:   {"Signed integer", "signedInteger", "VAL_SI"},
	TypeBoolean:         {"Boolean", "boolean", "VAL_BOOL"},
	TypeReal:            {"Real", "real", "VAL_REAL"},
	TypeString:          {"String", "string", "VAL_STR"},
	TypeAbsoluteTime:    {"Absolute time", "absoluteTime", "VAL_ABST"},
	TypeRelativeTime:    {"Relative time", "relativeTime", "VAL_RELT"},
}

// Known reports whether t is one of the scalar types.
func (t ValueType) Known() bool {
	_, ok := valueTypeNames[t]
	return ok
}

// PlutoName returns the procedure-language type name, "None" when unknown.
func (t ValueType) PlutoName() string {
	if n, ok := valueTypeNames[t]; ok {
		return n.pluto
	}
	return "None"
}

// SchemaName returns the manifest schema type name. Unknown types map to
// "string" so the manifest stays loadable.
func (t ValueType) SchemaName() string {
	if n, ok := valueTypeNames[t]; ok {
		return n.schema
	}
	return "string"
}

// ScratchName returns the shared scratch variable name for t, or "" when unknown.
func (t ValueType) ScratchName() string {
	return valueTypeNames[t].scratch
}

func (t ValueType) String() string {
	return t.PlutoName()
}
