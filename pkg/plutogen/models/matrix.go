package models

// Role is the semantic role of a classified row.
type Role int

const (
	// NewOperationStep marks the start of an operation section.
	NewOperationStep Role = iota
	// NewIDField is the first row of a run of rows with identifiers.
	NewIDField
	// FollowIDField continues a run of rows with identifiers.
	FollowIDField
	// NewOperationField is an identifier-less row starting with a known operator.
	NewOperationField
	// FollowOperationField is an identifier-less row with free operation text.
	FollowOperationField
)

var roleNames = [...]string{
	NewOperationStep:     "NEW_OPERATION_STEP",
	NewIDField:           "NEW_ID_FIELD",
	FollowIDField:        "FOLLOW_ID_FIELD",
	NewOperationField:    "NEW_OPERATION_FIELD",
	FollowOperationField: "FOLLOW_OPERATION_FIELD",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "UNKNOWN_ROLE"
	}
	return roleNames[r]
}

// IsIDField reports whether the role belongs to a row carrying an identifier.
func (r Role) IsIDField() bool {
	return r == NewIDField || r == FollowIDField
}

// ClassifiedRow is one entry of the identifier matrix.
type ClassifiedRow struct {
	// Row is the 1-based sheet row number.
	Row int `json:"row"`
	// Role is the classified role.
	Role Role `json:"role"`
	// Operator is the token used for code-generation dispatch.
	Operator string `json:"operator"`
}

// Matrix is the ordered identifier matrix of a procedure sheet.
type Matrix []ClassifiedRow
