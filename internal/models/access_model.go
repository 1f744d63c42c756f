package models

// DenialCode classifies why a verification result denied access. The set is
// closed; handlers map codes to HTTP statuses without parsing reason strings.
type DenialCode string

const (
	DenialInvalidInput       DenialCode = "INVALID_INPUT"
	DenialVacationNotFound   DenialCode = "VACATION_NOT_FOUND"
	DenialNotMember          DenialCode = "NOT_A_MEMBER"
	DenialInsufficientRole   DenialCode = "INSUFFICIENT_ROLE"
	DenialNotAuthor          DenialCode = "NOT_AUTHOR"
	DenialInvalidOperation   DenialCode = "INVALID_OPERATION"
	DenialVerificationFailed DenialCode = "VERIFICATION_FAILED"
)

// AccessVerification is the authoritative result of a vacation access check.
// The resolver never surfaces a transport error to its caller: a failed store
// read becomes a DenialVerificationFailed result with a generic reason, so
// any ambiguity in the underlying fetch results in denial, not grant.
type AccessVerification struct {
	HasAccess   bool                `json:"hasAccess"`
	UserRole    Role                `json:"userRole,omitempty"`
	Permissions *DerivedPermissions `json:"permissions,omitempty"`
	Code        DenialCode          `json:"code,omitempty"`
	Reason      string              `json:"error,omitempty"`
}

// MessageOperation is an action against the message store that requires
// authorization. The set is closed; anything else is rejected, never allowed.
type MessageOperation string

const (
	OperationRead   MessageOperation = "read"
	OperationSend   MessageOperation = "send"
	OperationEdit   MessageOperation = "edit"
	OperationDelete MessageOperation = "delete"
)

// IsValid reports whether op is one of the known message operations.
func (op MessageOperation) IsValid() bool {
	switch op {
	case OperationRead, OperationSend, OperationEdit, OperationDelete:
		return true
	}
	return false
}

// MessagePermission is the result of a per-operation message authorization
// check. Like AccessVerification, every result is authoritative.
type MessagePermission struct {
	CanPerform bool       `json:"canPerform"`
	UserRole   Role       `json:"userRole,omitempty"`
	Code       DenialCode `json:"code,omitempty"`
	Reason     string     `json:"error,omitempty"`
}
