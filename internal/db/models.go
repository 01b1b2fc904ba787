package db

// License represents a row in the licenses table
type License struct {
	ID               string  `json:"id"`
	DisplayName      string  `json:"display_name"`
	Category         string  `json:"category"`          // "PERMISSIVE", "WEAK_COPYLEFT", ...
	CopyleftStrength string  `json:"copyleft_strength"` // "NONE", "WEAK", "STRONG", "NETWORK"
	Family           *string `json:"family"`
	Deprecated       bool    `json:"deprecated"`
}

// Obligation represents a row in the obligations table
type Obligation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Effort      string `json:"effort"` // "LOW" or "HIGH"
}

// Right represents a row in the rights table
type Right struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Edge represents a row in the compatibility_edges table
type Edge struct {
	ID                string  `json:"id"`
	Position          int     `json:"position"` // authored order
	SourceID          string  `json:"source_id"`
	TargetID          string  `json:"target_id"`
	Level             string  `json:"level"`
	Direction         string  `json:"direction"`
	DominantLicenseID *string `json:"dominant_license_id"`
	Notes             *string `json:"notes"`
}

// LicenseObligation represents a row in the license_obligations table
type LicenseObligation struct {
	LicenseID    string `json:"license_id"`
	ObligationID string `json:"obligation_id"`
	Scope        string `json:"scope"`
}

// LicenseRight represents a row in the license_rights table
type LicenseRight struct {
	LicenseID string `json:"license_id"`
	RightID   string `json:"right_id"`
}

// Snapshot is the full content of a catalog database
type Snapshot struct {
	Licenses           []License
	Obligations        []Obligation
	Rights             []Right
	Edges              []Edge
	LicenseObligations []LicenseObligation
	LicenseRights      []LicenseRight
	WrittenAt          int64 // Unix millis, set by WriteSnapshot
}
