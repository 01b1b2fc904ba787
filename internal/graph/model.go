package graph

import "strings"

// Category classifies a license by the strength of its reciprocal terms
type Category string

const (
	CategoryPermissive      Category = "PERMISSIVE"
	CategoryWeakCopyleft    Category = "WEAK_COPYLEFT"
	CategoryStrongCopyleft  Category = "STRONG_COPYLEFT"
	CategoryNetworkCopyleft Category = "NETWORK_COPYLEFT"
	CategoryProprietary     Category = "PROPRIETARY"
	CategoryPublicDomain    Category = "PUBLIC_DOMAIN"
	CategoryUnknown         Category = "UNKNOWN"
)

// Categories lists every category in a stable order
var Categories = []Category{
	CategoryPermissive,
	CategoryWeakCopyleft,
	CategoryStrongCopyleft,
	CategoryNetworkCopyleft,
	CategoryProprietary,
	CategoryPublicDomain,
	CategoryUnknown,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IsCopyleft is true for weak, strong and network copyleft
func (c Category) IsCopyleft() bool {
	switch c {
	case CategoryWeakCopyleft, CategoryStrongCopyleft, CategoryNetworkCopyleft:
		return true
	default:
		return false
	}
}

// CopyleftStrength describes how far a license's reciprocal terms reach
type CopyleftStrength string

const (
	CopyleftNone    CopyleftStrength = "NONE"
	CopyleftWeak    CopyleftStrength = "WEAK"
	CopyleftStrong  CopyleftStrength = "STRONG"
	CopyleftNetwork CopyleftStrength = "NETWORK"
)

// Valid reports whether s is a known strength
func (s CopyleftStrength) Valid() bool {
	switch s {
	case CopyleftNone, CopyleftWeak, CopyleftStrong, CopyleftNetwork:
		return true
	default:
		return false
	}
}

// CompatibilityLevel is the verdict carried by an edge or produced by the resolver
type CompatibilityLevel string

const (
	LevelFull         CompatibilityLevel = "FULL"
	LevelOneWay       CompatibilityLevel = "ONE_WAY"
	LevelConditional  CompatibilityLevel = "CONDITIONAL"
	LevelIncompatible CompatibilityLevel = "INCOMPATIBLE"
	LevelUnknown      CompatibilityLevel = "UNKNOWN"
)

// Valid reports whether l is a known level
func (l CompatibilityLevel) Valid() bool {
	_, ok := levelStrength[l]
	return ok
}

// Compatible is true for levels that allow combining the two licenses
func (l CompatibilityLevel) Compatible() bool {
	switch l {
	case LevelFull, LevelOneWay, LevelConditional:
		return true
	default:
		return false
	}
}

// levelStrength orders levels from weakest (0) to strongest
var levelStrength = map[CompatibilityLevel]int{
	LevelIncompatible: 0,
	LevelUnknown:      1,
	LevelConditional:  2,
	LevelOneWay:       3,
	LevelFull:         4,
}

// Weaker returns whichever of a and b is the weaker compatibility level
func Weaker(a, b CompatibilityLevel) CompatibilityLevel {
	if levelStrength[b] < levelStrength[a] {
		return b
	}
	return a
}

// Direction says whether an edge can be looked up from both endpoints
type Direction string

const (
	DirectionBidirectional Direction = "BIDIRECTIONAL"
	DirectionOneWay        Direction = "ONE_WAY"
)

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	return d == DirectionBidirectional || d == DirectionOneWay
}

// Scope is how far an obligation reaches, ordered from least to most restrictive
type Scope string

const (
	ScopeFileLevel      Scope = "FILE_LEVEL"
	ScopeDistribution   Scope = "DISTRIBUTION"
	ScopeDerivativeWork Scope = "DERIVATIVE_WORK"
	ScopeNetworkUse     Scope = "NETWORK_USE"
)

var scopeRank = map[Scope]int{
	ScopeFileLevel:      0,
	ScopeDistribution:   1,
	ScopeDerivativeWork: 2,
	ScopeNetworkUse:     3,
}

// Valid reports whether s is a known scope
func (s Scope) Valid() bool {
	_, ok := scopeRank[s]
	return ok
}

// MoreRestrictive returns the more restrictive of a and b
func MoreRestrictive(a, b Scope) Scope {
	if scopeRank[b] > scopeRank[a] {
		return b
	}
	return a
}

// Effort estimates how much work fulfilling an obligation takes
type Effort string

const (
	EffortLow  Effort = "LOW"
	EffortHigh Effort = "HIGH"
)

// LicenseNode is a single SPDX-style license definition
type LicenseNode struct {
	ID               string           `json:"id"`
	DisplayName      string           `json:"display_name"`
	Category         Category         `json:"category"`
	CopyleftStrength CopyleftStrength `json:"copyleft_strength"`
	Family           string           `json:"family"`
	Deprecated       bool             `json:"deprecated"`
}

// CompatibilityEdge relates two licenses. DominantLicenseID names the license
// whose terms govern a CONDITIONAL combination.
type CompatibilityEdge struct {
	ID                string             `json:"id"`
	SourceID          string             `json:"source_id"`
	TargetID          string             `json:"target_id"`
	Level             CompatibilityLevel `json:"level"`
	Direction         Direction          `json:"direction"`
	DominantLicenseID string             `json:"dominant_license_id,omitempty"`
	Notes             string             `json:"notes,omitempty"`
}

// Obligation is a named legal duty
type Obligation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Effort      Effort `json:"effort"`
}

// Right is a granted permission
type Right struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ObligationAssignment links a license to one of its obligations
type ObligationAssignment struct {
	Obligation Obligation `json:"obligation"`
	Scope      Scope      `json:"scope"`
}

// NormalizeID canonicalizes a license, obligation or right id for storage and lookup
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
