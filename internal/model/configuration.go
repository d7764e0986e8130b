// Package model defines the core domain types for shutter configuration and quoting.
package model

import (
	"fmt"
	"strings"
)

// DefaultColorID is the finish selected when a session starts.
const DefaultColorID = "bianco_9010"

// Panel count limits offered by the configurator.
const (
	MinPanelCount = 1
	MaxPanelCount = 4
)

// SlatType is the kind of blade fitted to the shutter.
type SlatType string

const (
	// SlatFixed is a fixed blade.
	SlatFixed SlatType = "fixed"
	// SlatAdjustable is an adjustable (orientable) blade.
	SlatAdjustable SlatType = "adjustable"
)

// OpeningSide is the hinge side of the shutter.
type OpeningSide string

const (
	// OpeningRight opens to the right (DX).
	OpeningRight OpeningSide = "DX"
	// OpeningLeft opens to the left (SX).
	OpeningLeft OpeningSide = "SX"
)

// ClosureType is the locking mechanism.
type ClosureType string

const (
	// ClosureSimpleLock is a plain lock.
	ClosureSimpleLock ClosureType = "simple_lock"
	// ClosureHandleWithLock is a handle with an integrated lock.
	ClosureHandleWithLock ClosureType = "handle_with_lock"
)

// SlatTypes lists slat types in display order.
var SlatTypes = []SlatType{SlatFixed, SlatAdjustable}

// OpeningSides lists opening sides in display order.
var OpeningSides = []OpeningSide{OpeningRight, OpeningLeft}

// ClosureTypes lists closure types in display order.
var ClosureTypes = []ClosureType{ClosureSimpleLock, ClosureHandleWithLock}

func (s SlatType) String() string { return string(s) }

// Label returns the summary label for the slat type.
func (s SlatType) Label() string {
	switch s {
	case SlatAdjustable:
		return "Adjustable slats"
	default:
		return "Fixed slats"
	}
}

func (o OpeningSide) String() string { return string(o) }

// Label returns the summary label for the opening side.
func (o OpeningSide) Label() string {
	switch o {
	case OpeningLeft:
		return "Left opening (SX)"
	default:
		return "Right opening (DX)"
	}
}

func (c ClosureType) String() string { return string(c) }

// Label returns the summary label for the closure type.
func (c ClosureType) Label() string {
	switch c {
	case ClosureHandleWithLock:
		return "Handle with lock"
	default:
		return "Simple lock"
	}
}

// ParseSlatType parses a slat type. The Italian option codes are accepted too.
func ParseSlatType(s string) (SlatType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "fisse":
		return SlatFixed, nil
	case "adjustable", "orientabili":
		return SlatAdjustable, nil
	}
	return "", fmt.Errorf("unknown slat type %q", s)
}

// ParseOpeningSide parses an opening side.
func ParseOpeningSide(s string) (OpeningSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "dx":
		return OpeningRight, nil
	case "left", "sx":
		return OpeningLeft, nil
	}
	return "", fmt.Errorf("unknown opening side %q", s)
}

// ParseClosureType parses a closure type.
func ParseClosureType(s string) (ClosureType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple_lock", "simple", "semplice":
		return ClosureSimpleLock, nil
	case "handle_with_lock", "handle", "maniglia":
		return ClosureHandleWithLock, nil
	}
	return "", fmt.Errorf("unknown closure type %q", s)
}

// Configuration holds every option a user selects for one shutter line.
// It is a value type: edits produce a new snapshot.
type Configuration struct {
	WidthCm     *float64
	HeightCm    *float64
	SlatType    SlatType
	OpeningSide OpeningSide
	ClosureType ClosureType
	ColorID     string
	Quantity    int
	PanelCount  int
}

// NewConfiguration returns the configuration a new session starts from.
func NewConfiguration() Configuration {
	return Configuration{
		Quantity:    1,
		PanelCount:  1,
		SlatType:    SlatFixed,
		OpeningSide: OpeningRight,
		ClosureType: ClosureSimpleLock,
		ColorID:     DefaultColorID,
	}
}

// WithDimensions returns a copy with both dimensions set.
func (c Configuration) WithDimensions(widthCm, heightCm float64) Configuration {
	return c.WithWidth(&widthCm).WithHeight(&heightCm)
}

// WithWidth returns a copy with the width replaced. A nil width unsets it.
func (c Configuration) WithWidth(widthCm *float64) Configuration {
	c.WidthCm = copyFloat(widthCm)
	return c
}

// WithHeight returns a copy with the height replaced. A nil height unsets it.
func (c Configuration) WithHeight(heightCm *float64) Configuration {
	c.HeightCm = copyFloat(heightCm)
	return c
}

// WithQuantity returns a copy with the quantity replaced.
func (c Configuration) WithQuantity(quantity int) Configuration {
	c.Quantity = quantity
	return c
}

// WithPanelCount returns a copy with the panel count replaced.
func (c Configuration) WithPanelCount(panels int) Configuration {
	c.PanelCount = panels
	return c
}

// WithSlatType returns a copy with the slat type replaced.
func (c Configuration) WithSlatType(s SlatType) Configuration {
	c.SlatType = s
	return c
}

// WithOpeningSide returns a copy with the opening side replaced.
func (c Configuration) WithOpeningSide(o OpeningSide) Configuration {
	c.OpeningSide = o
	return c
}

// WithClosureType returns a copy with the closure type replaced.
func (c Configuration) WithClosureType(ct ClosureType) Configuration {
	c.ClosureType = ct
	return c
}

// WithColor returns a copy with the color replaced.
func (c Configuration) WithColor(colorID string) Configuration {
	c.ColorID = colorID
	return c
}

// Clone returns a deep copy that shares no pointers with c.
func (c Configuration) Clone() Configuration {
	c.WidthCm = copyFloat(c.WidthCm)
	c.HeightCm = copyFloat(c.HeightCm)
	return c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
