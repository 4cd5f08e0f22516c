package params

import (
	"errors"
	"fmt"
)

// Field names one per-band parameter.
type Field int

const (
	FieldEnabled Field = iota
	FieldType
	FieldFrequency
	FieldGain
	FieldQ
	FieldSlope

	fieldCount
)

var fieldNames = [fieldCount]string{"enabled", "type", "freq", "gain", "q", "slope"}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// String returns the ID suffix of the field.
func (f Field) String() string {
	if f.Valid() {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Global parameter IDs.
const (
	IDOutputGain = "out_gain"
	IDStereoMode = "stereo_mode"
	IDEditTarget = "edit_target"
	IDQuality    = "quality"
)

var (
	// ErrUnknownParameter is returned for IDs that name no parameter.
	ErrUnknownParameter = errors.New("params: unknown parameter")
	// ErrInvalidValue is returned for NaN parameter values.
	ErrInvalidValue = errors.New("params: invalid parameter value")
)

// BandID returns the parameter ID of field f of band index (0-based) in bank.
func BandID(index int, bank Bank, f Field) string {
	id := fmt.Sprintf("b%d_%s", index+1, f)
	if bank == BankB {
		id += "_b"
	}
	return id
}

type paramRef struct {
	global string
	band   int
	bank   Bank
	field  Field
}

var (
	paramIDs   []string
	paramTable map[string]paramRef
)

func init() {
	paramTable = make(map[string]paramRef)

	for _, id := range []string{IDOutputGain, IDStereoMode, IDEditTarget, IDQuality} {
		paramIDs = append(paramIDs, id)
		paramTable[id] = paramRef{global: id}
	}

	for bank := range NumBanks {
		for band := range NumBands {
			for f := range fieldCount {
				id := BandID(band, bank, f)
				paramIDs = append(paramIDs, id)
				paramTable[id] = paramRef{band: band, bank: bank, field: f}
			}
		}
	}
}

// IDs returns every parameter ID: globals first, then bank A and bank B
// band fields in band order.
func IDs() []string {
	return append([]string(nil), paramIDs...)
}

func lookup(id string) (paramRef, error) {
	ref, ok := paramTable[id]
	if !ok {
		return paramRef{}, fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}
	return ref, nil
}
