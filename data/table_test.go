package data

import "testing"

func TestColTypeNumeric(t *testing.T) {
	numeric := []ColType{TypeInt, TypeFloat}
	for _, ct := range numeric {
		if !ct.Numeric() {
			t.Errorf("type %d: expected numeric", ct)
		}
	}
	other := []ColType{TypeText, TypeBool, TypeTime, TypeBlob}
	for _, ct := range other {
		if ct.Numeric() {
			t.Errorf("type %d: expected non-numeric", ct)
		}
	}
}
