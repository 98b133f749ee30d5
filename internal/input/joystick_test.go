package input

import (
	"errors"
	"testing"
)

func TestSelect_FirstByDefault(t *testing.T) {
	devices := []Device{
		{ID: 0, Name: "Dance Mat", GUID: "030000000b0400003365000000010000"},
		{ID: 1, Name: "Generic Pad", GUID: "030000005e0400008e02000014010000"},
	}

	got, err := Select(devices, "")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got.GUID != devices[0].GUID {
		t.Errorf("expected the first device, got %s", got.GUID)
	}
}

func TestSelect_ByGUID(t *testing.T) {
	devices := []Device{
		{ID: 0, Name: "Dance Mat", GUID: "030000000b0400003365000000010000"},
		{ID: 1, Name: "Generic Pad", GUID: "030000005e0400008e02000014010000"},
	}

	got, err := Select(devices, devices[1].GUID)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got.Name != "Generic Pad" {
		t.Errorf("expected Generic Pad, got %s", got.Name)
	}
}

func TestSelect_DuplicateGUIDPicksFirst(t *testing.T) {
	guid := "030000000b0400003365000000010000"
	devices := []Device{
		{ID: 3, Name: "Mat A", GUID: guid},
		{ID: 7, Name: "Mat B", GUID: guid},
	}

	got, err := Select(devices, guid)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got.ID != 3 {
		t.Errorf("expected the first match (ID 3), got ID %d", got.ID)
	}
}

func TestSelect_Errors(t *testing.T) {
	if _, err := Select(nil, ""); !errors.Is(err, ErrNoJoysticks) {
		t.Errorf("expected ErrNoJoysticks, got %v", err)
	}

	devices := []Device{{ID: 0, Name: "Dance Mat", GUID: "abc"}}
	if _, err := Select(devices, "missing"); !errors.Is(err, ErrJoystickNotFound) {
		t.Errorf("expected ErrJoystickNotFound, got %v", err)
	}
}
