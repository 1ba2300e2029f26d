package workout

import "testing"

// TestFormToggle verifies that selecting a kind shows its field group and
// hides the other — exactly one of the two is ever visible.
func TestFormToggle(t *testing.T) {
	f := NewFormState(Running)

	v := f.View()
	if !v.ShowCadence || v.ShowElevation {
		t.Errorf("running view = %+v, want cadence shown, elevation hidden", v)
	}

	v = f.Select(Cycling)
	if v.ShowCadence || !v.ShowElevation {
		t.Errorf("cycling view = %+v, want elevation shown, cadence hidden", v)
	}

	v = f.Select(Running)
	if !v.ShowCadence || v.ShowElevation {
		t.Errorf("running view = %+v, want cadence shown, elevation hidden", v)
	}

	if v.ShowCadence == v.ShowElevation {
		t.Error("field groups must be mutually exclusive")
	}
}

// TestFormUnknownSelection verifies an unknown kind neither transitions nor
// breaks the exclusivity invariant.
func TestFormUnknownSelection(t *testing.T) {
	f := NewFormState(Cycling)
	v := f.Select("rowing")
	if v.Selected != Cycling {
		t.Errorf("selected = %q, want %q", v.Selected, Cycling)
	}
	if v.ShowCadence == v.ShowElevation {
		t.Errorf("view = %+v, want exactly one group visible", v)
	}
}

// TestFormDefault verifies the initial state falls back to running when the
// configured default is not a known kind.
func TestFormDefault(t *testing.T) {
	f := NewFormState("")
	if v := f.View(); v.Selected != Running {
		t.Errorf("selected = %q, want %q", v.Selected, Running)
	}
}
