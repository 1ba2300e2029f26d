package workout

// FormState is the two-state machine behind the entry form's type selector:
// exactly one of the type-specific field groups (cadence for running,
// elevation gain for cycling) is visible at any time.
type FormState struct {
	selected Kind
}

// FormView describes which field groups the form should show for the
// current selection. ShowCadence and ShowElevation are always opposites.
type FormView struct {
	Selected      Kind `json:"selected"`
	ShowCadence   bool `json:"showCadence"`
	ShowElevation bool `json:"showElevation"`
}

// NewFormState returns a form state with the given kind selected.
// An unknown kind falls back to running, the default selection.
func NewFormState(initial Kind) *FormState {
	if !initial.Valid() {
		initial = Running
	}
	return &FormState{selected: initial}
}

// Select transitions to the given kind and returns the resulting view.
// Selecting an unknown kind leaves the state unchanged.
func (f *FormState) Select(k Kind) FormView {
	if k.Valid() {
		f.selected = k
	}
	return f.View()
}

// View returns the current visibility without transitioning.
func (f *FormState) View() FormView {
	return FormView{
		Selected:      f.selected,
		ShowCadence:   f.selected == Running,
		ShowElevation: f.selected == Cycling,
	}
}
