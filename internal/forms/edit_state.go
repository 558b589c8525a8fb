package forms

// State is a phase of the edit form's submit control
type State int

const (
	Idle State = iota
	Updating
	Updated
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Updating:
		return "updating"
	case Updated:
		return "updated"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Button is how a submit control renders
type Button struct {
	Label    string
	Disabled bool
	Class    string
	Color    string
}

// Colours applied inline to the edit submit control
const (
	ColorDirty   = "#007bff"
	ColorUpdated = "#6c757d"
	ColorFailed  = "#dc3545"
)

// EditState tracks the edit form's submit control.
//
// The control starts disabled. Any live value diverging from the snapshot
// enables it; returning to the snapshot does not disable it again.
type EditState struct {
	snapshot Values
	state    State
	button   Button
}

// NewEditState starts a machine for a freshly loaded form
func NewEditState(snapshot Values) *EditState {
	return &EditState{
		snapshot: snapshot,
		state:    Idle,
		button:   Button{Label: "Update Post", Disabled: true, Class: "btn-primary"},
	}
}

// Observe applies a field change
func (m *EditState) Observe(live Values) {
	if !live.Differs(m.snapshot) {
		return
	}
	m.state = Idle
	m.button = Button{Label: "Update Post", Class: "btn-primary", Color: ColorDirty}
}

// Begin marks a submission in flight
func (m *EditState) Begin() {
	m.state = Updating
	m.button.Disabled = true
	m.button.Label = "Updating..."
}

// Succeed marks the update as applied
func (m *EditState) Succeed() {
	m.state = Updated
	m.button.Label = "Updated"
	m.button.Color = ColorUpdated
}

// Reject marks an update the API answered without a post.
// The control stays disabled.
func (m *EditState) Reject() {
	m.state = Failed
	m.button.Label = "Failed to update"
	m.button.Color = ColorFailed
}

// Fail reverts the control after an errored update. It is re-enabled and
// loses its colour even if the form is still dirty.
func (m *EditState) Fail() {
	m.state = Failed
	m.button = Button{Label: "Update Post", Class: "btn-primary"}
}

func (m *EditState) State() State { return m.state }

func (m *EditState) Button() Button { return m.button }

// Snapshot returns the values the form was loaded with
func (m *EditState) Snapshot() Values { return m.snapshot }

// CreateButton renders the create form's submit control
func CreateButton(posted bool) Button {
	if posted {
		return Button{Label: "Post Created", Disabled: true, Class: "btn-secondary"}
	}
	return Button{Label: "Create Post", Class: "btn-primary"}
}
