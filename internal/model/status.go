package model

// ControllerState represents whether the controller currently holds images
type ControllerState string

const (
	// StateEmpty means no QR images have been generated yet (or they were reset)
	StateEmpty ControllerState = "Empty"

	// StateGenerated means at least one QR image is held and can be saved
	StateGenerated ControllerState = "Generated"
)

// String returns the string representation of ControllerState
func (cs ControllerState) String() string {
	return string(cs)
}

// CanSave returns true if the state allows saving images
func (cs ControllerState) CanSave() bool {
	return cs == StateGenerated
}
