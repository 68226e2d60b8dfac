package plugin

//go:generate go tool stringer -type=Error -linecomment

// Error is the closed set of errors the plugin reports at its boundary. Other
// errors are wrapped around one of these.
type Error int

const (
	ErrNotInit     Error = iota + 1 // plugin not initialized
	ErrAlreadyInit                  // plugin already initialized
	ErrDriverStart                  // presentation driver failed to start
	ErrJoinTimeout                  // presentation driver did not exit in time
	ErrInvalidPad                   // invalid pad index
	ErrNotActive                    // pad is not active
)

func (e Error) Error() string { return e.String() }
