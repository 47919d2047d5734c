package frame

// System is a unit of per-frame behavior. Systems run in registration order
// and may keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
