package frame

// GravitySystem advances the engine's timers to the frame time.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	frame.Session.Engine().Tick(frame.Now)
}
