package frame

import "time"

type UpdateFrame struct {
	Now       time.Time
	DeltaTime float64
	Commands  *Commands
	Session   *Session
}

func newUpdateFrame(now time.Time, dt float64, session *Session) *UpdateFrame {
	return &UpdateFrame{
		Now:       now,
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   session,
	}
}
