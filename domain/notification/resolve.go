package notification

// Target is the effective destination for one invocation. It is derived on
// every call and never stored.
type Target struct {
	Server string
	Token  string
	Room   string
}

// Resolve applies job overrides to the global defaults. The server has no
// per-job override.
func Resolve(job NotifierConfig, global GlobalConfig) Target {
	return Target{
		Server: global.Server,
		Token:  job.Token.Or(global.Token),
		Room:   job.Room.Or(global.Room),
	}
}

func DispatchAllowed(t Target) bool {
	return t.Token != "" && t.Room != ""
}
