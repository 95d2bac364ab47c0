package log

// LogClosure defers building an expensive message until a log line is written.
type LogClosure func() string

func (c LogClosure) String() string {
	return c()
}

func InitLogClosure(c func() string) LogClosure {
	return LogClosure(c)
}
