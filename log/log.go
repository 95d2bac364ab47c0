package log

import (
	"encoding/json"
	"path"
	"strings"
	"sync"

	"github.com/astaxie/beego/logs"
	"github.com/copernet/wirecodec/conf"
)

const errUnknownLevel = "unknown log level"

type logConfig struct {
	Filename string `json:"filename"`
	Level    int    `json:"level,omitempty"`
	Rotate   bool   `json:"rotate,omitempty"`
	Daily    bool   `json:"daily,omitempty"`
	MaxDays  int64  `json:"maxdays,omitempty"`
}

var (
	moduleLock sync.RWMutex
	mapModule  = make(map[string]struct{})
)

// Init replaces every log output with the file adapter described by the json
// config, e.g. {"filename":"wirecodec.log","level":7}.
func Init(jsonConfig string) error {
	logs.Reset()
	logs.EnableFuncCallDepth(true)
	logs.SetLogFuncCallDepth(4)
	return logs.SetLogger(logs.AdapterFile, jsonConfig)
}

// InitLogger writes to cfg.Log.FileName under dir at cfg.Log.Level and enables
// the modules listed in cfg.Log.Module.
func InitLogger(dir string, cfg *conf.Configuration) error {
	config, err := json.Marshal(logConfig{
		Filename: path.Join(dir, cfg.Log.FileName),
		Level:    GetLevel(cfg.Log.Level),
		Rotate:   true,
		Daily:    true,
		MaxDays:  7,
	})
	if err != nil {
		return err
	}
	SetModules(cfg.Log.Module...)
	logs.SetLevel(GetLevel(cfg.Log.Level))
	return Init(string(config))
}

// SetModules replaces the set of modules whose Print calls are emitted.
func SetModules(modules ...string) {
	moduleLock.Lock()
	defer moduleLock.Unlock()
	mapModule = make(map[string]struct{}, len(modules))
	for _, module := range modules {
		mapModule[module] = struct{}{}
	}
}

func IsIncludeModule(module string) bool {
	moduleLock.RLock()
	defer moduleLock.RUnlock()
	_, ok := mapModule[module]
	return ok
}

// Print logs format at the named level when module is enabled.
func Print(module string, level string, format string, reason ...interface{}) {
	if !IsIncludeModule(module) {
		return
	}
	format = "[" + module + "] " + format
	switch strings.ToLower(level) {
	case "emergency":
		logs.Emergency(format, reason...)
	case "alert":
		logs.Alert(format, reason...)
	case "critical":
		logs.Critical(format, reason...)
	case "error":
		logs.Error(format, reason...)
	case "warn", "warning":
		logs.Warn(format, reason...)
	case "notice":
		logs.Notice(format, reason...)
	case "info", "informational":
		logs.Info(format, reason...)
	case "debug":
		logs.Debug(format, reason...)
	case "trace":
		logs.Trace(format, reason...)
	default:
		logs.Error(errUnknownLevel+" "+level+": "+format, reason...)
	}
}

func Emergency(format string, v ...interface{}) {
	logs.Emergency(format, v...)
}

func Alert(format string, v ...interface{}) {
	logs.Alert(format, v...)
}

func Critical(format string, v ...interface{}) {
	logs.Critical(format, v...)
}

func Error(format string, v ...interface{}) {
	logs.Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	logs.Warn(format, v...)
}

func Notice(format string, v ...interface{}) {
	logs.Notice(format, v...)
}

func Info(format string, v ...interface{}) {
	logs.Info(format, v...)
}

func Debug(format string, v ...interface{}) {
	logs.Debug(format, v...)
}

func Trace(format string, v ...interface{}) {
	logs.Trace(format, v...)
}
