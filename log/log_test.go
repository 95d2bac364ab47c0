package log

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astaxie/beego/logs"
	"github.com/copernet/wirecodec/conf"
	"github.com/stretchr/testify/assert"
)

func tempLogFile(t *testing.T) string {
	dir, err := ioutil.TempDir("", "logtest")
	if err != nil {
		t.Fatalf("generate temp path failed: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "test.log")
}

func readLog(t *testing.T, filename string) string {
	logs.GetBeeLogger().Flush()
	str, err := ioutil.ReadFile(filename)
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	return string(str)
}

func TestPrint(t *testing.T) {
	filename := tempLogFile(t)
	configuration, err := json.Marshal(logConfig{Filename: filename, Level: logs.LevelDebug})
	assert.NoError(t, err)
	assert.NoError(t, Init(string(configuration)))

	SetModules("wire", "conf")
	levels := []string{"emergency", "Alert", "critical", "error", "warn", "info", "debug", "Notice"}
	for _, level := range levels {
		Print("wire", level, "module[%s]: %s", "wire", level)
	}
	Print("peer", "error", "module[%s] must be filtered", "peer")
	Print("conf", "loud", "module[%s] unknown level", "conf")

	str := readLog(t, filename)
	for _, level := range levels {
		assert.Contains(t, str, "[wire] module[wire]: "+level)
	}
	assert.NotContains(t, str, "module[peer]")
	assert.Contains(t, str, errUnknownLevel+" loud")
}

func TestLevelHelpers(t *testing.T) {
	filename := tempLogFile(t)
	configuration, err := json.Marshal(logConfig{Filename: filename, Level: logs.LevelDebug})
	assert.NoError(t, err)
	assert.NoError(t, Init(string(configuration)))

	Emergency("print %s level log", "emergency")
	Alert("print %s level log", "alert")
	Critical("print %s level log", "critical")
	Error("print %s level log", "error")
	Warn("print %s level log", "warn")
	Notice("print %s level log", "notice")
	Info("print %s level log", "info")
	Debug("print %s level log", "debug")

	str := readLog(t, filename)
	for _, level := range []string{"emergency", "alert", "critical", "error", "warn", "notice", "info", "debug"} {
		assert.Contains(t, str, "print "+level+" level log")
	}
}

func TestInitLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "initLog")
	if err != nil {
		t.Fatalf("generate temp path failed: %v", err)
	}
	defer os.RemoveAll(dir)

	cfg := conf.InitConfig([]string{"--loglevel=warn"})
	assert.NoError(t, InitLogger(dir, cfg))
	for _, module := range cfg.Log.Module {
		assert.True(t, IsIncludeModule(module))
	}

	Print("wire", "warn", "visible")
	Print("wire", "debug", "hidden")
	str := readLog(t, filepath.Join(dir, cfg.Log.FileName))
	assert.Contains(t, str, "visible")
	assert.False(t, strings.Contains(str, "hidden"))

	logs.SetLevel(logs.LevelDebug)
}

func TestGetLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"emergency", logs.LevelEmergency},
		{"ALERT", logs.LevelAlert},
		{"warn", logs.LevelWarning},
		{"info", logs.LevelInformational},
		{"debug", logs.LevelDebug},
		{"nonsense", defaultLogLevel},
	}
	for i, test := range tests {
		if got := GetLevel(test.in); got != test.want {
			t.Errorf("GetLevel #%d got: %d want: %d", i, got, test.want)
		}
	}
}

func TestLogClosure(t *testing.T) {
	calls := 0
	c := InitLogClosure(func() string {
		calls++
		return "expensive"
	})
	assert.Equal(t, 0, calls)
	assert.Equal(t, "expensive", c.String())
	assert.Equal(t, 1, calls)
}
