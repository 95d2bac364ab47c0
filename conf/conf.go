package conf

import (
	"os"
	"path"
	"reflect"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// ConfEnv names the environment variable holding the configuration file path.
const ConfEnv = "WIRECODEC_CONF"

const (
	envPrefix = "wirecodec"
	tagName   = "default"
)

// Network names accepted in the Net field.
const (
	NetMain     = "main"
	NetTestNet3 = "testnet3"
	NetRegTest  = "regtest"
)

type Configuration struct {
	Net      string `default:"main"`
	Protocol struct {
		Version    uint32 `default:"70015"`
		MaxPayload uint32 `default:"33554432"`
		SendOnly   []string
	}
	Log struct {
		Level    string `default:"info"`
		Module   []string
		FileName string `default:"wirecodec.log"`
	}
}

// InitConfig loads the configuration and panics when it can not, which is what
// program entry points and TestMain want.
func InitConfig(args []string) *Configuration {
	config, err := LoadConfig(args)
	if err != nil {
		panic(err)
	}
	return config
}

// LoadConfig merges, lowest priority first: struct tag defaults, the yaml file,
// WIRECODEC_* environment variables and the command line options in args.
func LoadConfig(args []string) (*Configuration, error) {
	opts, err := InitArgs(args)
	if err != nil {
		return nil, err
	}
	return LoadConfigOpts(opts)
}

// LoadConfigOpts is LoadConfig for options a caller has already parsed, e.g.
// as a group of a larger command line.
func LoadConfigOpts(opts *Opts) (*Configuration, error) {
	if opts.TestNet && opts.RegTest {
		return nil, errors.New("testnet and regtest can not be used together")
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")
	setDefaults(v, reflect.TypeOf(Configuration{}), "")

	filePath, explicit := configPath(opts)
	file, err := os.Open(filePath)
	switch {
	case err == nil:
		defer file.Close()
		if err := v.ReadConfig(file); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", filePath)
		}
	case explicit:
		return nil, errors.Wrapf(err, "open config file %s", filePath)
	}

	config := &Configuration{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "unmarshal configuration")
	}

	switch {
	case opts.TestNet:
		config.Net = NetTestNet3
	case opts.RegTest:
		config.Net = NetRegTest
	}
	if opts.LogLevel != "" {
		config.Log.Level = opts.LogLevel
	}
	if opts.MaxPayload != 0 {
		config.Protocol.MaxPayload = opts.MaxPayload
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults registers the default struct tag of every leaf field under its
// dotted key, e.g. "protocol.version".
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := strings.ToLower(field.Name)
		if prefix != "" {
			key = prefix + "." + key
		}
		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, key)
			continue
		}
		if value, ok := field.Tag.Lookup(tagName); ok {
			v.SetDefault(key, value)
		}
	}
}

func configPath(opts *Opts) (string, bool) {
	if opts.ConfFile != "" {
		return opts.ConfFile, true
	}
	if env := os.Getenv(ConfEnv); env != "" {
		return env, true
	}
	// fall back to the sample config that lives next to this file
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "conf.yml", false
	}
	return path.Join(path.Dir(filename), "conf.yml"), false
}

// Validate checks the values the codec can not work without.
func (c *Configuration) Validate() error {
	switch c.Net {
	case NetMain, NetTestNet3, NetRegTest:
	default:
		return errors.Errorf("unknown net %q, want one of %s, %s, %s", c.Net, NetMain, NetTestNet3, NetRegTest)
	}
	if c.Protocol.Version == 0 {
		return errors.New("protocol version must be set")
	}
	if c.Protocol.MaxPayload == 0 {
		return errors.New("max payload must be greater than zero")
	}
	for _, cmd := range c.Protocol.SendOnly {
		if len(cmd) == 0 || len(cmd) > 12 {
			return errors.Errorf("send only command %q must be 1 to 12 bytes", cmd)
		}
	}
	return nil
}

// Dump renders the effective configuration as yaml.
func (c *Configuration) Dump() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "marshal configuration")
	}
	return string(out), nil
}
