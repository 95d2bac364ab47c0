package conf

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type Opts struct {
	ConfFile   string `long:"conf" description:"Path to the yaml configuration file"`
	RegTest    bool   `long:"regtest" description:"Use the regression test network"`
	TestNet    bool   `long:"testnet" description:"Use the test network"`
	LogLevel   string `long:"loglevel" description:"Logging level {emergency, alert, critical, error, warn, notice, info, debug}"`
	MaxPayload uint32 `long:"maxpayload" description:"Largest payload in bytes a single message may declare"`
}

func InitArgs(args []string) (*Opts, error) {
	opts := new(Opts)
	_, err := flags.ParseArgs(opts, args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	return opts, nil
}

func (opts *Opts) String() string {
	return fmt.Sprintf("conf:%s regtest:%v testnet:%v", opts.ConfFile, opts.RegTest, opts.TestNet)
}
