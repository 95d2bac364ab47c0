// Command wiredump decodes a captured bitcoin p2p byte stream and prints one
// line per message.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/copernet/wirecodec/conf"
	"github.com/copernet/wirecodec/errcode"
	"github.com/copernet/wirecodec/log"
	"github.com/copernet/wirecodec/net/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type options struct {
	conf.Opts

	Input   string `short:"i" long:"input" default:"-" description:"File holding the captured stream, - reads stdin"`
	Hex     bool   `long:"hex" description:"Input is hex encoded, whitespace is ignored"`
	Chunk   int    `long:"chunk" default:"512" description:"Bytes handed to the decoder at a time"`
	Verbose bool   `short:"v" long:"verbose" description:"Dump every decoded message"`
	Encode  string `long:"encode" description:"Print the hex frame of a command without payload (verack, getaddr, sendheaders, mempool) and exit"`
	LogDir  string `long:"logdir" default:"." description:"Directory of the log file"`
}

// emptyCommands are the commands --encode can build without any input.
var emptyCommands = map[string]func() wire.Command{
	wire.CmdVerAck:      func() wire.Command { return wire.NewMsgVerAck() },
	wire.CmdGetAddr:     func() wire.Command { return wire.NewMsgGetAddr() },
	wire.CmdSendHeaders: func() wire.Command { return wire.NewMsgSendHeaders() },
	wire.CmdMemPool:     func() wire.Command { return wire.NewMsgMemPool() },
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	_, err := flags.ParseArgs(&opts, args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	if opts.Chunk <= 0 {
		return errors.Errorf("chunk size must be positive, got %d", opts.Chunk)
	}

	cfg, err := conf.LoadConfigOpts(&opts.Opts)
	if err != nil {
		return err
	}
	err = log.InitLogger(opts.LogDir, cfg)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	log.Print("wiredump", "info", "starting with %s net:%s", opts.Opts.String(), cfg.Net)

	codec, err := wire.NewCodecFromConfig(cfg)
	if err != nil {
		return err
	}

	if opts.Encode != "" {
		return encode(codec, opts.Encode, stdout)
	}

	data, err := readInput(opts.Input, opts.Hex, stdin)
	if err != nil {
		return err
	}
	return dump(codec, data, opts.Chunk, opts.Verbose, stdout)
}

func encode(codec *wire.Codec, cmd string, stdout io.Writer) error {
	newCmd, ok := emptyCommands[cmd]
	if !ok {
		return errors.Errorf("can not encode %q without a payload", cmd)
	}

	btcnet, _ := codec.Net()
	var buf bytes.Buffer
	err := codec.Encode(wire.NewMessage(btcnet, newCmd()), &buf)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hex.EncodeToString(buf.Bytes()))
	return err
}

func readInput(path string, isHex bool, stdin io.Reader) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = ioutil.ReadAll(stdin)
	} else {
		data, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if !isHex {
		return data, nil
	}

	raw, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, errors.Wrap(err, "decode hex input")
	}
	return raw, nil
}

// dump feeds data to the codec chunk bytes at a time.  Frames that fail to
// decode are reported and skipped; a frame too large to buffer ends the dump
// since the stream can not be resynchronized.
func dump(codec *wire.Codec, data []byte, chunk int, verbose bool, stdout io.Writer) error {
	var buf bytes.Buffer
	var decoded, failed int
	for len(data) > 0 {
		n := chunk
		if n > len(data) {
			n = len(data)
		}
		buf.Write(data[:n])
		data = data[n:]

		for {
			msg, err := codec.Decode(&buf)
			if err != nil {
				if errcode.IsErrorCode(err, errcode.ErrFrameTooLarge) {
					return err
				}
				failed++
				reject := errcode.RejectInvalid
				if msgErr, ok := wire.AsMessageError(err); ok {
					reject = msgErr.RejectCode()
				}
				fmt.Fprintf(stdout, "error: %v [%v]\n", err, reject)
				continue
			}
			if msg == nil {
				break
			}

			decoded++
			fmt.Fprintf(stdout, "%-10v %-12s %s\n", msg.Net, msg.Command.Command(), describe(msg.Command))
			if verbose {
				spew.Fdump(stdout, msg.Command)
			}
		}
	}

	log.Print("wiredump", "info", "decoded %d messages, %d failed", decoded, failed)
	fmt.Fprintf(stdout, "%d decoded, %d failed\n", decoded, failed)
	if buf.Len() > 0 {
		return &wire.MessageError{
			Code: errcode.ErrTruncatedInput,
			Err:  errors.Errorf("%d bytes left after the last message", buf.Len()),
		}
	}
	return nil
}

func describe(cmd wire.Command) string {
	switch msg := cmd.(type) {
	case *wire.MsgVersion:
		return fmt.Sprintf("version=%d services=%v agent=%q height=%d relay=%v",
			msg.ProtocolVersion, msg.Services, msg.UserAgent, msg.LastBlock, !msg.DisableRelayTx)
	case *wire.MsgAddr:
		return fmt.Sprintf("addresses=%d", len(msg.AddrList))
	case *wire.MsgPing:
		return fmt.Sprintf("nonce=%d", msg.Nonce)
	case *wire.MsgPong:
		return fmt.Sprintf("nonce=%d", msg.Nonce)
	case *wire.MsgReject:
		return fmt.Sprintf("cmd=%s code=%v reason=%q", msg.Cmd, msg.Code, msg.Reason)
	case *wire.MsgFeeFilter:
		return fmt.Sprintf("minfee=%d", msg.MinFee)
	case *wire.MsgAlert:
		return fmt.Sprintf("payload=%d signature=%d", len(msg.SerializedPayload), len(msg.Signature))
	}
	return ""
}
