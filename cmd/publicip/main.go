// The publicip command prints the caller's public-facing IP address as discovered
// via DNS echo services. See the publicip package for the resolution semantics.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/publicip"
	"github.com/markdingo/publicip/log"
)

const (
	programName = "publicip"
	version     = "v1.0.0"
	projectURL  = "https://github.com/markdingo/publicip"
)

func fatal(err error, messages ...string) {
	msg := "Fatal"
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {
	var fourFlag, sixFlag, debugFlag, helpFlag, versionFlag bool

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage:", programName, "[-4|-6] [-d] [-h] [-v]")
		fs.PrintDefaults()
	}

	fs.BoolVarP(&fourFlag, "ipv4", "4", false, "Resolve an IPv4 address only")
	fs.BoolVarP(&sixFlag, "ipv6", "6", false, "Resolve an IPv6 address only")
	fs.BoolVarP(&debugFlag, "debug", "d", false, "Log each DNS exchange to Stderr")
	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	err := fs.Parse(os.Args[1:])
	if err != nil {
		os.Exit(1) // pflag has already printed the complaint
	}
	if helpFlag {
		fs.Usage()
		return
	}
	if versionFlag {
		fmt.Println(programName, version, projectURL)
		return
	}
	if fs.NArg() > 0 {
		fatal(nil, "Unexpected argument:", fs.Arg(0))
	}
	if fourFlag && sixFlag {
		fatal(nil, "-4 and -6 are mutually exclusive")
	}

	if debugFlag {
		log.SetOut(os.Stderr)
		log.SetLevel(log.DebugLevel)
	}

	var ip net.IP
	switch {
	case fourFlag:
		ip, err = publicip.AddrV4(context.Background())
	case sixFlag:
		ip, err = publicip.AddrV6(context.Background())
	default:
		ip, err = publicip.Addr(context.Background())
	}
	if err != nil {
		fatal(err, "Could not resolve a public address")
	}

	fmt.Println(ip.String())
}
