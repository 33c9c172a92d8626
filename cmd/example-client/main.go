// Command example-client is a small admin CLI for inspecting a
// Passage flex app from the terminal: app settings, user records, and
// registered passkey devices.
//
// Usage:
//
//	example-client -config passage.yaml app
//	example-client user <external-id>
//	example-client devices <external-id>
//	example-client revoke <external-id> <device-id>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sufield/passageflex"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configPath := flag.String("config", "", "Path to a passage.yaml config file (default: environment variables)")
	timeout := flag.Duration("timeout", 15*time.Second, "Request timeout")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("passageflex-example-client %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	var flex *passageflex.PassageFlex
	var err error
	if *configPath != "" {
		flex, err = passageflex.NewFromFile(*configPath)
	} else {
		flex, err = passageflex.NewFromEnv()
	}
	if err != nil {
		log.Fatalf("Failed to configure Passage client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	os.Exit(run(ctx, flex, flag.Args()))
}

func run(ctx context.Context, flex *passageflex.PassageFlex, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: example-client [flags] app | user <external-id> | devices <external-id> | revoke <external-id> <device-id>")
		return 2
	}

	switch args[0] {
	case "app":
		app, err := flex.GetApp(ctx)
		if err != nil {
			log.Printf("get app: %v", err)
			return 1
		}
		printJSON(app)

	case "user":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: example-client user <external-id>")
			return 2
		}
		user, err := flex.User.Get(ctx, args[1])
		if err != nil {
			log.Printf("get user: %v", err)
			return 1
		}
		printJSON(user)

	case "devices":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: example-client devices <external-id>")
			return 2
		}
		devices, err := flex.User.ListDevices(ctx, args[1])
		if err != nil {
			log.Printf("list devices: %v", err)
			return 1
		}
		printJSON(devices)

	case "revoke":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: example-client revoke <external-id> <device-id>")
			return 2
		}
		if err := flex.User.RevokeDevice(ctx, args[1], args[2]); err != nil {
			log.Printf("revoke device: %v", err)
			return 1
		}
		fmt.Println("revoked")

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		return 2
	}
	return 0
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	fmt.Println(string(out))
}
