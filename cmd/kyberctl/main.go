package main

import (
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cloudflare/kyberkem/internal/kyber/facade"
	"github.com/cloudflare/kyberkem/internal/obsmetrics"
	"github.com/cloudflare/kyberkem/internal/telemetry"
)

var (
	version = "DEV"
	commit  = "unknown"
)

func main() {
	obsmetrics.RegisterBuildInfo(version, commit)

	app := &cli.App{
		Name:      "kyberctl",
		Usage:     "Generate, encapsulate and decapsulate with CRYSTALS-Kyber",
		UsageText: "kyberctl [global options] command [command options]",
		Version:   fmt.Sprintf("%s (%s)", version, commit),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "k",
				Usage:   "parameter set: 2 (Kyber512), 3 (Kyber768) or 4 (Kyber1024)",
				Value:   3,
				EnvVars: []string{"KYBERCTL_K"},
			},
			&cli.StringFlag{
				Name:    telemetry.LevelFlag,
				Usage:   "log level: debug, info, warn, error",
				Value:   "info",
				EnvVars: []string{"KYBERCTL_LOGLEVEL"},
			},
		},
		Commands: []*cli.Command{
			keygenCommand,
			encapCommand,
			decapCommand,
			serveMetricsCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func schemeFromContext(c *cli.Context) (*facade.Scheme, error) {
	k := c.Int("k")
	if k != 2 && k != 3 && k != 4 {
		return nil, errors.Errorf("unsupported parameter set k=%d, want 2, 3 or 4", k)
	}
	return facade.New(k), nil
}

var keygenCommand = &cli.Command{
	Name:      "keygen",
	Usage:     "Generate a fresh keypair and print it hex-encoded",
	ArgsUsage: " ",
	Action: func(c *cli.Context) error {
		log := telemetry.New(c.String(telemetry.LevelFlag))
		sch, err := schemeFromContext(c)
		if err != nil {
			return err
		}

		start := time.Now()
		pk, sk, err := sch.GenerateKeyPair()
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		obsmetrics.Observe("keygen", sch.Name(), outcome, time.Since(start))
		if err != nil {
			return errors.Wrap(err, "generating keypair")
		}

		log.Info().Str("parameter_set", sch.Name()).Msg("generated keypair")
		fmt.Printf("public_key=%s\n", hex.EncodeToString(pk))
		fmt.Printf("private_key=%s\n", hex.EncodeToString(sk))
		return nil
	},
}

var encapCommand = &cli.Command{
	Name:      "encap",
	Usage:     "Encapsulate a fresh shared secret against a hex-encoded public key",
	ArgsUsage: "<public-key-hex>",
	Action: func(c *cli.Context) error {
		log := telemetry.New(c.String(telemetry.LevelFlag))
		sch, err := schemeFromContext(c)
		if err != nil {
			return err
		}
		if c.NArg() != 1 {
			return errors.New("encap takes exactly one argument: the hex-encoded public key")
		}
		pk, err := hex.DecodeString(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "decoding public key")
		}

		start := time.Now()
		ct, ss, err := sch.Encapsulate(pk)
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		obsmetrics.Observe("encapsulate", sch.Name(), outcome, time.Since(start))
		if err != nil {
			return errors.Wrap(err, "encapsulating")
		}

		log.Info().Str("parameter_set", sch.Name()).Msg("encapsulated shared secret")
		fmt.Printf("ciphertext=%s\n", hex.EncodeToString(ct))
		fmt.Printf("shared_secret=%s\n", hex.EncodeToString(ss))
		return nil
	},
}

var decapCommand = &cli.Command{
	Name:      "decap",
	Usage:     "Decapsulate a hex-encoded ciphertext with a hex-encoded private key",
	ArgsUsage: "<private-key-hex> <ciphertext-hex>",
	Action: func(c *cli.Context) error {
		log := telemetry.New(c.String(telemetry.LevelFlag))
		sch, err := schemeFromContext(c)
		if err != nil {
			return err
		}
		if c.NArg() != 2 {
			return errors.New("decap takes exactly two arguments: the hex-encoded private key and ciphertext")
		}
		sk, err := hex.DecodeString(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "decoding private key")
		}
		ct, err := hex.DecodeString(c.Args().Get(1))
		if err != nil {
			return errors.Wrap(err, "decoding ciphertext")
		}

		start := time.Now()
		ss, err := sch.Decapsulate(sk, ct)
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		obsmetrics.Observe("decapsulate", sch.Name(), outcome, time.Since(start))
		if err != nil {
			return errors.Wrap(err, "decapsulating")
		}

		log.Info().Str("parameter_set", sch.Name()).Msg("decapsulated shared secret")
		fmt.Printf("shared_secret=%s\n", hex.EncodeToString(ss))
		return nil
	},
}

var serveMetricsCommand = &cli.Command{
	Name:      "serve-metrics",
	Usage:     "Serve Prometheus metrics until interrupted",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "address",
			Usage: "listen address for the metrics server",
			Value: "localhost:0",
		},
	},
	Action: func(c *cli.Context) error {
		log := telemetry.New(c.String(telemetry.LevelFlag))

		l, err := net.Listen("tcp", c.String("address"))
		if err != nil {
			return errors.Wrap(err, "binding metrics listener")
		}

		sigC := make(chan os.Signal, 1)
		signal.Notify(sigC, os.Interrupt)
		shutdownC := make(chan struct{})
		go func() {
			<-sigC
			close(shutdownC)
		}()

		return obsmetrics.Serve(l, log, shutdownC)
	},
}
