// Command sigma-verify plays the verifying side of the commitment
// flow: it dials a committer, receives a commitment, and checks the
// opening once the committer reveals it.
package main

import (
	"fmt"
	"math/big"
	"net"
	"os"
	"time"

	"github.com/dkrypt/sigma/commitment"
	"github.com/dkrypt/sigma/internal/wire"
	"github.com/dkrypt/sigma/paramhash"
	"github.com/dkrypt/sigma/schnorr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

type openingMsg struct {
	Value string `json:"value"`
	Z     string `json:"z"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "sigma-verify",
		Usage: "connect to a committer and check its revealed opening",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dial", Value: "127.0.0.1:9443", Usage: "address of the committer to connect to"},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("sigma-verify failed")
	}
}

func run(c *cli.Context, log zerolog.Logger) error {
	connID := uuid.New()
	clog := log.With().Str("conn", connID.String()).Logger()

	conn, err := net.Dial("tcp", c.String("dial"))
	if err != nil {
		return fmt.Errorf("dialing committer: %w", err)
	}
	defer conn.Close()
	clog.Info().Str("peer", conn.RemoteAddr().String()).Msg("connected")

	var instance schnorr.Instance
	if err := wire.Read(conn, &instance); err != nil {
		return fmt.Errorf("reading instance: %w", err)
	}
	if !commitment.CheckParams(&instance) {
		return fmt.Errorf("committer sent invalid parameters")
	}
	clog.Info().Str("fingerprint", paramhash.Fingerprint(instance.P, instance.Q, instance.G, instance.H)).Msg("parameters validated")

	var a big.Int
	if err := wire.Read(conn, &a); err != nil {
		return fmt.Errorf("reading commitment: %w", err)
	}
	clog.Info().Str("commitment", a.Text(16)).Msg("commitment received, waiting for reveal")

	var opening openingMsg
	if err := wire.Read(conn, &opening); err != nil {
		return fmt.Errorf("reading opening: %w", err)
	}

	value, ok := new(big.Int).SetString(opening.Value, 16)
	if !ok {
		return fmt.Errorf("decoding opened value: malformed hex %q", opening.Value)
	}
	z, ok := new(big.Int).SetString(opening.Z, 16)
	if !ok {
		return fmt.Errorf("decoding opening response: malformed hex %q", opening.Z)
	}

	scheme := commitment.New(&instance)
	accepted := scheme.Verify(&a, value, z)

	if err := wire.Write(conn, accepted); err != nil {
		return fmt.Errorf("sending verdict: %w", err)
	}

	if !accepted {
		return fmt.Errorf("opening did not verify")
	}

	opened, err := commitment.Decode(value)
	if err != nil {
		clog.Warn().Err(err).Msg("opened value is not valid UTF-8")
	} else {
		clog.Info().Str("value", opened).Msg("opening verified")
	}
	return nil
}
