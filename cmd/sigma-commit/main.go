// Command sigma-commit plays the committing side of the commitment
// flow: it listens for a verifier, sends a commitment to an
// operator-supplied value, waits for the operator's go-ahead, then
// reveals the opening.
package main

import (
	"bufio"
	"fmt"
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
	Value string `json:"value"` // hex-encoded big.Int
	Z     string `json:"z"`     // hex-encoded big.Int
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "sigma-commit",
		Usage: "commit to a value and reveal it to a connecting verifier",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Value: "127.0.0.1:9443", Usage: "address to accept the verifier's connection on"},
			&cli.IntFlag{Name: "p-bits", Value: 512, Usage: "bit length of the generated safe prime p"},
			&cli.IntFlag{Name: "q-bits", Value: 160, Usage: "bit length of the generated subgroup order q"},
			&cli.StringFlag{Name: "value", Required: true, Usage: "the string value to commit to"},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("sigma-commit failed")
	}
}

func run(c *cli.Context, log zerolog.Logger) error {
	instance, _, err := commitment.GenParams(c.Int("p-bits"), c.Int("q-bits"))
	if err != nil {
		return fmt.Errorf("generating commitment parameters: %w", err)
	}
	log.Info().Str("fingerprint", paramhash.Fingerprint(instance.P, instance.Q, instance.G, instance.H)).Msg("generated parameters")

	scheme := commitment.New(instance)
	value := commitment.Encode(c.String("value"))

	ln, err := net.Listen("tcp", c.String("listen"))
	if err != nil {
		return fmt.Errorf("listening: %w", err)
	}
	defer ln.Close()
	log.Info().Str("addr", ln.Addr().String()).Msg("waiting for verifier")

	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accepting connection: %w", err)
	}
	defer conn.Close()

	connID := uuid.New()
	clog := log.With().Str("conn", connID.String()).Str("peer", conn.RemoteAddr().String()).Logger()
	clog.Info().Msg("verifier connected")

	if err := wire.Write(conn, instance); err != nil {
		return fmt.Errorf("sending instance: %w", err)
	}

	a, z := scheme.Commit(value)
	if err := wire.Write(conn, a); err != nil {
		return fmt.Errorf("sending commitment: %w", err)
	}
	clog.Info().Str("commitment", a.Text(16)).Msg("commitment sent")

	fmt.Fprint(os.Stderr, "press enter to reveal the opening: ")
	bufio.NewReader(os.Stdin).ReadString('\n')

	opening := openingMsg{Value: value.Text(16), Z: z.Text(16)}
	if err := wire.Write(conn, opening); err != nil {
		return fmt.Errorf("sending opening: %w", err)
	}
	clog.Info().Msg("opening revealed")

	var accepted bool
	if err := wire.Read(conn, &accepted); err != nil {
		return fmt.Errorf("reading verdict: %w", err)
	}
	if !accepted {
		return fmt.Errorf("verifier rejected the opening")
	}
	clog.Info().Msg("verifier accepted the opening")
	return nil
}
