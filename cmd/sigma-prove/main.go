// Command sigma-prove generates a fresh Schnorr instance and witness,
// prints the public instance for the verifying peer to load, then
// listens for a connection and proves knowledge of the witness over it.
package main

import (
	"fmt"
	"math/big"
	"net"
	"os"
	"time"

	"github.com/dkrypt/sigma/paramhash"
	"github.com/dkrypt/sigma/remote"
	"github.com/dkrypt/sigma/schnorr"
	"github.com/dkrypt/sigma/sigmaproto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "sigma-prove",
		Usage: "prove knowledge of a discrete log to a connecting verifier",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Value: "127.0.0.1:9444", Usage: "address to accept the verifier's connection on"},
			&cli.IntFlag{Name: "p-bits", Value: 512, Usage: "bit length of the generated safe prime p"},
			&cli.IntFlag{Name: "q-bits", Value: 160, Usage: "bit length of the generated subgroup order q"},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("sigma-prove failed")
	}
}

func run(c *cli.Context, log zerolog.Logger) error {
	instance, witness, err := schnorr.Generate(c.Int("p-bits"), c.Int("q-bits"))
	if err != nil {
		return fmt.Errorf("generating instance: %w", err)
	}
	log.Info().
		Str("fingerprint", paramhash.Fingerprint(instance.P, instance.Q, instance.G, instance.H)).
		Str("instance", instance.String()).
		Msg("generated instance; share its public values with the verifier out of band")

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
	clog.Info().Msg("verifier connected, proving")

	local := schnorr.New(instance, witness)
	side := remote.NewRemoteVerifierSide[*big.Int, *big.Int, *big.Int](local, conn)
	if err := sigmaproto.Run[*big.Int, *big.Int, *big.Int](side); err != nil {
		return fmt.Errorf("proof rejected: %w", err)
	}
	clog.Info().Msg("verifier accepted the proof")
	return nil
}
