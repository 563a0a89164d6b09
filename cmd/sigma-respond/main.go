// Command sigma-respond dials a prover and verifies its proof of
// knowledge of the discrete log of a publicly known instance.
package main

import (
	"encoding/hex"
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
		Name:  "sigma-respond",
		Usage: "verify a prover's proof of knowledge of a discrete log",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dial", Value: "127.0.0.1:9444", Usage: "address of the prover to connect to"},
			&cli.StringFlag{Name: "p", Required: true, Usage: "hex-encoded safe prime p"},
			&cli.StringFlag{Name: "q", Required: true, Usage: "hex-encoded subgroup order q"},
			&cli.StringFlag{Name: "g", Required: true, Usage: "hex-encoded generator g"},
			&cli.StringFlag{Name: "h", Required: true, Usage: "hex-encoded public value h = g^w mod p"},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("sigma-respond failed")
	}
}

func hexField(name, s string) (*big.Int, error) {
	// big.Int.Text(16), as printed by sigma-prove, may have odd length.
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return new(big.Int).SetBytes(b), nil
}

func run(c *cli.Context, log zerolog.Logger) error {
	p, err := hexField("p", c.String("p"))
	if err != nil {
		return err
	}
	q, err := hexField("q", c.String("q"))
	if err != nil {
		return err
	}
	g, err := hexField("g", c.String("g"))
	if err != nil {
		return err
	}
	h, err := hexField("h", c.String("h"))
	if err != nil {
		return err
	}

	instance := schnorr.NewInstance(p, q, g, h)
	if !instance.IsValid() {
		return fmt.Errorf("instance %s failed validation", instance)
	}
	log.Info().Str("fingerprint", paramhash.Fingerprint(p, q, g, h)).Msg("instance validated")

	conn, err := net.Dial("tcp", c.String("dial"))
	if err != nil {
		return fmt.Errorf("dialing prover: %w", err)
	}
	defer conn.Close()

	connID := uuid.New()
	clog := log.With().Str("conn", connID.String()).Str("peer", conn.RemoteAddr().String()).Logger()
	clog.Info().Msg("connected, verifying")

	local := schnorr.New(instance, nil)
	side := remote.NewRemoteProverSide[*big.Int, *big.Int, *big.Int](local, conn)
	if err := sigmaproto.Run[*big.Int, *big.Int, *big.Int](side); err != nil {
		return fmt.Errorf("proof rejected: %w", err)
	}
	clog.Info().Msg("proof accepted")
	return nil
}
