package rc5

import (
	"context"

	"github.com/coinbase/cb-rc5-go/pkg/rc5/logging"
)

// DefaultRounds is the nominal RC5-32/12 round count used when a Config leaves
// Rounds unset.
const DefaultRounds uint32 = 12

// Config collects the optional knobs for NewWithConfig. The zero value is
// usable: twelve rounds and no logging.
type Config struct {
	// Rounds is the number of rounds the Cipher runs. Zero selects
	// DefaultRounds; New itself has no default and rejects zero.
	Rounds uint32

	// Logger receives construction events. Key material is never passed to
	// it. A nil Logger discards everything.
	Logger logging.Logger
}

func (c Config) rounds() uint32 {
	if c.Rounds == 0 {
		return DefaultRounds
	}
	return c.Rounds
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Nop()
	}
	return c.Logger
}

// NewWithConfig is New driven by a Config. ctx is only handed to the logger;
// key expansion itself never blocks.
func NewWithConfig(ctx context.Context, key []byte, cfg Config) (*Cipher, error) {
	log := cfg.logger().With("component", "rc5")
	rounds := cfg.rounds()

	c, err := New(key, rounds)
	if err != nil {
		log.Warn(ctx, "rc5 construction rejected", "rounds", rounds, "key_len", len(key), "error", err)
		return nil, err
	}

	log.Debug(ctx, "rc5 key schedule expanded",
		"rounds", c.rounds,
		"round_keys", len(c.roundKeys),
		logging.Redacted("key"),
	)
	return c, nil
}
