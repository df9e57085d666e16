package rc5_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-rc5-go/pkg/rc5"
	"github.com/coinbase/cb-rc5-go/pkg/rc5/logging"
)

func TestNewWithConfigDefaults(t *testing.T) {
	c, err := rc5.NewWithConfig(context.Background(), []byte("my secret key"), rc5.Config{})
	require.NoError(t, err)
	assert.Equal(t, rc5.DefaultRounds, c.Rounds())

	ref, err := rc5.New([]byte("my secret key"), rc5.DefaultRounds)
	require.NoError(t, err)
	assert.Equal(t, ref.RoundKeys(), c.RoundKeys())
}

func TestNewWithConfigRounds(t *testing.T) {
	c, err := rc5.NewWithConfig(context.Background(), []byte("k"), rc5.Config{Rounds: 20})
	require.NoError(t, err)
	assert.Equal(t, uint32(20), c.Rounds())
	assert.Len(t, c.RoundKeys(), 42)
}

func TestNewWithConfigLogsRedactedSchedule(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	cfg := rc5.Config{Logger: logging.NewLogrus(logrus.NewEntry(base))}
	_, err := rc5.NewWithConfig(context.Background(), []byte("my secret key"), cfg)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "rc5 key schedule expanded", entry.Message)
	assert.Equal(t, "rc5", entry.Data["component"])
	assert.Equal(t, uint32(12), entry.Data["rounds"])
	assert.Equal(t, 26, entry.Data["round_keys"])
	assert.Equal(t, logging.Placeholder(), entry.Data["key"])

	for k, v := range entry.Data {
		if s, ok := v.(string); ok {
			assert.NotContains(t, s, "my secret key", "field %s leaks key", k)
		}
	}
}

func TestNewWithConfigRejectsEmptyKey(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	cfg := rc5.Config{Logger: logging.NewLogrus(logrus.NewEntry(base))}

	c, err := rc5.NewWithConfig(context.Background(), nil, cfg)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, rc5.ErrInvalidParameter))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "rc5 construction rejected", entry.Message)
	assert.Equal(t, 0, entry.Data["key_len"])
	assert.Equal(t, err, entry.Data["error"])
}
