package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Totarae/akamai-purge/internal/client"
	"github.com/Totarae/akamai-purge/internal/config"
	"github.com/Totarae/akamai-purge/internal/service"
	"github.com/Totarae/akamai-purge/internal/service/mocks"
)

func testConfig(urls string) *config.Config {
	return &config.Config{
		ClientToken:  "ct",
		ClientSecret: "cs",
		AccessToken:  "at",
		Host:         "akab-host.luna.akamaiapis.net",
		URLs:         urls,
	}
}

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockPurgeClient(ctrl)

	want := []string{"https://example.com/page", "https://cdn.example.com/img.png"}
	m.EXPECT().
		Purge(gomock.Any(), want).
		Return(`{"httpStatus":201,"detail":"Request accepted","purgeId":"edup-1","estimatedSeconds":5}`, nil).
		Times(1)

	svc := service.NewPurgeService(m, zap.NewNop())
	res, err := svc.Run(context.Background(), testConfig("  https://example.com/page  \n/relative\n\nhttps://cdn.example.com/img.png"))
	require.NoError(t, err)

	assert.Equal(t, want, res.Targets)
	require.NotNil(t, res.Ack)
	assert.Equal(t, "edup-1", res.Ack.PurgeID)
}

func TestRun_PlainBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockPurgeClient(ctrl)
	m.EXPECT().Purge(gomock.Any(), gomock.Any()).Return("ok", nil)

	svc := service.NewPurgeService(m, zap.NewNop())
	res, err := svc.Run(context.Background(), testConfig("https://a.com\nhttps://a.com"))
	require.NoError(t, err)

	assert.Equal(t, "ok", res.Body)
	assert.Nil(t, res.Ack)
	assert.Equal(t, []string{"https://a.com", "https://a.com"}, res.Targets)
}

func TestRun_ConfigErrorSkipsClient(t *testing.T) {
	fields := map[string]func(*config.Config){
		config.InputClientToken:  func(c *config.Config) { c.ClientToken = "" },
		config.InputClientSecret: func(c *config.Config) { c.ClientSecret = "" },
		config.InputAccessToken:  func(c *config.Config) { c.AccessToken = "" },
		config.InputHost:         func(c *config.Config) { c.Host = "" },
		config.InputURLs:         func(c *config.Config) { c.URLs = "" },
	}

	for name, mutate := range fields {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks.NewMockPurgeClient(ctrl)
			m.EXPECT().Purge(gomock.Any(), gomock.Any()).Times(0)

			cfg := testConfig("https://a.com")
			mutate(cfg)

			res, err := service.NewPurgeService(m, zap.NewNop()).Run(context.Background(), cfg)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, config.ErrConfig)

			var cfgErr *config.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, []string{name}, cfgErr.Missing)
		})
	}
}

func TestRun_AllInvalidStillSubmits(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockPurgeClient(ctrl)
	m.EXPECT().Purge(gomock.Any(), []string{}).Return("", nil)

	res, err := service.NewPurgeService(m, zap.NewNop()).Run(context.Background(), testConfig("/\nnot a url"))
	require.NoError(t, err)
	assert.Empty(t, res.Targets)
}

func TestRun_ClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockPurgeClient(ctrl)
	m.EXPECT().Purge(gomock.Any(), gomock.Any()).Return("", client.ErrRequestFailed)

	res, err := service.NewPurgeService(m, zap.NewNop()).Run(context.Background(), testConfig("https://a.com"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, client.ErrRequestFailed)
}

func TestRun_TooManyTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockPurgeClient(ctrl)
	m.EXPECT().Purge(gomock.Any(), gomock.Any()).Times(0)

	var b strings.Builder
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&b, "https://cdn.example.com/assets/%05d/image.png\n", i)
	}

	res, err := service.NewPurgeService(m, zap.NewNop()).Run(context.Background(), testConfig(b.String()))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, service.ErrTooManyTargets)
	assert.Contains(t, err.Error(), "2000 URLs")
}

func TestCheckTargets(t *testing.T) {
	assert.NoError(t, service.CheckTargets(nil, service.MaxRequestBodySize))
	assert.NoError(t, service.CheckTargets([]string{"https://a.com"}, 0))

	// {"objects":["https://a.com"]} занимает 29 байт
	assert.NoError(t, service.CheckTargets([]string{"https://a.com"}, 29))
	assert.ErrorIs(t, service.CheckTargets([]string{"https://a.com"}, 28), service.ErrTooManyTargets)
}
