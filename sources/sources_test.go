package sources

import (
	"bytes"
	"log"
	"os"
	"testing"

	"aland-offers/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Order(t *testing.T) {
	srcs := Default()
	require.Len(t, srcs, 2)
	assert.Equal(t, Kantarellen, srcs[0].ID)
	assert.Equal(t, Varuboden, srcs[1].ID)
	assert.Equal(t, "https://www.kantarellen.ax/erbjudanden", srcs[0].URL)
	assert.Equal(t, "https://varuboden.ax/kampanjer/", srcs[1].URL)
}

func TestDefault_RulesMatchStores(t *testing.T) {
	k, ok := ByID(Kantarellen)
	require.True(t, ok)
	assert.True(t, k.Rule.ClassPattern.MatchString("Product-Tile"))
	assert.True(t, k.Rule.PricePattern.MatchString("kampanjpris"))
	assert.Empty(t, k.Rule.FixedPrice)

	v, ok := ByID(Varuboden)
	require.True(t, ok)
	assert.True(t, v.Rule.ClassPattern.MatchString("KAMPANJ-banner"))
	assert.False(t, v.Rule.ClassPattern.MatchString("product"))
	assert.Equal(t, "Löpande", v.Rule.FixedValid)

	_, ok = ByID("prisma")
	assert.False(t, ok)
}

func TestFromConfig(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Scraper.MaxItems = 7
	cfg.Sources.Enabled = []string{Varuboden}
	cfg.Sources.URLs = map[string]string{Varuboden: "http://127.0.0.1:9999/kampanjer/"}

	srcs := FromConfig(cfg)
	require.Len(t, srcs, 1)
	assert.Equal(t, Varuboden, srcs[0].ID)
	assert.Equal(t, "http://127.0.0.1:9999/kampanjer/", srcs[0].URL)
	assert.Equal(t, 7, srcs[0].Rule.MaxItems)
}

func TestFromConfig_DoesNotLeakIntoDefault(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Sources.URLs = map[string]string{Kantarellen: "http://override"}
	FromConfig(cfg)

	k, _ := ByID(Kantarellen)
	assert.Equal(t, "https://www.kantarellen.ax/erbjudanden", k.URL)
	assert.Zero(t, k.Rule.MaxItems)
}

func TestFromConfig_UnknownIDsWarn(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	cfg := config.GetDefaultConfig()
	cfg.Sources.Enabled = []string{Kantarellen, "prisma"}
	cfg.Sources.URLs = map[string]string{"citymarket": "http://example.ax"}

	srcs := FromConfig(cfg)
	require.Len(t, srcs, 1)
	assert.Equal(t, Kantarellen, srcs[0].ID)
	assert.Contains(t, buf.String(), `Unknown source "prisma" in sources.enabled`)
	assert.Contains(t, buf.String(), `Unknown source "citymarket" in sources.urls`)
}
