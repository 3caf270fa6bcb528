package cmd

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMapFromDeviceFlags(t *testing.T) {
	m := buildMapFromStruct(reflect.TypeOf(DeviceFlags{}))
	require.NotEmpty(t, m)
	assert.Equal(t, "hid", m["backend"])
	assert.Contains(t, m, "vendor-id")
	assert.Contains(t, m, "product-id")
	assert.Contains(t, m, "serial")
	assert.Contains(t, m, "tuk")
}

func TestBuildMapFromLogFlags(t *testing.T) {
	m := buildMapFromStruct(reflect.TypeOf(LogFlags{}))
	assert.Equal(t, "info", m["level"])
	assert.Contains(t, m, "file")
	assert.Contains(t, m, "rawFile")
}

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, "json", normalizeFormat("JSON"))
	assert.Equal(t, "yaml", normalizeFormat("yml"))
	assert.Equal(t, "toml", normalizeFormat("toml"))
	assert.Empty(t, normalizeFormat("ini"))
}
