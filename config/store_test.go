package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xalexb/dotconf/config"
	tomlcodec "github.com/0xalexb/dotconf/config/codec/toml"
	"github.com/0xalexb/dotconf/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `
title = "edge gateway"
enabled = true
ratio = 0.75
retries = 3
started = 1979-05-27T07:32:00Z
ports = [8000, 8001, 8002]
mixed = ["a", 1, 2.5, false]

[server]
host = "localhost"
port = 8080

[server.tls]
enabled = false
ciphers = ["TLS_AES_128_GCM_SHA256"]

[[sources]]
name = "opcua"
interval = 5

[[sources]]
name = "modbus"
interval = 10
`

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	return configPath
}

func loadDocument(t *testing.T, content string) *config.Store {
	t.Helper()

	store, err := config.Load(writeDocument(t, "config.toml", content))
	require.NoError(t, err)

	return store
}

func emptyStore(t *testing.T) *config.Store {
	t.Helper()

	store, err := config.New(filepath.Join(t.TempDir(), "config.toml"), value.TableOf(nil))
	require.NoError(t, err)

	return store
}

func TestStore_EndToEnd(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, "[a]\nb = 1\n")

	got, ok := store.Get("a.b")
	require.True(t, ok)
	require.True(t, value.Equal(value.Int(1), got))

	require.NoError(t, store.Delete("a.b"))

	_, ok = store.Get("a.b")
	require.False(t, ok)

	table, ok := store.Get("a")
	require.True(t, ok)

	tbl, isTable := table.AsTable()
	require.True(t, isTable)
	require.Zero(t, tbl.Len())
}

func TestStore_SetThenGet(t *testing.T) {
	t.Parallel()

	list := value.Seq(value.Int(1), value.String("two"), value.Float(3.5))

	nested := value.NewTable()
	nested.Set("k", value.Bool(true))

	testCases := []struct {
		name  string
		path  string
		input value.Value
	}{
		{"string", "server.host", value.String("example.com")},
		{"integer", "server.port", value.Int(9090)},
		{"float", "ratio", value.Float(0.125)},
		{"bool", "enabled", value.Bool(false)},
		{"datetime", "started", value.Datetime(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC))},
		{"sequence", "server.tls.ciphers", list},
		{"table", "server.extra", value.TableOf(nested)},
		{"new top-level key", "fresh", value.String("x")},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			store := loadDocument(t, fullDocument)

			require.NoError(t, store.Set(testCase.path, testCase.input))

			got, ok := store.Get(testCase.path)
			require.True(t, ok)
			require.True(t, value.Equal(testCase.input, got), "got %s, want %s", got, testCase.input)
		})
	}
}

func TestStore_SetOverwritesOtherKind(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, fullDocument)

	require.NoError(t, store.Set("server", value.String("flat")))

	got, ok := store.GetStr("server")
	require.True(t, ok)
	require.Equal(t, "flat", got)

	_, ok = store.Get("server.host")
	require.False(t, ok)
}

func TestStore_SetStoresCopy(t *testing.T) {
	t.Parallel()

	store := emptyStore(t)

	section := value.NewTable()
	section.Set("port", value.Int(1))

	require.NoError(t, store.Set("server", value.TableOf(section)))

	section.Set("port", value.Int(2))

	port, ok := store.GetInt("server.port")
	require.True(t, ok)
	require.Equal(t, int64(1), port)

	got, _ := store.Get("server")
	tbl, _ := got.AsTable()
	tbl.Set("port", value.Int(3))

	port, _ = store.GetInt("server.port")
	require.Equal(t, int64(1), port, "values returned by Get must not alias the tree")
}

func TestStore_CreateAutoVivifies(t *testing.T) {
	t.Parallel()

	store := emptyStore(t)

	require.NoError(t, store.Create("a.b.c", value.String("deep")))

	for _, path := range []string{"a", "a.b"} {
		got, ok := store.Get(path)
		require.True(t, ok, path)
		require.True(t, got.IsTable(), path)
	}

	got, ok := store.GetStr("a.b.c")
	require.True(t, ok)
	require.Equal(t, "deep", got)
}

func TestStore_SetRequiresParents(t *testing.T) {
	t.Parallel()

	store := emptyStore(t)

	err := store.Set("a.b", value.Int(1))
	require.ErrorIs(t, err, config.ErrPathNotFound)
	assert.Contains(t, err.Error(), `"a"`)

	_, ok := store.Get("a")
	require.False(t, ok, "a failed Set must not create structure")

	require.NoError(t, store.Create("a.b", value.Int(1)))
}

func TestStore_TypeMismatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		run  func(store *config.Store) error
	}{
		{"set", func(store *config.Store) error { return store.Set("title.y", value.Int(1)) }},
		{"create", func(store *config.Store) error { return store.Create("title.y.z", value.Int(1)) }},
		{"delete", func(store *config.Store) error { return store.Delete("title.y") }},
		{"sequence parent", func(store *config.Store) error { return store.Set("ports.0", value.Int(1)) }},
		{"array of tables parent", func(store *config.Store) error { return store.Create("sources.name", value.Int(1)) }},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			store := loadDocument(t, fullDocument)

			err := testCase.run(store)
			require.ErrorIs(t, err, config.ErrTypeMismatch)

			title, ok := store.GetStr("title")
			require.True(t, ok)
			require.Equal(t, "edge gateway", title, "scalar parent must not be overwritten")
		})
	}
}

func TestStore_CreateThroughExistingTables(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, fullDocument)

	require.NoError(t, store.Create("server.tls.client.cert", value.String("client.pem")))

	enabled, ok := store.GetBool("server.tls.enabled")
	require.True(t, ok, "existing siblings are kept")
	require.False(t, enabled)

	cert, ok := store.GetStr("server.tls.client.cert")
	require.True(t, ok)
	require.Equal(t, "client.pem", cert)

	require.NoError(t, store.Create("server.port", value.Int(1)), "create overwrites like set")

	port, _ := store.GetInt("server.port")
	require.Equal(t, int64(1), port)
}

func TestStore_EmptyKey(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", ".", "a.", ".a", "a..b"} {
		store := loadDocument(t, fullDocument)

		require.ErrorIs(t, store.Set(path, value.Int(1)), config.ErrEmptyKey, "set %q", path)
		require.ErrorIs(t, store.Create(path, value.Int(1)), config.ErrEmptyKey, "create %q", path)
		require.ErrorIs(t, store.Delete(path), config.ErrEmptyKey, "delete %q", path)
	}
}

func TestStore_GetEmptyPathReturnsRoot(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, fullDocument)

	root, ok := store.Get("")
	require.True(t, ok)
	require.True(t, value.Equal(store.Root(), root))
}

func TestStore_GetMisses(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, fullDocument)

	for _, path := range []string{"missing", "server.missing", "title.deeper", "ports.0", "a..b"} {
		_, ok := store.Get(path)
		require.False(t, ok, path)
	}
}

func TestStore_DeleteIdempotent(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, fullDocument)

	require.NoError(t, store.Delete("server.port"))
	require.NoError(t, store.Delete("server.port"))
	require.NoError(t, store.Delete("never"))

	_, ok := store.Get("server.port")
	require.False(t, ok)

	host, ok := store.GetStr("server.host")
	require.True(t, ok)
	require.Equal(t, "localhost", host)

	err := store.Delete("missing.key")
	require.ErrorIs(t, err, config.ErrPathNotFound)
}

func TestStore_ScalarGetters(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, fullDocument)

	title, ok := store.GetStr("title")
	require.True(t, ok)
	require.Equal(t, "edge gateway", title)

	retries, ok := store.GetInt("retries")
	require.True(t, ok)
	require.Equal(t, int64(3), retries)

	ratio, ok := store.GetFloat("ratio")
	require.True(t, ok)
	require.InDelta(t, 0.75, ratio, 1e-9)

	enabled, ok := store.GetBool("enabled")
	require.True(t, ok)
	require.True(t, enabled)

	started, ok := store.GetDatetime("started")
	require.True(t, ok)
	require.True(t, started.Equal(time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC)))

	_, ok = store.GetStr("retries")
	require.False(t, ok, "integers are not strings")

	_, ok = store.GetFloat("retries")
	require.False(t, ok, "integers are not floats")

	_, ok = store.GetStr("missing")
	require.False(t, ok)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	configPath := writeDocument(t, "config.toml", fullDocument)

	original, err := config.Load(configPath)
	require.NoError(t, err)

	require.NoError(t, original.Save())

	reloaded, err := config.Load(configPath)
	require.NoError(t, err)

	require.True(t, value.Equal(original.Root(), reloaded.Root()),
		"got %s\nwant %s", reloaded.Root(), original.Root())
}

func TestStore_SavePersistsMutations(t *testing.T) {
	t.Parallel()

	configPath := writeDocument(t, "config.toml", fullDocument)

	store, err := config.Load(configPath)
	require.NoError(t, err)

	require.NoError(t, store.Set("server.port", value.Int(9443)))
	require.NoError(t, store.Create("database.primary.host", value.String("db1")))
	require.NoError(t, store.Delete("ratio"))
	require.NoError(t, store.Save())

	reloaded, err := config.Load(configPath)
	require.NoError(t, err)

	port, _ := reloaded.GetInt("server.port")
	require.Equal(t, int64(9443), port)

	host, _ := reloaded.GetStr("database.primary.host")
	require.Equal(t, "db1", host)

	_, ok := reloaded.Get("ratio")
	require.False(t, ok)
}

func TestStore_NoImplicitFlush(t *testing.T) {
	t.Parallel()

	configPath := writeDocument(t, "config.toml", "[a]\nb = 1\n")

	store, err := config.Load(configPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("a.b", value.Int(2)))

	reloaded, err := config.Load(configPath)
	require.NoError(t, err)

	b, _ := reloaded.GetInt("a.b")
	require.Equal(t, int64(1), b)
}

func TestStore_SaveInvalidValue(t *testing.T) {
	t.Parallel()

	configPath := writeDocument(t, "config.toml", "[a]\nb = 1\n")

	store, err := config.Load(configPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("a.broken", value.Value{}))

	err = store.Save()
	require.ErrorIs(t, err, config.ErrSerialize)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, "[a]\nb = 1\n", string(data), "a serialize failure must not touch the file")
}

func TestStore_SaveAs(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, fullDocument)
	target := filepath.Join(t.TempDir(), "copy.toml")

	require.NoError(t, store.SaveAs(target))
	require.Equal(t, target, store.Path())

	reloaded, err := config.Load(target)
	require.NoError(t, err)
	require.True(t, value.Equal(store.Root(), reloaded.Root()))

	before := store.Path()
	err = store.SaveAs(t.TempDir())
	require.ErrorIs(t, err, config.ErrIO)
	require.Equal(t, before, store.Path())
}

func TestStore_SaveAsFollowsExtension(t *testing.T) {
	t.Parallel()

	store := loadDocument(t, fullDocument)
	target := filepath.Join(t.TempDir(), "copy.yaml")

	require.NoError(t, store.SaveAs(target))

	reloaded, err := config.Load(target)
	require.NoError(t, err)
	require.True(t, value.Equal(store.Root(), reloaded.Root()), "got %s\nwant %s", reloaded.Root(), store.Root())

	require.NoError(t, store.Set("retries", value.Int(4)))
	require.NoError(t, store.Save())

	reloaded, err = config.Load(target)
	require.NoError(t, err)

	retries, _ := reloaded.GetInt("retries")
	require.Equal(t, int64(4), retries, "Save after SaveAs keeps the new format")
}

func TestStore_SaveAsKeepsPinnedCodec(t *testing.T) {
	t.Parallel()

	source := writeDocument(t, "config.toml", "[a]\nb = 1\n")

	store, err := config.Load(source, config.WithCodec(tomlcodec.NewCodec()))
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "copy.yaml")
	require.NoError(t, store.SaveAs(target))

	reloaded, err := config.Load(target, config.WithCodec(tomlcodec.NewCodec()))
	require.NoError(t, err)

	b, ok := reloaded.GetInt("a.b")
	require.True(t, ok)
	require.Equal(t, int64(1), b)
}

func TestStore_YAMLDatetimeRoundTrip(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")

	store, err := config.New(configPath, value.TableOf(nil))
	require.NoError(t, err)

	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.Set("d", value.Datetime(when)))
	require.NoError(t, store.Save())

	reloaded, err := config.Load(configPath)
	require.NoError(t, err)
	require.True(t, value.Equal(store.Root(), reloaded.Root()), "got %s\nwant %s", reloaded.Root(), store.Root())

	got, ok := reloaded.GetDatetime("d")
	require.True(t, ok)
	require.True(t, got.Equal(when))
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, config.ErrIO)

	_, err = config.Load(t.TempDir())
	require.ErrorIs(t, err, config.ErrIO)

	_, err = config.Load(writeDocument(t, "bad.toml", "[a\nb = "))
	require.ErrorIs(t, err, config.ErrParse)

	_, err = config.Load(writeDocument(t, "dup.toml", "a = 1\na = 2\n"))
	require.ErrorIs(t, err, config.ErrParse)
}

func TestLoad_PathAndEmptyDocument(t *testing.T) {
	t.Parallel()

	configPath := writeDocument(t, "sources.conf", "")

	store, err := config.Load(configPath)
	require.NoError(t, err)
	require.Equal(t, configPath, store.Path())

	root := store.Root()
	tbl, ok := root.AsTable()
	require.True(t, ok)
	require.Zero(t, tbl.Len())
}

func TestNew_RejectsScalarRoot(t *testing.T) {
	t.Parallel()

	_, err := config.New("config.toml", value.Int(1))
	require.ErrorIs(t, err, config.ErrTypeMismatch)
}

func TestStore_YAMLDocument(t *testing.T) {
	t.Parallel()

	configPath := writeDocument(t, "config.yaml", `
server:
  host: localhost
  port: 8080
tags:
  - a
  - b
`)

	store, err := config.Load(configPath)
	require.NoError(t, err)

	port, ok := store.GetInt("server.port")
	require.True(t, ok)
	require.Equal(t, int64(8080), port)

	require.NoError(t, store.Create("server.tls.enabled", value.Bool(true)))
	require.NoError(t, store.Save())

	reloaded, err := config.Load(configPath)
	require.NoError(t, err)
	require.True(t, value.Equal(store.Root(), reloaded.Root()))

	root, _ := reloaded.Root().AsTable()
	require.Equal(t, []string{"server", "tags"}, root.Keys(), "YAML keeps key order")
}
