package actionkit_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/actionkit"
	"github.com/dmitrymomot/actionkit/pkg/logger"
)

func TestCreateActions_ActionsMap(t *testing.T) {
	t.Parallel()

	t.Run("single transformer", func(t *testing.T) {
		t.Parallel()
		creators, err := actionkit.CreateActions(actionkit.NewMap(
			actionkit.E("INCREMENT", func(amount any) any { return amount }),
		))
		require.NoError(t, err)

		increment, ok := creators.Get("increment")
		require.True(t, ok)
		assert.Equal(t, actionkit.Action{Type: "INCREMENT", Payload: 5}, increment.Create(5))
	})

	t.Run("nested namespace", func(t *testing.T) {
		t.Parallel()
		creators, err := actionkit.CreateActions(actionkit.NewMap(
			actionkit.E("APP", actionkit.NewMap(
				actionkit.E("LOADED", func() any { return nil }),
			)),
		))
		require.NoError(t, err)

		assert.Equal(t, []string{"app"}, creators.Keys())
		app, ok := creators.Namespace("app")
		require.True(t, ok)
		assert.Equal(t, []string{"loaded"}, app.Keys())

		loaded, ok := app.Get("loaded")
		require.True(t, ok)
		assert.Equal(t, "APP/LOADED", loaded.Type())
	})

	t.Run("payload and meta pair", func(t *testing.T) {
		t.Parallel()
		creators, err := actionkit.CreateActions(actionkit.NewMap(
			actionkit.E("NOTIFY", []any{
				func(text any) any { return text },
				func() any { return map[string]any{"important": true} },
			}),
		))
		require.NoError(t, err)

		notify := creators.MustLookup("notify")
		action := notify.Create("hi")
		assert.Equal(t, "NOTIFY", action.Type)
		assert.Equal(t, "hi", action.Payload)
		assert.Equal(t, map[string]any{"important": true}, action.Meta)
		assert.True(t, action.HasMeta())
	})

	t.Run("camel-cases multi word types", func(t *testing.T) {
		t.Parallel()
		creators, err := actionkit.CreateActions(map[string]any{
			"USER_SIGNED_IN": func(v any) any { return v },
			"DATA": map[string]any{
				"FETCH_ALL": func(v any) any { return v },
			},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"data", "userSignedIn"}, creators.Keys())
		assert.Equal(t, "USER_SIGNED_IN", creators.MustLookup("userSignedIn").Type())
		assert.Equal(t, "DATA/FETCH_ALL", creators.MustLookup("data", "fetchAll").Type())
	})

	t.Run("identity types merged into map", func(t *testing.T) {
		t.Parallel()
		creators, err := actionkit.CreateActions(
			actionkit.NewMap(actionkit.E("INCREMENT", func(v any) any { return v.(int) * 2 })),
			"RESET", "APP/READY",
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"increment", "reset", "app"}, creators.Keys())
		assert.Equal(t, 4, creators.MustLookup("increment").Create(2).Payload)
		assert.Equal(t, "x", creators.MustLookup("reset").Create("x").Payload)
		assert.Equal(t, "APP/READY", creators.MustLookup("app", "ready").Type())
	})

	t.Run("identity type overrides map entry in place", func(t *testing.T) {
		t.Parallel()
		creators, err := actionkit.CreateActions(
			actionkit.NewMap(
				actionkit.E("INCREMENT", func(v any) any { return v.(int) * 2 }),
				actionkit.E("DECREMENT", func(v any) any { return v }),
			),
			"INCREMENT",
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"increment", "decrement"}, creators.Keys())
		assert.Equal(t, 2, creators.MustLookup("increment").Create(2).Payload)
	})

	t.Run("shared namespace prefix merges siblings", func(t *testing.T) {
		t.Parallel()
		fn := func(v any) any { return v }
		creators, err := actionkit.CreateActions(actionkit.NewMap(
			actionkit.E("APP", actionkit.NewMap(actionkit.E("LOADED", fn))),
			actionkit.E("APP/SAVED", fn),
		))
		require.NoError(t, err)

		app, ok := creators.Namespace("app")
		require.True(t, ok)
		assert.Equal(t, []string{"loaded", "saved"}, app.Keys())
	})

	t.Run("empty top-level map", func(t *testing.T) {
		t.Parallel()
		creators, err := actionkit.CreateActions(actionkit.NewMap())
		require.NoError(t, err)
		assert.Zero(t, creators.Len())
	})

	t.Run("error argument with identity creator", func(t *testing.T) {
		t.Parallel()
		creators, err := actionkit.CreateActions(actionkit.NewMap(
			actionkit.E("LOAD", actionkit.NewMap(actionkit.E("FAILED", actionkit.Pair{
				Meta: func(args ...any) any { return "retry" },
			}))),
		))
		require.NoError(t, err)

		boom := errors.New("boom")
		action := creators.MustLookup("load", "failed").Create(boom)
		assert.Equal(t, "LOAD/FAILED", action.Type)
		assert.Same(t, boom, action.Payload)
		assert.True(t, action.Error)
		assert.Equal(t, "retry", action.Meta)
	})
}

func TestCreateActions_IdentityTypes(t *testing.T) {
	t.Parallel()

	creators, err := actionkit.CreateActions("INCREMENT", "DECREMENT", "APP/LOADED")
	require.NoError(t, err)

	assert.Equal(t, []string{"increment", "decrement", "app/loaded"}, creators.Keys(), "string form stays flat")

	increment, ok := creators.Get("increment")
	require.True(t, ok)
	assert.Equal(t, actionkit.Action{Type: "INCREMENT", Payload: 10}, increment.Create(10))

	boom := errors.New("boom")
	assert.Equal(t, actionkit.Action{Type: "INCREMENT", Payload: boom, Error: true}, increment.Create(boom))

	loaded, ok := creators.Get("app/loaded")
	require.True(t, ok)
	assert.Equal(t, "APP/LOADED", loaded.Type())
}

func TestCreateActions_ExplicitIdentity(t *testing.T) {
	t.Parallel()

	creators, err := actionkit.CreateActions(actionkit.NewMap(
		actionkit.E("FAIL", actionkit.Identity),
		actionkit.E("RETRY", actionkit.Pair{Payload: actionkit.Identity, Meta: func(...any) any { return "again" }}),
	))
	require.NoError(t, err)

	boom := errors.New("boom")
	assert.Equal(t, actionkit.Action{Type: "FAIL", Payload: boom, Error: true}, creators.MustLookup("fail").Create(boom))

	retry := creators.MustLookup("retry").Create(boom)
	assert.True(t, retry.Error)
	assert.Same(t, boom, retry.Payload)
	assert.Equal(t, "again", retry.Meta)
}

func TestCreateActions_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	fn := func(v any) any { return v }

	tests := []struct {
		name     string
		first    any
		rest     []any
		wantType string
	}{
		{name: "number", first: 123},
		{name: "nil", first: nil},
		{name: "nil map", first: (*actionkit.Map)(nil)},
		{name: "slice", first: []string{"A"}},
		{name: "non-string identity type", first: "A", rest: []any{"B", 3}},
		{name: "non-string identity type after map", first: actionkit.NewMap(actionkit.E("A", fn)), rest: []any{true}},
		{name: "empty nested map", first: actionkit.NewMap(actionkit.E("APP", actionkit.NewMap())), wantType: "APP"},
		{name: "empty nested plain map", first: map[string]any{"APP": map[string]any{}}, wantType: "APP"},
		{name: "string value", first: actionkit.NewMap(actionkit.E("OK", fn), actionkit.E("BAD", "nope")), wantType: "BAD"},
		{name: "pair with non-function meta", first: actionkit.NewMap(actionkit.E("NOTIFY", []any{fn, 1})), wantType: "NOTIFY"},
		{name: "pair without meta", first: actionkit.NewMap(actionkit.E("NOTIFY", []any{fn})), wantType: "NOTIFY"},
		{name: "deep invalid leaf names top-level type", first: actionkit.NewMap(
			actionkit.E("APP", actionkit.NewMap(actionkit.E("USER", actionkit.NewMap(actionkit.E("LOGIN", 1))))),
		), wantType: "APP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			creators, err := actionkit.CreateActions(tt.first, tt.rest...)
			require.Error(t, err)
			assert.Nil(t, creators)
			assert.ErrorIs(t, err, actionkit.ErrConfiguration)

			var cfgErr *actionkit.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantType, cfgErr.Type)
			if tt.wantType != "" {
				assert.Contains(t, err.Error(), tt.wantType)
			}
		})
	}
}

func TestMustCreateActions(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		creators := actionkit.MustCreateActions("PING")
		assert.Equal(t, "PING", creators.MustLookup("ping").Type())
	})
	assert.Panics(t, func() {
		actionkit.MustCreateActions(123)
	})
}

func TestBuilder_Options(t *testing.T) {
	t.Parallel()

	t.Run("custom namespace separator", func(t *testing.T) {
		t.Parallel()
		b := actionkit.NewBuilder(actionkit.WithNamespace("--"))
		assert.Equal(t, "--", b.Namespace())

		creators, err := b.Build(actionkit.NewMap(
			actionkit.E("APP", actionkit.NewMap(actionkit.E("LOADED", func(v any) any { return v }))),
		), "APP--READY")
		require.NoError(t, err)

		assert.Equal(t, "APP--LOADED", creators.MustLookup("app", "loaded").Type())
		assert.Equal(t, "APP--READY", creators.MustLookup("app", "ready").Type())
	})

	t.Run("empty namespace is ignored", func(t *testing.T) {
		t.Parallel()
		b := actionkit.NewBuilder(actionkit.WithNamespace(""))
		assert.Equal(t, actionkit.DefaultNamespace, b.Namespace())
	})

	t.Run("custom key case", func(t *testing.T) {
		t.Parallel()
		b := actionkit.NewBuilder(actionkit.WithKeyCase(strings.ToLower))
		creators, err := b.Build(actionkit.NewMap(
			actionkit.E("APP", actionkit.NewMap(actionkit.E("DATA_LOADED", func(v any) any { return v }))),
		))
		require.NoError(t, err)
		assert.Equal(t, "APP/DATA_LOADED", creators.MustLookup("app", "data_loaded").Type())
		assert.Equal(t, "app/data_loaded", b.Key("APP/DATA_LOADED"))
	})

	t.Run("logger receives debug records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
		b := actionkit.NewBuilder(actionkit.WithLogger(log), actionkit.WithLogger(nil))

		_, err := b.Build("INCREMENT", "DECREMENT")
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, `"action_type":"INCREMENT"`)
		assert.Contains(t, out, `"creator_key":"decrement"`)
		assert.Contains(t, out, `"creator_count":2`)
	})
}

func TestBuilder_ConcurrentUse(t *testing.T) {
	t.Parallel()

	b := actionkit.NewBuilder()
	actions := actionkit.NewMap(
		actionkit.E("APP", actionkit.NewMap(actionkit.E("LOADED", func(v any) any { return v }))),
	)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			creators, err := b.Build(actions, "RESET")
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, i, creators.MustLookup("app", "loaded").Create(i).Payload)
		}()
	}
	wg.Wait()
}
