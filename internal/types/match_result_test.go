package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadEntityID(t *testing.T) {
	t.Run("accepts int64", func(t *testing.T) {
		id, ok := Payload{"entity_id": int64(42)}.EntityID("entity_id")
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("accepts int", func(t *testing.T) {
		id, ok := Payload{"entity_id": 42}.EntityID("entity_id")
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("accepts json-decoded float64", func(t *testing.T) {
		id, ok := Payload{"entity_id": float64(42)}.EntityID("entity_id")
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("accepts json.Number", func(t *testing.T) {
		id, ok := Payload{"entity_id": json.Number("42")}.EntityID("entity_id")
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("accepts numeric string", func(t *testing.T) {
		id, ok := Payload{"entity_id": "42"}.EntityID("entity_id")
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("rejects non-numeric string", func(t *testing.T) {
		_, ok := Payload{"entity_id": "forty-two"}.EntityID("entity_id")
		assert.False(t, ok)
	})

	t.Run("rejects missing key", func(t *testing.T) {
		_, ok := Payload{}.EntityID("entity_id")
		assert.False(t, ok)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		_, ok := Payload{"entity_id": []any{42}}.EntityID("entity_id")
		assert.False(t, ok)
	})
}

func TestPayloadStringValue(t *testing.T) {
	t.Run("passes strings through", func(t *testing.T) {
		got := Payload{"matchedPreferences": "Docker"}.StringValue("matchedPreferences")
		assert.Equal(t, "Docker", got)
	})

	t.Run("serializes lists to json", func(t *testing.T) {
		got := Payload{"matchedRequirements": []any{"Spring", "Java"}}.StringValue("matchedRequirements")
		assert.JSONEq(t, `["Spring","Java"]`, got)
	})

	t.Run("serializes nested maps to json", func(t *testing.T) {
		got := Payload{"meta": map[string]any{"kind": "activity"}}.StringValue("meta")
		assert.JSONEq(t, `{"kind":"activity"}`, got)
	})

	t.Run("missing key yields empty string", func(t *testing.T) {
		assert.Empty(t, Payload{}.StringValue("absent"))
	})

	t.Run("explicit null yields empty string", func(t *testing.T) {
		assert.Empty(t, Payload{"matchedRequirements": nil}.StringValue("matchedRequirements"))
	})
}
