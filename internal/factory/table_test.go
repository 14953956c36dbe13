package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key string

type handler struct {
	k    key
	name string
}

func keyOf(h handler) key { return h.k }

func TestTable_Get(t *testing.T) {
	table := NewTable("handler", []handler{{"A", "alpha"}, {"B", "beta"}}, keyOf)

	h, err := table.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "alpha", h.name)

	h, err = table.Get("B")
	require.NoError(t, err)
	assert.Equal(t, "beta", h.name)
	assert.Equal(t, 2, table.Len())
}

func TestTable_MissingKey(t *testing.T) {
	table := NewTable("handler", []handler{{"A", "alpha"}, {"B", "beta"}}, keyOf)

	h, err := table.Get("C")
	require.Error(t, err)
	assert.Equal(t, handler{}, h)
	assert.True(t, errors.Is(err, ErrMissingInfrastructure))

	var missing *MissingImplementationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "handler", missing.Table)
	assert.Equal(t, key("C"), missing.Key)
}

func TestTable_DuplicateKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTable("handler", []handler{{"A", "alpha"}, {"A", "again"}}, keyOf)
	})
}

func TestTable_InterfaceValues(t *testing.T) {
	type named interface{ Name() string }
	table := NewTable[key, named]("named", nil, func(n named) key { return key(n.Name()) })

	h, err := table.Get("anything")
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrMissingInfrastructure)
}
