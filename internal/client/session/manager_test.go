package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_GuestVsUser(t *testing.T) {
	g := Guest()
	assert.False(t, g.Authenticated())
	_, ok := g.UserID()
	assert.False(t, ok)
	assert.Equal(t, "guest", g.String())

	u := User(7)
	assert.True(t, u.Authenticated())
	id, ok := u.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "user 7", u.String())
}

func TestManager_SetNotifiesOnChangeOnly(t *testing.T) {
	m := NewManager()

	var seen []Identity
	m.Subscribe(func(_ context.Context, id Identity) {
		seen = append(seen, id)
	})

	ctx := context.Background()

	m.Set(ctx, Guest()) // no change: still guest
	assert.Empty(t, seen)

	m.Set(ctx, User(7))
	m.Set(ctx, User(7)) // same pair: must not re-fire
	m.Set(ctx, Guest())

	require.Len(t, seen, 2)
	assert.Equal(t, User(7), seen[0])
	assert.Equal(t, Guest(), seen[1])
	assert.Equal(t, Guest(), m.Current())
}

func TestManager_AnnounceFiresWithCurrent(t *testing.T) {
	m := NewManager()

	var seen []Identity
	m.Subscribe(func(_ context.Context, id Identity) {
		seen = append(seen, id)
	})

	m.Announce(context.Background())

	require.Len(t, seen, 1)
	assert.Equal(t, Guest(), seen[0])
}

func TestManager_ListenersInSubscriptionOrder(t *testing.T) {
	m := NewManager()

	var order []string
	m.Subscribe(func(context.Context, Identity) { order = append(order, "a") })
	m.Subscribe(func(context.Context, Identity) { order = append(order, "b") })

	m.Set(context.Background(), User(1))

	assert.Equal(t, []string{"a", "b"}, order)
}
