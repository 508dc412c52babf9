package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationStore(t *testing.T) {
	s := NewNotificationStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first := s.Push(1, "found", "A", "a", 10)
	second := s.Push(1, "found", "B", "b", 11)
	s.Push(2, "found", "C", "c", 12)

	mine := s.ForUser(1)
	require.Len(t, mine, 2)
	assert.Equal(t, second.NotificationID, mine[0].NotificationID)
	assert.Equal(t, first.NotificationID, mine[1].NotificationID)
	assert.Equal(t, 2, UnreadCount(mine))

	t.Run("mark read", func(t *testing.T) {
		require.NoError(t, s.MarkRead(1, first.NotificationID))
		assert.Equal(t, 1, UnreadCount(s.ForUser(1)))
	})

	t.Run("cannot read another user's notification", func(t *testing.T) {
		assert.ErrorIs(t, s.MarkRead(2, second.NotificationID), ErrNotificationNotFound)
		assert.ErrorIs(t, s.MarkRead(1, "missing"), ErrNotificationNotFound)
	})

	t.Run("pending until sent", func(t *testing.T) {
		assert.Len(t, s.Pending(), 3)
		s.MarkSent(first.NotificationID)
		s.MarkSent("missing")
		assert.Len(t, s.Pending(), 2)
	})
}

func TestForUserSameInstant(t *testing.T) {
	s := NewNotificationStore()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	var pushed []string
	for i := 0; i < 20; i++ {
		pushed = append(pushed, s.Push(1, "comment", "t", "c", i).NotificationID)
	}

	for run := 0; run < 5; run++ {
		got := s.ForUser(1)
		require.Len(t, got, 20)
		for i, n := range got {
			assert.Equal(t, pushed[len(pushed)-1-i], n.NotificationID)
		}
	}
}
