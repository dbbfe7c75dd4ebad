package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/nfrund/octofit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_Key(t *testing.T) {
	t.Run("prefers _id", func(t *testing.T) {
		var u domain.User
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"abc","id":7}`), &u))
		assert.Equal(t, "abc", u.Key())
	})

	t.Run("falls back to numeric id", func(t *testing.T) {
		var u domain.User
		require.NoError(t, json.Unmarshal([]byte(`{"id":7,"username":"neo"}`), &u))
		assert.Equal(t, "7", u.Key())
		assert.Equal(t, "neo", u.Username)
	})

	t.Run("positional fallback without any id", func(t *testing.T) {
		var w domain.Workout
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Core"}`), &w))
		assert.Equal(t, "#3", w.KeyOr(3))
	})

	t.Run("rejects object ids", func(t *testing.T) {
		var w domain.Workout
		err := json.Unmarshal([]byte(`{"_id":{"$oid":"x"}}`), &w)
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}

func TestUserRef(t *testing.T) {
	t.Run("plain identifier", func(t *testing.T) {
		var a domain.Activity
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"1","activity_type":"Running","duration":"00:45:00","user":"u1"}`), &a))
		assert.False(t, a.User.IsEmbedded())
		assert.Equal(t, "u1", a.User.DisplayName())
	})

	t.Run("embedded object", func(t *testing.T) {
		var e domain.LeaderboardEntry
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"a","user":{"_id":"u9","username":"trinity"},"score":88}`), &e))
		require.True(t, e.User.IsEmbedded())
		assert.Equal(t, "trinity", e.User.DisplayName())
		assert.Equal(t, 88.0, e.Score)
	})

	t.Run("embedded object without username", func(t *testing.T) {
		var e domain.LeaderboardEntry
		require.NoError(t, json.Unmarshal([]byte(`{"user":{"id":4}}`), &e))
		assert.Equal(t, "4", e.User.DisplayName())
	})

	t.Run("null and missing", func(t *testing.T) {
		var a, b domain.Activity
		require.NoError(t, json.Unmarshal([]byte(`{"user":null}`), &a))
		require.NoError(t, json.Unmarshal([]byte(`{}`), &b))
		assert.True(t, a.User.IsZero())
		assert.True(t, b.User.IsZero())
	})

	t.Run("marshals in the received shape", func(t *testing.T) {
		out, err := json.Marshal(domain.UserRef{ID: "u1"})
		require.NoError(t, err)
		assert.JSONEq(t, `"u1"`, string(out))
	})
}

func TestDurationMinutes(t *testing.T) {
	cases := map[string]int{
		"00:45:00": 45,
		"01:30:59": 90,
		"":         0,
		"2":        120,
		"xx:10:00": 10,
		"00:aa:00": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, domain.DurationMinutes(in), "duration %q", in)
	}
}

func TestRankByScore(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{Identity: domain.Identity{MongoID: "a"}, Score: 50},
		{Identity: domain.Identity{MongoID: "b"}, Score: 90},
		{Identity: domain.Identity{MongoID: "c"}, Score: 50},
		{Identity: domain.Identity{MongoID: "d"}, Score: 70},
	}

	ranked := domain.RankByScore(entries)

	keys := make([]string, len(ranked))
	for i, e := range ranked {
		keys[i] = e.Key()
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, keys, "ties keep input order")
	assert.Equal(t, "a", entries[0].Key(), "input must not be reordered")

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestAverageScore(t *testing.T) {
	assert.Equal(t, 0, domain.AverageScore(nil))
	assert.Equal(t, 70, domain.AverageScore([]domain.LeaderboardEntry{{Score: 50}, {Score: 90}}))
	assert.Equal(t, 2, domain.AverageScore([]domain.LeaderboardEntry{{Score: 1}, {Score: 2}}), "1.5 rounds up")
	assert.Equal(t, 67, domain.AverageScore([]domain.LeaderboardEntry{{Score: 100}, {Score: 50}, {Score: 50}}))
}

func TestTeam_MemberCount(t *testing.T) {
	var withMembers, without domain.Team
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Blue","members":["u1",{"username":"x"}]}`), &withMembers))
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Red"}`), &without))
	assert.Equal(t, 2, withMembers.MemberCount())
	assert.Equal(t, 0, without.MemberCount())
}
