package dataview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/domain"
)

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) Notify(_ context.Context, ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) all() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Event(nil), l.events...)
}

func static(records ...string) func(context.Context) ([]string, error) {
	return func(context.Context) ([]string, error) { return records, nil }
}

func waitDone(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("load did not settle")
	}
}

func TestView_MountLoadsOnce(t *testing.T) {
	events := &eventLog{}
	v := New(Resource[string]{Name: "things", Fetch: static("a", "b")}, WithNotifier(events), WithID("m1"))

	assert.Equal(t, Idle, v.State())
	v.Mount(context.Background())
	defer v.Unmount()
	waitDone(t, v.Done())

	snap := v.Snapshot()
	assert.Equal(t, Success, snap.State)
	assert.Equal(t, []string{"a", "b"}, snap.Records)
	assert.Equal(t, ClassTable, snap.Class())
	assert.Equal(t, "m1", snap.ID)
	assert.Equal(t, 1, v.Fetches())

	v.Mount(context.Background())
	assert.Equal(t, 1, v.Fetches(), "a second mount must not fetch again")

	require.Len(t, events.all(), 1)
	ev := events.all()[0]
	assert.Equal(t, "things", ev.Resource)
	assert.Equal(t, Success, ev.State)
	assert.Equal(t, 2, ev.Records)
	assert.False(t, ev.Discarded)
}

func TestView_LoadingImmediatelyAfterMount(t *testing.T) {
	v := New(Resource[string]{Name: "slow", Delay: time.Hour, Fetch: static("x")}, WithNotifier(&eventLog{}))
	v.Mount(context.Background())
	defer v.Unmount()

	snap := v.Snapshot()
	assert.Equal(t, Loading, snap.State)
	assert.Equal(t, ClassLoading, snap.Class())
	assert.Equal(t, 0, v.Fetches())
}

func TestView_DelayPrecedesFetch(t *testing.T) {
	var fetchedAt time.Time
	res := Resource[string]{
		Name:  "delayed",
		Delay: 40 * time.Millisecond,
		Fetch: func(context.Context) ([]string, error) {
			fetchedAt = time.Now()
			return []string{"x"}, nil
		},
	}
	v := New(res, WithNotifier(&eventLog{}))
	mountedAt := time.Now()
	v.Mount(context.Background())
	defer v.Unmount()
	waitDone(t, v.Done())

	assert.GreaterOrEqual(t, fetchedAt.Sub(mountedAt), 40*time.Millisecond)
}

func TestView_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
	}{
		{"network", fmt.Errorf("dial: %w", apiclient.ErrNetwork), KindNetwork},
		{"decode", &apiclient.FetchError{Resource: "x", Kind: apiclient.ErrDecode, Err: errors.New("bad json")}, KindDecode},
		{"other", errors.New("boom"), KindNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &eventLog{}
			res := Resource[string]{
				Name:  "broken",
				Fetch: func(context.Context) ([]string, error) { return nil, tt.err },
			}
			v := New(res, WithNotifier(events))
			v.Mount(context.Background())
			defer v.Unmount()
			waitDone(t, v.Done())

			snap := v.Snapshot()
			assert.Equal(t, Failed, snap.State)
			assert.Empty(t, snap.Records)
			assert.Equal(t, ClassNoData, snap.Class())

			got := events.all()
			require.Len(t, got, 1)
			assert.Equal(t, Failed, got[0].State)
			assert.Equal(t, tt.kind, got[0].Kind)
			assert.NotEmpty(t, got[0].Error)
		})
	}
}

func TestView_EmptySuccessIsNoData(t *testing.T) {
	v := New(Resource[string]{Name: "empty", Fetch: static()}, WithNotifier(&eventLog{}))
	v.Mount(context.Background())
	defer v.Unmount()
	waitDone(t, v.Done())

	snap := v.Snapshot()
	assert.Equal(t, Success, snap.State)
	assert.Equal(t, ClassNoData, snap.Class())
	_, ok := snap.Focus()
	assert.False(t, ok)
}

func TestView_UnmountDuringDelaySkipsFetch(t *testing.T) {
	events := &eventLog{}
	v := New(Resource[string]{Name: "gone", Delay: time.Hour, Fetch: static("x")}, WithNotifier(events))
	v.Mount(context.Background())
	done := v.Done()

	v.Unmount()
	waitDone(t, done)

	assert.Equal(t, 0, v.Fetches())
	assert.False(t, v.Mounted())
	assert.Equal(t, Loading, v.State())
	got := events.all()
	require.Len(t, got, 1)
	assert.True(t, got[0].Discarded)
}

func TestView_UnmountBeforeMountPreventsMount(t *testing.T) {
	var animated atomic.Int32
	v := New(Resource[string]{Name: "raced", Fetch: static("x")},
		WithNotifier(&eventLog{}),
		WithAnimator(time.Millisecond, AnimatorFunc(func(uint64) { animated.Add(1) })))

	v.Unmount()
	v.Mount(context.Background())

	assert.False(t, v.Mounted())
	assert.Equal(t, Idle, v.State())
	assert.Equal(t, 0, v.Fetches())
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, animated.Load(), "no animator may outlive the unmount")
}

func TestView_ResultAfterUnmountIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	res := Resource[string]{
		Name: "late",
		Fetch: func(context.Context) ([]string, error) {
			close(started)
			<-release
			return []string{"late"}, nil
		},
	}
	events := &eventLog{}
	v := New(res, WithNotifier(events))
	v.Mount(context.Background())
	done := v.Done()
	<-started

	v.Unmount()
	close(release)
	waitDone(t, done)

	snap := v.Snapshot()
	assert.Equal(t, Loading, snap.State)
	assert.Nil(t, snap.Records)
	got := events.all()
	require.Len(t, got, 1)
	assert.True(t, got[0].Discarded)
	assert.Equal(t, Success, got[0].State)
}

func TestView_UnmountCancelsFetchContext(t *testing.T) {
	started := make(chan struct{})
	res := Resource[string]{
		Name: "cancel",
		Fetch: func(ctx context.Context) ([]string, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	v := New(res, WithNotifier(&eventLog{}))
	v.Mount(context.Background())
	done := v.Done()
	<-started

	v.Unmount()
	waitDone(t, done)
	assert.Equal(t, Loading, v.State())
}

func TestView_ReloadSupersedesOlderLoad(t *testing.T) {
	var calls atomic.Int32
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	res := Resource[string]{
		Name: "reload",
		Fetch: func(context.Context) ([]string, error) {
			if calls.Add(1) == 1 {
				close(firstStarted)
				<-releaseFirst
				return []string{"old"}, nil
			}
			return []string{"new"}, nil
		},
	}
	events := &eventLog{}
	v := New(res, WithNotifier(events))
	v.Mount(context.Background())
	defer v.Unmount()
	firstDone := v.Done()
	<-firstStarted

	assert.Equal(t, Success, v.Load(context.Background()))
	close(releaseFirst)
	waitDone(t, firstDone)

	assert.Equal(t, []string{"new"}, v.Snapshot().Records)
	assert.Equal(t, 2, v.Fetches())

	discarded := 0
	for _, ev := range events.all() {
		if ev.Discarded {
			discarded++
		}
	}
	assert.Equal(t, 1, discarded)
}

func TestView_LoadWithoutMountIsNoop(t *testing.T) {
	v := New(Resource[string]{Name: "idle", Fetch: static("x")}, WithNotifier(&eventLog{}))
	assert.Equal(t, Idle, v.Load(context.Background()))
	assert.Equal(t, 0, v.Fetches())
	waitDone(t, v.Done())
}

func TestView_Derive(t *testing.T) {
	res := Resource[string]{
		Name:  "derived",
		Fetch: static("b", "a"),
		Derive: func(in []string) []string {
			out := make([]string, len(in))
			for i, s := range in {
				out[i] = strings.ToUpper(s)
			}
			return out
		},
	}
	v := New(res, WithNotifier(&eventLog{}))
	v.Mount(context.Background())
	defer v.Unmount()
	waitDone(t, v.Done())

	assert.Equal(t, []string{"B", "A"}, v.Snapshot().Records)
}

func TestView_Select(t *testing.T) {
	keyed := Resource[string]{
		Name:  "keyed",
		Fetch: static("a", "b", "c"),
		Key:   func(rec string, _ int) string { return rec },
	}
	v := New(keyed, WithNotifier(&eventLog{}))

	assert.ErrorIs(t, v.Select("a"), ErrNotReady)

	v.Mount(context.Background())
	defer v.Unmount()
	waitDone(t, v.Done())

	focus, ok := v.Snapshot().Focus()
	require.True(t, ok)
	assert.Equal(t, "a", focus, "first record is focused after load")

	require.NoError(t, v.Select("c"))
	focus, _ = v.Snapshot().Focus()
	assert.Equal(t, "c", focus)

	assert.ErrorIs(t, v.Select("zzz"), domain.ErrNotFound)
	focus, _ = v.Snapshot().Focus()
	assert.Equal(t, "c", focus, "a failed select keeps the focus")

	plain := New(Resource[string]{Name: "plain", Fetch: static("a")}, WithNotifier(&eventLog{}))
	assert.ErrorIs(t, plain.Select("a"), ErrNoSelection)
}

func TestView_SnapshotIsACopy(t *testing.T) {
	v := New(Resource[string]{Name: "copy", Fetch: static("a")}, WithNotifier(&eventLog{}))
	v.Mount(context.Background())
	defer v.Unmount()
	waitDone(t, v.Done())

	snap := v.Snapshot()
	snap.Records[0] = "mutated"
	assert.Equal(t, []string{"a"}, v.Snapshot().Records)
}

func TestView_AnimatorStopsOnUnmount(t *testing.T) {
	var frames atomic.Uint64
	v := New(
		Resource[string]{Name: "anim", Delay: time.Hour, Fetch: static()},
		WithNotifier(&eventLog{}),
		WithAnimator(5*time.Millisecond, AnimatorFunc(func(f uint64) { frames.Store(f) })),
	)
	v.Mount(context.Background())

	assert.Eventually(t, func() bool { return frames.Load() >= 3 }, time.Second, 5*time.Millisecond)
	v.Unmount()

	stopped := frames.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, frames.Load())
}

func TestView_ParentCancelStopsView(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	v := New(Resource[string]{Name: "parent", Delay: time.Hour, Fetch: static("x")}, WithNotifier(&eventLog{}))
	v.Mount(ctx)
	done := v.Done()
	cancel()
	waitDone(t, done)

	assert.Equal(t, Failed, v.State())
	assert.Equal(t, 0, v.Fetches())
	v.Unmount()
}

func TestClassOf(t *testing.T) {
	assert.Equal(t, ClassLoading, ClassOf(Idle, 0))
	assert.Equal(t, ClassLoading, ClassOf(Loading, 3))
	assert.Equal(t, ClassNoData, ClassOf(Failed, 0))
	assert.Equal(t, ClassNoData, ClassOf(Success, 0))
	assert.Equal(t, ClassTable, ClassOf(Success, 1))
}

func TestState_Text(t *testing.T) {
	b, err := Failed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "failed", string(b))

	var s State
	require.NoError(t, s.UnmarshalText([]byte("success")))
	assert.Equal(t, Success, s)
	assert.Error(t, s.UnmarshalText([]byte("bogus")))
	assert.True(t, Success.Settled())
	assert.False(t, Loading.Settled())
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := LogNotifier{Logger: logger}

	n.Notify(context.Background(), Event{Resource: "teams", State: Failed, Kind: KindDecode, Error: "bad"})
	n.Notify(context.Background(), Event{Resource: "teams", State: Success, Records: 2})
	n.Notify(context.Background(), Event{Resource: "teams", State: Success, Discarded: true})

	out := buf.String()
	assert.Contains(t, out, `level=ERROR msg="Error fetching teams"`)
	assert.Contains(t, out, "kind=decode")
	assert.Contains(t, out, `level=DEBUG msg="Loaded teams"`)
	assert.Contains(t, out, `msg="Discarded stale load result"`)
}
