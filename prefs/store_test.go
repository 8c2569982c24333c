package prefs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/optional"
	"github.com/gvsucis/f25-spherical-easel/prefs"
)

// fakeBackend is a scripted Backend that records its calls.
type fakeBackend struct {
	results   []*prefs.Record // consumed by successive loads, last one sticks
	loadErr   error
	saveErr   error
	loadCalls int
	saveCalls int
	savedUID  string
	savedRec  prefs.Record
	onLoad    func()
}

func (b *fakeBackend) LoadPreferences(ctx context.Context, uid string) (*prefs.Record, error) {
	b.loadCalls++
	if b.onLoad != nil {
		b.onLoad()
	}
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	var rec *prefs.Record
	if 0 < len(b.results) {
		rec = b.results[0]
		if 1 < len(b.results) {
			b.results = b.results[1:]
		}
	}
	return rec, nil
}

func (b *fakeBackend) SavePreferences(ctx context.Context, uid string, rec prefs.Record) error {
	b.saveCalls++
	if b.saveErr != nil {
		return b.saveErr
	}
	b.savedUID = uid
	b.savedRec = rec
	return nil
}

func record(fs easel.FillStyle) *prefs.Record {
	return &prefs.Record{DefaultFill: optional.New(fs)}
}

func TestStoreLoad(t *testing.T) {
	ctx := context.Background()
	t.Run("restores the stored fill and the canvas default", func(t *testing.T) {
		backend := &fakeBackend{results: []*prefs.Record{record(easel.PlainFill)}}
		defaults := easel.NewStyleDefaults()
		st := prefs.New(prefs.NewSession("test-user-123"), backend, defaults)

		require.NoError(t, st.Load(ctx, ""))
		got, err := st.DefaultFill().Value()
		require.NoError(t, err)
		assert.Equal(t, easel.PlainFill, got)
		assert.Equal(t, easel.PlainFill, defaults.DefaultFill())
		assert.False(t, st.Loading())
	})
	t.Run("no stored record clears the local value and keeps the canvas default", func(t *testing.T) {
		backend := &fakeBackend{results: []*prefs.Record{nil}}
		defaults := easel.NewStyleDefaults()
		before := defaults.DefaultFill()
		st := prefs.New(prefs.NewSession("test-user-123"), backend, defaults)
		st.SetDefaultFill(easel.PlainFill)

		require.NoError(t, st.Load(ctx, ""))
		assert.True(t, st.DefaultFill().IsEmpty())
		assert.Equal(t, before, defaults.DefaultFill())
	})
	t.Run("record without a fill behaves like no record", func(t *testing.T) {
		backend := &fakeBackend{results: []*prefs.Record{{}}}
		defaults := easel.NewStyleDefaults()
		before := defaults.DefaultFill()
		st := prefs.New(prefs.NewSession("test-user-123"), backend, defaults)

		require.NoError(t, st.Load(ctx, ""))
		assert.True(t, st.DefaultFill().IsEmpty())
		assert.Equal(t, before, defaults.DefaultFill())
	})
	t.Run("anonymous without uid is a silent no-op", func(t *testing.T) {
		backend := &fakeBackend{results: []*prefs.Record{record(easel.PlainFill)}}
		st := prefs.New(prefs.Anonymous(), backend, easel.NewStyleDefaults())
		st.SetDefaultFill(easel.NoFill)

		require.NoError(t, st.Load(ctx, ""))
		assert.Zero(t, backend.loadCalls)
		got, err := st.DefaultFill().Value()
		require.NoError(t, err)
		assert.Equal(t, easel.NoFill, got)
		assert.False(t, st.Loading())
	})
	t.Run("explicit uid bypasses the identity provider", func(t *testing.T) {
		backend := &fakeBackend{results: []*prefs.Record{record(easel.ShadeFill)}}
		st := prefs.New(prefs.Anonymous(), backend, easel.NewStyleDefaults())

		require.NoError(t, st.Load(ctx, "someone-else"))
		assert.Equal(t, 1, backend.loadCalls)
		got, err := st.DefaultFill().Value()
		require.NoError(t, err)
		assert.Equal(t, easel.ShadeFill, got)
	})
	t.Run("loading is true exactly while the backend call is in flight", func(t *testing.T) {
		backend := &fakeBackend{results: []*prefs.Record{record(easel.PlainFill)}}
		st := prefs.New(prefs.NewSession("test-user-123"), backend, easel.NewStyleDefaults())
		var during bool
		backend.onLoad = func() { during = st.Loading() }

		assert.False(t, st.Loading())
		require.NoError(t, st.Load(ctx, ""))
		assert.True(t, during)
		assert.False(t, st.Loading())
	})
	t.Run("backend error keeps the prior value, clears loading, and propagates", func(t *testing.T) {
		boom := errors.New("boom")
		backend := &fakeBackend{loadErr: boom}
		st := prefs.New(prefs.NewSession("test-user-123"), backend, easel.NewStyleDefaults())
		st.SetDefaultFill(easel.ShadeFill)

		err := st.Load(ctx, "")
		assert.ErrorIs(t, err, boom)
		assert.False(t, st.Loading())
		got, verr := st.DefaultFill().Value()
		require.NoError(t, verr)
		assert.Equal(t, easel.ShadeFill, got)
	})
	t.Run("sequential loads overwrite, last one wins", func(t *testing.T) {
		backend := &fakeBackend{results: []*prefs.Record{
			record(easel.NoFill),
			record(easel.PlainFill),
			record(easel.ShadeFill),
		}}
		st := prefs.New(prefs.NewSession("test-user-123"), backend, easel.NewStyleDefaults())

		require.NoError(t, st.Load(ctx, ""))
		require.NoError(t, st.Load(ctx, ""))
		require.NoError(t, st.Load(ctx, ""))
		got, err := st.DefaultFill().Value()
		require.NoError(t, err)
		assert.Equal(t, easel.ShadeFill, got)
	})
	t.Run("emits the restored fill on the changed signal", func(t *testing.T) {
		backend := &fakeBackend{results: []*prefs.Record{record(easel.PlainFill)}}
		st := prefs.New(prefs.NewSession("test-user-123"), backend, easel.NewStyleDefaults())
		var emitted []easel.FillStyle
		st.Changed.AddListener(func(_ context.Context, fs easel.FillStyle) {
			emitted = append(emitted, fs)
		})

		require.NoError(t, st.Load(ctx, ""))
		assert.Equal(t, []easel.FillStyle{easel.PlainFill}, emitted)
	})
}

func TestStoreSave(t *testing.T) {
	ctx := context.Background()
	t.Run("saves the current record for the signed-in user", func(t *testing.T) {
		backend := &fakeBackend{}
		st := prefs.New(prefs.NewSession("test-user-123"), backend, easel.NewStyleDefaults())
		st.SetDefaultFill(easel.PlainFill)

		require.NoError(t, st.Save(ctx))
		assert.Equal(t, 1, backend.saveCalls)
		assert.Equal(t, "test-user-123", backend.savedUID)
		got, err := backend.savedRec.DefaultFill.Value()
		require.NoError(t, err)
		assert.Equal(t, easel.PlainFill, got)
	})
	t.Run("saves an empty fill as-is", func(t *testing.T) {
		backend := &fakeBackend{}
		st := prefs.New(prefs.NewSession("test-user-123"), backend, easel.NewStyleDefaults())

		require.NoError(t, st.Save(ctx))
		assert.True(t, backend.savedRec.DefaultFill.IsEmpty())
	})
	t.Run("unauthenticated save fails without touching the backend", func(t *testing.T) {
		backend := &fakeBackend{}
		st := prefs.New(prefs.Anonymous(), backend, easel.NewStyleDefaults())

		err := st.Save(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, prefs.ErrNotAuthenticated)
		assert.Equal(t, "Not authenticated", err.Error())
		assert.Zero(t, backend.saveCalls)
	})
	t.Run("backend error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		backend := &fakeBackend{saveErr: boom}
		st := prefs.New(prefs.NewSession("test-user-123"), backend, easel.NewStyleDefaults())

		assert.ErrorIs(t, st.Save(ctx), boom)
	})
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	s := prefs.NewSession("")
	_, ok := s.CurrentUserID(ctx)
	assert.False(t, ok)

	s.SetUserID("u1")
	uid, ok := s.CurrentUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", uid)

	s.SignOut()
	_, ok = s.CurrentUserID(ctx)
	assert.False(t, ok)
}
