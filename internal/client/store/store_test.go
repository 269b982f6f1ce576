package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Haseebfayyaz/authgate/internal/client/models"
	"github.com/stretchr/testify/require"
)

type fakeCreds struct {
	token      string
	getErr     error
	clearCalls int
}

func (f *fakeCreds) Get(ctx context.Context) (string, error) { return f.token, f.getErr }
func (f *fakeCreds) Set(ctx context.Context, token string) error {
	f.token = token
	return nil
}
func (f *fakeCreds) Clear(ctx context.Context) error {
	f.clearCalls++
	f.token = ""
	return nil
}

func TestNew_SeedsFromTokenPresence(t *testing.T) {
	s, err := New(context.Background(), &fakeCreds{token: "tok123"})
	require.NoError(t, err)

	st := s.Snapshot()
	require.True(t, st.IsAuthenticated, "token present seeds the flag")
	require.Nil(t, st.User, "user is never seeded")
	require.False(t, st.Loading)
	require.Empty(t, st.Error)
}

func TestNew_NoToken(t *testing.T) {
	s, err := New(context.Background(), &fakeCreds{})
	require.NoError(t, err)
	require.False(t, s.Snapshot().IsAuthenticated)
}

func TestNew_StorageFailurePropagates(t *testing.T) {
	_, err := New(context.Background(), &fakeCreds{getErr: errors.New("quota")})
	require.Error(t, err)
}

func TestSetUser_Invariant(t *testing.T) {
	s, err := New(context.Background(), &fakeCreds{})
	require.NoError(t, err)

	s.SetError("old error")
	s.SetLoading(true)
	s.SetUser(&models.User{ID: "1", Email: "a@b.com", Name: "A", Token: "tok123"})

	st := s.Snapshot()
	require.NotNil(t, st.User)
	require.Equal(t, st.IsAuthenticated, st.User != nil)
	require.False(t, st.Loading)
	require.Empty(t, st.Error)
}

func TestClearUser_InvariantAndTokenSideEffect(t *testing.T) {
	creds := &fakeCreds{token: "tok123"}
	s, err := New(context.Background(), creds)
	require.NoError(t, err)

	s.SetUser(&models.User{ID: "1", Email: "a@b.com", Name: "A"})
	s.ClearUser()

	st := s.Snapshot()
	require.Nil(t, st.User)
	require.Equal(t, st.IsAuthenticated, st.User != nil)
	require.False(t, st.Loading)
	require.Empty(t, st.Error)
	require.Equal(t, "", creds.token, "persisted token must be absent after ClearUser")
}

func TestClearUser_AlwaysClearsToken(t *testing.T) {
	creds := &fakeCreds{}
	s, err := New(context.Background(), creds)
	require.NoError(t, err)

	s.ClearUser()
	require.Equal(t, 1, creds.clearCalls, "clears regardless of prior value")
}

func TestSetError_LeavesUserUntouched(t *testing.T) {
	s, err := New(context.Background(), &fakeCreds{})
	require.NoError(t, err)

	s.SetUser(&models.User{ID: "1", Email: "a@b.com", Name: "A"})
	s.SetLoading(true)
	s.SetError("Login failed")

	st := s.Snapshot()
	require.Equal(t, "Login failed", st.Error)
	require.False(t, st.Loading)
	require.NotNil(t, st.User)
	require.True(t, st.IsAuthenticated)
}

func TestSetLoading_OnlyTouchesLoading(t *testing.T) {
	s, err := New(context.Background(), &fakeCreds{})
	require.NoError(t, err)

	s.SetError("boom")
	s.SetLoading(true)

	st := s.Snapshot()
	require.True(t, st.Loading)
	require.Equal(t, "boom", st.Error)
}

func TestSubscribe_NotifiesAndUnsubscribes(t *testing.T) {
	s, err := New(context.Background(), &fakeCreds{})
	require.NoError(t, err)

	var got []State
	unsub := s.Subscribe(func(st State) { got = append(got, st) })

	s.SetLoading(true)
	require.Len(t, got, 1)
	require.True(t, got[0].Loading)

	unsub()
	s.SetLoading(false)
	require.Len(t, got, 1, "no notifications after unsubscribe")
}

func TestSnapshot_DetachedUser(t *testing.T) {
	s, err := New(context.Background(), &fakeCreds{})
	require.NoError(t, err)

	s.SetUser(&models.User{ID: "1", Email: "a@b.com", Name: "A"})

	st := s.Snapshot()
	st.User.Name = "mutated"

	require.Equal(t, "A", s.Snapshot().User.Name)
}

func TestSubscriberMayDispatch(t *testing.T) {
	s, err := New(context.Background(), &fakeCreds{})
	require.NoError(t, err)

	done := false
	s.Subscribe(func(st State) {
		if !done {
			done = true
			s.SetError("from subscriber")
		}
	})

	require.NotPanics(t, func() { s.SetLoading(true) })
	require.Equal(t, "from subscriber", s.Snapshot().Error)
}
