package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reqctx "github.com/baechuer/grandveggie/internal/pkg/context"
)

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"admin@grandveggie.com": "ad***@grandveggie.com",
		"a@example.com":         "a***@example.com",
		"a@b":                   "***",
		"noatsign":              "no***",
	}
	for in, want := range cases {
		assert.Equal(t, want, maskEmail(in), in)
	}
}

func TestLogger_LoginFailed_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New(zerolog.New(&buf))

	ctx := reqctx.WithRequestID(context.Background(), "rid-9")
	ctx = reqctx.WithClientIP(ctx, "10.1.2.3")
	l.LoginFailed(ctx, "admin@grandveggie.com", "bad_password")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, true, got["audit"])
	assert.Equal(t, "warn", got["level"])
	assert.Equal(t, "login_failed", got["action"])
	assert.Equal(t, "ad***@grandveggie.com", got["email"])
	assert.Equal(t, "bad_password", got["reason"])
	assert.Equal(t, "rid-9", got["request_id"])
	assert.Equal(t, "10.1.2.3", got["ip"])
}

func TestLogger_AllActions(t *testing.T) {
	var buf bytes.Buffer
	l := New(zerolog.New(&buf))
	ctx := context.Background()

	l.LoginSuccess(ctx, "1", "admin@grandveggie.com")
	l.Registered(ctx, "2", "jane@x.com")
	l.RegisterFailed(ctx, "jane@x.com", "email_already_registered")
	l.Logout(ctx, "1")
	l.ProfileUpdated(ctx, "1")

	dec := json.NewDecoder(&buf)
	var actions []string
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		actions = append(actions, m["action"].(string))
	}
	assert.Equal(t, []string{"login_success", "registered", "register_failed", "logout", "profile_updated"}, actions)
}
