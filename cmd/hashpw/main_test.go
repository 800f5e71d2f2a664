package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun_HashThenVerify(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-cost", "4", "s3cret"}, nil, &out))

	digest := strings.TrimSpace(out.String())
	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 4, cost)

	out.Reset()
	require.NoError(t, run([]string{"-verify", digest, "s3cret"}, nil, &out))
	assert.Equal(t, "match\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"-verify", digest, "wrong"}, nil, &out))
	assert.Equal(t, "mismatch\n", out.String())
}

func TestRun_PasswordFromStdin(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-cost", "4", "-"}, strings.NewReader("from-stdin\n"), &out))

	digest := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte("from-stdin")))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no password", args: nil, want: "exactly one password"},
		{name: "cost too high", args: []string{"-cost", "99", "pw"}, want: "outside"},
		{name: "malformed digest", args: []string{"-verify", "nope", "pw"}, want: "compare"},
		{name: "unknown flag", args: []string{"-x", "pw"}, want: "parse flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, nil, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
