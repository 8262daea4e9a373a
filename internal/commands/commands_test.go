package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd grid -on=false", []string{"grid", "-on=false"}, true},
		{"cmd   offset  -x 1 -y 2 ", []string{"offset", "-x", "1", "-y", "2"}, true},
		{"cmd", nil, true},
		{"cmd ", []string{}, true},
		{"hello there", nil, false},
		{"CMD grid", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			args, ok := Parse(tc.line)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.args, args)
		})
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("grid")
	on := fs.Bool("on", true, "show grid")
	var ran bool
	r.Register("grid", "toggle the ground grid", fs, func() error {
		ran = true
		return nil
	})

	require.NoError(t, r.Execute([]string{"grid", "-on=false"}))
	assert.True(t, ran)
	assert.False(t, *on)
}

func TestExecute_Errors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "always fails", NewFlagSet("fail"), func() error { return boom })
	r.Register("noop", "does nothing", NewFlagSet("noop"), func() error { return nil })

	assert.ErrorIs(t, r.Execute(nil), ErrMissingSubcommand)
	assert.EqualError(t, r.Execute([]string{"nope"}), "unknown command: nope")
	assert.ErrorIs(t, r.Execute([]string{"fail"}), boom)
	assert.Error(t, r.Execute([]string{"noop", "-bogus"}))
}

func TestHelp(t *testing.T) {
	r := NewRegistry()
	r.Register("probes", "toggle probe arrows", NewFlagSet("probes"), func() error { return nil })
	r.Register("fps", "toggle the FPS readout", NewFlagSet("fps"), func() error { return nil })

	assert.Equal(t, []string{"fps", "probes"}, r.Names())
	assert.Equal(t, []string{"fps - toggle the FPS readout", "probes - toggle probe arrows"}, r.Help())
}
