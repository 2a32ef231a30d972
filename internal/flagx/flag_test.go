package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-l", "debug"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "flag with equals",
			args:    []string{"--config=alt.json", "-l", "debug"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-n"},
			allowed: []string{"-n"},
			want:    []string{"-n"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-o", "json"},
			allowed: []string{"-c", "-o"},
			want:    []string{"-c", "-o", "json"},
		},
		{
			name:    "several allowed flags keep their order",
			args:    []string{"-n", "3", "-c", "conf.json", "--other", "x", "-o=json"},
			allowed: []string{"-c", "-n", "-o"},
			want:    []string{"-n", "3", "-c", "conf.json", "-o=json"},
		},
		{
			name:    "positional with equals is not a flag",
			args:    []string{"a=b"},
			allowed: []string{"a"},
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/path/short.json"}, want: "/path/short.json"},
		{name: "long", args: []string{"-config", "/path/long.json"}, want: "/path/long.json"},
		{name: "equals form", args: []string{"--config=/path/eq.json"}, want: "/path/eq.json"},
		{name: "other flags ignored", args: []string{"-l", "debug", "-n", "2"}, want: ""},
		{name: "last wins", args: []string{"-c", "/path/1.json", "-config", "/path/2.json"}, want: "/path/2.json"},
		{name: "none", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}
