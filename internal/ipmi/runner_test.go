package ipmi

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "ipmitool sensor",
			want:  []string{"ipmitool", "sensor"},
		},
		{
			name:  "remote invocation",
			input: "ipmitool -I lanplus -H 10.0.0.2 -U admin -P secret sensor",
			want:  []string{"ipmitool", "-I", "lanplus", "-H", "10.0.0.2", "-U", "admin", "-P", "secret", "sensor"},
		},
		{
			name:  "single-quoted argument with space",
			input: "ipmitool -P 'pass word' sensor",
			want:  []string{"ipmitool", "-P", "pass word", "sensor"},
		},
		{
			name:  "double-quoted argument",
			input: `ipmitool -P "pass word" sensor`,
			want:  []string{"ipmitool", "-P", "pass word", "sensor"},
		},
		{
			name:  "collapsed whitespace",
			input: "  ipmitool   sensor  ",
			want:  []string{"ipmitool", "sensor"},
		},
		{
			name:  "empty quoted argument",
			input: `ipmitool -P "" sensor`,
			want:  []string{"ipmitool", "-P", "", "sensor"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:    "unbalanced quote",
			input:   "ipmitool -P 'secret sensor",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitCommand(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("splitCommand(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCommand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewRunner_EmptyCommand(t *testing.T) {
	_, err := NewRunner("   ", time.Second)
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("NewRunner() error = %v, want ErrEmptyCommand", err)
	}
}

func TestRunner_Run(t *testing.T) {
	runner, err := NewRunner("echo CPU Temp | 45 degrees C | ok |", 5*time.Second)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	out, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out, "CPU Temp | 45 degrees C | ok |") {
		t.Errorf("Run() output = %q, want echoed sensor line", out)
	}
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	runner, err := NewRunner("false", 5*time.Second)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	_, err = runner.Run(context.Background())
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("Run() error = %v, want ErrCommandFailed", err)
	}
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	runner, err := NewRunner("definitely-not-a-real-binary-xyz", time.Second)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	_, err = runner.Run(context.Background())
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("Run() error = %v, want ErrCommandFailed", err)
	}
}

func TestRunner_Run_Timeout(t *testing.T) {
	runner, err := NewRunner("sleep 5", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	start := time.Now()
	_, err = runner.Run(context.Background())
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Run() error = %v, want ErrCommandFailed", err)
	}

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Run() took %v, timeout did not bound the invocation", elapsed)
	}
}
