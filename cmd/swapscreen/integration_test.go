package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/csheth/swapscreen/internal/tuitest"
)

func TestSwapScreenTypingAndReview(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the binary through a pty")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	pause := 50 * time.Millisecond
	steps := []tuitest.Step{
		{Delay: time.Second},
		tuitest.Press([]byte("i"), pause),
	}
	steps = append(steps, tuitest.Repeat(tuitest.KeyBackspace, len("0.001"), pause)...)
	steps = append(steps, tuitest.Type("2", pause)...)
	steps = append(steps,
		tuitest.Press(tuitest.KeyEnter, pause),
		tuitest.Press([]byte("r"), pause),
		tuitest.Press([]byte("d"), pause),
		tuitest.Press(nil, 500*time.Millisecond),
		tuitest.Press(tuitest.KeyCtrlC, 0),
	)

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command:        []string{binary, "--no-alt-screen"},
		Dir:            cmdDir,
		Env:            []string{"HOME=" + t.TempDir()},
		Width:          100,
		Height:         40,
		Steps:          steps,
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	plain := rec.Plain()
	for _, want := range []string{"You're swapping", "5000.000000 USDC", "Network cost", "$0.52"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("screen never showed %q; final frame:\n%s", want, finalPlain(rec))
		}
	}
}

func TestSwapScreenLimitLayout(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the binary through a pty")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	pause := 50 * time.Millisecond
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen"},
		Dir:     cmdDir,
		Env:     []string{"HOME=" + t.TempDir()},
		Steps: []tuitest.Step{
			{Delay: time.Second},
			tuitest.Press([]byte("l"), pause),
			tuitest.Press([]byte("1"), pause),
			tuitest.Press([]byte("]"), pause),
			tuitest.Press(nil, 500*time.Millisecond),
			tuitest.Press([]byte("q"), 0),
		},
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	plain := rec.Plain()
	for _, want := range []string{"ETH is worth", "4516.07", "1 month", "Confirm"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("screen never showed %q; final frame:\n%s", want, finalPlain(rec))
		}
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "swapscreen-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}

func finalPlain(rec *tuitest.Recording) string {
	frame, ok := rec.FinalFrame()
	if !ok {
		return "<no frames>"
	}
	return frame.Plain
}
