package tuitest

import "testing"

func TestParseFramesSplitsOnScreenClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mSwap\x1b[0m   \r\n0.001 ETH\r\n\r\n\x1b[2J\x1b[HLimit\r\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %#v", len(frames), frames)
	}
	if frames[0].Plain != "Swap\n0.001 ETH" {
		t.Fatalf("first frame = %q", frames[0].Plain)
	}
	if frames[1].Index != 1 || frames[1].Plain != "Limit" {
		t.Fatalf("second frame = %+v", frames[1])
	}
}

func TestParseFramesWithoutClear(t *testing.T) {
	frames := parseFrames([]byte("hello\x1b[31m red\x1b[0m\n"))
	if len(frames) != 1 || frames[0].Plain != "hello red" {
		t.Fatalf("frames = %#v", frames)
	}
}

func TestStripRemovesOSC(t *testing.T) {
	if got := Strip("\x1b]11;rgb:0000/0000/0000\x07ok\x1b[?25l"); got != "ok" {
		t.Fatalf("Strip = %q", got)
	}
}

func TestLastFrameContaining(t *testing.T) {
	rec := &Recording{Frames: []Frame{
		{Index: 0, Plain: "Swap 0.001 ETH"},
		{Index: 1, Plain: "You're swapping 2 ETH"},
		{Index: 2, Plain: "goodbye"},
	}}
	frame, ok := rec.LastFrameContaining("You're swapping", "ETH")
	if !ok || frame.Index != 1 {
		t.Fatalf("LastFrameContaining = %+v, %v", frame, ok)
	}
	if _, ok := rec.LastFrameContaining("missing"); ok {
		t.Fatalf("unexpected match")
	}
	if last, ok := rec.FinalFrame(); !ok || last.Index != 2 {
		t.Fatalf("FinalFrame = %+v, %v", last, ok)
	}
}

func TestTypeSplitsRunes(t *testing.T) {
	steps := Type("2.5", 0)
	if len(steps) != 3 || string(steps[1].Input) != "." {
		t.Fatalf("Type steps = %#v", steps)
	}
	if got := Repeat(KeyBackspace, 4, 0); len(got) != 4 {
		t.Fatalf("Repeat len = %d", len(got))
	}
}
