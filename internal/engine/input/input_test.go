package input

import "testing"

type frames [][]Event

func (f *frames) PollEvents(dst []Event) []Event {
	if len(*f) == 0 {
		return dst
	}
	next := (*f)[0]
	*f = (*f)[1:]
	return append(dst, next...)
}

func TestUpdateTracksHeldKeys(t *testing.T) {
	src := &frames{
		{{Type: EventKeyDown, Key: KeyUp}},
		{},
		{{Type: EventKeyUp, Key: KeyUp}},
	}
	in := New()

	if in.Update(src) {
		t.Fatal("unexpected quit")
	}
	if !in.IsKeyPressed(KeyUp) || !in.IsKeyDown(KeyUp) {
		t.Error("KeyUp should be pressed and held on the first frame")
	}

	in.Update(src)
	if in.IsKeyPressed(KeyUp) {
		t.Error("KeyUp press should only be reported once")
	}
	if !in.IsKeyDown(KeyUp) {
		t.Error("KeyUp should still be held")
	}

	in.Update(src)
	if in.IsKeyDown(KeyUp) {
		t.Error("KeyUp should be released")
	}
}

func TestUpdateQuit(t *testing.T) {
	src := &frames{
		{{Type: EventWindowResize, Width: 640, Height: 480}, {Type: EventQuit}},
	}
	in := New()

	if !in.Update(src) {
		t.Error("expected quit")
	}
	if len(in.Events()) != 2 {
		t.Errorf("expected 2 events, got %d", len(in.Events()))
	}
	if in.Events()[0].Width != 640 {
		t.Errorf("resize width = %d", in.Events()[0].Width)
	}
}

func TestEventsClearedBetweenFrames(t *testing.T) {
	src := &frames{
		{{Type: EventKeyDown, Key: KeyEscape}},
	}
	in := New()
	in.Update(src)
	in.Update(src)

	if len(in.Events()) != 0 {
		t.Errorf("expected no events on second frame, got %d", len(in.Events()))
	}
}
