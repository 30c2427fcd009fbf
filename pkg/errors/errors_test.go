package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/felt-ui/felt/pkg/logging"
)

func TestFeltErrorString(t *testing.T) {
	err := &FeltError{
		Op:   "render.Submit",
		Kind: KindSurface,
		Err:  stderrors.New("surface lost"),
	}
	want := "render.Submit [surface]: surface lost"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFeltErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("device lost")
	err := fmt.Errorf("frame 3: %w", New("render.Submit", KindDevice, sentinel))
	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}
	if got := KindOf(err); got != KindDevice {
		t.Errorf("KindOf = %v, want %v", got, KindDevice)
	}
	if got := KindOf(sentinel); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want unknown", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInit, "init"},
		{KindRender, "render"},
		{KindSurface, "surface"},
		{KindDevice, "device"},
		{KindMemory, "memory"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "ui.Paint"
	if got, want := err.Error(), "panic in ui.Paint: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *FeltError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(err *FeltError) { captured = err }})
	defer SetHandler(oldHandler)

	Report(&FeltError{Op: "test.op", Kind: KindInit, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecoverAsError(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	run := func() (err error) {
		defer RecoverAsError("test.run", &err)
		panic("layer stack corrupted")
	}
	err := run()
	if err == nil {
		t.Fatal("expected an error from the recovered panic")
	}
	if got := KindOf(err); got != KindPanic {
		t.Errorf("KindOf = %v, want panic", got)
	}
	var pe *PanicError
	if !stderrors.As(err, &pe) || pe.Value != "layer stack corrupted" {
		t.Errorf("wrapped panic = %v", pe)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer logging.SetLogger(nil)

	h := &LogHandler{Verbose: true}
	h.HandleError(&FeltError{Op: "render.Submit", Kind: KindMemory, Err: stderrors.New("oom"), StackTrace: "frame"})
	h.HandlePanic(&PanicError{Op: "ui.Paint", Value: "bad"})

	out := buf.String()
	for _, want := range []string{"op=render.Submit", "kind=memory", "error=oom", "stack=frame", "op=ui.Paint", "value=bad"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testHandler struct {
	onError func(*FeltError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *FeltError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
