package wrapper

import (
	"testing"
)

var (
	testErrorMessage = "rows mismatch"
)

func TestWrapperContext(t *testing.T) {
	ctx := NewContext()
	if ctx == nil {
		t.Fatal("expected valid context")
	} else if ctx.IsError() {
		t.Fatal("expected neutral state")
	} else if ctx.Message() != "" {
		t.Fatal("expected empty message")
	} else if ctx.Error(testErrorMessage); !ctx.IsError() {
		t.Fatal("expected error state")
	} else if ctx.Message() != testErrorMessage {
		t.Fatalf("expected '%s', got '%s'", testErrorMessage, ctx.Message())
	} else if ctx.Reset(); ctx.IsError() {
		t.Fatal("expected neutral state again")
	} else if ctx.Message() != "" {
		t.Fatal("expected empty message again")
	}
}

func TestWrapperContextErrorf(t *testing.T) {
	ctx := NewContext()
	ctx.Errorf("expected channel %d to be an instance of Mat", 1)
	if !ctx.IsError() {
		t.Fatal("expected error state")
	} else if ctx.Message() != "expected channel 1 to be an instance of Mat" {
		t.Fatalf("unexpected message '%s'", ctx.Message())
	}
}

func TestWrapperContextConcurrentAccess(t *testing.T) {
	ctx := NewContext()
	done := make(chan bool)

	for i := 0; i < 8; i++ {
		go func() {
			ctx.Error(testErrorMessage)
			_ = ctx.IsError()
			_ = ctx.Message()
			done <- true
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}

	if !ctx.IsError() {
		t.Fatal("expected error state")
	}
}
