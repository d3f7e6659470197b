package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "plan.yaml")
	p.OnLoadComplete(ctx, "plan.yaml", 100, 2, time.Second, nil)
	p.OnLayoutStart(ctx, 28, 40)
	p.OnLayoutComplete(ctx, 7, time.Second, nil)
	p.OnRenderStart(ctx, []string{"pdf"})
	p.OnRenderComplete(ctx, []string{"pdf"}, time.Second, nil)

	// Output hooks
	o := NoopOutputHooks{}
	o.OnArtifact(ctx, "pdf", 1024)
	o.OnOpen(ctx, "plan.pdf", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Output() should return NoopOutputHooks by default")
	}

	// Set custom hooks
	m := NewMetrics()
	SetPipelineHooks(m)
	if Pipeline() != PipelineHooks(m) {
		t.Error("SetPipelineHooks should set custom hooks")
	}
	SetOutputHooks(m)
	if Output() != OutputHooks(m) {
		t.Error("SetOutputHooks should set custom hooks")
	}

	// nil is ignored
	SetPipelineHooks(nil)
	if Pipeline() != PipelineHooks(m) {
		t.Error("SetPipelineHooks(nil) should keep existing hooks")
	}

	// Reset should restore defaults
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Reset() should restore NoopOutputHooks")
	}
}
