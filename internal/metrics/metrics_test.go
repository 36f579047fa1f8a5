package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_RecordRequest(t *testing.T) {
	r := New(nil)

	r.RecordRequest("openai", "gpt-4o-mini", true)
	r.RecordRequest("openai", "gpt-4o-mini", true)
	r.RecordRequest("openai", "gpt-4o-mini", false)
	r.RecordRequest("anthropic", "claude-3-haiku-20240307", true)

	snap := r.Snapshot()
	assert.Equal(t, int64(2), snap.Requests[RequestKey{"openai", "gpt-4o-mini", true}])
	assert.Equal(t, int64(1), snap.Requests[RequestKey{"openai", "gpt-4o-mini", false}])
	assert.Equal(t, int64(1), snap.Requests[RequestKey{"anthropic", "claude-3-haiku-20240307", true}])
}

func TestRecorder_RecordGeneration(t *testing.T) {
	r := New(nil)

	r.RecordGeneration("sop", 2*time.Second)
	r.RecordGeneration("sop", time.Second)
	r.RecordGeneration("runbook", time.Second)

	snap := r.Snapshot()
	assert.Equal(t, int64(2), snap.Documents["sop"])
	assert.Equal(t, int64(1), snap.Documents["runbook"])
}

func TestRecorder_ObserveTokens(t *testing.T) {
	r := New(nil)

	r.ObserveTokens("openai", "gpt-4o-mini", 100)
	r.ObserveTokens("openai", "gpt-4o-mini", 50)
	r.ObserveTokens("openai", "gpt-4o-mini", 0) // ignored
	r.ObserveTokens("openai", "gpt-4o-mini", -5)

	assert.Equal(t, int64(150), r.Snapshot().TokensTotal)
}

func TestRecorder_SetTemplateCount(t *testing.T) {
	r := New(nil)
	r.SetTemplateCount(9)
	assert.Equal(t, int64(9), r.Snapshot().TemplateCount)

	r.SetTemplateCount(10)
	assert.Equal(t, int64(10), r.Snapshot().TemplateCount)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder

	// None of these should panic.
	r.RecordRequest("openai", "gpt-4o-mini", true)
	r.RecordGeneration("sop", time.Second)
	r.ObserveTokens("openai", "gpt-4o-mini", 10)
	r.SetTemplateCount(1)

	snap := r.Snapshot()
	assert.Nil(t, snap.Requests)
	assert.Zero(t, snap.TokensTotal)
}

func TestRecorder_ConcurrentUse(t *testing.T) {
	r := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.RecordRequest("openai", "gpt-4o-mini", true)
				r.ObserveTokens("openai", "gpt-4o-mini", 4)
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, int64(1000), snap.Requests[RequestKey{"openai", "gpt-4o-mini", true}])
	assert.Equal(t, int64(4000), snap.TokensTotal)
}
