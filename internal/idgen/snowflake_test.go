package idgen

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name         string
		datacenterID int64
		workerID     int64
		shouldError  bool
	}{
		{"valid IDs", 0, 0, false},
		{"valid max IDs", 31, 31, false},
		{"invalid datacenter negative", -1, 0, true},
		{"invalid datacenter too large", 32, 0, true},
		{"invalid worker negative", 0, -1, true},
		{"invalid worker too large", 0, 32, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.datacenterID, tt.workerID)
			if tt.shouldError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.datacenterID, gen.datacenterID)
			assert.Equal(t, tt.workerID, gen.workerID)
		})
	}
}

func TestNext_Ordered(t *testing.T) {
	gen, err := NewGenerator(1, 1)
	require.NoError(t, err)

	prev, err := gen.Next()
	require.NoError(t, err)
	require.False(t, prev.IsZero())

	for i := 0; i < 5000; i++ {
		id, err := gen.Next()
		require.NoError(t, err)
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestNext_Concurrent(t *testing.T) {
	gen, err := NewGenerator(1, 1)
	require.NoError(t, err)

	const workers, perWorker = 8, 500

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		ids = make(map[ID]struct{}, workers*perWorker)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id, err := gen.Next()
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, workers*perWorker)
}

func TestNext_ClockMovedBackwards(t *testing.T) {
	gen, err := NewGenerator(1, 1)
	require.NoError(t, err)

	base := time.Now()
	gen.now = func() time.Time { return base }
	_, err = gen.Next()
	require.NoError(t, err)

	gen.now = func() time.Time { return base.Add(-time.Second) }
	_, err = gen.Next()
	assert.Error(t, err)
}

func TestIDStructure(t *testing.T) {
	gen, err := NewGenerator(5, 10)
	require.NoError(t, err)

	before := time.Now().Add(-time.Millisecond)
	id, err := gen.Next()
	require.NoError(t, err)

	assert.Equal(t, int64(5), (int64(id)>>datacenterIDShift)&maxDatacenterID)
	assert.Equal(t, int64(10), (int64(id)>>workerIDShift)&maxWorkerID)
	created := time.UnixMilli((int64(id) >> timestampShift) + customEpoch)
	assert.WithinDuration(t, before, created, time.Second)
}

func TestID_JSONRoundTrip(t *testing.T) {
	gen, err := NewGenerator(1, 1)
	require.NoError(t, err)
	id, err := gen.Next()
	require.NoError(t, err)

	data, err := json.Marshal(struct {
		ID ID `json:"_id"`
	}{id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"`+id.String()+`"}`, string(data))

	var back struct {
		ID ID `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, id, back.ID)

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	assert.Error(t, json.Unmarshal([]byte(`{"_id":42}`), &back))
}
