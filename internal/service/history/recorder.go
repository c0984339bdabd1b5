package history

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"turibot/internal/model/convo"
)

// RecorderConfig tunes the asynchronous writer.
type RecorderConfig struct {
	QueueSize    int
	WriteTimeout time.Duration
	// OnError receives every persistence failure, including dropped records
	// when the queue is full. Defaults to the process log.
	OnError func(error)
}

// Recorder decouples exchange persistence from the response path: Record
// never blocks, writes happen on a background goroutine with a bounded
// timeout, and failures only ever reach the error hook. A full or closed
// queue drops the record rather than stalling the pipeline.
type Recorder struct {
	store        Store
	queue        chan convo.ExchangeRecord
	writeTimeout time.Duration
	onError      func(error)

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

// NewRecorder starts the background writer.
func NewRecorder(store Store, cfg RecorderConfig) *Recorder {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	onError := cfg.OnError
	if onError == nil {
		onError = func(err error) { log.Printf("[history] %v", err) }
	}

	r := &Recorder{
		store:        store,
		queue:        make(chan convo.ExchangeRecord, queueSize),
		writeTimeout: writeTimeout,
		onError:      onError,
		done:         make(chan struct{}),
	}
	go r.run()
	return r
}

// Record enqueues the exchange for persistence and returns immediately.
// After Close it drops the record through the error hook instead.
func (r *Recorder) Record(record convo.ExchangeRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		r.onError(fmt.Errorf("recorder closed, dropping exchange %s", record.ID))
		return
	}
	select {
	case r.queue <- record:
	default:
		r.onError(fmt.Errorf("queue full, dropping exchange %s", record.ID))
	}
}

// Close stops accepting records, drains the queue and waits for the writer.
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		close(r.queue)
	})
	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)
	for record := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
		if err := r.store.Append(ctx, record); err != nil {
			r.onError(fmt.Errorf("append exchange %s: %w", record.ID, err))
		}
		cancel()
	}
}
