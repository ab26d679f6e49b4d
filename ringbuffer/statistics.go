package ringbuffer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks container operation counts.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushesFront     int64
	pushesBack      int64
	popsFront       int64
	popsBack        int64
	peeks           int64
	lookups         int64
	fullRejections  int64
	emptyRejections int64
	resizes         int64
	clears          int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// PushFront records a front insertion.
func (s *Statistics) PushFront() {
	atomic.AddInt64(&s.pushesFront, 1)
}

// PushBack records a back insertion.
func (s *Statistics) PushBack() {
	atomic.AddInt64(&s.pushesBack, 1)
}

// PopFront records a front removal.
func (s *Statistics) PopFront() {
	atomic.AddInt64(&s.popsFront, 1)
}

// PopBack records a back removal.
func (s *Statistics) PopBack() {
	atomic.AddInt64(&s.popsBack, 1)
}

// Peek records a peek at either end.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Lookup records a slot lookup.
func (s *Statistics) Lookup() {
	atomic.AddInt64(&s.lookups, 1)
}

// FullRejection records a push refused for lack of capacity.
func (s *Statistics) FullRejection() {
	atomic.AddInt64(&s.fullRejections, 1)
}

// EmptyRejection records a pop refused on an empty buffer.
func (s *Statistics) EmptyRejection() {
	atomic.AddInt64(&s.emptyRejections, 1)
}

// Resize records a backing block replacement.
func (s *Statistics) Resize() {
	atomic.AddInt64(&s.resizes, 1)
}

// Clear records a logical reset.
func (s *Statistics) Clear() {
	atomic.AddInt64(&s.clears, 1)
}

// UpdateSize updates the current element count.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Pushes returns the total number of insertions at either end.
func (s *Statistics) Pushes() int64 {
	return atomic.LoadInt64(&s.pushesFront) + atomic.LoadInt64(&s.pushesBack)
}

// Pops returns the total number of removals at either end.
func (s *Statistics) Pops() int64 {
	return atomic.LoadInt64(&s.popsFront) + atomic.LoadInt64(&s.popsBack)
}

// PushesFront returns the total number of front insertions.
func (s *Statistics) PushesFront() int64 {
	return atomic.LoadInt64(&s.pushesFront)
}

// PushesBack returns the total number of back insertions.
func (s *Statistics) PushesBack() int64 {
	return atomic.LoadInt64(&s.pushesBack)
}

// PopsFront returns the total number of front removals.
func (s *Statistics) PopsFront() int64 {
	return atomic.LoadInt64(&s.popsFront)
}

// PopsBack returns the total number of back removals.
func (s *Statistics) PopsBack() int64 {
	return atomic.LoadInt64(&s.popsBack)
}

// Peeks returns the total number of peek operations.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Lookups returns the total number of slot lookups.
func (s *Statistics) Lookups() int64 {
	return atomic.LoadInt64(&s.lookups)
}

// FullRejections returns the number of pushes refused for lack of capacity.
func (s *Statistics) FullRejections() int64 {
	return atomic.LoadInt64(&s.fullRejections)
}

// EmptyRejections returns the number of pops refused on an empty buffer.
func (s *Statistics) EmptyRejections() int64 {
	return atomic.LoadInt64(&s.emptyRejections)
}

// Resizes returns the number of backing block replacements.
func (s *Statistics) Resizes() int64 {
	return atomic.LoadInt64(&s.resizes)
}

// Clears returns the number of logical resets.
func (s *Statistics) Clears() int64 {
	return atomic.LoadInt64(&s.clears)
}

// CurrentSize returns the current number of elements.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the highest element count the buffer has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of pushes per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Pushes()) / elapsed.Seconds()
}

// RejectionRate returns the share of pushes refused for lack of capacity
// (0.0 to 1.0), counting refused attempts in the denominator.
func (s *Statistics) RejectionRate() float64 {
	pushes := s.Pushes()
	rejections := s.FullRejections()

	attempts := pushes + rejections
	if attempts == 0 {
		return 0.0
	}

	return float64(rejections) / float64(attempts)
}

// Utilization returns the current fill level relative to capacity (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long this tracker has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushesFront, 0)
	atomic.StoreInt64(&s.pushesBack, 0)
	atomic.StoreInt64(&s.popsFront, 0)
	atomic.StoreInt64(&s.popsBack, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.lookups, 0)
	atomic.StoreInt64(&s.fullRejections, 0)
	atomic.StoreInt64(&s.emptyRejections, 0)
	atomic.StoreInt64(&s.resizes, 0)
	atomic.StoreInt64(&s.clears, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	PushesFront     int64         `json:"pushes_front"`
	PushesBack      int64         `json:"pushes_back"`
	PopsFront       int64         `json:"pops_front"`
	PopsBack        int64         `json:"pops_back"`
	Peeks           int64         `json:"peeks"`
	Lookups         int64         `json:"lookups"`
	FullRejections  int64         `json:"full_rejections"`
	EmptyRejections int64         `json:"empty_rejections"`
	Resizes         int64         `json:"resizes"`
	Clears          int64         `json:"clears"`
	CurrentSize     int64         `json:"current_size"`
	MaxSize         int64         `json:"max_size"`
	Throughput      float64       `json:"throughput"`
	RejectionRate   float64       `json:"rejection_rate"`
	Uptime          time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		PushesFront:     s.PushesFront(),
		PushesBack:      s.PushesBack(),
		PopsFront:       s.PopsFront(),
		PopsBack:        s.PopsBack(),
		Peeks:           s.Peeks(),
		Lookups:         s.Lookups(),
		FullRejections:  s.FullRejections(),
		EmptyRejections: s.EmptyRejections(),
		Resizes:         s.Resizes(),
		Clears:          s.Clears(),
		CurrentSize:     s.CurrentSize(),
		MaxSize:         s.MaxSize(),
		Throughput:      s.Throughput(),
		RejectionRate:   s.RejectionRate(),
		Uptime:          s.Uptime(),
	}
}
