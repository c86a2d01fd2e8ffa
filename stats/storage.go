package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MonthlyUsage represents usage counters for a specific month
type MonthlyUsage struct {
	ContentAnalyses int       `json:"content_analyses"`
	URLAnalyses     int       `json:"url_analyses"`
	CacheHits       int       `json:"cache_hits"`
	CacheMisses     int       `json:"cache_misses"`
	Errors          int       `json:"errors"`
	LastUpdated     time.Time `json:"last_updated"`
}

// storedUsage is the on-disk layout of the usage file
type storedUsage struct {
	Months   map[string]*MonthlyUsage `json:"months"`
	Visitors map[string]time.Time     `json:"visitors"`
}

// Storage handles persistent storage of usage statistics
type Storage struct {
	mutex       sync.RWMutex
	months      map[string]*MonthlyUsage // key: "YYYY-MM"
	visitors    map[string]time.Time     // IP -> last visit time
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
}

// NewStorage creates a new usage storage instance backed by a JSON file
// in dataDir. A background goroutine flushes counters to disk periodically;
// call Close to stop it and persist the final state.
func NewStorage(dataDir string) (*Storage, error) {
	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, "usage.json")
	s := &Storage{
		months:      make(map[string]*MonthlyUsage),
		visitors:    make(map[string]time.Time),
		filePath:    filePath,
		writeBuffer: make(chan struct{}, 1), // Buffer for write requests
		done:        make(chan struct{}),
	}

	// Load existing usage if file exists
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load usage file: %w", err)
	}

	// Start background writer
	go s.backgroundWriter()

	return s, nil
}

// load reads usage counters from file
func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var stored storedUsage
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if stored.Months != nil {
		s.months = stored.Months
	}
	if stored.Visitors != nil {
		s.visitors = stored.Visitors
	}
	return nil
}

// save writes usage counters to file
func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(storedUsage{
		Months:   s.months,
		Visitors: s.visitors,
	})
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal usage: %w", err)
	}

	// Write to temporary file first
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Rename temporary file to actual file (atomic operation)
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile) // Clean up temp file if rename fails
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// backgroundWriter handles periodic writes to disk
func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			// Immediate write requested
			s.save()
		case <-ticker.C:
			// Periodic write
			s.save()
		case <-s.done:
			return
		}
	}
}

// currentMonth returns the current month key in YYYY-MM format
func currentMonth() string {
	return time.Now().Format("2006-01")
}

// requestWrite signals that a write to disk is needed
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
		// Write requested
	default:
		// Buffer full, write already pending
	}
}

// record applies an update to the current month's counters and schedules
// a write if enough time has passed since the last one
func (s *Storage) record(update func(*MonthlyUsage)) {
	month := currentMonth()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	usage, exists := s.months[month]
	if !exists {
		usage = &MonthlyUsage{}
		s.months[month] = usage
	}

	update(usage)
	usage.LastUpdated = time.Now()

	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// RecordAnalysis counts one analysis of directly submitted content
func (s *Storage) RecordAnalysis() {
	s.record(func(u *MonthlyUsage) { u.ContentAnalyses++ })
}

// RecordURLAnalysis counts one analysis of a fetched URL
func (s *Storage) RecordURLAnalysis() {
	s.record(func(u *MonthlyUsage) { u.URLAnalyses++ })
}

// RecordCacheHit counts one result served from the cache
func (s *Storage) RecordCacheHit() {
	s.record(func(u *MonthlyUsage) { u.CacheHits++ })
}

// RecordCacheMiss counts one result that had to be computed
func (s *Storage) RecordCacheMiss() {
	s.record(func(u *MonthlyUsage) { u.CacheMisses++ })
}

// RecordError counts one failed request
func (s *Storage) RecordError() {
	s.record(func(u *MonthlyUsage) { u.Errors++ })
}

// TrackVisitor records the last visit time for a client IP
func (s *Storage) TrackVisitor(ip string) {
	if ip == "" {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.visitors[ip] = time.Now()
}

// UniqueVisitors24h returns the number of distinct IPs seen in the last 24 hours
func (s *Storage) UniqueVisitors24h() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)

	for _, lastVisit := range s.visitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}

	return count
}

// GetCurrentUsage returns usage counters for the current month
func (s *Storage) GetCurrentUsage() MonthlyUsage {
	month := currentMonth()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if usage, exists := s.months[month]; exists {
		return *usage
	}
	return MonthlyUsage{}
}

// GetMonthlyUsage returns usage counters for a specific month
func (s *Storage) GetMonthlyUsage(yearMonth string) (MonthlyUsage, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if usage, exists := s.months[yearMonth]; exists {
		return *usage, true
	}
	return MonthlyUsage{}, false
}

// GetAllMonths returns a sorted list of all months that have usage counters
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.months))
	for month := range s.months {
		months = append(months, month)
	}

	// Sort months in descending order (newest first)
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}

// Cleanup removes monthly counters older than retainMonths (counting the
// current month) and visitor entries older than 24 hours
func (s *Storage) Cleanup(retainMonths int) {
	if retainMonths < 1 {
		retainMonths = 1
	}
	now := time.Now()
	cutoffMonth := now.AddDate(0, -(retainMonths - 1), 0).Format("2006-01")
	visitorCutoff := now.Add(-24 * time.Hour)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// "YYYY-MM" keys compare chronologically as strings
	for key := range s.months {
		if key < cutoffMonth {
			delete(s.months, key)
		}
	}

	for ip, lastVisit := range s.visitors {
		if lastVisit.Before(visitorCutoff) {
			delete(s.visitors, ip)
		}
	}

	// Request a write to persist changes
	s.requestWrite()
}

// Close stops the background writer and flushes pending counters to disk
func (s *Storage) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.save()
	})
	return err
}
