// Package casestore is the per-tenant warning ledger and settings store.
// Composite read-modify-write operations are serialized per tenant so two
// concurrent warns on the same guild can never lose an update; distinct
// guilds are written fully in parallel.
package casestore

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/PancyStudios/PancyModGo/pkg/storage"
)

// Store persists one document pair per tenant: <tenant>_warns and
// <tenant>_settings.
type Store struct {
	kv storage.KV

	mu      sync.Mutex
	tenants map[string]*sync.Mutex
}

// NewStore creates a Store over the given key-value backend
func NewStore(kv storage.KV) *Store {
	return &Store{
		kv:      kv,
		tenants: make(map[string]*sync.Mutex),
	}
}

// tenantLock returns the mutex serializing writes for one tenant,
// creating it on first use
func (s *Store) tenantLock(tenantID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.tenants[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		s.tenants[tenantID] = lock
	}
	return lock
}

func warnsKey(tenantID string) string    { return tenantID + "_warns" }
func settingsKey(tenantID string) string { return tenantID + "_settings" }

// LoadWarnings returns the whole warning document for a tenant.
// A tenant with no document yet yields an empty map.
func (s *Store) LoadWarnings(tenantID string) (models.WarnMap, error) {
	warns := models.WarnMap{}
	if _, err := s.kv.Get(warnsKey(tenantID), &warns); err != nil {
		return nil, err
	}
	return warns, nil
}

// SaveWarnings replaces the tenant's warning document atomically
func (s *Store) SaveWarnings(tenantID string, warns models.WarnMap) error {
	return s.kv.PutAtomic(warnsKey(tenantID), warns)
}

// LoadSettings returns the tenant's settings, defaulting to the zero value
// when no document exists.
func (s *Store) LoadSettings(tenantID string) (models.ModSettings, error) {
	var settings models.ModSettings
	if _, err := s.kv.Get(settingsKey(tenantID), &settings); err != nil {
		return models.ModSettings{}, err
	}
	return settings, nil
}

// SaveSettings replaces the tenant's settings document atomically
func (s *Store) SaveSettings(tenantID string, settings models.ModSettings) error {
	return s.kv.PutAtomic(settingsKey(tenantID), settings)
}

// AddWarning appends a new warning for a member and returns it. IDs are a
// per-member monotonic counter: one more than the highest ID ever assigned,
// so a deleted warning never causes a duplicate ID later.
func (s *Store) AddWarning(tenantID, memberID, reason, moderatorID string) (models.Warning, error) {
	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	warns, err := s.LoadWarnings(tenantID)
	if err != nil {
		return models.Warning{}, err
	}

	nextID := 1
	for _, w := range warns[memberID] {
		if w.ID >= nextID {
			nextID = w.ID + 1
		}
	}

	warning := models.Warning{
		ID:        nextID,
		Reason:    reason,
		Moderator: moderatorID,
		Time:      time.Now().UTC(),
	}
	warns[memberID] = append(warns[memberID], warning)

	if err := s.SaveWarnings(tenantID, warns); err != nil {
		return models.Warning{}, fmt.Errorf("error guardando advertencia: %w", err)
	}
	return warning, nil
}

// RemoveWarning deletes the warning with the given ID from a member's list.
// It reports false without error when no such warning exists.
func (s *Store) RemoveWarning(tenantID, memberID string, warningID int) (bool, error) {
	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	warns, err := s.LoadWarnings(tenantID)
	if err != nil {
		return false, err
	}

	list := warns[memberID]
	found := false
	updated := make([]models.Warning, 0, len(list))
	for _, w := range list {
		if w.ID == warningID {
			found = true
			continue
		}
		updated = append(updated, w)
	}

	if !found {
		return false, nil
	}

	if len(updated) == 0 {
		delete(warns, memberID)
	} else {
		warns[memberID] = updated
	}

	if err := s.SaveWarnings(tenantID, warns); err != nil {
		return false, fmt.Errorf("error guardando advertencias: %w", err)
	}
	return true, nil
}

// SetLogChannel updates the tenant's mod-log channel, last write wins
func (s *Store) SetLogChannel(tenantID, channelID string) error {
	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	settings, err := s.LoadSettings(tenantID)
	if err != nil {
		return err
	}
	settings.LogChannel = channelID
	return s.SaveSettings(tenantID, settings)
}

// LogChannel returns the configured mod-log channel, empty if unset
func (s *Store) LogChannel(tenantID string) (string, error) {
	settings, err := s.LoadSettings(tenantID)
	if err != nil {
		return "", err
	}
	return settings.LogChannel, nil
}

// Blacklist lists every member of the tenant with at least one warning,
// ordered by warning count descending, member ID as tie-breaker.
func (s *Store) Blacklist(tenantID string) ([]models.BlacklistEntry, error) {
	warns, err := s.LoadWarnings(tenantID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.BlacklistEntry, 0, len(warns))
	for memberID, list := range warns {
		if len(list) == 0 {
			continue
		}
		entries = append(entries, models.BlacklistEntry{MemberID: memberID, Count: len(list)})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].MemberID < entries[j].MemberID
	})
	return entries, nil
}
