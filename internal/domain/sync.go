package domain

import "time"

// SyncMetadata records the last successful seed sync for one config file.
// The loader compares hash and mod time against it to skip unchanged files.
type SyncMetadata struct {
	ConfigName   string    `json:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time"`
	FileHash     string    `json:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time"`
}
