package model

import "time"

// PushTarget is a webpush subscription a notification target name resolves to.
type PushTarget struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	P256dhKey string `json:"p256dh" yaml:"p256dh"`
	AuthKey   string `json:"auth" yaml:"auth"`
}

// Snapshot is the read-only view of engine state published after each tick.
type Snapshot struct {
	People    map[string]Person    `json:"people"`
	Chores    map[string]Chore     `json:"chores"`
	Instances map[string]*Instance `json:"chore_instances"`
	LastRun   time.Time            `json:"last_run"`
}
