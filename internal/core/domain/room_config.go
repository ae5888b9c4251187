package domain

import (
	"strings"

	"github.com/spf13/cast"
)

// Room configuration keys as they appear in the room config document.
const (
	RoomKeyName                  = "room name"
	RoomKeyDailyWatchword        = "daily watchword"
	RoomKeyPrintEnabled          = "print enabled"
	RoomKeyCommissionEnabled     = "commission enabled"
	RoomKeyCustomerNameRequired  = "customer name required"
	RoomKeyInitialTabNumber      = "initial tab number"
	RoomKeyInitialSequenceNumber = "initial sequence number"
)

// RoomConfig holds the per-venue settings that shape receipts and id allocation.
type RoomConfig struct {
	RoomName              string `json:"roomName"`
	DailyWatchword        string `json:"dailyWatchword"`
	PrintEnabled          bool   `json:"printEnabled"`
	CommissionEnabled     bool   `json:"commissionEnabled"`
	CustomerNameRequired  bool   `json:"customerNameRequired"`
	InitialTabNumber      int    `json:"initialTabNumber"`
	InitialSequenceNumber int    `json:"initialSequenceNumber"`
}

// DefaultRoomConfig is used when no room configuration document exists.
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{PrintEnabled: true, CommissionEnabled: true}
}

// RoomConfigFromMap reads the recognised keys out of a loosely typed document.
// Flags accept 0/1, "0"/"1" or booleans. Unknown keys are ignored and missing
// keys keep their default.
func RoomConfigFromMap(doc map[string]any) RoomConfig {
	cfg := DefaultRoomConfig()
	if v, ok := doc[RoomKeyName]; ok {
		cfg.RoomName = strings.TrimSpace(cast.ToString(v))
	}
	if v, ok := doc[RoomKeyDailyWatchword]; ok {
		cfg.DailyWatchword = strings.TrimSpace(cast.ToString(v))
	}
	if v, ok := doc[RoomKeyPrintEnabled]; ok {
		cfg.PrintEnabled = cast.ToBool(v)
	}
	if v, ok := doc[RoomKeyCommissionEnabled]; ok {
		cfg.CommissionEnabled = cast.ToBool(v)
	}
	if v, ok := doc[RoomKeyCustomerNameRequired]; ok {
		cfg.CustomerNameRequired = cast.ToBool(v)
	}
	if v, ok := doc[RoomKeyInitialTabNumber]; ok {
		cfg.InitialTabNumber = cast.ToInt(v)
	}
	if v, ok := doc[RoomKeyInitialSequenceNumber]; ok {
		cfg.InitialSequenceNumber = cast.ToInt(v)
	}
	return cfg
}
