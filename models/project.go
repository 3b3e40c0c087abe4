package models

import (
	"math/rand"
	"strconv"
	"time"
)

// Defaults applied when a project is created without the optional fields.
const (
	DefaultImage = "/placeholder.svg?height=400&width=600"
	DefaultColor = "from-blue-500 to-cyan-500"
	DefaultDemo  = "#"
)

// Project represents a showcased portfolio item. The JSON field names are
// the exact shape of the persisted snapshot and of the public API.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tech        []string `json:"tech"`
	Color       string   `json:"color"`
	Demo        string   `json:"demo"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	Progress    int      `json:"progress"`
}

// NewProjectID returns a unique project identifier: the current epoch
// milliseconds in base 36 followed by a random base-36 suffix, so that two
// records created within the same millisecond still get distinct ids.
// Uniqueness only; must not be used as a security token.
func NewProjectID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) +
		strconv.FormatUint(rand.Uint64(), 36)
}
