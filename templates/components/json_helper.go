package components

import (
	"encoding/json"
	"log"
)

// JSON marshals v for use in a data attribute, returning fallback on error
func JSON(v interface{}, fallback string) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Failed to marshal JSON attribute: %v", err)
		return fallback
	}
	return string(b)
}

// FramesJSON encodes a keyframe track; a nil track encodes as an empty array
func FramesJSON(frames []int) string {
	if frames == nil {
		return "[]"
	}
	return JSON(frames, "[]")
}
