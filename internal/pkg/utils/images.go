package utils

import (
	"encoding/json"
	"strings"
)

// ImagesToString converts []string to JSON string (safe for DB)
func ImagesToString(images []string) string {
	if len(images) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(images)
	return string(data)
}

// StringToImages converts DB string back to []string
func StringToImages(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(s), &images); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return strings.Split(s, ",")
	}
	return images
}
