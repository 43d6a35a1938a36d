package entity

// MediaAsset is a remotely stored artifact referenced by a database record.
type MediaAsset struct {
	RemoteID     string       // Storage identifier used for deletion. Never shown to clients.
	URL          string       // Client-visible location.
	ResourceType ResourceType // Storage class the artifact was uploaded as.
	Duration     float64      // Seconds, only meaningful for video assets.
}

// IsZero reports whether the asset points at nothing.
func (a *MediaAsset) IsZero() bool {
	return a == nil || a.RemoteID == ""
}

// URLOrEmpty returns the asset URL, or "" for a missing asset.
func (a *MediaAsset) URLOrEmpty() string {
	if a == nil {
		return ""
	}

	return a.URL
}
