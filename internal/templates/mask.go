package templates

// MaskPlaceholder replaces stored secret values on every read path.
// Clients echo it back on update to signal "keep the stored value".
const MaskPlaceholder = "********"

// MaskSecrets returns a copy of config with every non-empty secret-typed
// value replaced by MaskPlaceholder. The input map is not modified.
func MaskSecrets(t *Template, config map[string]any) map[string]any {
	if config == nil {
		return nil
	}

	masked := make(map[string]any, len(config))
	for name, value := range config {
		if t.IsSecret(name) {
			if s, ok := value.(string); ok && s != "" {
				masked[name] = MaskPlaceholder
				continue
			}
		}
		masked[name] = value
	}
	return masked
}

// RestoreSecrets returns a copy of submitted where secret fields carrying
// the mask placeholder are replaced by the stored plaintext. This lets
// clients round-trip a masked read through an update without losing the
// credential.
func RestoreSecrets(t *Template, submitted, stored map[string]any) map[string]any {
	if submitted == nil {
		return nil
	}

	restored := make(map[string]any, len(submitted))
	for name, value := range submitted {
		if t.IsSecret(name) && value == MaskPlaceholder {
			if existing, ok := stored[name]; ok {
				restored[name] = existing
				continue
			}
		}
		restored[name] = value
	}
	return restored
}
