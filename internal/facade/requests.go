package facade

// AddProviderRequest is the wire payload for creating a provider.
type AddProviderRequest struct {
	ProviderName     string         `json:"provider_name"`
	ProviderCategory string         `json:"provider_category"`
	Config           map[string]any `json:"config"`
	IsEnabled        *bool          `json:"is_enabled,omitempty"`
	IsDefault        bool           `json:"is_default"`
}

// EditProviderRequest is the wire payload for updating a provider. The
// category is accepted on the wire only so an attempt to change it can be
// rejected explicitly rather than silently ignored.
type EditProviderRequest struct {
	ProviderName     *string        `json:"provider_name,omitempty"`
	ProviderCategory *string        `json:"provider_category,omitempty"`
	Config           map[string]any `json:"config,omitempty"`
	IsEnabled        *bool          `json:"is_enabled,omitempty"`
	IsDefault        *bool          `json:"is_default,omitempty"`
}

// TestRequest is the wire payload for probing a configuration that need not
// be persisted.
type TestRequest struct {
	ProviderCategory string         `json:"provider_category"`
	Config           map[string]any `json:"config"`
	TestModel        string         `json:"test_model,omitempty"`
}
