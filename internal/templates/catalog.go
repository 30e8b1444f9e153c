package templates

// Backend categories shipped with the service. The set is closed: new
// categories are added by registering templates here, never by user input.
const (
	CategoryOpenAI      = "openai"
	CategoryAnthropic   = "anthropic"
	CategoryDeepSeek    = "deepseek"
	CategoryAzureOpenAI = "azure-openai"
	CategoryOllama      = "ollama"
)

// Catalog is the static registry of backend templates. It is built once at
// process start and read-only afterward.
type Catalog struct {
	templates []*Template
	index     map[string]*Template
}

// NewCatalog creates a catalog containing the built-in templates.
func NewCatalog() *Catalog {
	c := &Catalog{
		index: make(map[string]*Template),
	}
	for _, t := range builtins() {
		c.templates = append(c.templates, t)
		c.index[t.Category] = t
	}
	return c
}

// Get returns the template for the given category.
// Returns ErrNotFound if the category is not registered.
func (c *Catalog) Get(category string) (*Template, error) {
	t, ok := c.index[category]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

// List returns all registered templates in registration order.
func (c *Catalog) List() []*Template {
	return c.templates
}

// ListByKind returns all registered templates of the given kind.
func (c *Catalog) ListByKind(kind Kind) []*Template {
	var result []*Template
	for _, t := range c.templates {
		if t.Kind == kind {
			result = append(result, t)
		}
	}
	return result
}

func builtins() []*Template {
	defaultRetries := float64(3)

	return []*Template{
		{
			Category:    CategoryOpenAI,
			Name:        "OpenAI",
			Description: "OpenAI chat completion API",
			Kind:        KindCloud,
			ConfigFields: []Field{
				SecretField{FieldSpec{Name: "api_key", Label: "API Key", Required: true}},
				TextField{
					FieldSpec: FieldSpec{Name: "base_url", Label: "Base URL"},
					Default:   "https://api.openai.com",
				},
				TextField{FieldSpec: FieldSpec{Name: "organization", Label: "Organization ID"}},
				NumberField{
					FieldSpec: FieldSpec{Name: "max_retries", Label: "Max Retries"},
					Default:   &defaultRetries,
				},
			},
			DefaultModels: []ModelPreset{
				{ModelName: "gpt-4o", DisplayName: "GPT-4o", MaxTokens: 16384, ContextWindow: 128000},
				{ModelName: "gpt-4o-mini", DisplayName: "GPT-4o mini", MaxTokens: 16384, ContextWindow: 128000},
			},
		},
		{
			Category:    CategoryAnthropic,
			Name:        "Anthropic",
			Description: "Anthropic Messages API",
			Kind:        KindCloud,
			ConfigFields: []Field{
				SecretField{FieldSpec{Name: "api_key", Label: "API Key", Required: true}},
				TextField{
					FieldSpec: FieldSpec{Name: "base_url", Label: "Base URL"},
					Default:   "https://api.anthropic.com",
				},
				EnumField{
					FieldSpec: FieldSpec{Name: "api_version", Label: "API Version"},
					Options:   []string{"2023-06-01"},
					Default:   "2023-06-01",
				},
			},
			DefaultModels: []ModelPreset{
				{ModelName: "claude-sonnet-4-5", DisplayName: "Claude Sonnet 4.5", MaxTokens: 64000, ContextWindow: 200000},
				{ModelName: "claude-haiku-4-5", DisplayName: "Claude Haiku 4.5", MaxTokens: 64000, ContextWindow: 200000},
			},
		},
		{
			Category:    CategoryDeepSeek,
			Name:        "DeepSeek",
			Description: "DeepSeek OpenAI-compatible API",
			Kind:        KindCloud,
			ConfigFields: []Field{
				SecretField{FieldSpec{Name: "api_key", Label: "API Key", Required: true}},
				TextField{
					FieldSpec: FieldSpec{Name: "base_url", Label: "Base URL"},
					Default:   "https://api.deepseek.com",
				},
			},
			DefaultModels: []ModelPreset{
				{ModelName: "deepseek-chat", DisplayName: "DeepSeek Chat", MaxTokens: 8192, ContextWindow: 65536},
				{ModelName: "deepseek-reasoner", DisplayName: "DeepSeek Reasoner", MaxTokens: 65536, ContextWindow: 65536},
			},
		},
		{
			Category:    CategoryAzureOpenAI,
			Name:        "Azure OpenAI",
			Description: "Azure-hosted OpenAI enterprise gateway",
			Kind:        KindCloud,
			ConfigFields: []Field{
				SecretField{FieldSpec{Name: "api_key", Label: "API Key", Required: true}},
				TextField{FieldSpec: FieldSpec{Name: "endpoint", Label: "Resource Endpoint", Required: true}},
				TextField{FieldSpec: FieldSpec{Name: "deployment_name", Label: "Deployment Name", Required: true}},
				EnumField{
					FieldSpec: FieldSpec{Name: "api_version", Label: "API Version"},
					Options:   []string{"2024-02-01", "2024-06-01", "2024-10-21"},
					Default:   "2024-06-01",
				},
			},
		},
		{
			Category:    CategoryOllama,
			Name:        "Ollama",
			Description: "Locally hosted Ollama inference server",
			Kind:        KindLocal,
			ConfigFields: []Field{
				TextField{
					FieldSpec: FieldSpec{Name: "endpoint", Label: "Endpoint", Required: true},
					Default:   "http://localhost:11434",
				},
			},
			DefaultModels: []ModelPreset{
				{ModelName: "llama3.1:8b", DisplayName: "Llama 3.1 8B", MaxTokens: 4096, ContextWindow: 131072},
				{ModelName: "qwen2.5:7b", DisplayName: "Qwen 2.5 7B", MaxTokens: 4096, ContextWindow: 32768},
			},
		},
	}
}
