package llm

import "testing"

func TestConfig_ValidateRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing gemini API key")
	}

	cfg.Gemini.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error with key set: %v", err)
	}
}

func TestConfig_ValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "quantum"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestConfig_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error for mock provider: %v", err)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("VIVA_LLM_PROVIDER", "openai")
	t.Setenv("VIVA_OPENAI_API_KEY", "sk-test")
	t.Setenv("VIVA_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI config = %+v", cfg.OpenAI)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Errorf("resolveModel friendly name = %q", got)
	}
	if got := resolveModel("custom-model-id", geminiModels); got != "custom-model-id" {
		t.Errorf("resolveModel passthrough = %q", got)
	}
}
