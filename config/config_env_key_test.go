package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"aws": map[string]any{
			"accessKeyId": "",
			"tables": map[string]any{
				"cart": "CartItems",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"smtp": map[string]any{
			"shopTo": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AWS_ACCESSKEYID", want: "aws.accessKeyId"},
		{envKey: "AWS_TABLES_CART", want: "aws.tables.cart"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SMTP_SHOPTO", want: "smtp.shopTo"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
