package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/application/port/mocks"
	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/domain/entity"
)

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	schema := []entity.ConfigKeyInfo{
		{Key: "appearance.default_mode", Section: "Appearance", Type: "string", Default: "system", Values: []string{"light", "dark", "system"}},
		{Key: "server.cookie_max_age_days", Section: "Server", Type: "int", Default: "365", Range: "1-3650"},
		{Key: "appearance.storage_key", Section: "Appearance", Type: "string", Default: "theme-mode"},
	}

	tests := []struct {
		name    string
		section string
		keys    []entity.ConfigKeyInfo
		want    []string
	}{
		{name: "all keys in provider order", keys: schema, want: []string{"appearance.default_mode", "server.cookie_max_age_days", "appearance.storage_key"}},
		{name: "section match ignores case and spaces", section: " appearance ", keys: schema, want: []string{"appearance.default_mode", "appearance.storage_key"}},
		{name: "unknown section", section: "nope", keys: schema, want: []string{}},
		{name: "empty provider", keys: []entity.ConfigKeyInfo{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockConfigSchemaProvider(t)
			provider.EXPECT().GetSchema().Return(tt.keys)

			out, err := usecase.NewGetConfigSchemaUseCase(provider).
				Execute(context.Background(), usecase.GetConfigSchemaInput{Section: tt.section})
			require.NoError(t, err)

			got := make([]string, 0, len(out.Keys))
			for _, k := range out.Keys {
				got = append(got, k.Key)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetConfigSchemaUseCase_KeepsMetadata(t *testing.T) {
	provider := mocks.NewMockConfigSchemaProvider(t)
	provider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{
		{Key: "server.cookie_max_age_days", Section: "Server", Type: "int", Default: "365", Range: "1-3650"},
	})

	out, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "server"})
	require.NoError(t, err)
	require.Len(t, out.Keys, 1)
	assert.Equal(t, "1-3650", out.Keys[0].Range)
	assert.Equal(t, "365", out.Keys[0].Default)
	assert.Empty(t, out.Keys[0].Values)
}
