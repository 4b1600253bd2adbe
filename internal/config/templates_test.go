package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplatesDefaults(t *testing.T) {
	tmpl, err := LoadTemplates("")
	require.NoError(t, err)

	for name, subject := range map[string]any{
		"invoice":  tmpl.Invoice.Subject,
		"reminder": tmpl.Reminder.Subject,
		"renewal":  tmpl.NoticeOfLeaseRenewal.Subject,
	} {
		s, ok := subject.(string)
		assert.True(t, ok, name)
		assert.NotEmpty(t, s, name)
	}
	assert.Contains(t, tmpl.NoticeOfLeaseRenewal.Body, "{{leaseEndDate}}")
}

func TestLoadTemplatesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"reminder": {"subject": 42, "body": "Pay {{rentAmount}}", "html": null}
	}`), 0o600))

	tmpl, err := LoadTemplates(path)
	require.NoError(t, err)
	assert.Equal(t, float64(42), tmpl.Reminder.Subject)
	assert.Equal(t, "Pay {{rentAmount}}", tmpl.Reminder.Body)
	assert.Nil(t, tmpl.Reminder.HTML)
	assert.Nil(t, tmpl.Invoice.Subject)
}

func TestLoadTemplatesErrors(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read templates")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	_, err = LoadTemplates(path)
	assert.ErrorContains(t, err, "failed to parse templates")
}
